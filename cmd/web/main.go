package main

import "fitpro_backend/internal/app"

func main() {
	app.Run()
}
