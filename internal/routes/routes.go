package routes

import (
	"fitpro_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.SessionHandler.RegisterRoutes(api)
		appHandlers.WorkoutHandler.RegisterRoutes(api)
		appHandlers.ExerciseHandler.RegisterRoutes(api)
		appHandlers.ClassHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.ProgressHandler.RegisterRoutes(api)
		appHandlers.ReportHandler.RegisterRoutes(api)
	}
}
