package app

import (
	"fmt"

	"fitpro_backend/internal/config"
	"fitpro_backend/internal/database"
	"fitpro_backend/internal/email"
	"fitpro_backend/internal/handlers"
	"fitpro_backend/internal/logger"
	"fitpro_backend/internal/middleware"
	"fitpro_backend/internal/routes"
	"fitpro_backend/internal/services"
	"fitpro_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Opening database", "path", cfg.Database.Path)
	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", "error", err)
	}
	logger.Info("Database ready")

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, db)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, db *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &email.NoopProvider{}
		logger.Warn("Email disabled, outgoing mail is dropped")
	}

	return services.NewServiceContainer(db, emailProvider)
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.Auth),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.User),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, container.Profile),
		SessionHandler:      handlers.NewSessionHandler(baseHandler, container.Session),
		WorkoutHandler:      handlers.NewWorkoutHandler(baseHandler, container.Workout),
		ExerciseHandler:     handlers.NewExerciseHandler(baseHandler, container.Exercise),
		ClassHandler:        handlers.NewClassHandler(baseHandler, container.Class),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.Notification),
		ProgressHandler:     handlers.NewProgressHandler(baseHandler, container.Progress),
		ReportHandler:       handlers.NewReportHandler(baseHandler, container.Report),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
