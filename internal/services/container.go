package services

import (
	"fitpro_backend/internal/email"
	"fitpro_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared *gorm.DB so
// handlers receive one dependency instead of nine.
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Profile      ProfileService
	Session      SessionService
	Workout      WorkoutService
	Exercise     ExerciseService
	Class        ClassService
	Notification NotificationService
	Progress     ProgressService
	Report       ReportService
}

func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	exerciseRepo := repositories.NewExerciseRepository(db)
	classRepo := repositories.NewClassRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	progressRepo := repositories.NewProgressRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(db, userRepo, profileRepo, emailProvider),
		User:         NewUserService(userRepo),
		Profile:      NewProfileService(profileRepo, userRepo),
		Session:      NewSessionService(db, sessionRepo, userRepo, notificationRepo),
		Workout:      NewWorkoutService(workoutRepo, userRepo),
		Exercise:     NewExerciseService(exerciseRepo),
		Class:        NewClassService(classRepo, userRepo),
		Notification: NewNotificationService(notificationRepo, userRepo),
		Progress:     NewProgressService(progressRepo, userRepo),
		Report:       NewReportService(userRepo, profileRepo, workoutRepo, sessionRepo, progressRepo),
	}
}
