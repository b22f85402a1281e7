package handlers

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	HealthHandler       *HealthHandler
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ProfileHandler      *ProfileHandler
	SessionHandler      *SessionHandler
	WorkoutHandler      *WorkoutHandler
	ExerciseHandler     *ExerciseHandler
	ClassHandler        *ClassHandler
	NotificationHandler *NotificationHandler
	ProgressHandler     *ProgressHandler
	ReportHandler       *ReportHandler
}
