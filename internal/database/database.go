package database

import (
	"errors"
	"fmt"

	"fitpro_backend/internal/auth"
	"fitpro_backend/internal/config"
	"fitpro_backend/internal/logger"
	"fitpro_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open creates the single shared gorm handle over the embedded sqlite
// store. The caller owns the handle and must Close it on shutdown.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	return db, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates all tables. AutoMigrate is idempotent, so repeated
// startups are safe and existing data is never truncated.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MemberProfile{},
		&models.TrainerProfile{},
		&models.Workout{},
		&models.Session{},
		&models.FitnessClass{},
		&models.ClassEnrollment{},
		&models.Notification{},
		&models.ProgressRecord{},
		&models.Exercise{},
	)
}

// Seed inserts the default admin account and the starter exercise
// catalog. Both are guarded by existence checks and run in one
// transaction, so repeated calls never produce duplicate seed rows.
func Seed(db *gorm.DB, cfg *config.Config) error {
	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := seedAdmin(tx, cfg); err != nil {
		return err
	}
	if err := seedExercises(tx); err != nil {
		return err
	}

	return tx.Commit().Error
}

func seedAdmin(tx *gorm.DB, cfg *config.Config) error {
	var admin models.User
	result := tx.Where("username = ?", cfg.Admin.Username).First(&admin)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating default admin.", "username", cfg.Admin.Username)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		FirstName:    "Admin",
		LastName:     "User",
		IsActive:     true,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// Starter catalog matching the original deployment defaults.
var defaultExercises = []models.Exercise{
	{
		Name:            "Push-ups",
		Category:        "Chest",
		MuscleGroups:    "Chest, Triceps, Shoulders",
		Equipment:       "Bodyweight",
		Instructions:    "Start in a plank position, lower your body until your chest nearly touches the floor, then push back up.",
		DifficultyLevel: "Beginner",
	},
	{
		Name:            "Squats",
		Category:        "Legs",
		MuscleGroups:    "Quadriceps, Glutes, Hamstrings",
		Equipment:       "Bodyweight",
		Instructions:    "Stand with feet shoulder-width apart, lower your hips as if sitting back into a chair, then return to standing.",
		DifficultyLevel: "Beginner",
	},
	{
		Name:            "Deadlift",
		Category:        "Back",
		MuscleGroups:    "Hamstrings, Glutes, Lower Back",
		Equipment:       "Barbell",
		Instructions:    "Stand with feet hip-width apart, grip the bar, lift by extending your hips and knees to full extension.",
		DifficultyLevel: "Intermediate",
	},
	{
		Name:            "Bench Press",
		Category:        "Chest",
		MuscleGroups:    "Chest, Triceps, Shoulders",
		Equipment:       "Barbell",
		Instructions:    "Lie on bench, grip bar slightly wider than shoulders, lower to chest, then press back up.",
		DifficultyLevel: "Intermediate",
	},
	{
		Name:            "Pull-ups",
		Category:        "Back",
		MuscleGroups:    "Lats, Biceps, Rear Delts",
		Equipment:       "Pull-up Bar",
		Instructions:    "Hang from bar with arms extended, pull your body up until chin clears the bar.",
		DifficultyLevel: "Advanced",
	},
}

func seedExercises(tx *gorm.DB) error {
	for _, exercise := range defaultExercises {
		var existing models.Exercise
		result := tx.Where("name = ?", exercise.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for exercise %q: %w", exercise.Name, result.Error)
		}
		if err := tx.Create(&exercise).Error; err != nil {
			return fmt.Errorf("failed to seed exercise %q: %w", exercise.Name, err)
		}
	}
	return nil
}

// Initialize opens the store, migrates the schema and seeds defaults.
// It fails loudly on any unrecoverable storage error.
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := Seed(db, cfg); err != nil {
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}
	return db, nil
}
