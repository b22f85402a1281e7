package repositories

import (
	"errors"

	"fitpro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type WorkoutRepository interface {
	// Save inserts when the identifier is zero, updates otherwise.
	Save(workout *models.Workout) error
	FindByID(id uint) (*models.Workout, error)
	// Finders return active workouts only, newest first.
	FindByMemberID(memberID uint) ([]models.Workout, error)
	FindByTrainerID(trainerID uint) ([]models.Workout, error)
	Deactivate(id uint) error

	WithTx(tx *gorm.DB) WorkoutRepository
}

type WorkoutRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &WorkoutRepositoryImpl{db: db}
}

func (r *WorkoutRepositoryImpl) WithTx(tx *gorm.DB) WorkoutRepository {
	return &WorkoutRepositoryImpl{db: tx}
}

func (r *WorkoutRepositoryImpl) Save(workout *models.Workout) error {
	if workout.ID == 0 {
		return r.db.Create(workout).Error
	}
	return r.db.Save(workout).Error
}

func (r *WorkoutRepositoryImpl) FindByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	err := r.db.First(&workout, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepositoryImpl) FindByMemberID(memberID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("member_id = ? AND is_active = ?", memberID, true).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (r *WorkoutRepositoryImpl) FindByTrainerID(trainerID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := r.db.Where("trainer_id = ? AND is_active = ?", trainerID, true).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (r *WorkoutRepositoryImpl) Deactivate(id uint) error {
	result := r.db.Model(&models.Workout{}).Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
