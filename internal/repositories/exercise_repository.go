package repositories

import (
	"errors"

	"fitpro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseRepository interface {
	Save(exercise *models.Exercise) error
	FindByID(id uint) (*models.Exercise, error)
	FindByName(name string) (*models.Exercise, error)
	// FindAll returns the whole catalog ordered by name.
	FindAll() ([]models.Exercise, error)
	// SearchByCategory matches the category by substring, ordered by name.
	SearchByCategory(category string) ([]models.Exercise, error)
}

type ExerciseRepositoryImpl struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &ExerciseRepositoryImpl{db: db}
}

func (r *ExerciseRepositoryImpl) Save(exercise *models.Exercise) error {
	if exercise.ID == 0 {
		return r.db.Create(exercise).Error
	}
	return r.db.Save(exercise).Error
}

func (r *ExerciseRepositoryImpl) FindByID(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepositoryImpl) FindByName(name string) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepositoryImpl) FindAll() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Order("name ASC").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepositoryImpl) SearchByCategory(category string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("category LIKE ?", "%"+category+"%").
		Order("name ASC").
		Find(&exercises).Error
	return exercises, err
}
