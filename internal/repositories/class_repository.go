package repositories

import (
	"errors"

	"fitpro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClassNotFound = errors.New("class not found")

type ClassRepository interface {
	Save(class *models.FitnessClass) error
	FindByID(id uint) (*models.FitnessClass, error)
	// FindAllActive returns active classes ordered by name.
	FindAllActive() ([]models.FitnessClass, error)
	FindByTrainerID(trainerID uint) ([]models.FitnessClass, error)
	Deactivate(id uint) error

	Enroll(enrollment *models.ClassEnrollment) error
	FindEnrollmentsByClassID(classID uint) ([]models.ClassEnrollment, error)
}

type ClassRepositoryImpl struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &ClassRepositoryImpl{db: db}
}

func (r *ClassRepositoryImpl) Save(class *models.FitnessClass) error {
	if class.ID == 0 {
		return r.db.Create(class).Error
	}
	return r.db.Save(class).Error
}

func (r *ClassRepositoryImpl) FindByID(id uint) (*models.FitnessClass, error) {
	var class models.FitnessClass
	err := r.db.First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepositoryImpl) FindAllActive() ([]models.FitnessClass, error) {
	var classes []models.FitnessClass
	err := r.db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&classes).Error
	return classes, err
}

func (r *ClassRepositoryImpl) FindByTrainerID(trainerID uint) ([]models.FitnessClass, error) {
	var classes []models.FitnessClass
	err := r.db.Where("trainer_id = ? AND is_active = ?", trainerID, true).
		Order("name ASC").
		Find(&classes).Error
	return classes, err
}

func (r *ClassRepositoryImpl) Deactivate(id uint) error {
	result := r.db.Model(&models.FitnessClass{}).Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *ClassRepositoryImpl) Enroll(enrollment *models.ClassEnrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *ClassRepositoryImpl) FindEnrollmentsByClassID(classID uint) ([]models.ClassEnrollment, error) {
	var enrollments []models.ClassEnrollment
	err := r.db.Where("class_id = ?", classID).
		Order("enrollment_date ASC").
		Find(&enrollments).Error
	return enrollments, err
}
