package repositories

import (
	"errors"

	"fitpro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProgressRecordNotFound = errors.New("progress record not found")

type ProgressRepository interface {
	Save(record *models.ProgressRecord) error
	FindByID(id uint) (*models.ProgressRecord, error)
	// FindByMemberID returns a member's records newest first.
	FindByMemberID(memberID uint) ([]models.ProgressRecord, error)
}

type ProgressRepositoryImpl struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &ProgressRepositoryImpl{db: db}
}

func (r *ProgressRepositoryImpl) Save(record *models.ProgressRecord) error {
	if record.ID == 0 {
		return r.db.Create(record).Error
	}
	return r.db.Save(record).Error
}

func (r *ProgressRepositoryImpl) FindByID(id uint) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *ProgressRepositoryImpl) FindByMemberID(memberID uint) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	err := r.db.Where("member_id = ?", memberID).
		Order("record_date DESC").
		Find(&records).Error
	return records, err
}
