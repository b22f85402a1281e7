package repositories

import (
	"errors"

	"fitpro_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository stores the 1:1 role extensions. Saves are true
// upserts keyed by user_id, unlike the id-presence-driven saves of the
// other repositories.
type ProfileRepository interface {
	SaveMemberProfile(profile *models.MemberProfile) error
	FindMemberProfileByUserID(userID uint) (*models.MemberProfile, error)
	SaveTrainerProfile(profile *models.TrainerProfile) error
	FindTrainerProfileByUserID(userID uint) (*models.TrainerProfile, error)

	WithTx(tx *gorm.DB) ProfileRepository
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) WithTx(tx *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: tx}
}

func (r *ProfileRepositoryImpl) SaveMemberProfile(profile *models.MemberProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindMemberProfileByUserID(userID uint) (*models.MemberProfile, error) {
	var profile models.MemberProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SaveTrainerProfile(profile *models.TrainerProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindTrainerProfileByUserID(userID uint) (*models.TrainerProfile, error) {
	var profile models.TrainerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
