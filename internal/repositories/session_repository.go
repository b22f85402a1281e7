package repositories

import (
	"errors"
	"time"

	"fitpro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(session *models.Session) error
	Update(session *models.Session) error
	FindByID(id uint) (*models.Session, error)
	// Finders return sessions newest-scheduled first.
	FindByMemberID(memberID uint) ([]models.Session, error)
	FindByTrainerID(trainerID uint) ([]models.Session, error)
	// Upcoming finders return future scheduled sessions, soonest first.
	FindUpcomingByMemberID(memberID uint) ([]models.Session, error)
	FindUpcomingByTrainerID(trainerID uint) ([]models.Session, error)
	// FindAll is the explicit whole-table read used by admin reporting.
	FindAll() ([]models.Session, error)
	UpdateStatus(id uint, status models.SessionStatus) error

	WithTx(tx *gorm.DB) SessionRepository
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) WithTx(tx *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: tx}
}

func (r *SessionRepositoryImpl) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

func (r *SessionRepositoryImpl) FindByID(id uint) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) FindByMemberID(memberID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("member_id = ?", memberID).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) FindByTrainerID(trainerID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("trainer_id = ?", trainerID).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) FindUpcomingByMemberID(memberID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("member_id = ? AND session_date > ? AND status = ?",
		memberID, time.Now(), models.SessionStatusScheduled).
		Order("session_date ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) FindUpcomingByTrainerID(trainerID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("trainer_id = ? AND session_date > ? AND status = ?",
		trainerID, time.Now(), models.SessionStatusScheduled).
		Order("session_date ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) FindAll() ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Order("session_date DESC").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) UpdateStatus(id uint, status models.SessionStatus) error {
	result := r.db.Model(&models.Session{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
