package services

import (
	"fmt"
	"time"

	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// bookingDateFormat mirrors the notification texts shown to users,
// e.g. "January 02, 2006 at 03:04 PM".
const bookingDateFormat = "January 02, 2006 at 03:04 PM"

type SessionService interface {
	// Book creates a scheduled session and both booking notifications
	// atomically. The requested time must be strictly in the future.
	Book(memberID uint, req *dto.BookSessionRequest) (*dto.SessionResponse, error)
	// Complete and Cancel are the only transitions out of "scheduled".
	Complete(sessionID uint) error
	Cancel(sessionID uint) error

	GetByID(sessionID uint) (*dto.SessionResponse, error)
	GetByMemberID(memberID uint) ([]*dto.SessionResponse, error)
	GetByTrainerID(trainerID uint) ([]*dto.SessionResponse, error)
	// GetUpcoming* back the dashboard counters: future scheduled
	// sessions only, soonest first.
	GetUpcomingByMemberID(memberID uint) ([]*dto.SessionResponse, error)
	GetUpcomingByTrainerID(trainerID uint) ([]*dto.SessionResponse, error)
	GetAll() ([]*dto.SessionResponse, error)
}

type SessionServiceImpl struct {
	db               *gorm.DB
	sessionRepo      repositories.SessionRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewSessionService(
	db *gorm.DB,
	sessionRepo repositories.SessionRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) SessionService {
	return &SessionServiceImpl{
		db:               db,
		sessionRepo:      sessionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *SessionServiceImpl) Book(memberID uint, req *dto.BookSessionRequest) (*dto.SessionResponse, error) {
	// Precondition of creation, not a state-machine transition.
	if !req.SessionDate.After(time.Now()) {
		return nil, apperrors.ErrInvalidOperation("session", "Session date must be in the future")
	}

	member, err := s.userRepo.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	trainer, err := s.userRepo.FindByID(req.TrainerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if trainer.Role != models.UserRoleTrainer || !trainer.IsActive {
		return nil, apperrors.ErrInvalidOperation("session", "Selected user is not an active trainer")
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = "training"
	}

	session := &models.Session{
		MemberID:    memberID,
		TrainerID:   req.TrainerID,
		SessionDate: req.SessionDate,
		Duration:    req.Duration,
		SessionType: sessionType,
		Status:      models.SessionStatusScheduled,
		Price:       req.Price,
		Notes:       req.Notes,
	}

	when := req.SessionDate.Format(bookingDateFormat)
	memberNotice := &models.Notification{
		UserID: memberID,
		Title:  "Session Booked",
		Message: fmt.Sprintf("Your %s session with %s has been scheduled for %s.",
			sessionType, trainer.FullName(), when),
		Type: "success",
	}
	trainerNotice := &models.Notification{
		UserID: req.TrainerID,
		Title:  "New Session Request",
		Message: fmt.Sprintf("%s has booked a %s session with you for %s.",
			member.FullName(), sessionType, when),
		Type: "info",
	}

	// The two notifications are a required side effect of booking, so
	// they commit or roll back together with the session row.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.sessionRepo.WithTx(tx).Create(session); err != nil {
			return err
		}
		notificationRepo := s.notificationRepo.WithTx(tx)
		if err := notificationRepo.Create(memberNotice); err != nil {
			return err
		}
		return notificationRepo.Create(trainerNotice)
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return dto.NewSessionResponse(session), nil
}

func (s *SessionServiceImpl) Complete(sessionID uint) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if session.Status.IsTerminal() {
		return apperrors.ErrInvalidStatus("session",
			fmt.Sprintf("Cannot complete a session in status %q", session.Status))
	}

	trainer, err := s.userRepo.FindByID(session.TrainerID)
	if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.DatabaseError(err)
	}

	sessionType := session.SessionType
	if sessionType == "" {
		sessionType = "training"
	}
	trainerName := "your trainer"
	if trainer != nil {
		trainerName = trainer.FullName()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.sessionRepo.WithTx(tx).UpdateStatus(sessionID, models.SessionStatusCompleted); err != nil {
			return err
		}
		return s.notificationRepo.WithTx(tx).Create(&models.Notification{
			UserID: session.MemberID,
			Title:  "Session Completed",
			Message: fmt.Sprintf("Your %s session with %s has been completed.",
				sessionType, trainerName),
			Type: "success",
		})
	})
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *SessionServiceImpl) Cancel(sessionID uint) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if session.Status.IsTerminal() {
		return apperrors.ErrInvalidStatus("session",
			fmt.Sprintf("Cannot cancel a session in status %q", session.Status))
	}

	if err := s.sessionRepo.UpdateStatus(sessionID, models.SessionStatusCancelled); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *SessionServiceImpl) GetByID(sessionID uint) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewSessionResponse(session), nil
}

func (s *SessionServiceImpl) GetByMemberID(memberID uint) ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindByMemberID(memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewSessionListResponse(sessions), nil
}

func (s *SessionServiceImpl) GetByTrainerID(trainerID uint) ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewSessionListResponse(sessions), nil
}

func (s *SessionServiceImpl) GetUpcomingByMemberID(memberID uint) ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindUpcomingByMemberID(memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewSessionListResponse(sessions), nil
}

func (s *SessionServiceImpl) GetUpcomingByTrainerID(trainerID uint) ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindUpcomingByTrainerID(trainerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewSessionListResponse(sessions), nil
}

// GetAll is the explicit whole-table read for admin reporting. The
// source approximated this by querying a sentinel trainer id.
func (s *SessionServiceImpl) GetAll() ([]*dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewSessionListResponse(sessions), nil
}
