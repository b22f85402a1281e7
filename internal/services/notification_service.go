package services

import (
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"
)

type NotificationService interface {
	Create(userID uint, title, message, notificationType string) (*models.Notification, error)
	GetUserNotifications(userID uint, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(userID, notificationID uint) error
	MarkAllAsRead(userID uint) error
	UnreadCount(userID uint) (int64, error)

	// Broadcast fans one (title, message) pair out to the computed
	// audience, one row per addressed user, in a single transaction.
	Broadcast(req *dto.BroadcastRequest) (int, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *notificationService) Create(userID uint, title, message, notificationType string) (*models.Notification, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if notificationType == "" {
		notificationType = "info"
	}

	notification := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		IsRead:  false,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return notification, nil
}

func (s *notificationService) GetUserNotifications(userID uint, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUserID(userID, unreadOnly)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkAsRead(userID, notificationID uint) error {
	notifications, err := s.notificationRepo.FindByUserID(userID, false)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	owned := false
	for _, n := range notifications {
		if n.ID == notificationID {
			owned = true
			break
		}
	}
	if !owned {
		return apperrors.ErrNotFound(repositories.ErrNotificationNotFound)
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID uint) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(userID uint) (int64, error) {
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *notificationService) Broadcast(req *dto.BroadcastRequest) (int, error) {
	audience, err := s.resolveAudience(req.Audience)
	if err != nil {
		return 0, err
	}

	notifications := make([]*models.Notification, 0, len(audience))
	for _, user := range audience {
		notifications = append(notifications, &models.Notification{
			UserID:  user.ID,
			Title:   req.Title,
			Message: req.Message,
			Type:    "admin",
			IsRead:  false,
		})
	}

	// All rows commit together; a mid-fan-out failure leaves no
	// partial audience behind.
	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return len(notifications), nil
}

func (s *notificationService) resolveAudience(audience models.BroadcastAudience) ([]models.User, error) {
	var roles []models.UserRole
	switch audience {
	case models.AudienceMembers:
		roles = []models.UserRole{models.UserRoleMember}
	case models.AudienceTrainers:
		roles = []models.UserRole{models.UserRoleTrainer}
	case models.AudienceAll:
		roles = []models.UserRole{models.UserRoleMember, models.UserRoleTrainer, models.UserRoleAdmin}
	default:
		return nil, apperrors.ErrInvalidOperation("notification", "Unknown broadcast audience")
	}

	var users []models.User
	for _, role := range roles {
		found, err := s.userRepo.FindAllByRole(role)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		users = append(users, found...)
	}
	return users, nil
}
