package services

import (
	"fitpro_backend/internal/auth"
	"fitpro_backend/internal/email"
	"fitpro_backend/internal/logger"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(userID uint, req *dto.ChangePasswordRequest) error
	ResetPassword(req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	db            *gorm.DB
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewAuthService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// Register creates a user plus the role-matching empty extension
// profile in one transaction. A partial user-without-profile row never
// persists.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	// Pre-checks; the unique constraints remain the backstop.
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.DatabaseError(err)
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		switch req.Role {
		case models.UserRoleMember:
			return s.profileRepo.WithTx(tx).SaveMemberProfile(&models.MemberProfile{UserID: user.ID})
		case models.UserRoleTrainer:
			return s.profileRepo.WithTx(tx).SaveTrainerProfile(&models.TrainerProfile{UserID: user.ID})
		default:
			// Admins carry no extension profile.
			return nil
		}
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("user registered", "username", user.Username, "role", user.Role)
	return dto.NewUserResponse(user), nil
}

// Login authenticates by username and password. Unknown username and
// wrong password yield the same failure signal.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.NewUserResponse(user),
	}, nil
}

// ChangePassword re-verifies the current password before overwriting.
func (s *AuthServiceImpl) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

// ResetPassword overwrites the hash for an email unconditionally. This
// is a privileged (admin) path.
func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(req.Email, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}

	// Best-effort notice; a mail failure must not fail the reset.
	notice := &email.Message{
		To:      req.Email,
		Subject: "Your password has been reset",
		Body:    "An administrator has reset your FitPro account password. If you did not request this, contact the front desk.",
	}
	if err := s.emailProvider.Send(notice); err != nil {
		logger.WithError(err).Warn("failed to send password reset notice", "email", req.Email)
	}

	return nil
}
