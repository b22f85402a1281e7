package services

import (
	"fitpro_backend/internal/logger"
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(userID uint) (*dto.UserResponse, error)
	GetAllByRole(role models.UserRole) ([]*dto.UserResponse, error)
	CountByRole(role models.UserRole) (int64, error)
	Update(userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	// Deactivate retires the account; historical rows keep pointing at
	// it and stay readable by id.
	Deactivate(userID uint) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) GetAllByRole(role models.UserRole) ([]*dto.UserResponse, error) {
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	users, err := s.userRepo.FindAllByRole(role)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

func (s *UserServiceImpl) CountByRole(role models.UserRole) (int64, error) {
	if !models.ValidRole(role) {
		return 0, apperrors.ErrInvalidUserRole
	}
	count, err := s.userRepo.CountByRole(role)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

func (s *UserServiceImpl) Update(userID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
			return nil, apperrors.ErrEmailAlreadyExists
		} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) Deactivate(userID uint) error {
	if err := s.userRepo.Deactivate(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	logger.Info("user deactivated", "user_id", userID)
	return nil
}
