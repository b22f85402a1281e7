package services

import (
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"
)

type ProfileService interface {
	// Save* upsert by user id: first call creates the row, later calls
	// overwrite it.
	SaveMemberProfile(userID uint, req *dto.SaveMemberProfileRequest) (*models.MemberProfile, error)
	SaveTrainerProfile(userID uint, req *dto.SaveTrainerProfileRequest) (*models.TrainerProfile, error)
	GetMemberProfile(userID uint) (*models.MemberProfile, error)
	GetTrainerProfile(userID uint) (*models.TrainerProfile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) SaveMemberProfile(userID uint, req *dto.SaveMemberProfileRequest) (*models.MemberProfile, error) {
	if err := s.requireRole(userID, models.UserRoleMember); err != nil {
		return nil, err
	}

	profile := &models.MemberProfile{
		UserID:            userID,
		Height:            req.Height,
		Weight:            req.Weight,
		FitnessGoals:      req.FitnessGoals,
		MedicalConditions: req.MedicalConditions,
		EmergencyContact:  req.EmergencyContact,
		EmergencyPhone:    req.EmergencyPhone,
		MembershipType:    req.MembershipType,
		MembershipStart:   req.MembershipStart,
		MembershipEnd:     req.MembershipEnd,
	}
	if err := s.profileRepo.SaveMemberProfile(profile); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) SaveTrainerProfile(userID uint, req *dto.SaveTrainerProfileRequest) (*models.TrainerProfile, error) {
	if err := s.requireRole(userID, models.UserRoleTrainer); err != nil {
		return nil, err
	}

	profile := &models.TrainerProfile{
		UserID:          userID,
		Specializations: req.Specializations,
		Certifications:  req.Certifications,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Bio:             req.Bio,
	}
	if err := s.profileRepo.SaveTrainerProfile(profile); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return profile, nil
}

// GetMemberProfile returns an empty profile carrying only the user id
// when none has been saved yet, so callers always get a renderable
// record.
func (s *ProfileServiceImpl) GetMemberProfile(userID uint) (*models.MemberProfile, error) {
	profile, err := s.profileRepo.FindMemberProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return &models.MemberProfile{UserID: userID}, nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetTrainerProfile(userID uint) (*models.TrainerProfile, error) {
	profile, err := s.profileRepo.FindTrainerProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return &models.TrainerProfile{UserID: userID}, nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) requireRole(userID uint, role models.UserRole) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if user.Role != role {
		return apperrors.ErrInvalidOperation("profile",
			"Profile kind does not match the user's role")
	}
	return nil
}
