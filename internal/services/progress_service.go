package services

import (
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProgressService interface {
	Record(memberID uint, req *dto.SaveProgressRequest) (*models.ProgressRecord, error)
	GetByMemberID(memberID uint) ([]models.ProgressRecord, error)
}

type ProgressServiceImpl struct {
	progressRepo repositories.ProgressRepository
	userRepo     repositories.UserRepository
}

func NewProgressService(
	progressRepo repositories.ProgressRepository,
	userRepo repositories.UserRepository,
) ProgressService {
	return &ProgressServiceImpl{
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

func (s *ProgressServiceImpl) Record(memberID uint, req *dto.SaveProgressRequest) (*models.ProgressRecord, error) {
	member, err := s.userRepo.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if member.Role != models.UserRoleMember {
		return nil, apperrors.ErrInvalidOperation("progress", "Progress records belong to members")
	}

	record := &models.ProgressRecord{
		MemberID:     memberID,
		RecordDate:   req.RecordDate,
		Weight:       req.Weight,
		BodyFat:      req.BodyFat,
		MuscleMass:   req.MuscleMass,
		Measurements: datatypes.JSON(req.Measurements),
		Notes:        req.Notes,
		PhotoPath:    req.PhotoPath,
	}
	if err := s.progressRepo.Save(record); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return record, nil
}

func (s *ProgressServiceImpl) GetByMemberID(memberID uint) ([]models.ProgressRecord, error) {
	records, err := s.progressRepo.FindByMemberID(memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return records, nil
}
