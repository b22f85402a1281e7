package services

import (
	"encoding/json"

	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ClassService interface {
	Create(req *dto.SaveClassRequest) (*models.FitnessClass, error)
	Update(classID uint, req *dto.SaveClassRequest) (*models.FitnessClass, error)
	GetByID(classID uint) (*models.FitnessClass, error)
	GetAllActive() ([]models.FitnessClass, error)
	GetByTrainerID(trainerID uint) ([]models.FitnessClass, error)
	Deactivate(classID uint) error
	Enroll(memberID, classID uint) (*models.ClassEnrollment, error)
	GetEnrollments(classID uint) ([]models.ClassEnrollment, error)
}

type ClassServiceImpl struct {
	classRepo repositories.ClassRepository
	userRepo  repositories.UserRepository
}

func NewClassService(
	classRepo repositories.ClassRepository,
	userRepo repositories.UserRepository,
) ClassService {
	return &ClassServiceImpl{
		classRepo: classRepo,
		userRepo:  userRepo,
	}
}

func (s *ClassServiceImpl) Create(req *dto.SaveClassRequest) (*models.FitnessClass, error) {
	if err := s.validateTrainer(req.TrainerID); err != nil {
		return nil, err
	}
	schedule, err := scheduleColumn(req.Schedule)
	if err != nil {
		return nil, err
	}

	class := &models.FitnessClass{
		Name:        req.Name,
		Description: req.Description,
		TrainerID:   req.TrainerID,
		Schedule:    schedule,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    true,
	}
	if err := s.classRepo.Save(class); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return class, nil
}

func (s *ClassServiceImpl) Update(classID uint, req *dto.SaveClassRequest) (*models.FitnessClass, error) {
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClassNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if err := s.validateTrainer(req.TrainerID); err != nil {
		return nil, err
	}
	schedule, err := scheduleColumn(req.Schedule)
	if err != nil {
		return nil, err
	}

	class.Name = req.Name
	class.Description = req.Description
	class.TrainerID = req.TrainerID
	class.Schedule = schedule
	class.Capacity = req.Capacity
	class.Price = req.Price
	class.Duration = req.Duration

	if err := s.classRepo.Save(class); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return class, nil
}

func (s *ClassServiceImpl) GetByID(classID uint) (*models.FitnessClass, error) {
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClassNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return class, nil
}

func (s *ClassServiceImpl) GetAllActive() ([]models.FitnessClass, error) {
	classes, err := s.classRepo.FindAllActive()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return classes, nil
}

func (s *ClassServiceImpl) GetByTrainerID(trainerID uint) ([]models.FitnessClass, error) {
	classes, err := s.classRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return classes, nil
}

func (s *ClassServiceImpl) Deactivate(classID uint) error {
	if err := s.classRepo.Deactivate(classID); err != nil {
		if apperrors.Is(err, repositories.ErrClassNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *ClassServiceImpl) Enroll(memberID, classID uint) (*models.ClassEnrollment, error) {
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClassNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !class.IsActive {
		return nil, apperrors.ErrInvalidOperation("class", "Cannot enroll in an inactive class")
	}

	member, err := s.userRepo.FindByID(memberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if member.Role != models.UserRoleMember {
		return nil, apperrors.ErrInvalidOperation("class", "Only members can enroll in classes")
	}

	enrollments, err := s.classRepo.FindEnrollmentsByClassID(classID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	active := 0
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusActive {
			if e.MemberID == memberID {
				return nil, apperrors.ErrConflict(nil, "class", "Member is already enrolled in this class")
			}
			active++
		}
	}
	if class.Capacity > 0 && active >= class.Capacity {
		return nil, apperrors.ErrInvalidOperation("class", "Class is full")
	}

	enrollment := &models.ClassEnrollment{
		ClassID:  classID,
		MemberID: memberID,
		Status:   models.EnrollmentStatusActive,
	}
	if err := s.classRepo.Enroll(enrollment); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return enrollment, nil
}

func (s *ClassServiceImpl) GetEnrollments(classID uint) ([]models.ClassEnrollment, error) {
	if _, err := s.classRepo.FindByID(classID); err != nil {
		if apperrors.Is(err, repositories.ErrClassNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	enrollments, err := s.classRepo.FindEnrollmentsByClassID(classID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return enrollments, nil
}

// scheduleColumn guards the Schedule column's contract: it holds valid
// JSON or nothing.
func scheduleColumn(raw json.RawMessage) (datatypes.JSON, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, apperrors.NewBadRequestError("Schedule must be valid JSON")
	}
	return datatypes.JSON(raw), nil
}

func (s *ClassServiceImpl) validateTrainer(trainerID *uint) error {
	if trainerID == nil {
		return nil
	}
	trainer, err := s.userRepo.FindByID(*trainerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	if trainer.Role != models.UserRoleTrainer {
		return apperrors.ErrInvalidOperation("class", "Assigned user is not a trainer")
	}
	return nil
}
