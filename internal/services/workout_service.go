package services

import (
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"
)

type WorkoutService interface {
	// Create authors a plan for a member. authorID is the trainer, or
	// the member themselves for self-authored plans.
	Create(authorID uint, req *dto.SaveWorkoutRequest) (*dto.WorkoutResponse, error)
	Update(workoutID uint, req *dto.SaveWorkoutRequest) (*dto.WorkoutResponse, error)
	GetByID(workoutID uint) (*dto.WorkoutResponse, error)
	GetByMemberID(memberID uint) ([]*dto.WorkoutResponse, error)
	GetByTrainerID(trainerID uint) ([]*dto.WorkoutResponse, error)
	Deactivate(workoutID uint) error
}

type WorkoutServiceImpl struct {
	workoutRepo repositories.WorkoutRepository
	userRepo    repositories.UserRepository
}

func NewWorkoutService(
	workoutRepo repositories.WorkoutRepository,
	userRepo repositories.UserRepository,
) WorkoutService {
	return &WorkoutServiceImpl{
		workoutRepo: workoutRepo,
		userRepo:    userRepo,
	}
}

func (s *WorkoutServiceImpl) Create(authorID uint, req *dto.SaveWorkoutRequest) (*dto.WorkoutResponse, error) {
	member, err := s.userRepo.FindByID(req.MemberID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	if member.Role != models.UserRoleMember {
		return nil, apperrors.ErrInvalidOperation("workout", "Workouts can only be assigned to members")
	}

	workout := &models.Workout{
		MemberID:    req.MemberID,
		TrainerID:   authorID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := workout.SetExercises(req.Exercises); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.workoutRepo.Save(workout); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.toResponse(workout)
}

func (s *WorkoutServiceImpl) Update(workoutID uint, req *dto.SaveWorkoutRequest) (*dto.WorkoutResponse, error) {
	workout, err := s.workoutRepo.FindByID(workoutID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkoutNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	workout.Name = req.Name
	workout.Description = req.Description
	if err := workout.SetExercises(req.Exercises); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.workoutRepo.Save(workout); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.toResponse(workout)
}

func (s *WorkoutServiceImpl) GetByID(workoutID uint) (*dto.WorkoutResponse, error) {
	workout, err := s.workoutRepo.FindByID(workoutID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkoutNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return s.toResponse(workout)
}

func (s *WorkoutServiceImpl) GetByMemberID(memberID uint) ([]*dto.WorkoutResponse, error) {
	workouts, err := s.workoutRepo.FindByMemberID(memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.toResponseList(workouts)
}

func (s *WorkoutServiceImpl) GetByTrainerID(trainerID uint) ([]*dto.WorkoutResponse, error) {
	workouts, err := s.workoutRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.toResponseList(workouts)
}

func (s *WorkoutServiceImpl) Deactivate(workoutID uint) error {
	if err := s.workoutRepo.Deactivate(workoutID); err != nil {
		if apperrors.Is(err, repositories.ErrWorkoutNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *WorkoutServiceImpl) toResponse(workout *models.Workout) (*dto.WorkoutResponse, error) {
	resp, err := dto.NewWorkoutResponse(workout)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resp, nil
}

func (s *WorkoutServiceImpl) toResponseList(workouts []models.Workout) ([]*dto.WorkoutResponse, error) {
	out := make([]*dto.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		resp, err := s.toResponse(&workouts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
