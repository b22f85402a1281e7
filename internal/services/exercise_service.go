package services

import (
	"fitpro_backend/internal/models"
	"fitpro_backend/internal/repositories"
	"fitpro_backend/internal/services/dto"
	"fitpro_backend/pkg/apperrors"
)

type ExerciseService interface {
	Create(req *dto.SaveExerciseRequest) (*models.Exercise, error)
	Update(exerciseID uint, req *dto.SaveExerciseRequest) (*models.Exercise, error)
	GetByID(exerciseID uint) (*models.Exercise, error)
	GetAll() ([]models.Exercise, error)
	SearchByCategory(category string) ([]models.Exercise, error)
}

type ExerciseServiceImpl struct {
	exerciseRepo repositories.ExerciseRepository
}

func NewExerciseService(exerciseRepo repositories.ExerciseRepository) ExerciseService {
	return &ExerciseServiceImpl{exerciseRepo: exerciseRepo}
}

func (s *ExerciseServiceImpl) Create(req *dto.SaveExerciseRequest) (*models.Exercise, error) {
	exercise := &models.Exercise{
		Name:            req.Name,
		Category:        req.Category,
		MuscleGroups:    req.MuscleGroups,
		Equipment:       req.Equipment,
		Instructions:    req.Instructions,
		DifficultyLevel: req.DifficultyLevel,
		ImagePath:       req.ImagePath,
	}
	if err := s.exerciseRepo.Save(exercise); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return exercise, nil
}

func (s *ExerciseServiceImpl) Update(exerciseID uint, req *dto.SaveExerciseRequest) (*models.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(exerciseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExerciseNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	exercise.Name = req.Name
	exercise.Category = req.Category
	exercise.MuscleGroups = req.MuscleGroups
	exercise.Equipment = req.Equipment
	exercise.Instructions = req.Instructions
	exercise.DifficultyLevel = req.DifficultyLevel
	exercise.ImagePath = req.ImagePath

	if err := s.exerciseRepo.Save(exercise); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return exercise, nil
}

func (s *ExerciseServiceImpl) GetByID(exerciseID uint) (*models.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(exerciseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExerciseNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return exercise, nil
}

func (s *ExerciseServiceImpl) GetAll() ([]models.Exercise, error) {
	exercises, err := s.exerciseRepo.FindAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return exercises, nil
}

func (s *ExerciseServiceImpl) SearchByCategory(category string) ([]models.Exercise, error) {
	exercises, err := s.exerciseRepo.SearchByCategory(category)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return exercises, nil
}
