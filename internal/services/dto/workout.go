package dto

import (
	"time"

	"fitpro_backend/internal/models"
)

type SaveWorkoutRequest struct {
	MemberID    uint                   `json:"member_id" validate:"required"`
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description,omitempty"`
	Exercises   []models.ExerciseEntry `json:"exercises"`
}

// WorkoutResponse carries the deserialized exercise snapshot list; an
// empty plan is an empty list, never null.
type WorkoutResponse struct {
	ID          uint                   `json:"id"`
	MemberID    uint                   `json:"member_id"`
	TrainerID   uint                   `json:"trainer_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Exercises   []models.ExerciseEntry `json:"exercises"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   time.Time              `json:"created_at"`
}

func NewWorkoutResponse(workout *models.Workout) (*WorkoutResponse, error) {
	entries, err := workout.ExerciseList()
	if err != nil {
		return nil, err
	}
	return &WorkoutResponse{
		ID:          workout.ID,
		MemberID:    workout.MemberID,
		TrainerID:   workout.TrainerID,
		Name:        workout.Name,
		Description: workout.Description,
		Exercises:   entries,
		IsActive:    workout.IsActive,
		CreatedAt:   workout.CreatedAt,
	}, nil
}

type SaveExerciseRequest struct {
	Name            string `json:"name" validate:"required"`
	Category        string `json:"category,omitempty"`
	MuscleGroups    string `json:"muscle_groups,omitempty"`
	Equipment       string `json:"equipment,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	ImagePath       string `json:"image_path,omitempty"`
}
