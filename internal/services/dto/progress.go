package dto

import (
	"encoding/json"
	"time"

	"fitpro_backend/internal/models"
)

type SaveProgressRequest struct {
	RecordDate   time.Time       `json:"record_date" validate:"required"`
	Weight       float64         `json:"weight,omitempty" validate:"omitempty,gt=0"`
	BodyFat      float64         `json:"body_fat,omitempty" validate:"omitempty,gt=0"`
	MuscleMass   float64         `json:"muscle_mass,omitempty" validate:"omitempty,gt=0"`
	Measurements json.RawMessage `json:"measurements,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	PhotoPath    string          `json:"photo_path,omitempty"`
}

// Report DTOs are read-only snapshots handed to an external document
// generator (e.g. a PDF exporter).

type MemberReport struct {
	User            *UserResponse           `json:"user"`
	Profile         *models.MemberProfile   `json:"profile,omitempty"`
	Workouts        []*WorkoutResponse      `json:"workouts"`
	ProgressRecords []models.ProgressRecord `json:"progress_records"`
}

type TrainerReport struct {
	User     *UserResponse          `json:"user"`
	Profile  *models.TrainerProfile `json:"profile,omitempty"`
	Clients  []*UserResponse        `json:"clients"`
	Sessions []*SessionResponse     `json:"sessions"`
}
