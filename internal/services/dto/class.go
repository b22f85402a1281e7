package dto

import "encoding/json"

type SaveClassRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	TrainerID   *uint           `json:"trainer_id,omitempty"`
	Schedule    json.RawMessage `json:"schedule,omitempty"`
	Capacity    int             `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Price       float64         `json:"price,omitempty" validate:"omitempty,gt=0"`
	Duration    int             `json:"duration,omitempty" validate:"omitempty,gt=0"`
}

type EnrollRequest struct {
	ClassID uint `json:"class_id" validate:"required"`
}
