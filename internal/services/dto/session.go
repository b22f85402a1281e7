package dto

import (
	"time"

	"fitpro_backend/internal/models"
)

type BookSessionRequest struct {
	TrainerID   uint      `json:"trainer_id" validate:"required"`
	SessionDate time.Time `json:"session_date" validate:"required,futuredate"`
	Duration    int       `json:"duration" validate:"required,gt=0"`
	SessionType string    `json:"session_type,omitempty"`
	Price       float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Notes       string    `json:"notes,omitempty"`
}

type SessionResponse struct {
	ID          uint                 `json:"id"`
	MemberID    uint                 `json:"member_id"`
	TrainerID   uint                 `json:"trainer_id"`
	SessionDate time.Time            `json:"session_date"`
	Duration    int                  `json:"duration"`
	SessionType string               `json:"session_type,omitempty"`
	Status      models.SessionStatus `json:"status"`
	Price       float64              `json:"price,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func NewSessionResponse(session *models.Session) *SessionResponse {
	return &SessionResponse{
		ID:          session.ID,
		MemberID:    session.MemberID,
		TrainerID:   session.TrainerID,
		SessionDate: session.SessionDate,
		Duration:    session.Duration,
		SessionType: session.SessionType,
		Status:      session.Status,
		Price:       session.Price,
		Notes:       session.Notes,
		CreatedAt:   session.CreatedAt,
	}
}

func NewSessionListResponse(sessions []models.Session) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, NewSessionResponse(&sessions[i]))
	}
	return out
}
