package dto

import "fitpro_backend/internal/models"

type BroadcastRequest struct {
	Title    string                   `json:"title" validate:"required"`
	Message  string                   `json:"message" validate:"required"`
	Audience models.BroadcastAudience `json:"audience" validate:"required,oneof=all members trainers"`
}

type BroadcastResponse struct {
	Recipients int `json:"recipients"`
}

type UnreadCountResponse struct {
	Count int64 `json:"unread_count"`
}
