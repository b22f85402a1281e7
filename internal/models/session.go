package models

import "time"

// Session is a scheduled engagement between one member and one trainer.
// Status moves scheduled -> completed or scheduled -> cancelled; the two
// terminal states admit no further transitions.
type Session struct {
	BaseModel
	MemberID    uint          `gorm:"not null;index" json:"member_id"`
	TrainerID   uint          `gorm:"not null;index" json:"trainer_id"`
	SessionDate time.Time     `gorm:"not null" json:"session_date"`
	Duration    int           `json:"duration"` // minutes
	SessionType string        `json:"session_type,omitempty"`
	Status      SessionStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Price       float64       `json:"price,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}
