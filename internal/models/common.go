package models

import "time"

// BaseModel is embedded by entities that carry a creation timestamp.
// Identifiers are monotonically-assigned integers.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
