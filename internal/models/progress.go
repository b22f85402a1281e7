package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProgressRecord is a dated snapshot of a member's measurements,
// consumed by the reporting/export path.
type ProgressRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	MemberID     uint           `gorm:"not null;index" json:"member_id"`
	RecordDate   time.Time      `gorm:"not null" json:"record_date"`
	Weight       float64        `json:"weight,omitempty"`
	BodyFat      float64        `json:"body_fat,omitempty"`
	MuscleMass   float64        `json:"muscle_mass,omitempty"`
	Measurements datatypes.JSON `json:"measurements,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	PhotoPath    string         `json:"photo_path,omitempty"`
}
