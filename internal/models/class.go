package models

import (
	"time"

	"gorm.io/datatypes"
)

// FitnessClass is a trainer-led recurring class. The schedule descriptor
// is structured text, as in the source schema.
type FitnessClass struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description,omitempty"`
	TrainerID   *uint          `gorm:"index" json:"trainer_id,omitempty"`
	Schedule    datatypes.JSON `json:"schedule,omitempty"`
	Capacity    int            `json:"capacity,omitempty"`
	Price       float64        `json:"price,omitempty"`
	Duration    int            `json:"duration,omitempty"` // minutes
	IsActive    bool           `gorm:"default:true" json:"is_active"`
}

func (FitnessClass) TableName() string {
	return "classes"
}

// ClassEnrollment links a member to a class. Storage only; no business
// logic beyond creation is exercised.
type ClassEnrollment struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	ClassID        uint             `gorm:"not null;index" json:"class_id"`
	MemberID       uint             `gorm:"not null;index" json:"member_id"`
	EnrollmentDate time.Time        `gorm:"autoCreateTime" json:"enrollment_date"`
	Status         EnrollmentStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
}
