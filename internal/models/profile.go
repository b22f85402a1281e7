package models

import "time"

// MemberProfile is the 1:1 extension of a member user.
// An empty row is created at registration and upserted on save.
type MemberProfile struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Height            float64    `json:"height,omitempty"`
	Weight            float64    `json:"weight,omitempty"`
	FitnessGoals      string     `json:"fitness_goals,omitempty"`
	MedicalConditions string     `json:"medical_conditions,omitempty"`
	EmergencyContact  string     `json:"emergency_contact,omitempty"`
	EmergencyPhone    string     `json:"emergency_phone,omitempty"`
	MembershipType    string     `json:"membership_type,omitempty"`
	MembershipStart   *time.Time `json:"membership_start,omitempty"`
	MembershipEnd     *time.Time `json:"membership_end,omitempty"`
}

// TrainerProfile is the 1:1 extension of a trainer user.
type TrainerProfile struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Specializations string  `json:"specializations,omitempty"`
	Certifications  string  `json:"certifications,omitempty"`
	ExperienceYears int     `json:"experience_years,omitempty"`
	HourlyRate      float64 `json:"hourly_rate,omitempty"`
	Bio             string  `json:"bio,omitempty"`
}
