package dto

import "time"

type SaveMemberProfileRequest struct {
	Height            float64    `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight            float64    `json:"weight,omitempty" validate:"omitempty,gt=0"`
	FitnessGoals      string     `json:"fitness_goals,omitempty"`
	MedicalConditions string     `json:"medical_conditions,omitempty"`
	EmergencyContact  string     `json:"emergency_contact,omitempty"`
	EmergencyPhone    string     `json:"emergency_phone,omitempty"`
	MembershipType    string     `json:"membership_type,omitempty"`
	MembershipStart   *time.Time `json:"membership_start,omitempty"`
	MembershipEnd     *time.Time `json:"membership_end,omitempty"`
}

type SaveTrainerProfileRequest struct {
	Specializations string  `json:"specializations,omitempty"`
	Certifications  string  `json:"certifications,omitempty"`
	ExperienceYears int     `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	HourlyRate      float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	Bio             string  `json:"bio,omitempty"`
}
