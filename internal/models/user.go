package models

import "time"

// User is the identity record shared by members, trainers and admins.
// Users are never hard-deleted; deactivation flips IsActive.
type User struct {
	BaseModel
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"column:user_type;type:varchar(20);not null" json:"user_type"`
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `gorm:"not null" json:"last_name"`
	Phone        string     `json:"phone,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`

	// Relations
	MemberProfile  *MemberProfile  `gorm:"foreignKey:UserID" json:"member_profile,omitempty"`
	TrainerProfile *TrainerProfile `gorm:"foreignKey:UserID" json:"trainer_profile,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
