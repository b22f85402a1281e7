package models

type UserRole string
type SessionStatus string
type EnrollmentStatus string
type BroadcastAudience string

const (
	UserRoleMember  UserRole = "member"
	UserRoleTrainer UserRole = "trainer"
	UserRoleAdmin   UserRole = "admin"

	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"

	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"

	AudienceAll      BroadcastAudience = "all"
	AudienceMembers  BroadcastAudience = "members"
	AudienceTrainers BroadcastAudience = "trainers"
)

// ValidRole reports whether the role belongs to the closed role set.
func ValidRole(r UserRole) bool {
	return r == UserRoleMember || r == UserRoleTrainer || r == UserRoleAdmin
}

// IsTerminal reports whether a session status admits no further transitions.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}
