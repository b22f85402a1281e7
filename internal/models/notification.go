package models

// Notification is addressed to exactly one user. Broadcasts materialize
// one row per addressed user, never a shared row.
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"not null" json:"message"`
	Type    string `json:"type,omitempty"` // "info", "success", "admin", ...
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
