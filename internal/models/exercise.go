package models

// Exercise is a catalog entry. Workout entries reference exercises by
// name, not by id, so later catalog edits never rewrite past workouts.
type Exercise struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Category        string `json:"category,omitempty"`
	MuscleGroups    string `json:"muscle_groups,omitempty"`
	Equipment       string `json:"equipment,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	ImagePath       string `json:"image_path,omitempty"`
}
