package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ExerciseEntry is a denormalized snapshot of one exercise inside a
// workout plan. Values are kept as entered (strings), matching the
// catalog state at authoring time.
type ExerciseEntry struct {
	Name   string `json:"name"`
	Sets   string `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight,omitempty"`
	Rest   string `json:"rest,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Workout is a plan owned by a member and authored by a trainer (or the
// member themselves). The exercise list is serialized into a structured
// JSON column on every save/load round trip.
type Workout struct {
	BaseModel
	MemberID    uint           `gorm:"not null;index" json:"member_id"`
	TrainerID   uint           `gorm:"index" json:"trainer_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description,omitempty"`
	Exercises   datatypes.JSON `gorm:"column:exercises" json:"exercises"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
}

// SetExercises serializes the entry list into the storage column.
// An empty or nil list is stored as "[]", never as null.
func (w *Workout) SetExercises(entries []ExerciseEntry) error {
	if entries == nil {
		entries = []ExerciseEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	w.Exercises = datatypes.JSON(raw)
	return nil
}

// ExerciseList deserializes the storage column back into entries.
// Missing or empty data yields an empty list.
func (w *Workout) ExerciseList() ([]ExerciseEntry, error) {
	if len(w.Exercises) == 0 {
		return []ExerciseEntry{}, nil
	}
	var entries []ExerciseEntry
	if err := json.Unmarshal(w.Exercises, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []ExerciseEntry{}
	}
	return entries, nil
}
