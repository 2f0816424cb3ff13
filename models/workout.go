package models

import (
	"strings"
	"time"
)

// Workout represents a training session owned by a user
type Workout struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Populated from the exercises table
	ExerciseCount int `json:"exercise_count,omitempty" db:"exercise_count"`
}

// Status returns a readable status for templates
func (w *Workout) Status() string {
	if w.Completed {
		return "Completed"
	}
	return "In progress"
}

// WorkoutForm represents form data for creating a workout
type WorkoutForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate validates the workout form data
func (f *WorkoutForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if len(f.Name) < 2 {
		errs.Add("name", "Name is required and must be at least 2 characters long.")
	}
	if len(f.Name) > 50 {
		errs.Add("name", "Name must be less than 50 characters.")
	}
	if !textPattern.MatchString(f.Name) {
		errs.Add("name", "Name must contain letters, numbers and basic characters only.")
	}

	if len(f.Description) < 2 {
		errs.Add("description", "Description is required and must be at least 2 characters long.")
	}
	if len(f.Description) > 150 {
		errs.Add("description", "Description must be less than 150 characters.")
	}
	if !textPattern.MatchString(f.Description) {
		errs.Add("description", "Description must contain letters, numbers and basic characters only.")
	}

	return errs
}

// Normalize trims surrounding whitespace
func (f *WorkoutForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
}

// WorkoutDetail is a workout together with its exercises
type WorkoutDetail struct {
	Workout   Workout
	Exercises []Exercise
}

// WorkoutStats summarises a user's training for the dashboard
type WorkoutStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Exercises int `json:"exercises"`
}
