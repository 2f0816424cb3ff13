package models

import (
	"strconv"
	"strings"
	"time"
)

// Exercise represents one movement logged within a workout
type Exercise struct {
	ID          int       `json:"id" db:"id"`
	WorkoutID   int       `json:"workout_id" db:"workout_id"`
	Name        string    `json:"name" db:"name"`
	Sets        int       `json:"sets" db:"sets"`
	Repetitions int       `json:"repetitions" db:"repetitions"`
	Weight      float64   `json:"weight" db:"weight"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// FormattedWeight renders the weight without trailing zeros
func (e *Exercise) FormattedWeight() string {
	return strconv.FormatFloat(e.Weight, 'f', -1, 64)
}

// ExerciseForm represents form data for adding an exercise.
// Numeric fields are kept as submitted so bad input can be reported.
type ExerciseForm struct {
	Name        string `json:"name"`
	Sets        string `json:"sets"`
	Repetitions string `json:"repetitions"`
	Weight      string `json:"weight"`
}

// Validate validates the exercise form and returns the parsed exercise
func (f *ExerciseForm) Validate() (Exercise, ValidationErrors) {
	var errs ValidationErrors
	exercise := Exercise{Name: strings.TrimSpace(f.Name)}

	if len(exercise.Name) < 2 {
		errs.Add("name", "Name is required and must be at least 2 characters long.")
	} else if !textPattern.MatchString(exercise.Name) {
		errs.Add("name", "Name must contain letters, numbers and basic characters only.")
	}

	sets, err := strconv.Atoi(strings.TrimSpace(f.Sets))
	if err != nil || sets < 1 {
		errs.Add("sets", "Sets must be a whole number of at least 1.")
	}
	exercise.Sets = sets

	reps, err := strconv.Atoi(strings.TrimSpace(f.Repetitions))
	if err != nil || reps < 1 {
		errs.Add("repetitions", "Repetitions must be a whole number of at least 1.")
	}
	exercise.Repetitions = reps

	weight := 0.0
	if w := strings.TrimSpace(f.Weight); w != "" {
		weight, err = strconv.ParseFloat(w, 64)
		if err != nil || weight < 0 {
			errs.Add("weight", "Weight must be a number of at least 0.")
		}
	}
	exercise.Weight = weight

	return exercise, errs
}
