package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is wrapped by repository errors when a row does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is wrapped when a unique constraint rejects a write
var ErrDuplicate = errors.New("already exists")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users     UserRepository
	Workouts  WorkoutRepository
	Exercises ExerciseRepository
	Audit     AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Workouts:  NewWorkoutRepository(db),
		Exercises: NewExerciseRepository(db),
		Audit:     NewAuditRepository(db),
	}
}
