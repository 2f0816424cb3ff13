package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/workout-tracker/models"
)

// ExerciseRepository interface defines exercise database operations
type ExerciseRepository interface {
	GetByWorkout(ctx context.Context, workoutID int) ([]models.Exercise, error)
	Create(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, workoutID, id int) error
}

// exerciseRepository implements ExerciseRepository interface
type exerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *sql.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// GetByWorkout retrieves a workout's exercises in the order they were logged
func (r *exerciseRepository) GetByWorkout(ctx context.Context, workoutID int) ([]models.Exercise, error) {
	query := `
		SELECT id, workout_id, name, sets, repetitions, weight, created_at
		FROM exercises
		WHERE workout_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var exercise models.Exercise
		err := rows.Scan(
			&exercise.ID,
			&exercise.WorkoutID,
			&exercise.Name,
			&exercise.Sets,
			&exercise.Repetitions,
			&exercise.Weight,
			&exercise.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}

// Create creates a new exercise
func (r *exerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	query := `
		INSERT INTO exercises (workout_id, name, sets, repetitions, weight, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		exercise.WorkoutID,
		exercise.Name,
		exercise.Sets,
		exercise.Repetitions,
		exercise.Weight,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	exercise.ID = int(id)
	exercise.CreatedAt = now
	return nil
}

// Delete deletes an exercise belonging to workoutID
func (r *exerciseRepository) Delete(ctx context.Context, workoutID, id int) error {
	query := `DELETE FROM exercises WHERE id = ? AND workout_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, workoutID)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("exercise with ID %d", id))
}
