package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/workout-tracker/models"
)

// WorkoutRepository interface defines workout database operations.
// Every lookup is scoped to the owning user.
type WorkoutRepository interface {
	GetAllByUser(ctx context.Context, userID int) ([]models.Workout, error)
	GetByID(ctx context.Context, userID, id int) (*models.Workout, error)
	Create(ctx context.Context, workout *models.Workout) error
	MarkCompleted(ctx context.Context, userID, id int) error
	Delete(ctx context.Context, userID, id int) error
	Stats(ctx context.Context, userID int) (*models.WorkoutStats, error)
}

// workoutRepository implements WorkoutRepository interface
type workoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *sql.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// GetAllByUser retrieves a user's workouts, newest first
func (r *workoutRepository) GetAllByUser(ctx context.Context, userID int) ([]models.Workout, error) {
	query := `
		SELECT w.id, w.user_id, w.name, w.description, w.completed, w.created_at, w.updated_at,
		       COUNT(e.id) AS exercise_count
		FROM workouts w
		LEFT JOIN exercises e ON e.workout_id = w.id
		WHERE w.user_id = ?
		GROUP BY w.id
		ORDER BY w.created_at DESC, w.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var workout models.Workout
		err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.Name,
			&workout.Description,
			&workout.Completed,
			&workout.CreatedAt,
			&workout.UpdatedAt,
			&workout.ExerciseCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, workout)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workouts: %w", err)
	}

	return workouts, nil
}

// GetByID retrieves one of the user's workouts
func (r *workoutRepository) GetByID(ctx context.Context, userID, id int) (*models.Workout, error) {
	query := `
		SELECT id, user_id, name, description, completed, created_at, updated_at
		FROM workouts
		WHERE id = ? AND user_id = ?
	`

	var workout models.Workout
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Name,
		&workout.Description,
		&workout.Completed,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return &workout, nil
}

// Create creates a new workout
func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	query := `
		INSERT INTO workouts (user_id, name, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		workout.UserID,
		workout.Name,
		workout.Description,
		workout.Completed,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	workout.ID = int(id)
	workout.CreatedAt = now
	workout.UpdatedAt = now
	return nil
}

// MarkCompleted ends a workout
func (r *workoutRepository) MarkCompleted(ctx context.Context, userID, id int) error {
	query := `
		UPDATE workouts
		SET completed = 1, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id, userID)
	if err != nil {
		return fmt.Errorf("failed to complete workout: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("workout with ID %d", id))
}

// Delete deletes a workout; its exercises go with it
func (r *workoutRepository) Delete(ctx context.Context, userID, id int) error {
	query := `DELETE FROM workouts WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	return expectOneRow(result, fmt.Sprintf("workout with ID %d", id))
}

// Stats counts the user's workouts and exercises
func (r *workoutRepository) Stats(ctx context.Context, userID int) (*models.WorkoutStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0),
		       (SELECT COUNT(*) FROM exercises e JOIN workouts w2 ON w2.id = e.workout_id WHERE w2.user_id = ?)
		FROM workouts
		WHERE user_id = ?
	`

	var stats models.WorkoutStats
	err := r.db.QueryRowContext(ctx, query, userID, userID).Scan(
		&stats.Total,
		&stats.Completed,
		&stats.Exercises,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count workouts: %w", err)
	}

	stats.Active = stats.Total - stats.Completed
	return &stats, nil
}

// expectOneRow turns a zero-row write into ErrNotFound
func expectOneRow(result sql.Result, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	return nil
}
