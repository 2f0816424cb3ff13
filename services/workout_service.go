package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/repositories"
)

// ErrWorkoutCompleted is returned when a completed workout is changed
var ErrWorkoutCompleted = errors.New("workout is already completed")

// WorkoutService interface defines workout and exercise business logic.
// All operations are scoped to the signed-in user.
type WorkoutService interface {
	ListWorkouts(ctx context.Context, userID int) ([]models.Workout, error)
	GetWorkout(ctx context.Context, userID, id int) (*models.WorkoutDetail, error)
	CreateWorkout(ctx context.Context, userID int, form *models.WorkoutForm) (*models.Workout, error)
	EndWorkout(ctx context.Context, userID, id int) error
	DeleteWorkout(ctx context.Context, userID, id int) error
	AddExercise(ctx context.Context, userID, workoutID int, form *models.ExerciseForm) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, userID, workoutID, exerciseID int) error
	GetStats(ctx context.Context, userID int) (*models.WorkoutStats, error)
}

// workoutService implements WorkoutService interface
type workoutService struct {
	workoutRepo  repositories.WorkoutRepository
	exerciseRepo repositories.ExerciseRepository
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(workoutRepo repositories.WorkoutRepository, exerciseRepo repositories.ExerciseRepository) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
	}
}

// ListWorkouts retrieves the user's workouts
func (s *workoutService) ListWorkouts(ctx context.Context, userID int) ([]models.Workout, error) {
	return s.workoutRepo.GetAllByUser(ctx, userID)
}

// GetWorkout retrieves a workout with its exercises
func (s *workoutService) GetWorkout(ctx context.Context, userID, id int) (*models.WorkoutDetail, error) {
	workout, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.GetByWorkout(ctx, workout.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}

	workout.ExerciseCount = len(exercises)
	return &models.WorkoutDetail{
		Workout:   *workout,
		Exercises: exercises,
	}, nil
}

// CreateWorkout creates a new workout with validation
func (s *workoutService) CreateWorkout(ctx context.Context, userID int, form *models.WorkoutForm) (*models.Workout, error) {
	if err := form.Validate().OrNil(); err != nil {
		return nil, err
	}
	form.Normalize()

	workout := &models.Workout{
		UserID:      userID,
		Name:        form.Name,
		Description: form.Description,
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	return workout, nil
}

// EndWorkout marks an in-progress workout as completed
func (s *workoutService) EndWorkout(ctx context.Context, userID, id int) error {
	workout, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if workout.Completed {
		return ErrWorkoutCompleted
	}

	if err := s.workoutRepo.MarkCompleted(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to end workout: %w", err)
	}

	return nil
}

// DeleteWorkout permanently deletes a workout and its exercises
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, id int) error {
	if id <= 0 {
		return fmt.Errorf("invalid workout ID %d: %w", id, repositories.ErrNotFound)
	}

	if err := s.workoutRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil
}

// AddExercise logs an exercise on an in-progress workout
func (s *workoutService) AddExercise(ctx context.Context, userID, workoutID int, form *models.ExerciseForm) (*models.Exercise, error) {
	exercise, errs := form.Validate()
	if errs.HasErrors() {
		return nil, errs
	}

	workout, err := s.getOwned(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	if workout.Completed {
		return nil, ErrWorkoutCompleted
	}

	exercise.WorkoutID = workout.ID
	if err := s.exerciseRepo.Create(ctx, &exercise); err != nil {
		return nil, fmt.Errorf("failed to add exercise: %w", err)
	}

	return &exercise, nil
}

// DeleteExercise removes an exercise from one of the user's workouts
func (s *workoutService) DeleteExercise(ctx context.Context, userID, workoutID, exerciseID int) error {
	workout, err := s.getOwned(ctx, userID, workoutID)
	if err != nil {
		return err
	}

	if err := s.exerciseRepo.Delete(ctx, workout.ID, exerciseID); err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	return nil
}

// GetStats summarises the user's workouts
func (s *workoutService) GetStats(ctx context.Context, userID int) (*models.WorkoutStats, error) {
	return s.workoutRepo.Stats(ctx, userID)
}

// getOwned loads a workout the user owns
func (s *workoutService) getOwned(ctx context.Context, userID, id int) (*models.Workout, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid workout ID %d: %w", id, repositories.ErrNotFound)
	}

	workout, err := s.workoutRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("workout not found: %w", err)
	}

	return workout, nil
}
