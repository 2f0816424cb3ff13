package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/repositories"
	"github.com/blogem/workout-tracker/repositories/mocks"
)

// WorkoutServiceTestSuite is a test suite for the workout service
type WorkoutServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	service          WorkoutService
	mockWorkoutRepo  *mocks.MockWorkoutRepository
	mockExerciseRepo *mocks.MockExerciseRepository
}

// SetupTest sets up the test suite before each test
func (suite *WorkoutServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockWorkoutRepo = mocks.NewMockWorkoutRepository(suite.T())
	suite.mockExerciseRepo = mocks.NewMockExerciseRepository(suite.T())

	suite.service = NewWorkoutService(suite.mockWorkoutRepo, suite.mockExerciseRepo)
}

// TestCreateWorkout_Success tests that a valid form is trimmed and stored
func (suite *WorkoutServiceTestSuite) TestCreateWorkout_Success() {
	suite.mockWorkoutRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(w *models.Workout) bool {
			return w.UserID == 1 && w.Name == "Leg day" && w.Description == "Squats"
		})).
		Run(func(_ context.Context, w *models.Workout) { w.ID = 42 }).
		Return(nil)

	workout, err := suite.service.CreateWorkout(suite.ctx, 1, &models.WorkoutForm{Name: " Leg day ", Description: "Squats "})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 42, workout.ID)
}

// TestCreateWorkout_ValidationFailure tests that invalid input never reaches the repository
func (suite *WorkoutServiceTestSuite) TestCreateWorkout_ValidationFailure() {
	_, err := suite.service.CreateWorkout(suite.ctx, 1, &models.WorkoutForm{Name: "x", Description: ""})

	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
	assert.Contains(suite.T(), verrs.GetMessages(), "Name is required and must be at least 2 characters long.")
}

// TestGetWorkout_WithExercises tests that exercises are attached to the workout
func (suite *WorkoutServiceTestSuite) TestGetWorkout_WithExercises() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 1, 5).Return(&models.Workout{ID: 5, UserID: 1, Name: "Leg day"}, nil)
	suite.mockExerciseRepo.EXPECT().GetByWorkout(mock.Anything, 5).Return([]models.Exercise{
		{ID: 1, WorkoutID: 5, Name: "Squat"},
		{ID: 2, WorkoutID: 5, Name: "Lunge"},
	}, nil)

	detail, err := suite.service.GetWorkout(suite.ctx, 1, 5)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), detail.Exercises, 2)
	assert.Equal(suite.T(), 2, detail.Workout.ExerciseCount)
}

// TestGetWorkout_NotFound tests that another user's workout is reported as not found
func (suite *WorkoutServiceTestSuite) TestGetWorkout_NotFound() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 2, 5).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.GetWorkout(suite.ctx, 2, 5)

	assert.ErrorIs(suite.T(), err, repositories.ErrNotFound)
}

// TestEndWorkout_Success tests ending an in-progress workout
func (suite *WorkoutServiceTestSuite) TestEndWorkout_Success() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 1, 5).Return(&models.Workout{ID: 5, UserID: 1}, nil)
	suite.mockWorkoutRepo.EXPECT().MarkCompleted(mock.Anything, 1, 5).Return(nil)

	assert.NoError(suite.T(), suite.service.EndWorkout(suite.ctx, 1, 5))
}

// TestEndWorkout_AlreadyCompleted tests that a completed workout cannot be ended again
func (suite *WorkoutServiceTestSuite) TestEndWorkout_AlreadyCompleted() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 1, 5).Return(&models.Workout{ID: 5, UserID: 1, Completed: true}, nil)

	err := suite.service.EndWorkout(suite.ctx, 1, 5)

	assert.ErrorIs(suite.T(), err, ErrWorkoutCompleted)
	suite.mockWorkoutRepo.AssertNotCalled(suite.T(), "MarkCompleted", mock.Anything, mock.Anything, mock.Anything)
}

// TestDeleteWorkout tests deletion and error wrapping
func (suite *WorkoutServiceTestSuite) TestDeleteWorkout() {
	suite.mockWorkoutRepo.EXPECT().Delete(mock.Anything, 1, 5).Return(nil).Once()
	assert.NoError(suite.T(), suite.service.DeleteWorkout(suite.ctx, 1, 5))

	suite.mockWorkoutRepo.EXPECT().Delete(mock.Anything, 1, 6).Return(errors.New("database is locked")).Once()
	err := suite.service.DeleteWorkout(suite.ctx, 1, 6)
	assert.ErrorContains(suite.T(), err, "failed to delete workout")

	assert.ErrorIs(suite.T(), suite.service.DeleteWorkout(suite.ctx, 1, 0), repositories.ErrNotFound)
}

// TestAddExercise_Success tests logging an exercise
func (suite *WorkoutServiceTestSuite) TestAddExercise_Success() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 1, 5).Return(&models.Workout{ID: 5, UserID: 1}, nil)
	suite.mockExerciseRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(e *models.Exercise) bool {
			return e.WorkoutID == 5 && e.Name == "Squat" && e.Sets == 5 && e.Repetitions == 5 && e.Weight == 100
		})).
		Return(nil)

	exercise, err := suite.service.AddExercise(suite.ctx, 1, 5, &models.ExerciseForm{Name: "Squat", Sets: "5", Repetitions: "5", Weight: "100"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Squat", exercise.Name)
}

// TestAddExercise_CompletedWorkout tests that ended workouts are read-only
func (suite *WorkoutServiceTestSuite) TestAddExercise_CompletedWorkout() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 1, 5).Return(&models.Workout{ID: 5, UserID: 1, Completed: true}, nil)

	_, err := suite.service.AddExercise(suite.ctx, 1, 5, &models.ExerciseForm{Name: "Squat", Sets: "5", Repetitions: "5"})

	assert.ErrorIs(suite.T(), err, ErrWorkoutCompleted)
}

// TestAddExercise_ValidationFailure tests that bad numbers are reported
func (suite *WorkoutServiceTestSuite) TestAddExercise_ValidationFailure() {
	_, err := suite.service.AddExercise(suite.ctx, 1, 5, &models.ExerciseForm{Name: "Squat", Sets: "zero", Repetitions: "5"})

	var verrs models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &verrs)
}

// TestDeleteExercise tests that the workout is checked for ownership first
func (suite *WorkoutServiceTestSuite) TestDeleteExercise() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 1, 5).Return(&models.Workout{ID: 5, UserID: 1}, nil)
	suite.mockExerciseRepo.EXPECT().Delete(mock.Anything, 5, 9).Return(nil)

	assert.NoError(suite.T(), suite.service.DeleteExercise(suite.ctx, 1, 5, 9))
}

// TestDeleteExercise_ForeignWorkout tests that exercises of another user's workout are untouched
func (suite *WorkoutServiceTestSuite) TestDeleteExercise_ForeignWorkout() {
	suite.mockWorkoutRepo.EXPECT().GetByID(mock.Anything, 2, 5).Return(nil, repositories.ErrNotFound)

	err := suite.service.DeleteExercise(suite.ctx, 2, 5, 9)

	assert.ErrorIs(suite.T(), err, repositories.ErrNotFound)
}

// TestWorkoutServiceTestSuite runs the workout service test suite
func TestWorkoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkoutServiceTestSuite))
}
