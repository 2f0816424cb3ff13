package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/confirmgate"
	"github.com/blogem/workout-tracker/metrics"
	"github.com/blogem/workout-tracker/middleware"
	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/repositories"
	"github.com/blogem/workout-tracker/services"
	"github.com/blogem/workout-tracker/userctx"
)

// WorkoutController handles workout and exercise requests
type WorkoutController struct {
	services *services.Services
	binder   *confirmgate.Binder
	metrics  *metrics.Metrics
}

// NewWorkoutController creates a new workout controller
func NewWorkoutController(services *services.Services, binder *confirmgate.Binder, m *metrics.Metrics) *WorkoutController {
	return &WorkoutController{
		services: services,
		binder:   binder,
		metrics:  m,
	}
}

type workoutsPage struct {
	PageData
	Workouts []models.Workout
	Form     *models.WorkoutForm
}

type exerciseRow struct {
	Exercise models.Exercise
	Delete   *confirmgate.Binding
}

type workoutPage struct {
	PageData
	Workout       models.Workout
	Exercises     []exerciseRow
	EndWorkout    *confirmgate.Binding
	DeleteWorkout *confirmgate.Binding
	Form          *models.ExerciseForm
}

// Index handles GET /workouts
func (c *WorkoutController) Index(w http.ResponseWriter, r *http.Request) {
	c.renderIndex(w, r, http.StatusOK, &models.WorkoutForm{}, nil)
}

// Create handles POST /workouts
func (c *WorkoutController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.WorkoutForm{
		Name:        r.PostForm.Get("name"),
		Description: r.PostForm.Get("description"),
	}

	workout, err := c.services.Workouts.CreateWorkout(r.Context(), userctx.GetUserID(r.Context()), form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.renderIndex(w, r, http.StatusBadRequest, form, verrs.GetMessages())
			return
		}
		c.handleError(w, r, err)
		return
	}

	c.metrics.IncrementWorkoutCreated()
	setFlash(r, "success", "Workout started.")
	http.Redirect(w, r, fmt.Sprintf("/workouts/%d", workout.ID), http.StatusSeeOther)
}

// Show handles GET /workouts/{id}
func (c *WorkoutController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	c.renderShow(w, r, http.StatusOK, id, &models.ExerciseForm{}, nil)
}

// End handles POST /workouts/{id}/end
func (c *WorkoutController) End(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := c.services.Workouts.EndWorkout(r.Context(), userctx.GetUserID(r.Context()), id); err != nil {
		c.handleError(w, r, err)
		return
	}

	c.metrics.IncrementWorkoutEnded()
	setFlash(r, "success", "Workout completed. Nice work!")
	http.Redirect(w, r, fmt.Sprintf("/workouts/%d", id), http.StatusSeeOther)
}

// Delete handles POST /workouts/{id}/delete
func (c *WorkoutController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := c.services.Workouts.DeleteWorkout(r.Context(), userctx.GetUserID(r.Context()), id); err != nil {
		c.handleError(w, r, err)
		return
	}

	c.metrics.IncrementWorkoutDeleted()
	setFlash(r, "success", "Workout deleted.")
	http.Redirect(w, r, "/workouts", http.StatusSeeOther)
}

// AddExercise handles POST /workouts/{id}/exercises
func (c *WorkoutController) AddExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.ExerciseForm{
		Name:        r.PostForm.Get("name"),
		Sets:        r.PostForm.Get("sets"),
		Repetitions: r.PostForm.Get("repetitions"),
		Weight:      r.PostForm.Get("weight"),
	}

	_, err := c.services.Workouts.AddExercise(r.Context(), userctx.GetUserID(r.Context()), id, form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.renderShow(w, r, http.StatusBadRequest, id, form, verrs.GetMessages())
			return
		}
		c.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/workouts/%d", id), http.StatusSeeOther)
}

// DeleteExercise handles POST /workouts/{id}/exercises/{exerciseID}/delete
func (c *WorkoutController) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	exerciseID, ok := parseID(w, r, "exerciseID")
	if !ok {
		return
	}

	if err := c.services.Workouts.DeleteExercise(r.Context(), userctx.GetUserID(r.Context()), id, exerciseID); err != nil {
		c.handleError(w, r, err)
		return
	}

	setFlash(r, "success", "Exercise deleted.")
	http.Redirect(w, r, fmt.Sprintf("/workouts/%d", id), http.StatusSeeOther)
}

func (c *WorkoutController) renderIndex(w http.ResponseWriter, r *http.Request, status int, form *models.WorkoutForm, errs []string) {
	workouts, err := c.services.Workouts.ListWorkouts(r.Context(), userctx.GetUserID(r.Context()))
	if err != nil {
		http.Error(w, "Failed to load workouts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	page := workoutsPage{
		PageData: newPageData(r, "Workouts", "workouts"),
		Workouts: workouts,
		Form:     form,
	}
	page.Errors = errs

	renderTemplateWithStatus(w, status, "workouts", "templates/workouts.html", page)
}

func (c *WorkoutController) renderShow(w http.ResponseWriter, r *http.Request, status int, id int, form *models.ExerciseForm, errs []string) {
	detail, err := c.services.Workouts.GetWorkout(r.Context(), userctx.GetUserID(r.Context()), id)
	if err != nil {
		c.handleError(w, r, err)
		return
	}

	page := workoutPage{
		PageData: newPageData(r, detail.Workout.Name, "workouts"),
		Workout:  detail.Workout,
		Form:     form,
	}
	page.Errors = errs

	// Bound together so no control of this page loses its ticket to another
	var controls []confirmgate.Control
	if !detail.Workout.Completed {
		controls = append(controls, confirmgate.Control{ElementID: confirmgate.EndWorkout, Target: fmt.Sprintf("/workouts/%d/end", id)})
	}
	controls = append(controls, confirmgate.Control{ElementID: confirmgate.DeleteWorkout, Target: fmt.Sprintf("/workouts/%d/delete", id)})
	for _, exercise := range detail.Exercises {
		controls = append(controls, confirmgate.Control{
			ElementID: confirmgate.DeleteExercise,
			Target:    fmt.Sprintf("/workouts/%d/exercises/%d/delete", id, exercise.ID),
		})
	}

	bindings := c.binder.BindAll(middleware.SessionOwner(r), controls)
	if !detail.Workout.Completed {
		page.EndWorkout, bindings = bindings[0], bindings[1:]
	}
	page.DeleteWorkout = bindings[0]
	for i, exercise := range detail.Exercises {
		page.Exercises = append(page.Exercises, exerciseRow{
			Exercise: exercise,
			Delete:   bindings[i+1],
		})
	}

	renderTemplateWithStatus(w, status, "workout", "templates/workout.html", page)
}

// handleError maps service errors to responses
func (c *WorkoutController) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		renderError(w, r, http.StatusNotFound, "Workout not found", "The workout does not exist or belongs to someone else.")
	case errors.Is(err, services.ErrWorkoutCompleted):
		setFlash(r, "error", "This workout is already completed.")
		http.Redirect(w, r, middleware.SafeReturnTo(r.PostForm.Get(middleware.ReturnToField), "/workouts"), http.StatusSeeOther)
	default:
		logrus.WithFields(logrus.Fields{
			"path":    r.URL.Path,
			"user_id": userctx.GetUserID(r.Context()),
		}).WithError(err).Error("Workout request failed")
		http.Error(w, "Something went wrong: "+err.Error(), http.StatusInternalServerError)
	}
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
