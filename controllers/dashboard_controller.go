package controllers

import (
	"net/http"

	"github.com/blogem/workout-tracker/middleware"
	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/services"
	"github.com/blogem/workout-tracker/userctx"
)

const recentWorkoutCount = 5

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET /: the landing page, or the dashboard for signed-in users
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionUserID(r) != 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "index", "templates/index.html", struct{ PageData }{
		PageData: newPageData(r, "Welcome", "home"),
	})
}

// Dashboard handles GET /dashboard
func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := userctx.GetUserID(r.Context())

	user, err := c.services.Users.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stats, err := c.services.Workouts.GetStats(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load dashboard data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	workouts, err := c.services.Workouts.ListWorkouts(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load workouts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(workouts) > recentWorkoutCount {
		workouts = workouts[:recentWorkoutCount]
	}

	templateData := struct {
		PageData
		User   *models.User
		Stats  *models.WorkoutStats
		Recent []models.Workout
	}{
		PageData: newPageData(r, "Dashboard", "dashboard"),
		User:     user,
		Stats:    stats,
		Recent:   workouts,
	}

	renderTemplate(w, "dashboard", "templates/dashboard.html", templateData)
}
