package controllers

import (
	"html/template"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/authenticator"
	"github.com/blogem/workout-tracker/confirmgate"
	"github.com/blogem/workout-tracker/metrics"
	"github.com/blogem/workout-tracker/middleware"
	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/services"
	"github.com/blogem/workout-tracker/web"
)

const sessionFlashKey = "flash"

var templateFuncs = template.FuncMap{
	"add":            func(a, b int) int { return a + b },
	"sub":            func(a, b int) int { return a - b },
	"formatDate":     models.FormatDate,
	"formatDateTime": models.FormatDateTime,
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	// Create a new template set with only the templates we need
	tmpl, err := template.New(templateName).Funcs(templateFuncs).ParseFS(web.FS, "templates/layout.html", pageTemplate)
	if err != nil {
		logrus.WithField("template", pageTemplate).WithError(err).Error("Failed to parse template")
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logrus.WithField("template", pageTemplate).WithError(err).Error("Failed to render template")
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// PageData carries what the layout needs on every page
type PageData struct {
	Title       string
	CurrentPage string
	Username    string
	Flash       *models.FlashMessage
	Errors      []string
}

func newPageData(r *http.Request, title, currentPage string) PageData {
	page := PageData{
		Title:       title,
		CurrentPage: currentPage,
		Flash:       popFlash(r),
	}
	if username, ok := session.GetSession(r).Get(middleware.SessionUsernameKey).(string); ok && middleware.SessionUserID(r) != 0 {
		page.Username = username
	}
	return page
}

// renderError renders a plain error page
func renderError(w http.ResponseWriter, r *http.Request, statusCode int, title, message string) {
	data := struct {
		PageData
		Message string
	}{
		PageData: newPageData(r, title, ""),
		Message:  message,
	}
	renderTemplateWithStatus(w, statusCode, "error", "templates/error.html", data)
}

func setFlash(r *http.Request, flashType, message string) {
	session.GetSession(r).Set(sessionFlashKey, models.FlashMessage{Type: flashType, Message: message})
}

func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	flash, ok := sess.Get(sessionFlashKey).(models.FlashMessage)
	if !ok {
		return nil
	}
	sess.Delete(sessionFlashKey)
	return &flash
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Workouts  *WorkoutController
	Confirm   *ConfirmController
}

// NewControllers creates and initializes all controller instances.
// provider may be nil when single sign-on is not configured.
func NewControllers(services *services.Services, binder *confirmgate.Binder, m *metrics.Metrics, provider authenticator.Provider) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services, provider),
		Dashboard: NewDashboardController(services),
		Workouts:  NewWorkoutController(services, binder, m),
		Confirm:   NewConfirmController(),
	}
}
