package controllers

import (
	"net/http"

	"github.com/blogem/workout-tracker/middleware"
)

// ConfirmController renders the confirmation page for guarded actions
type ConfirmController struct{}

// NewConfirmController creates a new confirm controller
func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

// Prompt renders view. It is the middleware.PromptRenderer of the confirm guard.
func (c *ConfirmController) Prompt(w http.ResponseWriter, r *http.Request, view middleware.PromptView) {
	data := struct {
		PageData
		Prompt middleware.PromptView
	}{
		PageData: newPageData(r, "Please confirm", ""),
		Prompt:   view,
	}

	renderTemplate(w, "confirm", "templates/confirm.html", data)
}
