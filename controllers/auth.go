package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/sirupsen/logrus"

	"github.com/blogem/workout-tracker/authenticator"
	"github.com/blogem/workout-tracker/middleware"
	"github.com/blogem/workout-tracker/models"
	"github.com/blogem/workout-tracker/services"
)

const sessionStateKey = "state"

// AuthController handles registration, login and logout
type AuthController struct {
	services *services.Services
	provider authenticator.Provider
}

// NewAuthController creates a new auth controller. provider may be nil.
func NewAuthController(services *services.Services, provider authenticator.Provider) *AuthController {
	return &AuthController{
		services: services,
		provider: provider,
	}
}

type loginPage struct {
	PageData
	Form        *models.LoginForm
	OIDCEnabled bool
}

// ShowLogin handles GET /login
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionUserID(r) != 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "login", "templates/login.html", loginPage{
		PageData:    newPageData(r, "Log in", "login"),
		Form:        &models.LoginForm{},
		OIDCEnabled: c.provider != nil,
	})
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.LoginForm{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	user, err := c.services.Users.Login(r.Context(), form)
	if err != nil {
		var verrs models.ValidationErrors
		if !errors.As(err, &verrs) {
			logrus.WithError(err).Error("Login failed")
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
			return
		}

		page := loginPage{
			PageData:    newPageData(r, "Log in", "login"),
			Form:        &models.LoginForm{Username: form.Username},
			OIDCEnabled: c.provider != nil,
		}
		page.Errors = verrs.GetMessages()
		renderTemplateWithStatus(w, http.StatusBadRequest, "login_error", "templates/login.html", page)
		return
	}

	http.Redirect(w, r, middleware.SignIn(r, user.ID, user.Username), http.StatusSeeOther)
}

type registerPage struct {
	PageData
	Form *models.RegistrationForm
}

// ShowRegister handles GET /register
func (c *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionUserID(r) != 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "register", "templates/register.html", registerPage{
		PageData: newPageData(r, "Register", "register"),
		Form:     &models.RegistrationForm{},
	})
}

// Register handles POST /register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.RegistrationForm{
		Username:             r.PostForm.Get("username"),
		Email:                r.PostForm.Get("email"),
		Password:             r.PostForm.Get("password"),
		PasswordConfirmation: r.PostForm.Get("password_confirmation"),
		TOSAccepted:          r.PostForm.Get("tos_accept") == "on",
	}

	user, err := c.services.Users.Register(r.Context(), form)
	if err != nil {
		var verrs models.ValidationErrors
		if !errors.As(err, &verrs) {
			logrus.WithError(err).Error("Registration failed")
			http.Error(w, "Failed to register", http.StatusInternalServerError)
			return
		}

		page := registerPage{
			PageData: newPageData(r, "Register", "register"),
			Form: &models.RegistrationForm{
				Username:    form.Username,
				Email:       form.Email,
				TOSAccepted: form.TOSAccepted,
			},
		}
		page.Errors = verrs.GetMessages()
		renderTemplateWithStatus(w, http.StatusBadRequest, "register_error", "templates/register.html", page)
		return
	}

	middleware.SignIn(r, user.ID, user.Username)
	setFlash(r, "success", "Welcome aboard, "+user.Username+"!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	userID := middleware.SessionUserID(r)
	if err := sess.Flush(); err != nil {
		logrus.WithError(err).Warn("Failed to clear session")
	}
	logrus.WithField("user_id", userID).Info("User signed out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// OIDCLogin handles GET /login/oidc
func (c *AuthController) OIDCLogin(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		http.NotFound(w, r)
		return
	}

	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	session.GetSession(r).Set(sessionStateKey, state)

	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the callback from the identity provider
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		http.NotFound(w, r)
		return
	}

	sess := session.GetSession(r)

	// Verify state
	storedState, ok := sess.Get(sessionStateKey).(string)
	if !ok {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}
	sess.Delete(sessionStateKey)

	// Exchange the code for a token
	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	user, err := c.services.Users.FindOrProvision(r.Context(), services.ExternalIdentity{
		Subject:       claims.Subject(),
		Email:         claims.Email(),
		EmailVerified: claims.EmailVerified(),
		Nickname:      claims.DisplayName(),
	})
	if err != nil {
		logrus.WithField("subject", claims.Subject()).WithError(err).Error("Failed to sign in external identity")
		http.Error(w, "Failed to sign in: "+err.Error(), http.StatusForbidden)
		return
	}

	http.Redirect(w, r, middleware.SignIn(r, user.ID, user.Username), http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
