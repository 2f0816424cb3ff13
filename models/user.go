package models

import (
	"regexp"
	"time"
)

const (
	DefaultLevel     = 1
	DefaultLevelName = "Newbie"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()?]*$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9\.\+_-]+@[a-zA-Z0-9\._-]+\.[a-zA-Z]*$`)
)

// User represents a registered athlete
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	TOSAccepted  bool      `json:"tos_accepted" db:"tos_accepted"`
	Level        int       `json:"level" db:"level"`
	LevelName    string    `json:"level_name" db:"level_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RegistrationForm represents form data for creating an account
type RegistrationForm struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"-"`
	PasswordConfirmation string `json:"-"`
	TOSAccepted          bool   `json:"tos_accepted"`
}

// Validate checks the registration fields. Uniqueness is checked by the service.
func (f *RegistrationForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if len(f.Username) < 2 {
		errs.Add("username", "Username is required and must be at least 2 characters long.")
	}
	if !usernamePattern.MatchString(f.Username) {
		errs.Add("username", "Username must contain letters, numbers and basic characters only.")
	}

	if len(f.Email) < 5 {
		errs.Add("email", "Email field must be at least 5 characters.")
	} else if !emailPattern.MatchString(f.Email) {
		errs.Add("email", "Email field is not a valid email format.")
	}

	if len(f.Password) < 8 || len(f.PasswordConfirmation) < 8 {
		errs.Add("password", "Password fields are required and must be at least 8 characters.")
	} else if f.Password != f.PasswordConfirmation {
		errs.Add("password", "Password and confirmation must match.")
	}

	if !f.TOSAccepted {
		errs.Add("tos_accept", "Terms of service must be accepted.")
	}

	return errs
}

// HasValidEmail reports whether the email passed format validation
func (f *RegistrationForm) HasValidEmail() bool {
	return len(f.Email) >= 5 && emailPattern.MatchString(f.Email)
}

// LoginForm represents form data for signing in
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// Validate checks that both fields are present
func (f *LoginForm) Validate() ValidationErrors {
	var errs ValidationErrors
	if len(f.Username) < 1 || len(f.Password) < 1 {
		errs.Add("", "All fields are required.")
	}
	return errs
}
