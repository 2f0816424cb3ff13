package models

import (
	"regexp"
	"strings"
	"time"
)

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// textPattern accepts words made of letters, numbers and basic characters,
// separated by whitespace. Blank strings never match.
var textPattern = func() *regexp.Regexp {
	class := "A-Za-z0-9!@#$%^&*\"':;/?,<.>()\\]\\[~`"
	return regexp.MustCompile(`^\s*[` + class + `]+(?:\s+[` + class + `]+)*\s*$`)
}()

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Add appends a message for field
func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error implements error so services can return validation failures directly
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}

// OrNil returns nil when there are no errors. Keeps a typed nil out of error values.
func (ve ValidationErrors) OrNil() error {
	if !ve.HasErrors() {
		return nil
	}
	return ve
}
