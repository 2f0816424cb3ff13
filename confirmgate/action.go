package confirmgate

import (
	"errors"
	"strings"
)

// Element identifiers for the guarded controls on the workout pages
const (
	EndWorkout     = "end-workout"
	DeleteExercise = "delete-exercise"
	DeleteWorkout  = "delete-workout"
)

// GuardedAction binds a confirmation prompt to one interactive element
type GuardedAction struct {
	ElementID  string `json:"element_id"`
	PromptText string `json:"prompt_text"`
}

// Validate checks that the action can be bound
func (a GuardedAction) Validate() error {
	if strings.TrimSpace(a.ElementID) == "" {
		return errors.New("element ID is required")
	}
	if strings.TrimSpace(a.PromptText) == "" {
		return errors.New("prompt text is required")
	}
	return nil
}

// DefaultActions returns the guarded actions used by the workout pages
func DefaultActions() []GuardedAction {
	return []GuardedAction{
		{ElementID: EndWorkout, PromptText: "Are you sure you want to end your workout?"},
		{ElementID: DeleteExercise, PromptText: "Are you sure you want to delete this exercise?"},
		{ElementID: DeleteWorkout, PromptText: "Are you sure you want to delete this workout? This cannot be undone."},
	}
}
