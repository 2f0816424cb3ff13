package models

import (
	"testing"
	"time"
)

// Test RegistrationForm validation
func TestRegistrationFormValidation(t *testing.T) {
	validForm := RegistrationForm{
		Username:             "lifter",
		Email:                "lifter@example.com",
		Password:             "squats4days",
		PasswordConfirmation: "squats4days",
		TOSAccepted:          true,
	}
	if errs := validForm.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errs.GetMessages())
	}

	invalidForm := RegistrationForm{
		Username:             "a",
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: "short",
		TOSAccepted:          false,
	}
	errs := invalidForm.Validate()
	if len(errs) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errs.GetMessages())
	}

	mismatch := validForm
	mismatch.PasswordConfirmation = "squats5days"
	errs = mismatch.Validate()
	if len(errs) != 1 || errs[0].Message != "Password and confirmation must match." {
		t.Errorf("Expected password mismatch error, got: %v", errs.GetMessages())
	}

	badChars := validForm
	badChars.Username = "lift er"
	errs = badChars.Validate()
	if len(errs) != 1 || errs[0].Field != "username" {
		t.Errorf("Expected username character error, got: %v", errs.GetMessages())
	}
}

// Test LoginForm validation
func TestLoginFormValidation(t *testing.T) {
	form := LoginForm{Username: "lifter"}
	errs := form.Validate()
	if len(errs) != 1 || errs[0].Message != "All fields are required." {
		t.Errorf("Expected all fields required error, got: %v", errs.GetMessages())
	}

	form.Password = "x"
	if errs := form.Validate(); errs.HasErrors() {
		t.Errorf("Expected no errors, got: %v", errs.GetMessages())
	}
}

// Test WorkoutForm validation
func TestWorkoutFormValidation(t *testing.T) {
	valid := []WorkoutForm{
		{Name: "Leg day", Description: "Squats, lunges & calf raises"},
		{Name: "  Push (A)  ", Description: "Bench: 5x5 @ 80%"},
	}
	for _, form := range valid {
		if errs := form.Validate(); errs.HasErrors() {
			t.Errorf("Expected %q to be valid, got: %v", form.Name, errs.GetMessages())
		}
	}

	invalid := WorkoutForm{Name: "", Description: "x"}
	errs := invalid.Validate()
	if len(errs) != 3 {
		t.Errorf("Expected 3 errors for invalid form, got: %v", errs.GetMessages())
	}

	unicode := WorkoutForm{Name: "Jour de jambes é", Description: "ok ok"}
	if errs := unicode.Validate(); !errs.HasErrors() {
		t.Error("Expected non-basic characters to be rejected")
	}
}

// Test ExerciseForm validation
func TestExerciseFormValidation(t *testing.T) {
	form := ExerciseForm{Name: "Back squat", Sets: "5", Repetitions: "5", Weight: "102.5"}
	exercise, errs := form.Validate()
	if errs.HasErrors() {
		t.Fatalf("Expected no errors, got: %v", errs.GetMessages())
	}
	if exercise.Sets != 5 || exercise.Repetitions != 5 || exercise.Weight != 102.5 {
		t.Errorf("Unexpected parsed exercise: %+v", exercise)
	}
	if exercise.FormattedWeight() != "102.5" {
		t.Errorf("Expected formatted weight 102.5, got %s", exercise.FormattedWeight())
	}

	bodyweight := ExerciseForm{Name: "Pull up", Sets: "3", Repetitions: "8"}
	exercise, errs = bodyweight.Validate()
	if errs.HasErrors() || exercise.Weight != 0 {
		t.Errorf("Expected empty weight to mean bodyweight, got %+v %v", exercise, errs.GetMessages())
	}

	bad := ExerciseForm{Name: "x", Sets: "0", Repetitions: "many", Weight: "-5"}
	_, errs = bad.Validate()
	if len(errs) != 4 {
		t.Errorf("Expected 4 errors, got: %v", errs.GetMessages())
	}
}

// Test ValidationErrors helpers
func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.OrNil() != nil {
		t.Error("Expected nil error for empty validation errors")
	}

	errs.Add("name", "Name is required")
	err := errs.OrNil()
	if err == nil || err.Error() != "validation failed: Name is required" {
		t.Errorf("Unexpected error: %v", err)
	}
}

// Test date utilities
func TestDateFormatting(t *testing.T) {
	ts := time.Date(2025, 10, 6, 18, 30, 0, 0, time.UTC)
	if FormatDate(ts) != "2025-10-06" {
		t.Errorf("Unexpected date: %s", FormatDate(ts))
	}
	if FormatDateTime(ts) != "2025-10-06 18:30" {
		t.Errorf("Unexpected date time: %s", FormatDateTime(ts))
	}
}
