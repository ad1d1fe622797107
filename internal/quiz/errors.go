package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidDuration    = errors.New("invalid duration format, use HH:MM")
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrHasDependents      = errors.New("record has dependent records")
	ErrProtectedAccount   = errors.New("cannot delete admin user")
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyAttempted   = errors.New("quiz already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuizUnavailable    = errors.New("quiz is not available")
)

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// DependentsError is returned when a delete is blocked by child rows.
type DependentsError struct {
	Entity     string
	Dependents string
	Count      int
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("cannot delete - %s has %s", e.Entity, e.Dependents)
}

func (e *DependentsError) Is(target error) bool {
	return target == ErrHasDependents
}
