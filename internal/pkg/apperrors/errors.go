package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student Errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidStudentID = errors.New("invalid student ID")
)

// Data integrity errors reported by the persistence layer
var (
	ErrPassportNumberExists = errors.New("passport number already exists")
	ErrEmailExists          = errors.New("email already exists")
	ErrVersionConflict      = errors.New("student record was modified concurrently")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewStudentNotFoundError creates a not-found error whose message carries the id
func NewStudentNotFoundError(id int64) error {
	return &CustomError{
		Err:     ErrStudentNotFound,
		Message: fmt.Sprintf("Student not found with id: %d", id),
	}
}

// ValidationError aggregates every field constraint violated by a request.
// Violations are collected exhaustively, never short-circuited on the first
// failure, so the HTTP layer can report all of them at once.
type ValidationError struct {
	Violations []string // formatted as "<field>: <message>"
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed.Error(), strings.Join(e.Violations, "; "))
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Add records a violation for the given field
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, fmt.Sprintf("%s: %s", field, message))
}

// HasViolations reports whether any violation was recorded
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
