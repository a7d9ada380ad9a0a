package dto

import (
	"time"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp" example:"2023-09-01T10:30:00Z"`
	Status    int       `json:"status" example:"400"`
	Error     string    `json:"error" example:"Validation Failed"`
	Message   string    `json:"message" example:"Invalid input data"`
	Path      string    `json:"path" example:"/api/v1/students"`
	Details   []string  `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(status int, errorText, message, path string) *ErrorResponse {
	return &ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     errorText,
		Message:   message,
		Path:      path,
	}
}

// WithDetails attaches per-field violation messages to the response
func (e *ErrorResponse) WithDetails(details []string) *ErrorResponse {
	e.Details = details
	return e
}
