package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// StudentStatus represents the lifecycle status of a student record.
// Only the four enumerated values are representable; deserialization
// rejects anything else.
type StudentStatus string

const (
	StatusActive    StudentStatus = "ACTIVE"
	StatusSuspended StudentStatus = "SUSPENDED"
	StatusGraduated StudentStatus = "GRADUATED"
	StatusWithdrawn StudentStatus = "WITHDRAWN"
)

// IsValid reports whether the status is one of the enumerated values.
func (s StudentStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusGraduated, StatusWithdrawn:
		return true
	}
	return false
}

// UnmarshalJSON enforces the closed enum on deserialization.
func (s *StudentStatus) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	status := StudentStatus(value)
	if !status.IsValid() {
		return fmt.Errorf("invalid student status: %q (must be one of ACTIVE, SUSPENDED, GRADUATED, WITHDRAWN)", value)
	}

	*s = status
	return nil
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64         `json:"id" db:"id" example:"1"`                                  // Unique identifier for the student record
	Name           string        `json:"name" db:"name" example:"John Doe"`                       // Full name of the student
	PassportNumber string        `json:"passportNumber" db:"passport_number" example:"A1234567"` // One uppercase letter followed by 7 digits, immutable after creation
	Age            int           `json:"age" db:"age" example:"25"`                               // Age of the student (16-100)
	Email          *string       `json:"email,omitempty" db:"email" example:"john.doe@example.com"`
	EnrollmentDate time.Time     `json:"enrollmentDate" db:"enrollment_date" example:"2023-09-01T09:00:00Z"` // Immutable after creation
	GraduationYear *int          `json:"graduationYear,omitempty" db:"graduation_year" example:"2025"`       // Expected graduation year (nullable)
	Status         StudentStatus `json:"status" db:"status" example:"ACTIVE"`                                // Current lifecycle status
	CreatedAt      time.Time     `json:"createdAt" db:"created_at" example:"2023-09-01T09:00:00Z"`           // Set by the repository on insert
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at" example:"2023-09-01T09:00:00Z"`           // Refreshed by the repository on every save
	Version        int64         `json:"version" db:"version" example:"0"`                                  // Optimistic locking counter
}

// IsActive reports whether the student currently has ACTIVE status.
func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}

// Activate sets the status to ACTIVE.
func (s *Student) Activate() {
	s.Status = StatusActive
}

// Suspend sets the status to SUSPENDED.
func (s *Student) Suspend() {
	s.Status = StatusSuspended
}

// Graduate sets the status to GRADUATED.
func (s *Student) Graduate() {
	s.Status = StatusGraduated
}
