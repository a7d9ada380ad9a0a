package dto

import (
	"time"

	"github.com/classware/studentms/internal/app/models"
)

// StudentRequest represents the payload accepted by the create and update
// endpoints. System-managed fields (id, createdAt, updatedAt, version) are
// deliberately absent: any value a client supplies for them is ignored.
type StudentRequest struct {
	Name           string               `json:"name" validate:"required,min=2,max=100" example:"John Doe"`
	PassportNumber string               `json:"passportNumber" validate:"required,passport" example:"A1234567"`
	Age            *int                 `json:"age" validate:"required,min=16,max=100" example:"25"`
	Email          *string              `json:"email,omitempty" validate:"omitempty,email" example:"john.doe@example.com"`
	EnrollmentDate *time.Time           `json:"enrollmentDate,omitempty" example:"2023-09-01T09:00:00Z"`
	GraduationYear *int                 `json:"graduationYear,omitempty" validate:"omitempty,min=2020,max=2030" example:"2025"`
	Status         models.StudentStatus `json:"status,omitempty" example:"ACTIVE"`
}

// ToModel maps the request onto a model. The service decides which of these
// fields actually take effect for a given operation.
func (r *StudentRequest) ToModel() *models.Student {
	student := &models.Student{
		Name:           r.Name,
		PassportNumber: r.PassportNumber,
		Email:          r.Email,
		GraduationYear: r.GraduationYear,
		Status:         r.Status,
	}

	if r.Age != nil {
		student.Age = *r.Age
	}
	if r.EnrollmentDate != nil {
		student.EnrollmentDate = *r.EnrollmentDate
	}

	return student
}
