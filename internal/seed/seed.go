package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/classware/studentms/internal/app/models"
	"github.com/classware/studentms/internal/app/repositories"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// demoStudents are the sample records inserted when demo seeding is enabled.
var demoStudents = []*models.Student{
	{
		Name:           "John Doe",
		PassportNumber: "A1234567",
		Age:            25,
		Email:          strPtr("john.doe@example.com"),
		GraduationYear: intPtr(2025),
		Status:         models.StatusActive,
	},
	{
		Name:           "Jane Smith",
		PassportNumber: "B7654321",
		Age:            22,
		Email:          strPtr("jane.smith@example.com"),
		GraduationYear: intPtr(2026),
		Status:         models.StatusActive,
	},
	{
		Name:           "Erik Larsen",
		PassportNumber: "C2468013",
		Age:            31,
		Status:         models.StatusGraduated,
	},
}

// CreateDemoStudents inserts a handful of sample students. Records whose
// passport number is already present are left untouched, so seeding is safe
// to run on every startup.
func CreateDemoStudents(ctx context.Context, repo *repositories.StudentRepository, lgr zerolog.Logger) error {
	for _, demo := range demoStudents {
		exists, err := repo.ExistsByPassportNumber(ctx, demo.PassportNumber)
		if err != nil {
			return fmt.Errorf("failed to check demo student %s: %w", demo.PassportNumber, err)
		}
		if exists {
			continue
		}

		student := *demo
		student.EnrollmentDate = time.Now().UTC()

		if err := repo.Save(ctx, &student); err != nil {
			return fmt.Errorf("failed to seed demo student %s: %w", demo.PassportNumber, err)
		}

		lgr.Info().Str("passportNumber", student.PassportNumber).Int64("studentId", student.ID).Msg("Demo student created")
	}

	return nil
}
