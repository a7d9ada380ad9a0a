package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/classware/studentms/internal/app/models"
	"github.com/classware/studentms/internal/pkg/apperrors"
)

// StudentRepository is the persistence gateway the service depends on. The
// pgx-backed implementation lives in the repositories package; tests provide
// an in-memory one.
type StudentRepository interface {
	Save(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	GetByStatus(ctx context.Context, status models.StudentStatus) ([]*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByPassportNumber(ctx context.Context, passportNumber string) (*models.Student, error)
	GetByGraduationYear(ctx context.Context, year int) ([]*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPassportNumber(ctx context.Context, passportNumber string) (bool, error)
}

// StudentService handles student-related business operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetActiveStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, data *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	SuspendStudent(ctx context.Context, id int64) (*models.Student, error)
	ActivateStudent(ctx context.Context, id int64) (*models.Student, error)
	GraduateStudent(ctx context.Context, id int64) (*models.Student, error)
}

type studentService struct {
	studentRepo StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetActiveStudents retrieves students with ACTIVE status only
func (s *studentService) GetActiveStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetByStatus(ctx, models.StatusActive)
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewStudentNotFoundError(id)
	}
	return student, nil
}

// CreateStudent persists a new student record. The enrollment date defaults
// to the current instant when not supplied, status is forced to ACTIVE, and
// any client-supplied id is discarded so the save always inserts.
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = time.Now().UTC()
	}

	student.Status = models.StatusActive
	student.ID = 0

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("passportNumber", student.PassportNumber).Msg("Student created")
	return student, nil
}

// UpdateStudent applies the updatable fields of data onto the stored record.
// Passport number, enrollment date and the audit/version fields always keep
// their stored values.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, data *models.Student) (*models.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewStudentNotFoundError(id)
	}

	existing.Name = data.Name
	existing.Age = data.Age
	existing.Email = data.Email
	existing.GraduationYear = data.GraduationYear

	if err := s.studentRepo.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", existing.ID).Msg("Student updated")
	return existing, nil
}

// DeleteStudent removes a student record permanently
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	exists, err := s.studentRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewStudentNotFoundError(id)
	}

	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

// SuspendStudent sets the student status to SUSPENDED
func (s *studentService) SuspendStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.changeStatus(ctx, id, models.StatusSuspended)
}

// ActivateStudent sets the student status to ACTIVE
func (s *studentService) ActivateStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.changeStatus(ctx, id, models.StatusActive)
}

// GraduateStudent sets the student status to GRADUATED
func (s *studentService) GraduateStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.changeStatus(ctx, id, models.StatusGraduated)
}

// changeStatus overwrites the status unconditionally. Transitions are not
// checked for legality: any status may be set from any other.
func (s *studentService) changeStatus(ctx context.Context, id int64, status models.StudentStatus) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewStudentNotFoundError(id)
	}

	student.Status = status

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Str("status", string(status)).Msg("Student status changed")
	return student, nil
}
