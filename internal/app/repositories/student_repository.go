package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classware/studentms/internal/app/models"
	"github.com/classware/studentms/internal/pkg/apperrors"
	"github.com/classware/studentms/internal/pkg/dberrors"
)

// Unique constraint names from the students schema migration
const (
	passportConstraint = "uq_students_passport_number"
	emailConstraint    = "uq_students_email"
)

const studentColumns = `id, name, passport_number, age, email, enrollment_date, graduation_year, status, created_at, updated_at, version`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// scanStudent scans a single row into a student model
func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.PassportNumber,
		&student.Age,
		&student.Email,
		&student.EnrollmentDate,
		&student.GraduationYear,
		&student.Status,
		&student.CreatedAt,
		&student.UpdatedAt,
		&student.Version,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// collectStudents drains a result set into a slice of students
func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Save inserts the student when it has no identifier yet, otherwise updates
// the existing row. Audit fields and the optimistic-lock version are managed
// here: insert sets created_at = updated_at = now and version = 0; update
// refreshes updated_at and increments version, and only succeeds when the
// caller's version matches the stored one. passport_number and
// enrollment_date are never part of the update statement.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) error {
	if student.ID == 0 {
		return r.insert(ctx, student)
	}
	return r.update(ctx, student)
}

func (r *StudentRepository) insert(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	student.Version = 0

	query := `
		INSERT INTO students (name, passport_number, age, email, enrollment_date, graduation_year, status, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.PassportNumber,
		student.Age,
		student.Email,
		student.EnrollmentDate,
		student.GraduationYear,
		student.Status,
		student.CreatedAt,
		student.UpdatedAt,
		student.Version,
	).Scan(&student.ID)

	if err != nil {
		return mapConstraintError(err, "error inserting student")
	}

	return nil
}

func (r *StudentRepository) update(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()

	query := `
		UPDATE students
		SET name = $1, age = $2, email = $3, graduation_year = $4, status = $5,
		    updated_at = $6, version = version + 1
		WHERE id = $7 AND version = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.Age,
		student.Email,
		student.GraduationYear,
		student.Status,
		now,
		student.ID,
		student.Version,
	)

	if err != nil {
		return mapConstraintError(err, "error updating student")
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the row is gone or the caller holds a stale version.
		exists, err := r.ExistsByID(ctx, student.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrVersionConflict
		}
		return apperrors.NewStudentNotFoundError(student.ID)
	}

	student.UpdatedAt = now
	student.Version++
	return nil
}

// mapConstraintError translates unique violations into domain errors
func mapConstraintError(err error, context string) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, passportConstraint):
		return apperrors.ErrPassportNumberExists
	case dberrors.IsDuplicateConstraintError(err, emailConstraint):
		return apperrors.ErrEmailExists
	default:
		return fmt.Errorf("%s: %w", context, err)
	}
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// GetByID retrieves a student by ID. Absence is not an error: the method
// returns (nil, nil) when no row matches.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ExistsByID checks if a student exists by ID
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// DeleteByID deletes a student by ID
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewStudentNotFoundError(id)
	}

	return nil
}

// GetByStatus retrieves all students with the given status
func (r *StudentRepository) GetByStatus(ctx context.Context, status models.StudentStatus) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE status = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// GetByEmail retrieves a student by email, (nil, nil) when absent
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return student, nil
}

// GetByPassportNumber retrieves a student by passport number, (nil, nil) when absent
func (r *StudentRepository) GetByPassportNumber(ctx context.Context, passportNumber string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE passport_number = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, passportNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student by passport number: %w", err)
	}

	return student, nil
}

// GetByGraduationYear retrieves all students expected to graduate in the given year
func (r *StudentRepository) GetByGraduationYear(ctx context.Context, year int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE graduation_year = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}

	return collectStudents(rows)
}

// ExistsByEmail checks if a student with the given email exists
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// ExistsByPassportNumber checks if a student with the given passport number exists
func (r *StudentRepository) ExistsByPassportNumber(ctx context.Context, passportNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE passport_number = $1)`, passportNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking passport number existence: %w", err)
	}
	return exists, nil
}
