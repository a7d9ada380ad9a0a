package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classware/studentms/internal/app/models"
	"github.com/classware/studentms/internal/app/models/dto"
	"github.com/classware/studentms/internal/app/services"
	"github.com/classware/studentms/internal/middleware"
	"github.com/classware/studentms/internal/pkg/apperrors"
	"github.com/classware/studentms/internal/pkg/validation"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseStudentID extracts and validates the id path parameter. A non-numeric
// or non-positive id fails before any service call is made.
func parseStudentID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidStudentID
	}
	return id, nil
}

// bindStudentRequest binds and validates the request body
func bindStudentRequest(ctx *gin.Context) (*dto.StudentRequest, error) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, err.Error())
	}

	if err := validation.ValidateStudent(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// GetAllStudents retrieves all students
// @Summary Retrieve all students
// @Description Fetches a list of all students in the system with their complete information including audit details
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Successfully retrieved all students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetActiveStudents retrieves students with ACTIVE status only
// @Summary Retrieve all active students
// @Description Fetches a list of students with ACTIVE status only
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Successfully retrieved active students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/active [get]
func (c *StudentController) GetActiveStudents(ctx *gin.Context) {
	students, err := c.studentService.GetActiveStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Retrieve a specific student
// @Description Fetches detailed information about a student by their unique identifier
// @Tags students
// @Produce json
// @Param id path int true "Unique identifier of the student" minimum(1)
// @Success 200 {object} models.Student "Student found and retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID provided (must be positive number)"
// @Failure 404 {object} dto.ErrorResponse "Student not found with the provided ID"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student record
// @Summary Create a new student
// @Description Creates a new student record with validation. The enrollment date will be set to current time if not provided, and status will be set to ACTIVE.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student data to create"
// @Success 201 {object} models.Student "Student created successfully"
// @Header 201 {string} Location "Path of the newly created student resource"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data - validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error (e.g., duplicate passport number or email)"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	req, err := bindStudentRequest(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/%d", ctx.Request.URL.Path, student.ID))
	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent updates an existing student
// @Summary Update an existing student
// @Description Updates student information. Note: passport number and enrollment date cannot be modified.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Unique identifier of the student to update" minimum(1)
// @Param request body dto.StudentRequest true "Updated student data"
// @Success 200 {object} models.Student "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID or validation failed"
// @Failure 404 {object} dto.ErrorResponse "Student not found with the provided ID"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	req, err := bindStudentRequest(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent deletes a student record
// @Summary Delete a student
// @Description Permanently removes a student record from the system. This operation cannot be undone.
// @Tags students
// @Param id path int true "Unique identifier of the student to delete" minimum(1)
// @Success 204 "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID provided (must be positive number)"
// @Failure 404 {object} dto.ErrorResponse "Student not found with the provided ID"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := parseStudentID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuspendStudent changes the student status to SUSPENDED
// @Summary Suspend a student
// @Description Changes the student status to SUSPENDED
// @Tags students
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} models.Student "Student suspended successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/suspend [put]
func (c *StudentController) SuspendStudent(ctx *gin.Context) {
	c.changeStatus(ctx, c.studentService.SuspendStudent)
}

// ActivateStudent changes the student status to ACTIVE
// @Summary Activate a student
// @Description Changes the student status to ACTIVE
// @Tags students
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} models.Student "Student activated successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/activate [put]
func (c *StudentController) ActivateStudent(ctx *gin.Context) {
	c.changeStatus(ctx, c.studentService.ActivateStudent)
}

// GraduateStudent changes the student status to GRADUATED
// @Summary Graduate a student
// @Description Changes the student status to GRADUATED
// @Tags students
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} models.Student "Student graduated successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/graduate [put]
func (c *StudentController) GraduateStudent(ctx *gin.Context) {
	c.changeStatus(ctx, c.studentService.GraduateStudent)
}

// changeStatus runs one of the service's status transitions and writes the
// updated record. Unlike the CRUD endpoints the transition endpoints do not
// precondition the id: a syntactically valid id that matches nothing is a
// plain not-found.
func (c *StudentController) changeStatus(ctx *gin.Context, transition func(context.Context, int64) (*models.Student, error)) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidStudentID)
		return
	}

	student, err := transition(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
