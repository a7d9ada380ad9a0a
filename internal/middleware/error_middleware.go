package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classware/studentms/internal/app/models/dto"
	"github.com/classware/studentms/internal/pkg/apperrors"
	"github.com/classware/studentms/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps service and repository failures to HTTP responses.
// Controllers hand every error here; nothing below the HTTP layer shapes
// status codes.
func HandleAPIError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	var vErr *apperrors.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Validation Failed", "Invalid input data", path,
		).WithDetails(vErr.Violations))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Validation Failed", err.Error(), path,
		))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Bad Request", err.Error(), path,
		))

	case errors.Is(err, apperrors.ErrInvalidStudentID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Bad Request", "Student ID must be a positive number", path,
		))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			http.StatusNotFound, "Not Found", err.Error(), path,
		))

	case errors.Is(err, apperrors.ErrPassportNumberExists),
		errors.Is(err, apperrors.ErrEmailExists),
		errors.Is(err, apperrors.ErrVersionConflict):
		// Data-integrity conflicts surface as generic server errors. A 409
		// would arguably fit better, but the API contract pins these to 500.
		logger.Warn().Err(err).Str("path", path).Msg("Data integrity conflict")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", path,
		))

	default:
		logger.Error().Err(err).Str("path", path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", path,
		))
	}
}
