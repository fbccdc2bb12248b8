package api

import (
	"errors"
	"net/http"

	"github.com/taskforge/task-api/internal/domain"
	"github.com/taskforge/task-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors are the client's fault
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, client-facing error message based
// on the error type. This prevents leaking sensitive internal details; the
// validation messages intentionally match the service's public contract.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTaskName):
		return "Invalid task name (3-100 alphanumeric characters)"

	case errors.Is(err, domain.ErrInvalidPriority):
		return "Invalid priority value"

	case errors.Is(err, domain.ErrInvalidDeadline):
		return "Invalid deadline format. Use YYYY-MM-DD."

	case errors.Is(err, domain.ErrDeadlineInPast):
		return "Deadline cannot be in the past"

	case errors.Is(err, domain.ErrUnsafeInput):
		return "Invalid input detected"

	case errors.Is(err, domain.ErrInvalidProgress):
		return "Progress must be between 0-100"

	case store.IsNotFoundError(err):
		return "Task not found"

	default:
		return "An unexpected error occurred"
	}
}
