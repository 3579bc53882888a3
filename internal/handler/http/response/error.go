package response

import (
	"errors"
	"net/http"

	"github.com/dakoku/timeclock-backend-go/internal/domain/attendance"
	"github.com/dakoku/timeclock-backend-go/internal/domain/auth"
	"github.com/dakoku/timeclock-backend-go/internal/domain/employee"
	"github.com/dakoku/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is
// treated as an upstream failure and kept opaque.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Transition rejections carry the current status as a warning
	var transitionErr *attendance.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		InvalidSequence(w, transitionErr.Error(), transitionErr.Warnings())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Employee ID or password is incorrect")
	case errors.Is(err, auth.ErrAccountDisabled):
		Unauthorized(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, attendance.ErrNotOwner):
		Forbidden(w, "You can only modify your own events")
	case errors.Is(err, attendance.ErrMissingDateRange):
		BadRequest(w, "Query parameters from and to are required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
