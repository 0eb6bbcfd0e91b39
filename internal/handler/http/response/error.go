package response

import (
	"errors"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/master/position"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level problems come back together as one 422.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrSSODisabled):
		BadRequest(w, "SSO login is not enabled", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrHRPrivilegeRequired):
		Forbidden(w, "HR privilege required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrQuotaExceeded):
		BadRequest(w, "Leave quota exceeded", nil)
	case errors.Is(err, leave.ErrAlreadyApproved):
		Conflict(w, "Leave already approved")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNotTaskOwner):
		Forbidden(w, "Only the task owner or HR may update this task")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		NotFound(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
