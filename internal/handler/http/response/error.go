package response

import (
	"errors"
	"net/http"

	"github.com/iramedia/workreport-backend-go/internal/domain/auth"
	"github.com/iramedia/workreport-backend-go/internal/domain/report"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/iramedia/workreport-backend-go/internal/domain/user"
	"github.com/iramedia/workreport-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrGoogleUserNotFound):
		Forbidden(w, "No account exists for this Google email")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrNameExists):
		Conflict(w, "Name already taken")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCannotDeleteAdmin):
		Forbidden(w, "Admin accounts cannot be deleted")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)

	// Submission domain errors
	case errors.Is(err, submission.ErrDuplicateSubmission):
		Conflict(w, "An identical entry already exists for this day")
	case errors.Is(err, submission.ErrSubmissionNotFound):
		NotFound(w, "Submission not found")
	case errors.Is(err, submission.ErrAccessDenied):
		Forbidden(w, "Access denied")
	case errors.Is(err, submission.ErrNoAttachment):
		NotFound(w, "Submission has no attachment")

	// Report domain errors
	case errors.Is(err, report.ErrNothingToExport):
		NotFound(w, "No submissions match the export")
	case errors.Is(err, report.ErrMonthRequired):
		BadRequest(w, "month parameter is required", nil)
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "month must be in YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
