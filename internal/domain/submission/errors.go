package submission

import "errors"

var (
	// ErrDuplicateSubmission is an informational rejection, not a hard
	// failure: an identical entry already exists for the same user and day.
	ErrDuplicateSubmission = errors.New("an identical submission already exists for this day")

	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAccessDenied       = errors.New("not allowed to access this submission")
	ErrNoAttachment       = errors.New("submission has no attachment")
)
