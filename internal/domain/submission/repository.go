package submission

import (
	"context"
	"time"
)

// SubmissionRepository defines data access for work-log entries.
//
// Insert, CountForDay and FindDuplicate participate in the serialized
// submit sequence: callers run them inside one transaction holding the
// per-(user, day) lock so two concurrent submits cannot share a
// submission number or both pass the duplicate check.
type SubmissionRepository interface {
	// LockUserDay serializes submit sequences for one (user, date) pair for
	// the remainder of the current transaction.
	LockUserDay(ctx context.Context, userID string, date time.Time) error

	// FindDuplicate looks up an existing entry with the same user, date,
	// work text, client name and work type. Returns nil when none exists.
	FindDuplicate(ctx context.Context, userID string, date time.Time, workText, clientName, workType string) (*Submission, error)

	// CountForDay returns how many entries the user already has on the date.
	CountForDay(ctx context.Context, userID string, date time.Time) (int, error)

	Insert(ctx context.Context, s Submission) (Submission, error)

	GetByID(ctx context.Context, id string) (Submission, error)

	// Query returns entries joined with owner name/email/employment type,
	// newest first, honoring every filter predicate.
	Query(ctx context.Context, filter ListFilter) ([]Submission, error)

	// ListRecent returns the user's newest entries up to limit.
	ListRecent(ctx context.Context, userID string, limit int) ([]Submission, error)

	// Update rewrites the mutable fields; id, submission_number and
	// created_at are preserved.
	Update(ctx context.Context, s Submission) error

	// Delete removes one entry. Sibling numbering is left untouched.
	Delete(ctx context.Context, id string) error
}
