package submission

import "context"

// SubmissionService defines the business operations over work-log entries.
type SubmissionService interface {
	// Submit validates and stores a new entry. The duplicate check, the
	// per-day numbering and the insert run as one serialized operation.
	Submit(ctx context.Context, actor Actor, req SubmitRequest) (SubmissionResponse, error)

	// Update edits an entry (owner or admin). A replacement attachment
	// removes the previous file best-effort.
	Update(ctx context.Context, actor Actor, req UpdateRequest) (SubmissionResponse, error)

	// Delete removes an entry (owner or admin) and its attachment
	// best-effort. Numbering gaps are intentional.
	Delete(ctx context.Context, actor Actor, id string) error

	Get(ctx context.Context, actor Actor, id string) (SubmissionResponse, error)

	// ListMine returns the actor's recent entries plus today's.
	ListMine(ctx context.Context, actor Actor, limit int) ([]SubmissionResponse, error)
	ListToday(ctx context.Context, actor Actor) ([]SubmissionResponse, error)

	// List is the admin view over all entries, filtered.
	List(ctx context.Context, actor Actor, filter ListFilter) ([]SubmissionResponse, error)

	// AttachmentPath resolves the stored file path for download, applying
	// the access predicate.
	AttachmentPath(ctx context.Context, actor Actor, id string) (string, error)
}
