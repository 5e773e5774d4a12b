package user

import "context"

// UserRepository defines data access methods for user accounts.
// Name and email matching is case-insensitive at the store level.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByName(ctx context.Context, name string) (User, error)

	// List retrieves non-admin users, optionally filtered by employment type,
	// ordered by name.
	List(ctx context.Context, filter ListEmployeesFilter) ([]User, error)

	Update(ctx context.Context, u User) error

	// Delete removes a user; the store cascades the delete to the user's
	// submissions.
	Delete(ctx context.Context, id string) error

	// CountAdmins reports how many admin accounts exist. Used by the
	// first-startup bootstrap.
	CountAdmins(ctx context.Context) (int, error)
}
