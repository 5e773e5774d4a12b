package user

import "context"

type UserService interface {
	// CreateEmployee registers a new non-admin account.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees returns non-admin accounts ordered by name.
	ListEmployees(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an account and its submissions. Admin accounts
	// and the caller's own account cannot be deleted.
	DeleteEmployee(ctx context.Context, actorID string, id string) error

	GetProfile(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (EmployeeResponse, error)

	// EnsureDefaultAdmin creates the bootstrap admin account when no admin
	// exists yet. Called once at startup.
	EnsureDefaultAdmin(ctx context.Context, name, email, password string) error
}
