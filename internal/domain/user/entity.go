package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages employees, reviews and exports reports
	RoleEmployee Role = "employee" // Submits daily work reports
)

type EmploymentType string

const (
	EmploymentInhouse    EmploymentType = "inhouse"
	EmploymentFreelancer EmploymentType = "freelancer"
)

type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	EmploymentType EmploymentType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin checks if the user holds admin privilege.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsFreelancer checks if the user works on a freelance basis.
func (u *User) IsFreelancer() bool {
	return u.EmploymentType == EmploymentFreelancer
}
