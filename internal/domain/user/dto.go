package user

import (
	"github.com/iramedia/workreport-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE MANAGEMENT DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	EmploymentType string `json:"employment_type"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.EmploymentType == "" {
		r.EmploymentType = string(EmploymentInhouse)
	}
	if !validator.IsInSlice(r.EmploymentType, []string{string(EmploymentInhouse), string(EmploymentFreelancer)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be inhouse or freelancer",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             string `json:"-"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"` // optional; empty keeps the current one
	EmploymentType string `json:"employment_type"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.EmploymentType != "" &&
		!validator.IsInSlice(r.EmploymentType, []string{string(EmploymentInhouse), string(EmploymentFreelancer)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be inhouse or freelancer",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Password != "" {
		if len(r.Password) < 8 {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must be at least 8 characters",
			})
		}
		if r.Password != r.ConfirmPassword {
			errs = append(errs, validator.ValidationError{
				Field:   "confirm_password",
				Message: "passwords do not match",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	EmploymentType string `json:"employment_type"`
	CreatedAt      string `json:"created_at"`
}

func ToEmployeeResponse(u User) EmployeeResponse {
	return EmployeeResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		EmploymentType: string(u.EmploymentType),
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// EmployeeWithAmountResponse decorates an employee with the computed amount
// for the current month; used on the admin dashboard freelancer list.
type EmployeeWithAmountResponse struct {
	EmployeeResponse
	MonthlyAmount int `json:"monthly_amount"`
}

type ListEmployeesFilter struct {
	EmploymentType *string
}
