package submission

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/pkg/validator"
)

// Attachment extensions accepted on submit/edit, mirroring the product's
// upload allow-list.
var allowedExtensions = []string{
	".txt", ".pdf", ".doc", ".docx", ".xls", ".xlsx", ".png", ".jpg", ".jpeg", ".gif",
}

const maxAttachmentSize = 16 << 20 // 16MB

// ========================================
// SUBMISSION DTOs
// ========================================

type SubmitRequest struct {
	UserID         string  `json:"-"`
	WorkText       string  `json:"work_text"`
	ClientCategory *string `json:"client_category"`
	ClientName     string  `json:"client_name"`
	WorkType       string  `json:"work_type"`
	Quantity       *int    `json:"quantity"` // nil defaults to 1
	Date           string  `json:"date"`     // YYYY-MM-DD; empty means today
	EmployeeName   *string `json:"employee_name"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkText) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_text",
			Message: "a description of the work is required",
		})
	}

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_name",
			Message: "client_name is required",
		})
	}

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	}

	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if r.Date != "" {
		date, ok := validator.IsValidDate(r.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		} else if date.After(Today()) {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must not be in the future",
			})
		}
	}

	if r.FileHeader != nil {
		if err := validateAttachment(r.FileHeader); err != nil {
			errs = append(errs, *err)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EffectiveQuantity applies the default of 1 for an omitted quantity.
func (r *SubmitRequest) EffectiveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// EffectiveDate resolves the submission date, defaulting to today.
// Validate must have accepted the request first.
func (r *SubmitRequest) EffectiveDate() time.Time {
	if r.Date == "" {
		return Today()
	}
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type UpdateRequest struct {
	ID             string  `json:"-"`
	WorkText       string  `json:"work_text"`
	ClientCategory *string `json:"client_category"`
	ClientName     string  `json:"client_name"`
	WorkType       string  `json:"work_type"`
	Quantity       *int    `json:"quantity"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkText) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_text",
			Message: "a description of the work is required",
		})
	}

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_name",
			Message: "client_name is required",
		})
	}

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	}

	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	if r.FileHeader != nil {
		if err := validateAttachment(r.FileHeader); err != nil {
			errs = append(errs, *err)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateAttachment(header *multipart.FileHeader) *validator.ValidationError {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !validator.IsInSlice(ext, allowedExtensions) {
		return &validator.ValidationError{
			Field:   "file",
			Message: "file type not allowed",
		}
	}
	if header.Size > maxAttachmentSize {
		return &validator.ValidationError{
			Field:   "file",
			Message: "file must not exceed 16MB",
		}
	}
	return nil
}

// ListFilter narrows admin submission queries. Text matches on name fields
// are case-insensitive substring matches.
type ListFilter struct {
	UserID           *string
	EmployeeNameLike *string
	Date             *string // exact YYYY-MM-DD
	StartDate        *string
	EndDate          *string
	Month            *string // YYYY-MM
	EmploymentType   *string
	ClientName       *string

	// OrderAscending flips the default newest-first ordering; single-month
	// report views read top to bottom chronologically.
	OrderAscending bool
}

type SubmissionResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	EmployeeName     string  `json:"employee_name"`
	WorkText         string  `json:"work_text"`
	ClientCategory   *string `json:"client_category,omitempty"`
	ClientName       string  `json:"client_name"`
	WorkType         string  `json:"work_type"`
	Quantity         int     `json:"quantity"`
	HasAttachment    bool    `json:"has_attachment"`
	Date             string  `json:"date"`
	SubmissionNumber int     `json:"submission_number"`
	Amount           *int    `json:"amount,omitempty"`
	SubmittedAt      string  `json:"submitted_at"`
}

func ToResponse(s Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		EmployeeName:     s.DisplayName(),
		WorkText:         s.WorkText,
		ClientCategory:   s.ClientCategory,
		ClientName:       s.ClientName,
		WorkType:         s.WorkType,
		Quantity:         s.Quantity,
		HasAttachment:    s.FilePath != nil && *s.FilePath != "",
		Date:             DateKey(s.Date),
		SubmissionNumber: s.SubmissionNumber,
		SubmittedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
