package submission

import "time"

// Submission is one work-log entry for a given day. SubmissionNumber is a
// 1-based sequence per (user, date) assigned at insert time; deleting a row
// leaves a gap, siblings are never renumbered.
type Submission struct {
	ID               string
	UserID           string
	WorkText         string
	ClientCategory   *string
	ClientName       string
	WorkType         string
	Quantity         int
	FilePath         *string
	Date             time.Time
	SubmissionNumber int
	// EmployeeName overrides the display name when an admin logs work on
	// behalf of an unregistered contributor ("self work").
	EmployeeName *string
	CreatedAt    time.Time

	// Join
	UserName       *string
	UserEmail      *string
	EmploymentType *string
}

// DateKey projects a date to the canonical YYYY-MM-DD string used for all
// external-facing keys (JSON, chart data, grouping), regardless of the
// store's native date representation.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey projects a date to its canonical YYYY-MM month key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DisplayName returns the effective display name for a submission: the
// EmployeeName override when present, else the owning user's name.
func (s Submission) DisplayName() string {
	if s.EmployeeName != nil && *s.EmployeeName != "" {
		return *s.EmployeeName
	}
	if s.UserName != nil {
		return *s.UserName
	}
	return ""
}
