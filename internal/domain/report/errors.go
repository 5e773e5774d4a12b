package report

import "errors"

var (
	// ErrNothingToExport means the filtered set was empty; no file is produced.
	ErrNothingToExport = errors.New("no submissions found to export")

	ErrMonthRequired = errors.New("month is required")
	ErrInvalidMonth  = errors.New("month must be in YYYY-MM format")
)
