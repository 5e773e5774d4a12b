package report

import (
	"regexp"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
)

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidateMonth checks a YYYY-MM period parameter.
func ValidateMonth(month string) error {
	if month == "" {
		return ErrMonthRequired
	}
	if !monthRegex.MatchString(month) {
		return ErrInvalidMonth
	}
	return nil
}

// EmployeeReportsResponse is the per-employee overview: full history plus
// the month-by-month statistics.
type EmployeeReportsResponse struct {
	EmployeeID     string                          `json:"employee_id"`
	EmployeeName   string                          `json:"employee_name"`
	EmploymentType string                          `json:"employment_type"`
	Submissions    []submission.SubmissionResponse `json:"submissions"`
	MonthlyStats   []MonthlyStat                   `json:"monthly_stats"`
}

// MonthlyReportResponse is one subject's single-month view with per-day
// totals for calendar displays.
type MonthlyReportResponse struct {
	EmployeeID     string                          `json:"employee_id"`
	EmployeeName   string                          `json:"employee_name"`
	EmploymentType string                          `json:"employment_type"`
	Month          string                          `json:"month"`
	Submissions    []submission.SubmissionResponse `json:"submissions"`
	DailyTotals    map[string]int                  `json:"daily_totals"`
	TotalAmount    int                             `json:"total_amount"`
}

// ExportFile is a rendered spreadsheet plus its suggested filename.
type ExportFile struct {
	Filename string
	Content  []byte
}
