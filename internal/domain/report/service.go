package report

import (
	"context"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
)

// ReportService builds the read-side views: per-employee history, monthly
// reports, the pivot, and spreadsheet exports. Every operation applies the
// self-or-admin access predicate before touching a subject's records.
type ReportService interface {
	EmployeeReports(ctx context.Context, actor submission.Actor, employeeID string) (EmployeeReportsResponse, error)

	MonthlyReport(ctx context.Context, actor submission.Actor, employeeID, month string) (MonthlyReportResponse, error)

	ExportMonthlyReport(ctx context.Context, actor submission.Actor, employeeID, month string) (ExportFile, error)

	// ExportFiltered renders the admin's filtered submission list.
	ExportFiltered(ctx context.Context, actor submission.Actor, filter submission.ListFilter) (ExportFile, error)

	// Pivot builds the person x client x work-type matrix over a filtered set.
	Pivot(ctx context.Context, actor submission.Actor, filter submission.ListFilter) (PivotTable, error)

	// MonthlyAmountFor computes one user's priced total for a month; used on
	// the admin dashboard's freelancer list.
	MonthlyAmountFor(ctx context.Context, userID, employment, month string) (int, error)
}
