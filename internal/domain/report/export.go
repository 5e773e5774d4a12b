package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/domain/pricing"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
)

// RowSet is a column-labeled result set shaped for the export sink. Total,
// when present, is a row aligned with Columns that the sink renders visually
// distinguished after the data rows.
type RowSet struct {
	SheetName string
	Columns   []string
	Rows      [][]any
	Total     []any
}

// canonicalColumns is the fixed column order for multi-employee exports.
// Columns absent from the source row set are dropped.
var canonicalColumns = []string{
	"Date", "Employee Name", "Type", "Category", "Client",
	"Work Type", "Qty", "Amount", "Description", "Submitted At",
}

const timestampLayout = "2006-01-02 15:04:05"

// MonthlyReportRows shapes a single subject's monthly submissions for
// export. The Amount column is derived and inserted immediately after Qty
// when the viewer is privileged or the active policy prices the subject's
// category; a freelancer report with amounts also carries a bold TOTAL row.
func MonthlyReportRows(subs []submission.Submission, subjectEmployment string, calc pricing.Calculator, privileged bool) (RowSet, error) {
	if len(subs) == 0 {
		return RowSet{}, ErrNothingToExport
	}

	withAmount := privileged || calc.Priced(subjectEmployment)

	columns := []string{"Date", "Submission #", "Client", "Work Type", "Qty", "Description", "Submitted At"}
	if withAmount {
		columns = insertAfter(columns, "Qty", "Amount")
	}

	rs := RowSet{SheetName: "Monthly Report", Columns: columns}
	total := 0
	for _, s := range subs {
		row := []any{
			submission.DateKey(s.Date),
			s.SubmissionNumber,
			s.ClientName,
			s.WorkType,
			s.Quantity,
			s.WorkText,
			s.CreatedAt.Format(timestampLayout),
		}
		if withAmount {
			amount := calc.Amount(s.WorkType, s.Quantity, subjectEmployment)
			total += amount
			row = insertAt(row, indexOf(columns, "Amount"), amount)
		}
		rs.Rows = append(rs.Rows, row)
	}

	if withAmount && subjectEmployment == pricing.EmploymentFreelancer {
		rs.Total = totalRow(columns, total)
	}

	return rs, nil
}

// FilteredReportRows shapes an admin's filtered multi-employee export using
// the canonical column order. Amounts are computed per row from each row's
// own employment category.
func FilteredReportRows(subs []submission.Submission, calc pricing.Calculator) (RowSet, error) {
	if len(subs) == 0 {
		return RowSet{}, ErrNothingToExport
	}

	hasCategory := false
	for _, s := range subs {
		if s.ClientCategory != nil && *s.ClientCategory != "" {
			hasCategory = true
			break
		}
	}

	columns := make([]string, 0, len(canonicalColumns))
	for _, col := range canonicalColumns {
		if col == "Category" && !hasCategory {
			continue
		}
		columns = append(columns, col)
	}

	rs := RowSet{SheetName: "All Submissions", Columns: columns}
	for _, s := range subs {
		employment := ""
		if s.EmploymentType != nil {
			employment = *s.EmploymentType
		}
		values := map[string]any{
			"Date":          submission.DateKey(s.Date),
			"Employee Name": s.DisplayName(),
			"Type":          employment,
			"Client":        s.ClientName,
			"Work Type":     s.WorkType,
			"Qty":           s.Quantity,
			"Amount":        calc.Amount(s.WorkType, s.Quantity, employment),
			"Description":   s.WorkText,
			"Submitted At":  s.CreatedAt.Format(timestampLayout),
		}
		if hasCategory {
			category := ""
			if s.ClientCategory != nil {
				category = *s.ClientCategory
			}
			values["Category"] = category
		}
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = values[col]
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}

// MonthlyReportFilename suggests "<Subject_Name>_<YYYY-MM>_report.xlsx".
func MonthlyReportFilename(subjectName, month string) string {
	return fmt.Sprintf("%s_%s_report.xlsx", strings.ReplaceAll(subjectName, " ", "_"), month)
}

// FilteredReportFilename suggests a timestamped export name.
func FilteredReportFilename(now time.Time) string {
	return fmt.Sprintf("Work_Reports_Export_%s.xlsx", now.Format("20060102_150405"))
}

// totalRow builds a TOTAL row aligned with columns: the label lands in the
// Qty column, the value in the Amount column.
func totalRow(columns []string, total int) []any {
	row := make([]any, len(columns))
	for i := range row {
		row[i] = ""
	}
	row[indexOf(columns, "Qty")] = "TOTAL:"
	row[indexOf(columns, "Amount")] = total
	return row
}

func indexOf(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}

func insertAfter(columns []string, after, name string) []string {
	idx := indexOf(columns, after)
	out := make([]string, 0, len(columns)+1)
	out = append(out, columns[:idx+1]...)
	out = append(out, name)
	out = append(out, columns[idx+1:]...)
	return out
}

func insertAt(row []any, idx int, value any) []any {
	out := make([]any, 0, len(row)+1)
	out = append(out, row[:idx]...)
	out = append(out, value)
	out = append(out, row[idx:]...)
	return out
}
