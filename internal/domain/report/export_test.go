package report

import (
	"testing"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyReportRows_PrivilegedFreelancer(t *testing.T) {
	subs := []submission.Submission{
		{
			Date:             day("2024-05-01"),
			SubmissionNumber: 1,
			ClientName:       "Acme",
			WorkType:         "Poster",
			Quantity:         3,
			WorkText:         "Design poster",
			CreatedAt:        time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			Date:             day("2024-05-02"),
			SubmissionNumber: 1,
			ClientName:       "Acme",
			WorkType:         "Reel",
			Quantity:         1,
			WorkText:         "Cut reel",
			CreatedAt:        time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	rs, err := MonthlyReportRows(subs, "freelancer", freelancerCalc(), true)
	require.NoError(t, err)

	// Amount sits immediately after Qty.
	assert.Equal(t, []string{"Date", "Submission #", "Client", "Work Type", "Qty", "Amount", "Description", "Submitted At"}, rs.Columns)
	require.Len(t, rs.Rows, 2)
	assert.Equal(t, []any{"2024-05-01", 1, "Acme", "Poster", 3, 900, "Design poster", "2024-05-01 09:30:00"}, rs.Rows[0])

	// Freelancer report carries the TOTAL row: label under Qty, sum under Amount.
	require.NotNil(t, rs.Total)
	assert.Equal(t, "TOTAL:", rs.Total[4])
	assert.Equal(t, 1500, rs.Total[5])
}

func TestMonthlyReportRows_UnprivilegedInhouse(t *testing.T) {
	subs := []submission.Submission{
		{Date: day("2024-05-01"), SubmissionNumber: 1, ClientName: "Acme", WorkType: "Poster", Quantity: 3},
	}

	rs, err := MonthlyReportRows(subs, "inhouse", freelancerCalc(), false)
	require.NoError(t, err)

	// No amount derivation for an unpriced, unprivileged view.
	assert.Equal(t, []string{"Date", "Submission #", "Client", "Work Type", "Qty", "Description", "Submitted At"}, rs.Columns)
	assert.Nil(t, rs.Total)
}

func TestMonthlyReportRows_InhouseAdminNoTotal(t *testing.T) {
	subs := []submission.Submission{
		{Date: day("2024-05-01"), SubmissionNumber: 1, ClientName: "Acme", WorkType: "Poster", Quantity: 3},
	}

	rs, err := MonthlyReportRows(subs, "inhouse", freelancerCalc(), true)
	require.NoError(t, err)

	// Admin sees the Amount column, but only freelancer reports get totals.
	assert.Contains(t, rs.Columns, "Amount")
	assert.Nil(t, rs.Total)
}

func TestMonthlyReportRows_Empty(t *testing.T) {
	_, err := MonthlyReportRows(nil, "freelancer", freelancerCalc(), true)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestFilteredReportRows_CanonicalOrder(t *testing.T) {
	inhouse := "inhouse"
	freelancer := "freelancer"
	subs := []submission.Submission{
		{
			Date:           day("2024-05-01"),
			UserName:       strPtr("Bob"),
			EmploymentType: &freelancer,
			ClientCategory: strPtr("Social"),
			ClientName:     "Acme",
			WorkType:       "Poster",
			Quantity:       2,
			WorkText:       "Posters",
			CreatedAt:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Date:           day("2024-05-01"),
			UserName:       strPtr("Alice"),
			EmploymentType: &inhouse,
			ClientName:     "Zen",
			WorkType:       "Video",
			Quantity:       1,
			WorkText:       "Edit",
			CreatedAt:      time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	rs, err := FilteredReportRows(subs, freelancerCalc())
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Employee Name", "Type", "Category", "Client", "Work Type", "Qty", "Amount", "Description", "Submitted At"}, rs.Columns)
	require.Len(t, rs.Rows, 2)

	// Freelancer row is priced, inhouse row is zero under freelancer-only policy.
	assert.Equal(t, []any{"2024-05-01", "Bob", "freelancer", "Social", "Acme", "Poster", 2, 600, "Posters", "2024-05-01 09:00:00"}, rs.Rows[0])
	assert.Equal(t, []any{"2024-05-01", "Alice", "inhouse", "", "Zen", "Video", 1, 0, "Edit", "2024-05-01 11:00:00"}, rs.Rows[1])
	assert.Nil(t, rs.Total)
}

func TestFilteredReportRows_DropsAbsentCategory(t *testing.T) {
	inhouse := "inhouse"
	subs := []submission.Submission{
		{Date: day("2024-05-01"), UserName: strPtr("Alice"), EmploymentType: &inhouse, ClientName: "Zen", WorkType: "Video", Quantity: 1},
	}

	rs, err := FilteredReportRows(subs, freelancerCalc())
	require.NoError(t, err)
	assert.NotContains(t, rs.Columns, "Category")
}

func TestFilteredReportRows_Empty(t *testing.T) {
	_, err := FilteredReportRows(nil, freelancerCalc())
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportFilenames(t *testing.T) {
	assert.Equal(t, "Jane_Doe_2024-05_report.xlsx", MonthlyReportFilename("Jane Doe", "2024-05"))

	now := time.Date(2024, 5, 31, 17, 45, 9, 0, time.UTC)
	assert.Equal(t, "Work_Reports_Export_20240531_174509.xlsx", FilteredReportFilename(now))
}

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, ValidateMonth("2024-05"))
	assert.ErrorIs(t, ValidateMonth(""), ErrMonthRequired)
	assert.ErrorIs(t, ValidateMonth("2024-13"), ErrInvalidMonth)
	assert.ErrorIs(t, ValidateMonth("24-05"), ErrInvalidMonth)
	assert.ErrorIs(t, ValidateMonth("2024-05-01"), ErrInvalidMonth)
}
