package report

import (
	"testing"
	"time"

	"github.com/iramedia/workreport-backend-go/internal/domain/pricing"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func freelancerCalc() pricing.Calculator {
	return pricing.NewCalculator(pricing.DefaultRateTable(), pricing.PolicyFreelancerOnly)
}

func TestMonthlySummaries_TwoMonths(t *testing.T) {
	subs := []submission.Submission{
		{Date: day("2024-05-01"), WorkType: "Poster", Quantity: 3},
		{Date: day("2024-05-01"), WorkType: "Reel", Quantity: 1},
		{Date: day("2024-05-14"), WorkType: "Video", Quantity: 2},
		{Date: day("2024-06-02"), WorkType: "Poster", Quantity: 1},
	}

	stats := MonthlySummaries(subs, freelancerCalc(), "freelancer")
	require.Len(t, stats, 2)

	// Newest month first.
	assert.Equal(t, "2024-06", stats[0].Month)
	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, 1, stats[0].DaysSubmitted)
	assert.Equal(t, 300, stats[0].TotalAmount)

	assert.Equal(t, "2024-05", stats[1].Month)
	assert.Equal(t, 3, stats[1].Count)
	assert.Equal(t, 2, stats[1].DaysSubmitted)
	assert.Equal(t, 3*300+600+2*600, stats[1].TotalAmount)
}

func TestMonthlySummaries_InhouseUnpriced(t *testing.T) {
	subs := []submission.Submission{
		{Date: day("2024-05-01"), WorkType: "Poster", Quantity: 3},
	}
	stats := MonthlySummaries(subs, freelancerCalc(), "inhouse")
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].TotalAmount)
	assert.Equal(t, 1, stats[0].Count)
}

func TestMonthlySummaries_Empty(t *testing.T) {
	stats := MonthlySummaries(nil, freelancerCalc(), "freelancer")
	assert.Empty(t, stats)
}

func TestDailyTotals_CanonicalKeys(t *testing.T) {
	subs := []submission.Submission{
		{Date: day("2024-05-01"), WorkType: "Poster", Quantity: 1},
		{Date: day("2024-05-01"), WorkType: "Reel", Quantity: 1},
		{Date: day("2024-05-03"), WorkType: "Unknown", Quantity: 7},
	}

	totals := DailyTotals(subs, freelancerCalc(), "freelancer")
	assert.Equal(t, map[string]int{
		"2024-05-01": 900,
		"2024-05-03": 0,
	}, totals)
}

func TestTotalAmount(t *testing.T) {
	subs := []submission.Submission{
		{Date: day("2024-05-01"), WorkType: "Poster", Quantity: 3},
		{Date: day("2024-05-02"), WorkType: "Reel", Quantity: 2},
	}
	assert.Equal(t, 2100, TotalAmount(subs, freelancerCalc(), "freelancer"))
	assert.Equal(t, 0, TotalAmount(nil, freelancerCalc(), "freelancer"))
}

func TestBuildPivot(t *testing.T) {
	subs := []submission.Submission{
		{UserName: strPtr("bob"), ClientName: "Acme", WorkType: "Poster", Quantity: 2},
		{UserName: strPtr("bob"), ClientName: "Acme", WorkType: "Poster", Quantity: 1},
		{UserName: strPtr("bob"), ClientName: "Zen", WorkType: "Reel", Quantity: 4},
		{UserName: strPtr("Alice"), ClientName: "acme", WorkType: "Video", Quantity: 1},
		// Self-work entry: the override name wins over the owner's name.
		{UserName: strPtr("Admin"), EmployeeName: strPtr("Carol"), ClientName: "", WorkType: "Poster", Quantity: 5},
	}

	table := BuildPivot(subs)

	assert.Equal(t, []string{"Poster", "Reel", "Video"}, table.WorkTypes)
	require.Len(t, table.Rows, 4)

	// Case-insensitive person order: Alice, bob, bob, Carol.
	assert.Equal(t, "Alice", table.Rows[0].Person)
	assert.Equal(t, "acme", table.Rows[0].Client)
	assert.Equal(t, 1, table.Rows[0].Total)

	assert.Equal(t, "bob", table.Rows[1].Person)
	assert.Equal(t, "Acme", table.Rows[1].Client)
	assert.Equal(t, map[string]int{"Poster": 3}, table.Rows[1].Quantities)
	assert.Equal(t, 3, table.Rows[1].Total)
	assert.Equal(t, 2, table.Rows[1].Count)

	assert.Equal(t, "bob", table.Rows[2].Person)
	assert.Equal(t, "Zen", table.Rows[2].Client)

	assert.Equal(t, "Carol", table.Rows[3].Person)
	assert.Equal(t, "", table.Rows[3].Client)
	assert.Equal(t, 5, table.Rows[3].Total)
}

func TestBuildPivot_EmptyClientSortsLast(t *testing.T) {
	subs := []submission.Submission{
		{UserName: strPtr("bob"), ClientName: "", WorkType: "Poster", Quantity: 1},
		{UserName: strPtr("bob"), ClientName: "Acme", WorkType: "Poster", Quantity: 1},
	}
	table := BuildPivot(subs)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Acme", table.Rows[0].Client)
	assert.Equal(t, "", table.Rows[1].Client)
}

func TestBuildPivot_Empty(t *testing.T) {
	table := BuildPivot(nil)
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.WorkTypes)
}
