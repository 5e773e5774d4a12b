package report

import (
	"sort"
	"strings"

	"github.com/iramedia/workreport-backend-go/internal/domain/pricing"
	"github.com/iramedia/workreport-backend-go/internal/domain/submission"
)

// The aggregation views are pure transformations over an already-filtered
// submission set. Aggregating zero rows yields an empty result, never an
// error.

// MonthlyStat summarizes one calendar month of a person's submissions.
type MonthlyStat struct {
	Month         string `json:"month"` // YYYY-MM
	Count         int    `json:"count"`
	DaysSubmitted int    `json:"days_submitted"`
	TotalAmount   int    `json:"total_amount"`
}

// MonthlySummaries groups submissions by calendar month and sums the
// computed amount per group, newest month first.
func MonthlySummaries(subs []submission.Submission, calc pricing.Calculator, employment string) []MonthlyStat {
	type bucket struct {
		count  int
		days   map[string]struct{}
		amount int
	}
	buckets := make(map[string]*bucket)
	for _, s := range subs {
		key := submission.MonthKey(s.Date)
		b := buckets[key]
		if b == nil {
			b = &bucket{days: make(map[string]struct{})}
			buckets[key] = b
		}
		b.count++
		b.days[submission.DateKey(s.Date)] = struct{}{}
		b.amount += calc.Amount(s.WorkType, s.Quantity, employment)
	}

	stats := make([]MonthlyStat, 0, len(buckets))
	for month, b := range buckets {
		stats = append(stats, MonthlyStat{
			Month:         month,
			Count:         b.count,
			DaysSubmitted: len(b.days),
			TotalAmount:   b.amount,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month > stats[j].Month })
	return stats
}

// DailyTotals sums the computed amount per exact date, keyed by the
// canonical YYYY-MM-DD projection for stable downstream consumption.
func DailyTotals(subs []submission.Submission, calc pricing.Calculator, employment string) map[string]int {
	totals := make(map[string]int)
	for _, s := range subs {
		totals[submission.DateKey(s.Date)] += calc.Amount(s.WorkType, s.Quantity, employment)
	}
	return totals
}

// TotalAmount sums the computed amount over the whole set.
func TotalAmount(subs []submission.Submission, calc pricing.Calculator, employment string) int {
	total := 0
	for _, s := range subs {
		total += calc.Amount(s.WorkType, s.Quantity, employment)
	}
	return total
}

// PivotRow is one (person, client) row of the work-type pivot.
type PivotRow struct {
	Person     string         `json:"person"`
	Client     string         `json:"client"`
	Quantities map[string]int `json:"quantities"` // work type -> summed qty
	Total      int            `json:"total"`
	Count      int            `json:"count"`
}

// PivotTable is the person x client matrix with one column per work type
// observed in the filtered set.
type PivotTable struct {
	WorkTypes []string   `json:"work_types"`
	Rows      []PivotRow `json:"rows"`
}

// BuildPivot groups submissions by (effective display name, client) and sums
// quantities per work type. Rows sort by person then client, both
// case-insensitive, with an empty client last within its person.
func BuildPivot(subs []submission.Submission) PivotTable {
	type key struct{ person, client string }

	workTypes := make(map[string]struct{})
	rows := make(map[key]*PivotRow)
	for _, s := range subs {
		workTypes[s.WorkType] = struct{}{}
		k := key{person: s.DisplayName(), client: s.ClientName}
		row := rows[k]
		if row == nil {
			row = &PivotRow{
				Person:     k.person,
				Client:     k.client,
				Quantities: make(map[string]int),
			}
			rows[k] = row
		}
		row.Quantities[s.WorkType] += s.Quantity
		row.Total += s.Quantity
		row.Count++
	}

	table := PivotTable{
		WorkTypes: make([]string, 0, len(workTypes)),
		Rows:      make([]PivotRow, 0, len(rows)),
	}
	for wt := range workTypes {
		table.WorkTypes = append(table.WorkTypes, wt)
	}
	sort.Strings(table.WorkTypes)

	for _, row := range rows {
		table.Rows = append(table.Rows, *row)
	}
	sort.Slice(table.Rows, func(i, j int) bool {
		a, b := table.Rows[i], table.Rows[j]
		pa, pb := strings.ToLower(a.Person), strings.ToLower(b.Person)
		if pa != pb {
			return pa < pb
		}
		// Empty client sorts last within the same person.
		if (a.Client == "") != (b.Client == "") {
			return b.Client == ""
		}
		return strings.ToLower(a.Client) < strings.ToLower(b.Client)
	})
	return table
}
