package pricing

import (
	"fmt"
	"strings"
)

// Policy selects which employment categories the rate table applies to.
type Policy string

const (
	// PolicyFreelancerOnly prices freelancer work only; inhouse work is always 0.
	PolicyFreelancerOnly Policy = "freelancer_only"
	// PolicyAllCategories applies the rate table to every employment category.
	PolicyAllCategories Policy = "all_categories"
)

// ParsePolicy parses a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyFreelancerOnly:
		return PolicyFreelancerOnly, nil
	case PolicyAllCategories:
		return PolicyAllCategories, nil
	default:
		return "", fmt.Errorf("unknown pricing policy: %q", s)
	}
}

// RateTable maps a work-type label to its per-unit rate.
type RateTable map[string]int

// Rate returns the per-unit rate for a work type. Unknown work types rate 0.
func (rt RateTable) Rate(workType string) int {
	return rt[workType]
}

// WorkTypes returns the priced work-type labels, unordered.
func (rt RateTable) WorkTypes() []string {
	types := make([]string, 0, len(rt))
	for wt := range rt {
		types = append(types, wt)
	}
	return types
}

// ParseRateTable parses a "Label=rate,Label=rate" configuration string.
func ParseRateTable(s string) (RateTable, error) {
	rt := make(RateTable)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		label, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid rate table entry: %q", pair)
		}
		rate, err := parseRate(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %q: %w", label, err)
		}
		rt[strings.TrimSpace(label)] = rate
	}
	return rt, nil
}

func parseRate(value string) (int, error) {
	var rate int
	if _, err := fmt.Sscanf(value, "%d", &rate); err != nil {
		return 0, err
	}
	if rate < 0 {
		return 0, fmt.Errorf("rate must not be negative")
	}
	return rate, nil
}

// DefaultRateTable returns the rates the product launched with.
func DefaultRateTable() RateTable {
	return RateTable{
		"Poster": 300,
		"Reel":   600,
		"Video":  600,
	}
}
