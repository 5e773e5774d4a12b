package pricing

import (
	"strconv"
	"strings"
)

// EmploymentFreelancer is the employment category priced under PolicyFreelancerOnly.
// The canonical value set lives in the user domain; pricing only compares labels.
const EmploymentFreelancer = "freelancer"

// Calculator computes submission amounts from an injected rate table and
// policy. Amounts are derived on read and never stored, so changing the rate
// table retroactively changes reported amounts for historical submissions.
type Calculator struct {
	Rates  RateTable
	Policy Policy
}

// NewCalculator builds a calculator. A nil rate table prices everything 0.
func NewCalculator(rates RateTable, policy Policy) Calculator {
	return Calculator{Rates: rates, Policy: policy}
}

// Priced reports whether the active policy prices the given employment category.
func (c Calculator) Priced(employment string) bool {
	if c.Policy == PolicyAllCategories {
		return true
	}
	return employment == EmploymentFreelancer
}

// Amount returns rate[workType] * quantity for the given employment category.
// Unknown work types rate 0. Quantity is coerced with CoerceQuantity and a
// negative quantity passes through, yielding a negative amount.
func (c Calculator) Amount(workType string, quantity any, employment string) int {
	if !c.Priced(employment) {
		return 0
	}
	return c.Rates.Rate(workType) * CoerceQuantity(quantity)
}

// CoerceQuantity converts an arbitrary value to an integer quantity. Anything
// that cannot be parsed as an integer, including nil and empty strings,
// coerces to 0. It never fails; malformed export rows must not abort pricing.
func CoerceQuantity(v any) int {
	switch q := v.(type) {
	case nil:
		return 0
	case int:
		return q
	case int32:
		return int(q)
	case int64:
		return int(q)
	case float64:
		if q != float64(int(q)) {
			return 0
		}
		return int(q)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0
		}
		return n
	case *int:
		if q == nil {
			return 0
		}
		return *q
	default:
		return 0
	}
}
