package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Amount_FreelancerOnly(t *testing.T) {
	calc := NewCalculator(DefaultRateTable(), PolicyFreelancerOnly)

	assert.Equal(t, 900, calc.Amount("Poster", 3, "freelancer"))
	assert.Equal(t, 1200, calc.Amount("Reel", 2, "freelancer"))
	assert.Equal(t, 600, calc.Amount("Video", 1, "freelancer"))

	// Inhouse work is never priced under this policy.
	assert.Equal(t, 0, calc.Amount("Poster", 3, "inhouse"))

	// Unknown work types rate 0, no error.
	assert.Equal(t, 0, calc.Amount("Unknown", 5, "freelancer"))
	assert.Equal(t, 0, calc.Amount("", 5, "freelancer"))
}

func TestCalculator_Amount_AllCategories(t *testing.T) {
	calc := NewCalculator(DefaultRateTable(), PolicyAllCategories)

	assert.Equal(t, 900, calc.Amount("Poster", 3, "inhouse"))
	assert.Equal(t, 900, calc.Amount("Poster", 3, "freelancer"))
}

func TestCalculator_Amount_QuantityCoercion(t *testing.T) {
	calc := NewCalculator(DefaultRateTable(), PolicyFreelancerOnly)

	assert.Equal(t, 900, calc.Amount("Poster", "3", "freelancer"))
	assert.Equal(t, 0, calc.Amount("Poster", nil, "freelancer"))
	assert.Equal(t, 0, calc.Amount("Poster", "", "freelancer"))
	assert.Equal(t, 0, calc.Amount("Poster", "abc", "freelancer"))

	// Negative quantities pass through the calculator unclamped; rejection
	// happens at submission validation, not here.
	assert.Equal(t, -300, calc.Amount("Poster", -1, "freelancer"))
}

func TestCalculator_ExactMultiplication(t *testing.T) {
	rates := RateTable{"Poster": 300, "Reel": 600, "Video": 600}
	calc := NewCalculator(rates, PolicyFreelancerOnly)

	for wt, rate := range rates {
		for qty := 0; qty <= 10; qty++ {
			assert.Equal(t, rate*qty, calc.Amount(wt, qty, "freelancer"))
		}
	}
}

func TestCoerceQuantity(t *testing.T) {
	three := 3
	cases := []struct {
		in   any
		want int
	}{
		{3, 3},
		{int32(3), 3},
		{int64(3), 3},
		{3.0, 3},
		{3.5, 0},
		{"3", 3},
		{" 3 ", 3},
		{"x", 0},
		{"", 0},
		{nil, 0},
		{&three, 3},
		{(*int)(nil), 0},
		{true, 0},
		{-4, -4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CoerceQuantity(c.in), "CoerceQuantity(%v)", c.in)
	}
}

func TestParseRateTable(t *testing.T) {
	rt, err := ParseRateTable("Poster=300, Reel=600,Video=600")
	require.NoError(t, err)
	assert.Equal(t, 300, rt.Rate("Poster"))
	assert.Equal(t, 600, rt.Rate("Reel"))
	assert.Equal(t, 600, rt.Rate("Video"))

	_, err = ParseRateTable("Poster")
	assert.Error(t, err)

	_, err = ParseRateTable("Poster=abc")
	assert.Error(t, err)

	_, err = ParseRateTable("Poster=-1")
	assert.Error(t, err)

	rt, err = ParseRateTable("")
	require.NoError(t, err)
	assert.Empty(t, rt)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("freelancer_only")
	require.NoError(t, err)
	assert.Equal(t, PolicyFreelancerOnly, p)

	p, err = ParsePolicy(" ALL_CATEGORIES ")
	require.NoError(t, err)
	assert.Equal(t, PolicyAllCategories, p)

	_, err = ParsePolicy("both")
	assert.Error(t, err)
}
