package riskfolio

import (
	"math"
	"testing"

	"github.com/etnz/riskfolio/date"
)

// day parses a date or fails the test.
func day(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.Parse(s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return d
}

// tradingDays returns n consecutive days starting 2026-01-01.
func tradingDays(t *testing.T, n int) []date.Date {
	t.Helper()
	days := make([]date.Date, n)
	d := day(t, "2026-01-01")
	for i := range days {
		days[i] = d.Add(i)
	}
	return days
}

// table builds a validated price table over consecutive days, one
// price series per asset, in the given asset order.
func table(t *testing.T, assets []string, prices map[string][]float64) *PriceTable {
	t.Helper()
	b := NewPriceTableBuilder().Currency("USD")
	for _, asset := range assets {
		series := prices[asset]
		days := tradingDays(t, len(series))
		for i, p := range series {
			b.Add(asset, days[i], p)
		}
	}
	pt, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	return pt
}

// close10 reports whether two floats agree within 1e-10, with NaN
// equal to NaN.
func close10(got, want float64) bool {
	if math.IsNaN(want) {
		return math.IsNaN(got)
	}
	return math.Abs(got-want) < 1e-10
}

// checkSeries compares a float series element-wise within 1e-10.
func checkSeries(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d values, want %d", name, len(got), len(want))
	}
	for i := range want {
		if !close10(got[i], want[i]) {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}
