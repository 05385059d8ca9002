package riskfolio

import (
	"math"
	"testing"
)

func TestPercentString(t *testing.T) {
	cases := []struct {
		ratio  float64
		want   string
		signed string
	}{
		{0.05, "5.00%", "+5.00%"},
		{-0.1234, "-12.34%", "-12.34%"},
		{0, "0.00%", "-"},
		{math.NaN(), "n/a", "n/a"},
		{math.Inf(1), "n/a", "n/a"},
	}
	for _, tc := range cases {
		p := Pct(tc.ratio)
		if got := p.String(); got != tc.want {
			t.Errorf("Pct(%v).String() = %q, want %q", tc.ratio, got, tc.want)
		}
		if got := p.SignedString(); got != tc.signed {
			t.Errorf("Pct(%v).SignedString() = %q, want %q", tc.ratio, got, tc.signed)
		}
	}
}

func TestPercentEqual(t *testing.T) {
	if !Pct(0.05).Equal(Pct(0.0500000001)) {
		t.Error("percents within precision should be equal")
	}
	if Pct(0.05).Equal(Pct(0.051)) {
		t.Error("percents apart should not be equal")
	}
}

func TestRatioString(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{4.582575694, "4.58"},
		{-0.5, "-0.50"},
		{math.Inf(1), "n/a (no downside observed)"},
		{math.NaN(), "n/a"},
	}
	for _, tc := range cases {
		if got := Ratio(tc.value).String(); got != tc.want {
			t.Errorf("Ratio(%v).String() = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		value float64
		cur   string
		want  string
	}{
		{187.15, "USD", "$187.15"},
		{1250, "EUR", "1.250,00 €"},
		{99.5, "", "99.5"},
	}
	for _, tc := range cases {
		if got := M(tc.value, tc.cur).String(); got != tc.want {
			t.Errorf("M(%v, %q).String() = %q, want %q", tc.value, tc.cur, got, tc.want)
		}
	}
}
