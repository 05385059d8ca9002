package riskfolio

import (
	"fmt"
	"math"
)

// Percent is a display value for rates expressed in percent (5.0 means 5%).
type Percent float64

// Pct converts a raw ratio (0.05) into a Percent (5%).
func Pct(ratio float64) Percent { return Percent(100 * ratio) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percent, or "n/a" for the undefined sentinels.
func (p Percent) String() string {
	if Undefined(float64(p)) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if Undefined(float64(p)) {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Ratio is a display value for dimensionless risk-adjusted ratios
// (Sharpe, Sortino, Calmar).
type Ratio float64

// String formats the ratio, with the degenerate cases spelled out:
// +Inf means the denominator was zero (no downside, no losses) and
// NaN means the statistic is undefined on this sample.
func (r Ratio) String() string {
	if math.IsInf(float64(r), 1) {
		return "n/a (no downside observed)"
	}
	if Undefined(float64(r)) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", float64(r))
}
