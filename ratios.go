package riskfolio

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PerformanceSummary holds the risk-adjusted performance ratios of the
// portfolio.
//
// Sortino is +Inf when no strictly negative return exists (a portfolio
// with no losing period is a valid, if rare, state) and Calmar is +Inf
// when the maximum drawdown is exactly 0. Both are sentinels detected
// by Undefined, never errors.
type PerformanceSummary struct {
	Sharpe  float64
	Sortino float64
	Calmar  float64
}

// ComputeRatios derives Sharpe, Sortino and Calmar from the dispersion
// and drawdown summaries. The portfolio return series is needed again
// here because the Sortino denominator is the deviation of only the
// strictly negative returns.
func ComputeRatios(dispersion *DispersionSummary, drawdown *DrawdownSummary, portfolio []float64) *PerformanceSummary {
	annual := dispersion.Portfolio.AnnualReturn
	s := &PerformanceSummary{Sharpe: dispersion.Portfolio.Sharpe}

	var downside []float64
	for _, r := range portfolio {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	switch {
	case len(downside) == 0:
		s.Sortino = math.Inf(1)
	default:
		d := stat.StdDev(downside, nil) * math.Sqrt(float64(dispersion.PeriodsPerYear))
		if d == 0 {
			s.Sortino = math.Inf(1)
		} else {
			// A single downside observation leaves the sample deviation
			// undefined; the NaN carries through as the sentinel.
			s.Sortino = annual / d
		}
	}

	if mdd := math.Abs(drawdown.MaxDrawdown); mdd == 0 {
		s.Calmar = math.Inf(1)
	} else {
		s.Calmar = annual / mdd
	}
	return s
}
