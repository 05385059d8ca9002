package riskfolio

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// MinTailObservations is the smallest portfolio sample on which VaR
// and CVaR are computed. Percentile estimates below this are
// statistically unreliable and are rejected instead of silently
// computed.
const MinTailObservations = 20

// DefaultConfidenceLevels are the VaR/CVaR thresholds computed when
// the caller does not supply any.
var DefaultConfidenceLevels = []float64{0.95, 0.99}

// TailRisk holds the historical Value-at-Risk and Conditional VaR at
// one confidence level. Negative values signal a loss.
type TailRisk struct {
	VaR  float64
	CVaR float64
}

// TailRiskSummary maps each requested confidence level to its tail
// measures. Levels is sorted ascending so iteration order is
// deterministic.
type TailRiskSummary struct {
	Levels  []float64
	ByLevel map[float64]TailRisk
}

// ComputeTailRisk computes historical VaR and CVaR of the portfolio
// return series at each confidence level (nil means the defaults,
// 95% and 99%).
//
// VaR(p) is the (1-p)*100 percentile of the sample with linear
// interpolation between order statistics. CVaR(p) is the mean of all
// observations at or below VaR(p); when heavy ties leave that set
// empty it falls back to VaR itself.
func ComputeTailRisk(portfolio []float64, levels []float64) (*TailRiskSummary, error) {
	if len(portfolio) < MinTailObservations {
		return nil, &InsufficientDataError{Have: len(portfolio), Need: MinTailObservations}
	}
	if levels == nil {
		levels = DefaultConfidenceLevels
	}
	for _, level := range levels {
		if level <= 0 || level >= 1 {
			return nil, &InvalidParameterError{Name: "confidenceLevels", Detail: fmt.Sprintf("level %v outside (0, 1)", level)}
		}
	}
	levels = slices.Clone(levels)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	sorted := slices.Clone(portfolio)
	slices.Sort(sorted)

	s := &TailRiskSummary{
		Levels:  levels,
		ByLevel: make(map[float64]TailRisk, len(levels)),
	}
	for _, level := range levels {
		v := percentile(sorted, (1-level)*100)
		s.ByLevel[level] = TailRisk{VaR: v, CVaR: shortfall(sorted, v)}
	}
	return s, nil
}

// percentile returns the p-th percentile (0 <= p <= 100) of an
// ascending sample, linearly interpolating between order statistics at
// rank p*(n-1)/100, the conventional percentile definition.
func percentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// shortfall is the mean of all observations at or below the threshold,
// or the threshold itself when none qualify.
func shortfall(sorted []float64, threshold float64) float64 {
	// sorted ascending: the tail is a prefix.
	end := 0
	for end < len(sorted) && sorted[end] <= threshold {
		end++
	}
	if end == 0 {
		return threshold
	}
	return stat.Mean(sorted[:end], nil)
}
