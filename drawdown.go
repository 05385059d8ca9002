package riskfolio

import (
	"fmt"
	"slices"

	"github.com/etnz/riskfolio/date"
)

// DrawdownSummary holds the cumulative growth curve of the portfolio,
// its running peak, the drawdown series and the maximum drawdown
// window.
//
// The growth curve is a pure running product starting from 1.0 before
// the first return, never reset. The running peak is non-decreasing,
// the drawdown is <= 0 everywhere and exactly 0 at new peaks.
// MaxDrawdown is the most negative drawdown; when several days tie,
// the earliest one is the trough. PeakDate is the latest day at or
// before the trough where the curve equals its running peak, and Days
// is the peak-to-trough elapsed time (0 when they coincide).
type DrawdownSummary struct {
	Index       []date.Date
	Growth      []float64
	Peak        []float64
	Drawdown    []float64
	MaxDrawdown float64
	PeakDate    date.Date
	TroughDate  date.Date
	Days        int
}

// ComputeDrawdown derives the drawdown behavior of a portfolio return
// series. The index must align positionally with the returns.
func ComputeDrawdown(portfolio []float64, index []date.Date) (*DrawdownSummary, error) {
	if len(portfolio) == 0 {
		return nil, &InsufficientDataError{Have: 0, Need: 1}
	}
	if len(portfolio) != len(index) {
		return nil, &MisalignedSeriesError{Detail: fmt.Sprintf("%d returns but %d index entries", len(portfolio), len(index))}
	}

	s := &DrawdownSummary{
		Index:    slices.Clone(index),
		Growth:   make([]float64, len(portfolio)),
		Peak:     make([]float64, len(portfolio)),
		Drawdown: make([]float64, len(portfolio)),
	}
	growth, peak := 1.0, 0.0
	trough := 0
	for t, r := range portfolio {
		growth *= 1 + r
		peak = max(peak, growth)
		s.Growth[t] = growth
		s.Peak[t] = peak
		s.Drawdown[t] = (growth - peak) / peak
		// Strict comparison keeps the earliest trough on ties.
		if s.Drawdown[t] < s.MaxDrawdown {
			s.MaxDrawdown = s.Drawdown[t]
			trough = t
		}
	}

	// The peak in effect at the trough: the latest day at or before it
	// where the curve touched the running peak.
	peakIdx := trough
	for i := trough; i >= 0; i-- {
		if s.Growth[i] == s.Peak[trough] {
			peakIdx = i
			break
		}
	}
	s.TroughDate = s.Index[trough]
	s.PeakDate = s.Index[peakIdx]
	s.Days = s.PeakDate.DaysTo(s.TroughDate)
	return s, nil
}
