package riskfolio

import (
	"fmt"

	"github.com/etnz/riskfolio/date"
)

// The analysis pipeline rejects bad input with one of the typed errors
// below. They are data-quality or usage errors: nothing transient, no
// retry. Each carries enough context (asset, position, parameter) to
// diagnose the run without re-running it.
//
// Degenerate but valid market states (zero variance, no downside
// returns, no losses) are never errors; they are reported as sentinel
// values, see Undefined.

// InsufficientDataError reports a series that is too short for the
// requested statistic.
type InsufficientDataError struct {
	Asset string // empty for the portfolio aggregate
	Have  int
	Need  int
}

func (e *InsufficientDataError) Error() string {
	if e.Asset == "" {
		return fmt.Sprintf("insufficient data: %d observations, need at least %d", e.Have, e.Need)
	}
	return fmt.Sprintf("insufficient data for %q: %d observations, need at least %d", e.Asset, e.Have, e.Need)
}

// MisalignedSeriesError reports an asset history that does not share
// the table's timestamp index.
type MisalignedSeriesError struct {
	Asset  string
	Detail string
}

func (e *MisalignedSeriesError) Error() string {
	if e.Asset == "" {
		return fmt.Sprintf("misaligned series: %s", e.Detail)
	}
	return fmt.Sprintf("misaligned series for %q: %s", e.Asset, e.Detail)
}

// InvalidPriceError reports a non-positive price observation. Returns
// over such a price are undefined, so the table is rejected instead of
// letting NaN propagate through the statistics.
type InvalidPriceError struct {
	Asset string
	On    date.Date
	Price float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price for %q on %s: %v (must be strictly positive)", e.Asset, e.On, e.Price)
}

// InvalidParameterError reports an out-of-range configuration value,
// like a confidence level outside (0,1) or a weight vector that does
// not sum to 1.
type InvalidParameterError struct {
	Name   string
	Detail string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Detail)
}
