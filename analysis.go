package riskfolio

import (
	"golang.org/x/sync/errgroup"
)

// Options is the configuration surface of the analysis pipeline. It is
// explicit process-wide configuration passed at invocation: the
// package keeps no ambient mutable state.
type Options struct {
	// PeriodsPerYear is the annualization factor, trading days by
	// convention. 0 means DefaultPeriodsPerYear.
	PeriodsPerYear int
	// ConfidenceLevels are the VaR/CVaR thresholds. nil means
	// DefaultConfidenceLevels.
	ConfidenceLevels []float64
	// Weights is the per-asset portfolio weighting. nil means equal
	// weighting; otherwise it must be non-negative, cover every asset
	// and sum to 1 within 1e-9.
	Weights map[string]float64
}

// DefaultOptions returns the conventional configuration: 252 trading
// days, 95% and 99% confidence, equal weighting.
func DefaultOptions() Options {
	return Options{
		PeriodsPerYear:   DefaultPeriodsPerYear,
		ConfidenceLevels: DefaultConfidenceLevels,
	}
}

// Report aggregates the outputs of one full analysis run over a
// PriceTable snapshot. Nothing in it is mutated after Analyze returns.
type Report struct {
	Currency    string
	Prices      *PriceTable
	Returns     *ReturnSeries
	Dispersion  *DispersionSummary
	TailRisk    *TailRiskSummary
	Drawdown    *DrawdownSummary
	Performance *PerformanceSummary
}

// Analyze runs the whole pipeline: returns, then dispersion, tail risk
// and drawdown in parallel (they share only the read-only return
// series), then the performance ratios.
//
// The pipeline is deterministic: two calls on the same table produce
// identical reports.
func Analyze(pt *PriceTable, opts Options) (*Report, error) {
	if opts.PeriodsPerYear == 0 {
		opts.PeriodsPerYear = DefaultPeriodsPerYear
	}

	rs, err := ComputeWeightedReturns(pt, opts.Weights)
	if err != nil {
		return nil, err
	}

	report := &Report{Currency: pt.Currency(), Prices: pt, Returns: rs}
	portfolio := rs.portfolio

	var g errgroup.Group
	g.Go(func() (err error) {
		report.Dispersion, err = ComputeDispersion(rs, opts.PeriodsPerYear)
		return err
	})
	g.Go(func() (err error) {
		report.TailRisk, err = ComputeTailRisk(portfolio, opts.ConfidenceLevels)
		return err
	})
	g.Go(func() (err error) {
		report.Drawdown, err = ComputeDrawdown(portfolio, rs.index)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Performance = ComputeRatios(report.Dispersion, report.Drawdown, portfolio)
	return report, nil
}
