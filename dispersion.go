package riskfolio

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultPeriodsPerYear is the trading-day convention used to
// annualize per-period statistics.
const DefaultPeriodsPerYear = 252

// AssetStats holds the annualized dispersion statistics of one return
// series.
//
// Sharpe is NaN when the volatility is zero: a flat series is a valid
// market state, and its risk-adjusted return is undefined rather than
// an error. Test with Undefined.
type AssetStats struct {
	AnnualReturn     float64
	AnnualVolatility float64
	Sharpe           float64
}

// DispersionSummary holds per-asset and portfolio dispersion
// statistics, plus the pairwise co-movement matrices.
//
// Correlation has a unit diagonal; rows of a constant (zero variance)
// series are NaN. Covariance is annualized and its diagonal carries
// the per-asset variance. Row/column order is the stable asset order
// of the input, so two runs on the same input produce bit-identical
// layouts.
type DispersionSummary struct {
	Assets         []string
	PerAsset       map[string]AssetStats
	Portfolio      AssetStats
	Correlation    *mat.SymDense
	Covariance     *mat.SymDense
	PeriodsPerYear int
}

// ComputeDispersion computes annualized mean return, volatility and
// Sharpe for every asset and for the portfolio aggregate, along with
// the correlation and annualized covariance matrices.
//
// Mean and volatility use the full sample, with the sample (N-1)
// standard deviation.
func ComputeDispersion(rs *ReturnSeries, periodsPerYear int) (*DispersionSummary, error) {
	if periodsPerYear <= 0 {
		return nil, &InvalidParameterError{Name: "periodsPerYear", Detail: "must be strictly positive"}
	}
	if rs.Len() < 2 {
		return nil, &InsufficientDataError{Have: rs.Len(), Need: 2}
	}

	s := &DispersionSummary{
		Assets:         slices.Clone(rs.assets),
		PerAsset:       make(map[string]AssetStats, len(rs.assets)),
		PeriodsPerYear: periodsPerYear,
	}
	for _, asset := range rs.assets {
		s.PerAsset[asset] = annualize(rs.perAsset[asset], periodsPerYear)
	}
	s.Portfolio = annualize(rs.portfolio, periodsPerYear)

	// Samples-by-assets matrix, in stable asset order.
	n, a := rs.Len(), len(rs.assets)
	x := mat.NewDense(n, a, nil)
	for j, asset := range rs.assets {
		x.SetCol(j, rs.perAsset[asset])
	}
	s.Correlation = mat.NewSymDense(a, nil)
	stat.CorrelationMatrix(s.Correlation, x, nil)
	s.Covariance = mat.NewSymDense(a, nil)
	stat.CovarianceMatrix(s.Covariance, x, nil)
	s.Covariance.ScaleSym(float64(periodsPerYear), s.Covariance)

	return s, nil
}

// annualize scales the per-period mean and sample standard deviation
// of a return series to a yearly basis.
func annualize(returns []float64, periodsPerYear int) AssetStats {
	ppy := float64(periodsPerYear)
	st := AssetStats{
		AnnualReturn:     stat.Mean(returns, nil) * ppy,
		AnnualVolatility: stat.StdDev(returns, nil) * math.Sqrt(ppy),
	}
	if st.AnnualVolatility == 0 {
		st.Sharpe = math.NaN()
	} else {
		st.Sharpe = st.AnnualReturn / st.AnnualVolatility
	}
	return st
}

// Undefined reports whether a statistic is a degenerate-case sentinel
// (NaN or infinite) rather than a finite value. Zero-variance Sharpe,
// no-downside Sortino and no-loss Calmar all report true.
func Undefined(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
