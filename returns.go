package riskfolio

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/riskfolio/date"
)

// weightTolerance is how far a weight vector may stray from summing to 1.
const weightTolerance = 1e-9

// ReturnSeries holds the periodic simple returns derived from a
// PriceTable: one series per asset, plus the aggregated portfolio
// series, all sharing the same day index of length N-1.
type ReturnSeries struct {
	assets    []string
	index     []date.Date
	perAsset  map[string][]float64
	portfolio []float64
	weights   []float64 // aligned with assets
}

// ComputeReturns derives simple returns p[t]/p[t-1]-1 per asset and the
// equal-weighted portfolio return series.
func ComputeReturns(pt *PriceTable) (*ReturnSeries, error) {
	return ComputeWeightedReturns(pt, nil)
}

// ComputeWeightedReturns is ComputeReturns with an explicit weight per
// asset. A nil map means equal weighting. Weights must be non-negative,
// cover every asset of the table, and sum to 1 within 1e-9; otherwise
// it fails with InvalidParameterError.
func ComputeWeightedReturns(pt *PriceTable, weights map[string]float64) (*ReturnSeries, error) {
	if err := pt.validate(); err != nil {
		return nil, err
	}
	w, err := resolveWeights(pt.assets, weights)
	if err != nil {
		return nil, err
	}

	n := len(pt.index) - 1
	rs := &ReturnSeries{
		assets:    slices.Clone(pt.assets),
		index:     slices.Clone(pt.index[1:]),
		perAsset:  make(map[string][]float64, len(pt.assets)),
		portfolio: make([]float64, n),
		weights:   w,
	}
	for ai, asset := range pt.assets {
		prices := pt.prices[asset]
		returns := make([]float64, n)
		for t := 0; t < n; t++ {
			returns[t] = prices[t+1]/prices[t] - 1
			rs.portfolio[t] += w[ai] * returns[t]
		}
		rs.perAsset[asset] = returns
	}
	return rs, nil
}

// resolveWeights turns a per-asset weight map into a vector aligned
// with the asset order, defaulting to equal weights.
func resolveWeights(assets []string, weights map[string]float64) ([]float64, error) {
	w := make([]float64, len(assets))
	if weights == nil {
		for i := range w {
			w[i] = 1 / float64(len(assets))
		}
		return w, nil
	}
	for name := range weights {
		if !slices.Contains(assets, name) {
			return nil, &InvalidParameterError{Name: "weights", Detail: fmt.Sprintf("unknown asset %q", name)}
		}
	}
	sum := 0.0
	for i, asset := range assets {
		v, ok := weights[asset]
		if !ok {
			return nil, &InvalidParameterError{Name: "weights", Detail: fmt.Sprintf("missing weight for asset %q", asset)}
		}
		if v < 0 {
			return nil, &InvalidParameterError{Name: "weights", Detail: fmt.Sprintf("negative weight %v for asset %q", v, asset)}
		}
		w[i] = v
		sum += v
	}
	if math.Abs(sum-1) > weightTolerance {
		return nil, &InvalidParameterError{Name: "weights", Detail: fmt.Sprintf("weights sum to %v, want 1", sum)}
	}
	return w, nil
}

// Assets returns the asset identifiers in their stable table order.
func (rs *ReturnSeries) Assets() []string { return slices.Clone(rs.assets) }

// Index returns a copy of the day index, length N-1, positionally
// aligned with every return series.
func (rs *ReturnSeries) Index() []date.Date { return slices.Clone(rs.index) }

// Len returns the number of return observations.
func (rs *ReturnSeries) Len() int { return len(rs.index) }

// Asset returns a copy of one asset's return series, or nil for an
// unknown asset.
func (rs *ReturnSeries) Asset(id string) []float64 { return slices.Clone(rs.perAsset[id]) }

// Portfolio returns a copy of the aggregated portfolio return series.
func (rs *ReturnSeries) Portfolio() []float64 { return slices.Clone(rs.portfolio) }

// Weight returns the weight applied to an asset in the portfolio
// aggregation.
func (rs *ReturnSeries) Weight(id string) float64 {
	i := slices.Index(rs.assets, id)
	if i < 0 {
		return 0
	}
	return rs.weights[i]
}
