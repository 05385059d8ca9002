package riskfolio

import (
	"slices"

	"github.com/etnz/riskfolio/date"
)

// PriceTable holds aligned price observations for a set of assets over
// a shared, strictly increasing day index. It is immutable once built:
// every analysis stage is a pure function of a PriceTable snapshot.
//
// Alignment is a construction-time invariant, not something the
// analyzers re-establish: Build rejects tables whose assets do not
// share the exact same index.
type PriceTable struct {
	assets   []string // insertion order, stable across runs
	currency string
	index    []date.Date
	prices   map[string][]float64
}

// PriceTableBuilder accumulates per-asset price observations and
// validates them into a PriceTable.
type PriceTableBuilder struct {
	assets   []string
	series   map[string]*date.History[float64]
	currency string
}

// NewPriceTableBuilder returns an empty builder.
func NewPriceTableBuilder() *PriceTableBuilder {
	return &PriceTableBuilder{series: make(map[string]*date.History[float64])}
}

// Currency declares the quote currency for all prices in the table.
// It is display metadata only; the analytics are currency-agnostic.
func (b *PriceTableBuilder) Currency(cur string) *PriceTableBuilder {
	b.currency = cur
	return b
}

// Add records a price observation for an asset. Re-adding the same day
// overwrites the previous value, like the market data files do.
func (b *PriceTableBuilder) Add(asset string, on date.Date, price float64) *PriceTableBuilder {
	h, ok := b.series[asset]
	if !ok {
		h = &date.History[float64]{}
		b.series[asset] = h
		b.assets = append(b.assets, asset)
	}
	h.Append(on, price)
	return b
}

// Build validates the accumulated observations and returns the
// immutable table.
//
// It fails with InsufficientDataError when an asset has fewer than 2
// observations, InvalidPriceError on any non-positive price, and
// MisalignedSeriesError when asset indices differ in length or
// content.
func (b *PriceTableBuilder) Build() (*PriceTable, error) {
	pt := &PriceTable{
		assets:   slices.Clone(b.assets),
		currency: b.currency,
		prices:   make(map[string][]float64, len(b.assets)),
	}
	for _, asset := range b.assets {
		h := b.series[asset]
		days := make([]date.Date, 0, h.Len())
		values := make([]float64, 0, h.Len())
		for on, p := range h.Values() {
			days = append(days, on)
			values = append(values, p)
		}
		if pt.index == nil {
			pt.index = days
		} else if !slices.Equal(pt.index, days) {
			if len(days) != len(pt.index) {
				return nil, &MisalignedSeriesError{Asset: asset, Detail: "index length differs from the table's"}
			}
			for i := range days {
				if days[i] != pt.index[i] {
					return nil, &MisalignedSeriesError{Asset: asset, Detail: "index differs at " + days[i].String()}
				}
			}
		}
		pt.prices[asset] = values
	}
	if err := pt.validate(); err != nil {
		return nil, err
	}
	return pt, nil
}

// validate checks the table invariants. It is called by Build, and
// again by ComputeReturns so that tables decoded from files get the
// same treatment as hand-built ones.
func (pt *PriceTable) validate() error {
	if len(pt.assets) == 0 {
		return &InsufficientDataError{Have: 0, Need: 2}
	}
	for _, asset := range pt.assets {
		values := pt.prices[asset]
		if len(values) < 2 {
			return &InsufficientDataError{Asset: asset, Have: len(values), Need: 2}
		}
		if len(values) != len(pt.index) {
			return &MisalignedSeriesError{Asset: asset, Detail: "index length differs from the table's"}
		}
	}
	for _, asset := range pt.assets {
		for i, p := range pt.prices[asset] {
			if p <= 0 {
				return &InvalidPriceError{Asset: asset, On: pt.index[i], Price: p}
			}
		}
	}
	for i := 1; i < len(pt.index); i++ {
		if !pt.index[i].After(pt.index[i-1]) {
			return &MisalignedSeriesError{Detail: "index is not strictly increasing at " + pt.index[i].String()}
		}
	}
	return nil
}

// Assets returns the asset identifiers in their stable table order.
func (pt *PriceTable) Assets() []string { return slices.Clone(pt.assets) }

// Currency returns the quote currency of the table, possibly empty.
func (pt *PriceTable) Currency() string { return pt.currency }

// Len returns the number of observations per asset.
func (pt *PriceTable) Len() int { return len(pt.index) }

// Index returns a copy of the shared day index.
func (pt *PriceTable) Index() []date.Date { return slices.Clone(pt.index) }

// Prices returns a copy of the price series for an asset, or nil for
// an unknown asset.
func (pt *PriceTable) Prices(asset string) []float64 {
	return slices.Clone(pt.prices[asset])
}

// LatestPrice returns the last observed price of an asset as a Money
// in the table's currency, or the zero Money for an unknown asset.
func (pt *PriceTable) LatestPrice(asset string) Money {
	_, p, ok := pt.Latest(asset)
	if !ok {
		return Money{}
	}
	return M(p, pt.currency)
}

// Latest returns the last observation for an asset.
func (pt *PriceTable) Latest(asset string) (on date.Date, price float64, ok bool) {
	values, found := pt.prices[asset]
	if !found || len(values) == 0 {
		return date.Date{}, 0, false
	}
	return pt.index[len(values)-1], values[len(values)-1], true
}
