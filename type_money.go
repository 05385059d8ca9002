package riskfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, used to display price levels next
// to the dimensionless analytics.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float price and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// AsFloat returns the amount as a float64.
func (m Money) AsFloat() float64 { f, _ := m.value.Float64(); return f }

// String formats the value with its currency symbol and fraction
// rules. Without a currency it falls back to the plain decimal.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, m.cur).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
