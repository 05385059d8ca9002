package riskfolio

import (
	"errors"
	"math"
	"testing"
)

// returnSeries builds the return series of a table or fails.
func returnSeries(t *testing.T, assets []string, prices map[string][]float64) *ReturnSeries {
	t.Helper()
	rs, err := ComputeReturns(table(t, assets, prices))
	if err != nil {
		t.Fatalf("ComputeReturns() = %v", err)
	}
	return rs
}

func TestComputeDispersion(t *testing.T) {
	// Returns are [+10%, -10%, +10%]: mean 1/30, sample variance 0.04/3.
	rs := returnSeries(t, []string{"AAPL"}, map[string][]float64{
		"AAPL": {100, 110, 99, 108.9},
	})
	s, err := ComputeDispersion(rs, 252)
	if err != nil {
		t.Fatalf("ComputeDispersion() = %v", err)
	}

	stats := s.PerAsset["AAPL"]
	if !close10(stats.AnnualReturn, 8.4) {
		t.Errorf("AnnualReturn = %v, want 8.4", stats.AnnualReturn)
	}
	wantVol := math.Sqrt(3.36) // 252 * 0.04/3
	if !close10(stats.AnnualVolatility, wantVol) {
		t.Errorf("AnnualVolatility = %v, want %v", stats.AnnualVolatility, wantVol)
	}
	if !close10(stats.Sharpe, 8.4/wantVol) {
		t.Errorf("Sharpe = %v, want %v", stats.Sharpe, 8.4/wantVol)
	}
	// A single asset portfolio carries the same figures.
	if !close10(s.Portfolio.AnnualReturn, stats.AnnualReturn) || !close10(s.Portfolio.Sharpe, stats.Sharpe) {
		t.Errorf("Portfolio = %+v, want %+v", s.Portfolio, stats)
	}
	// Covariance diagonal is the annualized variance.
	if got := s.Covariance.At(0, 0); !close10(got, 3.36) {
		t.Errorf("Covariance.At(0,0) = %v, want 3.36", got)
	}
}

func TestComputeDispersionMatrices(t *testing.T) {
	// B is half of A day by day, so their returns are identical.
	rs := returnSeries(t, []string{"A", "B"}, map[string][]float64{
		"A": {100, 110, 99, 108.9},
		"B": {50, 55, 49.5, 54.45},
	})
	s, err := ComputeDispersion(rs, 252)
	if err != nil {
		t.Fatalf("ComputeDispersion() = %v", err)
	}
	for i := 0; i < 2; i++ {
		if got := s.Correlation.At(i, i); !close10(got, 1) {
			t.Errorf("Correlation.At(%d,%d) = %v, want 1", i, i, got)
		}
	}
	if got := s.Correlation.At(0, 1); !close10(got, 1) {
		t.Errorf("Correlation.At(0,1) = %v, want 1 for duplicated returns", got)
	}
	if a, b := s.Correlation.At(0, 1), s.Correlation.At(1, 0); a != b {
		t.Errorf("correlation not symmetric: %v != %v", a, b)
	}
	if a, b := s.Covariance.At(0, 1), s.Covariance.At(1, 0); a != b {
		t.Errorf("covariance not symmetric: %v != %v", a, b)
	}
}

func TestComputeDispersionConstantSeries(t *testing.T) {
	rs := returnSeries(t, []string{"FLAT"}, map[string][]float64{
		"FLAT": {100, 100, 100},
	})
	s, err := ComputeDispersion(rs, 252)
	if err != nil {
		t.Fatalf("ComputeDispersion() = %v", err)
	}
	stats := s.PerAsset["FLAT"]
	if stats.AnnualVolatility != 0 {
		t.Errorf("AnnualVolatility = %v, want 0", stats.AnnualVolatility)
	}
	if !Undefined(stats.Sharpe) {
		t.Errorf("Sharpe = %v, want an undefined sentinel", stats.Sharpe)
	}
	if !math.IsNaN(s.Correlation.At(0, 0)) {
		t.Errorf("Correlation.At(0,0) = %v, want NaN for zero variance", s.Correlation.At(0, 0))
	}
}

func TestComputeDispersionErrors(t *testing.T) {
	rs := returnSeries(t, []string{"A"}, map[string][]float64{"A": {100, 110, 99}})

	t.Run("bad periods", func(t *testing.T) {
		_, err := ComputeDispersion(rs, 0)
		var want *InvalidParameterError
		if !errors.As(err, &want) {
			t.Fatalf("ComputeDispersion(rs, 0) = %v, want InvalidParameterError", err)
		}
	})

	t.Run("single return", func(t *testing.T) {
		short := returnSeries(t, []string{"A"}, map[string][]float64{"A": {100, 110}})
		_, err := ComputeDispersion(short, 252)
		var want *InsufficientDataError
		if !errors.As(err, &want) {
			t.Fatalf("ComputeDispersion() = %v, want InsufficientDataError", err)
		}
	})
}

func TestUndefined(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if !Undefined(x) {
			t.Errorf("Undefined(%v) = false, want true", x)
		}
	}
	for _, x := range []float64{0, -1.5, 8.4} {
		if Undefined(x) {
			t.Errorf("Undefined(%v) = true, want false", x)
		}
	}
}
