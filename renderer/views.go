package renderer

import (
	"fmt"
	"math"

	"github.com/etnz/riskfolio"
)

// View structs pre-format every figure, so templates only lay them
// out. This mirrors how the summaries are consumed: sentinels become
// "n/a", rates become percents, matrices become labelled tables.

type reportView struct {
	Period     string
	Samples    int
	Dispersion *dispersionView
	TailRisk   *tailRiskView
	Drawdown   *drawdownView
	Ratios     *ratiosView
}

type assetRow struct {
	Asset      string
	Last       string
	Weight     string
	Return     string
	Volatility string
	Sharpe     string
}

type matrixView struct {
	Header []string
	Rows   []matrixRow
}

type matrixRow struct {
	Name  string
	Cells []string
}

type dispersionView struct {
	Rows        []assetRow
	Portfolio   assetRow
	Correlation *matrixView
	Covariance  *matrixView
}

type tailRow struct {
	Level string
	VaR   string
	CVaR  string
}

type tailRiskView struct {
	Rows []tailRow
}

type drawdownView struct {
	MaxDrawdown string
	PeakDate    string
	TroughDate  string
	Days        int
	Latest      string // drawdown at the last observation
}

type ratiosView struct {
	Sharpe  string
	Sortino string
	Calmar  string
}

func newReportView(r *riskfolio.Report) *reportView {
	index := r.Returns.Index()
	return &reportView{
		Period:     fmt.Sprintf("%s to %s", index[0], index[len(index)-1]),
		Samples:    r.Returns.Len(),
		Dispersion: newDispersionView(r, true),
		TailRisk:   newTailRiskView(r),
		Drawdown:   newDrawdownView(r),
		Ratios: &ratiosView{
			Sharpe:  riskfolio.Ratio(r.Performance.Sharpe).String(),
			Sortino: riskfolio.Ratio(r.Performance.Sortino).String(),
			Calmar:  riskfolio.Ratio(r.Performance.Calmar).String(),
		},
	}
}

func newDispersionView(r *riskfolio.Report, matrices bool) *dispersionView {
	d := r.Dispersion
	v := &dispersionView{
		Portfolio: statsRow("portfolio", "-", math.NaN(), d.Portfolio),
	}
	for _, asset := range d.Assets {
		last := r.Prices.LatestPrice(asset).String()
		v.Rows = append(v.Rows, statsRow(asset, last, r.Returns.Weight(asset), d.PerAsset[asset]))
	}
	if matrices {
		v.Correlation = newMatrixView(d.Assets, func(i, j int) string { return cell(d.Correlation.At(i, j), "%.3f") })
		v.Covariance = newMatrixView(d.Assets, func(i, j int) string { return cell(d.Covariance.At(i, j), "%.6f") })
	}
	return v
}

func statsRow(name, last string, weight float64, s riskfolio.AssetStats) assetRow {
	w := "-"
	if !math.IsNaN(weight) {
		w = fmt.Sprintf("%.1f%%", 100*weight)
	}
	return assetRow{
		Asset:      name,
		Last:       last,
		Weight:     w,
		Return:     riskfolio.Pct(s.AnnualReturn).SignedString(),
		Volatility: riskfolio.Pct(s.AnnualVolatility).String(),
		Sharpe:     riskfolio.Ratio(s.Sharpe).String(),
	}
}

func newMatrixView(assets []string, at func(i, j int) string) *matrixView {
	v := &matrixView{Header: assets}
	for i, asset := range assets {
		row := matrixRow{Name: asset, Cells: make([]string, len(assets))}
		for j := range assets {
			row.Cells[j] = at(i, j)
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func newTailRiskView(r *riskfolio.Report) *tailRiskView {
	v := &tailRiskView{}
	for _, level := range r.TailRisk.Levels {
		tr := r.TailRisk.ByLevel[level]
		v.Rows = append(v.Rows, tailRow{
			Level: fmt.Sprintf("%.0f%%", 100*level),
			VaR:   riskfolio.Pct(tr.VaR).SignedString(),
			CVaR:  riskfolio.Pct(tr.CVaR).SignedString(),
		})
	}
	return v
}

func newDrawdownView(r *riskfolio.Report) *drawdownView {
	d := r.Drawdown
	return &drawdownView{
		MaxDrawdown: riskfolio.Pct(d.MaxDrawdown).SignedString(),
		PeakDate:    d.PeakDate.String(),
		TroughDate:  d.TroughDate.String(),
		Days:        d.Days,
		Latest:      riskfolio.Pct(d.Drawdown[len(d.Drawdown)-1]).SignedString(),
	}
}

// cell formats one matrix cell, with NaN (a constant series) spelled
// out instead of printed raw.
func cell(x float64, format string) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf(format, x)
}
