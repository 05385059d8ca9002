package renderer

import (
	"github.com/etnz/riskfolio"
)

// ReportMarkdown renders the full analysis report to a markdown string.
func ReportMarkdown(r *riskfolio.Report) string {
	partials := map[string]string{
		"dispersion": "dispersion.md",
		"matrix":     "matrix.md",
		"tailrisk":   "tailrisk.md",
		"drawdown":   "drawdown.md",
		"ratios":     "ratios.md",
	}
	return renderTemplate("report", "report.md", partials, newReportView(r))
}

// DispersionMarkdown renders only the dispersion section, with the
// correlation and covariance matrices when matrices is true.
func DispersionMarkdown(r *riskfolio.Report, matrices bool) string {
	return renderTemplate("dispersion", "dispersion.md", map[string]string{"matrix": "matrix.md"}, newDispersionView(r, matrices))
}

// TailRiskMarkdown renders only the tail-risk section.
func TailRiskMarkdown(r *riskfolio.Report) string {
	return renderTemplate("tailrisk", "tailrisk.md", nil, newTailRiskView(r))
}

// DrawdownMarkdown renders only the drawdown section.
func DrawdownMarkdown(r *riskfolio.Report) string {
	return renderTemplate("drawdown", "drawdown.md", nil, newDrawdownView(r))
}
