package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/riskfolio"
	"github.com/etnz/riskfolio/date"
)

// testReport analyzes a small two-asset table with enough history for
// every pipeline stage.
func testReport(t *testing.T) *riskfolio.Report {
	t.Helper()
	b := riskfolio.NewPriceTableBuilder().Currency("USD")
	on := date.MustParse("2026-01-01")
	cycleA := []float64{0.02, -0.01, 0.015, -0.005}
	cycleB := []float64{-0.01, 0.03, -0.02, 0.01}
	pa, pb := 100.0, 50.0
	for i := 0; i < 25; i++ {
		b.Add("AAA", on.Add(i), pa)
		b.Add("BBB", on.Add(i), pb)
		pa *= 1 + cycleA[i%len(cycleA)]
		pb *= 1 + cycleB[i%len(cycleB)]
	}
	pt, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	report, err := riskfolio.Analyze(pt, riskfolio.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze() = %v", err)
	}
	return report
}

func TestReportMarkdown(t *testing.T) {
	md := ReportMarkdown(testReport(t))

	for _, want := range []string{
		"# Portfolio Risk & Performance",
		"24 return observations, 2026-01-02 to 2026-01-25.",
		"## Dispersion (annualized)",
		"### Correlation",
		"### Covariance (annualized)",
		"## Tail risk",
		"| 95% |",
		"| 99% |",
		"## Drawdown",
		"## Risk-adjusted performance",
		"| AAA |",
		"| BBB |",
		"| **portfolio** |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report is missing %q:\n%s", want, md)
		}
	}
}

func TestDispersionMarkdown(t *testing.T) {
	report := testReport(t)

	bare := DispersionMarkdown(report, false)
	if strings.Contains(bare, "### Correlation") {
		t.Errorf("matrices rendered without being asked:\n%s", bare)
	}
	full := DispersionMarkdown(report, true)
	if !strings.Contains(full, "### Correlation") || !strings.Contains(full, "### Covariance (annualized)") {
		t.Errorf("matrices missing:\n%s", full)
	}
	// Equal weighting shows on every asset row.
	if !strings.Contains(full, "| 50.0% |") {
		t.Errorf("weights missing:\n%s", full)
	}
	// Last prices come out as money in the table currency.
	if !strings.Contains(full, "| $") {
		t.Errorf("last prices missing:\n%s", full)
	}
}

func TestTailRiskMarkdown(t *testing.T) {
	md := TailRiskMarkdown(testReport(t))
	if !strings.Contains(md, "## Tail risk") || !strings.Contains(md, "| Confidence | VaR | CVaR |") {
		t.Errorf("unexpected tail risk section:\n%s", md)
	}
}

func TestDrawdownMarkdown(t *testing.T) {
	md := DrawdownMarkdown(testReport(t))
	for _, want := range []string{"## Drawdown", "Maximum drawdown:", "Peak:", "trough:"} {
		if !strings.Contains(md, want) {
			t.Errorf("drawdown section is missing %q:\n%s", want, md)
		}
	}
}
