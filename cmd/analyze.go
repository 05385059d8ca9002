package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/riskfolio"
	"github.com/etnz/riskfolio/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	tableFlags
	periods int
	levels  string
	weights string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "compute the full risk and performance report" }
func (*analyzeCmd) Usage() string {
	return `rfa analyze [-l <prices>] [-csv] [-periods <n>] [-levels <list>] [-weights <list>]

  Compute returns, dispersion, tail risk, drawdown and the
  risk-adjusted ratios for the portfolio, and print the report.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.IntVar(&c.periods, "periods", riskfolio.DefaultPeriodsPerYear, "Trading periods per year used for annualization.")
	f.StringVar(&c.levels, "levels", "", "Comma-separated VaR confidence levels (default \"0.95,0.99\").")
	f.StringVar(&c.weights, "weights", "", "Comma-separated asset weights like \"AAPL=0.6,MSFT=0.4\" (default equal weighting).")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.analyze()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}

func (c *analyzeCmd) analyze() (*riskfolio.Report, error) {
	table, err := c.load()
	if err != nil {
		return nil, err
	}
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	return riskfolio.Analyze(table, opts)
}

func (c *analyzeCmd) options() (riskfolio.Options, error) {
	opts := riskfolio.DefaultOptions()
	opts.PeriodsPerYear = c.periods

	levels, err := parseLevels(c.levels)
	if err != nil {
		return opts, err
	}
	if levels != nil {
		opts.ConfidenceLevels = levels
	}

	opts.Weights, err = parseWeights(c.weights)
	return opts, err
}
