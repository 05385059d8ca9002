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

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct {
	tableFlags
	periods int
	levels  string
	matrix  bool
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "report volatility, correlations and tail risk" }
func (*riskCmd) Usage() string {
	return `rfa risk [-l <prices>] [-csv] [-periods <n>] [-levels <list>] [-matrix]

  Report the dispersion figures (annualized return, volatility, Sharpe)
  and the VaR/CVaR tail risk of the portfolio. -matrix adds the
  correlation and covariance matrices.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.IntVar(&c.periods, "periods", riskfolio.DefaultPeriodsPerYear, "Trading periods per year used for annualization.")
	f.StringVar(&c.levels, "levels", "", "Comma-separated VaR confidence levels (default \"0.95,0.99\").")
	f.BoolVar(&c.matrix, "matrix", false, "Include the correlation and covariance matrices.")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := riskfolio.DefaultOptions()
	opts.PeriodsPerYear = c.periods
	if levels, err := parseLevels(c.levels); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	} else if levels != nil {
		opts.ConfidenceLevels = levels
	}

	report, err := riskfolio.Analyze(table, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.DispersionMarkdown(report, c.matrix) + "\n" + renderer.TailRiskMarkdown(report)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
