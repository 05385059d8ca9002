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

// drawdownCmd holds the flags for the 'drawdown' subcommand.
type drawdownCmd struct {
	tableFlags
	weights string
}

func (*drawdownCmd) Name() string     { return "drawdown" }
func (*drawdownCmd) Synopsis() string { return "report the portfolio drawdown profile" }
func (*drawdownCmd) Usage() string {
	return `rfa drawdown [-l <prices>] [-csv] [-weights <list>]

  Report the maximum drawdown of the portfolio with its peak and
  trough dates, and the drawdown at the last observation.
`
}

func (c *drawdownCmd) SetFlags(f *flag.FlagSet) {
	c.tableFlags.setFlags(f)
	f.StringVar(&c.weights, "weights", "", "Comma-separated asset weights like \"AAPL=0.6,MSFT=0.4\" (default equal weighting).")
}

func (c *drawdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := riskfolio.DefaultOptions()
	if opts.Weights, err = parseWeights(c.weights); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := riskfolio.Analyze(table, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DrawdownMarkdown(report))
	return subcommands.ExitSuccess
}
