package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/riskfolio"
	"github.com/etnz/riskfolio/date"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	apiKey   string
	tickers  string
	start    string
	end      string
	period   string
	currency string
	output   string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily close prices from EODHD" }
func (*fetchCmd) Usage() string {
	return `rfa fetch -tickers <list> [-s <date> | -p <period>] [-d <date>] [-o <file>]

  Fetch split-adjusted daily close prices from eodhd.com for a set of
  tickers and write them as a price history file.

  Requires the ` + riskfolio.EODHDKeyEnv + ` environment variable to be set or
  passed as a flag.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "api-key", "", "EODHD API key. Takes precedence over the "+riskfolio.EODHDKeyEnv+" environment variable. You can get one at https://eodhd.com/")
	f.StringVar(&c.tickers, "tickers", "", "Comma-separated tickers to fetch, like \"AAPL.US,MSFT.US\".")
	f.StringVar(&c.start, "s", "", "Start date of the price history (YYYY-MM-DD).")
	f.StringVar(&c.end, "d", "", "End date of the price history. Defaults to today.")
	f.StringVar(&c.period, "p", "year", "Period to fetch when -s is not given (week, month, quarter, year).")
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency of the fetched prices.")
	f.StringVar(&c.output, "o", "prices.jsonl", "Output price history file.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers, rng, err := c.init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	provider, err := riskfolio.NewEODHD(c.apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := provider.Fetch(tickers, rng, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch from eodhd.com: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening price file %q for writing: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := riskfolio.EncodePriceTable(file, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing price file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched %d days of prices for %d assets into %s\n", table.Len(), len(table.Assets()), c.output)
	return subcommands.ExitSuccess
}

func (c *fetchCmd) init() (tickers []string, rng date.Range, err error) {
	if c.tickers == "" {
		return nil, rng, fmt.Errorf("missing -tickers")
	}
	for _, t := range strings.Split(c.tickers, ",") {
		tickers = append(tickers, strings.TrimSpace(t))
	}

	rng.To = date.Today()
	if c.end != "" {
		rng.To, err = date.Parse(c.end)
		if err != nil {
			return nil, rng, fmt.Errorf("parsing end date: %w", err)
		}
	}
	if c.start != "" {
		rng.From, err = date.Parse(c.start)
		if err != nil {
			return nil, rng, fmt.Errorf("parsing start date: %w", err)
		}
	} else {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return nil, rng, fmt.Errorf("parsing period: %w", err)
		}
		rng.From = date.NewRange(rng.To, p).From
	}
	if rng.To.Before(rng.From) {
		return nil, rng, fmt.Errorf("end date %s is before start date %s", rng.To, rng.From)
	}
	return tickers, rng, nil
}
