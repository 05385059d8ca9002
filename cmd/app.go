// Package cmd implements the rfa CLI to analyze portfolio risk and performance.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/riskfolio"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in display order.
// A main package registers them on a Commander and Executes the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&riskCmd{},
	&drawdownCmd{},
	&fetchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// tableFlags holds the flags shared by every command reading a price table.
type tableFlags struct {
	prices string
	csv    bool
}

func (t *tableFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&t.prices, "l", "prices.jsonl", "Price history file to analyze.")
	f.BoolVar(&t.csv, "csv", false, "Read the price file as csv (date,ASSET1,ASSET2,... header) instead of jsonl.")
}

// load reads and validates the price table from the flagged file.
func (t *tableFlags) load() (*riskfolio.PriceTable, error) {
	f, err := os.Open(t.prices)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("price file %q does not exist, run 'rfa fetch' first or point -l at an existing file", t.prices)
		}
		return nil, fmt.Errorf("could not open price file %q: %w", t.prices, err)
	}
	defer f.Close()

	if t.csv {
		return riskfolio.DecodePriceTableCSV(f)
	}
	return riskfolio.DecodePriceTable(f)
}

// parseLevels parses a comma-separated list of confidence levels, like "0.95,0.99".
func parseLevels(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	levels := make([]float64, 0, len(parts))
	for _, part := range parts {
		level, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid confidence level %q: %w", part, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// parseWeights parses a comma-separated list of asset weights, like "AAPL=0.6,MSFT=0.4".
func parseWeights(s string) (map[string]float64, error) {
	if s == "" {
		return nil, nil
	}
	weights := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		asset, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid weight %q: want ASSET=WEIGHT", part)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %q: %w", asset, err)
		}
		weights[strings.TrimSpace(asset)] = w
	}
	return weights, nil
}
