// Command rfa analyzes the risk and performance of a portfolio of assets.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/riskfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completions().Complete("rfa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completions describes the CLI for shell completion.
func completions() *complete.Command {
	prices := map[string]complete.Predictor{
		"l":   predict.Files("*.jsonl"),
		"csv": predict.Nothing,
	}
	withPrices := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(prices)+len(extra))
		for k, v := range prices {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze": {Flags: withPrices(map[string]complete.Predictor{
				"periods": predict.Something,
				"levels":  predict.Something,
				"weights": predict.Something,
			})},
			"risk": {Flags: withPrices(map[string]complete.Predictor{
				"periods": predict.Something,
				"levels":  predict.Something,
				"matrix":  predict.Nothing,
			})},
			"drawdown": {Flags: withPrices(map[string]complete.Predictor{
				"weights": predict.Something,
			})},
			"fetch": {Flags: map[string]complete.Predictor{
				"api-key":  predict.Something,
				"tickers":  predict.Something,
				"s":        predict.Something,
				"d":        predict.Something,
				"p":        predict.Set{"week", "month", "quarter", "year"},
				"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
				"o":        predict.Files("*.jsonl"),
			}},
			"topic":  {Args: predict.Set{"readme", "returns", "volatility", "var", "drawdown", "ratios", "*"}},
			"assist": {Flags: prices},
		},
	}
}
