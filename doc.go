// Package riskfolio derives risk and performance analytics from a
// multi-asset price history. It is designed as a short pipeline of
// pure stages, each a function of an immutable input snapshot:
//
//   - PriceTable: aligned per-asset price observations over time.
//   - ReturnSeries: periodic simple returns per asset and for the
//     (weighted) portfolio aggregate.
//   - Dispersion: annualized mean return, volatility, Sharpe, and the
//     pairwise correlation and covariance matrices.
//   - Tail risk: historical Value-at-Risk and Conditional VaR at
//     configurable confidence levels.
//   - Drawdown: cumulative growth curve, running peak, drawdown series
//     and the maximum drawdown window.
//   - Performance: Sharpe, Sortino and Calmar ratios.
//
// Analyze runs the whole pipeline; each stage is also callable on its
// own. Bad input is rejected with a typed error carrying the asset and
// position that caused it, while degenerate-but-valid market states
// (a flat price series, a portfolio with no losing day) are reported
// as explicit sentinel values, see Undefined.
//
// The package serves as the foundational logic for the `rfa`
// command-line tool, which loads price histories (JSONL, CSV, or the
// EODHD provider) and renders the computed summaries.
package riskfolio
