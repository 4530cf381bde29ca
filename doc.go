// Package tradeledger computes the statistics of a trading account from its
// ledger export: the closed positions with their realized profit, and
// optionally the account activity with its realized equity.
//
// The main functionalities are:
//   - Trade aggregation: counts, win rate, profit distribution (mean, median,
//     population standard deviation) and the daily and monthly profit series
//     with their running balance.
//   - Equity reconciliation: the account's realized equity, reduced to one
//     value per day, replaces the trade based percent changes of the series
//     wherever it is available.
//
// The package is stateless and performs no I/O. It reads rows already decoded
// from the ledger's sheets (see the workbook package) and never fails on
// malformed rows: they are left out and listed in [Stats.Skipped].
//
// This package serves as the foundational logic for the `tstat` command-line
// tool.
package tradeledger
