// Package cmd implements the tstat command line application.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/tradeledger"
	"github.com/etnz/tradeledger/date"
	"github.com/etnz/tradeledger/workbook"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&seriesCmd{}, "reports")
	for _, p := range []date.Period{date.Daily, date.Weekly, date.Monthly, date.Quarterly, date.Yearly} {
		c.Register(&periodCmd{period: p}, "reports")
	}
	c.Register(&equityCmd{}, "reports")

	c.Register(&exportCmd{}, "data")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to tstat.yaml in the current directory, if any)")

// Verbose switches to a development logger at debug level.
var Verbose = flag.Bool("v", false, "Verbose output, lists every skipped row")

// analyze loads the workbook given as the first argument, or the one from the
// configuration, and computes its statistics.
func analyze(f *flag.FlagSet) (*tradeledger.Stats, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	path := cfg.Workbook
	if f.NArg() > 0 {
		path = f.Arg(0)
	}
	if path == "" {
		return nil, fmt.Errorf("no workbook given")
	}

	wb, err := openWorkbook(path, cfg)
	if err != nil {
		return nil, err
	}
	trades, err := wb.Sheet(cfg.Sheets.Trades)
	if err != nil {
		return nil, fmt.Errorf("workbook %q: %w", path, err)
	}
	equity := wb.Optional(cfg.Sheets.Equity)

	log := Logger()
	log.Debug("workbook loaded",
		zap.String("path", path),
		zap.Int("trades", len(trades)),
		zap.Int("equity", len(equity)))

	s := tradeledger.Analyze(trades, equity, cfg.Options()...)
	logSkipped(log, s.Skipped)
	return s, nil
}

// openWorkbook reads the sheets from their JSONPath when the configuration
// selects them, from the sheet names otherwise. A lone CSV file is the
// trades sheet.
func openWorkbook(path string, cfg *Config) (*workbook.Workbook, error) {
	if len(cfg.Select) > 0 {
		return workbook.Select(path, cfg.Select)
	}
	return workbook.OpenSheet(path, cfg.Sheets.Trades)
}

// logSkipped logs each skipped row at debug level and warns with their count.
func logSkipped(log *zap.Logger, skipped []tradeledger.Skip) {
	if len(skipped) == 0 {
		return
	}
	counts := make(map[string]int)
	for _, s := range skipped {
		counts[s.Sheet]++
		log.Debug("row skipped",
			zap.String("sheet", s.Sheet),
			zap.Int("row", s.Row),
			zap.String("column", s.Column),
			zap.String("reason", s.Reason))
	}
	log.Warn("rows skipped, use -v to list them",
		zap.Int(tradeledger.TradeSheet, counts[tradeledger.TradeSheet]),
		zap.Int(tradeledger.EquitySheet, counts[tradeledger.EquitySheet]))
}
