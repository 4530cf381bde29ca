package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradeledger/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	html     string
	noSeries bool
	skipped  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the statistics of a trade ledger" }
func (*summaryCmd) Usage() string {
	return `tstat summary [-html <file>] [-no-series] [-skipped] [<workbook>]

  Displays the trade statistics, the income figures, the daily and the
  monthly series of the workbook. See 'tstat topic columns' for the
  expected sheets.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.html, "html", "", "Write the report as HTML into this file instead of printing it")
	f.BoolVar(&c.noSeries, "no-series", false, "Do not display the daily and monthly series")
	f.BoolVar(&c.skipped, "skipped", false, "List the rows left out of the statistics")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := analyze(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderSummary(s, renderer.SummaryOptions{SkipSeries: c.noSeries, ShowSkipped: c.skipped})
	if err := output(md, c.html); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
