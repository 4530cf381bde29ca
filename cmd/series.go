package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradeledger/date"
	"github.com/etnz/tradeledger/renderer"
	"github.com/google/subcommands"
)

// seriesCmd holds the flags for the 'series' subcommand.
type seriesCmd struct {
	period string
	html   string
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the profit series of any period" }
func (*seriesCmd) Usage() string {
	return `tstat series [-p <period>] [-html <file>] [<workbook>]

  Displays the profit, cumulative profit, balance and change of each period
  with trades. See 'tstat topic periods'.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Period of the series (daily, weekly, monthly, quarterly, yearly)")
	f.StringVar(&c.html, "html", "", "Write the report as HTML into this file instead of printing it")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return runSeries(f, p, c.html)
}

func runSeries(f *flag.FlagSet, p date.Period, html string) subcommands.ExitStatus {
	s, err := analyze(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := output(renderer.RenderSeries(s, p), html); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// periodCmd is the shortcut for the series of one period, e.g. 'tstat daily'.
type periodCmd struct {
	period date.Period
	html   string
}

func (c *periodCmd) Name() string     { return c.period.String() }
func (c *periodCmd) Synopsis() string { return fmt.Sprintf("display the %s profit series", c.period) }
func (c *periodCmd) Usage() string {
	return fmt.Sprintf(`tstat %s [-html <file>] [<workbook>]

  Same as 'tstat series -p %s'.
`, c.period, c.period)
}

func (c *periodCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.html, "html", "", "Write the report as HTML into this file instead of printing it")
}

func (c *periodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runSeries(f, c.period, c.html)
}
