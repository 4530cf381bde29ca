package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradeledger/renderer"
	"github.com/google/subcommands"
)

type equityCmd struct {
	html string
}

func (*equityCmd) Name() string     { return "equity" }
func (*equityCmd) Synopsis() string { return "display the realized equity of each day" }
func (*equityCmd) Usage() string {
	return `tstat equity [-html <file>] [<workbook>]

  Displays the last realized equity of each day found in the equity sheet,
  and its change from the previous day. See 'tstat topic equity'.
`
}

func (c *equityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.html, "html", "", "Write the report as HTML into this file instead of printing it")
}

func (c *equityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := analyze(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !s.HasEquity() {
		Logger().Warn("no equity snapshot in the workbook")
	}
	if err := output(renderer.RenderEquity(s), c.html); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
