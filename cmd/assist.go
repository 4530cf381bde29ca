package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/tradeledger/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `tstat assist [<workbook>] [<question>...]

  Starts an interactive session with an assistant that knows the statistics
  of the workbook. The first question can be given on the command line.
  It needs a Gemini API key in GOOGLE_API_KEY, see 'tstat topic config'.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := analyze(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var initialPrompt string
	if f.NArg() > 1 {
		initialPrompt = strings.Join(f.Args()[1:], " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(s)
	trader := agent.NewTrader()
	analyst.Logger, trader.Logger = Logger(), Logger()

	a := agent.New(os.Stdout, os.Stdin, analyst, trader)
	a.Facilitator.Logger = Logger()
	a.Print = func(w io.Writer, answer string) {
		fmt.Fprint(w, renderMarkdown(answer, isTerminal(os.Stdout)))
	}

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
