package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/tradeledger"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the statistics in a machine readable format" }
func (*exportCmd) Usage() string {
	return `tstat export [-format json|yaml] [-o <file>] [<workbook>]

  Writes every statistic and series, and the rows left out, as JSON or YAML.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or yaml")
	f.StringVar(&c.output, "o", "", "Output file, defaults to the standard output")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "json" && c.format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	s, err := analyze(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := encode(w, c.format, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", c.format, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func encode(w io.Writer, format string, s *tradeledger.Stats) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
}
