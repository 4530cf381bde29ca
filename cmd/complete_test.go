package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	fs := flag.NewFlagSet("tstat", flag.ContinueOnError)
	fs.String("config", "", "")
	fs.Bool("v", false, "")
	c := subcommands.NewCommander(fs, "tstat")
	c.Register(c.HelpCommand(), "")
	Register(c)

	root := completion(c)
	for _, name := range []string{"config", "v"} {
		if _, ok := root.Flags[name]; !ok {
			t.Errorf("global flag %q is not completed", name)
		}
	}
	for _, name := range []string{"summary", "series", "daily", "weekly", "monthly", "quarterly", "yearly", "equity", "export", "assist", "topic", "help"} {
		if _, ok := root.Sub[name]; !ok {
			t.Errorf("command %q is not completed", name)
		}
	}
	if _, ok := root.Sub["series"].Flags["p"]; !ok {
		t.Error("flag series -p is not completed")
	}
	if got := root.Sub["topic"].Args.Predict(""); len(got) == 0 {
		t.Error("topic arguments are not completed")
	}
	if got := flagPredictor("format").Predict(""); len(got) != 2 {
		t.Errorf("format predictions = %v, want json and yaml", got)
	}
}
