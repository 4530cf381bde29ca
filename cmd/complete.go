package cmd

import (
	"flag"

	"github.com/etnz/tradeledger/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers the shell completion requests for the commands registered
// in c. It exits the program when the shell asked for a completion, and
// returns otherwise. See 'COMP_INSTALL=1 tstat' to install it.
func Complete(name string, c *subcommands.Commander) {
	completion(c).Complete(name)
}

// completion builds the completion tree from the flags of each command.
func completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = flagPredictor(f.Name)
	})

	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		names = append(names, cmd.Name())

		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{
			Flags: make(map[string]complete.Predictor),
			Args:  predict.Files("*"),
		}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f.Name)
		})
		root.Sub[cmd.Name()] = sub
	})

	if topic, ok := root.Sub["topic"]; ok {
		topics, _ := docs.GetAllTopics()
		topic.Args = predict.Set(topics)
	}
	if help, ok := root.Sub["help"]; ok {
		help.Args = predict.Set(names)
	}
	return root
}

func flagPredictor(name string) complete.Predictor {
	switch name {
	case "p":
		return predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"}
	case "format":
		return predict.Set{"json", "yaml"}
	case "config":
		return predict.Files("*.yaml")
	case "html":
		return predict.Files("*.html")
	case "o":
		return predict.Files("*")
	default:
		return predict.Nothing
	}
}
