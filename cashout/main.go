package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashout/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests, and returns on a normal run.
func completion() {
	exportFlag := map[string]complete.Predictor{"f": predict.Files("*.csv")}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"report":    {Flags: exportFlag},
			"positions": {Flags: exportFlag},
			"prices":    {Flags: exportFlag},
			"fee":       {},
			"assist":    {Flags: exportFlag},
			"topic":     {},
		},
	}
	root.Complete("cashout")
}
