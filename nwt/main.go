package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hstanley/networth/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and their main
// flags. It is a no-op outside of a shell completion invocation.
func completion() {
	sub := map[string]*complete.Command{
		"summary":      {Flags: map[string]complete.Predictor{"d": predict.Something}},
		"trend":        {},
		"milestones":   {},
		"goal":         {Flags: map[string]complete.Predictor{"target": predict.Something, "clear": predict.Nothing}},
		"record":       {Flags: map[string]complete.Predictor{"d": predict.Something}},
		"history":      {Flags: map[string]complete.Predictor{"item": predict.Something}},
		"add-item":     {Flags: map[string]complete.Predictor{"name": predict.Something, "category": predict.Something, "type": predict.Set{"asset", "liability"}, "liquid": predict.Nothing, "target": predict.Something}},
		"delete-item":  {Flags: map[string]complete.Predictor{"name": predict.Something}},
		"items":        {},
		"add-category": {Flags: map[string]complete.Predictor{"name": predict.Something, "keywords": predict.Something}},
		"categories":   {},
		"export":       {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
		"migrate":      {Flags: map[string]complete.Predictor{"from": predict.Files("*.json"), "o": predict.Files("*.json")}},
		"topic":        {},
		"assist":       {},
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-file": predict.Files("*.json"),
		},
	}
	root.Complete("nwt")
}
