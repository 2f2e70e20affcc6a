package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hstanley/networth/renderer"
)

type historyCmd struct {
	item string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the snapshot history" }
func (*historyCmd) Usage() string {
	return `nwt history [-item <name>]

  Displays every recorded snapshot, newest first, with assets, debts and
  net worth. With -item, shows the balance history of a single item.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Restrict the history to one item's balances.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(t, c.item))
	return subcommands.ExitSuccess
}
