package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hstanley/networth"
	"github.com/hstanley/networth/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the current net worth summary" }
func (*summaryCmd) Usage() string {
	return `nwt summary [-d <date>]

  Displays the summary for the latest snapshot, or the one recorded on the
  given date: net worth, assets and debts, liquidity, category breakdown and
  the change since the previous snapshot.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot to summarize. Defaults to the latest.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var current *networth.Snapshot
	if c.date != "" {
		on, err := networth.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		s, ok := t.Snapshot(on)
		if !ok {
			fmt.Fprintf(os.Stderr, "No snapshot recorded on %s\n", on)
			return subcommands.ExitFailure
		}
		current = s
	} else {
		s, ok := t.Latest()
		if !ok {
			fmt.Fprintln(os.Stderr, "No snapshots recorded yet. Use 'nwt record' first.")
			return subcommands.ExitFailure
		}
		current = s
	}

	printMarkdown(renderer.SummaryMarkdown(networth.NewSummaryStats(t, current)))
	return subcommands.ExitSuccess
}
