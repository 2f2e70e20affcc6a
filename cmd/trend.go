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

type trendCmd struct{}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display net worth trends over 3, 6 and 12 months" }
func (*trendCmd) Usage() string {
	return `nwt trend

  Displays the average monthly net worth change over the last 3, 6 and 12
  months. A window without a snapshot at its far end is reported as
  unavailable.
`
}

func (*trendCmd) SetFlags(_ *flag.FlagSet) {}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TrendMarkdown(networth.NewTrendReport(t.Snapshots())))
	return subcommands.ExitSuccess
}
