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

type milestonesCmd struct{}

func (*milestonesCmd) Name() string     { return "milestones" }
func (*milestonesCmd) Synopsis() string { return "display milestone progress" }
func (*milestonesCmd) Usage() string {
	return `nwt milestones

  Displays which net worth milestones have been achieved and the progress
  toward the next one. Milestones crossed since the last evaluation are
  recorded permanently.
`
}

func (*milestonesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *milestonesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	netWorth := networth.M(0)
	if current, ok := t.Latest(); ok {
		netWorth = current.NetWorth()
	}

	report := networth.EvaluateMilestones(netWorth, t.Achieved())
	if len(report.NewlyAchieved) > 0 {
		if err := EncodeTracker(t); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.MilestonesMarkdown(report))
	return subcommands.ExitSuccess
}
