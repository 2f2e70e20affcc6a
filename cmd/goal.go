package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hstanley/networth"
	"github.com/hstanley/networth/renderer"
	"github.com/shopspring/decimal"
)

// goalCmd shows, sets or clears the financial goal.
type goalCmd struct {
	target string
	clear  bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show, set or clear the financial goal" }
func (*goalCmd) Usage() string {
	return `nwt goal [-target <amount>] [-clear]

  Without flags, displays the goal and the projected time to reach it based
  on the recent trend. With -target, sets or replaces the goal. With -clear,
  removes it.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Target net worth to set, e.g. 50000.")
	f.BoolVar(&c.clear, "clear", false, "Remove the goal.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.target != "" && c.clear {
		fmt.Fprintln(os.Stderr, "Error: -target and -clear are mutually exclusive")
		return subcommands.ExitUsageError
	}

	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.clear:
		t.ClearGoal()
		if err := EncodeTracker(t); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Goal cleared.")
		return subcommands.ExitSuccess

	case c.target != "":
		amount, err := decimal.NewFromString(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target %q: %v\n", c.target, err)
			return subcommands.ExitUsageError
		}
		if !amount.IsPositive() {
			fmt.Fprintln(os.Stderr, "Error: target must be a positive amount")
			return subcommands.ExitUsageError
		}
		t.SetGoal(networth.M(amount))
		if err := EncodeTracker(t); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Goal set to %s.\n", networth.M(amount))
		return subcommands.ExitSuccess
	}

	netWorth := networth.M(0)
	if current, ok := t.Latest(); ok {
		netWorth = current.NetWorth()
	}
	var goal *networth.Goal
	if g, ok := t.Goal(); ok {
		goal = &g
	}
	trend := networth.NewTrendReport(t.Snapshots())

	printMarkdown(renderer.GoalMarkdown(networth.NewGoalReport(goal, netWorth, trend)))
	return subcommands.ExitSuccess
}
