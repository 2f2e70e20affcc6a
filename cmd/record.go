package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hstanley/networth"
	"github.com/hstanley/networth/renderer"
	"github.com/shopspring/decimal"
)

// recordCmd records a balance snapshot.
type recordCmd struct {
	date string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record a balance snapshot" }
func (*recordCmd) Usage() string {
	return `nwt record [-d <date>] "<item>=<balance>" ...

  Records the balances of the named items on the given date (today by
  default). Each argument pairs an item name with its balance; enter debts
  as negative amounts:

    nwt record "Cash ISA=12000" "Car Loan=-1500"

  Recording on a date that already has a snapshot replaces it. Items not
  yet known are created on the fly, classified into a category by name.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", networth.Today().String(), "Date of the snapshot.")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to record, pass at least one \"<item>=<balance>\" argument")
		return subcommands.ExitUsageError
	}
	on, err := networth.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var balances []networth.Balance
	for _, arg := range f.Args() {
		name, value, found := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			fmt.Fprintf(os.Stderr, "Error: argument %q is not of the form <item>=<balance>\n", arg)
			return subcommands.ExitUsageError
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance for %q: %v\n", name, err)
			return subcommands.ExitUsageError
		}

		item, ok := t.ItemByName(name)
		if !ok {
			item, err = createItem(t, name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating item %q: %v\n", name, err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Created item %q in category %q.\n", item.Name, categoryName(t, item.CategoryID))
		}
		balances = append(balances, networth.Balance{ItemID: item.ID, Amount: networth.M(amount)})
	}

	t.RecordSnapshot(on, balances)

	// Evaluate milestones on the latest snapshot so a newly crossed
	// threshold is announced and remembered.
	var report *networth.MilestoneReport
	if latest, ok := t.Latest(); ok && latest.Date == on {
		report = networth.EvaluateMilestones(latest.NetWorth(), t.Achieved())
	}

	if err := EncodeTracker(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded snapshot on %s with %d balances.\n", on, len(balances))

	if report != nil && len(report.NewlyAchieved) > 0 {
		printMarkdown(renderer.MilestonesMarkdown(report))
	}
	return subcommands.ExitSuccess
}

// createItem adds an item named during record, classified by keyword into a
// category, an asset unless its category is a liability one.
func createItem(t *networth.Tracker, name string) (networth.FinancialItem, error) {
	categoryID, ok := t.Classifier().Classify(name)
	if !ok {
		other, err := ensureCategory(t, "Other")
		if err != nil {
			return networth.FinancialItem{}, err
		}
		categoryID = other.ID
	}
	typ := networth.Asset
	if cat, ok := t.Category(categoryID); ok && networth.IsLiabilityCategory(cat.Name) {
		typ = networth.Liability
	}
	return t.AddItem(name, categoryID, false, typ, nil)
}

func ensureCategory(t *networth.Tracker, name string) (networth.Category, error) {
	if cat, ok := t.CategoryByName(name); ok {
		return cat, nil
	}
	return t.AddCategory(name, nil)
}

func categoryName(t *networth.Tracker, id string) string {
	if cat, ok := t.Category(id); ok {
		return cat.Name
	}
	return "Uncategorized"
}
