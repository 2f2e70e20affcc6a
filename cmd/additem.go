package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hstanley/networth"
	"github.com/shopspring/decimal"
)

// addItemCmd creates a financial item explicitly, with full control over
// its category, type and liquidity.
type addItemCmd struct {
	name     string
	category string
	typ      string
	liquid   bool
	target   string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a financial item" }
func (*addItemCmd) Usage() string {
	return `nwt add-item -name <name> [-category <name>] [-type asset|liability] [-liquid] [-target <amount>]

  Adds a financial item. Without -category the item name is classified by
  keyword; unmatched names go to Other. Without -type, items in the
  Mortgage, Loan and Credit Card categories become liabilities, everything
  else an asset.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the item (required).")
	f.StringVar(&c.category, "category", "", "Category name. Classified by keyword when omitted.")
	f.StringVar(&c.typ, "type", "", "Item type, asset or liability. Derived from the category when omitted.")
	f.BoolVar(&c.liquid, "liquid", false, "Mark the item as liquid.")
	f.StringVar(&c.target, "target", "", "Optional target balance for this item.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var cat networth.Category
	if c.category != "" {
		cat, err = ensureCategory(t, c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		id, ok := t.Classifier().Classify(c.name)
		if ok {
			cat, _ = t.Category(id)
		} else if cat, err = ensureCategory(t, "Other"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	typ := networth.Asset
	if c.typ != "" {
		typ, err = networth.ParseItemType(c.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	} else if networth.IsLiabilityCategory(cat.Name) {
		typ = networth.Liability
	}

	var target *networth.Money
	if c.target != "" {
		amount, err := decimal.NewFromString(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing target %q: %v\n", c.target, err)
			return subcommands.ExitUsageError
		}
		m := networth.M(amount)
		target = &m
	}

	item, err := t.AddItem(c.name, cat.ID, c.liquid, typ, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeTracker(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %q in category %q.\n", item.Type, item.Name, cat.Name)
	return subcommands.ExitSuccess
}
