package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteItemCmd struct {
	name string
}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "delete a financial item and its balances" }
func (*deleteItemCmd) Usage() string {
	return `nwt delete-item -name <name>

  Deletes a financial item and removes its balance from every snapshot.
  Historic net worth figures change accordingly.
`
}

func (c *deleteItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the item to delete (required).")
}

func (c *deleteItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	item, ok := t.ItemByName(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item named %q\n", c.name)
		return subcommands.ExitFailure
	}
	if err := t.DeleteItem(item.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeTracker(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted item %q and its balances from every snapshot.\n", item.Name)
	return subcommands.ExitSuccess
}
