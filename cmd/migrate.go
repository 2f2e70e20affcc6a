package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hstanley/networth"
)

type migrateCmd struct {
	from   string
	output string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "convert a legacy flat data file" }
func (*migrateCmd) Usage() string {
	return `nwt migrate -from <legacy file> [-o <file>]

  Converts a legacy flat-format file (a JSON list of dated records with
  embedded assets) into the normalized data format, and writes it to -o or
  the current data file. The legacy file is left untouched.

  Refuses to overwrite an existing destination.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Legacy file to convert (required).")
	f.StringVar(&c.output, "o", "", "Destination data file. Defaults to the current data file.")
}

func (c *migrateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "Error: -from is required")
		return subcommands.ExitUsageError
	}
	dest := c.output
	if dest == "" {
		dest = DataFile()
	}
	if _, err := os.Stat(dest); err == nil {
		fmt.Fprintf(os.Stderr, "Error: destination %q already exists, refusing to overwrite\n", dest)
		return subcommands.ExitFailure
	}

	legacy, err := os.Open(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening legacy file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer legacy.Close()

	t, err := networth.MigrateLegacy(legacy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error migrating: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := networth.SaveTracker(dest, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Migrated %d snapshots, %d items and %d categories to %s.\n",
		len(t.Snapshots()), len(t.Items()), len(t.Categories()), dest)
	return subcommands.ExitSuccess
}
