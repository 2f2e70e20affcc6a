package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type addCategoryCmd struct {
	name     string
	keywords string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "add a custom category" }
func (*addCategoryCmd) Usage() string {
	return `nwt add-category -name <name> [-keywords <kw1,kw2,...>]

  Adds a category. Keywords drive the automatic classification of item
  names; a known default category name inherits the built-in keyword list
  when -keywords is omitted.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the category (required).")
	f.StringVar(&c.keywords, "keywords", "", "Comma-separated classification keywords.")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var keywords []string
	if c.keywords != "" {
		for _, kw := range strings.Split(c.keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, strings.ToLower(kw))
			}
		}
	}

	cat, err := t.AddCategory(c.name, keywords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeTracker(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added category %q with %d keywords.\n", cat.Name, len(cat.Keywords))
	return subcommands.ExitSuccess
}
