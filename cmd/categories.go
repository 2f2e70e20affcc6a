package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories and their keywords" }
func (*categoriesCmd) Usage() string {
	return `nwt categories

  Lists every category with its classification keywords and how many items
  it holds.
`
}

func (*categoriesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	counts := make(map[string]int)
	for _, item := range t.Items() {
		counts[item.CategoryID]++
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Categories")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Category", "Items", "Keywords"},
		Rows:      [][]string{},
	}
	for _, cat := range t.Categories() {
		table.Rows = append(table.Rows, []string{
			cat.Name,
			fmt.Sprintf("%d", counts[cat.ID]),
			strings.Join(cat.Keywords, ", "),
		})
	}
	doc.Table(table)

	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
