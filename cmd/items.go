package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the tracked financial items" }
func (*itemsCmd) Usage() string {
	return `nwt items

  Lists every financial item with its category, type, liquidity and latest
  recorded balance.
`
}

func (*itemsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := DecodeTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Financial Items")

	if len(t.Items()) == 0 {
		doc.PlainText("No items yet. Use 'nwt add-item' or record a snapshot.")
		printMarkdown(doc.String())
		return subcommands.ExitSuccess
	}

	latest, hasSnapshot := t.Latest()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Item", "Category", "Type", "Liquid", "Latest Balance", "Target"},
		Rows:      [][]string{},
	}
	for _, item := range t.Items() {
		balance := "-"
		if hasSnapshot {
			if b, ok := latest.Balance(item.ID); ok {
				balance = b.String()
			}
		}
		liquid := "no"
		if item.Liquid {
			liquid = "yes"
		}
		target := "-"
		if item.TargetBalance != nil {
			target = item.TargetBalance.String()
		}
		table.Rows = append(table.Rows, []string{
			item.Name,
			categoryName(t, item.CategoryID),
			item.Type.String(),
			liquid,
			balance,
			target,
		})
	}
	doc.Table(table)

	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
