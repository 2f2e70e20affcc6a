package renderer

import (
	"bytes"
	"fmt"

	"github.com/hstanley/networth"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the snapshot history, one row per snapshot. When
// itemName is non-empty only that item's balance history is shown.
func HistoryMarkdown(t *networth.Tracker, itemName string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if itemName != "" {
		return itemHistoryMarkdown(doc, t, itemName)
	}

	doc.H1("Net Worth History")
	if len(t.Snapshots()) == 0 {
		doc.PlainText("No snapshots recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Assets", "Debts", "Net Worth"},
		Rows:      [][]string{},
	}
	for _, s := range t.Snapshots() {
		stats := networth.NewSummaryStats(t, &s)
		table.Rows = append(table.Rows, []string{
			s.Date.String(),
			stats.TotalAssets.String(),
			stats.TotalDebts.String(),
			stats.NetWorth.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func itemHistoryMarkdown(doc *md.Markdown, t *networth.Tracker, itemName string) string {
	doc.H1(fmt.Sprintf("History for %s", itemName))

	item, ok := t.ItemByName(itemName)
	if !ok {
		doc.PlainText(fmt.Sprintf("Unknown item %q.", itemName))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Balance"},
		Rows:      [][]string{},
	}
	for _, s := range t.Snapshots() {
		if balance, ok := s.Balance(item.ID); ok {
			table.Rows = append(table.Rows, []string{s.Date.String(), balance.String()})
		}
	}
	doc.Table(table)

	if item.TargetBalance != nil {
		doc.PlainText(fmt.Sprintf("Target balance: %s.", *item.TargetBalance))
	}

	return doc.String()
}
