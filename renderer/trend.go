package renderer

import (
	"bytes"
	"fmt"

	"github.com/hstanley/networth"
	md "github.com/nao1215/markdown"
)

func TrendMarkdown(r *networth.TrendReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Worth Trend")
	if !r.HasData {
		doc.PlainText("No snapshots recorded yet.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Current Month: %s %d, Net Worth: %s",
		r.CurrentMonth.Month(), r.CurrentMonth.Year(), r.CurrentNetWorth))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Window", "Avg Monthly Change"},
		Rows:      [][]string{},
	}
	for _, w := range r.Windows {
		label := fmt.Sprintf("%d months", w.Months)
		value := "n/a"
		if w.Valid {
			value = w.AverageChange.SignedString()
		}
		table.Rows = append(table.Rows, []string{label, value})
	}
	doc.Table(table)

	return doc.String()
}
