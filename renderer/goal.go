package renderer

import (
	"bytes"
	"fmt"

	"github.com/hstanley/networth"
	md "github.com/nao1215/markdown"
)

func GoalMarkdown(r *networth.GoalReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Goal")
	switch r.Status {
	case networth.GoalNotSet:
		doc.PlainText("No goal set. Use `goal -target <amount>` to set one.")
		return doc.String()
	case networth.GoalReached:
		doc.PlainText(fmt.Sprintf("Target %s already reached. Net Worth: %s.", r.Target, r.NetWorth))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Target: %s, Net Worth: %s, Remaining: %s.",
		r.Target, r.NetWorth, r.Remaining))

	if r.Status == networth.GoalNoProjection {
		doc.PlainText("No projection available: no trend window shows positive growth.")
		return doc.String()
	}

	doc.H2("Projections")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Based On", "Avg Monthly Change", "Time To Goal"},
		Rows:      [][]string{},
	}
	for _, p := range r.Projections {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("last %d months", p.WindowMonths),
			p.AverageChange.SignedString(),
			p.Duration,
		})
	}
	doc.Table(table)

	return doc.String()
}
