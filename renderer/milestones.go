package renderer

import (
	"bytes"
	"fmt"

	"github.com/hstanley/networth"
	md "github.com/nao1215/markdown"
)

func MilestonesMarkdown(r *networth.MilestoneReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Milestones")
	doc.PlainText(fmt.Sprintf("Net Worth: %s", r.NetWorth))

	if len(r.NewlyAchieved) > 0 {
		doc.H2("Newly Achieved")
		items := make([]string, 0, len(r.NewlyAchieved))
		for _, m := range r.NewlyAchieved {
			items = append(items, fmt.Sprintf("%s (%s)", m.DisplayName, m.Threshold))
		}
		doc.BulletList(items...)
	}

	doc.H2("Progress")
	if r.AllAchieved {
		doc.PlainText("All milestones achieved.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Next: %s (%s), %s of the way there.",
		r.Next.DisplayName, r.Next.Threshold, r.Progress))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Milestone", "Threshold", "Status"},
		Rows:      [][]string{},
	}
	achieved := make(map[string]bool)
	for _, m := range r.Achieved {
		achieved[m.DisplayName] = true
	}
	for _, m := range networth.Milestones() {
		status := ""
		switch {
		case achieved[m.DisplayName]:
			status = "achieved"
		case r.Next != nil && m.DisplayName == r.Next.DisplayName:
			status = "next"
		}
		table.Rows = append(table.Rows, []string{m.DisplayName, m.Threshold.String(), status})
	}
	doc.Table(table)

	return doc.String()
}
