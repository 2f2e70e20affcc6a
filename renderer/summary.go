// Package renderer turns the engine's report structs into markdown
// documents, one function per report.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/hstanley/networth"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *networth.SummaryStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Net Worth Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Net Worth: %s", s.NetWorth))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Total Assets", s.TotalAssets.String()},
			{"Total Debts", s.TotalDebts.String()},
			{"Liquid Assets", fmt.Sprintf("%s (%s)", s.LiquidAssets, s.LiquidPercent)},
			{"Non-Liquid Assets", s.NonLiquidAssets.String()},
		},
	})

	if len(s.CategoryTotals) > 0 {
		doc.H2("By Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Total"},
			Rows:      [][]string{},
		}
		for _, ct := range s.CategoryTotals {
			table.Rows = append(table.Rows, []string{ct.Name, ct.Total.String()})
		}
		doc.Table(table)
	}

	if len(s.TopCategories) > 0 {
		doc.H2("Top Categories")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Total"},
			Rows:      [][]string{},
		}
		for _, ct := range s.TopCategories {
			table.Rows = append(table.Rows, []string{ct.Name, ct.Total.String()})
		}
		doc.Table(table)
	}

	if s.HasPreviousData {
		doc.H2(fmt.Sprintf("Change since %s", s.PreviousDate))
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"", "Value"},
			Rows: [][]string{
				{"Previous Net Worth", s.PreviousNetWorth.String()},
				{"Change", s.ChangeValue.SignedString()},
				{"Change %", s.ChangePercent.SignedString()},
			},
		})
	}

	return doc.String()
}
