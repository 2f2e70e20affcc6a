package networth

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
)

// This file contains the export format consumed by spreadsheets and other
// read-only collaborators. It never mutates the model.

// csvHeader is the flat export header: one row per balance entry.
var csvHeader = []string{"date", "item", "category", "type", "liquid", "balance", "net_worth"}

// ExportCSV writes the whole snapshot history as CSV, most recent snapshot
// first. Each row is one balance entry, with its item and category names
// resolved; the snapshot's net worth repeats on each of its rows. Balances
// referencing an unknown item are skipped with a warning.
func ExportCSV(w io.Writer, t *Tracker) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}

	for _, s := range t.Snapshots() {
		netWorth := s.NetWorth().DecimalString()
		for _, b := range s.Balances {
			item, ok := t.Item(b.ItemID)
			if !ok {
				log.Printf("export-skip-balance date=%s item=%q: unknown item", s.Date, b.ItemID)
				continue
			}
			categoryName := "Uncategorized"
			if cat, ok := t.Category(item.CategoryID); ok {
				categoryName = cat.Name
			}
			row := []string{
				s.Date.String(),
				item.Name,
				categoryName,
				item.Type.String(),
				fmt.Sprintf("%t", item.Liquid),
				b.Amount.DecimalString(),
				netWorth,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("cannot write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot flush csv: %w", err)
	}
	return nil
}
