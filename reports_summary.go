package networth

import (
	"log"
	"math"
	"sort"
)

// CategoryTotal is one category's summed balance in a snapshot.
type CategoryTotal struct {
	Name  string
	Total Money
}

// SummaryStats is the point-in-time view of one snapshot: totals, liquidity
// mix, category breakdown and the change versus the previous snapshot.
type SummaryStats struct {
	Date Date

	NetWorth        Money
	TotalAssets     Money // sum of positive balances
	TotalDebts      Money // sum of negative balances
	LiquidAssets    Money
	NonLiquidAssets Money
	LiquidPercent   Percent // liquid/total assets; 0 when there are no assets

	AssetCount    int // balance entries in the snapshot
	CategoryCount int

	CategoryTotals []CategoryTotal // in first-encounter order
	TopCategories  []CategoryTotal // top 3 positive totals, ties by encounter order

	// Change versus the nearest prior snapshot with a different date.
	HasPreviousData  bool
	PreviousDate     Date
	PreviousNetWorth Money
	ChangeValue      Money
	// ChangePercent is ±Inf when the previous net worth was exactly zero
	// and the current one is not; IsInfinite marks it undefined.
	ChangePercent Percent
}

// NewSummaryStats computes the summary statistics for one snapshot against
// the tracker's items, categories and history.
//
// Balances referencing an unknown item are skipped with a warning and take
// no part in any total. A balance whose item references an unknown category
// still counts, under the "Uncategorized" bucket.
func NewSummaryStats(t *Tracker, current *Snapshot) *SummaryStats {
	stats := &SummaryStats{Date: current.Date, AssetCount: len(current.Balances)}

	totals := make(map[string]Money)
	var order []string

	for _, b := range current.Balances {
		item, ok := t.Item(b.ItemID)
		if !ok {
			log.Printf("skip-balance date=%s item=%q: unknown item", current.Date, b.ItemID)
			continue
		}

		if b.Amount.IsPositive() {
			stats.TotalAssets = stats.TotalAssets.Add(b.Amount)
			if item.Liquid {
				stats.LiquidAssets = stats.LiquidAssets.Add(b.Amount)
			} else {
				stats.NonLiquidAssets = stats.NonLiquidAssets.Add(b.Amount)
			}
		} else if b.Amount.IsNegative() {
			stats.TotalDebts = stats.TotalDebts.Add(b.Amount)
		}

		name := "Uncategorized"
		if cat, ok := t.Category(item.CategoryID); ok {
			name = cat.Name
		} else {
			log.Printf("uncategorized-item item=%q category=%q: unknown category", item.Name, item.CategoryID)
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(b.Amount)
	}

	stats.NetWorth = stats.TotalAssets.Add(stats.TotalDebts)
	stats.CategoryCount = len(order)
	for _, name := range order {
		stats.CategoryTotals = append(stats.CategoryTotals, CategoryTotal{Name: name, Total: totals[name]})
	}

	var positive []CategoryTotal
	for _, ct := range stats.CategoryTotals {
		if ct.Total.IsPositive() {
			positive = append(positive, ct)
		}
	}
	// Stable keeps encounter order for equal totals.
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Total.GreaterThan(positive[j].Total)
	})
	if len(positive) > 3 {
		positive = positive[:3]
	}
	stats.TopCategories = positive

	if stats.TotalAssets.IsPositive() {
		stats.LiquidPercent = Percent(100 * stats.LiquidAssets.Ratio(stats.TotalAssets))
	}

	// Nearest prior snapshot with a different (earlier) date.
	for i := range t.snapshots {
		prev := &t.snapshots[i]
		if !prev.Date.Before(current.Date) {
			continue
		}
		stats.HasPreviousData = true
		stats.PreviousDate = prev.Date
		stats.PreviousNetWorth = prev.NetWorth()
		stats.ChangeValue = stats.NetWorth.Sub(stats.PreviousNetWorth)
		switch {
		case !stats.PreviousNetWorth.IsZero():
			stats.ChangePercent = Percent(100 * stats.ChangeValue.Ratio(stats.PreviousNetWorth.Abs()))
		case !stats.NetWorth.IsZero():
			// Undefined: coming from exactly zero. Reported as a signed
			// infinity marker, never an arithmetic error.
			if stats.NetWorth.IsPositive() {
				stats.ChangePercent = Percent(math.Inf(1))
			} else {
				stats.ChangePercent = Percent(math.Inf(-1))
			}
		}
		break
	}

	return stats
}
