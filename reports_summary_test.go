package networth

import (
	"testing"
)

func TestSummaryStats_Totals(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 5, 1), map[string]float64{
		"Monzo Savings":      2_000,
		"House Deposit Fund": 8_000,
		"Car Loan":           -3_000,
	})

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)

	if got, want := stats.TotalAssets, GBP(10_000); !got.Equal(want) {
		t.Errorf("TotalAssets = %v, want %v", got, want)
	}
	if got, want := stats.TotalDebts, GBP(-3_000); !got.Equal(want) {
		t.Errorf("TotalDebts = %v, want %v", got, want)
	}
	if got, want := stats.NetWorth, GBP(7_000); !got.Equal(want) {
		t.Errorf("NetWorth = %v, want %v", got, want)
	}
	if got, want := stats.NetWorth, stats.TotalAssets.Add(stats.TotalDebts); !got.Equal(want) {
		t.Errorf("NetWorth = %v, want TotalAssets+TotalDebts = %v", got, want)
	}
	if got, want := stats.LiquidAssets, GBP(2_000); !got.Equal(want) {
		t.Errorf("LiquidAssets = %v, want %v", got, want)
	}
	if got, want := stats.NonLiquidAssets, GBP(8_000); !got.Equal(want) {
		t.Errorf("NonLiquidAssets = %v, want %v", got, want)
	}
	if got, want := stats.LiquidPercent, Percent(20); !got.Equal(want) {
		t.Errorf("LiquidPercent = %v, want %v", got, want)
	}
	if stats.HasPreviousData {
		t.Error("HasPreviousData = true with a single snapshot")
	}
	if got, want := stats.AssetCount, 3; got != want {
		t.Errorf("AssetCount = %d, want %d", got, want)
	}
}

func TestSummaryStats_EmptySnapshot(t *testing.T) {
	tr := testTracker()
	tr.RecordSnapshot(NewDate(2024, 5, 1), nil)

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)

	for name, got := range map[string]Money{
		"NetWorth":        stats.NetWorth,
		"TotalAssets":     stats.TotalAssets,
		"TotalDebts":      stats.TotalDebts,
		"LiquidAssets":    stats.LiquidAssets,
		"NonLiquidAssets": stats.NonLiquidAssets,
		"ChangeValue":     stats.ChangeValue,
	} {
		if !got.IsZero() {
			t.Errorf("%s = %v, want zero", name, got)
		}
	}
	if stats.LiquidPercent != 0 {
		t.Errorf("LiquidPercent = %v, want 0", stats.LiquidPercent)
	}
	if stats.CategoryCount != 0 || len(stats.TopCategories) != 0 {
		t.Errorf("categories = %d/%v, want none", stats.CategoryCount, stats.TopCategories)
	}
}

func TestSummaryStats_ChangeVersusPrevious(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 4, 1), map[string]float64{"Monzo Savings": 10_000})
	record(tr, NewDate(2024, 5, 1), map[string]float64{"Monzo Savings": 12_500})

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)

	if !stats.HasPreviousData {
		t.Fatal("HasPreviousData = false, want true")
	}
	if got, want := stats.PreviousDate, NewDate(2024, 4, 1); got != want {
		t.Errorf("PreviousDate = %v, want %v", got, want)
	}
	if got, want := stats.ChangeValue, GBP(2_500); !got.Equal(want) {
		t.Errorf("ChangeValue = %v, want %v", got, want)
	}
	if got, want := stats.ChangePercent, Percent(25); !got.Equal(want) {
		t.Errorf("ChangePercent = %v, want %v", got, want)
	}
}

func TestSummaryStats_ChangeFromZeroIsUndefined(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 4, 1), map[string]float64{"Monzo Savings": 0})
	record(tr, NewDate(2024, 5, 1), map[string]float64{"Monzo Savings": 500})

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)

	if !stats.ChangePercent.IsInfinite() {
		t.Errorf("ChangePercent = %v, want the infinite marker", stats.ChangePercent)
	}
	if stats.ChangePercent < 0 {
		t.Errorf("ChangePercent = %v, want positive infinity for a gain", stats.ChangePercent)
	}
	if got, want := stats.ChangeValue, GBP(500); !got.Equal(want) {
		t.Errorf("ChangeValue = %v, want %v", got, want)
	}
}

func TestSummaryStats_NegativePreviousNetWorth(t *testing.T) {
	// Percentage change uses the absolute value of the previous net worth,
	// so digging out of debt reports a positive change.
	tr := testTracker()
	record(tr, NewDate(2024, 4, 1), map[string]float64{"Car Loan": -1_000})
	record(tr, NewDate(2024, 5, 1), map[string]float64{"Car Loan": -500})

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)

	if got, want := stats.ChangeValue, GBP(500); !got.Equal(want) {
		t.Errorf("ChangeValue = %v, want %v", got, want)
	}
	if got, want := stats.ChangePercent, Percent(50); !got.Equal(want) {
		t.Errorf("ChangePercent = %v, want %v", got, want)
	}
}

func TestSummaryStats_CategoryBreakdown(t *testing.T) {
	tr := NewTracker()
	savings, _ := tr.AddCategory("Savings", nil)
	property, _ := tr.AddCategory("Property", nil)
	pension, _ := tr.AddCategory("Pension", nil)
	loans, _ := tr.AddCategory("Loan", nil)

	tr.AddItem("Cash ISA", savings.ID, true, Asset, nil)
	tr.AddItem("Flat", property.ID, false, Asset, nil)
	tr.AddItem("SIPP", pension.ID, false, Asset, nil)
	tr.AddItem("Car Loan", loans.ID, false, Liability, nil)

	record(tr, NewDate(2024, 5, 1), map[string]float64{
		"Cash ISA": 5_000,
		"Flat":     200_000,
		"SIPP":     40_000,
		"Car Loan": -7_000,
	})

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)

	if got, want := stats.CategoryCount, 4; got != want {
		t.Fatalf("CategoryCount = %d, want %d", got, want)
	}
	if got, want := len(stats.TopCategories), 3; got != want {
		t.Fatalf("len(TopCategories) = %d, want %d", got, want)
	}
	wantTop := []CategoryTotal{
		{"Property", GBP(200_000)},
		{"Pension", GBP(40_000)},
		{"Savings", GBP(5_000)},
	}
	for i, want := range wantTop {
		got := stats.TopCategories[i]
		if got.Name != want.Name || !got.Total.Equal(want.Total) {
			t.Errorf("TopCategories[%d] = %s %v, want %s %v", i, got.Name, got.Total, want.Name, want.Total)
		}
	}
}

func TestSummaryStats_TopCategoryTiesKeepEncounterOrder(t *testing.T) {
	tr := NewTracker()
	a, _ := tr.AddCategory("Savings", nil)
	b, _ := tr.AddCategory("Investment", nil)
	tr.AddItem("Saver", a.ID, true, Asset, nil)
	tr.AddItem("Fund", b.ID, false, Asset, nil)

	tr.RecordSnapshot(NewDate(2024, 5, 1), []Balance{
		{mustItem(tr, "Saver").ID, GBP(1_000)},
		{mustItem(tr, "Fund").ID, GBP(1_000)},
	})

	current, _ := tr.Latest()
	stats := NewSummaryStats(tr, current)
	if got := stats.TopCategories[0].Name; got != "Savings" {
		t.Errorf("TopCategories[0] = %q, want the first-encountered %q on a tie", got, "Savings")
	}
}

func TestSummaryStats_UnknownItemSkipped(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 5, 1), map[string]float64{"Monzo Savings": 100})
	current, _ := tr.Latest()
	// Simulate a dangling reference left behind in a hand-edited file.
	current.Balances = append(current.Balances, Balance{ItemID: "item_999", Amount: GBP(1_000_000)})

	stats := NewSummaryStats(tr, current)
	if got, want := stats.NetWorth, GBP(100); !got.Equal(want) {
		t.Errorf("NetWorth = %v, want %v (dangling balance must not count)", got, want)
	}
}

func mustItem(t *Tracker, name string) FinancialItem {
	item, ok := t.ItemByName(name)
	if !ok {
		panic("unknown test item " + name)
	}
	return item
}
