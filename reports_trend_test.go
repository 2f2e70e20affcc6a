package networth

import (
	"testing"
)

func TestTrendReport_ThreeMonthAverage(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 1, 1), map[string]float64{"Monzo Savings": 10_000})
	record(tr, NewDate(2024, 4, 1), map[string]float64{"Monzo Savings": 13_000})

	report := NewTrendReport(tr.Snapshots())
	if !report.HasData {
		t.Fatal("HasData = false")
	}
	if got, want := report.CurrentMonth, NewDate(2024, 4, 1); got != want {
		t.Errorf("CurrentMonth = %v, want %v", got, want)
	}

	w, ok := report.Window(3)
	if !ok || !w.Valid {
		t.Fatalf("3-month window = %+v %v, want a valid window", w, ok)
	}
	if got, want := w.AverageChange, GBP(1_000); !got.Equal(want) {
		t.Errorf("3-month AverageChange = %v, want %v", got, want)
	}
	if got, want := w.Reference, GBP(10_000); !got.Equal(want) {
		t.Errorf("3-month Reference = %v, want %v", got, want)
	}

	// January is only 3 months back, so the longer windows have no
	// reference month and must be absent rather than zero.
	for _, n := range []int{6, 12} {
		w, _ := report.Window(n)
		if w.Valid {
			t.Errorf("%d-month window valid with no snapshot %d months back", n, n)
		}
	}
}

func TestTrendReport_GapMonthInvalidatesWindow(t *testing.T) {
	// Consecutive snapshots 2 months apart: no snapshot exactly 3 months
	// behind the newest one, so the 3-month window is absent.
	tr := testTracker()
	record(tr, NewDate(2024, 2, 1), map[string]float64{"Monzo Savings": 10_000})
	record(tr, NewDate(2024, 4, 1), map[string]float64{"Monzo Savings": 13_000})

	report := NewTrendReport(tr.Snapshots())
	if w, _ := report.Window(3); w.Valid {
		t.Errorf("3-month window = %+v, want absent when the reference month has no snapshot", w)
	}
}

func TestTrendReport_KeepsLatestSnapshotPerMonth(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 1, 5), map[string]float64{"Monzo Savings": 9_000})
	record(tr, NewDate(2024, 1, 28), map[string]float64{"Monzo Savings": 10_000})
	record(tr, NewDate(2024, 4, 15), map[string]float64{"Monzo Savings": 16_000})

	report := NewTrendReport(tr.Snapshots())
	w, _ := report.Window(3)
	if !w.Valid {
		t.Fatal("3-month window absent")
	}
	// The 28 Jan snapshot represents January, not the 5 Jan one.
	if got, want := w.AverageChange, GBP(2_000); !got.Equal(want) {
		t.Errorf("AverageChange = %v, want %v", got, want)
	}
}

func TestTrendReport_AllWindows(t *testing.T) {
	tr := testTracker()
	for i := 0; i <= 12; i++ {
		record(tr, NewDate(2023, 4, 1).AddMonths(i), map[string]float64{
			"Monzo Savings": float64(10_000 + 500*i),
		})
	}

	report := NewTrendReport(tr.Snapshots())
	for _, n := range []int{3, 6, 12} {
		w, ok := report.Window(n)
		if !ok || !w.Valid {
			t.Fatalf("%d-month window = %+v %v, want valid", n, w, ok)
		}
		// Steady £500/month growth averages to £500 in every window.
		if got, want := w.AverageChange, GBP(500); !got.Equal(want) {
			t.Errorf("%d-month AverageChange = %v, want %v", n, got, want)
		}
	}
}

func TestTrendReport_DecliningNetWorth(t *testing.T) {
	tr := testTracker()
	record(tr, NewDate(2024, 1, 1), map[string]float64{"Monzo Savings": 13_000})
	record(tr, NewDate(2024, 4, 1), map[string]float64{"Monzo Savings": 10_000})

	report := NewTrendReport(tr.Snapshots())
	w, _ := report.Window(3)
	if got, want := w.AverageChange, GBP(-1_000); !got.Equal(want) {
		t.Errorf("AverageChange = %v, want %v", got, want)
	}
}

func TestTrendReport_Empty(t *testing.T) {
	report := NewTrendReport(nil)
	if report.HasData {
		t.Fatal("HasData = true for an empty history")
	}
	if got, want := len(report.Windows), 3; got != want {
		t.Fatalf("len(Windows) = %d, want %d", got, want)
	}
	for _, w := range report.Windows {
		if w.Valid {
			t.Errorf("%d-month window valid with no data", w.Months)
		}
	}
}
