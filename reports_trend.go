package networth

import "sort"

// trendWindows are the rolling lookbacks, in months, the trend report covers.
var trendWindows = []int{3, 6, 12}

// TrendWindow is the average monthly net-worth change over one rolling
// lookback. Valid is false when the month at the far end of the window has
// no recorded snapshot; the window is then absent, not zero.
type TrendWindow struct {
	Months        int
	Valid         bool
	AverageChange Money // average change per month over the window
	Reference     Money // net worth at the far end of the window
}

// TrendReport is the multi-window trend view of the snapshot history.
type TrendReport struct {
	HasData         bool
	CurrentMonth    Date  // first day of the newest recorded month
	CurrentNetWorth Money // net worth of that month's latest snapshot
	Windows         []TrendWindow
}

// Window returns the trend window for the given number of months.
func (r *TrendReport) Window(months int) (TrendWindow, bool) {
	for _, w := range r.Windows {
		if w.Months == months {
			return w, true
		}
	}
	return TrendWindow{}, false
}

// NewTrendReport groups the snapshot history by calendar month, keeps the
// most recently dated snapshot's net worth per month, and computes the
// 3/6/12-month average monthly change.
//
// The input may be in any order. A window's average is
// (current month's net worth − net worth N calendar months back) / N, and
// is absent whenever no snapshot was recorded exactly N months back.
func NewTrendReport(snapshots []Snapshot) *TrendReport {
	report := &TrendReport{}
	if len(snapshots) == 0 {
		for _, n := range trendWindows {
			report.Windows = append(report.Windows, TrendWindow{Months: n})
		}
		return report
	}

	ordered := append([]Snapshot(nil), snapshots...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})

	// Newest-first, so the first snapshot seen for a month is the one kept.
	monthly := make(map[Date]Money)
	for i := range ordered {
		month := ordered[i].Date.StartOfMonth()
		if _, seen := monthly[month]; !seen {
			monthly[month] = ordered[i].NetWorth()
		}
	}

	report.HasData = true
	report.CurrentMonth = ordered[0].Date.StartOfMonth()
	report.CurrentNetWorth = monthly[report.CurrentMonth]

	for _, n := range trendWindows {
		w := TrendWindow{Months: n}
		if ref, ok := monthly[report.CurrentMonth.AddMonths(-n)]; ok {
			w.Valid = true
			w.Reference = ref
			w.AverageChange = report.CurrentNetWorth.Sub(ref).DivInt(n)
		}
		report.Windows = append(report.Windows, w)
	}
	return report
}
