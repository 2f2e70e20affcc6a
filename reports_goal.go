package networth

import (
	"fmt"
	"math"
	"sort"
)

// GoalStatus describes the outcome of a goal projection.
type GoalStatus int

const (
	// GoalNotSet means no financial goal is configured.
	GoalNotSet GoalStatus = iota
	// GoalReached means current net worth already meets or exceeds the target.
	GoalReached
	// GoalNoProjection means a goal is set but no trend window has a
	// positive average change to project with.
	GoalNoProjection
	// GoalProjected means at least one trend window yields a projection.
	GoalProjected
)

func (s GoalStatus) String() string {
	switch s {
	case GoalNotSet:
		return "not set"
	case GoalReached:
		return "already reached"
	case GoalNoProjection:
		return "no projection available"
	case GoalProjected:
		return "projected"
	default:
		return "unknown"
	}
}

// GoalProjection is the time-to-target estimate derived from one trend
// window's average monthly change.
type GoalProjection struct {
	WindowMonths  int
	AverageChange Money
	MonthsToGoal  float64
	Duration      string // e.g. "2 years and 6 months", or "<1 month"
}

// GoalReport is the goal-completion view: the target, the gap, and one
// projection per trend window with a positive average change, shortest
// first.
type GoalReport struct {
	Status      GoalStatus
	Target      Money
	NetWorth    Money
	Remaining   Money
	Projections []GoalProjection
}

// NewGoalReport projects the time to reach the goal from the trend report's
// average monthly changes. Windows with an absent or non-positive average
// contribute nothing; with no usable window at all the report states that
// no projection is available rather than a misleading duration.
func NewGoalReport(goal *Goal, netWorth Money, trend *TrendReport) *GoalReport {
	if goal == nil {
		return &GoalReport{Status: GoalNotSet, NetWorth: netWorth}
	}
	report := &GoalReport{
		Target:   goal.TargetNetWorth,
		NetWorth: netWorth,
	}
	if netWorth.GreaterThanOrEqual(goal.TargetNetWorth) {
		report.Status = GoalReached
		return report
	}
	report.Remaining = goal.TargetNetWorth.Sub(netWorth)

	for _, w := range trend.Windows {
		if !w.Valid || !w.AverageChange.IsPositive() {
			continue
		}
		months := report.Remaining.Ratio(w.AverageChange)
		report.Projections = append(report.Projections, GoalProjection{
			WindowMonths:  w.Months,
			AverageChange: w.AverageChange,
			MonthsToGoal:  months,
			Duration:      FormatMonths(months),
		})
	}
	if len(report.Projections) == 0 {
		report.Status = GoalNoProjection
		return report
	}
	sort.SliceStable(report.Projections, func(i, j int) bool {
		return report.Projections[i].MonthsToGoal < report.Projections[j].MonthsToGoal
	})
	report.Status = GoalProjected
	return report
}

// FormatMonths renders a fractional month count as a human duration,
// rounding up to whole months: "2 years and 6 months", "11 months",
// "3 years", or "<1 month" below one.
func FormatMonths(months float64) string {
	if months < 1 {
		return "<1 month"
	}
	total := int(math.Ceil(months))
	years, rem := total/12, total%12
	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return fmt.Sprintf("%s and %s", plural(years, "year"), plural(rem, "month"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
