package networth

import "sort"

// Milestone is a fixed net-worth threshold with a display name. Once
// reached, a milestone stays achieved even if net worth later falls back
// below its threshold.
type Milestone struct {
	Threshold   Money
	DisplayName string
}

// milestoneLadder is the fixed ascending list of milestones.
var milestoneLadder = []Milestone{
	{M(0), "Debt Free"},
	{M(1_000), "£1k"},
	{M(5_000), "£5k"},
	{M(10_000), "£10k"},
	{M(25_000), "£25k"},
	{M(50_000), "£50k"},
	{M(100_000), "£100k"},
	{M(250_000), "£250k"},
	{M(500_000), "£500k"},
	{M(750_000), "£750k"},
	{M(1_000_000), "£1M"},
}

// Milestones returns the fixed milestone ladder, ascending by threshold.
func Milestones() []Milestone {
	return append([]Milestone(nil), milestoneLadder...)
}

// MilestoneSet is the persisted, monotonically growing set of achieved
// thresholds. Values are kept ascending and unique.
type MilestoneSet struct {
	thresholds []Money
}

// NewMilestoneSet builds a set from raw threshold values, deduplicated and
// sorted ascending.
func NewMilestoneSet(values []Money) MilestoneSet {
	var s MilestoneSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of achieved thresholds.
func (s *MilestoneSet) Len() int { return len(s.thresholds) }

// Has reports whether a threshold is in the set.
func (s *MilestoneSet) Has(v Money) bool {
	for _, t := range s.thresholds {
		if t.Equal(v) {
			return true
		}
	}
	return false
}

// Add inserts a threshold, reporting whether it was newly added. The set
// never shrinks: there is no removal.
func (s *MilestoneSet) Add(v Money) bool {
	if s.Has(v) {
		return false
	}
	s.thresholds = append(s.thresholds, v)
	sort.Slice(s.thresholds, func(i, j int) bool {
		return s.thresholds[i].LessThan(s.thresholds[j])
	})
	return true
}

// Values returns the achieved thresholds, ascending.
func (s *MilestoneSet) Values() []Money {
	return append([]Money(nil), s.thresholds...)
}

// highestBelow returns the largest achieved threshold strictly below v.
func (s *MilestoneSet) highestBelow(v Money) (Money, bool) {
	for i := len(s.thresholds) - 1; i >= 0; i-- {
		if s.thresholds[i].LessThan(v) {
			return s.thresholds[i], true
		}
	}
	return Money{}, false
}

// MilestoneReport is the outcome of one milestone evaluation.
type MilestoneReport struct {
	NetWorth      Money
	NewlyAchieved []Milestone // ladder milestones crossed by this evaluation
	Achieved      []Milestone // every ladder milestone in the achieved set
	Next          *Milestone  // nil when all milestones are achieved
	Progress      Percent     // toward Next, clamped to [0, 100]
	AllAchieved   bool
}

// EvaluateMilestones marks every ladder threshold at or below the current
// net worth as achieved, mutating the set, and reports progress toward the
// lowest threshold still outstanding.
//
// Progress interpolates linearly between the highest achieved threshold
// strictly below the next milestone (or zero if none) and the next
// milestone. The zero-threshold "Debt Free" milestone is all-or-nothing:
// while net worth is negative, progress stays at 0%.
func EvaluateMilestones(netWorth Money, achieved *MilestoneSet) *MilestoneReport {
	report := &MilestoneReport{NetWorth: netWorth}

	for _, m := range milestoneLadder {
		if m.Threshold.LessThanOrEqual(netWorth) && achieved.Add(m.Threshold) {
			report.NewlyAchieved = append(report.NewlyAchieved, m)
		}
	}
	for _, m := range milestoneLadder {
		if achieved.Has(m.Threshold) {
			report.Achieved = append(report.Achieved, m)
		}
	}

	for _, m := range milestoneLadder {
		if !achieved.Has(m.Threshold) {
			next := m
			report.Next = &next
			break
		}
	}
	if report.Next == nil {
		report.AllAchieved = true
		report.Progress = 100
		return report
	}

	target := report.Next.Threshold
	if target.IsZero() {
		// Debt Free has no partial credit for reducing debt.
		if netWorth.GreaterThanOrEqual(M(0)) {
			report.Progress = 100
		}
		return report
	}

	base, ok := achieved.highestBelow(target)
	if !ok {
		base = M(0)
	}
	progress := Percent(100 * netWorth.Sub(base).Ratio(target.Sub(base)))
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	report.Progress = progress
	return report
}
