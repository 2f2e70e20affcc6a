package networth

import (
	"testing"
)

func TestEvaluateMilestones_FirstEvaluation(t *testing.T) {
	achieved := NewMilestoneSet(nil)
	report := EvaluateMilestones(GBP(15_000), &achieved)

	wantNew := []Money{M(0), M(1_000), M(5_000), M(10_000)}
	if got := len(report.NewlyAchieved); got != len(wantNew) {
		t.Fatalf("len(NewlyAchieved) = %d, want %d", got, len(wantNew))
	}
	for i, want := range wantNew {
		if got := report.NewlyAchieved[i].Threshold; !got.Equal(want) {
			t.Errorf("NewlyAchieved[%d] = %v, want %v", i, got, want)
		}
	}

	if report.Next == nil {
		t.Fatal("Next = nil")
	}
	if got, want := report.Next.Threshold, M(25_000); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
	// £15,000 sits a third of the way from £10k to £25k.
	if got, want := report.Progress, Percent(100.0/3.0); !got.Equal(want) {
		t.Errorf("Progress = %v, want %v", got, want)
	}
	if report.AllAchieved {
		t.Error("AllAchieved = true")
	}
}

func TestEvaluateMilestones_AchievedSetIsMonotonic(t *testing.T) {
	achieved := NewMilestoneSet(nil)
	EvaluateMilestones(GBP(15_000), &achieved)
	before := achieved.Len()

	// Net worth drops below previously achieved thresholds. Nothing is
	// newly achieved and nothing is lost.
	report := EvaluateMilestones(GBP(8_000), &achieved)
	if len(report.NewlyAchieved) != 0 {
		t.Errorf("NewlyAchieved = %v, want none on a drop", report.NewlyAchieved)
	}
	if achieved.Len() != before {
		t.Errorf("achieved set size changed from %d to %d", before, achieved.Len())
	}
	if !achieved.Has(M(10_000)) {
		t.Error("£10k milestone lost after net worth dropped")
	}
	// Next stays the lowest unachieved threshold even though net worth is
	// below an achieved one.
	if got, want := report.Next.Threshold, M(25_000); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestEvaluateMilestones_NegativeNetWorth(t *testing.T) {
	achieved := NewMilestoneSet(nil)
	report := EvaluateMilestones(GBP(-2_500), &achieved)

	if len(report.NewlyAchieved) != 0 {
		t.Errorf("NewlyAchieved = %v, want none", report.NewlyAchieved)
	}
	if report.Next == nil || !report.Next.Threshold.IsZero() {
		t.Fatalf("Next = %v, want the Debt Free milestone", report.Next)
	}
	if report.Next.DisplayName != "Debt Free" {
		t.Errorf("Next.DisplayName = %q, want %q", report.Next.DisplayName, "Debt Free")
	}
	// No partial credit toward Debt Free.
	if report.Progress != 0 {
		t.Errorf("Progress = %v, want 0 while in debt", report.Progress)
	}
}

func TestEvaluateMilestones_ExactThreshold(t *testing.T) {
	achieved := NewMilestoneSet(nil)
	report := EvaluateMilestones(GBP(25_000), &achieved)

	if !achieved.Has(M(25_000)) {
		t.Error("an exact hit must achieve the threshold")
	}
	if got, want := report.Next.Threshold, M(50_000); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
	if report.Progress != 0 {
		t.Errorf("Progress = %v, want 0 just past a threshold", report.Progress)
	}
}

func TestEvaluateMilestones_AllAchieved(t *testing.T) {
	achieved := NewMilestoneSet(nil)
	report := EvaluateMilestones(GBP(1_500_000), &achieved)

	if !report.AllAchieved {
		t.Fatal("AllAchieved = false above the top of the ladder")
	}
	if report.Next != nil {
		t.Errorf("Next = %v, want nil", report.Next)
	}
	if report.Progress != 100 {
		t.Errorf("Progress = %v, want 100", report.Progress)
	}
	if got, want := len(report.Achieved), len(Milestones()); got != want {
		t.Errorf("len(Achieved) = %d, want the whole ladder (%d)", got, want)
	}
}

func TestMilestoneSet_AddAndValues(t *testing.T) {
	s := NewMilestoneSet([]Money{M(10_000), M(0), M(10_000), M(1_000)})
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
	want := []Money{M(0), M(1_000), M(10_000)}
	for i, v := range s.Values() {
		if !v.Equal(want[i]) {
			t.Errorf("Values[%d] = %v, want %v", i, v, want[i])
		}
	}
	if s.Add(M(1_000)) {
		t.Error("Add reported an existing value as new")
	}
	if !s.Add(M(5_000)) {
		t.Error("Add reported a new value as existing")
	}
}

func TestMilestoneLadderAscending(t *testing.T) {
	ladder := Milestones()
	for i := 1; i < len(ladder); i++ {
		if !ladder[i-1].Threshold.LessThan(ladder[i].Threshold) {
			t.Fatalf("ladder not ascending at %d: %v then %v", i, ladder[i-1].Threshold, ladder[i].Threshold)
		}
	}
}
