package networth

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Goal is the optional target net worth the user works toward.
type Goal struct {
	TargetNetWorth Money
}

// Tracker is the in-memory form of one data file: the categories, the
// financial items, the dated snapshots, the milestones already achieved and
// the optional goal.
//
// Snapshots are kept in descending date order, at most one per date.
type Tracker struct {
	categories []Category
	items      []FinancialItem
	snapshots  []Snapshot
	achieved   MilestoneSet
	goal       *Goal
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// --- categories ---

// Categories returns all categories in their stored order.
func (t *Tracker) Categories() []Category { return t.categories }

// Category returns the category with the given id, or false.
func (t *Tracker) Category(id string) (Category, bool) {
	for _, c := range t.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByName returns the category with the given name, compared
// case-insensitively.
func (t *Tracker) CategoryByName(name string) (Category, bool) {
	for _, c := range t.categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// AddCategory creates a new category with a fresh id. When keywords is nil
// the built-in keyword list for that name is used, if any. The name must not
// collide (case-insensitively) with an existing category.
func (t *Tracker) AddCategory(name string, keywords []string) (Category, error) {
	if name = strings.TrimSpace(name); name == "" {
		return Category{}, fmt.Errorf("category name cannot be empty")
	}
	if _, exists := t.CategoryByName(name); exists {
		return Category{}, fmt.Errorf("category %q already exists", name)
	}
	if keywords == nil {
		keywords = DefaultKeywords(name)
	}
	c := Category{
		ID:       NextID(t.categoryIDs(), CategoryIDPrefix),
		Name:     name,
		Keywords: keywords,
	}
	t.categories = append(t.categories, c)
	return c, nil
}

// Classifier returns a classifier over the tracker's categories, in their
// stored order. Categories added by the user take part like any other.
func (t *Tracker) Classifier() *Classifier { return NewClassifier(t.categories) }

func (t *Tracker) categoryIDs() []string {
	ids := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// --- items ---

// Items returns all financial items in their stored order.
func (t *Tracker) Items() []FinancialItem { return t.items }

// Item returns the financial item with the given id, or false.
func (t *Tracker) Item(id string) (FinancialItem, bool) {
	for _, it := range t.items {
		if it.ID == id {
			return it, true
		}
	}
	return FinancialItem{}, false
}

// ItemByName returns the financial item with the given name.
func (t *Tracker) ItemByName(name string) (FinancialItem, bool) {
	for _, it := range t.items {
		if it.Name == name {
			return it, true
		}
	}
	return FinancialItem{}, false
}

// AddItem creates a new financial item with a fresh id. The name must be
// unique among items, and categoryID must reference an existing category.
func (t *Tracker) AddItem(name, categoryID string, liquid bool, typ ItemType, target *Money) (FinancialItem, error) {
	if name = strings.TrimSpace(name); name == "" {
		return FinancialItem{}, fmt.Errorf("item name cannot be empty")
	}
	if _, exists := t.ItemByName(name); exists {
		return FinancialItem{}, fmt.Errorf("item %q already exists", name)
	}
	if _, ok := t.Category(categoryID); !ok {
		return FinancialItem{}, fmt.Errorf("unknown category id %q for item %q", categoryID, name)
	}
	it := FinancialItem{
		ID:            NextID(t.itemIDs(), ItemIDPrefix),
		Name:          name,
		CategoryID:    categoryID,
		Liquid:        liquid,
		Type:          typ,
		TargetBalance: target,
	}
	t.items = append(t.items, it)
	return it, nil
}

// UpdateItem replaces the stored item carrying the same id. The category
// reference is validated; the name must not collide with another item.
func (t *Tracker) UpdateItem(item FinancialItem) error {
	if _, ok := t.Category(item.CategoryID); !ok {
		return fmt.Errorf("unknown category id %q for item %q", item.CategoryID, item.Name)
	}
	if other, exists := t.ItemByName(item.Name); exists && other.ID != item.ID {
		return fmt.Errorf("item %q already exists", item.Name)
	}
	for i, it := range t.items {
		if it.ID == item.ID {
			t.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("unknown item id %q", item.ID)
}

// DeleteItem removes a financial item and cascades into every snapshot,
// dropping its balance entries.
func (t *Tracker) DeleteItem(id string) error {
	idx := -1
	for i, it := range t.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("unknown item id %q", id)
	}
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	for i := range t.snapshots {
		t.snapshots[i].removeItem(id)
	}
	return nil
}

func (t *Tracker) itemIDs() []string {
	ids := make([]string, 0, len(t.items))
	for _, it := range t.items {
		ids = append(ids, it.ID)
	}
	return ids
}

// --- snapshots ---

// Snapshots returns the snapshot history, most recent first.
func (t *Tracker) Snapshots() []Snapshot { return t.snapshots }

// Snapshot returns the snapshot recorded on the given date, or false.
func (t *Tracker) Snapshot(on Date) (*Snapshot, bool) {
	for i := range t.snapshots {
		if t.snapshots[i].Date == on {
			return &t.snapshots[i], true
		}
	}
	return nil, false
}

// Latest returns the most recent snapshot, or false when the history is empty.
func (t *Tracker) Latest() (*Snapshot, bool) {
	if len(t.snapshots) == 0 {
		return nil, false
	}
	return &t.snapshots[0], true
}

// RecordSnapshot stores the balances for a date. A snapshot already recorded
// on that date is replaced. Balances referencing an unknown item are skipped
// with a warning, not an error; duplicate entries for an item keep the last
// one.
func (t *Tracker) RecordSnapshot(on Date, balances []Balance) {
	s := Snapshot{Date: on}
	for _, b := range balances {
		if _, ok := t.Item(b.ItemID); !ok {
			log.Printf("skip-balance date=%s item=%q: unknown item", on, b.ItemID)
			continue
		}
		s.SetBalance(b.ItemID, b.Amount)
	}
	for i := range t.snapshots {
		if t.snapshots[i].Date == on {
			t.snapshots[i] = s
			return
		}
	}
	t.snapshots = append(t.snapshots, s)
	t.sortSnapshots()
}

// DeleteSnapshot removes the snapshot recorded on the given date, reporting
// whether one existed.
func (t *Tracker) DeleteSnapshot(on Date) bool {
	for i := range t.snapshots {
		if t.snapshots[i].Date == on {
			t.snapshots = append(t.snapshots[:i], t.snapshots[i+1:]...)
			return true
		}
	}
	return false
}

// sortSnapshots re-establishes the descending date order.
func (t *Tracker) sortSnapshots() {
	sort.SliceStable(t.snapshots, func(i, j int) bool {
		return t.snapshots[i].Date.After(t.snapshots[j].Date)
	})
}

// --- milestones and goal ---

// Achieved returns the set of milestone thresholds reached so far. The set
// only ever grows; the milestone tracker adds to it and nothing removes.
func (t *Tracker) Achieved() *MilestoneSet { return &t.achieved }

// Goal returns the financial goal, or false when none is set.
func (t *Tracker) Goal() (Goal, bool) {
	if t.goal == nil {
		return Goal{}, false
	}
	return *t.goal, true
}

// SetGoal sets or replaces the target net worth.
func (t *Tracker) SetGoal(target Money) { t.goal = &Goal{TargetNetWorth: target} }

// ClearGoal removes the goal.
func (t *Tracker) ClearGoal() { t.goal = nil }
