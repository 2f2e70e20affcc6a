package networth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrMalformedDocument flags a data file that is unreadable or missing one
// of the required top-level keys. Callers on the read path recover from it
// by starting from an empty tracker.
var ErrMalformedDocument = errors.New("data file is not in the expected format")

// The persisted document schema. Dedicated local structs with tag
// annotations keep the wire format independent from the in-memory types.
type (
	jcategory struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	}
	jitem struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		CategoryID    string `json:"category_id"`
		Liquid        bool   `json:"liquid"`
		Type          string `json:"type"`
		TargetBalance *Money `json:"target_balance,omitempty"`
	}
	jbalance struct {
		ItemID  string `json:"item_id"`
		Balance Money  `json:"balance"`
	}
	jsnapshot struct {
		Date     Date       `json:"date"`
		Balances []jbalance `json:"balances"`
	}
	jgoal struct {
		TargetNetWorth Money `json:"target_net_worth"`
	}
	jdocument struct {
		Categories         []jcategory `json:"categories"`
		FinancialItems     []jitem     `json:"financial_items"`
		Snapshots          []jsnapshot `json:"snapshots"`
		AchievedMilestones []Money     `json:"achieved_milestones"`
		FinancialGoal      *jgoal      `json:"financial_goal,omitempty"`
	}
)

// requiredKeys are the top-level keys a document must carry.
// achieved_milestones and financial_goal are optional for backward
// compatibility with files written before those features existed.
var requiredKeys = []string{"categories", "financial_items", "snapshots"}

// DecodeTracker reads the single-document JSON data file.
//
// The top-level shape is validated first; a missing required key or a parse
// failure yields ErrMalformedDocument. Entity references are validated as
// they load: an item with an unknown category is kept (it reports as
// uncategorized), a balance with an unknown item is skipped, both with a
// warning. Duplicate snapshot dates keep the last occurrence.
func DecodeTracker(r io.Reader) (*Tracker, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read data file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", ErrMalformedDocument, key)
		}
	}

	var doc jdocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	t := NewTracker()
	for _, jc := range doc.Categories {
		t.categories = append(t.categories, Category{ID: jc.ID, Name: jc.Name, Keywords: jc.Keywords})
	}
	for _, ji := range doc.FinancialItems {
		typ, err := ParseItemType(ji.Type)
		if err != nil {
			log.Printf("item-type-default item=%q: %v", ji.Name, err)
			typ = Asset
		}
		if _, ok := t.Category(ji.CategoryID); !ok {
			log.Printf("dangling-category item=%q category=%q", ji.Name, ji.CategoryID)
		}
		t.items = append(t.items, FinancialItem{
			ID:            ji.ID,
			Name:          ji.Name,
			CategoryID:    ji.CategoryID,
			Liquid:        ji.Liquid,
			Type:          typ,
			TargetBalance: ji.TargetBalance,
		})
	}
	for _, js := range doc.Snapshots {
		s := Snapshot{Date: js.Date}
		for _, jb := range js.Balances {
			if _, ok := t.Item(jb.ItemID); !ok {
				log.Printf("skip-balance date=%s item=%q: unknown item", js.Date, jb.ItemID)
				continue
			}
			s.SetBalance(jb.ItemID, jb.Balance)
		}
		// Last write for a date wins.
		replaced := false
		for i := range t.snapshots {
			if t.snapshots[i].Date == s.Date {
				t.snapshots[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			t.snapshots = append(t.snapshots, s)
		}
	}
	t.sortSnapshots()

	t.achieved = NewMilestoneSet(doc.AchievedMilestones)
	if doc.FinancialGoal != nil {
		t.goal = &Goal{TargetNetWorth: doc.FinancialGoal.TargetNetWorth}
	}
	return t, nil
}

// EncodeTracker writes the tracker as a single indented JSON document,
// snapshots re-sorted descending by date.
func EncodeTracker(w io.Writer, t *Tracker) error {
	t.sortSnapshots()

	doc := jdocument{
		Categories:         []jcategory{},
		FinancialItems:     []jitem{},
		Snapshots:          []jsnapshot{},
		AchievedMilestones: []Money{},
	}
	doc.AchievedMilestones = append(doc.AchievedMilestones, t.achieved.Values()...)
	for _, c := range t.categories {
		doc.Categories = append(doc.Categories, jcategory{ID: c.ID, Name: c.Name, Keywords: c.Keywords})
	}
	for _, it := range t.items {
		doc.FinancialItems = append(doc.FinancialItems, jitem{
			ID:            it.ID,
			Name:          it.Name,
			CategoryID:    it.CategoryID,
			Liquid:        it.Liquid,
			Type:          it.Type.String(),
			TargetBalance: it.TargetBalance,
		})
	}
	for _, s := range t.snapshots {
		js := jsnapshot{Date: s.Date, Balances: []jbalance{}}
		for _, b := range s.Balances {
			js.Balances = append(js.Balances, jbalance{ItemID: b.ItemID, Balance: b.Amount})
		}
		doc.Snapshots = append(doc.Snapshots, js)
	}
	if t.goal != nil {
		doc.FinancialGoal = &jgoal{TargetNetWorth: t.goal.TargetNetWorth}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal tracker: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write tracker: %w", err)
	}
	return nil
}
