package networth

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file holds the one-way migration from the legacy flat data format to
// the normalized tracker document.
//
// The legacy file is a JSON list of dated records:
//
//	[ { "date": "YYYY-MM-DD",
//	    "assets": [ {"name": ..., "liquid": ..., "balance": ..., "category": ...} ] } ]
//
// Field mapping:
//
//	legacy asset.name     -> FinancialItem.Name   (one item per distinct name)
//	legacy asset.category -> Category.Name        (one category per distinct name,
//	                         keywords seeded from the built-in table)
//	legacy asset.liquid   -> FinancialItem.Liquid (first occurrence wins)
//	legacy asset.category -> FinancialItem.Type   ("liability" when the category
//	                         is Mortgage, Loan or Credit Card, else "asset")
//	legacy record         -> Snapshot             (balances keyed by the new item ids)
//
// Legacy files are loosely shaped, so individual fields are pulled out with
// jsonpath lookups; a record or asset entry missing a required field is
// skipped with a warning, never fatal.

// MigrateLegacy converts a legacy flat-format stream into a normalized
// tracker. It only errors when the stream is not a JSON list at all.
func MigrateLegacy(r io.Reader) (*Tracker, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse legacy file: %w", err)
	}
	records, ok := jobj.([]any)
	if !ok {
		return nil, fmt.Errorf("legacy file is not a list of dated records, got %T", jobj)
	}

	t := NewTracker()

	// Pass 1: discover distinct category names and item definitions.
	type itemDetails struct {
		category string
		liquid   bool
	}
	// Category names are folded case-insensitively, matching AddCategory's
	// collision rule; the first spelling encountered wins.
	categoryNames := make(map[string]string)
	items := make(map[string]itemDetails)
	for _, record := range records {
		assets, _ := jpList(record, "$.assets")
		for _, asset := range assets {
			name, okName := jpString(asset, "$.name")
			category, okCat := jpString(asset, "$.category")
			if !okName || !okCat || name == "" || category == "" {
				log.Printf("migrate-skip-asset: missing name or category in %v", asset)
				continue
			}
			if _, seen := categoryNames[strings.ToLower(category)]; !seen {
				categoryNames[strings.ToLower(category)] = category
			}
			if _, seen := items[name]; !seen {
				liquid, _ := jpBool(asset, "$.liquid")
				items[name] = itemDetails{category: category, liquid: liquid}
			}
		}
	}

	// Pass 2: create categories and items in sorted name order, so generated
	// ids are deterministic.
	for _, key := range sortedKeys(categoryNames) {
		name := categoryNames[key]
		keywords := DefaultKeywords(name)
		if keywords == nil {
			keywords = []string{}
		}
		if _, err := t.AddCategory(name, keywords); err != nil {
			return nil, fmt.Errorf("migrating category %q: %w", name, err)
		}
	}
	itemNames := make([]string, 0, len(items))
	for name := range items {
		itemNames = append(itemNames, name)
	}
	sort.Strings(itemNames)
	for _, name := range itemNames {
		details := items[name]
		cat, _ := t.CategoryByName(details.category)
		typ := Asset
		if IsLiabilityCategory(cat.Name) {
			typ = Liability
		}
		if _, err := t.AddItem(name, cat.ID, details.liquid, typ, nil); err != nil {
			return nil, fmt.Errorf("migrating item %q: %w", name, err)
		}
	}

	// Pass 3: one snapshot per legacy record, balances rewired to item ids.
	for _, record := range records {
		dateStr, ok := jpString(record, "$.date")
		if !ok || dateStr == "" {
			log.Printf("migrate-skip-record: missing date in %v", record)
			continue
		}
		on, err := ParseDate(dateStr)
		if err != nil {
			log.Printf("migrate-skip-record: %v", err)
			continue
		}
		var balances []Balance
		assets, _ := jpList(record, "$.assets")
		for _, asset := range assets {
			name, okName := jpString(asset, "$.name")
			balance, okBal := jpFloat(asset, "$.balance")
			if !okName || !okBal {
				log.Printf("migrate-skip-balance date=%s: missing name or balance in %v", on, asset)
				continue
			}
			item, ok := t.ItemByName(name)
			if !ok {
				// Only reachable for entries pass 1 already rejected.
				continue
			}
			balances = append(balances, Balance{ItemID: item.ID, Amount: M(balance)})
		}
		t.RecordSnapshot(on, balances)
	}

	return t, nil
}

func sortedKeys(set map[string]string) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonpath lookup helpers. jsonpath is never clear about whether it returns
// a list of one answer or a single answer, so each helper unwraps a
// single-element list before the type assertion.

func jpScalar(obj any, path string) (any, bool) {
	jval, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, false
	}
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, true
}

func jpString(obj any, path string) (string, bool) {
	jval, ok := jpScalar(obj, path)
	if !ok {
		return "", false
	}
	s, ok := jval.(string)
	return s, ok
}

func jpFloat(obj any, path string) (float64, bool) {
	jval, ok := jpScalar(obj, path)
	if !ok {
		return 0, false
	}
	f, ok := jval.(float64)
	return f, ok
}

func jpBool(obj any, path string) (bool, bool) {
	jval, ok := jpScalar(obj, path)
	if !ok {
		return false, false
	}
	b, ok := jval.(bool)
	return b, ok
}

func jpList(obj any, path string) ([]any, bool) {
	jval, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, false
	}
	l, ok := jval.([]any)
	return l, ok
}
