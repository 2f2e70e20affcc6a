package networth

import "strings"

// Category groups financial items and carries the ordered keyword list used
// to classify item names.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// categoryRule is one entry of the built-in classification table.
type categoryRule struct {
	name     string
	keywords []string
}

// defaultCategoryRules is the built-in, ordered classification table.
// Order matters: classification is first-match-wins, so "Mortgage" must be
// tried before "Loan" catches "property loan", etc. The table is UK-flavoured
// because the tracker reports in GBP.
var defaultCategoryRules = []categoryRule{
	{"Property", []string{"house", "property", "flat", "apartment", "land"}},
	{"Pension", []string{"pension", "sipp", "retirement"}},
	{"ISA", []string{"isa", "ssisa", "stocks and shares isa", "cash isa"}},
	{"Savings", []string{"savings", "premium bonds", "saver", "saving", "cash savings"}},
	{"Current Account", []string{"current", "checking", "bank balance"}},
	{"Investment", []string{"shares", "stocks", "investment", "fund", "gia", "brokerage"}},
	{"Mortgage", []string{"mortgage", "property loan"}},
	{"Loan", []string{"loan", "car finance", "personal loan", "debt"}},
	{"Credit Card", []string{"credit", "cc", "credit card balance"}},
	{"Business", []string{"business", "company assets", "business value"}},
	{"Other", []string{"miscellaneous", "other assets"}},
}

// liabilityCategoryNames are the category names whose items are liabilities.
// Used by the legacy migration to derive the item type.
var liabilityCategoryNames = []string{"Mortgage", "Loan", "Credit Card"}

// IsLiabilityCategory reports whether a category name is in the fixed
// liability list.
func IsLiabilityCategory(name string) bool {
	for _, l := range liabilityCategoryNames {
		if l == name {
			return true
		}
	}
	return false
}

// DefaultKeywords returns the built-in keyword list for a category name, or
// nil if the name is not one of the default categories.
func DefaultKeywords(name string) []string {
	for _, r := range defaultCategoryRules {
		if r.name == name {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}

// Classifier guesses a category for an item name by keyword matching.
//
// It is an explicit configuration object: its rules are the categories it
// was built from, in their stored order. Classification is deliberately
// first-match-wins over that order, not longest-match; overlapping keywords
// resolve to whichever category comes first.
type Classifier struct {
	categories []Category
}

// NewClassifier builds a classifier over the given categories, preserving
// their order. Custom categories merge in by appearing in the slice; there
// is no process-global state.
func NewClassifier(categories []Category) *Classifier {
	return &Classifier{categories: categories}
}

// Classify lower-cases the item name and returns the id of the first
// category, in category then keyword order, whose keyword is a substring of
// the name. The second return is false when nothing matches.
func (c *Classifier) Classify(name string) (categoryID string, ok bool) {
	lower := strings.ToLower(name)
	for _, cat := range c.categories {
		for _, kw := range cat.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return cat.ID, true
			}
		}
	}
	return "", false
}
