package networth

// GBP is a helper for tests to create money from a constant.
func GBP(v float64) Money { return M(v) }

// testTracker builds a tracker with two categories and three items, ready
// for recording snapshots in tests.
func testTracker() *Tracker {
	t := NewTracker()
	savings, _ := t.AddCategory("Savings", nil)
	loans, _ := t.AddCategory("Loan", nil)
	t.AddItem("Monzo Savings", savings.ID, true, Asset, nil)
	t.AddItem("House Deposit Fund", savings.ID, false, Asset, nil)
	t.AddItem("Car Loan", loans.ID, false, Liability, nil)
	return t
}

// record is a shorthand to record a snapshot from item names.
func record(t *Tracker, on Date, balances map[string]float64) {
	var bs []Balance
	for name, v := range balances {
		item, ok := t.ItemByName(name)
		if !ok {
			panic("unknown test item " + name)
		}
		bs = append(bs, Balance{ItemID: item.ID, Amount: GBP(v)})
	}
	t.RecordSnapshot(on, bs)
}
