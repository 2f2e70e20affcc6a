package networth

// Balance is one item's recorded balance within a snapshot.
type Balance struct {
	ItemID string
	Amount Money
}

// Snapshot is a dated set of balances for the tracked financial items.
// Each item appears at most once.
type Snapshot struct {
	Date     Date
	Balances []Balance
}

// NetWorth returns the sum of all balances in the snapshot. No sign
// convention is applied: positive balances contribute positively, negative
// balances negatively, whatever the owning item's type says.
func (s *Snapshot) NetWorth() Money {
	total := M(0)
	for _, b := range s.Balances {
		total = total.Add(b.Amount)
	}
	return total
}

// Balance returns the recorded balance for an item, if any.
func (s *Snapshot) Balance(itemID string) (Money, bool) {
	for _, b := range s.Balances {
		if b.ItemID == itemID {
			return b.Amount, true
		}
	}
	return Money{}, false
}

// SetBalance records a balance for an item, replacing any previous entry for
// the same item.
func (s *Snapshot) SetBalance(itemID string, amount Money) {
	for i, b := range s.Balances {
		if b.ItemID == itemID {
			s.Balances[i].Amount = amount
			return
		}
	}
	s.Balances = append(s.Balances, Balance{ItemID: itemID, Amount: amount})
}

// removeItem drops the balance entry for an item, if present.
func (s *Snapshot) removeItem(itemID string) {
	out := s.Balances[:0]
	for _, b := range s.Balances {
		if b.ItemID != itemID {
			out = append(out, b)
		}
	}
	s.Balances = out
}
