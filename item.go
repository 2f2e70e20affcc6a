package networth

import "fmt"

// ItemType classifies a financial item as an asset or a liability.
//
// The type is informational: the sign of a recorded balance alone decides
// whether it contributes positively or negatively to net worth.
type ItemType int

const (
	Asset ItemType = iota
	Liability
)

func (t ItemType) String() string {
	switch t {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	default:
		return "unknown"
	}
}

// ParseItemType parses a string into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "asset":
		return Asset, nil
	case "liability":
		return Liability, nil
	default:
		return 0, fmt.Errorf("unknown item type: %q", s)
	}
}

// FinancialItem is a named asset or liability tracked over time.
type FinancialItem struct {
	ID         string
	Name       string
	CategoryID string
	Liquid     bool
	Type       ItemType
	// TargetBalance is the optional balance the user aims for on this item;
	// nil when no target is set.
	TargetBalance *Money
}
