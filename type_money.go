package networth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency every balance is tracked and displayed in.
// The tracker is single-currency: balances are recorded as plain amounts and
// formatted with this currency's symbol.
const ReportingCurrency = "GBP"

// Money represents a monetary value with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}

// currency returns the reporting currency details, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, ReportingCurrency).Currency()
}

// String returns the amount formatted in the reporting currency, e.g. "£1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the formatted amount with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }

// binary operators.
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }
func (m Money) DivInt(n int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// Ratio returns m/n as a plain float, for percentage computations.
// Callers must check n for zero first.
func (m Money) Ratio(n Money) float64 { return m.value.Div(n.value).InexactFloat64() }

// AsFloat returns the amount as a float64 for display-only computations.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// DecimalString returns the bare decimal amount without currency formatting,
// e.g. "1234.56". This is the form used in CSV exports and JSON.
func (m Money) DecimalString() string { return m.value.String() }

// MarshalJSON writes the amount as a plain JSON number, matching the data
// file schema where balances are numbers.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	m.value = v
	return nil
}
