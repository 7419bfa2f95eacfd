package prysm

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value: a price per share, a cost or a market value.
//
// Amounts carry no currency: the whole portfolio is valued in a single
// currency that is only needed to [Money.Format] them.
type Money struct {
	value decimal.Decimal
}

// M returns the monetary amount for value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Cmp(n Money) int          { return m.value.Cmp(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money     { return Money{value: m.value.Div(q.value)} }
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places)} }
func (m Money) String() string           { return m.value.String() }

// Float returns the nearest float64 value.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// isFinite reports whether the amount can be represented as a finite float64.
func (m Money) isFinite() bool { return isFiniteDecimal(m.value) }

// ratio returns m/n. n must not be zero.
func (m Money) ratio(n Money) decimal.Decimal { return m.value.Div(n.value) }

// Format returns the amount formatted in the given currency, e.g. "$1,234.50".
// Unknown currencies are formatted with the amount and the code.
func (m Money) Format(currency string) string {
	cur := *money.New(0, currency).Currency()
	rounded := m.value.Round(int32(cur.Fraction))
	return cur.Formatter().Format(rounded.Shift(int32(cur.Fraction)).IntPart())
}

// SignedFormat is like Format but always prints the sign. Zero is printed as "-".
func (m Money) SignedFormat(currency string) string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.Format(currency)
	default:
		return m.Format(currency)
	}
}

// MarshalJSON writes the amount as a json number with all its digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads an amount from a json number or a quoted number.
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
