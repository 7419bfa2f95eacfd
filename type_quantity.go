package prysm

import (
	"math"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// maxExponent bounds the decimal exponent of a value converted to float64.
const maxExponent = 308

// parseDecimal parses a finite decimal number, like "12", "-3.5" or "1e3".
func parseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !isFiniteDecimal(d) {
		return decimal.Zero, false
	}
	return d, true
}

// isFiniteDecimal reports whether d converts to a finite float64.
// Out of range exponents are rejected before any conversion.
func isFiniteDecimal(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := int64(d.Exponent())
	if exp > maxExponent || exp < -maxExponent {
		return false
	}
	digits := int64(float64(d.Coefficient().BitLen()) * math.Log10(2))
	if exp+digits > maxExponent+1 {
		return false
	}
	f := d.InexactFloat64()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Quantity is a signed number of shares. It may be fractional.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the quantity for value.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) String() string              { return q.value.String() }

// Float returns the nearest float64 value.
func (q Quantity) Float() float64 { return q.value.InexactFloat64() }

// isFinite reports whether the quantity can be represented as a finite float64.
func (q Quantity) isFinite() bool { return isFiniteDecimal(q.value) }

// MarshalJSON writes the quantity as a json number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}

// UnmarshalJSON reads a quantity from a json number or a quoted number.
func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
