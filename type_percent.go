package prysm

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage: 12.5 means 12.5%.
type Percent float64

// percentOf returns part/whole*100, or 0 when whole is zero.
func percentOf(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(part.ratio(whole).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
