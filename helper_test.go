package prysm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpOpts compares the portfolio value types by value.
var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Percent) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Date) bool { return a == b }),
}

// trade returns a valid trade or fails the test.
func trade(t *testing.T, symbol string, shares, price float64, on string) Trade {
	t.Helper()
	tr, err := NewTrade(symbol, shares, price, on)
	if err != nil {
		t.Fatalf("NewTrade(%q, %v, %v, %q) unexpected error: %v", symbol, shares, price, on, err)
	}
	return tr
}
