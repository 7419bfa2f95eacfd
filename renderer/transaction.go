package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/prysm"
)

// TradesMarkdown renders the list of trades, in the given order.
func TradesMarkdown(trades []prysm.Trade, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trades\n\n")
	if len(trades) == 0 {
		fmt.Fprintln(&b, "No trades.")
		return b.String()
	}
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			t.Date.String(),
			trade(t),
			t.Symbol,
			t.Shares.String(),
			opts.money(t.Price),
			opts.money(t.Price.Mul(t.Shares)),
		})
	}
	table(&b, "lllrrr", []string{"Date", "Type", "Symbol", "Shares", "Price", "Amount"}, rows)
	return b.String()
}

// trade names the kind of trade.
func trade(t prysm.Trade) string {
	if t.Shares.IsNegative() {
		return "Sell"
	}
	return "Buy"
}
