package prysm

import "slices"

// HistoryPoint is the portfolio value at the end of a day.
type HistoryPoint struct {
	Date  Date  `json:"date"`
	Value Money `json:"value"`
}

// ReconstructHistory replays trades day by day, from the earliest trade date
// through 'through' included, and returns the portfolio value of every day
// with a positive value. Days with nothing held are omitted.
//
// Prices come from lookup, a symbol with no price is valued at its running
// average cost. Because the lookup is static, the value only changes on trade
// days. The cost is one step per calendar day times the number of symbols held.
func ReconstructHistory(trades []Trade, lookup Lookup, through Date) []HistoryPoint {
	if len(trades) == 0 {
		return []HistoryPoint{}
	}

	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b Trade) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})

	history := make([]HistoryPoint, 0, max(0, sorted[0].Date.DaysUntil(through)+1))
	running := make(map[string]*position)
	var symbols []string // held symbols, in first trade order
	next := 0
	for day := range (Range{From: sorted[0].Date, To: through}).Days() {
		for ; next < len(sorted) && !sorted[next].Date.After(day); next++ {
			t := sorted[next]
			p, ok := running[t.Symbol]
			if !ok {
				p = &position{}
				running[t.Symbol] = p
				symbols = append(symbols, t.Symbol)
			}
			p.apply(t)
			if !p.shares.IsPositive() {
				delete(running, t.Symbol)
				symbols = slices.DeleteFunc(symbols, func(s string) bool { return s == t.Symbol })
			}
		}

		var value Money
		for _, symbol := range symbols {
			p := running[symbol]
			value = value.Add(priceOr(lookup, symbol, p.avgCost()).Mul(p.shares))
		}
		if value.IsPositive() {
			history = append(history, HistoryPoint{Date: day, Value: value})
		}
	}
	return history
}
