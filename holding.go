package prysm

import "slices"

// Holding is the aggregated position in one symbol.
type Holding struct {
	Symbol                    string   `json:"symbol"`
	SharesHeld                Quantity `json:"sharesHeld"`
	AvgCostBasis              Money    `json:"avgCostBasis"`
	CurrentPrice              Money    `json:"currentPrice"`
	UnrealizedGainLoss        Money    `json:"unrealizedGainLoss"`
	UnrealizedGainLossPercent Percent  `json:"unrealizedGainLossPercent"`
	CurrentValue              Money    `json:"currentValue"`
	Sector                    string   `json:"sector"`
}

// CostBasis returns the cost of the shares held at the average cost basis.
func (h Holding) CostBasis() Money { return h.AvgCostBasis.Mul(h.SharesHeld) }

// position accumulates the trades of one symbol.
type position struct {
	shares Quantity
	cost   Money // signed: sells reduce the cost at their own price
}

func (p *position) apply(t Trade) {
	p.shares = p.shares.Add(t.Shares)
	p.cost = p.cost.Add(t.Price.Mul(t.Shares))
}

// avgCost returns cost/shares. shares must be positive.
func (p position) avgCost() Money { return p.cost.Div(p.shares) }

// CalculateHoldings reduces trades into one holding per symbol still held,
// sorted by current value, largest first.
//
// Every trade contributes shares*price to the symbol cost, buys and sells
// alike, so the average cost basis of a partially sold position is
// (Σ shares*price)/Σ shares. A symbol whose net shares are zero or negative has
// no holding.
func CalculateHoldings(trades []Trade, lookup Lookup) []Holding {
	var symbols []string
	positions := make(map[string]*position)
	for _, t := range trades {
		p, ok := positions[t.Symbol]
		if !ok {
			p = &position{}
			positions[t.Symbol] = p
			symbols = append(symbols, t.Symbol)
		}
		p.apply(t)
	}

	holdings := make([]Holding, 0, len(symbols))
	for _, symbol := range symbols {
		p := positions[symbol]
		if !p.shares.IsPositive() {
			continue // no shares held
		}
		avg := p.avgCost()
		price := priceOr(lookup, symbol, avg)
		value := price.Mul(p.shares)
		cost := avg.Mul(p.shares)
		gain := value.Sub(cost)

		holdings = append(holdings, Holding{
			Symbol:                    symbol,
			SharesHeld:                p.shares,
			AvgCostBasis:              avg,
			CurrentPrice:              price,
			UnrealizedGainLoss:        gain,
			UnrealizedGainLossPercent: percentOf(gain, cost),
			CurrentValue:              value,
			Sector:                    sectorOf(lookup, symbol),
		})
	}

	slices.SortStableFunc(holdings, func(a, b Holding) int {
		return b.CurrentValue.Cmp(a.CurrentValue)
	})
	return holdings
}
