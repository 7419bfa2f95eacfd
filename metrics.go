package prysm

// PortfolioMetrics summarizes a set of holdings.
type PortfolioMetrics struct {
	TotalValue           Money    `json:"totalValue"`
	TotalGainLoss        Money    `json:"totalGainLoss"`
	TotalGainLossPercent Percent  `json:"totalGainLossPercent"`
	TopPerformer         *Holding `json:"topPerformer"`
	WorstPerformer       *Holding `json:"worstPerformer"`
	UniqueSymbols        int      `json:"uniqueSymbols"`
}

// CalculateMetrics computes the portfolio totals and the best and worst performers.
//
// TotalGainLossPercent is the total gain over the aggregate cost basis
// (TotalValue-TotalGainLoss), it is 0 when the portfolio has no value.
// TopPerformer and WorstPerformer point into holdings, the first holding wins
// ties, and both are nil when holdings is empty.
func CalculateMetrics(holdings []Holding) PortfolioMetrics {
	var m PortfolioMetrics
	for i := range holdings {
		h := &holdings[i]
		m.TotalValue = m.TotalValue.Add(h.CurrentValue)
		m.TotalGainLoss = m.TotalGainLoss.Add(h.UnrealizedGainLoss)
		if m.TopPerformer == nil || h.UnrealizedGainLossPercent > m.TopPerformer.UnrealizedGainLossPercent {
			m.TopPerformer = h
		}
		if m.WorstPerformer == nil || h.UnrealizedGainLossPercent < m.WorstPerformer.UnrealizedGainLossPercent {
			m.WorstPerformer = h
		}
	}
	if m.TotalValue.IsPositive() {
		m.TotalGainLossPercent = percentOf(m.TotalGainLoss, m.TotalValue.Sub(m.TotalGainLoss))
	}
	m.UniqueSymbols = len(holdings)
	return m
}
