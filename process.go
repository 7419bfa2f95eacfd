package prysm

import "fmt"

// PortfolioData is the complete snapshot built from one set of trades.
//
// It is the unit persisted by [Repository] and consumed by the renderers:
// created once per upload and replaced wholesale by the next one.
type PortfolioData struct {
	Trades   []Trade          `json:"trades"`
	Holdings []Holding        `json:"holdings"`
	Metrics  PortfolioMetrics `json:"metrics"`
	Risk     RiskMetrics      `json:"risk"`
	History  []HistoryPoint   `json:"portfolioHistory"`
}

// ProcessOption configures [Process].
type ProcessOption func(*processConfig)

type processConfig struct {
	asOf Date
}

// AsOf sets the last day of the reconstructed history. It defaults to [Today].
func AsOf(day Date) ProcessOption {
	return func(c *processConfig) { c.asOf = day }
}

// Process builds the portfolio snapshot of trades: holdings, metrics, risk
// scores and value history.
//
// Trades are validated first; the first invalid trade aborts the call and no
// snapshot is returned.
func Process(trades []Trade, lookup Lookup, opts ...ProcessOption) (*PortfolioData, error) {
	cfg := processConfig{asOf: Today()}
	for _, opt := range opts {
		opt(&cfg)
	}

	valid := make([]Trade, len(trades))
	for i, t := range trades {
		v, err := ValidateTrade(t)
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i+1, err)
		}
		valid[i] = v
	}

	data := &PortfolioData{
		Trades:   valid,
		Holdings: CalculateHoldings(valid, lookup),
		History:  ReconstructHistory(valid, lookup, cfg.asOf),
	}
	// metrics point into the snapshot's own holdings.
	data.Metrics = CalculateMetrics(data.Holdings)
	data.Risk = CalculateRisk(data.Holdings)
	return data, nil
}
