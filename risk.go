package prysm

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RiskMetrics are heuristic risk scores, roughly in [0, 100].
// They are not clamped.
type RiskMetrics struct {
	// Concentration is the Herfindahl index of the holding weights, times 100.
	// A single holding portfolio has a concentration of 100.
	Concentration float64 `json:"concentration"`
	// DiversificationScore is (1-herfindahl)*100, never negative.
	DiversificationScore float64 `json:"diversificationScore"`
	// VolatilityScore is the population standard deviation of the holding
	// gain/loss percentages.
	VolatilityScore float64 `json:"volatilityScore"`
}

// CalculateRisk computes the concentration, diversification and volatility
// scores of holdings. All scores are zero for an empty portfolio.
//
// Weights are current values over the total value. When the total value is
// zero the weights are undefined and both concentration and diversification
// are reported as zero.
func CalculateRisk(holdings []Holding) RiskMetrics {
	if len(holdings) == 0 {
		return RiskMetrics{}
	}

	var total float64
	values := make([]float64, len(holdings))
	percents := make([]float64, len(holdings))
	for i, h := range holdings {
		values[i] = h.CurrentValue.Float()
		percents[i] = float64(h.UnrealizedGainLossPercent)
		total += values[i]
	}

	var r RiskMetrics
	if total != 0 {
		var herfindahl float64
		for _, v := range values {
			w := v / total
			herfindahl += w * w
		}
		r.Concentration = herfindahl * 100
		r.DiversificationScore = math.Max(0, (1-herfindahl)*100)
	}
	// rounding can leave a tiny negative variance
	r.VolatilityScore = math.Sqrt(math.Max(0, stat.PopVariance(percents, nil)))
	return r
}
