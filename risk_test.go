package prysm

import (
	"math"
	"testing"
)

func TestCalculateRisk(t *testing.T) {
	tests := []struct {
		name     string
		holdings []Holding
		want     RiskMetrics
	}{
		{name: "empty"},
		{
			name:     "single holding",
			holdings: []Holding{{CurrentValue: M(500), UnrealizedGainLossPercent: 12}},
			want:     RiskMetrics{Concentration: 100},
		},
		{
			name: "two equal holdings",
			holdings: []Holding{
				{CurrentValue: M(100), UnrealizedGainLossPercent: 10},
				{CurrentValue: M(100), UnrealizedGainLossPercent: -10},
			},
			want: RiskMetrics{Concentration: 50, DiversificationScore: 50, VolatilityScore: 10},
		},
		{
			name: "uneven holdings",
			holdings: []Holding{
				{CurrentValue: M(300), UnrealizedGainLossPercent: 4},
				{CurrentValue: M(100), UnrealizedGainLossPercent: 2},
			},
			// weights .75 and .25
			want: RiskMetrics{Concentration: 62.5, DiversificationScore: 37.5, VolatilityScore: 1},
		},
		{
			name: "no value",
			holdings: []Holding{
				{UnrealizedGainLossPercent: 0},
				{UnrealizedGainLossPercent: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRisk(tt.holdings)
			check := func(name string, got, want float64) {
				if math.IsNaN(got) || math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v want %v", name, got, want)
				}
			}
			check("Concentration", got.Concentration, tt.want.Concentration)
			check("DiversificationScore", got.DiversificationScore, tt.want.DiversificationScore)
			check("VolatilityScore", got.VolatilityScore, tt.want.VolatilityScore)
		})
	}
}
