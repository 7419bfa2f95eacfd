package prysm

import "testing"

func TestCalculateMetrics(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", CurrentValue: M(3710), UnrealizedGainLoss: M(510), UnrealizedGainLossPercent: 15.9375},
		{Symbol: "TSLA", CurrentValue: M(1204), UnrealizedGainLoss: M(204), UnrealizedGainLossPercent: 20.4},
		{Symbol: "XYZ", CurrentValue: M(30)},
	}

	m := CalculateMetrics(holdings)

	if want := M(4944); !m.TotalValue.Equal(want) {
		t.Errorf("TotalValue = %v want %v", m.TotalValue, want)
	}
	if want := M(714); !m.TotalGainLoss.Equal(want) {
		t.Errorf("TotalGainLoss = %v want %v", m.TotalGainLoss, want)
	}
	// 714 / (4944-714)
	if want := Percent(16.879432624); !m.TotalGainLossPercent.Equal(want) {
		t.Errorf("TotalGainLossPercent = %v want %v", m.TotalGainLossPercent, want)
	}
	if m.TopPerformer != &holdings[1] {
		t.Errorf("TopPerformer = %v want TSLA", m.TopPerformer)
	}
	if m.WorstPerformer != &holdings[2] {
		t.Errorf("WorstPerformer = %v want XYZ", m.WorstPerformer)
	}
	if m.UniqueSymbols != 3 {
		t.Errorf("UniqueSymbols = %d want 3", m.UniqueSymbols)
	}
}

func TestCalculateMetrics_Ties(t *testing.T) {
	holdings := []Holding{
		{Symbol: "A", CurrentValue: M(10), UnrealizedGainLossPercent: 5},
		{Symbol: "B", CurrentValue: M(10), UnrealizedGainLossPercent: 5},
	}
	m := CalculateMetrics(holdings)
	if m.TopPerformer.Symbol != "A" || m.WorstPerformer.Symbol != "A" {
		t.Errorf("performers = %s, %s want A, A", m.TopPerformer.Symbol, m.WorstPerformer.Symbol)
	}
}

func TestCalculateMetrics_Empty(t *testing.T) {
	m := CalculateMetrics(nil)
	if !m.TotalValue.IsZero() || !m.TotalGainLoss.IsZero() || m.TotalGainLossPercent != 0 {
		t.Errorf("CalculateMetrics(nil) totals = %v, %v, %v want zeros", m.TotalValue, m.TotalGainLoss, m.TotalGainLossPercent)
	}
	if m.TopPerformer != nil || m.WorstPerformer != nil {
		t.Errorf("CalculateMetrics(nil) performers = %v, %v want nil", m.TopPerformer, m.WorstPerformer)
	}
	if m.UniqueSymbols != 0 {
		t.Errorf("UniqueSymbols = %d want 0", m.UniqueSymbols)
	}
}
