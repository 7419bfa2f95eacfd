package prysm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculateHoldings(t *testing.T) {
	trades := []Trade{
		trade(t, "AAPL", 10, 150, "2024-01-10"),
		trade(t, "TSLA", 5, 200, "2024-01-11"),
		trade(t, "AAPL", 10, 170, "2024-01-12"),
		trade(t, "XYZ", 3, 10, "2024-01-13"),
		trade(t, "MSFT", 2, 300, "2024-01-14"),
		trade(t, "MSFT", -2, 310, "2024-01-15"),
	}

	got := CalculateHoldings(trades, DemoLookup())

	want := []Holding{
		{
			Symbol:                    "AAPL",
			SharesHeld:                Q(20),
			AvgCostBasis:              M(160),
			CurrentPrice:              M(185.5),
			UnrealizedGainLoss:        M(510),
			UnrealizedGainLossPercent: 15.9375,
			CurrentValue:              M(3710),
			Sector:                    "Technology",
		},
		{
			Symbol:                    "TSLA",
			SharesHeld:                Q(5),
			AvgCostBasis:              M(200),
			CurrentPrice:              M(240.8),
			UnrealizedGainLoss:        M(204),
			UnrealizedGainLossPercent: 20.4,
			CurrentValue:              M(1204),
			Sector:                    "Automotive",
		},
		{
			// unknown symbols are valued at cost
			Symbol:        "XYZ",
			SharesHeld:    Q(3),
			AvgCostBasis:  M(10),
			CurrentPrice:  M(10),
			CurrentValue:  M(30),
			Sector:        UnknownSector,
		},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("CalculateHoldings() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateHoldings_PartialSell(t *testing.T) {
	trades := []Trade{
		trade(t, "ABC", 10, 100, "2024-01-10"),
		trade(t, "ABC", -5, 120, "2024-01-11"),
	}
	got := CalculateHoldings(trades, nil)
	if len(got) != 1 {
		t.Fatalf("CalculateHoldings() returned %d holdings want 1", len(got))
	}
	h := got[0]
	// the sale reduces the cost at its own price: (1000-600)/5
	if want := M(80); !h.AvgCostBasis.Equal(want) {
		t.Errorf("AvgCostBasis = %v want %v", h.AvgCostBasis, want)
	}
	if want := Q(5); !h.SharesHeld.Equal(want) {
		t.Errorf("SharesHeld = %v want %v", h.SharesHeld, want)
	}
	if want := M(400); !h.CostBasis().Equal(want) {
		t.Errorf("CostBasis() = %v want %v", h.CostBasis(), want)
	}
	if !h.UnrealizedGainLoss.IsZero() {
		t.Errorf("UnrealizedGainLoss = %v want 0", h.UnrealizedGainLoss)
	}
}

func TestCalculateHoldings_SellAtHigherPrice(t *testing.T) {
	trades := []Trade{
		trade(t, "AAPL", 10, 100, "2024-01-01"),
		trade(t, "AAPL", -3, 150, "2024-01-02"),
	}
	got := CalculateHoldings(trades, nil)
	if len(got) != 1 {
		t.Fatalf("CalculateHoldings() returned %d holdings want 1", len(got))
	}
	h := got[0]
	if want := Q(7); !h.SharesHeld.Equal(want) {
		t.Errorf("SharesHeld = %v want %v", h.SharesHeld, want)
	}
	// (1000-450)/7
	if want := M(78.57); !h.AvgCostBasis.Round(2).Equal(want) {
		t.Errorf("AvgCostBasis = %v want about %v", h.AvgCostBasis, want)
	}
}

func TestCalculateHoldings_Empty(t *testing.T) {
	for name, trades := range map[string][]Trade{
		"nil":      nil,
		"sold out": {trade(t, "AAPL", 1, 10, "2024-01-01"), trade(t, "AAPL", -1, 12, "2024-01-02")},
		"short":    {trade(t, "AAPL", -3, 10, "2024-01-01")},
	} {
		t.Run(name, func(t *testing.T) {
			got := CalculateHoldings(trades, DemoLookup())
			if got == nil || len(got) != 0 {
				t.Errorf("CalculateHoldings() = %v want an empty slice", got)
			}
		})
	}
}

func TestCalculateHoldings_TiesKeepFirstSeenOrder(t *testing.T) {
	trades := []Trade{
		trade(t, "BBB", 1, 100, "2024-01-01"),
		trade(t, "AAA", 1, 100, "2024-01-01"),
		trade(t, "CCC", 2, 100, "2024-01-01"),
	}
	got := CalculateHoldings(trades, nil)
	var symbols []string
	for _, h := range got {
		symbols = append(symbols, h.Symbol)
	}
	if diff := cmp.Diff([]string{"CCC", "BBB", "AAA"}, symbols); diff != "" {
		t.Errorf("CalculateHoldings() order mismatch (-want +got):\n%s", diff)
	}
}
