package prysm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReconstructHistory(t *testing.T) {
	lookup := StaticLookup{"AAPL": {Price: M(185.5), Sector: "Technology"}}
	// given out of order, TSLA has no price and is valued at cost.
	trades := []Trade{
		trade(t, "TSLA", 1, 200, "2024-01-03"),
		trade(t, "AAPL", 10, 150, "2024-01-01"),
		trade(t, "AAPL", -10, 160, "2024-01-03"),
	}

	got := ReconstructHistory(trades, lookup, NewDate(2024, 1, 4))

	want := []HistoryPoint{
		{Date: NewDate(2024, 1, 1), Value: M(1855)},
		{Date: NewDate(2024, 1, 2), Value: M(1855)},
		{Date: NewDate(2024, 1, 3), Value: M(200)},
		{Date: NewDate(2024, 1, 4), Value: M(200)},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("ReconstructHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructHistory_ConstantPrice(t *testing.T) {
	lookup := StaticLookup{"AAPL": {Price: M(110)}}
	trades := []Trade{trade(t, "AAPL", 10, 100, "2024-01-01")}

	got := ReconstructHistory(trades, lookup, NewDate(2024, 1, 10))

	if len(got) != 10 {
		t.Fatalf("ReconstructHistory() returned %d points want 10", len(got))
	}
	for i, p := range got {
		if want := NewDate(2024, 1, 1+i); p.Date != want {
			t.Errorf("point %d Date = %v want %v", i, p.Date, want)
		}
		if want := M(1100); !p.Value.Equal(want) {
			t.Errorf("point %d Value = %v want %v", i, p.Value, want)
		}
	}
}

func TestReconstructHistory_SkipsEmptyDays(t *testing.T) {
	trades := []Trade{
		trade(t, "ABC", 1, 100, "2024-01-01"),
		trade(t, "ABC", -1, 110, "2024-01-02"),
		trade(t, "ABC", 2, 90, "2024-01-04"),
	}

	got := ReconstructHistory(trades, nil, NewDate(2024, 1, 5))

	want := []HistoryPoint{
		{Date: NewDate(2024, 1, 1), Value: M(100)},
		// the position was closed, the new one starts from its own cost
		{Date: NewDate(2024, 1, 4), Value: M(180)},
		{Date: NewDate(2024, 1, 5), Value: M(180)},
	}
	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("ReconstructHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructHistory_Empty(t *testing.T) {
	if got := ReconstructHistory(nil, DemoLookup(), NewDate(2024, 1, 1)); got == nil || len(got) != 0 {
		t.Errorf("ReconstructHistory(nil) = %v want an empty slice", got)
	}

	trades := []Trade{trade(t, "AAPL", 1, 100, "2024-02-01")}
	if got := ReconstructHistory(trades, DemoLookup(), NewDate(2024, 1, 1)); len(got) != 0 {
		t.Errorf("ReconstructHistory() before the first trade = %v want an empty slice", got)
	}
}

func TestReconstructHistory_DoesNotModifyTrades(t *testing.T) {
	trades := []Trade{
		trade(t, "B", 1, 100, "2024-01-02"),
		trade(t, "A", 1, 100, "2024-01-01"),
	}
	ReconstructHistory(trades, nil, NewDate(2024, 1, 2))
	if trades[0].Symbol != "B" {
		t.Errorf("ReconstructHistory() reordered its input")
	}
}
