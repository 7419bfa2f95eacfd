package prysm

import "strings"

// UnknownSector is the sector of symbols the lookup does not know.
const UnknownSector = "Unknown"

// Lookup provides the current price and the sector of a symbol.
//
// A missing entry is a valid answer: the price falls back to the average cost
// basis and the sector to [UnknownSector].
type Lookup interface {
	Price(symbol string) (Money, bool)
	Sector(symbol string) (string, bool)
}

// Quote is the static market information known for one symbol.
type Quote struct {
	Price  Money
	Sector string
}

// StaticLookup is a Lookup backed by a table indexed by upper case symbol.
type StaticLookup map[string]Quote

// Price implements Lookup. Zero or negative prices are treated as unknown.
func (s StaticLookup) Price(symbol string) (Money, bool) {
	q, ok := s[strings.ToUpper(symbol)]
	if !ok || !q.Price.IsPositive() {
		return Money{}, false
	}
	return q.Price, true
}

// Sector implements Lookup.
func (s StaticLookup) Sector(symbol string) (string, bool) {
	q, ok := s[strings.ToUpper(symbol)]
	if !ok || q.Sector == "" {
		return "", false
	}
	return q.Sector, true
}

// DemoLookup returns the demonstration price table.
func DemoLookup() StaticLookup {
	return StaticLookup{
		"AAPL":  {Price: M(185.5), Sector: "Technology"},
		"TSLA":  {Price: M(240.8), Sector: "Automotive"},
		"GOOGL": {Price: M(142.3), Sector: "Technology"},
		"MSFT":  {Price: M(378.9), Sector: "Technology"},
		"AMZN":  {Price: M(145.2), Sector: "E-commerce"},
		"NVDA":  {Price: M(875.4), Sector: "Technology"},
		"META":  {Price: M(485.6), Sector: "Technology"},
		"NFLX":  {Price: M(445.3), Sector: "Entertainment"},
		"AMD":   {Price: M(142.8), Sector: "Technology"},
		"INTC":  {Price: M(43.2), Sector: "Technology"},
	}
}

// priceOr returns the lookup price of symbol or fallback.
func priceOr(lookup Lookup, symbol string, fallback Money) Money {
	if lookup == nil {
		return fallback
	}
	if p, ok := lookup.Price(symbol); ok {
		return p
	}
	return fallback
}

// sectorOf returns the lookup sector of symbol or UnknownSector.
func sectorOf(lookup Lookup, symbol string) string {
	if lookup == nil {
		return UnknownSector
	}
	if s, ok := lookup.Sector(symbol); ok {
		return s
	}
	return UnknownSector
}
