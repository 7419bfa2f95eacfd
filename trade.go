package prysm

import (
	"math"
	"strings"
)

// Trade is one executed transaction.
//
// Positive shares are a buy, negative shares a sell. Trades returned by
// [ParseCSV], [NewTrade] or [ValidateTrade] are valid.
type Trade struct {
	Symbol string   `json:"symbol"`
	Shares Quantity `json:"shares"`
	Price  Money    `json:"price"`
	Date   Date     `json:"date"`
}

// NewTrade creates a validated trade from plain values.
func NewTrade(symbol string, shares, price float64, on string) (Trade, error) {
	if math.IsNaN(shares) || math.IsInf(shares, 0) {
		return Trade{}, &ValidationError{Field: "shares", Value: shares, Msg: "shares must be a valid number"}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return Trade{}, &ValidationError{Field: "price", Value: price, Msg: "price must be a positive number"}
	}
	day, err := ParseDate(on)
	if err != nil {
		return Trade{}, &ValidationError{Field: "date", Value: on, Msg: "date must be a valid date string"}
	}
	return ValidateTrade(Trade{Symbol: symbol, Shares: Q(shares), Price: M(price), Date: day})
}

// ValidateTrade checks a trade built outside the CSV path and returns a copy
// with its symbol normalized to upper case.
func ValidateTrade(t Trade) (Trade, error) {
	symbol := strings.TrimSpace(t.Symbol)
	if symbol == "" {
		return Trade{}, &ValidationError{Field: "symbol", Value: t.Symbol, Msg: "symbol is required"}
	}
	if !t.Shares.isFinite() {
		return Trade{}, &ValidationError{Field: "shares", Value: t.Shares, Msg: "shares must be a valid number"}
	}
	if !t.Price.isFinite() || !t.Price.IsPositive() {
		return Trade{}, &ValidationError{Field: "price", Value: t.Price, Msg: "price must be a positive number"}
	}
	if t.Date.IsZero() {
		return Trade{}, &ValidationError{Field: "date", Value: t.Date, Msg: "date must be a valid date"}
	}
	t.Symbol = strings.ToUpper(symbol)
	return t, nil
}
