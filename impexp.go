package prysm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
)

// this file contains functions to handle the price table import/export format.
// It should remain human readable, single file and easy to edit by hand.

// jquote is the object read and written for a single symbol.
type jquote struct {
	Symbol string `json:"symbol"`
	Price  Money  `json:"price"`
	Sector string `json:"sector,omitempty"`
}

// DecodeLookup reads a price table from 'r'.
//
// The format is a JSONL file, where each line is a JSON object with the
// properties 'symbol', 'price' and optionally 'sector'. Blank lines are ignored.
func DecodeLookup(r io.Reader) (StaticLookup, error) {
	table := make(StaticLookup)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var jq jquote
		if err := json.Unmarshal([]byte(text), &jq); err != nil {
			return nil, fmt.Errorf("cannot parse price table line %d %q: %w", line, text, err)
		}
		symbol := strings.ToUpper(strings.TrimSpace(jq.Symbol))
		if symbol == "" {
			return nil, fmt.Errorf("price table line %d: symbol is required", line)
		}
		if _, exists := table[symbol]; exists {
			return nil, fmt.Errorf("price table line %d: symbol %q is already defined", line, symbol)
		}
		table[symbol] = Quote{Price: jq.Price, Sector: jq.Sector}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read price table: %w", err)
	}
	return table, nil
}

// EncodeLookup writes the price table to 'w' in the format read by [DecodeLookup], sorted by symbol.
func EncodeLookup(w io.Writer, table StaticLookup) error {
	symbols := make([]string, 0, len(table))
	for s := range table {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	for _, s := range symbols {
		q := table[s]
		data, err := json.Marshal(jquote{Symbol: s, Price: q.Price, Sector: q.Sector})
		if err != nil {
			return fmt.Errorf("cannot marshal quote %q: %w", s, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write price table: %w", err)
		}
	}
	return nil
}
