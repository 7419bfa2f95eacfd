package prysm

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// column names required in the trades CSV header, in their positional order.
var tradeColumns = []string{"symbol", "shares", "price", "date"}

// ParseOption configures [ParseCSV].
type ParseOption func(*parser)

// WithToday sets the reference day used to reject trades in the future.
// It defaults to [Today].
func WithToday(today Date) ParseOption {
	return func(p *parser) { p.today = today }
}

// WithHeaderColumns maps row fields to columns using the header positions.
//
// By default the header is only checked for the presence of the four columns
// and rows are always read as "symbol,shares,price,date". With this option a
// header like "date,symbol,price,shares,fees" is honored, and rows must have
// as many fields as the header.
func WithHeaderColumns() ParseOption {
	return func(p *parser) { p.byHeader = true }
}

type parser struct {
	today    Date
	byHeader bool
	width    int            // expected number of fields per row
	index    map[string]int // field index of each trade column
}

// ParseCSV parses trades from CSV content.
//
// The first line is a header that must name the columns symbol, shares, price
// and date. Every other non-empty line is a trade. Parsing stops at the first
// invalid row: the result is either all the trades, in input order, or a
// [*ParseError] carrying the row number and the column at fault.
func ParseCSV(content string, opts ...ParseOption) ([]Trade, error) {
	p := parser{today: Today()}
	for _, opt := range opts {
		opt(&p)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, parseErrorf(0, "", "CSV file is empty")
	}

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1 // field count is checked per row
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, csvError(err)
	}
	if err := p.readHeader(header); err != nil {
		return nil, err
	}

	var trades []Trade
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		if isBlank(record) {
			continue
		}
		row, _ := r.FieldPos(0)
		trade, err := p.readRow(row, record)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}

	if len(trades) == 0 {
		return nil, parseErrorf(0, "", "no valid trades found in CSV file")
	}
	return trades, nil
}

// readHeader checks the header and resolves the field index of each column.
func (p *parser) readHeader(record []string) error {
	columns := make([]string, len(record))
	for i, col := range record {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
	}
	for _, col := range tradeColumns {
		if !slices.Contains(columns, col) {
			return parseErrorf(1, "", "invalid CSV format: expected columns %s, found %s",
				strings.Join(tradeColumns, ", "), strings.Join(columns, ", "))
		}
	}

	p.index = make(map[string]int, len(tradeColumns))
	if p.byHeader {
		p.width = len(columns)
		for _, col := range tradeColumns {
			p.index[col] = slices.Index(columns, col)
		}
		return nil
	}
	p.width = len(tradeColumns)
	for i, col := range tradeColumns {
		p.index[col] = i
	}
	return nil
}

// readRow validates a single data row. Checks run in column order and the first failure wins.
func (p *parser) readRow(row int, record []string) (Trade, error) {
	if len(record) != p.width {
		return Trade{}, parseErrorf(row, "", "expected %d columns, got %d", p.width, len(record))
	}
	field := func(col string) string { return strings.TrimSpace(record[p.index[col]]) }

	symbol := field("symbol")
	if symbol == "" {
		return Trade{}, parseErrorf(row, "symbol", "symbol cannot be empty")
	}

	sharesStr := field("shares")
	shares, ok := parseDecimal(sharesStr)
	if !ok {
		return Trade{}, parseErrorf(row, "shares", "invalid shares value: %q", clip(sharesStr))
	}

	priceStr := field("price")
	price, ok := parseDecimal(priceStr)
	if !ok || !price.IsPositive() {
		return Trade{}, parseErrorf(row, "price", "invalid price value: %q, price must be positive", clip(priceStr))
	}

	dateStr := field("date")
	on, err := ParseDate(dateStr)
	if err != nil {
		return Trade{}, parseErrorf(row, "date", "invalid date format: %q, use YYYY-MM-DD format", clip(dateStr))
	}
	if on.After(p.today) {
		return Trade{}, parseErrorf(row, "date", "date cannot be in the future: %q", clip(dateStr))
	}

	return Trade{
		Symbol: strings.ToUpper(symbol),
		Shares: Q(shares),
		Price:  M(price),
		Date:   on,
	}, nil
}

// maxFieldLen is the number of runes of a field quoted in error messages.
const maxFieldLen = 32

// clip shortens s to maxFieldLen runes for error messages.
func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxFieldLen {
		return s
	}
	return string([]rune(s)[:maxFieldLen]) + "..."
}

// isBlank reports whether a record comes from a whitespace only line.
func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

// csvError converts an encoding/csv error into a ParseError.
func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Row: perr.Line, Msg: perr.Err.Error(), Err: err}
	}
	return &ParseError{Msg: "failed to parse CSV: " + err.Error(), Err: err}
}
