package prysm

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCSV(t *testing.T) {
	today := NewDate(2024, 6, 1)
	tests := []struct {
		name    string
		content string
		opts    []ParseOption
		want    []Trade
	}{
		{
			name:    "buys and sells",
			content: "symbol,shares,price,date\nAAPL,10,150,2024-01-15\ntsla,-2,200.5,2024-02-01\n",
			want: []Trade{
				{Symbol: "AAPL", Shares: Q(10), Price: M(150), Date: NewDate(2024, 1, 15)},
				{Symbol: "TSLA", Shares: Q(-2), Price: M(200.5), Date: NewDate(2024, 2, 1)},
			},
		},
		{
			name:    "header is case insensitive",
			content: "Symbol, Shares, Price, Date\nAAPL, 1.5, 150, 2024-1-5",
			want:    []Trade{{Symbol: "AAPL", Shares: Q(1.5), Price: M(150), Date: NewDate(2024, 1, 5)}},
		},
		{
			name:    "blank lines are skipped",
			content: "\n\nsymbol,shares,price,date\n\nAAPL,10,150,2024-01-15\n   \nMSFT,1,300,2024-01-16\n\n",
			want: []Trade{
				{Symbol: "AAPL", Shares: Q(10), Price: M(150), Date: NewDate(2024, 1, 15)},
				{Symbol: "MSFT", Shares: Q(1), Price: M(300), Date: NewDate(2024, 1, 16)},
			},
		},
		{
			name:    "quoted fields",
			content: "symbol,shares,price,date\n\"AAPL\",\"10\",\"150\",\"2024-01-15\"",
			want:    []Trade{{Symbol: "AAPL", Shares: Q(10), Price: M(150), Date: NewDate(2024, 1, 15)}},
		},
		{
			name:    "positional columns ignore header order",
			content: "date,symbol,shares,price\nAAPL,10,150,2024-01-15",
			want:    []Trade{{Symbol: "AAPL", Shares: Q(10), Price: M(150), Date: NewDate(2024, 1, 15)}},
		},
		{
			name:    "header columns",
			content: "date,symbol,price,shares,fees\n2024-01-15,aapl,150,10,1.5",
			opts:    []ParseOption{WithHeaderColumns()},
			want:    []Trade{{Symbol: "AAPL", Shares: Q(10), Price: M(150), Date: NewDate(2024, 1, 15)}},
		},
		{
			name:    "trade on the reference day",
			content: "symbol,shares,price,date\nAAPL,10,150,2024-06-01",
			want:    []Trade{{Symbol: "AAPL", Shares: Q(10), Price: M(150), Date: NewDate(2024, 6, 1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(tt.content, append([]ParseOption{WithToday(today)}, tt.opts...)...)
			if err != nil {
				t.Fatalf("ParseCSV() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpOpts...); diff != "" {
				t.Errorf("ParseCSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCSV_Errors(t *testing.T) {
	const header = "symbol,shares,price,date\n"
	tests := []struct {
		name    string
		content string
		opts    []ParseOption
		row     int
		column  string
		msg     string
	}{
		{name: "empty", content: "  \n\t", msg: "CSV file is empty"},
		{name: "bad header", content: "ticker,qty\nAAPL,10", row: 1, msg: "invalid CSV format"},
		{name: "missing column", content: "symbol,shares,price\nAAPL,10,150", row: 1, msg: "expected columns symbol, shares, price, date"},
		{name: "header only", content: header, msg: "no valid trades found in CSV file"},
		{name: "too few fields", content: header + "AAPL,10,150", row: 2, msg: "expected 4 columns, got 3"},
		{name: "too many fields", content: header + "AAPL,10,150,2024-01-15,x", row: 2, msg: "expected 4 columns, got 5"},
		{name: "empty symbol", content: header + " ,10,150,2024-01-15", row: 2, column: "symbol", msg: "symbol cannot be empty"},
		{name: "bad shares", content: header + "AAPL,ten,150,2024-01-15", row: 2, column: "shares", msg: `invalid shares value: "ten"`},
		{name: "trailing garbage shares", content: header + "AAPL,10abc,150,2024-01-15", row: 2, column: "shares", msg: "invalid shares value"},
		{name: "overflowing shares", content: header + "AAPL,1e400,100,2024-01-15", row: 2, column: "shares", msg: `invalid shares value: "1e400"`},
		{name: "huge exponent shares", content: header + "AAPL,1e20000000,100,2024-01-15", row: 2, column: "shares", msg: "invalid shares value"},
		{name: "overflowing price", content: header + "AAPL,10,1e400,2024-01-15", row: 2, column: "price", msg: "price must be positive"},
		{name: "long field is clipped", content: header + "AAPL," + strings.Repeat("9", 400) + ",100,2024-01-15", row: 2, column: "shares", msg: `invalid shares value: "` + strings.Repeat("9", 32) + `..."`},
		{name: "zero price", content: header + "AAPL,10,0,2024-01-15", row: 2, column: "price", msg: "price must be positive"},
		{name: "negative price", content: header + "AAPL,10,-1,2024-01-15", row: 2, column: "price", msg: "price must be positive"},
		{name: "bad date", content: header + "AAPL,10,150,01/15/2024", row: 2, column: "date", msg: "use YYYY-MM-DD format"},
		{name: "future date", content: header + "AAPL,10,150,2024-06-02", row: 2, column: "date", msg: "date cannot be in the future"},
		{name: "row numbers count blank lines", content: header + "AAPL,10,150,2024-01-15\n\nAAPL,x,150,2024-01-15", row: 4, column: "shares", msg: "invalid shares value"},
		{name: "first error wins", content: header + "AAPL,x,0,bad", row: 2, column: "shares", msg: "invalid shares value"},
		{name: "header columns width", content: "symbol,shares,price,date,fees\nAAPL,10,150,2024-01-15", opts: []ParseOption{WithHeaderColumns()}, row: 2, msg: "expected 5 columns, got 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(tt.content, append([]ParseOption{WithToday(NewDate(2024, 6, 1))}, tt.opts...)...)
			if err == nil {
				t.Fatalf("ParseCSV() expected an error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseCSV() error = %T %v, want a *ParseError", err, err)
			}
			if perr.Row != tt.row {
				t.Errorf("ParseError.Row = %d want %d (%v)", perr.Row, tt.row, err)
			}
			if perr.Column != tt.column {
				t.Errorf("ParseError.Column = %q want %q (%v)", perr.Column, tt.column, err)
			}
			if !strings.Contains(perr.Msg, tt.msg) {
				t.Errorf("ParseError.Msg = %q want it to contain %q", perr.Msg, tt.msg)
			}
			if perr.Code() != CodeCSVParse {
				t.Errorf("ParseError.Code() = %q want %q", perr.Code(), CodeCSVParse)
			}
		})
	}
}
