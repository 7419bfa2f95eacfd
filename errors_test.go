package prysm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		err  Coder
		msg  string
		code string
	}{
		{&ParseError{Row: 3, Column: "price", Msg: "bad"}, "row 3, column price: bad", CodeCSVParse},
		{&ParseError{Row: 3, Msg: "bad"}, "row 3: bad", CodeCSVParse},
		{&ParseError{Msg: "CSV file is empty"}, "CSV file is empty", CodeCSVParse},
		{&StorageError{Op: OpLoad, Msg: "corrupted data in storage"}, "load portfolio data: corrupted data in storage", CodeStorage},
		{&StorageError{Op: OpSave, Msg: "cannot write", Err: errors.New("disk full")}, "save portfolio data: cannot write: disk full", CodeStorage},
		{&ValidationError{Field: "price", Value: -1, Msg: "price must be a positive number"}, "invalid price -1: price must be a positive number", CodeValidation},
		{&ValidationError{Field: "symbol", Value: strings.Repeat("A", 40), Msg: "symbol is required"}, "invalid symbol " + strings.Repeat("A", 32) + "...: symbol is required", CodeValidation},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.msg {
			t.Errorf("Error() = %q want %q", got, tt.msg)
		}
		if got := tt.err.Code(); got != tt.code {
			t.Errorf("Code() = %q want %q", got, tt.code)
		}
	}
}

func TestIsPortfolioError(t *testing.T) {
	wrapped := fmt.Errorf("trade 1: %w", &ValidationError{Field: "symbol"})
	if !IsPortfolioError(wrapped) {
		t.Errorf("IsPortfolioError(%v) = false want true", wrapped)
	}
	if IsPortfolioError(errors.New("boom")) {
		t.Errorf("IsPortfolioError(boom) = true want false")
	}
	if IsPortfolioError(nil) {
		t.Errorf("IsPortfolioError(nil) = true want false")
	}
}
