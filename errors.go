package prysm

import (
	"errors"
	"fmt"
)

// Machine readable codes carried by the portfolio errors.
const (
	CodeCSVParse   = "CSV_PARSE_ERROR"
	CodeStorage    = "STORAGE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

// Coder is implemented by all portfolio errors.
type Coder interface {
	error
	Code() string
}

// IsPortfolioError reports whether err, or any error it wraps, is one of the
// portfolio errors ([ParseError], [StorageError] or [ValidationError]).
func IsPortfolioError(err error) bool {
	var c Coder
	return errors.As(err, &c)
}

// ParseError reports an invalid CSV input.
//
// Row is the 1-based line number, the header being row 1, or 0 when the error
// is not about a specific row. Column is the offending field name, if any.
type ParseError struct {
	Row    int
	Column string
	Msg    string
	Err    error
}

func (e *ParseError) Code() string  { return CodeCSVParse }
func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.Msg)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	default:
		return e.Msg
	}
}

// parseErrorf returns a ParseError built from a format.
func parseErrorf(row int, column string, format string, args ...any) *ParseError {
	return &ParseError{Row: row, Column: column, Msg: fmt.Sprintf(format, args...)}
}

// StorageOp identifies the persistence operation that failed.
type StorageOp string

const (
	OpSave  StorageOp = "save"
	OpLoad  StorageOp = "load"
	OpClear StorageOp = "clear"
)

// StorageError reports a persistence failure.
type StorageError struct {
	Op  StorageOp
	Msg string
	Err error
}

func (e *StorageError) Code() string  { return CodeStorage }
func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s portfolio data: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s portfolio data: %s", e.Op, e.Msg)
}

// ValidationError reports an invalid field of a single trade.
type ValidationError struct {
	Field string
	Value any
	Msg   string
}

func (e *ValidationError) Code() string { return CodeValidation }

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Field, clip(fmt.Sprint(e.Value)), e.Msg)
}
