package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a plan rate is not a number.
	ErrParse = errors.New("rate is not numeric")

	// ErrUnalignedRow is returned when a Silver plan row has no postal row at
	// the same position to take its region from.
	ErrUnalignedRow = errors.New("plan row has no aligned postal row")

	// ErrShortRow is returned when an input row has fewer columns than required.
	ErrShortRow = errors.New("row has too few columns")

	// ErrUnknownFormat is returned for an unsupported explain output format.
	ErrUnknownFormat = errors.New("unknown output format")
)

// ParseError reports a plan rate that could not be parsed.
type ParseError struct {
	Row   int // zero-based data row, header excluded
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plan row %d: parse rate %q: %v", e.Row, e.Value, e.Err)
}

// Unwrap lets errors.Is match both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
