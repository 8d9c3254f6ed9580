package driver

import "fmt"

// ParseError is emitted when, after recovery, the active set is empty
// with input remaining. It carries the token index and symbol that
// failed so the caller can report a precise location.
type ParseError struct {
	TokenIndex int
	Symbol     string
	Line       int
	Column     int
	Cause      error
}

func (e *ParseError) Error() string {
	if e.Line != 0 || e.Column != 0 {
		return fmt.Sprintf("parse error at token %v (%v) [%v:%v]: %v", e.TokenIndex, e.Symbol, e.Line, e.Column, e.Cause)
	}
	return fmt.Sprintf("parse error at token %v (%v): %v", e.TokenIndex, e.Symbol, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// TokenizerError is the marker interface a Tokenizer's errors should
// satisfy when raised on unmatched input. The engine never wraps a
// TokenizerError; it is returned to the caller exactly as the
// tokenizer produced it.
type TokenizerError interface {
	error
	Unmatched() string
}
