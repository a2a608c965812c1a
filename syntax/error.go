// Package syntax compiles the pattern language into an ordered sequence of
// match operators.
//
// The language is deliberately small:
//
//	.        any single byte
//	[abc]    one byte from the set
//	[^abc]   one byte not in the set
//	?        previous operator repeats 0 or 1 times
//	*        previous operator repeats 0 or more times
//	+        previous operator repeats 1 or more times
//	c        any other byte matches itself
//
// Bracket contents are literal: there are no ranges, escapes or nested
// classes, and a ']' cannot appear inside a bracket expression.
package syntax

import (
	"errors"
	"fmt"
)

// Compile errors.
var (
	// ErrDanglingQuantifier indicates a quantifier with no preceding operator.
	ErrDanglingQuantifier = errors.New("missing argument to repetition operator")

	// ErrUnterminatedClass indicates a '[' without a closing ']'.
	ErrUnterminatedClass = errors.New("missing closing ]")

	// ErrInvalidRepeat indicates repeat bounds that violate min <= max.
	ErrInvalidRepeat = errors.New("invalid repeat count")
)

// CompileError reports a malformed pattern and the byte index of the
// offending character.
type CompileError struct {
	Pattern string
	Index   int
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("error parsing regexp: %v at index %d: `%s`", e.Err, e.Index, e.Pattern)
}

// Unwrap returns the underlying sentinel error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
