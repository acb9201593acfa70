package regex

import (
	"errors"
	"fmt"
)

// Parse failures. Compile wraps each of these in a SyntaxError carrying
// the offending position, so callers can classify with errors.Is.
var (
	ErrTrailingBackslash  = errors.New("trailing backslash")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrUnbalancedParens   = errors.New("unbalanced parentheses")
	ErrDanglingQuantifier = errors.New("quantifier is missing an operand")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
)

// ErrInvalidNode reports that matching reached a node kind that must not
// survive parsing. This is an inconsistency between parser and matcher,
// not a pattern or haystack problem.
var ErrInvalidNode = errors.New("invalid node in compiled pattern")

// SyntaxError is a parse failure at a byte offset of the pattern.
type SyntaxError struct {
	Pos int
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %v", e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newSyntaxError(pos int, err error) *SyntaxError {
	return &SyntaxError{Pos: pos, Err: err}
}
