package regex

import (
	"errors"
	"fmt"
)

// lexical errors
var (
	ErrBadToken      = errors.New("bad token")
	ErrBadQuantifier = errors.New("malformed curly quantifier")
)

// parse errors
var (
	ErrUnterminatedGroup     = errors.New("missing closing ')'")
	ErrMissingBracket        = errors.New("missing closing ']'")
	ErrUnterminatedGroupName = errors.New("unterminated named group name")
	ErrEmptyGroupName        = errors.New("empty named group name")
	ErrReversedRange         = errors.New("reversed character range")
	ErrUnexpectedToken       = errors.New("unescaped special character")
	ErrInvalidGroup          = errors.New("invalid group marker")
	ErrTrailingInput         = errors.New("unable to parse the entire pattern")
)

// Error is returned for patterns that fail to scan or parse.
// Kind is one of the Err* values above and Pos the byte index of the offending character in
// the pattern, or -1 when the error is detected at the end of the pattern.
type Error struct {
	Kind   error
	Pos    int
	Detail string
}

func newError(kind error, pos int, detail string) *Error {
	return &Error{Kind: kind, Pos: pos, Detail: detail}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Pos < 0 {
		return fmt.Sprintf("parser error at end of pattern: %s", msg)
	}
	return fmt.Sprintf("parser error at %d: %s", e.Pos, msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Lexical reports whether the error was raised by the tokenizer rather than the parser.
func (e *Error) Lexical() bool {
	return e.Kind == ErrBadToken || e.Kind == ErrBadQuantifier
}
