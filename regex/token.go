package regex

import "fmt"

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokWildcard
	tokStart
	tokEnd
	tokNot
	tokDash
	tokLeftParen
	tokRightParen
	tokLeftBracket
	tokRightBracket
	tokLeftBrace
	tokRightBrace
	tokComma
	tokZeroOrOne
	tokZeroOrMore
	tokOneOrMore
	tokAlternation
	tokSpace
)

var tokenNames = [...]string{
	tokLiteral:      "literal",
	tokWildcard:     "wildcard",
	tokStart:        "start",
	tokEnd:          "end",
	tokNot:          "not",
	tokDash:         "dash",
	tokLeftParen:    "(",
	tokRightParen:   ")",
	tokLeftBracket:  "[",
	tokRightBracket: "]",
	tokLeftBrace:    "{",
	tokRightBrace:   "}",
	tokComma:        "comma",
	tokZeroOrOne:    "?",
	tokZeroOrMore:   "*",
	tokOneOrMore:    "+",
	tokAlternation:  "|",
	tokSpace:        "space",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

// token is one lexical unit of a pattern. char is the source character the token was read
// from (after escape processing), pos its byte index in the pattern.
type token struct {
	kind tokenKind
	char rune
	pos  int
}

func (t token) isQuantifier() bool {
	return t.kind == tokZeroOrOne || t.kind == tokZeroOrMore || t.kind == tokOneOrMore
}

func (t token) String() string {
	if t.kind == tokLiteral {
		return fmt.Sprintf("literal(%q)", t.char)
	}
	return t.kind.String()
}
