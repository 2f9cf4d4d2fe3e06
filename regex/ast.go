package regex

import (
	"math"
	"slices"
	"unicode"
)

const unbounded = math.MaxInt

// whitespace as matched by \s
const spaceChars = " \t\n\r\v\f"

// sequence of children, optionally capturing
type groupState struct {
	children  []*node
	capturing bool
	id        int
	name      string
}

// left|right
type choiceState struct {
	left  *node
	right *node
}

type leafKind int

const (
	leafLiteral leafKind = iota
	leafWildcard
	leafSpace
	leafRange
	leafStart
	leafEnd
)

type leafState struct {
	kind   leafKind
	char   rune
	set    []rune // sorted, no duplicates
	negate bool
}

// node is a quantified element of the AST. state is one of *groupState, *choiceState or
// *leafState; min and max bound how often it repeats.
type node struct {
	state any
	mi    int
	ma    int
}

func newLeaf(l *leafState) *node {
	return &node{state: l, mi: 1, ma: 1}
}

func newRange(chars []rune, negate bool) *leafState {
	set := slices.Clone(chars)
	slices.Sort(set)
	return &leafState{kind: leafRange, set: slices.Compact(set), negate: negate}
}

// isMatch reports whether the leaf matches at index i of text. Anchors test the position
// only, i may equal len(text) for them.
func (l *leafState) isMatch(text []rune, i int) bool {
	switch l.kind {
	case leafStart:
		return i == 0
	case leafEnd:
		return i == len(text)
	}

	if i >= len(text) {
		return false
	}
	c := text[i]

	switch l.kind {
	case leafLiteral:
		return c == l.char
	case leafWildcard:
		return c != '\n'
	case leafSpace:
		return unicode.IsSpace(c)
	case leafRange:
		_, found := slices.BinarySearch(l.set, c)
		return found != l.negate
	}
	panic("unexpected leaf kind")
}

func (l *leafState) zeroWidth() bool {
	return l.kind == leafStart || l.kind == leafEnd
}
