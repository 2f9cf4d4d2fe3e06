package regex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lit(c rune) *node {
	return newLeaf(&leafState{kind: leafLiteral, char: c})
}

func quant(n *node, mi, ma int) *node {
	n.mi, n.ma = mi, ma
	return n
}

func seq(children ...*node) *node {
	return &node{state: &groupState{children: children, id: -1}, mi: 1, ma: 1}
}

func capture(id int, name string, children ...*node) *node {
	return &node{state: &groupState{children: children, capturing: true, id: id, name: name}, mi: 1, ma: 1}
}

func or(left, right *node) *node {
	return &node{state: &choiceState{left: left, right: right}, mi: 1, ma: 1}
}

func root(n *node) *node {
	return capture(0, wholeMatchName, n)
}

var astOpts = cmp.AllowUnexported(node{}, groupState{}, choiceState{}, leafState{})

func TestParse(t *testing.T) {
	tests := map[string]struct {
		givenRe string
		wantAST *node
	}{
		"empty": {
			givenRe: "",
			wantAST: root(seq()),
		},
		"literals": {
			givenRe: "ab",
			wantAST: root(seq(lit('a'), lit('b'))),
		},
		"top level alternation": {
			givenRe: "ab|c",
			wantAST: root(or(seq(lit('a'), lit('b')), seq(lit('c')))),
		},
		"alternation leans right": {
			givenRe: "a|b|c",
			wantAST: root(or(seq(lit('a')), or(seq(lit('b')), seq(lit('c'))))),
		},
		"anchors": {
			givenRe: "^a$",
			wantAST: root(seq(
				newLeaf(&leafState{kind: leafStart}),
				lit('a'),
				newLeaf(&leafState{kind: leafEnd}),
			)),
		},
		"anchors on both branches": {
			givenRe: "^a|b$",
			wantAST: root(or(
				seq(newLeaf(&leafState{kind: leafStart}), lit('a')),
				seq(lit('b'), newLeaf(&leafState{kind: leafEnd})),
			)),
		},
		"quantified capturing group": {
			givenRe: "(a)*",
			wantAST: root(seq(quant(capture(1, "Group 1", lit('a')), 0, unbounded))),
		},
		"non capturing group": {
			givenRe: "(?:ab)+",
			wantAST: root(seq(quant(seq(lit('a'), lit('b')), 1, unbounded))),
		},
		"named alternation shares the group": {
			givenRe: "(?<x>a|b)?c",
			wantAST: root(seq(
				quant(or(capture(1, "x", lit('a')), capture(1, "x", lit('b'))), 0, 1),
				lit('c'),
			)),
		},
		"group ids in opening order": {
			givenRe: "((a)(?<n>b))(c)",
			wantAST: root(seq(
				capture(1, "Group 1",
					capture(2, "Group 2", lit('a')),
					capture(3, "n", lit('b')),
				),
				capture(4, "Group 4", lit('c')),
			)),
		},
		"curly quantifiers": {
			givenRe: "a{2}b{,3}c{1,}d{,}",
			wantAST: root(seq(
				quant(lit('a'), 2, 2),
				quant(lit('b'), 0, 3),
				quant(lit('c'), 1, unbounded),
				quant(lit('d'), 0, unbounded),
			)),
		},
		"bracket": {
			givenRe: `[^a-c_\s-]`,
			wantAST: root(seq(newLeaf(newRange([]rune("abc_-"+spaceChars), true)))),
		},
		"dash outside brackets": {
			givenRe: "a-b",
			wantAST: root(seq(lit('a'), lit('-'), lit('b'))),
		},
		"wildcard and space": {
			givenRe: `.\s`,
			wantAST: root(seq(
				newLeaf(&leafState{kind: leafWildcard}),
				newLeaf(&leafState{kind: leafSpace}),
			)),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			gotAST, err := parse(tt.givenRe)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			// then
			if d := cmp.Diff(tt.wantAST, gotAST, astOpts); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		givenRe string
		wantErr error
	}{
		"unclosed group":           {givenRe: "(a", wantErr: ErrUnterminatedGroup},
		"group marker at end":      {givenRe: "(?", wantErr: ErrUnterminatedGroup},
		"unclosed bracket":         {givenRe: "[ab", wantErr: ErrMissingBracket},
		"lone bracket":             {givenRe: "[", wantErr: ErrMissingBracket},
		"open range at end":        {givenRe: "[a-", wantErr: ErrMissingBracket},
		"unterminated group name":  {givenRe: "(?<abb)", wantErr: ErrUnterminatedGroupName},
		"group name without close": {givenRe: "(?<)", wantErr: ErrUnterminatedGroupName},
		"empty group name":         {givenRe: "(?<>asf)", wantErr: ErrEmptyGroupName},
		"reversed range":           {givenRe: "[z-a]", wantErr: ErrReversedRange},
		"leading quantifier":       {givenRe: "*a", wantErr: ErrUnexpectedToken},
		"double quantifier":        {givenRe: "a**", wantErr: ErrUnexpectedToken},
		"caret in the middle":      {givenRe: "a^", wantErr: ErrUnexpectedToken},
		"unknown group marker":     {givenRe: "(?x)", wantErr: ErrInvalidGroup},
		"end before start":         {givenRe: "$^", wantErr: ErrTrailingInput},
		"unescaped specials":       {givenRe: "$a^", wantErr: ErrTrailingInput},
		"unopened group":           {givenRe: "a)", wantErr: ErrTrailingInput},
		"empty braces":             {givenRe: "a{}", wantErr: ErrBadQuantifier},
		"min above max":            {givenRe: "a{3,1}", wantErr: ErrBadQuantifier},
		"trailing backslash":       {givenRe: `a\`, wantErr: ErrBadToken},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			_, err := parse(tt.givenRe)

			// then
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Compile("[z-a]")
	if err == nil {
		t.Fatal("want an error")
	}

	want := `failed to compile "[z-a]": parser error at 1: reversed character range: 'z'-'a'`
	if d := cmp.Diff(want, err.Error()); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}
