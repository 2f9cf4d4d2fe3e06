package regex

import (
	"github.com/coregx/ahocorasick"
)

// prefilter rejects texts that contain none of the literals every match must contain.
type prefilter struct {
	auto *ahocorasick.Automaton
}

func newPrefilter(root *node) *prefilter {
	literals, ok := requiredLiterals(root)
	if !ok || len(literals) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &prefilter{auto: auto}
}

func (p *prefilter) mightMatch(text []rune) bool {
	return p.auto.IsMatch([]byte(string(text)))
}

// requiredLiterals returns strings of which at least one occurs in every match of n.
// ok is false when no such set is known.
func requiredLiterals(n *node) ([]string, bool) {
	if n.mi == 0 {
		return nil, false
	}

	switch s := n.state.(type) {
	case *leafState:
		if s.kind == leafLiteral {
			return []string{string(s.char)}, true
		}
		return nil, false
	case *choiceState:
		left, ok := requiredLiterals(s.left)
		if !ok {
			return nil, false
		}
		right, ok := requiredLiterals(s.right)
		if !ok {
			return nil, false
		}
		return append(left, right...), true
	case *groupState:
		return groupLiterals(s)
	}
	return nil, false
}

// the best candidate of the children; consecutive single literals form one string
func groupLiterals(g *groupState) ([]string, bool) {
	var best []string
	consider := func(set []string) {
		if best == nil || shortest(set) > shortest(best) {
			best = set
		}
	}

	var run []rune
	for _, c := range g.children {
		if l, ok := c.state.(*leafState); ok {
			if l.zeroWidth() {
				continue
			}
			if l.kind == leafLiteral && c.mi == 1 && c.ma == 1 {
				run = append(run, l.char)
				continue
			}
		}
		if len(run) > 0 {
			consider([]string{string(run)})
			run = nil
		}
		if set, ok := requiredLiterals(c); ok {
			consider(set)
		}
	}
	if len(run) > 0 {
		consider([]string{string(run)})
	}

	return best, best != nil
}

func shortest(set []string) int {
	n := -1
	for _, s := range set {
		if n == -1 || len(s) < n {
			n = len(s)
		}
	}
	return n
}
