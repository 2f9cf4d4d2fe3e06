package regex

import (
	"fmt"
	"strconv"
)

// name of the group reporting the whole match
const wholeMatchName = "RegEx"

type parser struct {
	tokens []token
	i      int
	groups int
}

// parse builds the AST of a pattern. The returned root is a capturing group with id 0
// wrapping the whole pattern.
func parse(re string) (*node, error) {
	tokens, err := scan(re)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	seq, err := p.parseSequence(false, -1, "")
	if err != nil {
		return nil, err
	}
	if t, ok := p.cur(); ok {
		return nil, newError(ErrTrailingInput, t.pos, "unexpected "+t.String())
	}

	return &node{
		state: &groupState{
			children:  []*node{seq},
			capturing: true,
			id:        0,
			name:      wholeMatchName,
		},
		mi: 1,
		ma: 1,
	}, nil
}

func (p *parser) cur() (token, bool) {
	if p.i < len(p.tokens) {
		return p.tokens[p.i], true
	}
	return token{}, false
}

// peek returns the token after the current one without consuming anything
func (p *parser) peek() (token, bool) {
	if p.i+1 < len(p.tokens) {
		return p.tokens[p.i+1], true
	}
	return token{}, false
}

func (p *parser) next() {
	p.i++
}

func (p *parser) at(kinds ...tokenKind) bool {
	t, ok := p.cur()
	if !ok {
		return false
	}
	for _, k := range kinds {
		if t.kind == k {
			return true
		}
	}
	return false
}

// ^? group $? (| sequence)?
// every branch of an alternation is a group with the same identity
func (p *parser) parseSequence(capturing bool, id int, name string) (*node, error) {
	matchStart := false
	if p.at(tokStart, tokNot) {
		p.next()
		matchStart = true
	}

	n, err := p.parseGroup(capturing, id, name)
	if err != nil {
		return nil, err
	}

	matchEnd := false
	if p.at(tokEnd) {
		p.next()
		matchEnd = true
	}

	g := n.state.(*groupState)
	if matchStart {
		g.children = append([]*node{newLeaf(&leafState{kind: leafStart})}, g.children...)
	}
	if matchEnd {
		g.children = append(g.children, newLeaf(&leafState{kind: leafEnd}))
	}

	if p.at(tokAlternation) {
		p.next()
		right, err := p.parseSequence(capturing, id, name)
		if err != nil {
			return nil, err
		}
		n = &node{state: &choiceState{left: n, right: right}, mi: 1, ma: 1}
	}

	return n, nil
}

// (element quantifier?)*
func (p *parser) parseGroup(capturing bool, id int, name string) (*node, error) {
	var children []*node

	for p.i < len(p.tokens) && !p.at(tokAlternation, tokRightParen, tokEnd) {
		el, err := p.parseRangeElement()
		if err != nil {
			return nil, err
		}

		// pop off the last token of the element
		p.next()

		if p.at(tokEnd) {
			children = append(children, el)
			break
		}

		t, ok := p.cur()
		if ok && t.isQuantifier() {
			switch t.kind {
			case tokZeroOrOne:
				el.mi, el.ma = 0, 1
			case tokZeroOrMore:
				el.mi, el.ma = 0, unbounded
			case tokOneOrMore:
				el.mi, el.ma = 1, unbounded
			}
			p.next()
		} else if ok && t.kind == tokLeftBrace {
			if err := p.parseBrace(el); err != nil {
				return nil, err
			}
		}

		children = append(children, el)
	}

	return &node{
		state: &groupState{
			children:  children,
			capturing: capturing,
			id:        id,
			name:      name,
		},
		mi: 1,
		ma: 1,
	}, nil
}

// {n}, {n,}, {,m}, {n,m}
func (p *parser) parseBrace(el *node) error {
	open, _ := p.cur()
	// pop off '{'
	p.next()

	lo := p.digits()
	if p.at(tokRightBrace) {
		if lo == "" {
			return newError(ErrBadQuantifier, open.pos, "empty quantifier")
		}
		n, err := strconv.Atoi(lo)
		if err != nil {
			return newError(ErrBadQuantifier, open.pos, err.Error())
		}
		el.mi, el.ma = n, n
		p.next()
		return nil
	}

	if !p.at(tokComma) {
		return newError(ErrBadQuantifier, open.pos, "expected ',' or '}'")
	}
	p.next()

	hi := p.digits()
	if !p.at(tokRightBrace) {
		return newError(ErrBadQuantifier, open.pos, "expected '}'")
	}
	p.next()

	mi, ma := 0, unbounded
	var err error
	if lo != "" {
		if mi, err = strconv.Atoi(lo); err != nil {
			return newError(ErrBadQuantifier, open.pos, err.Error())
		}
	}
	if hi != "" {
		if ma, err = strconv.Atoi(hi); err != nil {
			return newError(ErrBadQuantifier, open.pos, err.Error())
		}
	}
	if mi > ma {
		return newError(ErrBadQuantifier, open.pos, fmt.Sprintf("min %d is greater than max %d", mi, ma))
	}

	el.mi, el.ma = mi, ma
	return nil
}

func (p *parser) digits() string {
	var s []rune
	for p.at(tokLiteral) {
		t, _ := p.cur()
		s = append(s, t.char)
		p.next()
	}
	return string(s)
}

// [...] or element
func (p *parser) parseRangeElement() (*node, error) {
	if !p.at(tokLeftBracket) {
		return p.parseElement()
	}
	open, _ := p.cur()
	// pop off '['
	p.next()
	return p.parseBracket(open.pos)
}

// [...] and [^...]
// every token inside the brackets stands for its character, a dash right before ']' or \s is
// taken literally
// leaves the parser on the closing ']'
func (p *parser) parseBracket(open int) (*node, error) {
	if _, ok := p.cur(); !ok {
		return nil, newError(ErrMissingBracket, open, "")
	}

	negate := false
	if p.at(tokNot) {
		negate = true
		p.next()
	}

	var chars []rune
	for p.i < len(p.tokens) && !p.at(tokRightBracket) {
		t, _ := p.cur()
		if t.kind == tokSpace {
			chars = append(chars, []rune(spaceChars)...)
			p.next()
			continue
		}

		nt, ok := p.peek()
		if !ok {
			return nil, newError(ErrMissingBracket, open, "")
		}

		if nt.kind != tokDash {
			chars = append(chars, t.char)
			p.next()
			continue
		}

		// current token is now the dash
		p.next()
		to, ok := p.peek()
		if !ok {
			return nil, newError(ErrMissingBracket, open, "")
		}
		if to.kind == tokRightBracket || to.kind == tokSpace {
			chars = append(chars, t.char, '-')
			p.next()
			continue
		}

		if t.char > to.char {
			return nil, newError(ErrReversedRange, t.pos, fmt.Sprintf("%q-%q", t.char, to.char))
		}
		for c := t.char; c <= to.char; c++ {
			chars = append(chars, c)
		}
		p.next()
		p.next()
	}

	if !p.at(tokRightBracket) {
		return nil, newError(ErrMissingBracket, open, "")
	}

	return newLeaf(newRange(chars, negate)), nil
}

// literal, '.', \s or (...)
// leaves the parser on the last token of the element
func (p *parser) parseElement() (*node, error) {
	t, _ := p.cur()

	switch t.kind {
	case tokLiteral, tokDash:
		return newLeaf(&leafState{kind: leafLiteral, char: t.char}), nil
	case tokWildcard:
		return newLeaf(&leafState{kind: leafWildcard}), nil
	case tokSpace:
		return newLeaf(&leafState{kind: leafSpace}), nil
	case tokLeftParen:
		return p.parseParen()
	}

	return nil, newError(ErrUnexpectedToken, t.pos, string(t.char))
}

// (...), (?:...) and (?<name>...)
func (p *parser) parseParen() (*node, error) {
	open, _ := p.cur()
	// pop off '('
	p.next()

	capturing := true
	name := ""
	if p.at(tokZeroOrOne) {
		p.next()
		t, ok := p.cur()
		switch {
		case !ok:
			return nil, newError(ErrUnterminatedGroup, open.pos, "")
		case t.char == ':':
			capturing = false
			p.next()
		case t.char == '<':
			p.next()
			var err error
			if name, err = p.parseGroupName(open.pos); err != nil {
				return nil, err
			}
		default:
			return nil, newError(ErrInvalidGroup, t.pos, "(?"+string(t.char))
		}
	}

	id := -1
	if capturing {
		p.groups++
		id = p.groups
		if name == "" {
			name = "Group " + strconv.Itoa(id)
		}
	}

	n, err := p.parseSequence(capturing, id, name)
	if err != nil {
		return nil, err
	}

	if !p.at(tokRightParen) {
		return nil, newError(ErrUnterminatedGroup, open.pos, "")
	}
	return n, nil
}

// name>
func (p *parser) parseGroupName(open int) (string, error) {
	var name []rune
	for {
		t, ok := p.cur()
		if !ok {
			return "", newError(ErrUnterminatedGroupName, open, "")
		}
		if t.char == '>' {
			break
		}
		name = append(name, t.char)
		p.next()
	}

	if len(name) == 0 {
		return "", newError(ErrEmptyGroupName, open, "")
	}
	// pop off '>'
	p.next()
	return string(name), nil
}
