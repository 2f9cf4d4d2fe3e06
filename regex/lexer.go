package regex

import "unicode/utf8"

var directTokens = map[rune]tokenKind{
	'.': tokWildcard,
	'$': tokEnd,
	'[': tokLeftBracket,
	']': tokRightBracket,
	'(': tokLeftParen,
	')': tokRightParen,
	'-': tokDash,
	'|': tokAlternation,
	'?': tokZeroOrOne,
	'*': tokZeroOrMore,
	'+': tokOneOrMore,
}

// scan splits a pattern into tokens, left to right.
func scan(re string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(re); {
		c, size := utf8.DecodeRuneInString(re[i:])

		switch {
		case c == '\\':
			if i+size >= len(re) {
				return nil, newError(ErrBadToken, i, "trailing backslash")
			}
			e, esize := utf8.DecodeRuneInString(re[i+size:])
			tokens = append(tokens, escapedToken(e, i))
			i += size + esize
			continue
		case c == '{':
			braceTokens, end, err := scanBrace(re, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, braceTokens...)
			i = end
			continue
		case c == '^':
			if i == 0 {
				tokens = append(tokens, token{kind: tokStart, char: c, pos: i})
			} else {
				tokens = append(tokens, token{kind: tokNot, char: c, pos: i})
			}
		case c == '}':
			return nil, newError(ErrBadToken, i, "unexpected '}'")
		default:
			kind, ok := directTokens[c]
			if !ok {
				kind = tokLiteral
			}
			tokens = append(tokens, token{kind: kind, char: c, pos: i})
		}
		i += size
	}

	return tokens, nil
}

// \t is a tab, \s the whitespace class, anything else is taken literally
func escapedToken(c rune, pos int) token {
	switch c {
	case 't':
		return token{kind: tokLiteral, char: '\t', pos: pos}
	case 's':
		return token{kind: tokSpace, char: c, pos: pos}
	}
	return token{kind: tokLiteral, char: c, pos: pos}
}

// {...}, only digits and a comma are allowed inside
// returns the index right after the closing '}'
func scanBrace(re string, i int) ([]token, int, error) {
	tokens := []token{{kind: tokLeftBrace, char: '{', pos: i}}

	for j := i + 1; j < len(re); {
		c, size := utf8.DecodeRuneInString(re[j:])
		switch {
		case c == ',':
			tokens = append(tokens, token{kind: tokComma, char: c, pos: j})
		case c >= '0' && c <= '9':
			tokens = append(tokens, token{kind: tokLiteral, char: c, pos: j})
		case c == '}':
			tokens = append(tokens, token{kind: tokRightBrace, char: c, pos: j})
			return tokens, j + size, nil
		default:
			return nil, 0, newError(ErrBadQuantifier, j, "unexpected "+string(c))
		}
		j += size
	}

	return nil, 0, newError(ErrBadQuantifier, i, "did not find closing '}'")
}
