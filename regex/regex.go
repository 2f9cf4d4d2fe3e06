// Package regex implements a backtracking regular expression engine.
//
// Supported syntax: literals, '.', '\s', '\t', escapes, '^' and '$' anchors, bracket
// expressions with ranges and negation, groups (capturing, '(?:...)' and '(?<name>...)'),
// alternation and the quantifiers '?', '*', '+', '{n}', '{n,}', '{,m}' and '{n,m}'.
//
// Alternations prefer the side consuming more input. A quantified capturing group reports its
// last repetition only. Matching is exponential on pathological nested quantifiers.
package regex

import (
	"fmt"
	"strings"
	"unicode"
)

// Submatch is the span matched by one group. Start and End are rune offsets into the matched
// text. The whole match has GroupID 0.
type Submatch struct {
	GroupID int
	Name    string
	Start   int
	End     int
	Str     string
}

// Result of a search. Consumed is the end offset of the last match, 0 when nothing matched.
// Every element of Matches holds the whole match first, followed by the groups in reverse
// order of discovery.
type Result struct {
	Matched  bool
	Consumed int
	Matches  [][]Submatch
}

type Regex struct {
	expr      string
	mode      CaseMode
	root      *node
	prefilter *prefilter
	names     []string
}

func Compile(re string) (*Regex, error) {
	return CompileFold(re, CaseSensitive)
}

// CompileFold compiles re after applying the pattern side of mode to it. The returned Regex
// applies the text side of mode to every input, offsets then refer to the transformed text.
func CompileFold(re string, mode CaseMode) (*Regex, error) {
	expr := foldPattern(re, mode)
	root, err := parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %q: %w", expr, err)
	}

	return &Regex{
		expr:      expr,
		mode:      mode,
		root:      root,
		prefilter: newPrefilter(root),
		names:     groupNames(root),
	}, nil
}

func MustCompile(re string) *Regex {
	r, err := Compile(re)
	if err != nil {
		panic(err)
	}
	return r
}

func (re *Regex) String() string {
	return re.expr
}

// NumGroups returns the number of capturing groups, not counting the whole match.
func (re *Regex) NumGroups() int {
	return len(re.names) - 1
}

// GroupNames returns the group names indexed by group id, index 0 names the whole match.
func (re *Regex) GroupNames() []string {
	return append([]string(nil), re.names...)
}

// FoldText returns s the way re sees it. Submatch offsets index the runes of the result.
func (re *Regex) FoldText(s string) string {
	return foldText(s, re.mode)
}

// Match searches s for the first match. With continueAfterMatch the search restarts at the
// end of every match for as long as matches keep advancing through s.
func (re *Regex) Match(s string, continueAfterMatch bool) Result {
	maxCount := 1
	if continueAfterMatch {
		maxCount = -1
	}
	return re.run(s, maxCount)
}

func (re *Regex) run(s string, maxCount int) Result {
	m := &matcher{text: []rune(foldText(s, re.mode))}

	if re.prefilter != nil && !re.prefilter.mightMatch(m.text) {
		return Result{}
	}

	var res Result
	from := 0
	for maxCount == -1 || len(res.Matches) < maxCount {
		_, end, ok := m.search(re.root, from)
		// a match that doesn't advance past the previous one ends the search
		if !ok || (res.Matched && end <= res.Consumed) {
			break
		}
		res.Matched = true
		res.Consumed = end
		res.Matches = append(res.Matches, m.submatches())
		if end == 0 {
			break
		}
		from = end
	}
	return res
}

func (re *Regex) MatchString(s string) bool {
	return re.run(s, 1).Matched
}

// FindAllSubmatches finds up to maxCount matches of the pattern in the given string
// To return all matches pass a maxCount of -1
func (re *Regex) FindAllSubmatches(s string, maxCount int) [][]Submatch {
	if maxCount == 0 {
		return nil
	}
	return re.run(s, maxCount).Matches
}

func (re *Regex) FindSubmatch(s string) []Submatch {
	submatches := re.FindAllSubmatches(s, 1)
	if len(submatches) < 1 {
		return nil
	}
	return submatches[0]
}

// Expand returns template with $N replaced by the text of group N in the first match of s.
// Groups that did not take part in the match expand to the empty string.
func (re *Regex) Expand(s string, template string) string {
	return expand(re.FindSubmatch(s), template)
}

// ReplaceAll replaces every match in s by the expansion of template, see Expand.
func (re *Regex) ReplaceAll(s string, template string) string {
	text := []rune(re.FoldText(s))
	out := strings.Builder{}
	last := 0
	for _, match := range re.FindAllSubmatches(s, -1) {
		out.WriteString(string(text[last:match[0].Start]))
		out.WriteString(expand(match, template))
		last = match[0].End
	}
	out.WriteString(string(text[last:]))
	return out.String()
}

func expand(submatches []Submatch, with string) string {
	byID := make(map[int]string, len(submatches))
	for _, sm := range submatches {
		byID[sm.GroupID] = sm.Str
	}

	out := strings.Builder{}
	for i := 0; i < len(with); i++ {
		if with[i] == '$' && i+1 < len(with) && unicode.IsDigit(rune(with[i+1])) {
			num := 0
			for j := i + 1; j < len(with) && unicode.IsDigit(rune(with[j])); j++ {
				num *= 10
				num += int(with[j] - '0')
				i++
			}
			out.WriteString(byID[num])
		} else {
			out.WriteByte(with[i])
		}
	}
	return out.String()
}

// groupNames walks the AST and returns the names of the capturing groups by id
func groupNames(root *node) []string {
	byID := map[int]string{}
	var walk func(n *node)
	walk = func(n *node) {
		switch s := n.state.(type) {
		case *groupState:
			if s.capturing {
				byID[s.id] = s.name
			}
			for _, c := range s.children {
				walk(c)
			}
		case *choiceState:
			walk(s.left)
			walk(s.right)
		}
	}
	walk(root)

	names := make([]string, len(byID))
	for id, name := range byID {
		names[id] = name
	}
	return names
}
