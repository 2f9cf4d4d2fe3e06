package regex

import "slices"

// upper bound of the widths tracked for a node, anything wider counts as unbounded
const maxWidth = 1 << 30

// matcher holds the state of one search over text. log is an append-only record of the
// captures made so far; truncating it undoes the captures of abandoned attempts.
type matcher struct {
	text   []rune
	log    []Submatch
	widths map[*node]int
}

// rep is one repetition recorded in a frame. first is the end it found going forward and
// next the highest end below first still to be tried.
type rep struct {
	consumed int
	mark     int
	first    int
	next     int
}

// frame is the backtracking record of one child of a group. empty counts the repetitions
// after an empty one that were needed to reach the minimum; they match the same empty
// string and are not recorded.
type frame struct {
	child int
	end   int
	reps  []rep
	empty int
}

func (f *frame) count() int {
	return len(f.reps) + f.empty
}

func (f *frame) push(r rep) {
	f.reps = append(f.reps, r)
	f.end += r.consumed
}

func (f *frame) pop() rep {
	k := len(f.reps) - 1
	r := f.reps[k]
	f.reps = f.reps[:k]
	f.end -= r.consumed
	return r
}

func (m *matcher) mark() int {
	return len(m.log)
}

func (m *matcher) undo(mark int) {
	m.log = m.log[:mark]
}

// matchNode matches one repetition of n at start without consuming past ceiling. With exact
// set the repetition has to end at ceiling.
func (m *matcher) matchNode(n *node, start, ceiling int, exact bool) (int, bool) {
	switch s := n.state.(type) {
	case *groupState:
		mark := m.mark()
		end, ok := m.matchGroup(s, start, ceiling, exact)
		if !ok {
			m.undo(mark)
			return start, false
		}
		if s.capturing {
			m.log = append(m.log, Submatch{GroupID: s.id, Name: s.name, Start: start, End: end})
		}
		return end, true
	case *choiceState:
		return m.matchChoice(s, start, ceiling, exact)
	case *leafState:
		return m.matchLeaf(s, start, ceiling, exact)
	}
	panic("unexpected `state` type")
}

// both sides are tried from the same position, the one consuming more wins and ties go left
func (m *matcher) matchChoice(s *choiceState, start, ceiling int, exact bool) (int, bool) {
	mark := m.mark()

	leftEnd, leftOK := m.matchNode(s.left, start, ceiling, exact)
	if exact && leftOK {
		return leftEnd, true
	}
	leftLog := slices.Clone(m.log[mark:])
	m.undo(mark)

	rightEnd, rightOK := m.matchNode(s.right, start, ceiling, exact)

	switch {
	case leftOK && (!rightOK || leftEnd >= rightEnd):
		m.undo(mark)
		m.log = append(m.log, leftLog...)
		return leftEnd, true
	case rightOK:
		return rightEnd, true
	}
	return start, false
}

func (m *matcher) matchLeaf(l *leafState, i, ceiling int, exact bool) (int, bool) {
	if l.zeroWidth() {
		return i, l.isMatch(m.text, i) && (!exact || i == ceiling)
	}
	if i >= ceiling || (exact && i+1 != ceiling) || !l.isMatch(m.text, i) {
		return i, false
	}
	return i + 1, true
}

// matchGroup walks the children of g in order. Each matched child leaves a frame on the
// stack; when a child cannot reach its minimum the frames are reduced newest first until
// one of them offers another way to match, and matching resumes right after that child.
func (m *matcher) matchGroup(g *groupState, start, ceiling int, exact bool) (int, bool) {
	var stack []*frame
	pos := start

	for i := 0; ; {
		if i == len(g.children) {
			if !exact || pos == ceiling {
				return pos, true
			}
		} else {
			child := g.children[i]
			f := &frame{child: i, end: pos}
			m.advance(child, f, ceiling)
			if f.count() >= child.mi || m.reduce(child, f, ceiling) {
				stack = append(stack, f)
				pos = f.end
				i++
				continue
			}
		}

		// backtracking
		for {
			if len(stack) == 0 {
				return start, false
			}
			top := stack[len(stack)-1]
			if m.reduce(g.children[top.child], top, ceiling) {
				pos = top.end
				i = top.child + 1
				break
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// advance repeats n greedily from the end of f, up to its max. A repetition that consumes
// nothing ends the loop; below the minimum it stands in for all the missing ones.
func (m *matcher) advance(n *node, f *frame, ceiling int) {
	for f.count() < n.ma {
		mark := m.mark()
		end, ok := m.matchNode(n, f.end, ceiling, false)
		if !ok {
			break
		}
		if end == f.end {
			if f.count() >= n.mi {
				m.undo(mark)
				break
			}
			f.push(rep{mark: mark, first: end, next: end - 1})
			f.empty = n.mi - f.count()
			break
		}
		f.push(rep{consumed: end - f.end, mark: mark, first: end, next: end - 1})
	}
}

// reduce moves f to the next way of matching n, reporting false when there is none.
// Leaves give back their last repetition. Groups and alternations first move their last
// repetition to another end, then drop it; falling below the minimum means an earlier
// repetition has to move and the rest is matched again.
func (m *matcher) reduce(n *node, f *frame, ceiling int) bool {
	if _, ok := n.state.(*leafState); ok {
		if f.count() <= n.mi {
			return false
		}
		m.undo(f.pop().mark)
		return true
	}

	// the unrecorded empty repetitions have nothing else to offer
	f.empty = 0
	for f.count() > 0 {
		k := f.count() - 1
		r := f.pop()
		m.undo(r.mark)
		if m.retry(n, f, r, k, ceiling) {
			m.advance(n, f, ceiling)
		}
		if f.count() >= n.mi {
			return true
		}
	}

	return false
}

// retry matches repetition k of n again from the end of f, ending anywhere but at r.first.
// The ends below r.first come first, highest first, then the ones above it. An empty
// repetition is only taken below the minimum.
func (m *matcher) retry(n *node, f *frame, r rep, k, ceiling int) bool {
	start := f.end
	hi := m.upper(n, start, ceiling)

	for c := r.next; c != r.first; c-- {
		if c < start {
			if r.first >= hi {
				return false
			}
			c = hi
		}
		if c == start && k >= n.mi {
			continue
		}
		if _, ok := m.matchNode(n, start, c, true); ok {
			r.consumed, r.next = c-start, c-1
			f.push(r)
			return true
		}
		m.undo(r.mark)
	}

	return false
}

// upper is the highest end one repetition of n from start can reach below ceiling
func (m *matcher) upper(n *node, start, ceiling int) int {
	if w := m.width(n); w >= 0 && start+w < ceiling {
		return start + w
	}
	return ceiling
}

// width is the most characters one repetition of n can consume, -1 when it is unbounded.
func (m *matcher) width(n *node) int {
	if w, ok := m.widths[n]; ok {
		return w
	}

	w := 0
	switch s := n.state.(type) {
	case *leafState:
		if !s.zeroWidth() {
			w = 1
		}
	case *choiceState:
		left, right := m.total(s.left), m.total(s.right)
		if left < 0 || right < 0 {
			w = -1
		} else {
			w = max(left, right)
		}
	case *groupState:
		for _, c := range s.children {
			t := m.total(c)
			if t < 0 {
				w = -1
				break
			}
			w += t
		}
	}

	if m.widths == nil {
		m.widths = make(map[*node]int)
	}
	m.widths[n] = w
	return w
}

// total is the width of all repetitions of n
func (m *matcher) total(n *node) int {
	w := m.width(n)
	switch {
	case w == 0:
		return 0
	case w < 0, n.ma == unbounded, n.ma > maxWidth/w:
		return -1
	}
	return w * n.ma
}

// search tries a left anchored match at every offset from `from` up to len(text).
func (m *matcher) search(root *node, from int) (start, end int, ok bool) {
	for off := from; off <= len(m.text); off++ {
		m.undo(0)
		if end, ok := m.matchNode(root, off, len(m.text), false); ok {
			return off, end, true
		}
	}
	return 0, 0, false
}

// submatches collects the newest record of every group, newest first. The root group
// finishes last, so the whole match leads.
func (m *matcher) submatches() []Submatch {
	seen := make(map[int]bool)
	var out []Submatch
	for i := len(m.log) - 1; i >= 0; i-- {
		sm := m.log[i]
		if seen[sm.GroupID] {
			continue
		}
		seen[sm.GroupID] = true
		sm.Str = string(m.text[sm.Start:sm.End])
		out = append(out, sm)
	}
	return out
}
