package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/mfroeh/btre/regex"
)

var submatchColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// highlight colours every match in text, matches must be ordered and not overlap
func highlight(text []rune, matches [][]regex.Submatch) string {
	out := strings.Builder{}
	lastMatchEnd := 0
	for _, match := range matches {
		out.WriteString(string(text[lastMatchEnd:match[0].Start]))
		out.WriteString(formatMatch(text, match))
		lastMatchEnd = match[0].End
	}
	out.WriteString(string(text[lastMatchEnd:]))
	return out.String()
}

// formatMatch prints the whole match in the first colour and every group in a colour of its own.
// Groups nested in an already coloured group keep the outer colour.
func formatMatch(text []rune, match []regex.Submatch) string {
	whole := match[0]
	groups := slices.Clone(match[1:])
	slices.SortFunc(groups, func(a, b regex.Submatch) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := strings.Builder{}
	cursor := whole.Start
	for _, sm := range groups {
		if sm.Start < cursor || sm.Start == sm.End {
			continue
		}
		submatchColors[0].Fprint(&out, string(text[cursor:sm.Start]))
		groupColor(sm.GroupID).Fprint(&out, sm.Str)
		cursor = sm.End
	}
	submatchColors[0].Fprint(&out, string(text[cursor:whole.End]))
	return out.String()
}

func groupColor(id int) *color.Color {
	return submatchColors[1+(id-1)%(len(submatchColors)-1)]
}
