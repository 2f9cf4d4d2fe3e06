package regex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRequiredLiterals(t *testing.T) {
	tests := map[string]struct {
		givenRe      string
		wantLiterals []string
	}{
		"literal run":            {givenRe: "abc", wantLiterals: []string{"abc"}},
		"longest run wins":       {givenRe: "a*bc.de", wantLiterals: []string{"bc"}},
		"anchors are skipped":    {givenRe: "^ab$", wantLiterals: []string{"ab"}},
		"optional group skipped": {givenRe: "(a)?b", wantLiterals: []string{"b"}},
		"alternation":            {givenRe: "x(ab|cd)y", wantLiterals: []string{"ab", "cd"}},
		"top level alternation":  {givenRe: "foo|bar", wantLiterals: []string{"foo", "bar"}},
		"quantified literal":     {givenRe: "a+", wantLiterals: []string{"a"}},
		"nothing required":       {givenRe: ".*"},
		"empty branch":           {givenRe: "a|"},
		"range only":             {givenRe: "[a-z]+"},
		"empty pattern":          {givenRe: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			re, err := Compile(tt.givenRe)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}

			// then
			gotLiterals, _ := requiredLiterals(re.root)
			if (re.prefilter != nil) != (len(gotLiterals) > 0) {
				t.Errorf("got prefilter %v for literals %q", re.prefilter != nil, gotLiterals)
			}
			if d := cmp.Diff(tt.wantLiterals, gotLiterals); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestPrefilterMightMatch(t *testing.T) {
	re := MustCompile("foo|bar")

	tests := map[string]struct {
		givenStr string
		want     bool
	}{
		"first literal":  {givenStr: "xxfooxx", want: true},
		"second literal": {givenStr: "bar", want: true},
		"neither":        {givenStr: "fobaz"},
		"empty":          {givenStr: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := re.prefilter.mightMatch([]rune(tt.givenStr))
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if matched := re.MatchString(tt.givenStr); matched != tt.want {
				t.Errorf("MatchString got %v, want %v", matched, tt.want)
			}
		})
	}
}
