package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/mfroeh/btre/regex"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	var cli CLI
	parser, err := newParser(&cli,
		kong.Writers(&out, &out),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit with status %d:\n%s", code, out.String()) }),
	)
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	ctx.BindTo(&out, (*io.Writer)(nil))

	err = ctx.Run(&cli.Globals)
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	tests := map[string]struct {
		givenArgs []string
		wantOut   string
	}{
		"default command": {
			givenArgs: []string{"abc", "xabcx", "zzz"},
			wantOut:   "'xabcx' matches\n'zzz' doesn't match\n",
		},
		"explicit command": {
			givenArgs: []string{"match", "^a+$", "aaa"},
			wantOut:   "'aaa' matches\n",
		},
		"groups": {
			givenArgs: []string{"match", "--groups", "a(b)", "xab"},
			wantOut: "'xab' matches\n" +
				"  xab\n" +
				"  0 RegEx [1,3) \"ab\"\n" +
				"  1 Group 1 [2,3) \"b\"\n",
		},
		"all matches": {
			givenArgs: []string{"--groups", "--all", "(?<d>[0-9])", "a1b2"},
			wantOut: "'a1b2' matches\n" +
				"  a1b2\n" +
				"  0 RegEx [1,2) \"1\"\n" +
				"  1 d [1,2) \"1\"\n" +
				"  0 RegEx [3,4) \"2\"\n" +
				"  1 d [3,4) \"2\"\n",
		},
		"ignore case": {
			givenArgs: []string{"--ignore-case=full", "STRASSE", "straße", "strase"},
			wantOut:   "'straße' matches\n'strase' doesn't match\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			gotOut, err := runCLI(t, tt.givenArgs...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}

			// then
			if d := cmp.Diff(tt.wantOut, gotOut); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestInvalidPattern(t *testing.T) {
	_, err := runCLI(t, "(a", "a")

	var perr *regex.Error
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want a *regex.Error", err)
	}
	if !errors.Is(err, regex.ErrUnterminatedGroup) {
		t.Errorf("got error %v, want %v", err, regex.ErrUnterminatedGroup)
	}
}

func TestGrepCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "foo bar\nnothing\nbar bar\n")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "xbar\n")
	writeFile(t, filepath.Join(dir, "sub", "c.txt"), "no match here\n")

	gotOut, err := runCLI(t, "grep", "--all", "b(a)r", dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	wantOut := filepath.Join(dir, "a.txt") + " :\n" +
		"1:foo bar\n" +
		"3:bar bar\n" +
		"\n" +
		filepath.Join(dir, "sub", "b.txt") + " :\n" +
		"1:xbar\n" +
		"\n"
	if d := cmp.Diff(wantOut, gotOut); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func TestGrepMissingPath(t *testing.T) {
	_, err := runCLI(t, "grep", "a", filepath.Join(t.TempDir(), "missing"))

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, os.ErrNotExist)
	}
}

func TestFormatMatch(t *testing.T) {
	color.NoColor = true
	re := regex.MustCompile("x((a)(b))?(c)")
	text := []rune("..xabc..")

	matches := re.FindAllSubmatches(string(text), -1)
	got := highlight(text, matches)

	if d := cmp.Diff("..xabc..", got); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
