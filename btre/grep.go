package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfroeh/btre/regex"
)

type grepCmd struct {
	Pattern string   `arg:"" name:"pattern" help:"Regex pattern to use in search" type:"string"`
	Paths   []string `arg:"" optional:"" name:"path" help:"Paths to search" type:"path"`
}

type searcher struct {
	re       *regex.Regex
	out      io.Writer
	maxCount int
}

func (c *grepCmd) Run(g *Globals, out io.Writer) error {
	re, err := engine.Compile(c.Pattern, g.caseMode())
	if err != nil {
		return err
	}

	s := &searcher{re: re, out: out, maxCount: 1}
	if g.All {
		s.maxCount = -1
	}

	if len(c.Paths) == 0 {
		c.Paths = []string{"."}
	}

	for _, path := range c.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if info.IsDir() {
			err = s.searchDir(path)
		} else {
			err = s.searchFile(path)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (s *searcher) searchDir(path string) error {
	return filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// follows symlinks
		info, err := os.Stat(path)
		if err != nil {
			// broken symlinks are ignored
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}

		// symlink may resolve to a directory, in which case we just ignore it
		if info.IsDir() {
			return nil
		}

		return s.searchFile(path)
	})
}

func (s *searcher) searchFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	printFileHeader := false
	for i, line := range strings.Split(string(content), "\n") {
		matches := s.re.FindAllSubmatches(line, s.maxCount)
		if len(matches) == 0 {
			continue
		}

		if !printFileHeader {
			printFileHeader = true
			fmt.Fprintln(s.out, path, ":")
		}

		fmt.Fprintf(s.out, "%d:%s\n", i+1, highlight([]rune(s.re.FoldText(line)), matches))
	}

	if printFileHeader {
		fmt.Fprintln(s.out)
	}

	return nil
}
