package main

import (
	"fmt"
	"io"

	"github.com/mfroeh/btre/regex"
)

type matchCmd struct {
	Pattern string   `arg:"" name:"pattern" help:"Regex pattern to match with" type:"string"`
	Texts   []string `arg:"" name:"text" help:"Texts to match"`
}

func (c *matchCmd) Run(g *Globals, out io.Writer) error {
	re, err := engine.Compile(c.Pattern, g.caseMode())
	if err != nil {
		return err
	}

	for _, text := range c.Texts {
		res := re.Match(text, g.All)
		if !res.Matched {
			fmt.Fprintf(out, "'%s' doesn't match\n", text)
			continue
		}

		fmt.Fprintf(out, "'%s' matches\n", text)
		if g.Groups {
			printGroups(out, []rune(re.FoldText(text)), res.Matches)
		}
	}

	return nil
}

func printGroups(out io.Writer, text []rune, matches [][]regex.Submatch) {
	fmt.Fprintf(out, "  %s\n", highlight(text, matches))
	for _, match := range matches {
		for _, sm := range match {
			fmt.Fprintf(out, "  %d %s [%d,%d) %q\n", sm.GroupID, sm.Name, sm.Start, sm.End, sm.Str)
		}
	}
}
