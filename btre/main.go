package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mfroeh/btre/regex"
)

// Globals are the flags shared by every command.
type Globals struct {
	Groups     bool   `help:"Print the whole match and the capturing groups of every match."`
	All        bool   `help:"Keep searching after the end of every match."`
	IgnoreCase string `enum:"none,simple,full" default:"none" help:"Case mode, one of none, simple or full."`
}

type CLI struct {
	Globals

	Match matchCmd `cmd:"" default:"withargs" help:"Report whether every text matches the pattern."`
	Grep  grepCmd  `cmd:"" help:"Recursively search files for lines matching the pattern."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("btre"),
		kong.Description("Matches texts and files against a backtracking regular expression."),
		kong.UsageOnError(),
	}, options...)...)
}

func main() {
	log.SetFlags(0)

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		log.Fatalf("failed to build the command line: %v", err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err = ctx.Run(&cli.Globals)

	var perr *regex.Error
	if errors.As(err, &perr) {
		log.Printf("invalid pattern: %v", err)
		os.Exit(2)
	}
	ctx.FatalIfErrorf(err)
}

var engine = regex.NewEngine(16)

func (g *Globals) caseMode() regex.CaseMode {
	// the enum tag has validated IgnoreCase already
	mode, _ := regex.ParseCaseMode(g.IgnoreCase)
	return mode
}
