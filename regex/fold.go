package regex

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CaseMode selects how pattern and text are transformed before matching.
type CaseMode int

const (
	CaseSensitive CaseMode = iota
	// SimpleFold decomposes both strings (NFKD), lower-cases the pattern and case-folds the text.
	SimpleFold
	// FullCasefold decomposes and case-folds both strings.
	FullCasefold
)

func (c CaseMode) String() string {
	switch c {
	case CaseSensitive:
		return "none"
	case SimpleFold:
		return "simple"
	case FullCasefold:
		return "full"
	}
	return fmt.Sprintf("CaseMode(%d)", int(c))
}

// ParseCaseMode is the inverse of CaseMode.String.
func ParseCaseMode(s string) (CaseMode, error) {
	for _, c := range []CaseMode{CaseSensitive, SimpleFold, FullCasefold} {
		if c.String() == s {
			return c, nil
		}
	}
	return CaseSensitive, fmt.Errorf("unknown case mode %q", s)
}

func foldPattern(re string, mode CaseMode) string {
	switch mode {
	case SimpleFold:
		return cases.Lower(language.Und).String(norm.NFKD.String(re))
	case FullCasefold:
		return cases.Fold().String(norm.NFKD.String(re))
	}
	return re
}

func foldText(s string, mode CaseMode) string {
	if mode == CaseSensitive {
		return s
	}
	return cases.Fold().String(norm.NFKD.String(s))
}
