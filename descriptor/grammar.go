package descriptor

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarText is the descriptor grammar in EBNF.
//
//go:embed grammar.ebnf
var GrammarText string

// GrammarStart is the production every other production is reachable from.
const GrammarStart = "Descriptor"

// Grammar parses and verifies GrammarText.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(GrammarText))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
