package grammars

import (
	"fmt"
	"strings"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammar"
)

// Simple builds a minimal right-recursive grammar: S → a S | a. It
// is unambiguous, so |parse(input)| == 1 for any well-formed input.
func Simple() (*grammar.Grammar, driver.Tokenizer) {
	g := grammar.New()
	g.AddProduction("S", []string{"a", "S"})
	g.AddProduction("S", []string{"a"})
	return g, TokenizeWords
}

// TokenizeWords is the minimal whitespace-delimited tokenizer shared by
// the demo grammars whose terminals are single words, and the fallback
// tokenizer for YAML-loaded grammars that don't supply their own: every
// word is its own symbol and its own value.
func TokenizeWords(input string) ([]driver.Token, error) {
	var toks []driver.Token
	line := 1
	for _, rawLine := range strings.Split(input, "\n") {
		col := 1
		for _, word := range strings.Fields(rawLine) {
			toks = append(toks, driver.Token{Symbol: grammar.Symbol(word), Value: word, Line: line, Column: col})
			col += len(word) + 1
		}
		line++
	}
	toks = append(toks, driver.EOFToken())
	return toks, nil
}

// unmatchedInputError is a driver.TokenizerError raised by the
// demo tokenizers on unmatched input.
type unmatchedInputError struct {
	text string
	pos  int
}

func (e *unmatchedInputError) Error() string {
	return fmt.Sprintf("unmatched input at byte %v: %q", e.pos, e.text)
}

func (e *unmatchedInputError) Unmatched() string {
	return e.text
}
