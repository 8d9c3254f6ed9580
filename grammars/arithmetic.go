package grammars

import (
	"unicode"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammar"
)

// Arithmetic builds the classic expression grammar with the usual
// +/* precedence baked into the production shape:
//
//	E → E + T | T
//	T → T * F | F
//	F → ( E ) | id
func Arithmetic() (*grammar.Grammar, driver.Tokenizer) {
	g := grammar.New()
	g.AddProduction("E", []string{"E", "+", "T"})
	g.AddProduction("E", []string{"T"})
	g.AddProduction("T", []string{"T", "*", "F"})
	g.AddProduction("T", []string{"F"})
	g.AddProduction("F", []string{"(", "E", ")"})
	g.AddProduction("F", []string{"id"})
	return g, tokenizeArithmetic
}

// AmbiguousExpr builds a deliberately ambiguous grammar:
// E → E + E | E * E | id. A deterministic LR(1) parser would conflict
// on it; the GLR runtime forks instead.
func AmbiguousExpr() (*grammar.Grammar, driver.Tokenizer) {
	g := grammar.New()
	g.AddProduction("E", []string{"E", "+", "E"})
	g.AddProduction("E", []string{"E", "*", "E"})
	g.AddProduction("E", []string{"id"})
	return g, tokenizeArithmetic
}

func tokenizeArithmetic(input string) ([]driver.Token, error) {
	var toks []driver.Token
	line, col := 1, 1
	runes := []rune(input)

	advance := func(r rune) {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			advance(r)
			i++
		case r == '+' || r == '*' || r == '(' || r == ')':
			toks = append(toks, driver.Token{Symbol: grammar.Symbol(string(r)), Value: string(r), Line: line, Column: col})
			advance(r)
			i++
		case unicode.IsDigit(r):
			start := i
			startCol := col
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				advance(runes[i])
				i++
			}
			val := string(runes[start:i])
			toks = append(toks, driver.Token{Symbol: "id", Value: val, Line: line, Column: startCol})
		default:
			return nil, &unmatchedInputError{text: string(r), pos: i}
		}
	}

	toks = append(toks, driver.EOFToken())
	return toks, nil
}
