package driver

import "github.com/nihei9/vglr/grammar"

// Token is a single lexical unit: a grammar symbol plus the raw text
// that produced it and, optionally, its source position.
type Token struct {
	Symbol grammar.Symbol
	Value  string
	Line   int
	Column int
}

// EOFToken returns the sentinel end-of-input token every tokenizer
// must append.
func EOFToken() Token {
	return Token{Symbol: grammar.EOF}
}

// Tokenizer turns input text into an ordered token stream terminated
// by an EOFToken. It is the engine's sole external collaborator for
// lexing: whitespace and comments are the tokenizer's responsibility
// to filter.
type Tokenizer func(input string) ([]Token, error)
