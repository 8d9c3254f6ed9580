package grammars

import (
	"unicode"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammar"
)

// LuaSubset builds a small subset of Lua statement grammar, enough to
// parse local declarations, assignments, and if/while blocks whose
// keywords double as panic-mode synchronizing tokens. The tokenizer
// reserves elseif and until as keywords, but no production uses them:
//
//	chunk      → stat_list
//	stat_list  → stat_list stat | stat
//	stat       → local_decl | assign | if_stat | while_stat
//	local_decl → "local" name "=" expr
//	assign     → name "=" expr
//	if_stat    → "if" expr "then" stat_list "end"
//	         | "if" expr "then" stat_list "else" stat_list "end"
//	while_stat → "while" expr "do" stat_list "end"
//	expr       → name | number
func LuaSubset() (*grammar.Grammar, driver.Tokenizer) {
	g := grammar.New()
	g.AddProduction("chunk", []string{"stat_list"})
	g.AddProduction("stat_list", []string{"stat_list", "stat"})
	g.AddProduction("stat_list", []string{"stat"})
	g.AddProduction("stat", []string{"local_decl"})
	g.AddProduction("stat", []string{"assign"})
	g.AddProduction("stat", []string{"if_stat"})
	g.AddProduction("stat", []string{"while_stat"})
	g.AddProduction("local_decl", []string{"local", "name", "=", "expr"})
	g.AddProduction("assign", []string{"name", "=", "expr"})
	g.AddProduction("if_stat", []string{"if", "expr", "then", "stat_list", "end"})
	g.AddProduction("if_stat", []string{"if", "expr", "then", "stat_list", "else", "stat_list", "end"})
	g.AddProduction("while_stat", []string{"while", "expr", "do", "stat_list", "end"})
	g.AddProduction("expr", []string{"name"})
	g.AddProduction("expr", []string{"number"})
	return g, tokenizeLua
}

var luaKeywords = map[string]bool{
	"local": true, "if": true, "then": true, "else": true, "end": true,
	"while": true, "do": true, "elseif": true, "until": true,
}

func tokenizeLua(input string) ([]driver.Token, error) {
	var toks []driver.Token
	runes := []rune(input)
	line, col := 1, 1

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
		case r == '=':
			toks = append(toks, driver.Token{Symbol: "=", Value: "=", Line: line, Column: col})
			advance(r)
			i++
		case unicode.IsDigit(r):
			start, startCol := i, col
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				advance(runes[i])
				i++
			}
			toks = append(toks, driver.Token{Symbol: "number", Value: string(runes[start:i]), Line: line, Column: startCol})
		case unicode.IsLetter(r) || r == '_':
			start, startCol := i, col
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				advance(runes[i])
				i++
			}
			word := string(runes[start:i])
			sym := "name"
			if luaKeywords[word] {
				sym = word
			}
			toks = append(toks, driver.Token{Symbol: grammar.Symbol(sym), Value: word, Line: line, Column: startCol})
		default:
			return nil, &unmatchedInputError{text: string(r), pos: i}
		}
	}

	toks = append(toks, driver.EOFToken())
	return toks, nil
}
