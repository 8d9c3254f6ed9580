package grammars

import (
	"fmt"
	"strings"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammar"
)

// ByName resolves one of the predefined grammar-type names the CLI
// accepts: "math", "simple", "lua", and "programming" (an alias for
// the deliberately ambiguous expression grammar, useful for exercising
// forking/merging from the command line). Names are matched
// case-insensitively.
func ByName(name string) (*grammar.Grammar, driver.Tokenizer, error) {
	switch strings.ToLower(name) {
	case "simple":
		g, tok := Simple()
		return g, tok, nil
	case "math", "arithmetic":
		g, tok := Arithmetic()
		return g, tok, nil
	case "lua":
		g, tok := LuaSubset()
		return g, tok, nil
	case "programming", "ambiguous":
		g, tok := AmbiguousExpr()
		return g, tok, nil
	default:
		return nil, nil, fmt.Errorf("unknown grammar type %q", name)
	}
}

// Names lists every predefined grammar-type name ByName accepts.
func Names() []string {
	return []string{"simple", "math", "lua", "programming"}
}
