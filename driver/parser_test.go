package driver_test

import (
	"context"
	"testing"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammar"
	"github.com/nihei9/vglr/grammars"
)

func build(t *testing.T, g *grammar.Grammar) *driver.Parser {
	t.Helper()
	if err := g.Build(); err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return driver.NewParser(g)
}

// S → a S | a over "a a a $" yields exactly one tree whose leaves are
// [a, a, a]: the grammar is unambiguous, so the GLR fork never splits.
func TestParseUnambiguousRepetition(t *testing.T) {
	g, tok := grammars.Simple()
	p := build(t, g)

	toks, err := tok("a a a")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree for an unambiguous grammar, got %v", len(trees))
	}

	var values []string
	for _, leaf := range trees[0].Leaves() {
		values = append(values, leaf.Value)
	}
	if len(values) != 3 || values[0] != "a" || values[1] != "a" || values[2] != "a" {
		t.Fatalf("expected leaves [a,a,a], got %v", values)
	}
}

// render(parse("1 + 2 * 3")[0]) round-trips back to the source text.
func TestParseArithmeticRoundTrip(t *testing.T) {
	g, tok := grammars.Arithmetic()
	p := build(t, g)

	toks, err := tok("1 + 2 * 3")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree, got %v", len(trees))
	}

	rendered := driver.Render(trees[0])
	if rendered != "1 + 2 * 3" {
		t.Fatalf("round-trip failed: got %q", rendered)
	}
}

// Grouping is preserved through parens.
func TestParseArithmeticGrouping(t *testing.T) {
	g, tok := grammars.Arithmetic()
	p := build(t, g)

	toks, err := tok("( 1 + 2 ) * 3")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree, got %v", len(trees))
	}
	if trees[0].Symbol != "E" {
		t.Fatalf("expected root symbol E, got %v", trees[0].Symbol)
	}
}

// The Lua-subset grammar accepts a local declaration with a root of
// chunk.
func TestParseLuaLocalDecl(t *testing.T) {
	g, tok := grammars.LuaSubset()
	p := build(t, g)

	toks, err := tok("local x = 10")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) == 0 {
		t.Fatal("expected at least one tree")
	}
	if trees[0].Symbol != "chunk" {
		t.Fatalf("expected root symbol chunk, got %v", trees[0].Symbol)
	}
}

// The ambiguous expression grammar produces at least two distinct
// trees for "id + id * id".
func TestParseAmbiguousExprForksMultipleTrees(t *testing.T) {
	g, tok := grammars.AmbiguousExpr()
	p := build(t, g)

	toks, err := tok("1 + 2 * 3")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) < 2 {
		t.Fatalf("expected at least 2 distinct trees for an ambiguous grammar, got %v", len(trees))
	}
}

// Left-recursive grammar parses left-associatively.
func TestParseLeftRecursionIsLeftAssociative(t *testing.T) {
	g := grammar.New()
	g.AddProduction("E", []string{"E", "+", "T"})
	g.AddProduction("E", []string{"T"})
	g.AddProduction("T", []string{"id"})
	p := build(t, g)

	toks := []driver.Token{
		{Symbol: "id", Value: "a"},
		{Symbol: "+", Value: "+"},
		{Symbol: "id", Value: "b"},
		{Symbol: "+", Value: "+"},
		{Symbol: "id", Value: "c"},
		driver.EOFToken(),
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree, got %v", len(trees))
	}

	root := trees[0]
	if len(root.Children) != 3 {
		t.Fatalf("expected E -> E + T shape at the root, got %v children", len(root.Children))
	}
	left := root.Children[0]
	if left.Symbol != "E" || len(left.Children) != 3 {
		t.Fatalf("expected ((a+b)+c): left child must itself be E -> E + T, got %v", left)
	}
}

// Epsilon production reduces without popping frames and inserts a
// nonterminal with empty children.
func TestParseEpsilonProduction(t *testing.T) {
	g := grammar.New()
	g.AddProduction("S", []string{"A", "b"})
	g.AddProduction("A", []string{})
	p := build(t, g)

	toks := []driver.Token{
		{Symbol: "b", Value: "b"},
		driver.EOFToken(),
	}
	trees, err := p.Parse(context.Background(), toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree, got %v", len(trees))
	}
	a := trees[0].Children[0]
	if a.Symbol != "A" || len(a.Children) != 0 {
		t.Fatalf("expected A to be an empty-children nonterminal, got %v", a)
	}
}

// Truncated input either errors or recovers with a fallback tree
// containing an error placeholder.
func TestParseTruncatedInputErrorsOrFallsBack(t *testing.T) {
	g, tok := grammars.Arithmetic()
	p := build(t, g)

	toks, err := tok("1 +")
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	trees, perr := p.Parse(context.Background(), toks)
	if perr == nil && len(trees) == 0 {
		t.Fatal("truncated input must either error or return a fallback tree")
	}
}
