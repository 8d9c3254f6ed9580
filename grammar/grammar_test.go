package grammar

import "testing"

func TestAddProductionFixesStartSymbol(t *testing.T) {
	g := New()
	g.AddProduction("expr", []string{"term"})
	g.AddProduction("term", []string{"id"})

	if g.StartSymbol() != "expr" {
		t.Errorf("expected start symbol to be the LHS of the first production, got %v", g.StartSymbol())
	}
}

func TestReclassificationOfLHSSymbol(t *testing.T) {
	g := New()
	g.AddProduction("S", []string{"A"})
	g.AddProduction("A", []string{"a"})

	if _, ok := g.Nonterminals()["A"]; !ok {
		t.Error("A must be reclassified nonterminal once it appears as an LHS")
	}
	if _, ok := g.Terminals()["A"]; ok {
		t.Error("A must no longer be classified as a terminal")
	}
	if _, ok := g.Terminals()["a"]; !ok {
		t.Error("a must remain classified as a terminal")
	}
}

func TestEpsilonProduction(t *testing.T) {
	g := New()
	g.AddProduction("S", []string{"A", "b"})
	g.AddProduction("A", []string{})

	prods := g.ProductionsFor("A")
	if len(prods) != 1 || !prods[0].IsEmpty() {
		t.Fatal("expected a single epsilon production for A")
	}
}
