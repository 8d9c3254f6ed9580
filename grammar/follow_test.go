package grammar

import "testing"

func TestComputeFollow(t *testing.T) {
	g := New()
	g.AddProduction("E", []string{"E", "+", "T"})
	g.AddProduction("E", []string{"T"})
	g.AddProduction("T", []string{"T", "*", "F"})
	g.AddProduction("T", []string{"F"})
	g.AddProduction("F", []string{"(", "E", ")"})
	g.AddProduction("F", []string{"id"})
	g.augment()

	fst, err := computeFirst(g.prods, g.terminals, g.nonterminals, 0, false)
	if err != nil {
		t.Fatalf("FIRST failed: %v", err)
	}
	flw, err := computeFollow(g.prods, fst, g.augmentedLHS, g.nonterminals, 0, false)
	if err != nil {
		t.Fatalf("FOLLOW failed: %v", err)
	}

	if !flw.Contains(g.augmentedLHS, EOF) {
		t.Errorf("FOLLOW(%v) must contain $", g.augmentedLHS)
	}
	for _, want := range []Symbol{"+", ")", EOF} {
		if !flw.Contains("E", want) {
			t.Errorf("FOLLOW(E) missing %v", want)
		}
	}
	for _, want := range []Symbol{"*", "+", ")", EOF} {
		if !flw.Contains("T", want) {
			t.Errorf("FOLLOW(T) missing %v", want)
		}
	}
}
