package grammar

import "testing"

func TestComputeFirst(t *testing.T) {
	tests := []struct {
		caption string
		build   func(g *Grammar)
		checks  map[Symbol][]Symbol
	}{
		{
			caption: "arithmetic expression grammar with left recursion",
			build: func(g *Grammar) {
				g.AddProduction("E", []string{"E", "+", "T"})
				g.AddProduction("E", []string{"T"})
				g.AddProduction("T", []string{"T", "*", "F"})
				g.AddProduction("T", []string{"F"})
				g.AddProduction("F", []string{"(", "E", ")"})
				g.AddProduction("F", []string{"id"})
			},
			checks: map[Symbol][]Symbol{
				"E": {"(", "id"},
				"T": {"(", "id"},
				"F": {"(", "id"},
			},
		},
		{
			caption: "nullable production contributes epsilon",
			build: func(g *Grammar) {
				g.AddProduction("S", []string{"A", "b"})
				g.AddProduction("A", []string{"a"})
				g.AddProduction("A", []string{})
			},
			checks: map[Symbol][]Symbol{
				"S": {"a", "b"},
				"A": {"a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := New()
			tt.build(g)
			g.augment()
			fst, err := computeFirst(g.prods, g.terminals, g.nonterminals, 0, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for sym, want := range tt.checks {
				e := fst.entry(sym)
				for _, w := range want {
					if _, ok := e.symbols[w]; !ok {
						t.Errorf("FIRST(%v) missing %v; got %v", sym, w, e.symbols)
					}
				}
			}
		})
	}
}

func TestComputeFirstConvergesWithinDefaultCeiling(t *testing.T) {
	g := New()
	g.AddProduction("S", []string{"a"})
	g.augment()

	_, err := computeFirst(g.prods, g.terminals, g.nonterminals, 0, false)
	if err != nil {
		t.Fatalf("expected convergence for a finite grammar, got %v", err)
	}
}
