package driver_test

import (
	"context"
	"testing"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammars"
)

func TestRenderSpacingHeuristics(t *testing.T) {
	g, tok := grammars.Arithmetic()
	if err := g.Build(); err != nil {
		t.Fatalf("build error: %v", err)
	}
	p := driver.NewParser(g)

	toks, err := tok("1 + 2 * 3")
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

	got := driver.Render(trees[0])
	want := "1 + 2 * 3"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderNoSpaceBeforePunctuation(t *testing.T) {
	g, tok := grammars.Arithmetic()
	if err := g.Build(); err != nil {
		t.Fatalf("build error: %v", err)
	}
	p := driver.NewParser(g)

	toks, err := tok("( 1 + 2 ) * 3")
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

	got := driver.Render(trees[0])
	for i := 0; i+1 < len(got); i++ {
		if got[i] == ' ' && got[i+1] == ')' {
			t.Fatalf("rendered output must not have a space before a closing bracket: %q", got)
		}
	}
}
