// Package glr ties a grammar and a parser together behind one small
// facade so callers don't have to juggle the grammar and driver
// packages directly.
package glr

import (
	"context"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/grammar"
)

// Engine assembles a grammar's automaton and parses token streams
// against it.
type Engine struct {
	Verbose bool

	g *grammar.Grammar
	p *driver.Parser
}

// NewEngine wraps g. Parse calls Build itself if it has not run yet.
func NewEngine(g *grammar.Grammar) *Engine {
	return &Engine{g: g}
}

// Build computes FIRST/FOLLOW and the LR(1) automaton for the
// underlying grammar. It is idempotent: calling it again after adding
// productions rebuilds from scratch.
func (e *Engine) Build() error {
	e.g.Verbose = e.Verbose
	if err := e.g.Build(); err != nil {
		return err
	}
	e.p = driver.NewParser(e.g)
	e.p.Verbose = e.Verbose
	return nil
}

// Parse runs the GLR interpreter over tokens and returns every
// surviving parse tree. If Build has not run yet, Parse runs it first
// and returns its error, if any.
func (e *Engine) Parse(ctx context.Context, tokens []driver.Token) ([]*driver.Node, error) {
	if e.p == nil {
		if err := e.Build(); err != nil {
			return nil, err
		}
	}
	return e.p.Parse(ctx, tokens)
}

// Grammar exposes the underlying grammar, e.g. for a describe command
// that wants to print FIRST/FOLLOW sets or automaton states.
func (e *Engine) Grammar() *grammar.Grammar {
	return e.g
}
