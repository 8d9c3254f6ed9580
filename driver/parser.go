package driver

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/nihei9/vglr/grammar"
)

// DefaultMaxSteps bounds the number of token-steps the main loop will
// process, a safety net against pathological inputs analogous to the
// build-time iteration ceilings of grammar.Grammar.
const DefaultMaxSteps = 100000

// Parser is the GLR runtime: the parallel-stack interpreter that drives
// a built Grammar's automaton over a token stream. It is
// single-threaded and synchronous; a Parser may be reused across calls
// to Parse from the same goroutine, but must not be shared across a
// concurrent Parse call.
type Parser struct {
	g              *grammar.Grammar
	Verbose        bool
	MaxSteps       int
	RecoveryTokens map[grammar.Symbol]struct{}
}

// NewParser creates a Parser over an already-built Grammar.
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{
		g:              g,
		MaxSteps:       DefaultMaxSteps,
		RecoveryTokens: g.RecoveryTokens,
	}
}

// logf traces routine shift/reduce/accept decisions at debug level.
func (p *Parser) logf(format string, args ...interface{}) {
	if !p.Verbose {
		return
	}
	pterm.Debug.Println(fmt.Sprintf(format, args...))
}

// warnf flags conditions that should stand out from routine trace
// output, e.g. recovery and ceiling-exceeded events.
func (p *Parser) warnf(format string, args ...interface{}) {
	if !p.Verbose {
		return
	}
	pterm.Warning.Println(fmt.Sprintf(format, args...))
}

// Parse runs the main shift-reduce loop over tokens, which must end
// with a token whose Symbol is grammar.EOF. It returns the primary
// result list if non-empty, else the fallback list; if both are empty,
// it returns a *ParseError.
func (p *Parser) Parse(ctx context.Context, tokens []Token) ([]*Node, error) {
	maxSteps := p.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	active := newGraphStackWith(newStack())

	steps := 0
	for i := 0; i < len(tokens); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		steps++
		if steps > maxSteps {
			p.warnf("parse: exceeded maximum parse steps (%v), aborting", maxSteps)
			return nil, &ParseError{TokenIndex: i, Symbol: string(tokens[i].Symbol), Cause: fmt.Errorf("exceeded maximum parse steps (%v)", maxSteps)}
		}

		tok := tokens[i]
		p.reducePhase(active, tok.Symbol)

		if tok.Symbol == grammar.EOF {
			return p.collectResults(active)
		}

		next := p.shiftPhase(active, tok)

		if next.Len() == 0 {
			recovered, newIndex := p.recover(active, tokens, i)
			if recovered.Len() == 0 {
				return nil, &ParseError{
					TokenIndex: i,
					Symbol:     string(tok.Symbol),
					Line:       tok.Line,
					Column:     tok.Column,
					Cause:      fmt.Errorf("no viable shift for %q and recovery produced no active stacks", tok.Symbol),
				}
			}
			active = recovered
			i = newIndex - 1 // the outer loop's i++ will land on newIndex
			continue
		}

		active = next
	}

	return p.collectResults(active)
}

// reducePhase reduces every active stack against lookahead before any
// stack shifts. Reductions cascade against the same token: a stack
// appended to active during this phase is visited later in the same
// phase, via index-based iteration over the growing GraphStack.
//
// Lookahead relaxation: every complete item of the top state is
// attempted regardless of whether its lookahead set contains the
// current token. This is deliberate — it permits the reduction even
// when the lookahead check would reject it, to compensate for
// imperfect FOLLOW propagation in ambiguous or recursive grammars.
// Reductions made on a wrong guess simply fail to shift afterward and
// are pruned naturally.
func (p *Parser) reducePhase(active *GraphStack, lookahead grammar.Symbol) {
	for cursor := 0; cursor < active.Len(); cursor++ {
		s := active.At(cursor)
		top := s.Top()
		state := p.g.Aut.State(top.State)
		if state == nil {
			continue
		}

		for _, item := range state.CompleteItems() {
			prod := p.g.Production(item.ProdIndex)
			rhsLen := len(prod.RHS)
			if s.Len() < rhsLen+1 {
				continue
			}

			clone := s.Clone()
			popped := clone.PopN(rhsLen)
			children := make([]*Node, len(popped))
			for i, f := range popped {
				if f.Node == nil {
					children[i] = newErrorNode("")
				} else {
					children[i] = f.Node
				}
			}
			node := newNonterminalNode(prod.LHS, children)

			afterPop := clone.Top()
			afterState := p.g.Aut.State(afterPop.State)
			if afterState == nil {
				continue
			}
			target, ok := afterState.Transitions[prod.LHS]
			if !ok {
				continue
			}
			clone.Push(Frame{State: target, Node: node})

			if active.Append(clone) {
				p.logf("reduce: %v (lookahead %v) -> state %v", prod, lookahead, target)
			}
		}
	}
}

// shiftPhase advances every active stack whose top state has a
// transition on tok.Symbol, forking the active set when more than one
// stack can shift.
func (p *Parser) shiftPhase(active *GraphStack, tok Token) *GraphStack {
	next := newGraphStack()
	for _, s := range active.All() {
		state := p.g.Aut.State(s.Top().State)
		if state == nil {
			continue
		}
		target, ok := state.Transitions[tok.Symbol]
		if !ok {
			continue
		}
		clone := s.Clone()
		clone.Push(Frame{State: target, Node: newTerminalNode(tok.Symbol, tok.Value, tok.Line, tok.Column)})
		if next.Append(clone) {
			p.logf("shift: %v -> state %v", tok.Symbol, target)
		}
	}
	return next
}

// collectResults gathers accepted and fallback results: a stack
// accepts iff its top state's item-set contains S' → S •. Otherwise
// any stack of size >= 2 with a top node contributes to a fallback
// list.
func (p *Parser) collectResults(active *GraphStack) ([]*Node, error) {
	var primary, fallback []*Node
	for _, s := range active.All() {
		state := p.g.Aut.State(s.Top().State)
		if state == nil {
			continue
		}
		if p.accepts(state) {
			p.logf("accept: state %v", s.Top().State)
			primary = append(primary, s.Top().Node)
			continue
		}
		if s.Len() >= 2 && s.Top().Node != nil {
			fallback = append(fallback, s.Top().Node)
		}
	}
	if len(primary) > 0 {
		return primary, nil
	}
	if len(fallback) > 0 {
		return fallback, nil
	}
	return nil, &ParseError{Cause: fmt.Errorf("no stack accepted and no fallback was available")}
}

func (p *Parser) accepts(state *grammar.State) bool {
	for _, item := range state.CompleteItems() {
		if item.ProdIndex == 0 {
			return true
		}
	}
	return false
}
