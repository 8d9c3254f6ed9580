package grammar

import "fmt"

// Grammar stores productions in insertion order and computes FIRST,
// FOLLOW, and the LR(1) automaton on demand.
//
// Ceilings bound the fixed-point/worklist phases; zero means "use the
// documented minimum default". RecoveryTokens is the configurable
// synchronizing-token set consulted during panic-mode recovery.
type Grammar struct {
	Verbose bool

	FirstCeiling     int
	FollowCeiling    int
	ClosureCeiling   int
	AutomatonCeiling int
	RecoveryTokens   map[Symbol]struct{}

	// Precedence holds advisory, documentation-only precedence/
	// associativity tags keyed by user-production index (0-based,
	// before the augmented production is prepended). The GLR runtime
	// never consults it; describe surfaces it instead.
	Precedence map[int]string

	userProds    []*Production
	prods        *productionSet
	terminals    map[Symbol]struct{}
	nonterminals map[Symbol]struct{}
	start        Symbol
	augmentedLHS Symbol

	first  *firstSet
	follow *followSet
	Aut    *Automaton

	built bool
}

// defaultRecoveryTokens is the minimum synchronizing set panic-mode
// recovery falls back to when a grammar doesn't configure its own.
func defaultRecoveryTokens() map[Symbol]struct{} {
	m := map[Symbol]struct{}{}
	for _, t := range []Symbol{";", "end", "else", "elseif", "until", EOF, ")", "}", "]"} {
		m[t] = struct{}{}
	}
	return m
}

// New creates an empty grammar with the spec-documented recovery
// tokens and default ceilings.
func New() *Grammar {
	return &Grammar{
		prods:          newProductionSet(),
		terminals:      map[Symbol]struct{}{},
		nonterminals:   map[Symbol]struct{}{},
		RecoveryTokens: defaultRecoveryTokens(),
		Precedence:     map[int]string{},
	}
}

// AddProduction appends a production. The first call fixes the start
// symbol. A symbol previously classified terminal is reclassified
// nonterminal the first time it appears as an LHS; RHS symbols not yet
// seen as an LHS are provisionally classified terminal.
func (g *Grammar) AddProduction(lhs string, rhs []string) {
	lhsSym := Symbol(lhs)
	if g.start == "" {
		g.start = lhsSym
	}

	delete(g.terminals, lhsSym)
	g.nonterminals[lhsSym] = struct{}{}

	rhsSyms := make([]Symbol, len(rhs))
	for i, s := range rhs {
		sym := Symbol(s)
		rhsSyms[i] = sym
		if _, isNT := g.nonterminals[sym]; !isNT {
			g.terminals[sym] = struct{}{}
		}
	}

	g.userProds = append(g.userProds, newProduction(lhsSym, rhsSyms))
	g.built = false
}

// Terminals returns the grammar's terminal symbols.
func (g *Grammar) Terminals() map[Symbol]struct{} {
	return g.terminals
}

// Nonterminals returns the grammar's nonterminal symbols.
func (g *Grammar) Nonterminals() map[Symbol]struct{} {
	return g.nonterminals
}

func (g *Grammar) ProductionsFor(lhs Symbol) []*Production {
	if g.built {
		return g.prods.productionsFor(lhs)
	}
	var out []*Production
	for _, p := range g.userProds {
		if p.LHS == lhs {
			out = append(out, p)
		}
	}
	return out
}

func (g *Grammar) Production(idx int) *Production {
	return g.prods.get(idx)
}

// NumUserProductions returns the count of productions added via
// AddProduction, excluding the synthesized augmented production.
func (g *Grammar) NumUserProductions() int {
	return len(g.userProds)
}

func (g *Grammar) StartSymbol() Symbol {
	return g.start
}

// First returns FIRST(sym). Build must have succeeded first.
func (g *Grammar) First(sym Symbol) map[Symbol]struct{} {
	if g.first == nil {
		return nil
	}
	return g.first.entry(sym).symbols
}

// FollowContains reports whether sym is in FOLLOW(nt). Build must have
// succeeded first.
func (g *Grammar) FollowContains(nt, sym Symbol) bool {
	if g.follow == nil {
		return false
	}
	return g.follow.Contains(nt, sym)
}

// Build computes FIRST, FOLLOW, and the LR(1) automaton. It is
// idempotent: a second call is a no-op unless a production was added
// since the last build.
func (g *Grammar) Build() error {
	if g.built {
		return nil
	}
	if g.start == "" {
		return &BuildError{Cause: fmt.Errorf("grammar has no productions")}
	}

	g.augment()

	fst, err := computeFirst(g.prods, g.terminals, g.nonterminals, g.FirstCeiling, g.Verbose)
	if err != nil {
		return err
	}
	g.first = fst

	flw, err := computeFollow(g.prods, g.first, g.augmentedLHS, g.nonterminals, g.FollowCeiling, g.Verbose)
	if err != nil {
		return err
	}
	g.follow = flw

	aut := newAutomaton(g)
	if err := aut.build(0, g.ClosureCeiling, g.AutomatonCeiling, g.Verbose); err != nil {
		return &BuildError{Cause: err}
	}
	g.Aut = aut
	g.built = true
	return nil
}

// augment rebuilds the production set from the user's productions with
// the synthesized augmented production S' → S prepended at index 0. It
// rebuilds from userProds each time so that Build stays idempotent
// even if it runs more than once.
func (g *Grammar) augment() {
	g.augmentedLHS = augment(g.start)
	g.nonterminals[g.augmentedLHS] = struct{}{}

	rebuilt := newProductionSet()
	rebuilt.append(newProduction(g.augmentedLHS, []Symbol{g.start}))
	for _, p := range g.userProds {
		rebuilt.append(p)
	}
	g.prods = rebuilt
}
