package grammar

import "fmt"

// Production is a pair (LHS, RHS). RHS may be empty (an epsilon
// production). Productions are identified by their position in a
// Grammar's production list, which is insertion order; index 0 is
// reserved for the synthesized augmented production S' → S.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

func newProduction(lhs Symbol, rhs []Symbol) *Production {
	return &Production{LHS: lhs, RHS: rhs}
}

// IsEmpty reports whether this is an epsilon production.
func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

func (p *Production) String() string {
	if p.IsEmpty() {
		return fmt.Sprintf("%v → ε", p.LHS)
	}
	s := fmt.Sprintf("%v →", p.LHS)
	for _, sym := range p.RHS {
		s += " " + string(sym)
	}
	return s
}

// productionSet stores productions in insertion order and indexes them
// by LHS for productionsFor lookups. Index 0 is always the augmented
// production once augment() has run.
type productionSet struct {
	all   []*Production
	byLHS map[Symbol][]*Production
}

func newProductionSet() *productionSet {
	return &productionSet{
		byLHS: map[Symbol][]*Production{},
	}
}

// append adds a production and returns its index.
func (ps *productionSet) append(p *Production) int {
	idx := len(ps.all)
	ps.all = append(ps.all, p)
	ps.byLHS[p.LHS] = append(ps.byLHS[p.LHS], p)
	return idx
}

func (ps *productionSet) get(idx int) *Production {
	return ps.all[idx]
}

func (ps *productionSet) indexOf(p *Production) int {
	for i, q := range ps.all {
		if q == p {
			return i
		}
	}
	return -1
}

func (ps *productionSet) productionsFor(lhs Symbol) []*Production {
	return ps.byLHS[lhs]
}

func (ps *productionSet) list() []*Production {
	return ps.all
}

func (ps *productionSet) len() int {
	return len(ps.all)
}
