package grammar

import "github.com/pterm/pterm"

// DefaultFirstIterationCeiling bounds the fixed-point iteration count
// for FIRST computation.
const DefaultFirstIterationCeiling = 100

type firstEntry struct {
	symbols map[Symbol]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{symbols: map[Symbol]struct{}{}}
}

func (e *firstEntry) add(sym Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if e.empty {
		return false
	}
	e.empty = true
	return true
}

func (e *firstEntry) mergeExceptEmpty(src *firstEntry) bool {
	if src == nil {
		return false
	}
	changed := false
	for sym := range src.symbols {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

// firstSet maps every symbol to its FIRST entry. Terminals are seeded
// with {t} and never change; nonterminals are computed by fixed point.
type firstSet struct {
	set map[Symbol]*firstEntry
}

func (fst *firstSet) entry(sym Symbol) *firstEntry {
	e, ok := fst.set[sym]
	if !ok {
		e = newFirstEntry()
		fst.set[sym] = e
	}
	return e
}

// OfSequence computes FIRST(X1 X2 ... Xk) for an arbitrary symbol
// sequence, substituting L (the lookahead set passed by the caller) in
// place of FOLLOW-style continuation when the whole sequence is
// nullable. Used by item closure to compute FIRST(β L).
func (fst *firstSet) OfSequence(seq []Symbol, tail map[Symbol]struct{}) map[Symbol]struct{} {
	result := map[Symbol]struct{}{}
	allNullable := true
	for _, sym := range seq {
		e := fst.entry(sym)
		for s := range e.symbols {
			result[s] = struct{}{}
		}
		if !e.empty {
			allNullable = false
			break
		}
	}
	if allNullable {
		for s := range tail {
			result[s] = struct{}{}
		}
	}
	return result
}

func (fst *firstSet) isNullable(sym Symbol) bool {
	e, ok := fst.set[sym]
	return ok && e.empty
}

// computeFirst runs the FIRST fixed point over every production in ps.
// It returns a GrammarError if it fails to converge within ceiling
// iterations. When verbose, it logs each fixed-point pass and warns if
// the ceiling is hit.
func computeFirst(ps *productionSet, terminals, nonterminals map[Symbol]struct{}, ceiling int, verbose bool) (*firstSet, error) {
	if ceiling <= 0 {
		ceiling = DefaultFirstIterationCeiling
	}

	fst := &firstSet{set: map[Symbol]*firstEntry{}}
	for t := range terminals {
		e := newFirstEntry()
		e.add(t)
		fst.set[t] = e
	}
	for nt := range nonterminals {
		fst.set[nt] = newFirstEntry()
	}

	for i := 0; i < ceiling; i++ {
		changed := false
		for _, prod := range ps.list() {
			acc := fst.entry(prod.LHS)
			if prod.IsEmpty() {
				if acc.addEmpty() {
					changed = true
				}
				continue
			}
			allNullable := true
			for _, sym := range prod.RHS {
				e := fst.entry(sym)
				if acc.mergeExceptEmpty(e) {
					changed = true
				}
				if !e.empty {
					allNullable = false
					break
				}
			}
			if allNullable {
				if acc.addEmpty() {
					changed = true
				}
			}
		}
		if verbose {
			pterm.Debug.Printfln("FIRST: iteration %v, changed=%v", i+1, changed)
		}
		if !changed {
			return fst, nil
		}
	}
	if verbose {
		pterm.Warning.Printfln("FIRST: did not converge within %v iterations", ceiling)
	}
	return nil, &GrammarError{Cause: errIterationCeiling("FIRST", ceiling)}
}
