package grammar

import "github.com/pterm/pterm"

// DefaultFollowIterationCeiling bounds the fixed-point iteration count
// for FOLLOW computation.
const DefaultFollowIterationCeiling = 100

type followEntry struct {
	symbols map[Symbol]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{symbols: map[Symbol]struct{}{}}
}

func (e *followEntry) add(sym Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if e.eof {
		return false
	}
	e.eof = true
	return true
}

func (e *followEntry) mergeSymbols(src map[Symbol]struct{}) bool {
	changed := false
	for s := range src {
		if e.add(s) {
			changed = true
		}
	}
	return changed
}

func (e *followEntry) mergeFollow(src *followEntry) bool {
	changed := e.mergeSymbols(src.symbols)
	if src.eof && e.addEOF() {
		changed = true
	}
	return changed
}

// followSet maps every nonterminal to its FOLLOW entry.
type followSet struct {
	set map[Symbol]*followEntry
}

func (flw *followSet) entry(sym Symbol) *followEntry {
	e, ok := flw.set[sym]
	if !ok {
		e = newFollowEntry()
		flw.set[sym] = e
	}
	return e
}

func (flw *followSet) Contains(nt Symbol, sym Symbol) bool {
	e, ok := flw.set[nt]
	if !ok {
		return false
	}
	if sym == EOF {
		return e.eof
	}
	_, ok = e.symbols[sym]
	return ok
}

// computeFollow runs the FOLLOW fixed point: FOLLOW(S) contains $; for
// A → α B β, FIRST(β)\{ε} ⊆ FOLLOW(B), and if β is nullable or absent,
// FOLLOW(A) ⊆ FOLLOW(B). When verbose, it logs each fixed-point pass
// and warns if the ceiling is hit.
func computeFollow(ps *productionSet, fst *firstSet, start Symbol, nonterminals map[Symbol]struct{}, ceiling int, verbose bool) (*followSet, error) {
	if ceiling <= 0 {
		ceiling = DefaultFollowIterationCeiling
	}

	flw := &followSet{set: map[Symbol]*followEntry{}}
	for nt := range nonterminals {
		flw.set[nt] = newFollowEntry()
	}
	flw.entry(start).addEOF()

	for i := 0; i < ceiling; i++ {
		changed := false
		for _, prod := range ps.list() {
			for pos, sym := range prod.RHS {
				if _, ok := nonterminals[sym]; !ok {
					continue
				}
				beta := prod.RHS[pos+1:]
				fstBeta := fst.OfSequence(beta, nil)
				e := flw.entry(sym)
				if e.mergeSymbols(fstBeta) {
					changed = true
				}
				betaNullable := true
				for _, b := range beta {
					if !fst.isNullable(b) {
						betaNullable = false
						break
					}
				}
				if betaNullable {
					if e.mergeFollow(flw.entry(prod.LHS)) {
						changed = true
					}
				}
			}
		}
		if verbose {
			pterm.Debug.Printfln("FOLLOW: iteration %v, changed=%v", i+1, changed)
		}
		if !changed {
			return flw, nil
		}
	}
	if verbose {
		pterm.Warning.Printfln("FOLLOW: did not converge within %v iterations", ceiling)
	}
	return nil, &GrammarError{Cause: errIterationCeiling("FOLLOW", ceiling)}
}
