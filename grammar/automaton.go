package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pterm/pterm"
)

// DefaultClosureIterationCeiling and DefaultAutomatonIterationCeiling
// bound closure fixed-point and automaton worklist construction,
// respectively, so a pathological grammar stops instead of looping
// forever. Hitting either sets HitClosureCeiling or HitAutomatonCeiling
// and, in verbose mode, prints a warning; the build still succeeds with
// the states constructed so far.
const (
	DefaultClosureIterationCeiling   = 200
	DefaultAutomatonIterationCeiling = 1000
)

// Automaton is the canonical LR(1) state graph: states with equal cores
// but differing lookaheads are kept distinct. States reference each
// other only by integer id, never by pointer, so the state pool can be
// a flat arena.
type Automaton struct {
	states              *treeset.Set // ordered by State.ID, for deterministic iteration
	byKey               map[string]*State
	g                   *Grammar
	HitClosureCeiling   bool
	HitAutomatonCeiling bool
}

func stateComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*State).ID, b.(*State).ID)
}

func newAutomaton(g *Grammar) *Automaton {
	return &Automaton{
		states: treeset.NewWith(stateComparator),
		byKey:  map[string]*State{},
		g:      g,
	}
}

// States returns every state, ordered by id.
func (a *Automaton) States() []*State {
	out := make([]*State, 0, a.states.Size())
	it := a.states.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*State))
	}
	return out
}

func (a *Automaton) State(id int) *State {
	var found *State
	it := a.states.Iterator()
	for it.Next() {
		s := it.Value().(*State)
		if s.ID == id {
			found = s
			break
		}
	}
	return found
}

// closure computes the closure of a seed item set: for every item
// A → α • B β {L} where B is a nonterminal, and every production
// B → γ, add B → • γ {FIRST(βL)} — merging lookaheads if the core item
// is already present — until a fixed point. When verbose, it logs each
// fixed-point pass and warns if the ceiling is hit.
func (a *Automaton) closure(seed []*Item, ceiling int, verbose bool) *State {
	if ceiling <= 0 {
		ceiling = DefaultClosureIterationCeiling
	}

	s := newState(-1)
	for _, it := range seed {
		s.addItem(it)
	}

	for i := 0; i < ceiling; i++ {
		changed := false
		for _, it := range append([]*Item{}, s.items...) {
			sym, ok := it.NextSymbol()
			if !ok {
				continue
			}
			if _, isNT := a.g.nonterminals[sym]; !isNT {
				continue
			}
			tail := it.Lookaheads
			la := a.g.first.OfSequence(it.Rest(), tail)
			for _, prod := range a.g.prods.productionsFor(sym) {
				pIdx := a.g.prods.indexOf(prod)
				newIt := newItem(pIdx, prod, 0)
				for l := range la {
					newIt.Lookaheads[l] = struct{}{}
				}
				if s.addItem(newIt) {
					changed = true
				}
			}
		}
		if verbose {
			pterm.Debug.Printfln("closure: iteration %v, %v items, changed=%v", i+1, len(s.items), changed)
		}
		if !changed {
			return s
		}
	}
	a.HitClosureCeiling = true
	if verbose {
		pterm.Warning.Printfln("closure: did not converge within %v iterations, state may be truncated", ceiling)
	}
	return s
}

// goto_ computes GOTO(s, sym): advance the dot past sym in every item
// of s whose next symbol is sym, then close the result.
func (a *Automaton) goto_(s *State, sym Symbol, ceiling int, verbose bool) *State {
	var advanced []*Item
	for _, it := range s.ItemsBefore(sym) {
		advanced = append(advanced, it.advanced())
	}
	return a.closure(advanced, ceiling, verbose)
}

// build runs the worklist algorithm: seed state 0 with the closure of
// {S' → • S, $}, then repeatedly compute GOTO for every distinct
// next-symbol of every popped state, reusing a state by canonical key
// when one already exists. When verbose, it logs state construction
// progress and the terminal-lookahead repair pass, and warns if the
// worklist ceiling is hit.
func (a *Automaton) build(startProdIndex int, closureCeiling, automatonCeiling int, verbose bool) error {
	if automatonCeiling <= 0 {
		automatonCeiling = DefaultAutomatonIterationCeiling
	}

	startProd := a.g.prods.get(startProdIndex)
	seedItem := newItem(startProdIndex, startProd, 0)
	seedItem.Lookaheads[EOF] = struct{}{}

	initial := a.closure([]*Item{seedItem}, closureCeiling, verbose)
	initial.ID = 0
	a.states.Add(initial)
	a.byKey[initial.key()] = initial
	if verbose {
		pterm.Debug.Printfln("automaton: created state 0 (initial)")
	}

	worklist := arraylist.New()
	worklist.Add(initial)

	steps := 0
	for cursor := 0; cursor < worklist.Size(); cursor++ {
		steps++
		if steps > automatonCeiling {
			a.HitAutomatonCeiling = true
			if verbose {
				pterm.Warning.Printfln("automaton: did not finish within %v worklist steps, automaton may be truncated", automatonCeiling)
			}
			break
		}

		v, _ := worklist.Get(cursor)
		cur := v.(*State)

		for _, sym := range cur.NextSymbols() {
			target := a.goto_(cur, sym, closureCeiling, verbose)
			if len(target.Items()) == 0 {
				continue
			}
			key := target.key()
			existing, ok := a.byKey[key]
			if ok {
				cur.Transitions[sym] = existing.ID
				continue
			}
			target.ID = a.states.Size()
			a.byKey[key] = target
			a.states.Add(target)
			worklist.Add(target)
			cur.Transitions[sym] = target.ID
			if verbose {
				pterm.Debug.Printfln("automaton: created state %v (from state %v via %v)", target.ID, cur.ID, sym)
			}
		}
	}

	a.repairTerminalLookaheads(verbose)
	return nil
}

// repairTerminalLookaheads is a mandatory post-pass: for each complete
// item A → t • where t is a single terminal, replace the item's
// lookahead set with FOLLOW(A). This repairs an observed
// under-approximation of the plain closure's lookahead computation for
// unit-terminal productions.
func (a *Automaton) repairTerminalLookaheads(verbose bool) {
	repaired := 0
	it := a.states.Iterator()
	for it.Next() {
		s := it.Value().(*State)
		for _, item := range s.CompleteItems() {
			prod := a.g.prods.get(item.ProdIndex)
			if len(prod.RHS) != 1 {
				continue
			}
			if _, isNT := a.g.nonterminals[prod.RHS[0]]; isNT {
				continue
			}
			follow := a.g.follow.entry(prod.LHS)
			newLookaheads := map[Symbol]struct{}{}
			for s := range follow.symbols {
				newLookaheads[s] = struct{}{}
			}
			if follow.eof {
				newLookaheads[EOF] = struct{}{}
			}
			item.Lookaheads = newLookaheads
			repaired++
		}
	}
	if verbose {
		pterm.Debug.Printfln("automaton: repaired lookaheads for %v unit-terminal items", repaired)
	}
}
