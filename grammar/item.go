package grammar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Item is a canonical LR(1) item: a production reference, a dot
// position in [0, len(RHS)], and a set of terminal lookaheads that may
// follow the left-hand nonterminal when this item is reduced.
type Item struct {
	ProdIndex  int
	Dot        int
	Lookaheads map[Symbol]struct{}
	prod       *Production
}

func newItem(prodIndex int, prod *Production, dot int) *Item {
	return &Item{
		ProdIndex:  prodIndex,
		Dot:        dot,
		Lookaheads: map[Symbol]struct{}{},
		prod:       prod,
	}
}

// IsComplete reports whether the dot has reached the end of the RHS.
func (it *Item) IsComplete() bool {
	return it.Dot >= len(it.prod.RHS)
}

// NextSymbol returns the symbol immediately after the dot, if any.
func (it *Item) NextSymbol() (Symbol, bool) {
	if it.IsComplete() {
		return "", false
	}
	return it.prod.RHS[it.Dot], true
}

// Rest returns the symbols after the dotted symbol (β in A → α • X β).
func (it *Item) Rest() []Symbol {
	if it.IsComplete() {
		return nil
	}
	return it.prod.RHS[it.Dot+1:]
}

func (it *Item) advanced() *Item {
	n := newItem(it.ProdIndex, it.prod, it.Dot+1)
	for l := range it.Lookaheads {
		n.Lookaheads[l] = struct{}{}
	}
	return n
}

// mergeLookaheads adds src's lookaheads to it, returning whether
// anything changed.
func (it *Item) mergeLookaheads(src map[Symbol]struct{}) bool {
	changed := false
	for s := range src {
		if _, ok := it.Lookaheads[s]; !ok {
			it.Lookaheads[s] = struct{}{}
			changed = true
		}
	}
	return changed
}

// coreKey identifies an item ignoring its lookahead set: items with
// the same core are the same dotted position in the same production,
// and are merged (lookaheads unioned) rather than duplicated.
func (it *Item) coreKey() string {
	return strconv.Itoa(it.ProdIndex) + "." + strconv.Itoa(it.Dot)
}

// key is the full item key (production, dot, lookahead set) used as
// part of a state's canonical key.
func (it *Item) key() string {
	las := make([]string, 0, len(it.Lookaheads))
	for l := range it.Lookaheads {
		las = append(las, string(l))
	}
	sort.Strings(las)
	return it.coreKey() + "[" + strings.Join(las, ",") + "]"
}

func (it *Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v →", it.prod.LHS)
	for i, sym := range it.prod.RHS {
		if i == it.Dot {
			b.WriteString(" •")
		}
		fmt.Fprintf(&b, " %v", sym)
	}
	if it.IsComplete() {
		b.WriteString(" •")
	}
	las := make([]string, 0, len(it.Lookaheads))
	for l := range it.Lookaheads {
		las = append(las, string(l))
	}
	sort.Strings(las)
	fmt.Fprintf(&b, " {%v}", strings.Join(las, ","))
	return b.String()
}
