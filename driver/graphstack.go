package driver

import "github.com/emirpasic/gods/lists/arraylist"

// GraphStack is the active set of parse stacks processed in lock-step
// for one input token. Duplicate stacks (same state sequence) are
// collapsed. The backing arraylist.List is appended to during the
// reduction phase while it is being iterated — callers walk it by
// index via Len/At rather than an Iterator, so stacks appended
// mid-scan are visited later in the same phase.
type GraphStack struct {
	stacks *arraylist.List
	seen   map[string]bool
}

func newGraphStack() *GraphStack {
	return &GraphStack{
		stacks: arraylist.New(),
		seen:   map[string]bool{},
	}
}

func newGraphStackWith(s *Stack) *GraphStack {
	gs := newGraphStack()
	gs.Append(s)
	return gs
}

// Append adds s if no stack with the same frame-state signature is
// already present, returning whether it was added.
func (gs *GraphStack) Append(s *Stack) bool {
	sig := s.signature()
	if gs.seen[sig] {
		return false
	}
	gs.seen[sig] = true
	gs.stacks.Add(s)
	return true
}

func (gs *GraphStack) Len() int {
	return gs.stacks.Size()
}

func (gs *GraphStack) At(i int) *Stack {
	v, _ := gs.stacks.Get(i)
	return v.(*Stack)
}

// All returns every stack currently held, in append order.
func (gs *GraphStack) All() []*Stack {
	out := make([]*Stack, gs.Len())
	for i := range out {
		out[i] = gs.At(i)
	}
	return out
}
