package driver

import (
	"fmt"
	"io"

	"github.com/nihei9/vglr/grammar"
)

// Kind distinguishes the three parse-tree node variants.
type Kind int

const (
	KindTerminal Kind = iota
	KindNonterminal
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonterminal:
		return "nonterminal"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Node is the tagged parse-tree node variant: a Terminal carries a
// value and optional position; a Nonterminal carries a symbol and
// ordered children; an Error is a placeholder inserted when a
// reduction pops a frame with no attached node.
type Node struct {
	Kind     Kind
	Symbol   grammar.Symbol
	Value    string
	Line     int
	Column   int
	Children []*Node
}

func newTerminalNode(sym grammar.Symbol, value string, line, col int) *Node {
	return &Node{Kind: KindTerminal, Symbol: sym, Value: value, Line: line, Column: col}
}

func newErrorNode(value string) *Node {
	return &Node{Kind: KindError, Value: value}
}

func newNonterminalNode(sym grammar.Symbol, children []*Node) *Node {
	return &Node{Kind: KindNonterminal, Symbol: sym, Children: children}
}

// Leaves returns every terminal and error leaf under node, in order;
// concatenating them is what makes render.go's output round-trip back
// to the original input.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	if n.Kind != KindNonterminal {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Dump writes an indented symbol-per-line rendering of the tree to w,
// the plain (non --render) output format.
func Dump(w io.Writer, n *Node) {
	dump(w, n, "", "")
}

func dump(w io.Writer, n *Node, ruledLine, childPrefix string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindNonterminal:
		fmt.Fprintf(w, "%v%v\n", ruledLine, n.Symbol)
	case KindTerminal:
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, n.Symbol, n.Value)
	case KindError:
		fmt.Fprintf(w, "%v<error> %#v\n", ruledLine, n.Value)
	}

	num := len(n.Children)
	for i, c := range n.Children {
		var line, prefix string
		if i < num-1 {
			line = "├─ "
			prefix = "│  "
		} else {
			line = "└─ "
			prefix = "   "
		}
		dump(w, c, childPrefix+line, childPrefix+prefix)
	}
}
