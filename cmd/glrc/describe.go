package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nihei9/vglr/glr"
	"github.com/nihei9/vglr/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <grammar-type>",
		Short:   "Print a grammar's FIRST/FOLLOW sets and automaton states",
		Example: `  glrc describe math`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrammar(args[0])
	if err != nil {
		return err
	}

	e := glr.NewEngine(g)
	e.Verbose = verbose
	if err := e.Build(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "productions:")
	for i := 0; i < g.NumUserProductions(); i++ {
		prod := g.Production(i + 1)
		line := fmt.Sprintf("  %v: %v", i, prod)
		if tag, ok := g.Precedence[i]; ok && tag != "" {
			line += fmt.Sprintf(" (%v)", tag)
		}
		fmt.Fprintln(os.Stdout, line)
	}

	terminals := g.Terminals()
	fmt.Fprintln(os.Stdout, "\nnonterminals:")
	for _, nt := range sortedSymbols(g.Nonterminals()) {
		first := g.First(nt)
		var follow []grammar.Symbol
		for _, t := range sortedSymbols(terminals) {
			if g.FollowContains(nt, t) {
				follow = append(follow, t)
			}
		}
		if g.FollowContains(nt, grammar.EOF) {
			follow = append(follow, grammar.EOF)
		}
		fmt.Fprintf(os.Stdout, "  %v: FIRST = %v, FOLLOW = %v\n", nt, sortedSymbolSet(first), follow)
	}

	fmt.Fprintln(os.Stdout, "\nautomaton:")
	for _, s := range g.Aut.States() {
		conflict := ""
		if s.HasConflict(terminals) {
			conflict = " (conflict)"
		}
		fmt.Fprintf(os.Stdout, "  state %v%v\n", s.ID, conflict)
		for _, sym := range sortedTransitionKeys(s.Transitions) {
			fmt.Fprintf(os.Stdout, "    --%v--> state %v\n", sym, s.Transitions[sym])
		}
	}

	return nil
}

func sortedSymbols(m map[grammar.Symbol]struct{}) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedSymbolSet(m map[grammar.Symbol]struct{}) []grammar.Symbol {
	return sortedSymbols(m)
}

func sortedTransitionKeys(m map[grammar.Symbol]int) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
