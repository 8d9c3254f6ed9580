package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/vglr/glr"
	"github.com/nihei9/vglr/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:     "build <grammar-file>",
		Short:   "Build the LR(1) automaton for a grammar file and report its states and conflicts",
		Example: `  glrc build grammar.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, err := grammar.LoadYAML(args[0])
	if err != nil {
		return fmt.Errorf("cannot load grammar file %s: %w", args[0], err)
	}

	e := glr.NewEngine(g)
	e.Verbose = verbose
	if err := e.Build(); err != nil {
		return err
	}

	conflicts := 0
	terminals := g.Terminals()
	for _, s := range g.Aut.States() {
		if s.HasConflict(terminals) {
			conflicts++
		}
	}

	fmt.Fprintf(os.Stdout, "%v states, %v conflicts\n", len(g.Aut.States()), conflicts)
	return nil
}
