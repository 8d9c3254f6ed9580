package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glrc",
	Short: "Build and run a generalized LR parser from a grammar",
	Long: `glrc provides four features:
- Builds the LR(1) automaton for a grammar and reports its states and conflicts.
- Parses an input file with the GLR runtime and prints the resulting trees.
- Describes a grammar's FIRST/FOLLOW sets and automaton.
- Runs an interactive read-parse-print loop against a grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic trace output")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
