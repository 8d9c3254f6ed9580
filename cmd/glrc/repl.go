package main

import (
	"context"
	"fmt"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/glr"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <grammar-type>",
		Short:   "Run an interactive read-parse-print loop against a grammar",
		Example: `  glrc repl math`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	g, tok, err := resolveGrammar(args[0])
	if err != nil {
		return err
	}

	e := glr.NewEngine(g)
	e.Verbose = verbose
	if err := e.Build(); err != nil {
		return err
	}

	rl, err := readline.New("glrc> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("Type an input line and press enter. Ctrl-D to quit.")
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if line == "" {
			continue
		}

		toks, err := tok(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}

		trees, err := e.Parse(context.Background(), toks)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if len(trees) == 0 {
			pterm.Error.Println("no parse tree survived")
			continue
		}
		for i, tree := range trees {
			if len(trees) > 1 {
				pterm.Info.Printfln("tree %v:", i+1)
			}
			fmt.Println(driver.Render(tree))
		}
	}
	pterm.Info.Println("bye")
	return nil
}
