package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nihei9/vglr/driver"
	"github.com/nihei9/vglr/glr"
	"github.com/nihei9/vglr/grammar"
	"github.com/nihei9/vglr/grammars"
)

var parseFlags = struct {
	render *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar-type> <input-file> [output-file]",
		Short:   "Parse an input file with the GLR runtime and print the resulting trees",
		Example: `  glrc parse math expr.txt`,
		Args:    cobra.RangeArgs(2, 3),
		RunE:    runParse,
	}
	parseFlags.render = cmd.Flags().BoolP("render", "r", false, "render trees back to flat text instead of dumping their shape")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, tok, err := resolveGrammar(args[0])
	if err != nil {
		return err
	}

	src, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("cannot open input file %s: %w", args[1], err)
	}

	toks, err := tok(string(src))
	if err != nil {
		return fmt.Errorf("cannot tokenize input: %w", err)
	}

	e := glr.NewEngine(g)
	e.Verbose = verbose
	trees, err := e.Parse(context.Background(), toks)
	if err != nil {
		return err
	}
	if len(trees) == 0 {
		return fmt.Errorf("no parse tree survived for %s", args[1])
	}

	out := os.Stdout
	if len(args) == 3 {
		f, err := os.OpenFile(args[2], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("cannot open output file %s: %w", args[2], err)
		}
		defer f.Close()
		out = f
	}

	for i, tree := range trees {
		if len(trees) > 1 {
			fmt.Fprintf(out, "--- tree %v ---\n", i+1)
		}
		if *parseFlags.render {
			fmt.Fprintln(out, driver.Render(tree))
		} else {
			driver.Dump(out, tree)
		}
	}
	return nil
}

// resolveGrammar accepts either a predefined grammar-type name or the
// path to a YAML grammar file ending in .yaml/.yml.
func resolveGrammar(name string) (*grammar.Grammar, driver.Tokenizer, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		g, err := grammar.LoadYAML(name)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot load grammar file %s: %w", name, err)
		}
		return g, grammars.TokenizeWords, nil
	}
	return grammars.ByName(name)
}
