package grammar

import (
	"os"

	verr "github.com/nihei9/vglr/error"
	"gopkg.in/yaml.v3"
)

// yamlProduction mirrors one production entry in a grammar-definition
// file: an LHS, an ordered RHS, and an optional advisory precedence
// tag that is documentation only — the GLR runtime never consults it.
type yamlProduction struct {
	LHS        string   `yaml:"lhs"`
	RHS        []string `yaml:"rhs"`
	Precedence string   `yaml:"precedence,omitempty"`
}

type yamlGrammar struct {
	Productions    []yamlProduction `yaml:"productions"`
	RecoveryTokens []string         `yaml:"recovery_tokens,omitempty"`
}

// LoadYAML decodes a grammar-definition file into a Grammar, in the
// declarative-config style the retrieval pack's pattyshack-si module
// uses gopkg.in/yaml.v3 for. Productions are added in file order, so
// the first entry's LHS fixes the start symbol exactly as
// AddProduction would.
func LoadYAML(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &BuildError{Cause: &verr.SpecError{Cause: err, FilePath: path, SourceName: path}}
	}

	var doc yamlGrammar
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &BuildError{Cause: &verr.SpecError{Cause: err, FilePath: path, SourceName: path}}
	}

	g := New()
	for i, p := range doc.Productions {
		g.AddProduction(p.LHS, p.RHS)
		if p.Precedence != "" {
			g.Precedence[i] = p.Precedence
		}
	}
	if len(doc.RecoveryTokens) > 0 {
		tokens := map[Symbol]struct{}{}
		for _, t := range doc.RecoveryTokens {
			tokens[Symbol(t)] = struct{}{}
		}
		g.RecoveryTokens = tokens
	}
	return g, nil
}
