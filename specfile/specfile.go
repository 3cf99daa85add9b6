// Package specfile loads token specifications from rule files: a YAML
// form and a compact line-oriented DSL. Both produce the same
// lexgen.Specification, so the CLI accepts either.
package specfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnolang/lexgen"
)

// Rule is one token class in a rule file. Kind is "literal" or "regex";
// Type is the user token type and defaults to the rule's position when
// omitted.
type Rule struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Type    *int32 `yaml:"type"`
	Pattern string `yaml:"pattern"`
}

// Load reads a rule file, choosing the format by extension: .yaml/.yml
// for the YAML form, anything else for the line DSL.
func Load(path string) (*lexgen.Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseRules(string(data))
	}
}

// buildSpecification translates parsed rules into a specification,
// preserving order (and with it, priority).
func buildSpecification(rules []Rule) (*lexgen.Specification, error) {
	spec := &lexgen.Specification{}
	for i, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("rule %d: missing name", i)
		}

		tokenType := int32(i)
		if rule.Type != nil {
			tokenType = *rule.Type
		}
		if tokenType < 0 {
			return nil, fmt.Errorf("rule %q: token type %d collides with the sentinel range", rule.Name, tokenType)
		}

		switch rule.Kind {
		case "literal":
			spec.AddLiteralToken(tokenType, rule.Name, []byte(rule.Pattern))
		case "regex":
			spec.AddRegexToken(tokenType, rule.Name, []byte(rule.Pattern))
		default:
			return nil, fmt.Errorf("rule %q: unknown kind %q", rule.Name, rule.Kind)
		}
	}
	return spec, nil
}
