package specfile

import (
	"github.com/alecthomas/participle/v2"

	"github.com/gnolang/lexgen"
)

// The line DSL: one rule per line, name, token type, kind, quoted
// pattern. Go-style // comments are allowed.
//
//	Plus   0 literal "+"
//	Number 1 regex   "[0-9]+"
type dslRule struct {
	Name    string `parser:"@Ident"`
	Type    int32  `parser:"@Int"`
	Kind    string `parser:"@('literal' | 'regex')"`
	Pattern string `parser:"@String"`
}

type dslFile struct {
	Rules []dslRule `parser:"@@*"`
}

var dslParser = participle.MustBuild[dslFile](participle.Unquote("String"))

// ParseRules parses the line DSL form.
func ParseRules(data string) (*lexgen.Specification, error) {
	file, err := dslParser.ParseString("", data)
	if err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(file.Rules))
	for _, r := range file.Rules {
		tokenType := r.Type
		rules = append(rules, Rule{
			Name:    r.Name,
			Kind:    r.Kind,
			Type:    &tokenType,
			Pattern: r.Pattern,
		})
	}
	return buildSpecification(rules)
}
