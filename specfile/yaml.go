package specfile

import (
	"gopkg.in/yaml.v3"

	"github.com/gnolang/lexgen"
)

// yamlFile is the YAML rule file shape:
//
//	tokens:
//	  - name: Plus
//	    kind: literal
//	    pattern: "+"
//	  - name: Number
//	    kind: regex
//	    pattern: "[0-9]+"
//	    type: 7
type yamlFile struct {
	Tokens []Rule `yaml:"tokens"`
}

// ParseYAML parses the YAML rule form.
func ParseYAML(data []byte) (*lexgen.Specification, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return buildSpecification(file.Tokens)
}
