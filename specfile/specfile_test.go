package specfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/lexgen"
)

const yamlRules = `
tokens:
  - name: Plus
    kind: literal
    pattern: "+"
  - name: Number
    kind: regex
    pattern: "[0-9]+"
  - name: Space
    kind: regex
    pattern: " +"
    type: 9
`

const dslRules = `
// calculator tokens
Plus   0 literal "+"
Number 1 regex   "[0-9]+"
Space  9 regex   " +"
`

func specTokens(t *testing.T, spec *lexgen.Specification) []lexgen.TokenSpec {
	t.Helper()
	require.NotNil(t, spec)
	return spec.Tokens()
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	spec, err := ParseYAML([]byte(yamlRules))
	require.NoError(t, err)

	tokens := specTokens(t, spec)
	require.Len(t, tokens, 3)

	assert.Equal(t, "Plus", tokens[0].Name)
	assert.Equal(t, lexgen.KindLiteral, tokens[0].Kind)
	assert.Equal(t, int32(0), tokens[0].TokenType)
	assert.Equal(t, []byte("+"), tokens[0].Pattern)

	assert.Equal(t, "Number", tokens[1].Name)
	assert.Equal(t, lexgen.KindRegex, tokens[1].Kind)
	assert.Equal(t, int32(1), tokens[1].TokenType)

	// Explicit type wins over the positional default.
	assert.Equal(t, int32(9), tokens[2].TokenType)
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	spec, err := ParseRules(dslRules)
	require.NoError(t, err)

	tokens := specTokens(t, spec)
	require.Len(t, tokens, 3)
	assert.Equal(t, "Number", tokens[1].Name)
	assert.Equal(t, lexgen.KindRegex, tokens[1].Kind)
	assert.Equal(t, []byte("[0-9]+"), tokens[1].Pattern)
	assert.Equal(t, int32(9), tokens[2].TokenType)
}

func TestFormsAgree(t *testing.T) {
	t.Parallel()

	fromYAML, err := ParseYAML([]byte(yamlRules))
	require.NoError(t, err)
	fromDSL, err := ParseRules(dslRules)
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Tokens(), fromDSL.Tokens())
}

func TestLoadDispatchesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlRules), 0o644))
	dslPath := filepath.Join(dir, "rules.lex")
	require.NoError(t, os.WriteFile(dslPath, []byte(dslRules), 0o644))

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	fromDSL, err := Load(dslPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Tokens(), fromDSL.Tokens())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRuleValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "tokens:\n  - kind: literal\n    pattern: x\n"},
		{"unknown kind", "tokens:\n  - name: X\n    kind: nfa\n    pattern: x\n"},
		{"negative type", "tokens:\n  - name: X\n    kind: literal\n    pattern: x\n    type: -1\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseYAML([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadedSpecCompiles(t *testing.T) {
	t.Parallel()

	spec, err := ParseRules(dslRules)
	require.NoError(t, err)

	grammar, err := lexgen.Compile(spec)
	require.NoError(t, err)

	name, ok := grammar.Simulate([]byte("123"))
	require.True(t, ok)
	assert.Equal(t, "Number", name)
}
