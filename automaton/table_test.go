package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/lexgen/charset"
)

// compileTestDFA builds a labeled DFA for the tests: token types equal token
// indices, the way Grammar finalization would assign them.
func compileTestDFA(t *testing.T, nfas ...*NFA) *DFA {
	t.Helper()
	dfa, err := Determinize(nfas)
	require.NoError(t, err)
	for i := range dfa.States() {
		state := dfa.State(i)
		if state.IsAccepting() {
			state.TokenType = state.TokenIndex
		}
	}
	return dfa
}

func TestStaticTableMatchesGraphDriver(t *testing.T) {
	t.Parallel()

	dfa := compileTestDFA(t,
		literalNFA("if"),
		setNFA(charset.Range('a', 'z')),
		literalNFA("+"),
	)
	table := NewStaticTable(dfa)

	assert.Equal(t, dfa.StartState(), table.StartState())
	assert.Equal(t, dfa.ErrorState(), table.ErrorState())

	for state := range dfa.States() {
		assert.Equal(t, dfa.IsAcceptingState(state), table.IsAcceptingState(state), "state %d", state)
		assert.Equal(t, dfa.IsErrorState(state), table.IsErrorState(state), "state %d", state)
		if dfa.IsAcceptingState(state) {
			assert.Equal(t, dfa.AcceptingToken(state), table.AcceptingToken(state))
		}
		for c := 0; c <= 0xFF; c++ {
			assert.Equal(t, dfa.NextState(state, byte(c)), table.NextState(state, byte(c)),
				"state %d byte %#x", state, c)
		}
	}
}

func TestStaticTableDefaults(t *testing.T) {
	t.Parallel()

	dfa := compileTestDFA(t, literalNFA("a"))
	table := NewStaticTable(dfa)

	require.Len(t, table.Transitions, len(dfa.States())*256)
	require.Len(t, table.Accepting, len(dfa.States()))

	// Non-accepting states carry the error sentinel.
	assert.Equal(t, int32(-1), table.Accepting[table.ErrorState()])
	assert.Equal(t, int32(-1), table.Accepting[table.StartState()])
}

func TestLoadStaticTableRoundTrip(t *testing.T) {
	t.Parallel()

	original := NewStaticTable(compileTestDFA(t, literalNFA("ab"), setNFA(charset.Range('0', '9'))))

	encode := func(values []int32) string {
		var b strings.Builder
		for _, v := range values {
			u := uint32(v)
			b.WriteByte(byte(u))
			b.WriteByte(byte(u >> 8))
			b.WriteByte(byte(u >> 16))
			b.WriteByte(byte(u >> 24))
		}
		return b.String()
	}

	loaded := LoadStaticTable(original.Start, original.Error,
		encode(original.Transitions), encode(original.Accepting))

	assert.Equal(t, original, loaded)
}

func TestLoadStaticTableNegativeValues(t *testing.T) {
	t.Parallel()

	// -1 acceptance entries must survive the byte round trip.
	loaded := LoadStaticTable(0, 1, "", "\xFF\xFF\xFF\xFF")
	require.Len(t, loaded.Accepting, 1)
	assert.Equal(t, int32(-1), loaded.Accepting[0])
}

func TestWriteGo(t *testing.T) {
	t.Parallel()

	table := NewStaticTable(compileTestDFA(t, literalNFA("a")))

	var b strings.Builder
	require.NoError(t, table.WriteGo(&b, "parser", "scannerTable"))
	source := b.String()

	assert.Contains(t, source, "// Code generated by lexgen. DO NOT EDIT.")
	assert.Contains(t, source, "package parser")
	assert.Contains(t, source, `import "github.com/gnolang/lexgen/automaton"`)
	assert.Contains(t, source, "var scannerTable = automaton.LoadStaticTable(")
	assert.Contains(t, source, `\x`)
}
