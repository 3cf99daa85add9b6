package lexgen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gnolang/lexgen/automaton"
	"github.com/gnolang/lexgen/charset"
	"github.com/gnolang/lexgen/internal/regex"
)

// Compilation errors. Regex parse failures are wrapped with the offending
// token's name; use errors.Is with the exported kinds to distinguish them.
var (
	ErrInvalidUserAutomaton = errors.New("user code yielded an invalid automaton")
	ErrUnknownSpecKind      = errors.New("unknown token specification kind")

	ErrNonExhaustiveParse = regex.ErrNonExhaustive
	ErrExpectedGroupEnd   = regex.ErrExpectedGroupEnd
	ErrBadEscape          = regex.ErrBadEscape
	ErrBadHexDigit        = regex.ErrBadHexDigit
	ErrClassEscape        = regex.ErrClassEscape
	ErrUnterminatedClass  = regex.ErrUnterminatedClass
)

// Grammar is a compiled specification: the determinized automaton plus the
// token names in specification order. A Grammar is immutable after Compile
// and may be shared across goroutines.
type Grammar struct {
	dfa        *automaton.DFA
	tokenNames []string
}

// Compile builds the scanner automaton for a specification. The first
// failing token aborts the compilation.
func Compile(spec *Specification) (*Grammar, error) {
	return CompileWithLogger(spec, zap.NewNop())
}

// CompileWithLogger is Compile with debug logging of the intermediate
// automaton sizes.
func CompileWithLogger(spec *Specification, logger *zap.Logger) (*Grammar, error) {
	nfas := make([]*automaton.NFA, 0, len(spec.tokens))
	names := make([]string, 0, len(spec.tokens))

	for i := range spec.tokens {
		token := &spec.tokens[i]
		if token.TokenType < 0 {
			return nil, fmt.Errorf("token %q: token type %d collides with the sentinel range", token.Name, token.TokenType)
		}
		nfa, err := buildTokenNFA(token)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token.Name, err)
		}
		logger.Debug("built token automaton",
			zap.String("token", token.Name),
			zap.Int("states", len(nfa.States())),
			zap.Int("arcs", len(nfa.Arcs())))

		nfas = append(nfas, nfa)
		names = append(names, token.Name)
	}

	dfa, err := automaton.Determinize(nfas)
	if err != nil {
		return nil, err
	}

	// Subset construction labels accepting states with the token index;
	// resolve those to the user supplied token types.
	for i := range dfa.States() {
		state := dfa.State(i)
		if state.IsAccepting() {
			state.TokenType = spec.tokens[state.TokenIndex].TokenType
		}
	}

	logger.Debug("compiled grammar",
		zap.Int("tokens", len(spec.tokens)),
		zap.Int("dfaStates", len(dfa.States())),
		zap.Int("dfaArcs", len(dfa.Arcs())))

	return &Grammar{dfa: dfa, tokenNames: names}, nil
}

// buildTokenNFA constructs the per-token automaton with exactly one start
// and at least one accepting state.
func buildTokenNFA(token *TokenSpec) (*automaton.NFA, error) {
	switch token.Kind {
	case KindLiteral:
		nfa := &automaton.NFA{}
		current := nfa.NewState()
		nfa.State(current).Start = true
		for _, c := range token.Pattern {
			next := nfa.NewState()
			nfa.AddCharacterArc(current, next, charset.Singleton(c))
			current = next
		}
		nfa.State(current).Accepting = true
		return nfa, nil

	case KindRegex:
		node, err := regex.Parse(token.Pattern)
		if err != nil {
			return nil, err
		}
		nfa := &automaton.NFA{}
		regex.BuildNFA(nfa, node)
		return nfa, nil

	case KindNFA:
		nfa := &automaton.NFA{}
		if token.Build != nil {
			token.Build(nfa)
		}
		if nfa.IsEmpty() {
			return nil, ErrInvalidUserAutomaton
		}
		return nfa, nil

	default:
		return nil, ErrUnknownSpecKind
	}
}

// DFA returns the compiled automaton.
func (g *Grammar) DFA() *automaton.DFA { return g.dfa }

// TokenNames returns the token names in specification order.
func (g *Grammar) TokenNames() []string { return g.tokenNames }

// TokenName resolves a token index to its name; out-of-range indices
// yield "".
func (g *Grammar) TokenName(index int32) string {
	if index < 0 || int(index) >= len(g.tokenNames) {
		return ""
	}
	return g.tokenNames[index]
}

// Simulate runs the automaton over the whole input and returns the name
// of the accepting token, if any. It answers "does this entire input form
// exactly one token" and is mostly useful in tests and diagnostics.
func (g *Grammar) Simulate(input []byte) (string, bool) {
	index, ok := automaton.Simulate(g.dfa, input)
	if !ok {
		return "", false
	}
	return g.TokenName(index), true
}
