// Package lexgen is a lexer generator: it compiles a specification of
// named token classes, given as literal strings, regular expressions or
// hand-built NFAs, into a deterministic automaton driving a longest-match
// scanner.
//
// Typical use:
//
//	var spec lexgen.Specification
//	spec.AddLiteralToken(0, "Plus", []byte("+"))
//	spec.AddRegexToken(1, "Number", []byte("[0-9]+"))
//
//	grammar, err := lexgen.Compile(&spec)
//	if err != nil {
//		// malformed regex, invalid user automaton, ...
//	}
//
//	table := automaton.NewStaticTable(grammar.DFA())
//	s := scanner.New(&table)
//	s.Initialize("input.txt", data)
//	for s.HasNext() {
//		tok := s.Next()
//		// ...
//	}
//
// Token order is significant: when two tokens match the same longest
// prefix, the one added first wins.
package lexgen

import (
	"github.com/gnolang/lexgen/automaton"
)

// SpecKind discriminates how a token's pattern is interpreted.
type SpecKind uint8

const (
	KindInvalid SpecKind = iota
	// KindLiteral matches the pattern bytes exactly.
	KindLiteral
	// KindRegex compiles the pattern as a regular expression.
	KindRegex
	// KindNFA hands a fresh automaton to user code to populate.
	KindNFA
)

// BuildFunc populates an empty NFA for a KindNFA token. The finished
// automaton must be non-empty and carry exactly one start state.
type BuildFunc func(*automaton.NFA)

// TokenSpec describes one token class.
type TokenSpec struct {
	Kind      SpecKind
	TokenType int32
	Name      string
	Pattern   []byte
	Build     BuildFunc
}

// Specification is an ordered list of token classes. The zero value is
// ready for use. Index equals priority: on a tie the token with the
// smaller index wins.
type Specification struct {
	tokens []TokenSpec
}

// AddLiteralToken appends a token matching literal exactly.
func (s *Specification) AddLiteralToken(tokenType int32, name string, literal []byte) {
	s.tokens = append(s.tokens, TokenSpec{
		Kind:      KindLiteral,
		TokenType: tokenType,
		Name:      name,
		Pattern:   literal,
	})
}

// AddRegexToken appends a token matching the given regular expression.
func (s *Specification) AddRegexToken(tokenType int32, name string, regex []byte) {
	s.tokens = append(s.tokens, TokenSpec{
		Kind:      KindRegex,
		TokenType: tokenType,
		Name:      name,
		Pattern:   regex,
	})
}

// AddNFAToken appends a token whose automaton is built by user code.
func (s *Specification) AddNFAToken(tokenType int32, name string, build BuildFunc) {
	s.tokens = append(s.tokens, TokenSpec{
		Kind:      KindNFA,
		TokenType: tokenType,
		Name:      name,
		Build:     build,
	})
}

// Tokens returns the token classes in priority order.
func (s *Specification) Tokens() []TokenSpec { return s.tokens }
