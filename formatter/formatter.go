// Package formatter renders scanner output and compiled automata in a
// human-readable, optionally colored form. It is the diagnostics sink of
// the library: the CLI prints through it and nothing in here affects
// compilation or scanning.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/lexgen"
	"github.com/gnolang/lexgen/scanner"
)

var (
	errorStyle  = color.New(color.FgRed, color.Bold)
	eofStyle    = color.New(color.FgHiBlack)
	nameStyle   = color.New(color.FgYellow, color.Bold)
	fileStyle   = color.New(color.FgCyan, color.Bold)
	lineStyle   = color.New(color.FgHiBlue, color.Bold)
	lexemeStyle = color.New(color.FgGreen)
	stateStyle  = color.New(color.FgMagenta)
)

// FormatToken renders one token as
//
//	file:line:col  Name  "lexeme"
//
// using the grammar for token names; sentinel tokens render as <eof> and
// <error>.
func FormatToken(grammar *lexgen.Grammar, token scanner.Token) string {
	location := fmt.Sprintf("%s%s",
		fileStyle.Sprint(token.Range.Path),
		lineStyle.Sprintf(":%d:%d", token.Range.First.Line, token.Range.First.Column))

	switch token.Type {
	case scanner.TokenEOF:
		return fmt.Sprintf("%s  %s", location, eofStyle.Sprint("<eof>"))
	case scanner.TokenError:
		return fmt.Sprintf("%s  %s", location, errorStyle.Sprint("<error>"))
	}

	name := tokenName(grammar, token.Type)
	return fmt.Sprintf("%s  %s  %s",
		location,
		nameStyle.Sprint(name),
		lexemeStyle.Sprintf("%q", token.Lexeme))
}

// FormatTokens renders a token stream, one token per line.
func FormatTokens(grammar *lexgen.Grammar, tokens []scanner.Token) string {
	var builder strings.Builder
	for _, token := range tokens {
		builder.WriteString(FormatToken(grammar, token))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// FormatCompileError renders a compilation failure.
func FormatCompileError(err error) string {
	return fmt.Sprintf("%s %v", errorStyle.Sprint("error:"), err)
}

// DescribeTokens lists the token classes of a grammar in priority order.
func DescribeTokens(grammar *lexgen.Grammar) string {
	var builder strings.Builder
	for i, name := range grammar.TokenNames() {
		fmt.Fprintf(&builder, "%3d  %s\n", i, nameStyle.Sprint(name))
	}
	return builder.String()
}

// DescribeDFA dumps the automaton: every state with its classification and
// acceptance label, then every arc with its byte ranges.
func DescribeDFA(grammar *lexgen.Grammar) string {
	dfa := grammar.DFA()

	var builder strings.Builder
	fmt.Fprintf(&builder, "%d states, %d arcs\n",
		len(dfa.States()), len(dfa.Arcs()))

	for i := range dfa.States() {
		state := dfa.State(i)
		fmt.Fprintf(&builder, "%s", stateStyle.Sprintf("state %d", state.ID))
		if state.Start {
			builder.WriteString(" start")
		}
		switch {
		case state.IsError():
			builder.WriteString(errorStyle.Sprint(" error"))
		case state.IsAccepting():
			fmt.Fprintf(&builder, " accepts %s (type %d)",
				nameStyle.Sprint(tokenName(grammar, state.TokenType)), state.TokenType)
		}
		builder.WriteByte('\n')
	}

	for _, arc := range dfa.Arcs() {
		fmt.Fprintf(&builder, "  %d -> %d  %s\n", arc.Origin, arc.Target, arc.Set)
	}

	return builder.String()
}

// tokenName resolves a user token type back to its specification name.
// Distinct tokens may share a type; the accepting DFA state with the
// lowest id decides the name, which is not necessarily the token that
// comes first in the specification.
func tokenName(grammar *lexgen.Grammar, tokenType int32) string {
	dfa := grammar.DFA()
	for i := range dfa.States() {
		state := dfa.State(i)
		if state.IsAccepting() && state.TokenType == tokenType {
			if name := grammar.TokenName(state.TokenIndex); name != "" {
				return name
			}
		}
	}
	return fmt.Sprintf("type-%d", tokenType)
}
