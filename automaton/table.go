package automaton

import (
	"fmt"
	"io"
	"strings"
)

const alphabetSize = 256

// StaticTable is a DFA flattened into dense arrays: one transition per
// (state, byte) pair and one acceptance entry per state. It holds no
// references into the DFA it was built from and can be embedded into
// generated source as byte-string literals.
type StaticTable struct {
	Start       int32
	Error       int32
	Transitions []int32 // len(states) * 256, indexed state*256 + c
	Accepting   []int32 // len(states), token type or -1
}

// NewStaticTable flattens a finished DFA. Transitions default to the
// error state and acceptance entries to the error token type, then
// explicit arcs and accepting states overwrite their slots.
func NewStaticTable(d *DFA) StaticTable {
	stateCount := len(d.States())
	table := StaticTable{
		Start:       int32(d.StartState()),
		Error:       int32(d.ErrorState()),
		Transitions: make([]int32, stateCount*alphabetSize),
		Accepting:   make([]int32, stateCount),
	}

	for i := range table.Transitions {
		table.Transitions[i] = table.Error
	}
	for i := range table.Accepting {
		table.Accepting[i] = -1
	}

	for _, arc := range d.Arcs() {
		for c := 0; c <= 0xFF; c++ {
			if arc.Set.Contains(byte(c)) {
				table.Transitions[tableIndex(arc.Origin, byte(c))] = int32(arc.Target)
			}
		}
	}
	for i := range d.States() {
		state := d.State(i)
		if state.IsAccepting() {
			table.Accepting[state.ID] = state.TokenType
		}
	}

	return table
}

func tableIndex(state int, c byte) int { return state*alphabetSize + int(c) }

// The scanner driver capability set, table indexed. The table form does a
// single array lookup per byte and is what the runtime should prefer.

// StartState returns the start state id.
func (t *StaticTable) StartState() int { return int(t.Start) }

// ErrorState returns the error state id.
func (t *StaticTable) ErrorState() int { return int(t.Error) }

// NextState returns the state reached from state over the byte c.
func (t *StaticTable) NextState(state int, c byte) int {
	return int(t.Transitions[tableIndex(state, c)])
}

// IsAcceptingState reports whether the state accepts. Acceptance is
// encoded in the table as a non-negative token type.
func (t *StaticTable) IsAcceptingState(state int) bool {
	return t.AcceptingToken(state) >= 0
}

// IsErrorState reports whether the state is the error sink.
func (t *StaticTable) IsErrorState(state int) bool { return state == int(t.Error) }

// AcceptingToken returns the token type accepted by the state, or -1.
func (t *StaticTable) AcceptingToken(state int) int32 { return t.Accepting[state] }

// LoadStaticTable reconstructs a table from the literal form emitted by
// WriteGo. The byte strings hold little-endian int32 values.
func LoadStaticTable(start, errState int32, transitions, accepting string) StaticTable {
	return StaticTable{
		Start:       start,
		Error:       errState,
		Transitions: decodeInt32s(transitions),
		Accepting:   decodeInt32s(accepting),
	}
}

func decodeInt32s(s string) []int32 {
	out := make([]int32, len(s)/4)
	for i := range out {
		b0 := int32(s[i*4])
		b1 := int32(s[i*4+1])
		b2 := int32(s[i*4+2])
		b3 := int32(s[i*4+3])
		out[i] = b0 | b1<<8 | b2<<16 | b3<<24
	}
	return out
}

// WriteGo emits a Go source file declaring the table as a package-level
// variable, suitable for compile-time embedding of a scanner.
func (t *StaticTable) WriteGo(w io.Writer, pkg, name string) error {
	var b strings.Builder
	b.WriteString("// Code generated by lexgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/gnolang/lexgen/automaton\"\n\n")
	fmt.Fprintf(&b, "var %s = automaton.LoadStaticTable(\n", name)
	fmt.Fprintf(&b, "\t%d, %d,\n", t.Start, t.Error)
	writeByteLiteral(&b, t.Transitions)
	writeByteLiteral(&b, t.Accepting)
	b.WriteString(")\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeByteLiteral emits the int32 slice as concatenated \xHH string
// literals, 16 bytes per line.
func writeByteLiteral(b *strings.Builder, values []int32) {
	const perLine = 16

	raw := make([]byte, 0, len(values)*4)
	for _, v := range values {
		u := uint32(v)
		raw = append(raw, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
	}

	if len(raw) == 0 {
		b.WriteString("\t\"\",\n")
		return
	}

	for i := 0; i < len(raw); i += perLine {
		end := i + perLine
		if end > len(raw) {
			end = len(raw)
		}
		b.WriteString("\t\"")
		for _, c := range raw[i:end] {
			fmt.Fprintf(b, "\\x%02X", c)
		}
		b.WriteString("\"")
		if end < len(raw) {
			b.WriteString(" +\n")
		} else {
			b.WriteString(",\n")
		}
	}
}
