package automaton

import (
	"fmt"
	"strings"

	"github.com/gnolang/lexgen/charset"
)

// StateType classifies DFA states.
type StateType uint8

const (
	Invalid StateType = iota
	// ErrorState is the single sink state corresponding to the empty
	// NFA subset; no match can be extended from it.
	ErrorState
	// AcceptingState states carry the token that matched.
	AcceptingState
)

// Sentinel token types used throughout the scanner surface. User supplied
// token types should not collide with these.
const (
	// UnsetTokenType marks a DFA state whose token type has not been
	// filled in from the specification. Compile fills in every accepting
	// state; non-accepting states keep this value.
	UnsetTokenType int32 = -3
)

// DFAState is a node of the deterministic automaton. TokenIndex is the
// index of the accepted token in the specification (priority order),
// TokenType the user supplied type for that token.
type DFAState struct {
	ID         int
	Start      bool
	Type       StateType
	TokenIndex int32
	TokenType  int32
}

// IsAccepting reports whether the state accepts a token.
func (s *DFAState) IsAccepting() bool { return s.Type == AcceptingState }

// IsError reports whether the state is the error sink.
func (s *DFAState) IsError() bool { return s.Type == ErrorState }

// DFAArc is a directed edge labeled with the set of bytes it consumes.
// Between any ordered pair of states there is at most one arc.
type DFAArc struct {
	Origin int
	Target int
	Set    charset.Set
}

// DFA is a deterministic finite automaton. Every state has exactly one
// outgoing transition per byte; transitions not stored on an explicit arc
// lead to the unique error state.
type DFA struct {
	states []DFAState
	arcs   []DFAArc

	// next[s] is the fully expanded transition row of state s, filled
	// in by finish().
	next [][256]int32

	start int
	err   int
}

// NewState appends a fresh state and returns its id.
func (d *DFA) NewState() int {
	id := len(d.states)
	d.states = append(d.states, DFAState{ID: id, TokenIndex: -1, TokenType: UnsetTokenType})
	return id
}

// State returns a mutable reference to the state with the given id.
func (d *DFA) State(id int) *DFAState { return &d.states[id] }

// States returns the state list, indexed by id.
func (d *DFA) States() []DFAState { return d.states }

// Arcs returns the coalesced arc list.
func (d *DFA) Arcs() []DFAArc { return d.arcs }

// finish locates the unique start and error states and expands the arcs
// into per-state transition rows. Determinize calls it once the graph is
// complete.
func (d *DFA) finish() error {
	d.start, d.err = -1, -1
	for _, s := range d.states {
		if s.Start {
			if d.start >= 0 {
				return fmt.Errorf("dfa has more than one start state")
			}
			d.start = s.ID
		}
		if s.IsError() {
			if d.err >= 0 {
				return fmt.Errorf("dfa has more than one error state")
			}
			d.err = s.ID
		}
	}
	if d.start < 0 {
		return fmt.Errorf("dfa has no start state")
	}
	if d.err < 0 {
		// Every byte extends some match (e.g. a `.+` token), so the
		// empty subset never came up; totality still needs the sink.
		id := d.NewState()
		d.states[id].Type = ErrorState
		d.err = id
	}

	d.next = make([][256]int32, len(d.states))
	for i := range d.next {
		for c := 0; c < 256; c++ {
			d.next[i][c] = int32(d.err)
		}
	}
	for _, arc := range d.arcs {
		for c := 0; c <= 0xFF; c++ {
			if arc.Set.Contains(byte(c)) {
				d.next[arc.Origin][c] = int32(arc.Target)
			}
		}
	}
	return nil
}

// The methods below form the scanner driver capability set; a *DFA can
// drive a scanner directly by walking the graph.

// StartState returns the id of the start state.
func (d *DFA) StartState() int { return d.start }

// ErrorState returns the id of the error sink state.
func (d *DFA) ErrorState() int { return d.err }

// NextState returns the state reached from state over the byte c.
func (d *DFA) NextState(state int, c byte) int {
	return int(d.next[state][c])
}

// IsAcceptingState reports whether the given state accepts.
func (d *DFA) IsAcceptingState(state int) bool { return d.states[state].IsAccepting() }

// IsErrorState reports whether the given state is the error sink.
func (d *DFA) IsErrorState(state int) bool { return d.states[state].IsError() }

// AcceptingToken returns the token type accepted by the given state.
func (d *DFA) AcceptingToken(state int) int32 { return d.states[state].TokenType }

// String renders the automaton for debugging.
func (d *DFA) String() string {
	var b strings.Builder
	for i := range d.states {
		s := &d.states[i]
		fmt.Fprintf(&b, "state %d", s.ID)
		if s.Start {
			b.WriteString(" start")
		}
		switch s.Type {
		case ErrorState:
			b.WriteString(" error")
		case AcceptingState:
			fmt.Fprintf(&b, " accepting token %d type %d", s.TokenIndex, s.TokenType)
		}
		b.WriteByte('\n')
	}
	for _, a := range d.arcs {
		fmt.Fprintf(&b, "arc %d -> %d over %s\n", a.Origin, a.Target, a.Set)
	}
	return b.String()
}
