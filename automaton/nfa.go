// Package automaton holds the finite automata of the lexer generator: the
// per-token NFAs, the subset-constructed DFA, and the flattened transition
// table the runtime scanner prefers.
//
// States and arcs live in slices owned by their automaton and refer to each
// other by insertion index. Graphs with back edges (Kleene loops) are much
// easier to hold by index than by pointer, and the index doubles as the
// stable state id the scanner driver works with.
package automaton

import (
	"fmt"
	"strings"

	"github.com/gnolang/lexgen/charset"
)

// ArcKind discriminates epsilon arcs from character arcs.
type ArcKind uint8

const (
	// Epsilon arcs are taken without consuming input; their Set is
	// ignored.
	Epsilon ArcKind = iota
	// Character arcs consume exactly one byte contained in their Set.
	Character
)

// NFAState is a node of a nondeterministic automaton.
type NFAState struct {
	ID        int
	Start     bool
	Accepting bool
}

// NFAArc is a directed edge between two NFA states, identified by index.
type NFAArc struct {
	Kind   ArcKind
	Origin int
	Target int
	Set    charset.Set
}

// NFA is a nondeterministic finite automaton under construction. The zero
// value is an empty automaton ready for use.
type NFA struct {
	states []NFAState
	arcs   []NFAArc
}

// NewState appends a fresh state and returns its id.
func (n *NFA) NewState() int {
	id := len(n.states)
	n.states = append(n.states, NFAState{ID: id})
	return id
}

// State returns a mutable reference to the state with the given id.
func (n *NFA) State(id int) *NFAState { return &n.states[id] }

// AddEpsilonArc connects origin to target without consuming input.
func (n *NFA) AddEpsilonArc(origin, target int) {
	n.arcs = append(n.arcs, NFAArc{Kind: Epsilon, Origin: origin, Target: target})
}

// AddCharacterArc connects origin to target over every byte in set.
func (n *NFA) AddCharacterArc(origin, target int, set charset.Set) {
	n.arcs = append(n.arcs, NFAArc{Kind: Character, Origin: origin, Target: target, Set: set})
}

// States returns the state list, indexed by id.
func (n *NFA) States() []NFAState { return n.states }

// Arcs returns the arc list in insertion order.
func (n *NFA) Arcs() []NFAArc { return n.arcs }

// IsEmpty reports whether the automaton has neither states nor arcs.
func (n *NFA) IsEmpty() bool { return len(n.states) == 0 && len(n.arcs) == 0 }

// StartState returns the id of the unique start state.
func (n *NFA) StartState() (int, error) {
	start := -1
	for _, s := range n.states {
		if !s.Start {
			continue
		}
		if start >= 0 {
			return -1, fmt.Errorf("automaton has more than one start state (%d and %d)", start, s.ID)
		}
		start = s.ID
	}
	if start < 0 {
		return -1, fmt.Errorf("automaton has no start state")
	}
	return start, nil
}

// String renders the automaton for debugging: one line per state and per
// arc, in insertion order.
func (n *NFA) String() string {
	var b strings.Builder
	for _, s := range n.states {
		fmt.Fprintf(&b, "state %d", s.ID)
		if s.Start {
			b.WriteString(" start")
		}
		if s.Accepting {
			b.WriteString(" accepting")
		}
		b.WriteByte('\n')
	}
	for _, a := range n.arcs {
		if a.Kind == Epsilon {
			fmt.Fprintf(&b, "arc %d -> %d over epsilon\n", a.Origin, a.Target)
		} else {
			fmt.Fprintf(&b, "arc %d -> %d over %s\n", a.Origin, a.Target, a.Set)
		}
	}
	return b.String()
}
