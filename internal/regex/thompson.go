package regex

import (
	"github.com/gnolang/lexgen/automaton"
)

// BuildNFA translates the AST into a Thompson NFA inside the given
// automaton. The resulting fragment has exactly one start and one
// accepting state; inner fragments created during recursion have their
// start/accepting flags cleared so only the outermost pair survives.
func BuildNFA(a *automaton.NFA, n *Node) {
	buildFragment(a, n)
}

type fragment struct {
	start int
	end   int
}

// dropConfig clears the start/accepting marks of an inner fragment.
func dropConfig(a *automaton.NFA, f fragment) {
	a.State(f.start).Start = false
	a.State(f.end).Accepting = false
}

func buildFragment(a *automaton.NFA, n *Node) fragment {
	start := a.NewState()
	a.State(start).Start = true
	end := a.NewState()
	a.State(end).Accepting = true

	switch n.Op {
	case OpAtom:
		a.AddCharacterArc(start, end, n.Set)

	case OpAlternative:
		left := buildFragment(a, n.Left)
		dropConfig(a, left)
		right := buildFragment(a, n.Right)
		dropConfig(a, right)

		a.AddEpsilonArc(start, left.start)
		a.AddEpsilonArc(start, right.start)
		a.AddEpsilonArc(left.end, end)
		a.AddEpsilonArc(right.end, end)

	case OpConcatenation:
		left := buildFragment(a, n.Left)
		dropConfig(a, left)
		right := buildFragment(a, n.Right)
		dropConfig(a, right)

		a.AddEpsilonArc(start, left.start)
		a.AddEpsilonArc(left.end, right.start)
		a.AddEpsilonArc(right.end, end)

	case OpKleene:
		wrapped := buildFragment(a, n.Left)
		dropConfig(a, wrapped)

		a.AddEpsilonArc(start, wrapped.start)
		a.AddEpsilonArc(start, end)
		a.AddEpsilonArc(wrapped.end, end)
		a.AddEpsilonArc(end, start)

	case OpPositiveKleene:
		wrapped := buildFragment(a, n.Left)
		dropConfig(a, wrapped)

		a.AddEpsilonArc(start, wrapped.start)
		a.AddEpsilonArc(wrapped.end, end)
		a.AddEpsilonArc(end, start)

	case OpOptional:
		wrapped := buildFragment(a, n.Left)
		dropConfig(a, wrapped)

		a.AddEpsilonArc(start, wrapped.start)
		a.AddEpsilonArc(wrapped.end, end)
		a.AddEpsilonArc(start, end)
	}

	return fragment{start: start, end: end}
}
