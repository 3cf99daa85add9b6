package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnolang/lexgen/charset"
)

// config identifies one NFA state within the combined automaton: the index
// of the owning per-token NFA and the state id inside it.
type config struct {
	nfa   int
	state int
}

// configSet is a set of configs. Its key renders the members in a
// canonical (sorted) order, which makes structural equality a string
// comparison; the memoization map of the subset construction is keyed by
// that string.
type configSet struct {
	members map[config]struct{}
}

func newConfigSet() configSet {
	return configSet{members: make(map[config]struct{})}
}

func (s configSet) add(c config) { s.members[c] = struct{}{} }

func (s configSet) contains(c config) bool {
	_, ok := s.members[c]
	return ok
}

func (s configSet) isEmpty() bool { return len(s.members) == 0 }

func (s configSet) sorted() []config {
	out := make([]config, 0, len(s.members))
	for c := range s.members {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].nfa != out[j].nfa {
			return out[i].nfa < out[j].nfa
		}
		return out[i].state < out[j].state
	})
	return out
}

func (s configSet) key() string {
	var b strings.Builder
	for _, c := range s.sorted() {
		fmt.Fprintf(&b, "%d:%d;", c.nfa, c.state)
	}
	return b.String()
}

// subsetState pairs a config set with the DFA state created for it.
type subsetState struct {
	configs configSet
	id      int
}

// Determinize runs the subset construction over the per-token NFAs and
// returns a total DFA. The combined start configuration is the epsilon
// closure of all per-token start states. Accepting DFA states are labeled
// with the smallest NFA index whose accepting state is in the subset, so
// earlier tokens win ties; TokenType is left unset for the caller to fill
// in from the specification.
func Determinize(nfas []*NFA) (*DFA, error) {
	// Arc adjacency per NFA, by origin state. The construction probes
	// outgoing arcs for every state and every byte, so a flat scan over
	// the arc list would dominate everything else.
	adjacency := make([][][]int, len(nfas))
	for k, nfa := range nfas {
		adjacency[k] = make([][]int, len(nfa.States()))
		for i, arc := range nfa.Arcs() {
			adjacency[k][arc.Origin] = append(adjacency[k][arc.Origin], i)
		}
	}

	dfa := &DFA{}
	memo := make(map[string]*subsetState)

	// getOrCreate memoizes DFA states by canonical config set. The
	// empty set maps to the unique error state.
	getOrCreate := func(configs configSet) (*subsetState, bool) {
		key := configs.key()
		if existing, ok := memo[key]; ok {
			return existing, false
		}
		state := &subsetState{configs: configs, id: dfa.NewState()}
		if configs.isEmpty() {
			dfa.State(state.id).Type = ErrorState
		} else {
			markAccepting(dfa.State(state.id), nfas, configs)
		}
		memo[key] = state
		return state, true
	}

	closure := func(set configSet) configSet {
		return epsilonClosure(nfas, adjacency, set)
	}

	startConfigs := newConfigSet()
	for k, nfa := range nfas {
		start, err := nfa.StartState()
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", k, err)
		}
		startConfigs.add(config{nfa: k, state: start})
	}

	start, _ := getOrCreate(closure(startConfigs))
	dfa.State(start.id).Start = true

	queue := []*subsetState{start}
	for i := 0; i < len(queue); i++ {
		current := queue[i]

		// One arc per reached target, grown byte by byte; this keeps
		// the "at most one arc per ordered state pair" invariant
		// without rescanning the arc list.
		arcOf := make(map[int]int)

		for c := 0; c <= 0xFF; c++ {
			moved := moveByChar(nfas, adjacency, current.configs, byte(c))
			target, created := getOrCreate(closure(moved))
			if created {
				queue = append(queue, target)
			}

			if idx, ok := arcOf[target.id]; ok {
				dfa.arcs[idx].Set.Insert(byte(c))
			} else {
				arcOf[target.id] = len(dfa.arcs)
				dfa.arcs = append(dfa.arcs, DFAArc{
					Origin: current.id,
					Target: target.id,
					Set:    charset.Singleton(byte(c)),
				})
			}
		}
	}

	if err := dfa.finish(); err != nil {
		return nil, err
	}
	return dfa, nil
}

// markAccepting labels the DFA state if any config in the subset is an
// accepting NFA state; ties go to the smallest NFA index.
func markAccepting(state *DFAState, nfas []*NFA, configs configSet) {
	smallest := -1
	for c := range configs.members {
		if !nfas[c.nfa].State(c.state).Accepting {
			continue
		}
		if smallest < 0 || c.nfa < smallest {
			smallest = c.nfa
		}
	}
	if smallest >= 0 {
		state.Type = AcceptingState
		state.TokenIndex = int32(smallest)
	}
}

// epsilonClosure extends the set with every state reachable over epsilon
// arcs, iterating to a fixpoint.
func epsilonClosure(nfas []*NFA, adjacency [][][]int, set configSet) configSet {
	result := newConfigSet()
	worklist := make([]config, 0, len(set.members))
	for c := range set.members {
		result.add(c)
		worklist = append(worklist, c)
	}

	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		arcs := nfas[current.nfa].Arcs()
		for _, idx := range adjacency[current.nfa][current.state] {
			arc := arcs[idx]
			if arc.Kind != Epsilon {
				continue
			}
			next := config{nfa: current.nfa, state: arc.Target}
			if !result.contains(next) {
				result.add(next)
				worklist = append(worklist, next)
			}
		}
	}

	return result
}

// moveByChar collects the targets of character arcs that contain c,
// ignoring epsilon arcs.
func moveByChar(nfas []*NFA, adjacency [][][]int, set configSet, c byte) configSet {
	result := newConfigSet()
	for current := range set.members {
		arcs := nfas[current.nfa].Arcs()
		for _, idx := range adjacency[current.nfa][current.state] {
			arc := arcs[idx]
			if arc.Kind != Character || !arc.Set.Contains(c) {
				continue
			}
			result.add(config{nfa: current.nfa, state: arc.Target})
		}
	}
	return result
}
