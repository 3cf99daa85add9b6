package automaton

// Simulate runs the DFA over the entire input and reports whether it ends
// in an accepting state. On acceptance the returned index is the token
// index recorded during subset construction. Simulation stops early once
// the error state is reached; no suffix can recover from it.
func Simulate(d *DFA, input []byte) (int32, bool) {
	state := d.StartState()
	for _, c := range input {
		state = d.NextState(state, c)
		if d.IsErrorState(state) {
			return -1, false
		}
	}
	if !d.IsAcceptingState(state) {
		return -1, false
	}
	return d.State(state).TokenIndex, true
}
