package state

// Guard is a predicate over the current frame's model state
type Guard func() bool

// Transition switches to Target when Guard holds
type Transition struct {
	Target ID
	Guard  Guard
}

// firstMatch returns the target of the first transition whose guard holds
func firstMatch(transitions []Transition) (ID, bool) {
	for _, t := range transitions {
		if t.Guard() {
			return t.Target, true
		}
	}
	return 0, false
}

// Targets returns the transition targets in evaluation order
func Targets(s State) []ID {
	transitions := s.Transitions()
	ids := make([]ID, len(transitions))
	for i, t := range transitions {
		ids[i] = t.Target
	}
	return ids
}
