package exam

// Escalation returns the set of difficulty levels acceptable as substitutes
// for the requested level. Substitution only goes upward: a MEDIUM request
// may be served HARD questions but never EASY ones.
func (d Difficulty) Escalation() []Difficulty {
	switch d {
	case Easy:
		return []Difficulty{Easy, Medium, Hard}
	case Medium:
		return []Difficulty{Medium, Hard}
	default:
		return []Difficulty{Hard}
	}
}

// InEscalation reports whether level is an acceptable substitute for d.
func (d Difficulty) InEscalation(level Difficulty) bool {
	for _, l := range d.Escalation() {
		if l == level {
			return true
		}
	}
	return false
}
