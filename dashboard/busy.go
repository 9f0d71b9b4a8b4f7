package dashboard

// busySet tracks which trigger kinds are outstanding.
type busySet map[TriggerKind]bool

func newBusySet(kinds ...TriggerKind) busySet {
	b := make(busySet, len(kinds))
	for _, k := range kinds {
		b[k] = false
	}
	return b
}

// set marks kind as outstanding
func (b busySet) set(kind TriggerKind) {
	b[kind] = true
}

// unset clears kind
func (b busySet) unset(kind TriggerKind) {
	b[kind] = false
}

// any reports whether some kind is outstanding, and which one.
func (b busySet) any() (bool, TriggerKind) {
	for _, k := range TriggerKinds() {
		if b[k] {
			return true, k
		}
	}
	return false, 0
}
