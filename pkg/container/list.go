package container

// List is the free-list arena behind the connection registry. Unlike [Pool],
// identities are not supplied by the caller: Insert generates one from the
// slot it lands in, and there is no per-frame liveness cycle. Entries live
// until erased.
//
// The zero value is ready to use.
type List[T any] struct {
	data   []T
	active []bool
	freed  []int32
}

// Len returns the number of live entries.
func (l *List[T]) Len() int {
	return len(l.data) - len(l.freed)
}

// Cap returns the number of slots, live or not. Index-based sweeps iterate
// [0, Cap) and skip dead slots via [List.LiveAt].
func (l *List[T]) Cap() int { return len(l.data) }

// Insert stores v and returns its generated identity.
func (l *List[T]) Insert(v T) ID {
	if n := len(l.freed); n > 0 {
		slot := l.freed[n-1]
		l.freed = l.freed[:n-1]
		l.data[slot] = v
		l.active[slot] = true
		return ID(slot)
	}
	l.data = append(l.data, v)
	l.active = append(l.active, true)
	return ID(len(l.data) - 1)
}

// Erase removes the entry with the given identity. Erasing a dead or unknown
// identity is a no-op.
func (l *List[T]) Erase(id ID) {
	slot := int32(id)
	if int(slot) >= len(l.data) || !l.active[slot] {
		return
	}
	var zero T
	l.data[slot] = zero
	l.active[slot] = false
	l.freed = append(l.freed, slot)
}

// Get returns the entry for id and whether it is live.
func (l *List[T]) Get(id ID) (*T, bool) {
	slot := int32(id)
	if int(slot) >= len(l.data) || !l.active[slot] {
		return nil, false
	}
	return &l.data[slot], true
}

// Has reports whether id refers to a live entry.
func (l *List[T]) Has(id ID) bool {
	slot := int32(id)
	return int(slot) < len(l.data) && l.active[slot]
}

// LiveAt reports whether the slot at raw index i holds a live entry.
func (l *List[T]) LiveAt(i int) bool {
	return i < len(l.active) && l.active[i]
}

// Each visits every live entry in slot order, stopping early if fn returns
// false. It is safe for fn to erase the entry it is visiting.
func (l *List[T]) Each(fn func(ID, *T) bool) {
	for i := range l.data {
		if l.active[i] && !fn(ID(i), &l.data[i]) {
			return
		}
	}
}
