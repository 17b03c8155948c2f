package container

import "fmt"

// Pool is a slot-recycling arena addressed by stable [ID]. It is the storage
// behind nodes and pins: the embedding application resubmits entities by
// identity every frame, and the pool decides which slots are still alive.
//
// Four parallel structures share slot indices:
//
//   - data/active/idxToID: the dense payload arena, a liveness flag per slot,
//     and the identity that owns each slot.
//   - freed: a stack of reusable slot indices.
//   - idToIdx: the identity→slot map. A freed slot's mapping is removed
//     before the slot can be reused, so an ID always resolves to the correct
//     live slot or to nothing.
//   - order: a permutation of exactly the live slot indices, encoding
//     presentation order. Later entries draw later, i.e. on top.
//
// The per-frame lifecycle is Reset (clear liveness, keep everything else),
// resubmission via Acquire (which re-marks liveness), then Cleanup (reclaim
// slots whose identity was not touched). An entity therefore survives one
// frame of absence before its slot is reclaimed.
//
// The zero value is not usable; construct with [NewPool].
type Pool[T any] struct {
	data    []T
	active  []bool
	idxToID []ID
	freed   []int32
	idToIdx map[ID]int32
	order   []int32
}

// NewPool returns an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{idToIdx: make(map[ID]int32)}
}

// Len returns the number of live entities (the length of the presentation
// order).
func (p *Pool[T]) Len() int { return len(p.order) }

// SlotCount returns the size of the underlying arena, including freed slots.
func (p *Pool[T]) SlotCount() int { return len(p.data) }

// Acquire returns the payload for id, creating it if the identity has never
// been seen (or was reclaimed). The slot is marked live for this frame.
// Reused slots hand back a zeroed payload; an identity that was cleaned up
// starts fresh.
func (p *Pool[T]) Acquire(id ID) *T {
	if idx, ok := p.idToIdx[id]; ok {
		p.active[idx] = true
		return &p.data[idx]
	}
	var idx int32
	if n := len(p.freed); n > 0 {
		idx = p.freed[n-1]
		p.freed = p.freed[:n-1]
		var zero T
		p.data[idx] = zero
		p.active[idx] = true
		p.idxToID[idx] = id
	} else {
		idx = int32(len(p.data))
		var zero T
		p.data = append(p.data, zero)
		p.active = append(p.active, true)
		p.idxToID = append(p.idxToID, id)
	}
	p.idToIdx[id] = idx
	p.order = append(p.order, idx)
	return &p.data[idx]
}

// Get returns the payload for id without creating or touching it.
func (p *Pool[T]) Get(id ID) (*T, bool) {
	idx, ok := p.idToIdx[id]
	if !ok {
		return nil, false
	}
	return &p.data[idx], true
}

// Has reports whether id maps to a slot that is live this frame.
func (p *Pool[T]) Has(id ID) bool {
	idx, ok := p.idToIdx[id]
	return ok && p.active[idx]
}

// Reset clears every liveness flag. Identity mappings, payloads, and the
// presentation order are untouched: entities not yet resubmitted this frame
// are provisionally kept until Cleanup decides otherwise.
func (p *Pool[T]) Reset() {
	for i := range p.active {
		p.active[i] = false
	}
}

// Cleanup reclaims every slot that is still marked dead after submission:
// the slot is pushed onto the free stack, removed from the presentation
// order, and its identity mapping is cleared. It returns the number of slots
// freed by this call so callers can evict exactly the just-freed identities
// from dependent sets; the identities themselves are read back with
// [Pool.FreedIDs].
func (p *Pool[T]) Cleanup() int {
	freed := 0
	for i := range p.data {
		idx, mapped := p.idToIdx[p.idxToID[i]]
		if !mapped || idx != int32(i) {
			continue // slot already on the free stack
		}
		if p.active[i] {
			continue
		}
		delete(p.idToIdx, p.idxToID[i])
		p.freed = append(p.freed, int32(i))
		p.removeFromOrder(int32(i))
		freed++
	}
	return freed
}

// FreedIDs returns the identities of the most recent n freed slots, oldest
// first. Freed slots keep their last identity until reuse, which is what
// allows a cleanup caller to sweep dependent sets (e.g. the selection set)
// after the mapping itself is gone.
func (p *Pool[T]) FreedIDs(n int) []ID {
	if n > len(p.freed) {
		n = len(p.freed)
	}
	out := make([]ID, 0, n)
	for _, slot := range p.freed[len(p.freed)-n:] {
		out = append(out, p.idxToID[slot])
	}
	return out
}

// PushToTop moves id to the end of the presentation order, shifting the
// entries after it down one position. Cost is proportional to the distance
// moved; pushing the topmost entity is a no-op.
func (p *Pool[T]) PushToTop(id ID) {
	idx, ok := p.idToIdx[id]
	if !ok {
		return
	}
	pos := -1
	for i, slot := range p.order {
		if slot == idx {
			pos = i
			break
		}
	}
	if pos < 0 || pos == len(p.order)-1 {
		return
	}
	copy(p.order[pos:], p.order[pos+1:])
	p.order[len(p.order)-1] = idx
}

// At returns the payload at presentation position i. Positions count from the
// bottom of the draw order: At(Len()-1) is the entity on top. An index
// outside [0, Len()) is a programming error and panics.
func (p *Pool[T]) At(i int) *T {
	if i < 0 || i >= len(p.order) {
		panic(fmt.Sprintf("container: pool presentation index %d out of range [0,%d)", i, len(p.order)))
	}
	return &p.data[p.order[i]]
}

// IDAt returns the identity at presentation position i, with the same range
// contract as [Pool.At].
func (p *Pool[T]) IDAt(i int) ID {
	if i < 0 || i >= len(p.order) {
		panic(fmt.Sprintf("container: pool presentation index %d out of range [0,%d)", i, len(p.order)))
	}
	return p.idxToID[p.order[i]]
}

// PresentationIndex returns the position of id in the presentation order,
// or -1 when id is not live.
func (p *Pool[T]) PresentationIndex(id ID) int {
	idx, ok := p.idToIdx[id]
	if !ok {
		return -1
	}
	for i, slot := range p.order {
		if slot == idx {
			return i
		}
	}
	return -1
}

// Each visits live payloads bottom-up in presentation order, stopping early
// if fn returns false. Slots in their reclamation grace period (present in
// the order but inactive) are skipped.
func (p *Pool[T]) Each(fn func(ID, *T) bool) {
	for _, slot := range p.order {
		if !p.active[slot] {
			continue
		}
		if !fn(p.idxToID[slot], &p.data[slot]) {
			return
		}
	}
}

// EachReverse visits live payloads top-down (topmost first), stopping early
// if fn returns false. Hit-testing walks this way so the entity drawn on top
// wins.
func (p *Pool[T]) EachReverse(fn func(ID, *T) bool) {
	for i := len(p.order) - 1; i >= 0; i-- {
		slot := p.order[i]
		if !p.active[slot] {
			continue
		}
		if !fn(p.idxToID[slot], &p.data[slot]) {
			return
		}
	}
}

// EachSlot visits every arena slot in raw storage order, live or not,
// reporting liveness. The z-order channel sort walks raw slots because
// channel indices were recorded per-slot during submission.
func (p *Pool[T]) EachSlot(fn func(slot int, live bool, v *T) bool) {
	for i := range p.data {
		idx, mapped := p.idToIdx[p.idxToID[i]]
		live := mapped && idx == int32(i) && p.active[i]
		if !fn(i, live, &p.data[i]) {
			return
		}
	}
}

func (p *Pool[T]) removeFromOrder(slot int32) {
	for i, s := range p.order {
		if s == slot {
			p.order = append(p.order[:i], p.order[i+1:]...)
			return
		}
	}
}
