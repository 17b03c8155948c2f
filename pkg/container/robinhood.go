package container

// Hasher maps a value to its 32-bit hash. The editor binds [ID] values with
// the identity hasher; tests may supply deliberately colliding hashers.
type Hasher[T comparable] func(T) ID

// Set is an open-addressing hash set using Robin Hood probing.
//
// Every occupied slot records its probe-sequence length (PSL): the distance
// from the value's home slot (hash mod capacity) to where it actually lives.
// Insertion "steals from the rich": when the value being placed has probed
// further than the resident of the slot it is visiting, the two swap and the
// displaced resident carries on probing. This keeps the variance of probe
// distances low. Deletion backward-shifts the following cluster instead of
// leaving tombstones, so lookups never scan dead slots.
//
// Capacity is kept prime-like (6k±1 candidates filtered by trial division) to
// reduce clustering. The zero value is not usable; construct with [NewSet] or
// [NewIDSet].
type Set[T comparable] struct {
	slots []rhSlot[T]
	size  int
	hash  Hasher[T]
}

type rhSlot[T comparable] struct {
	value T
	psl   uint32
	used  bool
}

const (
	rhInitialCapacity = 17
	// rhMaxLoadNum/rhMaxLoadDen is the load factor threshold (85%) past which
	// the table grows.
	rhMaxLoadNum = 85
	rhMaxLoadDen = 100
)

// NewSet returns an empty set using hash for slot placement.
func NewSet[T comparable](hash Hasher[T]) *Set[T] {
	return &Set[T]{hash: hash}
}

// NewIDSet returns an empty set of IDs. IDs are already hashes, so they are
// used directly for placement.
func NewIDSet() *Set[ID] {
	return NewSet(func(id ID) ID { return id })
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return s.size }

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	return s.find(v) >= 0
}

// Insert adds v to the set. It is a no-op if v is already present.
func (s *Set[T]) Insert(v T) {
	if s.find(v) >= 0 {
		return
	}
	if len(s.slots) == 0 || (s.size+1)*rhMaxLoadDen > len(s.slots)*rhMaxLoadNum {
		s.grow()
	}
	s.place(v)
	s.size++
}

// Erase removes v from the set. It is a no-op if v is absent.
func (s *Set[T]) Erase(v T) {
	i := s.find(v)
	if i < 0 {
		return
	}
	n := len(s.slots)
	s.slots[i] = rhSlot[T]{}
	// Backward-shift the rest of the cluster to restore the invariant
	// without tombstones.
	for {
		j := (i + 1) % n
		if !s.slots[j].used || s.slots[j].psl == 0 {
			break
		}
		s.slots[i] = s.slots[j]
		s.slots[i].psl--
		s.slots[j] = rhSlot[T]{}
		i = j
	}
	s.size--
}

// Clear removes all values but keeps the table allocation.
func (s *Set[T]) Clear() {
	for i := range s.slots {
		s.slots[i] = rhSlot[T]{}
	}
	s.size = 0
}

// Each calls fn for every value in the set, in table order, stopping early if
// fn returns false.
func (s *Set[T]) Each(fn func(T) bool) {
	for i := range s.slots {
		if s.slots[i].used && !fn(s.slots[i].value) {
			return
		}
	}
}

// Values returns all values in table order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.size)
	s.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// find returns the slot index of v, or -1. Probing stops as soon as a slot is
// empty or its resident sits closer to home than our probe distance: the
// Robin Hood invariant guarantees v cannot live past that point.
func (s *Set[T]) find(v T) int {
	n := len(s.slots)
	if n == 0 {
		return -1
	}
	i := int(uint32(s.hash(v)) % uint32(n))
	for psl := uint32(0); ; psl++ {
		slot := &s.slots[i]
		if !slot.used || slot.psl < psl {
			return -1
		}
		if slot.value == v {
			return i
		}
		i = (i + 1) % n
	}
}

// place inserts v, which must not be present, into a table with free space.
func (s *Set[T]) place(v T) {
	n := len(s.slots)
	i := int(uint32(s.hash(v)) % uint32(n))
	carry := rhSlot[T]{value: v, used: true}
	for {
		slot := &s.slots[i]
		if !slot.used {
			*slot = carry
			return
		}
		if slot.psl < carry.psl {
			*slot, carry = carry, *slot
		}
		carry.psl++
		i = (i + 1) % n
	}
}

func (s *Set[T]) grow() {
	old := s.slots
	next := rhInitialCapacity
	if len(old) > 0 {
		next = nextPrimeLike(len(old) * 2)
	}
	s.slots = make([]rhSlot[T], next)
	for i := range old {
		if old[i].used {
			s.place(old[i].value)
		}
	}
}

// nextPrimeLike returns the first prime >= n, scanning 6k±1 candidates.
func nextPrimeLike(n int) int {
	if n <= 2 {
		return 2
	}
	if n == 3 {
		return 3
	}
	// Round up to the next 6k±1 candidate.
	for k := n; ; k++ {
		if (k%6 == 1 || k%6 == 5) && isPrime(k) {
			return k
		}
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for d := 5; d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}
