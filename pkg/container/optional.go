package container

// Optional wraps a value with a presence flag. It replaces "magic" sentinel
// values for per-frame transient state such as the currently hovered node or
// an in-progress connection drag.
//
// The zero value is an empty Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Set stores v and marks the Optional present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.present = true
}

// Reset clears the Optional back to empty.
func (o *Optional[T]) Reset() {
	var zero T
	o.value = zero
	o.present = false
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool { return o.present }

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// Value returns the held value, or the zero value when empty.
func (o Optional[T]) Value() T { return o.value }

// ValueOr returns the held value, or def when empty.
func (o Optional[T]) ValueOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}
