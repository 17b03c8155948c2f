package container

import "cmp"

// Ordered is a red-black tree holding each value at most once, iterated in
// ascending order. It is used where the editor needs a sorted, deterministic
// walk over identities (the hash [Set] iterates in table order, which changes
// as the table grows).
//
// Construct with [NewOrdered]; the zero value is not usable.
type Ordered[T cmp.Ordered] struct {
	root *rbNode[T]
	nil_ *rbNode[T] // shared black sentinel leaf
	size int
}

type rbColor bool

const (
	rbRed   rbColor = true
	rbBlack rbColor = false
)

type rbNode[T cmp.Ordered] struct {
	value               T
	parent, left, right *rbNode[T]
	color               rbColor
}

// NewOrdered returns an empty ordered set.
func NewOrdered[T cmp.Ordered]() *Ordered[T] {
	sentinel := &rbNode[T]{color: rbBlack}
	return &Ordered[T]{root: sentinel, nil_: sentinel}
}

// Len returns the number of values in the set.
func (t *Ordered[T]) Len() int { return t.size }

// Contains reports whether v is in the set.
func (t *Ordered[T]) Contains(v T) bool {
	return t.lookup(v) != t.nil_
}

// Min returns the smallest value and whether the set is non-empty.
func (t *Ordered[T]) Min() (T, bool) {
	if t.root == t.nil_ {
		var zero T
		return zero, false
	}
	return t.minimum(t.root).value, true
}

// Each calls fn for every value in ascending order, stopping early if fn
// returns false.
func (t *Ordered[T]) Each(fn func(T) bool) {
	t.inorder(t.root, fn)
}

// Values returns all values in ascending order.
func (t *Ordered[T]) Values() []T {
	out := make([]T, 0, t.size)
	t.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Insert adds v to the set. It is a no-op if v is already present.
func (t *Ordered[T]) Insert(v T) {
	parent := t.nil_
	cur := t.root
	for cur != t.nil_ {
		parent = cur
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return
		}
	}
	node := &rbNode[T]{value: v, parent: parent, left: t.nil_, right: t.nil_, color: rbRed}
	switch {
	case parent == t.nil_:
		t.root = node
	case v < parent.value:
		parent.left = node
	default:
		parent.right = node
	}
	t.size++
	t.insertFixup(node)
}

// Erase removes v from the set. It is a no-op if v is absent.
func (t *Ordered[T]) Erase(v T) {
	node := t.lookup(v)
	if node == t.nil_ {
		return
	}
	t.size--

	// CLRS delete: splice out node (or its in-order successor) and rebalance
	// on the successor path when a black node was removed.
	removed := node
	removedColor := removed.color
	var fix *rbNode[T]
	switch {
	case node.left == t.nil_:
		fix = node.right
		t.transplant(node, node.right)
	case node.right == t.nil_:
		fix = node.left
		t.transplant(node, node.left)
	default:
		removed = t.minimum(node.right)
		removedColor = removed.color
		fix = removed.right
		if removed.parent == node {
			fix.parent = removed
		} else {
			t.transplant(removed, removed.right)
			removed.right = node.right
			removed.right.parent = removed
		}
		t.transplant(node, removed)
		removed.left = node.left
		removed.left.parent = removed
		removed.color = node.color
	}
	if removedColor == rbBlack {
		t.eraseFixup(fix)
	}
}

func (t *Ordered[T]) lookup(v T) *rbNode[T] {
	cur := t.root
	for cur != t.nil_ {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return cur
		}
	}
	return t.nil_
}

func (t *Ordered[T]) minimum(n *rbNode[T]) *rbNode[T] {
	for n.left != t.nil_ {
		n = n.left
	}
	return n
}

func (t *Ordered[T]) inorder(n *rbNode[T], fn func(T) bool) bool {
	if n == t.nil_ {
		return true
	}
	return t.inorder(n.left, fn) && fn(n.value) && t.inorder(n.right, fn)
}

func (t *Ordered[T]) rotateLeft(x *rbNode[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.nil_ {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nil_:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Ordered[T]) rotateRight(x *rbNode[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.nil_ {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nil_:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *Ordered[T]) transplant(u, v *rbNode[T]) {
	switch {
	case u.parent == t.nil_:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Ordered[T]) insertFixup(z *rbNode[T]) {
	for z.parent.color == rbRed {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == rbRed {
				z.parent.color = rbBlack
				uncle.color = rbBlack
				z.parent.parent.color = rbRed
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = rbBlack
				z.parent.parent.color = rbRed
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == rbRed {
				z.parent.color = rbBlack
				uncle.color = rbBlack
				z.parent.parent.color = rbRed
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = rbBlack
				z.parent.parent.color = rbRed
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = rbBlack
}

func (t *Ordered[T]) eraseFixup(x *rbNode[T]) {
	for x != t.root && x.color == rbBlack {
		if x == x.parent.left {
			sib := x.parent.right
			if sib.color == rbRed {
				sib.color = rbBlack
				x.parent.color = rbRed
				t.rotateLeft(x.parent)
				sib = x.parent.right
			}
			if sib.left.color == rbBlack && sib.right.color == rbBlack {
				sib.color = rbRed
				x = x.parent
			} else {
				if sib.right.color == rbBlack {
					sib.left.color = rbBlack
					sib.color = rbRed
					t.rotateRight(sib)
					sib = x.parent.right
				}
				sib.color = x.parent.color
				x.parent.color = rbBlack
				sib.right.color = rbBlack
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			sib := x.parent.left
			if sib.color == rbRed {
				sib.color = rbBlack
				x.parent.color = rbRed
				t.rotateRight(x.parent)
				sib = x.parent.left
			}
			if sib.right.color == rbBlack && sib.left.color == rbBlack {
				sib.color = rbRed
				x = x.parent
			} else {
				if sib.left.color == rbBlack {
					sib.right.color = rbBlack
					sib.color = rbRed
					t.rotateLeft(sib)
					sib = x.parent.left
				}
				sib.color = x.parent.color
				x.parent.color = rbBlack
				sib.left.color = rbBlack
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = rbBlack
}
