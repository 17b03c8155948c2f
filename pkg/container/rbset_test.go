package container

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkRB validates the red-black invariants: the root is black, no red node
// has a red child, and every root-to-leaf path crosses the same number of
// black nodes. Returns the tree's black height.
func checkRB(t *testing.T, tree *Ordered[int]) int {
	t.Helper()
	require.Equal(t, rbBlack, tree.root.color, "root must be black")

	var walk func(n *rbNode[int]) int
	walk = func(n *rbNode[int]) int {
		if n == tree.nil_ {
			return 1
		}
		if n.color == rbRed {
			require.Equal(t, rbBlack, n.left.color, "red node %d has red left child", n.value)
			require.Equal(t, rbBlack, n.right.color, "red node %d has red right child", n.value)
		}
		lh := walk(n.left)
		rh := walk(n.right)
		require.Equal(t, lh, rh, "black height mismatch under %d", n.value)
		if n.color == rbBlack {
			lh++
		}
		return lh
	}
	return walk(tree.root)
}

func TestOrderedInsertAscendingIteration(t *testing.T) {
	tree := NewOrdered[int]()
	in := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, v := range in {
		tree.Insert(v)
	}
	tree.Insert(5) // duplicate is a no-op

	assert.Equal(t, len(in), tree.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, tree.Values())
	checkRB(t, tree)

	minVal, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, 0, minVal)
}

func TestOrderedEraseKeepsBalance(t *testing.T) {
	tree := NewOrdered[int]()
	for i := 0; i < 64; i++ {
		tree.Insert(i)
		checkRB(t, tree)
	}
	// Erase in a mixed pattern: leaves, internal nodes, the root path.
	for _, v := range []int{0, 63, 31, 32, 16, 48, 1, 62} {
		tree.Erase(v)
		assert.False(t, tree.Contains(v))
		checkRB(t, tree)
	}
	assert.Equal(t, 56, tree.Len())

	tree.Erase(999) // absent: no-op
	assert.Equal(t, 56, tree.Len())
}

func TestOrderedRandomizedAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewOrdered[int]()
	ref := map[int]bool{}

	for i := 0; i < 2000; i++ {
		v := rng.Intn(200)
		if rng.Intn(3) == 0 {
			tree.Erase(v)
			delete(ref, v)
		} else {
			tree.Insert(v)
			ref[v] = true
		}
	}
	checkRB(t, tree)

	want := make([]int, 0, len(ref))
	for v := range ref {
		want = append(want, v)
	}
	sort.Ints(want)
	assert.Equal(t, want, tree.Values())
	assert.Equal(t, len(want), tree.Len())
}

func TestOrderedEmpty(t *testing.T) {
	tree := NewOrdered[int]()
	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.Contains(1))
	_, ok := tree.Min()
	assert.False(t, ok)
	tree.Erase(1) // no-op on empty
}
