package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInsertEraseReuse(t *testing.T) {
	var l List[string]

	a := l.Insert("a")
	b := l.Insert("b")
	require.NotEqual(t, a, b)
	assert.Equal(t, 2, l.Len())

	v, ok := l.Get(a)
	require.True(t, ok)
	assert.Equal(t, "a", *v)

	l.Erase(a)
	assert.False(t, l.Has(a))
	assert.Equal(t, 1, l.Len())

	// The freed slot is recycled; the generated identity refers to the new
	// occupant now.
	c := l.Insert("c")
	assert.Equal(t, a, c)
	v, ok = l.Get(c)
	require.True(t, ok)
	assert.Equal(t, "c", *v)
	assert.Equal(t, 2, l.Cap())
}

func TestListEraseDeadIsNoop(t *testing.T) {
	var l List[int]
	id := l.Insert(1)
	l.Erase(id)
	l.Erase(id)
	l.Erase(ID(42))
	assert.Equal(t, 0, l.Len())
}

func TestListEachSkipsDeadAndAllowsErase(t *testing.T) {
	var l List[int]
	ids := make([]ID, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, l.Insert(i))
	}
	l.Erase(ids[1])
	l.Erase(ids[3])

	var seen []int
	l.Each(func(id ID, v *int) bool {
		seen = append(seen, *v)
		if *v == 2 {
			l.Erase(id) // erasing the visited entry mid-sweep is allowed
		}
		return true
	})
	assert.Equal(t, []int{0, 2, 4}, seen)
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.LiveAt(2))
	assert.True(t, l.LiveAt(0))
}
