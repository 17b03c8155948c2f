package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChannelSplitAndMerge(t *testing.T) {
	l := NewList()
	require.Equal(t, 1, l.ChannelCount())

	first := l.PushChannels(2)
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, l.ChannelCount())

	// Record out of order: foreground first, then background, then base.
	l.SetChannel(first + 1)
	l.AddText(Vec2{}, RGB(1, 1, 1), "fg")
	l.SetChannel(first)
	l.AddText(Vec2{}, RGB(2, 2, 2), "bg")
	l.SetChannel(0)
	l.AddText(Vec2{}, RGB(3, 3, 3), "base")

	l.Merge()
	got := l.Commands()
	require.Len(t, got, 3)
	// Physical channel order wins: base (channel 0), bg, fg.
	assert.Equal(t, []string{"base", "bg", "fg"}, []string{got[0].Text, got[1].Text, got[2].Text})
	assert.Equal(t, 1, l.ChannelCount())
}

func TestListSwapChannelsReorders(t *testing.T) {
	l := NewList()
	first := l.PushChannels(2)
	l.SetChannel(first)
	l.AddText(Vec2{}, Color{}, "a")
	l.SetChannel(first + 1)
	l.AddText(Vec2{}, Color{}, "b")

	l.SwapChannels(first, first+1)
	l.Merge()

	got := l.Commands()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Text)
	assert.Equal(t, "a", got[1].Text)
}

func TestListPushChannelsIsMonotonic(t *testing.T) {
	l := NewList()
	a := l.PushChannels(2)
	b := l.PushChannels(2)
	assert.Equal(t, a+2, b, "later groups must not disturb earlier indices")
}

func TestListResetKeepsBaseChannel(t *testing.T) {
	l := NewList()
	l.PushChannels(4)
	l.SetChannel(2)
	l.AddLine(Vec2{}, Vec2{1, 1}, Color{}, 1)
	l.Reset()

	assert.Equal(t, 1, l.ChannelCount())
	assert.Empty(t, l.Commands())
	assert.Panics(t, func() { l.SetChannel(2) })
}

func TestRectHelpers(t *testing.T) {
	r := RectFromPoints(Vec2{4, 4}, Vec2{0, 2})
	assert.Equal(t, Rect{Min: Vec2{0, 2}, Max: Vec2{4, 4}}, r)
	assert.Equal(t, float32(4), r.Width())
	assert.Equal(t, float32(2), r.Height())
	assert.Equal(t, Vec2{2, 3}, r.Center())
	assert.True(t, r.Contains(Vec2{1, 3}))
	assert.False(t, r.Contains(Vec2{4, 3}))

	assert.True(t, r.Overlaps(Rect{Min: Vec2{3, 3}, Max: Vec2{5, 5}}))
	assert.False(t, r.Overlaps(Rect{Min: Vec2{4, 4}, Max: Vec2{5, 5}}), "touching edges do not overlap")

	e := r.Expand(1)
	assert.Equal(t, Rect{Min: Vec2{-1, 1}, Max: Vec2{5, 5}}, e)
}

func TestListReorderChannels(t *testing.T) {
	l := NewList()
	base := l.PushChannels(4)
	text := func(ch int, s string) {
		l.SetChannel(ch)
		l.AddText(Vec2{}, Color{}, s)
	}
	text(base, "a")
	text(base+1, "b")
	text(base+2, "c")
	text(base+3, "d")

	// Pairwise move: the (c,d) pair paints before (a,b).
	l.ReorderChannels(base, []int{2, 3, 0, 1})
	l.Merge()

	got := l.Commands()
	require.Len(t, got, 4)
	assert.Equal(t, "c", got[0].Text)
	assert.Equal(t, "d", got[1].Text)
	assert.Equal(t, "a", got[2].Text)
	assert.Equal(t, "b", got[3].Text)
}

func TestListReorderChannelsDropsUnmapped(t *testing.T) {
	l := NewList()
	base := l.PushChannels(3)
	for i, s := range []string{"a", "b", "c"} {
		l.SetChannel(base + i)
		l.AddText(Vec2{}, Color{}, s)
	}

	l.ReorderChannels(base, []int{1, -1, 0})
	l.Merge()

	got := l.Commands()
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Text)
	assert.Equal(t, "a", got[1].Text)
}

func TestListReorderChannelsCoverageMismatchPanics(t *testing.T) {
	l := NewList()
	base := l.PushChannels(3)
	assert.Panics(t, func() { l.ReorderChannels(base, []int{0, 1}) })
}
