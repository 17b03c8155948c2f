package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/nodecanvas/pkg/draw"
)

// twoNodes submits node "a" with one output pin "out" and node "b" with one
// input pin "in", returning the pin refs.
func twoNodes(ctx *Context) (out, in PinRef) {
	refsA := submitNode(ctx, "a", nil, []string{"out"})
	refsB := submitNode(ctx, "b", []string{"in"}, nil)
	return refsA["out"], refsB["in"]
}

func TestMakeConnectionEndToEnd(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")

	ctx.BeginGraphPostOp("test")
	require.True(t, ctx.MakeConnection(out, in))
	ctx.EndGraphPostOp()

	assert.Equal(t, 1, g.ConnectionCount())
	assert.Len(t, g.PinConnections(in), 1)
	assert.Len(t, g.PinConnections(out), 1)
	assert.True(t, g.IsPinConnected(in))

	// Both endpoints record the same connection identity.
	assert.Equal(t, g.PinConnections(in), g.PinConnections(out))

	conn, ok := g.Connection(g.PinConnections(in)[0])
	require.True(t, ok)
	assert.Equal(t, out, conn.A)
	assert.Equal(t, in, conn.B)
	assert.Equal(t, out, conn.Other(in))

	// Stop resubmitting node "a": after one full reset/cleanup cycle the
	// sweep drops the connection and cleans pin "in".
	ctx.BeginGraph("test", testBounds, testInput())
	submitNode(ctx, "b", []string{"in"}, nil)
	ctx.EndGraph()
	ctx.BeginGraph("test", testBounds, testInput())
	submitNode(ctx, "b", []string{"in"}, nil)
	ctx.EndGraph()

	assert.Equal(t, 0, g.ConnectionCount())
	assert.Empty(t, g.PinConnections(in))
}

func TestMakeConnectionRejectsSameDirection(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	refsA := submitNode(ctx, "a", nil, []string{"out"})
	refsB := submitNode(ctx, "b", nil, []string{"out"})
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	assert.False(t, g.MakeConnection(refsA["out"], refsB["out"]))
	assert.Equal(t, 0, g.ConnectionCount())
	assert.Empty(t, g.PinConnections(refsA["out"]))
}

func TestMakeConnectionRejectsSameNode(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	refs := submitNode(ctx, "a", []string{"in"}, []string{"out"})
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	assert.False(t, g.MakeConnection(refs["out"], refs["in"]))
	assert.Equal(t, 0, g.ConnectionCount())
}

func TestMakeConnectionRejectsUnresolvedPin(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	ghost := PinRef{Node: in.Node, Pin: 0xDEAD, Direction: DirectionInput}
	assert.False(t, g.MakeConnection(out, ghost))
	assert.Equal(t, 0, g.ConnectionCount())
}

func TestValidationPredicate(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	ctx.SetValidation(func(a, b *Pin) bool { return a.Type() == b.Type() })
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	require.True(t, g.MakeConnection(out, in), "matching types pass")

	g.validation = func(a, b *Pin) bool { return false }
	g.BreakConnections(in)
	assert.False(t, g.MakeConnection(out, in))
	assert.Equal(t, 0, g.ConnectionCount())
}

func TestInputPinHoldsSingleConnection(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	refsA := submitNode(ctx, "a", nil, []string{"out"})
	refsB := submitNode(ctx, "b", nil, []string{"out"})
	refsC := submitNode(ctx, "c", []string{"in"}, nil)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	in := refsC["in"]

	require.True(t, g.MakeConnection(refsA["out"], in))
	require.True(t, g.MakeConnection(refsB["out"], in))

	// The second connect broke the first: the input holds exactly one
	// connection and pin a.out is free again.
	assert.Equal(t, 1, g.ConnectionCount())
	require.Len(t, g.PinConnections(in), 1)
	assert.Empty(t, g.PinConnections(refsA["out"]))

	conn, _ := g.Connection(g.PinConnections(in)[0])
	assert.Equal(t, refsB["out"], conn.A)
}

func TestOutputPinFansOut(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	refsA := submitNode(ctx, "a", nil, []string{"out"})
	refsB := submitNode(ctx, "b", []string{"in"}, nil)
	refsC := submitNode(ctx, "c", []string{"in"}, nil)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	require.True(t, g.MakeConnection(refsA["out"], refsB["in"]))
	require.True(t, g.MakeConnection(refsA["out"], refsC["in"]))

	assert.Equal(t, 2, g.ConnectionCount())
	assert.Len(t, g.PinConnections(refsA["out"]), 2)
}

func TestBreakConnectionByIdentity(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	require.True(t, g.MakeConnection(out, in))
	id := g.PinConnections(in)[0]

	g.BreakConnection(id)
	assert.Equal(t, 0, g.ConnectionCount())
	assert.Empty(t, g.PinConnections(in))
	assert.Empty(t, g.PinConnections(out))

	// Breaking a dead identity is a no-op.
	g.BreakConnection(id)
	assert.Equal(t, 0, g.ConnectionCount())
}

func TestConnectionEventsLastOneFrame(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	require.True(t, g.MakeConnection(out, in))

	// The next submission reports the new endpoint, then the frame after
	// comes up empty.
	var got []PinRef
	ctx.BeginGraph("test", testBounds, testInput())
	submitNode(ctx, "a", nil, []string{"out"})
	pos := draw.Vec2{}
	ctx.BeginNode("b", &pos)
	changed := ctx.BeginPin("in", 0, DirectionInput, 0)
	got = append(got, ctx.NewConnections()...)
	ctx.EndPin()
	ctx.EndNode()
	ctx.EndGraph()

	assert.True(t, changed)
	assert.Equal(t, []PinRef{out}, got)

	ctx.BeginGraph("test", testBounds, testInput())
	submitNode(ctx, "a", nil, []string{"out"})
	ctx.BeginNode("b", &pos)
	changed = ctx.BeginPin("in", 0, DirectionInput, 0)
	assert.Empty(t, ctx.NewConnections())
	ctx.EndPin()
	ctx.EndNode()
	ctx.EndGraph()

	assert.False(t, changed)
}

func TestErasedEventsReportOtherEndpoint(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	require.True(t, g.MakeConnection(out, in))
	g.BreakConnections(in)

	p, ok := g.findPin(in)
	require.True(t, ok)
	assert.Equal(t, []PinRef{out}, p.erasedConnections)
	// The matching new-connection event was never consumed, so it is
	// retracted rather than delivered alongside the erase.
	assert.Empty(t, p.newConnections)

	other, ok := g.findPin(out)
	require.True(t, ok)
	assert.Equal(t, []PinRef{in}, other.erasedConnections)
}

func TestSweepDrawsOnlyLiveConnections(t *testing.T) {
	ctx := NewContext()

	ctx.BeginGraph("test", testBounds, testInput())
	out, in := twoNodes(ctx)
	ctx.EndGraph()

	g := ctx.FindGraph("test")
	require.True(t, g.MakeConnection(out, in))

	ctx.BeginGraph("test", testBounds, testInput())
	twoNodes(ctx)
	list := ctx.EndGraph()

	beziers := 0
	for _, c := range list.Commands() {
		if c.Kind == draw.CmdBezier {
			beziers++
		}
	}
	assert.Equal(t, 1, beziers, "one committed connection, one curve")
	assert.Equal(t, 1, g.ConnectionCount())
}
