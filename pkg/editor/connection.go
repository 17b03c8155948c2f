package editor

import (
	"github.com/matzehuels/nodecanvas/pkg/container"
	"github.com/matzehuels/nodecanvas/pkg/draw"
	"github.com/matzehuels/nodecanvas/pkg/observability"
)

// Connection joins two pins. A and B keep the order the endpoints were
// passed in; direction is carried per endpoint, so either may be the output
// side.
type Connection struct {
	A, B PinRef
}

// Other returns the endpoint opposite ref.
func (c Connection) Other(ref PinRef) PinRef {
	if c.A == ref {
		return c.B
	}
	return c.A
}

// beginConnection starts a connection drag from a pin head.
func (g *Graph) beginConnection(ref PinRef) {
	g.newConnection.Set(ref)
}

// MakeConnection connects two pins. It fails without side effects when both
// pins share a direction or a node, when either endpoint cannot be resolved,
// or when the graph's validation predicate rejects the pair. An input
// endpoint that already holds a connection has it broken first; inputs are
// single-connection, outputs fan out.
func (g *Graph) MakeConnection(a, b PinRef) bool {
	if a.Direction == b.Direction {
		return false
	}
	if a.Node == b.Node {
		return false
	}

	pinA, okA := g.findPin(a)
	pinB, okB := g.findPin(b)
	if !okA || !okB {
		return false
	}

	if g.validation != nil && !g.validation(pinA, pinB) {
		observability.Editor().OnConnectionRejected(g.name)
		return false
	}

	if pinA.direction == DirectionInput && len(pinA.connections) > 0 {
		g.BreakConnections(a)
	}
	if pinB.direction == DirectionInput && len(pinB.connections) > 0 {
		g.BreakConnections(b)
	}

	id := g.connections.Insert(Connection{A: a, B: b})
	pinA.addConnection(id, b)
	pinB.addConnection(id, a)

	observability.Editor().OnConnectionMade(g.name)
	return true
}

// MakeConnection connects two pins in the current graph scope.
func (c *Context) MakeConnection(a, b PinRef) bool {
	c.assertInGraph("MakeConnection")
	return c.current.MakeConnection(a, b)
}

// BreakConnection removes one connection by identity, updating both
// endpoint pins.
func (g *Graph) BreakConnection(id container.ID) {
	conn, ok := g.connections.Get(id)
	if !ok {
		return
	}
	broken := *conn
	g.connections.Erase(id)

	if pin, ok := g.findPin(broken.A); ok {
		pin.removeConnection(id, broken.B)
	}
	if pin, ok := g.findPin(broken.B); ok {
		pin.removeConnection(id, broken.A)
	}
	observability.Editor().OnConnectionBroken(g.name)
}

// BreakConnections removes every connection on a pin.
func (g *Graph) BreakConnections(ref PinRef) {
	pin, ok := g.findPin(ref)
	if !ok {
		return
	}
	for _, id := range pin.connections {
		conn, ok := g.connections.Get(id)
		if !ok {
			continue
		}
		other := conn.Other(ref)
		g.connections.Erase(id)

		pin.erasedConnections = append(pin.erasedConnections, other)
		pin.erasedPending = true
		trimNew(pin, other)

		if otherPin, found := g.findPin(other); found {
			otherPin.removeConnection(id, ref)
		}
		observability.Editor().OnConnectionBroken(g.name)
	}
	pin.connections = pin.connections[:0]
}

func trimNew(p *Pin, ref PinRef) {
	for i, r := range p.newConnections {
		if r == ref {
			p.newConnections = append(p.newConnections[:i], p.newConnections[i+1:]...)
			return
		}
	}
}

// checkConnection drops a connection whose endpoints no longer resolve.
// Returns true when the connection was removed. This is the per-frame
// validity sweep: deleting a node implicitly deletes its connections here,
// one frame later, with no cascade calls from the application.
func (g *Graph) checkConnection(id container.ID, conn *Connection) bool {
	nodeA, okA := g.nodes.Get(conn.A.Node)
	nodeB, okB := g.nodes.Get(conn.B.Node)
	if !okA || !okB {
		g.cleanupConnection(id, *conn)
		return true
	}
	if !nodeA.pins(conn.A.Direction).Has(conn.A.Pin) {
		g.cleanupConnection(id, *conn)
		return true
	}
	if !nodeB.pins(conn.B.Direction).Has(conn.B.Pin) {
		g.cleanupConnection(id, *conn)
		return true
	}
	return false
}

// cleanupConnection erases a dangling connection from the registry and from
// whichever endpoints still resolve.
func (g *Graph) cleanupConnection(id container.ID, conn Connection) {
	if pin, ok := g.findPin(conn.A); ok {
		pin.removeConnection(id, conn.B)
	}
	if pin, ok := g.findPin(conn.B); ok {
		pin.removeConnection(id, conn.A)
	}
	g.connections.Erase(id)
	observability.Editor().OnConnectionBroken(g.name)
}

// Drawing ------------------------------------------------------------------

// pinConnectionAnchor is the point a connection attaches to: the pin head's
// center nudged outward past the node edge.
func (g *Graph) pinConnectionAnchor(p *Pin) draw.Vec2 {
	radius := g.style.PinRadius * g.camera.Scale
	if p.direction == DirectionOutput {
		return p.center.Add(draw.Vec2{X: radius})
	}
	return p.center.Sub(draw.Vec2{X: radius})
}

// drawConnectionCurve records a cubic bezier from an output anchor to an
// input anchor. The horizontal control offset grows with vertical distance
// so steep connections bow outward instead of collapsing into a line.
func (g *Graph) drawConnectionCurve(out draw.Vec2, outCol draw.Color, in draw.Vec2, inCol draw.Color) {
	frame := g.style.TextHeight * g.camera.Scale

	diffX := out.X - in.X
	diffY := out.Y - in.Y
	yWeight := diffY
	if yWeight < 0 {
		yWeight = -yWeight
	}
	xyRatio := float32(1)
	if diffX > 0 {
		xyRatio += diffX / (frame + yWeight)
	}
	offset := yWeight * xyRatio

	outV := draw.Vec2{X: out.X + offset, Y: out.Y}
	inV := draw.Vec2{X: in.X - offset, Y: in.Y}

	g.list.AddBezierCubic(in, inV, outV, out, inCol, outCol, g.style.ConnectionThickness*g.camera.Scale)
}

// drawConnection paints a committed connection between two resolved pins.
func (g *Graph) drawConnection(a, b *Pin) {
	if a == nil || b == nil {
		return
	}
	aAnchor, aCol := g.pinConnectionAnchor(a), g.style.PinColor(a.pinType)
	bAnchor, bCol := g.pinConnectionAnchor(b), g.style.PinColor(b.pinType)

	if a.direction == DirectionOutput {
		g.drawConnectionCurve(aAnchor, aCol, bAnchor, bCol)
	} else {
		g.drawConnectionCurve(bAnchor, bCol, aAnchor, aCol)
	}
}

// drawDragConnection paints the in-progress connection from a pin to the
// mouse.
func (g *Graph) drawDragConnection(pin *Pin, point draw.Vec2) {
	col := g.style.PinColor(pin.pinType)
	if pin.direction == DirectionOutput {
		g.drawConnectionCurve(g.pinConnectionAnchor(pin), col, point, col)
	} else {
		g.drawConnectionCurve(point, col, g.pinConnectionAnchor(pin), col)
	}
}
