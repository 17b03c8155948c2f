package editor

import (
	"github.com/matzehuels/nodecanvas/pkg/container"
	"github.com/matzehuels/nodecanvas/pkg/draw"
)

// PinType is an application-defined tag used for connection validation and
// pin coloring. The editor never interprets it beyond indexing the style's
// pin color table.
type PinType int

// PinFlags adjust pin layout.
type PinFlags int

const (
	PinFlagNone PinFlags = 0
	// PinFlagNoPadding draws the pin head flush with the node edge.
	PinFlagNoPadding PinFlags = 1 << 0
)

// Direction tells whether a pin receives or emits connections. Input pins
// hold at most one connection; output pins hold any number.
type Direction bool

const (
	DirectionInput  Direction = false
	DirectionOutput Direction = true
)

func (d Direction) String() string {
	if d == DirectionOutput {
		return "output"
	}
	return "input"
}

// PinRef addresses a pin by identity rather than by pointer, so it stays
// valid across frames while pool slots move around.
type PinRef struct {
	Node      container.ID
	Pin       container.ID
	Direction Direction
}

// Pin is one connection endpoint on a node.
type Pin struct {
	node      container.ID
	id        container.ID
	userID    UserID
	pinType   PinType
	direction Direction
	flags     PinFlags

	// pos is the cursor position assigned during node layout; center is the
	// pin head center in screen space, resolved at draw time.
	pos    draw.Vec2
	center draw.Vec2
	bounds draw.Rect

	connections       []container.ID
	newConnections    []PinRef
	erasedConnections []PinRef
	// The transient lists last exactly one resubmission: entries appended
	// during or between frames are reported by the next BeginPin and
	// dropped at its EndPin unless fresh events re-flag them.
	newPending    bool
	erasedPending bool

	hovered bool
}

// Ref returns the stable identity triple for this pin.
func (p *Pin) Ref() PinRef {
	return PinRef{Node: p.node, Pin: p.id, Direction: p.direction}
}

// ID returns the pin's identity within its node.
func (p *Pin) ID() container.ID { return p.id }

// UserID returns the token the pin was submitted with.
func (p *Pin) UserID() UserID { return p.userID }

// Type returns the application-defined type tag.
func (p *Pin) Type() PinType { return p.pinType }

// Connected reports whether the pin participates in any connection.
func (p *Pin) Connected() bool { return len(p.connections) > 0 }

func (p *Pin) addConnection(conn container.ID, other PinRef) {
	p.connections = append(p.connections, conn)
	p.newConnections = append(p.newConnections, other)
	p.newPending = true
}

func (p *Pin) removeConnection(conn container.ID, other PinRef) {
	for i, c := range p.connections {
		if c == conn {
			p.connections = append(p.connections[:i], p.connections[i+1:]...)
			break
		}
	}
	p.erasedConnections = append(p.erasedConnections, other)
	p.erasedPending = true

	// A connection made and broken before its owner ever saw it should not
	// surface as "new".
	for i, r := range p.newConnections {
		if r == other {
			p.newConnections = append(p.newConnections[:i], p.newConnections[i+1:]...)
			break
		}
	}
}

// tickConnectionLists drops transient entries the application has already
// read. Called once per frame when the pin is resubmitted.
func (p *Pin) tickConnectionLists() {
	if !p.newPending {
		p.newConnections = p.newConnections[:0]
	}
	if !p.erasedPending {
		p.erasedConnections = p.erasedConnections[:0]
	}
}

// Submission ---------------------------------------------------------------

// BeginPin submits a pin on the current node under a string token. The
// return value reports whether the pin gained or lost connections since the
// previous frame. Must be balanced by EndPin.
func (c *Context) BeginPin(title string, t PinType, dir Direction, flags PinFlags) bool {
	c.assertScope(scopeNode, "BeginPin")
	node := c.current.currentNode
	id := container.HashSeeded(node.id, title)
	return c.beginPin(id, UserID{String: title, IsString: true}, t, dir, flags)
}

// BeginPinInt submits a pin under an integer token.
func (c *Context) BeginPinInt(token int, t PinType, dir Direction, flags PinFlags) bool {
	c.assertScope(scopeNode, "BeginPinInt")
	node := c.current.currentNode
	id := container.HashIntSeeded(node.id, token)
	return c.beginPin(id, UserID{Int: token}, t, dir, flags)
}

func (c *Context) beginPin(id container.ID, userID UserID, t PinType, dir Direction, flags PinFlags) bool {
	g := c.current
	node := g.currentNode

	pin := node.pins(dir).Acquire(id)
	g.currentPin = pin

	changed := len(pin.newConnections) > 0 || len(pin.erasedConnections) > 0
	pin.newPending = false
	pin.erasedPending = false

	pin.node = node.id
	pin.id = id
	pin.userID = userID
	pin.pinType = t
	pin.direction = dir
	pin.flags = flags

	// The first frame lays out from a zero anchor; EndNode assigns the real
	// one for the next frame.
	g.pushGroup(pin.pos)
	c.scope = scopePin

	if dir == DirectionInput {
		g.pinHead(pin)
		g.sameLine()
	} else if flags&PinFlagNoPadding == 0 {
		g.dummyPinHead()
		g.sameLine()
	}

	return changed
}

// EndPin closes the pin scope. Output pins draw their head here, on the far
// side of the pin's content.
func (c *Context) EndPin() {
	c.assertScope(scopePin, "EndPin")
	g := c.current
	pin := g.currentPin

	if pin.direction == DirectionOutput {
		g.sameLine()
		g.pinHead(pin)
	}

	pin.bounds = g.popGroup()

	c.scope = scopeNode
	g.currentPin = nil

	pin.tickConnectionLists()
}

// Queries, valid inside a pin scope ----------------------------------------

func (c *Context) pinScope(op string) *Pin {
	if c.scope != scopePin || c.current == nil || c.current.currentPin == nil {
		panic("editor: " + op + " called outside a pin scope")
	}
	return c.current.currentPin
}

// IsPinConnected reports whether the current pin holds any connection.
func (c *Context) IsPinConnected() bool {
	return c.pinScope("IsPinConnected").Connected()
}

// Connections returns the current pin's connection identities.
func (c *Context) Connections() []container.ID {
	return c.pinScope("Connections").connections
}

// NewConnections returns the endpoints connected to the current pin since
// the owner last looked.
func (c *Context) NewConnections() []PinRef {
	return c.pinScope("NewConnections").newConnections
}

// ErasedConnections returns the endpoints disconnected from the current pin
// since the owner last looked.
func (c *Context) ErasedConnections() []PinRef {
	return c.pinScope("ErasedConnections").erasedConnections
}

// PinRef returns the identity triple of the current pin.
func (c *Context) PinRef() PinRef {
	return c.pinScope("PinRef").Ref()
}

// Graph-level variants, usable in any graph scope.

// IsPinConnected reports whether the referenced pin holds any connection.
func (g *Graph) IsPinConnected(ref PinRef) bool {
	p, ok := g.findPin(ref)
	return ok && p.Connected()
}

// PinConnections returns the referenced pin's connection identities, or nil
// when the pin does not resolve.
func (g *Graph) PinConnections(ref PinRef) []container.ID {
	p, ok := g.findPin(ref)
	if !ok {
		return nil
	}
	return p.connections
}

// Connection returns the connection stored under id.
func (g *Graph) Connection(id container.ID) (Connection, bool) {
	c, ok := g.connections.Get(id)
	if !ok {
		return Connection{}, false
	}
	return *c, true
}

// Widget -------------------------------------------------------------------

// pinHead draws the connection knob and runs its interaction: click to start
// a connection drag, release over another head to commit, alt-release to
// break everything on the pin.
func (g *Graph) pinHead(pin *Pin) {
	style := &g.style
	scale := g.camera.Scale

	square := style.TextHeight * scale
	r := g.addItem(draw.Vec2{X: square, Y: square})
	pin.center = r.Center()

	radius := style.PinRadius * scale
	outline := style.PinOutlineThickness * scale

	pressed := false
	filled := len(pin.connections) > 0
	if g.input.WindowFocused {
		pin.hovered = r.Contains(g.input.MousePos)
		pressed = pin.hovered && g.input.Down(draw.MouseLeft)
		if drag, ok := g.newConnection.Get(); ok && drag == pin.Ref() {
			filled = true
		}
		filled = filled || pin.hovered

		if pin.hovered {
			// A press that lands on a pin must not open a select region.
			g.lockSelectRegion = true
		}

		if pin.hovered && g.input.Clicked(draw.MouseLeft) && !g.input.AnyMod() {
			g.beginConnection(pin.Ref())
		}

		if pin.hovered && g.input.Released(draw.MouseLeft) {
			if drag, ok := g.newConnection.Get(); ok {
				g.MakeConnection(pin.Ref(), drag)
			} else if g.input.Mods&draw.ModAlt != 0 {
				g.BreakConnections(pin.Ref())
			}
		}
	} else {
		pin.hovered = false
	}

	pinColor := style.PinColor(pin.pinType)
	if pressed {
		pinColor = pinColor.Scale(0.8)
	}

	if pressed || filled {
		g.list.AddCircleFilled(pin.center, radius+outline*0.5, pinColor)
	} else {
		g.list.AddCircleFilled(pin.center, radius, style.Color(ColorPinBackground))
		g.list.AddCircle(pin.center, radius, pinColor, outline)
	}
}

// dummyPinHead claims the head's space without drawing, keeping output pin
// content aligned with input rows.
func (g *Graph) dummyPinHead() {
	square := g.style.TextHeight * g.camera.Scale
	g.addItem(draw.Vec2{X: square, Y: square})
}
