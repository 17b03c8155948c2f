package editor

import (
	"github.com/matzehuels/nodecanvas/pkg/container"
	"github.com/matzehuels/nodecanvas/pkg/draw"
)

// Header is a node's optional title strip: a fill color and the screen
// bounds claimed by the header content.
type Header struct {
	color  draw.Color
	bounds draw.Rect
}

// Node is one visual box in a graph. Nodes are owned by the graph's pool
// and addressed by identity; the struct is reused in place when a slot is
// recycled.
type Node struct {
	graph  *Graph
	id     container.ID
	userID UserID

	// root is the node's anchor position in grid space; bounds is the
	// screen-space rectangle from the previous layout pass.
	root   draw.Vec2
	bounds draw.Rect

	bgChannel int
	fgChannel int

	hovered bool
	active  bool

	dragOffset draw.Vec2

	header  container.Optional[Header]
	inputs  *container.Pool[Pin]
	outputs *container.Pool[Pin]
}

// ID returns the node's identity within its graph.
func (n *Node) ID() container.ID { return n.id }

// UserID returns the token the node was submitted with.
func (n *Node) UserID() UserID { return n.userID }

// Root returns the node's grid-space anchor.
func (n *Node) Root() draw.Vec2 { return n.root }

// ScreenBounds returns the node's rectangle from the last completed layout.
func (n *Node) ScreenBounds() draw.Rect { return n.bounds }

// Hovered reports whether the pointer was over the node last frame.
func (n *Node) Hovered() bool { return n.hovered }

func (n *Node) pins(dir Direction) *container.Pool[Pin] {
	if dir == DirectionOutput {
		return n.outputs
	}
	return n.inputs
}

// Submission ---------------------------------------------------------------

// BeginNode submits a node under a string token. pos is read on the node's
// first frame to place it and written back every frame with the node's
// current grid position, so dragging feeds back into the application's
// variable. Must be balanced by EndNode.
func (c *Context) BeginNode(title string, pos *draw.Vec2) {
	c.assertScope(scopeGraph, "BeginNode")
	g := c.current
	id := container.HashSeeded(g.id, title)
	c.beginNode(id, UserID{String: title, IsString: true}, pos)
}

// BeginNodeInt submits a node under an integer token.
func (c *Context) BeginNodeInt(token int, pos *draw.Vec2) {
	c.assertScope(scopeGraph, "BeginNodeInt")
	g := c.current
	id := container.HashIntSeeded(g.id, token)
	c.beginNode(id, UserID{Int: token}, pos)
}

func (c *Context) beginNode(id container.ID, userID UserID, pos *draw.Vec2) {
	g := c.current
	node := g.nodes.Acquire(id)
	if node.graph == nil {
		node.graph = g
		node.id = id
		node.userID = userID
		node.root = *pos
		node.inputs = container.NewPool[Pin]()
		node.outputs = container.NewPool[Pin]()
	}

	node.inputs.Cleanup()
	node.inputs.Reset()
	node.outputs.Cleanup()
	node.outputs.Reset()
	node.header.Reset()
	*pos = node.root

	g.currentNode = node
	g.submitCount++
	c.scope = scopeNode

	node.bgChannel = g.list.PushChannels(2)
	node.fgChannel = node.bgChannel + 1
	g.list.SetChannel(node.fgChannel)

	pad := g.style.NodePadding * g.camera.Scale
	g.pushGroup(g.GridToScreen(node.root).Add(draw.Vec2{X: pad, Y: pad}))
}

// EndNode closes the node scope, resolves the node's bounds from the content
// group, and lays out the pin columns: inputs on the left edge, outputs
// right-aligned, one row per pin pair.
func (c *Context) EndNode() {
	c.assertScope(scopeNode, "EndNode")
	g := c.current
	node := g.currentNode

	content := g.popGroup()

	pad := g.style.NodePadding * g.camera.Scale
	node.bounds = content.Expand(pad)

	hovering := g.input.WindowFocused && node.bounds.Contains(g.input.MousePos)

	focus, hasFocus := g.focusedNode.Get()
	hover, hasHover := g.hoveredNode.Get()
	isFocus := hasFocus && focus == node.id
	isHover := hasHover && hover == node.id

	// Column width comes from the widest input/output pairing.
	var width float32
	in, out := node.inputs, node.outputs
	rows := in.Len()
	if out.Len() > rows {
		rows = out.Len()
	}
	for i := 0; i < rows; i++ {
		var iw, ow float32
		if i < in.Len() {
			p := in.At(i)
			iw = p.bounds.Width()
			if p.hovered {
				hovering = false
			}
		}
		if i < out.Len() {
			p := out.At(i)
			ow = p.bounds.Width()
			if p.hovered {
				hovering = false
			}
		}
		if iw+ow > width {
			width = iw + ow
		}
	}

	node.hovered = hovering
	node.hovered = node.hovered && (!hasHover || isHover)
	node.hovered = node.hovered && (!hasFocus || isFocus)
	node.hovered = node.hovered && !g.selectRegionStart.Present()

	c.scope = scopeGraph
	g.currentNode = nil

	// Stretch the header across the full node width.
	y := node.bounds.Min.Y + pad
	if h, ok := node.header.Get(); ok {
		h.bounds.Min.X = node.bounds.Min.X
		h.bounds.Max.X = node.bounds.Max.X
		node.header.Set(h)
		y = h.bounds.Max.Y + pad
	}

	// Assign next frame's pin anchors in two columns.
	inX := node.bounds.Min.X + pad
	for i := 0; i < rows; i++ {
		var step float32
		if i < in.Len() {
			p := in.At(i)
			p.pos = draw.Vec2{X: inX, Y: y}
			if h := p.bounds.Height(); h > step {
				step = h
			}
		}
		if i < out.Len() {
			p := out.At(i)
			p.pos = draw.Vec2{X: inX + width - p.bounds.Width(), Y: y}
			if h := p.bounds.Height(); h > step {
				step = h
			}
		}
		y += step + g.style.ItemSpacing*g.camera.Scale
	}
}

// BeginNodeHeader opens the node's header strip. color is the fill, with
// hovered and active variants picked by the node's state from last frame.
// A node may have at most one header, submitted before any pins. Must be
// balanced by EndNodeHeader.
func (c *Context) BeginNodeHeader(title string, color, hovered, active draw.Color) {
	c.assertScope(scopeNode, "BeginNodeHeader")
	g := c.current
	node := g.currentNode
	if node.header.Present() {
		panic("editor: node already has a header")
	}

	if node.hovered {
		color = hovered
	}
	if node.active {
		color = active
	}
	node.header.Set(Header{color: color})

	gr := g.topGroup()
	g.pushGroup(gr.cursor)
	c.scope = scopeNodeHeader

	if title != "" {
		c.Text(title)
	}
}

// EndNodeHeader closes the header strip and records its bounds.
func (c *Context) EndNodeHeader() {
	c.assertScope(scopeNodeHeader, "EndNodeHeader")
	g := c.current
	node := g.currentNode

	bounds := g.popGroup()
	pad := g.style.NodePadding * g.camera.Scale

	h := node.header.Value()
	h.bounds = bounds.Expand(pad)
	node.header.Set(h)

	// Leave a gap between the header strip and the node body.
	gr := g.topGroup()
	gr.cursor.Y += pad

	c.scope = scopeNode
}

// Behaviour and drawing ----------------------------------------------------

// nodeBehaviour runs hit-testing and focus for one node. Returns true when
// the node claimed the pointer, stopping the top-down walk.
func (g *Graph) nodeBehaviour(node *Node) bool {
	isFocus := false
	if focus, ok := g.focusedNode.Get(); ok {
		isFocus = focus == node.id
	}

	if node.hovered {
		g.hoveredNode.Set(node.id)
	}
	if node.hovered && g.input.Clicked(draw.MouseLeft) {
		g.focusedNode.Set(node.id)
	}

	// Drag-select region membership tracks intersection frame by frame.
	if g.selectRegionStart.Present() {
		intersect := g.selectionRect().Overlaps(node.bounds)
		checked := g.selectRegion.Contains(node.id)

		if intersect && !checked {
			g.selectRegion.Insert(node.id)
			g.updateSelection(node.id, false, false)
		}
		if !intersect && checked {
			g.selectRegion.Erase(node.id)
			g.updateSelection(node.id, false, true)
		}
	}

	node.active = isFocus
	return node.hovered
}

func (g *Graph) drawNode(node *Node) {
	style := &g.style
	scale := g.camera.Scale

	color := style.Color(ColorNodeBackground)
	if node.hovered {
		color = style.Color(ColorNodeHoveredBackground)
	}
	if node.active {
		color = style.Color(ColorNodeActiveBackground)
	}

	rounding := style.NodeRounding * scale
	g.list.AddRectFilled(node.bounds, color, rounding)
	g.list.AddRect(node.bounds, style.Color(ColorNodeOutline), rounding, style.NodeOutlineThickness*scale)

	if h, ok := node.header.Get(); ok {
		g.list.AddRectFilled(h.bounds, h.color, rounding)
		g.list.AddLine(
			draw.Vec2{X: h.bounds.Min.X, Y: h.bounds.Max.Y},
			draw.Vec2{X: h.bounds.Max.X, Y: h.bounds.Max.Y},
			style.Color(ColorNodeOutline), style.NodeOutlineThickness*scale,
		)
	}

	if g.selected.Contains(node.id) {
		g.list.AddRect(node.bounds, style.Color(ColorNodeOutlineSelected), rounding, style.NodeOutlineSelectedThickness*scale)
	}
}
