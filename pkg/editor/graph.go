package editor

import (
	"github.com/matzehuels/nodecanvas/pkg/container"
	"github.com/matzehuels/nodecanvas/pkg/draw"
	"github.com/matzehuels/nodecanvas/pkg/observability"
)

// Camera maps grid space to screen space. Position is the grid point shown
// at the center of the graph's bounds; Scale is pixels per grid unit factor
// applied around that center.
type Camera struct {
	Position draw.Vec2
	Scale    float32
}

// Graph holds all retained state for one node graph: the node pool, the
// connection registry, selection, camera, and per-frame interaction state.
// Graphs are created through [Context.Graph] and live as long as the
// context.
type Graph struct {
	ctx   *Context
	id    container.ID
	name  string
	style Style
	cfg   Settings

	bounds draw.Rect

	camera     Camera
	targetZoom float32
	panning    bool

	// Interaction state carried across frames.
	selectRegionStart container.Optional[draw.Vec2]
	selectRegion      *container.Set[container.ID]
	dragging          bool
	lockSelectRegion  bool

	nodes       *container.Pool[Node]
	hoveredNode container.Optional[container.ID]
	focusedNode container.Optional[container.ID]
	selected    *container.Set[container.ID]
	currentNode *Node
	currentPin  *Pin
	submitCount int

	// newConnection holds the source pin while the user drags a connection.
	newConnection container.Optional[PinRef]
	connections   container.List[Connection]
	validation    Validation

	list  *draw.List
	input *draw.Input

	// Layout group stack for the frame in progress.
	groups []group
}

func newGraph(ctx *Context, id container.ID, name string) *Graph {
	return &Graph{
		ctx:          ctx,
		id:           id,
		name:         name,
		style:        DefaultStyle(),
		cfg:          DefaultSettings(),
		camera:       Camera{Scale: 1},
		targetZoom:   1,
		selectRegion: container.NewIDSet(),
		nodes:        container.NewPool[Node](),
		selected:     container.NewIDSet(),
		list:         draw.NewList(),
	}
}

// ID returns the graph's stable identity, derived from its title.
func (g *Graph) ID() container.ID { return g.id }

// Name returns the title the graph was registered under.
func (g *Graph) Name() string { return g.name }

// Style returns the graph's style for mutation between frames.
func (g *Graph) Style() *Style { return &g.style }

// Settings returns the graph's interaction settings for mutation.
func (g *Graph) Settings() *Settings { return &g.cfg }

// SetTheme replaces the style and settings wholesale, e.g. after a theme
// file reload.
func (g *Graph) SetTheme(s Style, cfg Settings) {
	g.style = s
	g.cfg = cfg
}

// SetValidation registers the connection predicate. The predicate returns
// true to allow a prospective connection; nil allows everything.
func (g *Graph) SetValidation(v Validation) { g.validation = v }

// Camera returns the current camera.
func (g *Graph) Camera() Camera { return g.camera }

// Selected returns the selected node identities in ascending order.
func (g *Graph) Selected() []container.ID {
	ord := container.NewOrdered[container.ID]()
	g.selected.Each(func(id container.ID) bool {
		ord.Insert(id)
		return true
	})
	return ord.Values()
}

// IsSelected reports whether the node is in the selection set.
func (g *Graph) IsSelected(node container.ID) bool { return g.selected.Contains(node) }

// BringToFront moves a node to the top of the presentation order so it
// paints over its neighbors next frame. Reports whether the node exists.
func (g *Graph) BringToFront(node container.ID) bool {
	if !g.nodes.Has(node) {
		return false
	}
	g.nodes.PushToTop(node)
	return true
}

// ConnectionCount returns the number of live connections.
func (g *Graph) ConnectionCount() int { return g.connections.Len() }

// UserID returns the token the node was submitted with.
func (g *Graph) UserID(node container.ID) (UserID, bool) {
	n, ok := g.nodes.Get(node)
	if !ok {
		return UserID{}, false
	}
	return n.userID, true
}

// PinUserID returns the token the referenced pin was submitted with.
func (g *Graph) PinUserID(ref PinRef) (UserID, bool) {
	p, ok := g.findPin(ref)
	if !ok {
		return UserID{}, false
	}
	return p.userID, true
}

// findPin resolves a pin reference through the node pool.
func (g *Graph) findPin(ref PinRef) (*Pin, bool) {
	node, ok := g.nodes.Get(ref.Node)
	if !ok {
		return nil, false
	}
	pins := node.pins(ref.Direction)
	return pins.Get(ref.Pin)
}

// Frame lifecycle ----------------------------------------------------------

func (g *Graph) beginFrame(bounds draw.Rect, in *draw.Input) {
	g.bounds = bounds
	g.input = in
	g.submitCount = 0
	g.lockSelectRegion = false
	g.groups = g.groups[:0]

	// Reclaim nodes that were not resubmitted last frame and evict their
	// identities from the selection before slots get reused.
	freed := g.nodes.Cleanup()
	if freed > 0 {
		for _, id := range g.nodes.FreedIDs(freed) {
			g.selected.Erase(id)
		}
		observability.Editor().OnNodesReclaimed(g.name, freed)
	}
	g.nodes.Reset()

	g.list.Reset()
	g.list.AddRectFilled(bounds, g.style.Color(ColorGridBackground), 0)
	g.drawGrid(bounds)
}

func (g *Graph) endFrame() {
	if len(g.groups) != 0 {
		panic("editor: EndGraph with an open layout group")
	}
	g.drawGraph()
	g.graphBehaviour()
	g.input = nil
}

// Coordinate transforms ----------------------------------------------------

// GridToScreen converts a grid-space position to screen space.
func (g *Graph) GridToScreen(pos draw.Vec2) draw.Vec2 {
	return pos.Sub(g.camera.Position).Mul(g.camera.Scale).Add(g.bounds.Center())
}

// ScreenToGrid converts a screen-space position to grid space.
func (g *Graph) ScreenToGrid(pos draw.Vec2) draw.Vec2 {
	return g.camera.Position.Add(pos.Sub(g.bounds.Center()).Div(g.camera.Scale))
}

// WindowToScreen converts a position relative to the graph's origin to
// screen space.
func (g *Graph) WindowToScreen(pos draw.Vec2) draw.Vec2 { return g.bounds.Min.Add(pos) }

// ScreenToWindow converts a screen-space position to graph-relative space.
func (g *Graph) ScreenToWindow(pos draw.Vec2) draw.Vec2 { return pos.Sub(g.bounds.Min) }

// GridToWindow converts a grid-space position to graph-relative space.
func (g *Graph) GridToWindow(pos draw.Vec2) draw.Vec2 {
	return g.GridToScreen(pos).Sub(g.bounds.Min)
}

// WindowToGrid converts a graph-relative position to grid space.
func (g *Graph) WindowToGrid(pos draw.Vec2) draw.Vec2 {
	return g.ScreenToGrid(g.bounds.Min.Add(pos))
}

// SnapToGrid floors a grid-space position to the secondary grid.
func (g *Graph) SnapToGrid(pos draw.Vec2) draw.Vec2 {
	step := g.gridSecondarySize()
	return pos.Div(step).Floor().Mul(step)
}

// gridSecondarySize is the secondary grid cell size in grid units. It is
// tied to the text line height so cells track the font like the rest of the
// layout.
func (g *Graph) gridSecondarySize() float32 {
	return g.style.TextHeight / g.camera.Scale
}

// Grid ---------------------------------------------------------------------

func (g *Graph) drawGrid(bounds draw.Rect) {
	style := &g.style

	secondarySize := g.gridSecondarySize()
	primarySize := secondarySize * style.GridPrimaryStep

	secondaryStep := secondarySize * g.camera.Scale
	primaryStep := primarySize * g.camera.Scale

	start := g.ScreenToGrid(bounds.Min)
	start = start.Div(primarySize).Floor().Mul(primarySize)
	start = g.GridToScreen(start)

	end := g.ScreenToGrid(bounds.Max)
	end = end.Div(primarySize).Floor().Mul(primarySize)
	end = end.Add(draw.Vec2{X: primarySize, Y: primarySize})
	end = g.GridToScreen(end)

	secondary := style.Color(ColorGridSecondaryLines)
	for x := start.X; x < end.X; x += secondaryStep {
		g.list.AddLine(draw.Vec2{X: x, Y: bounds.Min.Y}, draw.Vec2{X: x, Y: end.Y}, secondary, style.GridSecondaryThickness*g.camera.Scale)
	}
	for y := start.Y; y < end.Y; y += secondaryStep {
		g.list.AddLine(draw.Vec2{X: bounds.Min.X, Y: y}, draw.Vec2{X: end.X, Y: y}, secondary, style.GridSecondaryThickness*g.camera.Scale)
	}

	primary := style.Color(ColorGridPrimaryLines)
	for x := start.X; x < end.X; x += primaryStep {
		g.list.AddLine(draw.Vec2{X: x, Y: bounds.Min.Y}, draw.Vec2{X: x, Y: end.Y}, primary, style.GridPrimaryThickness*g.camera.Scale)
	}
	for y := start.Y; y < end.Y; y += primaryStep {
		g.list.AddLine(draw.Vec2{X: bounds.Min.X, Y: y}, draw.Vec2{X: end.X, Y: y}, primary, style.GridPrimaryThickness*g.camera.Scale)
	}
}

// Selection ---------------------------------------------------------------

// selectionRect returns the screen-space rectangle between the select-region
// anchor and the mouse.
func (g *Graph) selectionRect() draw.Rect {
	start, ok := g.selectRegionStart.Get()
	if !ok {
		return draw.Rect{Min: draw.Vec2{X: -1, Y: -1}, Max: draw.Vec2{X: -1, Y: -1}}
	}
	return draw.RectFromPoints(g.input.MousePos, start)
}

// updateSelection applies one click's worth of selection change to a node.
// Ctrl toggles membership, Shift adds (or removes during region shrink),
// and an unmodified click replaces the selection when allowClear is set.
func (g *Graph) updateSelection(node container.ID, allowClear, removal bool) {
	switch {
	case g.input.Mods&draw.ModCtrl != 0:
		if g.selected.Contains(node) {
			g.selected.Erase(node)
		} else {
			g.selected.Insert(node)
		}
	default:
		if g.input.Mods&draw.ModShift == 0 && allowClear {
			g.selected.Clear()
		}
		if removal {
			g.selected.Erase(node)
		} else {
			g.selected.Insert(node)
		}
	}
}

// Behaviour ----------------------------------------------------------------

func (g *Graph) graphBehaviour() {
	in := g.input

	if !in.WindowFocused || g.newConnection.Present() {
		// A connection drag released over empty space is a cancel.
		if in.Released(draw.MouseLeft) && g.newConnection.Present() {
			g.newConnection.Reset()
		}
		return
	}

	hovered := g.bounds.Contains(in.MousePos)

	// Zoom toward the target with exponential smoothing.
	if hovered {
		g.targetZoom += in.Wheel * g.cfg.ZoomRate * g.camera.Scale
	}
	g.targetZoom = draw.Clamp(g.targetZoom, g.cfg.ZoomMin, g.cfg.ZoomMax)
	g.camera.Scale = draw.Lerp(g.camera.Scale, g.targetZoom, in.DeltaTime*g.cfg.ZoomSmoothing)

	if in.Clicked(draw.MouseLeft) {
		if focus, ok := g.focusedNode.Get(); ok {
			// Record drag offsets so the whole selection moves rigidly.
			mouse := g.ScreenToGrid(in.MousePos)
			g.selected.Each(func(id container.ID) bool {
				if n, ok := g.nodes.Get(id); ok {
					n.dragOffset = mouse.Sub(n.root)
				}
				return true
			})
			if n, ok := g.nodes.Get(focus); ok {
				n.dragOffset = mouse.Sub(n.root)
			}
		} else if in.Mods == 0 {
			g.selected.Clear()
		}
	}

	if in.Released(draw.MouseLeft) {
		if focus, ok := g.focusedNode.Get(); ok && !g.dragging {
			g.updateSelection(focus, true, false)
		}
		g.focusedNode.Reset()
		g.selectRegionStart.Reset()
		g.selectRegion.Clear()
		g.dragging = false
	}

	if in.Dragging(draw.MouseLeft) {
		if focus, ok := g.focusedNode.Get(); ok {
			if !g.selected.Contains(focus) {
				g.updateSelection(focus, true, false)
			}
			mouse := g.ScreenToGrid(in.MousePos)
			g.selected.Each(func(id container.ID) bool {
				n, ok := g.nodes.Get(id)
				if !ok {
					return true
				}
				n.root = mouse.Sub(n.dragOffset)
				if in.Mods&draw.ModAlt != 0 {
					n.root = g.SnapToGrid(n.root)
				}
				return true
			})
			g.dragging = true
		} else if !g.selectRegionStart.Present() && !g.lockSelectRegion {
			g.selectRegionStart.Set(in.MousePos)
		}
	}

	// Panning with the middle button.
	if hovered && in.Clicked(draw.MouseMiddle) {
		g.panning = true
	}
	if in.Released(draw.MouseMiddle) {
		g.panning = false
	}
	if g.panning {
		g.camera.Position = g.camera.Position.Sub(in.MouseDelta.Div(g.camera.Scale))
	}

	if in.Pressed == draw.KeyBringToFront {
		if id, ok := g.hoveredNode.Get(); ok {
			g.BringToFront(id)
		}
	}
}

// Drawing ------------------------------------------------------------------

func (g *Graph) drawGraph() {
	prevFocus := g.focusedNode
	g.hoveredNode.Reset()
	if g.input.WindowFocused && !g.newConnection.Present() {
		// Topmost node wins hit-testing, so walk back to front.
		g.nodes.EachReverse(func(id container.ID, n *Node) bool {
			return !g.nodeBehaviour(n)
		})
	}
	if prevFocus != g.focusedNode {
		if id, ok := g.focusedNode.Get(); ok {
			g.nodes.PushToTop(id)
		}
	}

	g.nodes.Each(func(id container.ID, n *Node) bool {
		g.list.SetChannel(n.bgChannel)
		g.drawNode(n)
		return true
	})

	g.sortChannels()
	g.list.Merge()

	if ref, ok := g.newConnection.Get(); ok {
		if pin, found := g.findPin(ref); found {
			g.drawDragConnection(pin, g.input.MousePos)
		}
	}

	// Validity sweep plus draw pass over the registry.
	g.connections.Each(func(id container.ID, conn *Connection) bool {
		if g.checkConnection(id, conn) {
			return true
		}
		a, _ := g.findPin(conn.A)
		b, _ := g.findPin(conn.B)
		g.drawConnection(a, b)
		return true
	})

	if g.selectRegionStart.Present() {
		sel := g.selectionRect()
		g.list.AddRectFilled(sel, g.style.Color(ColorSelectRegionBackground), g.style.SelectRegionRounding)
		g.list.AddRect(sel, g.style.Color(ColorSelectRegionOutline), g.style.SelectRegionRounding, g.style.SelectRegionOutlineThickness)
	}
}

// sortChannels permutes the per-node draw channel pairs so channel order
// matches the pool's presentation order. Only nodes submitted this frame
// pushed channels, so the pair count equals the submit count.
func (g *Graph) sortChannels() {
	count := g.submitCount * 2
	if count == 0 {
		return
	}
	base := g.list.ChannelCount() - count

	perm := make([]int, count)
	for i := range perm {
		perm[i] = -1
	}

	rank := 0
	g.nodes.Each(func(id container.ID, n *Node) bool {
		perm[n.bgChannel-base] = rank * 2
		perm[n.fgChannel-base] = rank*2 + 1
		rank++
		return true
	})

	g.list.ReorderChannels(base, perm)
}
