package editor

import "github.com/matzehuels/nodecanvas/pkg/draw"

// group accumulates the bounds of items placed between a begin/end pair.
// Items stack vertically; sameLine moves the cursor back up beside the
// previous item.
type group struct {
	bounds    draw.Rect
	empty     bool
	cursor    draw.Vec2
	lineStart float32
	lastItem  draw.Rect
}

func (g *Graph) pushGroup(at draw.Vec2) {
	g.groups = append(g.groups, group{empty: true, cursor: at, lineStart: at.X})
}

func (g *Graph) topGroup() *group {
	if len(g.groups) == 0 {
		panic("editor: layout item outside any group")
	}
	return &g.groups[len(g.groups)-1]
}

func (g *Graph) include(gr *group, r draw.Rect) {
	if gr.empty {
		gr.bounds = r
		gr.empty = false
		return
	}
	gr.bounds.Min = gr.bounds.Min.Min(r.Min)
	gr.bounds.Max = gr.bounds.Max.Max(r.Max)
}

// addItem claims a rectangle of the given size at the cursor, advances the
// cursor to the next line, and returns the claimed rect.
func (g *Graph) addItem(size draw.Vec2) draw.Rect {
	gr := g.topGroup()
	r := draw.Rect{Min: gr.cursor, Max: gr.cursor.Add(size)}
	g.include(gr, r)
	gr.lastItem = r
	gr.cursor = draw.Vec2{X: gr.lineStart, Y: r.Max.Y + g.style.ItemSpacing*g.camera.Scale}
	return r
}

// sameLine places the next item to the right of the previous one instead of
// on a new line.
func (g *Graph) sameLine() {
	gr := g.topGroup()
	if gr.empty {
		return
	}
	gr.cursor = draw.Vec2{
		X: gr.lastItem.Max.X + g.style.ItemSpacing*g.camera.Scale,
		Y: gr.lastItem.Min.Y,
	}
}

// popGroup closes the top group, folds its bounds into the parent as one
// item, and returns them.
func (g *Graph) popGroup() draw.Rect {
	gr := g.topGroup()
	bounds := gr.bounds
	if gr.empty {
		bounds = draw.Rect{Min: gr.cursor, Max: gr.cursor}
	}
	g.groups = g.groups[:len(g.groups)-1]

	if len(g.groups) > 0 {
		parent := g.topGroup()
		g.include(parent, bounds)
		parent.lastItem = bounds
		parent.cursor = draw.Vec2{X: parent.lineStart, Y: bounds.Max.Y + g.style.ItemSpacing*g.camera.Scale}
	}
	return bounds
}

// textSize measures a single-line string with the style's fixed-grid font
// metrics, scaled by the camera.
func (g *Graph) textSize(s string) draw.Vec2 {
	return draw.Vec2{
		X: g.style.TextWidth * float32(len(s)) * g.camera.Scale,
		Y: g.style.TextHeight * g.camera.Scale,
	}
}

// Text places a single-line label at the cursor of the innermost open group.
// Valid inside node, node header and pin scopes.
func (c *Context) Text(s string) {
	switch c.scope {
	case scopeNode, scopeNodeHeader, scopePin:
	default:
		panic("editor: Text called outside a node scope")
	}
	g := c.current
	size := g.textSize(s)
	r := g.addItem(size)
	g.list.AddText(r.Min, g.style.Color(ColorText), s)
}

// SameLine keeps the next item on the current line.
func (c *Context) SameLine() {
	c.assertInGraph("SameLine")
	c.current.sameLine()
}

// Spacing claims an empty rectangle, e.g. to pad a node body.
func (c *Context) Spacing(size draw.Vec2) {
	c.assertInGraph("Spacing")
	c.current.addItem(size.Mul(c.current.camera.Scale))
}
