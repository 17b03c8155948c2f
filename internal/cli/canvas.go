package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/nodecanvas/pkg/draw"
)

// =============================================================================
// Canvas - Terminal Rasterizer
// =============================================================================

// cell is one terminal character of rasterized output. A zero fg or bg
// (alpha 0) means unstyled.
type cell struct {
	r  rune
	fg draw.Color
	bg draw.Color
}

// canvas rasterizes a merged draw list into a grid of terminal cells. Each
// cell covers pxW x pxH editor pixels, chosen so one character of editor text
// lands in one terminal cell.
type canvas struct {
	w, h  int
	pxW   float32
	pxH   float32
	cells []cell

	styles map[[2]draw.Color]lipgloss.Style
}

// newCanvas creates a canvas of w x h terminal cells.
func newCanvas(w, h int, pxW, pxH float32) *canvas {
	return &canvas{
		w:      w,
		h:      h,
		pxW:    pxW,
		pxH:    pxH,
		cells:  make([]cell, w*h),
		styles: make(map[[2]draw.Color]lipgloss.Style),
	}
}

// Resize adjusts the grid, discarding content.
func (c *canvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

// Clear resets every cell to empty.
func (c *canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Render rasterizes cmds onto the grid. Commands must come from a merged
// list, in back-to-front order.
func (c *canvas) Render(cmds []draw.Cmd) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Kind {
		case draw.CmdRectFilled:
			c.fillRect(cmd.Points[0], cmd.Points[1], cmd.Color)
		case draw.CmdRect:
			c.strokeRect(cmd.Points[0], cmd.Points[1], cmd.Color)
		case draw.CmdLine:
			c.line(cmd.Points[0], cmd.Points[1], cmd.Color)
		case draw.CmdBezier:
			c.bezier(cmd.Points[0], cmd.Points[1], cmd.Points[2], cmd.Points[3], cmd.Color, cmd.ColorB)
		case draw.CmdCircle:
			c.plot(c.cellX(cmd.Points[0].X), c.cellY(cmd.Points[0].Y), '○', cmd.Color)
		case draw.CmdCircleFilled:
			c.plot(c.cellX(cmd.Points[0].X), c.cellY(cmd.Points[0].Y), '●', cmd.Color)
		case draw.CmdText:
			c.text(cmd.Points[0], cmd.Text, cmd.Color)
		}
	}
}

// String renders the grid as styled terminal lines.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		var run strings.Builder
		var runKey [2]draw.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(c.style(runKey).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			r := cl.r
			if r == 0 {
				r = ' '
			}
			key := [2]draw.Color{cl.fg, cl.bg}
			if run.Len() > 0 && key != runKey {
				flush()
			}
			runKey = key
			run.WriteRune(r)
		}
		flush()
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *canvas) style(key [2]draw.Color) lipgloss.Style {
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if key[0].A > 0 {
		s = s.Foreground(lipgloss.Color(hexColor(key[0])))
	}
	if key[1].A > 0 {
		s = s.Background(lipgloss.Color(hexColor(key[1])))
	}
	c.styles[key] = s
	return s
}

func hexColor(col draw.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
}

func (c *canvas) cellX(x float32) int { return int(x / c.pxW) }
func (c *canvas) cellY(y float32) int { return int(y / c.pxH) }

func (c *canvas) plot(x, y int, r rune, col draw.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h || col.A == 0 {
		return
	}
	cl := &c.cells[y*c.w+x]
	cl.r = r
	cl.fg = col
}

func (c *canvas) fillRect(min, max draw.Vec2, col draw.Color) {
	if col.A == 0 {
		return
	}
	x0, y0 := c.cellX(min.X), c.cellY(min.Y)
	x1, y1 := c.cellX(max.X), c.cellY(max.Y)
	for y := maxInt(y0, 0); y <= minInt(y1, c.h-1); y++ {
		for x := maxInt(x0, 0); x <= minInt(x1, c.w-1); x++ {
			c.cells[y*c.w+x] = cell{bg: col}
		}
	}
}

func (c *canvas) strokeRect(min, max draw.Vec2, col draw.Color) {
	x0, y0 := c.cellX(min.X), c.cellY(min.Y)
	x1, y1 := c.cellX(max.X), c.cellY(max.Y)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.plot(x, y0, '─', col)
		c.plot(x, y1, '─', col)
	}
	for y := y0 + 1; y < y1; y++ {
		c.plot(x0, y, '│', col)
		c.plot(x1, y, '│', col)
	}
	c.plot(x0, y0, '┌', col)
	c.plot(x1, y0, '┐', col)
	c.plot(x0, y1, '└', col)
	c.plot(x1, y1, '┘', col)
}

func (c *canvas) line(a, b draw.Vec2, col draw.Color) {
	x0, y0 := c.cellX(a.X), c.cellY(a.Y)
	x1, y1 := c.cellX(b.X), c.cellY(b.Y)
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	r := lineRune(x1-x0, y1-y0)
	err := dx + dy
	for {
		c.plot(x0, y0, r, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineRune picks a stroke character from the dominant direction.
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *canvas) bezier(p1, p2, p3, p4 draw.Vec2, c1, c2 draw.Color) {
	const steps = 24
	prev := p1
	for i := 1; i <= steps; i++ {
		t := float32(i) / steps
		pt := bezierPoint(p1, p2, p3, p4, t)
		col := c1
		if t > 0.5 {
			col = c2
		}
		c.line(prev, pt, col)
		prev = pt
	}
}

func bezierPoint(p1, p2, p3, p4 draw.Vec2, t float32) draw.Vec2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	cc := 3 * u * t * t
	d := t * t * t
	return draw.Vec2{
		X: a*p1.X + b*p2.X + cc*p3.X + d*p4.X,
		Y: a*p1.Y + b*p2.Y + cc*p3.Y + d*p4.Y,
	}
}

func (c *canvas) text(pos draw.Vec2, s string, col draw.Color) {
	x, y := c.cellX(pos.X), c.cellY(pos.Y)
	for i, r := range []rune(s) {
		c.plot(x+i, y, r, col)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
