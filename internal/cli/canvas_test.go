package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/nodecanvas/pkg/draw"
)

func testCanvas(w, h int) *canvas {
	// One editor pixel per cell keeps coordinates readable in assertions.
	return newCanvas(w, h, 1, 1)
}

func cellAt(c *canvas, x, y int) cell {
	return c.cells[y*c.w+x]
}

func TestCanvasFillRect(t *testing.T) {
	c := testCanvas(8, 4)
	col := draw.RGB(0x10, 0x20, 0x30)
	c.fillRect(draw.Vec2{X: 1, Y: 1}, draw.Vec2{X: 3, Y: 2}, col)

	assert.Equal(t, col, cellAt(c, 1, 1).bg)
	assert.Equal(t, col, cellAt(c, 3, 2).bg)
	assert.Equal(t, draw.Color{}, cellAt(c, 0, 0).bg)
	assert.Equal(t, draw.Color{}, cellAt(c, 4, 1).bg)
}

func TestCanvasFillRectIgnoresTransparent(t *testing.T) {
	c := testCanvas(4, 4)
	c.fillRect(draw.Vec2{}, draw.Vec2{X: 3, Y: 3}, draw.Color{})
	assert.Equal(t, draw.Color{}, cellAt(c, 1, 1).bg)
}

func TestCanvasText(t *testing.T) {
	c := testCanvas(10, 2)
	col := draw.RGB(0xFF, 0xFF, 0xFF)
	c.text(draw.Vec2{X: 2, Y: 1}, "hi", col)

	assert.Equal(t, 'h', cellAt(c, 2, 1).r)
	assert.Equal(t, 'i', cellAt(c, 3, 1).r)
	assert.Equal(t, col, cellAt(c, 2, 1).fg)
}

func TestCanvasTextClipsAtEdge(t *testing.T) {
	c := testCanvas(4, 1)
	c.text(draw.Vec2{X: 2, Y: 0}, "abcdef", draw.RGB(1, 2, 3))
	assert.Equal(t, 'a', cellAt(c, 2, 0).r)
	assert.Equal(t, 'b', cellAt(c, 3, 0).r)
}

func TestCanvasLineRunes(t *testing.T) {
	assert.Equal(t, '─', lineRune(5, 0))
	assert.Equal(t, '│', lineRune(0, 5))
	assert.Equal(t, '╲', lineRune(3, 3))
	assert.Equal(t, '╱', lineRune(3, -3))
}

func TestCanvasHorizontalLine(t *testing.T) {
	c := testCanvas(6, 1)
	c.line(draw.Vec2{X: 0, Y: 0}, draw.Vec2{X: 5, Y: 0}, draw.RGB(1, 1, 1))
	for x := 0; x < 6; x++ {
		assert.Equal(t, '─', cellAt(c, x, 0).r, "x=%d", x)
	}
}

func TestCanvasStrokeRectCorners(t *testing.T) {
	c := testCanvas(5, 4)
	col := draw.RGB(9, 9, 9)
	c.strokeRect(draw.Vec2{X: 0, Y: 0}, draw.Vec2{X: 4, Y: 3}, col)

	assert.Equal(t, '┌', cellAt(c, 0, 0).r)
	assert.Equal(t, '┐', cellAt(c, 4, 0).r)
	assert.Equal(t, '└', cellAt(c, 0, 3).r)
	assert.Equal(t, '┘', cellAt(c, 4, 3).r)
	assert.Equal(t, '─', cellAt(c, 2, 0).r)
	assert.Equal(t, '│', cellAt(c, 0, 1).r)
}

func TestCanvasBezierEndpoints(t *testing.T) {
	p1 := draw.Vec2{X: 0, Y: 0}
	p4 := draw.Vec2{X: 10, Y: 10}
	assert.Equal(t, p1, bezierPoint(p1, draw.Vec2{X: 3}, draw.Vec2{X: 7, Y: 10}, p4, 0))
	assert.Equal(t, p4, bezierPoint(p1, draw.Vec2{X: 3}, draw.Vec2{X: 7, Y: 10}, p4, 1))
}

func TestCanvasRenderMergedList(t *testing.T) {
	c := testCanvas(10, 4)
	l := draw.NewList()
	l.AddRectFilled(draw.Rect{Max: draw.Vec2{X: 9, Y: 3}}, draw.RGB(0x11, 0x11, 0x11), 0)
	l.AddText(draw.Vec2{X: 1, Y: 1}, draw.RGB(0xEE, 0xEE, 0xEE), "node")
	c.Render(l.Commands())

	assert.Equal(t, 'n', cellAt(c, 1, 1).r)
	assert.Equal(t, draw.RGB(0x11, 0x11, 0x11), cellAt(c, 0, 0).bg)
}

func TestCanvasStringDimensions(t *testing.T) {
	c := testCanvas(5, 3)
	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 3)
}

func TestCanvasResizeClears(t *testing.T) {
	c := testCanvas(4, 4)
	c.text(draw.Vec2{X: 1, Y: 1}, "x", draw.RGB(1, 1, 1))
	c.Resize(6, 2)
	assert.Equal(t, 6, c.w)
	assert.Equal(t, 2, c.h)
	for i := range c.cells {
		assert.Equal(t, cell{}, c.cells[i])
	}
}
