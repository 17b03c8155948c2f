package draw

import "math"

// Vec2 is a 2D point or extent in float32, matching the host toolkit's
// coordinate convention (y grows downward).
type Vec2 struct {
	X, Y float32
}

// Add returns v + o componentwise.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o componentwise.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns v scaled by 1/s.
func (v Vec2) Div(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Floor returns v with both components rounded toward negative infinity.
func (v Vec2) Floor() Vec2 {
	return Vec2{float32(math.Floor(float64(v.X))), float32(math.Floor(float64(v.Y)))}
}

// Min returns the componentwise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{min(v.X, o.X), min(v.Y, o.Y)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{max(v.X, o.X), max(v.Y, o.Y)}
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is an axis-aligned rectangle given by its Min (top-left) and Max
// (bottom-right) corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromPoints returns the bounding rect of two arbitrary corners.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) * 0.5, (r.Min.Y + r.Max.Y) * 0.5}
}

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float32) Rect {
	return Rect{
		Min: Vec2{r.Min.X - d, r.Min.Y - d},
		Max: Vec2{r.Max.X + d, r.Max.Y + d},
	}
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and o intersect (open intervals, so rects that
// merely touch do not overlap).
func (r Rect) Overlaps(o Rect) bool {
	return r.Max.X > o.Min.X && r.Min.X < o.Max.X &&
		r.Max.Y > o.Min.Y && r.Min.Y < o.Max.Y
}

// Color is a straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xFF} }

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// Scale multiplies the color channels by s, leaving alpha untouched. Used for
// pressed/dimmed states.
func (c Color) Scale(s float32) Color {
	scale := func(v uint8) uint8 {
		f := float32(v) * s
		if f > 255 {
			f = 255
		}
		if f < 0 {
			f = 0
		}
		return uint8(f)
	}
	return Color{scale(c.R), scale(c.G), scale(c.B), c.A}
}
