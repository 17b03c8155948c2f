package draw

import "fmt"

// CmdKind identifies a drawing primitive. The host interprets these; the
// editor only records them.
type CmdKind int

const (
	CmdLine CmdKind = iota
	CmdBezier
	CmdCircle
	CmdCircleFilled
	CmdRect
	CmdRectFilled
	CmdText
)

// Cmd is one opaque drawing command. Points holds the positions the kind
// needs: two endpoints for a line, four control points for a bezier, center
// plus origin for circles (radius in Radius), min/max for rects, the anchor
// for text.
type Cmd struct {
	Kind      CmdKind
	Points    [4]Vec2
	Radius    float32
	Thickness float32
	Rounding  float32
	Color     Color
	// ColorB is the far-end color for two-tone primitives (connection
	// beziers fade from source pin color to destination pin color).
	ColorB Color
	Text   string
}

type channel struct {
	cmds []Cmd
}

// List is an append-only command buffer with a channel splitter.
//
// Channel 0 always exists and receives commands recorded outside any node
// (the grid, connections, the selection rect). [List.PushChannels] grows the
// channel region monotonically within a frame, mirroring the nested-split
// behaviour of the host toolkit's draw-list splitter: new channels are only
// ever appended after the current count, so groups claimed earlier keep
// their indices.
type List struct {
	channels []channel
	current  int
}

// NewList returns a list with the base channel active.
func NewList() *List {
	return &List{channels: make([]channel, 1)}
}

// Reset clears all commands and collapses back to the single base channel.
// Channel storage is retained for reuse across frames.
func (l *List) Reset() {
	for i := range l.channels {
		l.channels[i].cmds = l.channels[i].cmds[:0]
	}
	l.channels = l.channels[:1]
	l.current = 0
}

// ChannelCount returns the number of channels currently split.
func (l *List) ChannelCount() int { return len(l.channels) }

// PushChannels appends count fresh channels and returns the index of the
// first. The current channel is unchanged.
func (l *List) PushChannels(count int) int {
	first := len(l.channels)
	for i := 0; i < count; i++ {
		l.channels = append(l.channels, channel{})
	}
	return first
}

// SetChannel routes subsequent commands to channel idx. An index outside the
// split region is a programming error and panics.
func (l *List) SetChannel(idx int) {
	if idx < 0 || idx >= len(l.channels) {
		panic(fmt.Sprintf("draw: channel %d out of range [0,%d)", idx, len(l.channels)))
	}
	l.current = idx
}

// SwapChannels exchanges the recorded contents of channels a and b.
func (l *List) SwapChannels(a, b int) {
	l.channels[a].cmds, l.channels[b].cmds = l.channels[b].cmds, l.channels[a].cmds
}

// ReorderChannels permutes the channels at base and above through a scratch
// pass: the channel at base+i moves to base+perm[i]. Entries of -1 leave the
// corresponding scratch slot empty, dropping that channel's contents from
// the permuted region. len(perm) must cover every channel from base up.
func (l *List) ReorderChannels(base int, perm []int) {
	if base < 0 || base+len(perm) != len(l.channels) {
		panic(fmt.Sprintf("draw: reorder of %d channels at %d does not cover split of %d", len(perm), base, len(l.channels)))
	}
	scratch := make([]channel, len(perm))
	for src, dst := range perm {
		if dst < 0 {
			continue
		}
		scratch[dst], l.channels[base+src] = l.channels[base+src], scratch[dst]
	}
	copy(l.channels[base:], scratch)
}

// Merge flattens all channels into channel 0 in physical channel order and
// collapses the split. Callers reorder channels (SwapChannels, or
// ReorderChannels for a whole permutation) first when the recording order
// does not match the desired paint order.
func (l *List) Merge() {
	for i := 1; i < len(l.channels); i++ {
		l.channels[0].cmds = append(l.channels[0].cmds, l.channels[i].cmds...)
		l.channels[i].cmds = l.channels[i].cmds[:0]
	}
	l.channels = l.channels[:1]
	l.current = 0
}

// Commands returns the commands of channel 0. Call after Merge for the full
// frame in paint order.
func (l *List) Commands() []Cmd { return l.channels[0].cmds }

// ChannelCommands returns the commands recorded into channel idx. Intended
// for tests and debugging overlays.
func (l *List) ChannelCommands(idx int) []Cmd { return l.channels[idx].cmds }

func (l *List) push(c Cmd) {
	ch := &l.channels[l.current]
	ch.cmds = append(ch.cmds, c)
}

// AddLine records a stroked segment from a to b.
func (l *List) AddLine(a, b Vec2, col Color, thickness float32) {
	l.push(Cmd{Kind: CmdLine, Points: [4]Vec2{a, b}, Color: col, ColorB: col, Thickness: thickness})
}

// AddBezierCubic records a two-tone cubic bezier through control points
// p1..p4, fading from c1 at p1 to c2 at p4.
func (l *List) AddBezierCubic(p1, p2, p3, p4 Vec2, c1, c2 Color, thickness float32) {
	l.push(Cmd{Kind: CmdBezier, Points: [4]Vec2{p1, p2, p3, p4}, Color: c1, ColorB: c2, Thickness: thickness})
}

// AddCircle records a stroked circle.
func (l *List) AddCircle(center Vec2, radius float32, col Color, thickness float32) {
	l.push(Cmd{Kind: CmdCircle, Points: [4]Vec2{center}, Radius: radius, Color: col, ColorB: col, Thickness: thickness})
}

// AddCircleFilled records a filled circle.
func (l *List) AddCircleFilled(center Vec2, radius float32, col Color) {
	l.push(Cmd{Kind: CmdCircleFilled, Points: [4]Vec2{center}, Radius: radius, Color: col, ColorB: col})
}

// AddRect records a stroked rectangle.
func (l *List) AddRect(r Rect, col Color, rounding, thickness float32) {
	l.push(Cmd{Kind: CmdRect, Points: [4]Vec2{r.Min, r.Max}, Color: col, ColorB: col, Rounding: rounding, Thickness: thickness})
}

// AddRectFilled records a filled rectangle.
func (l *List) AddRectFilled(r Rect, col Color, rounding float32) {
	l.push(Cmd{Kind: CmdRectFilled, Points: [4]Vec2{r.Min, r.Max}, Color: col, ColorB: col, Rounding: rounding})
}

// AddText records a text anchor. Measurement is the host's concern; the
// editor treats text as fixed-height content.
func (l *List) AddText(pos Vec2, col Color, text string) {
	l.push(Cmd{Kind: CmdText, Points: [4]Vec2{pos}, Color: col, ColorB: col, Text: text})
}
