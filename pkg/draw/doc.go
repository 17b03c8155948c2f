// Package draw provides the thin drawing boundary between the editor and a
// host renderer.
//
// The editor does not rasterize anything. Each frame it records opaque
// commands (lines, beziers, circles, rects, text) into a [List], grouped into
// channels so commands can be recorded out of order and physically reordered
// before the host consumes them. A node first touched mid-frame claims two
// fresh channels (background and foreground); after submission the editor
// permutes channels to match presentation order, then [List.Merge] flattens
// them into one stream the host replays however it likes.
//
// The package also defines [Input], the immutable per-frame input snapshot
// the host fills in before BeginGraph. The editor only ever reads it.
package draw
