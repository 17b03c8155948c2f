// Package editor implements an immediate-mode node-graph editor: interactive
// node/pin/connection diagrams rebuilt every frame on top of an opaque
// draw-command list and input snapshot.
//
// The embedding application drives the editor once per frame through paired
// scope calls:
//
//	ctx := editor.NewContext()
//	for each frame {
//	    in := ...                       // host fills the input snapshot
//	    ctx.BeginGraph("patch", bounds, in)
//	    ctx.BeginNode("oscillator", &oscPos)
//	    ctx.BeginNodeHeader("Oscillator", headerCol, hoverCol, activeCol)
//	    ctx.EndNodeHeader()
//	    ctx.BeginPin("freq", 0, editor.DirectionInput, 0)
//	    ctx.EndPin()
//	    ctx.EndNode()
//	    list := ctx.EndGraph()          // paint-ordered draw commands
//	}
//
// Entities are addressed by stable identity hashed from their titles; an
// entity disappears by simply not being resubmitted, and everything that
// referenced it (selection entries, connections) is swept up automatically on
// the following frame. Scope misuse (EndNode without BeginNode, nested
// graphs) is a programming error and panics, matching the host toolkit's
// philosophy; rejected operations such as an invalid connection attempt are
// reported by boolean return instead.
//
// The editor is single-threaded and frame-synchronous. A Context must only be
// used from one goroutine.
package editor
