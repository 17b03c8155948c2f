package editor

import (
	"fmt"

	"github.com/matzehuels/nodecanvas/pkg/container"
	"github.com/matzehuels/nodecanvas/pkg/draw"
	"github.com/matzehuels/nodecanvas/pkg/observability"
)

// scope tracks the begin/end nesting discipline. Every Begin* call checks
// the scope it is entered from and every End* call checks the scope it
// closes; a mismatch is a programming error and panics.
type scope int

const (
	scopeNone scope = iota
	scopeGraph
	scopeNode
	scopeNodeHeader
	scopePin
)

func (s scope) String() string {
	switch s {
	case scopeNone:
		return "none"
	case scopeGraph:
		return "graph"
	case scopeNode:
		return "node"
	case scopeNodeHeader:
		return "node header"
	case scopePin:
		return "pin"
	}
	return "unknown"
}

// UserID records the token an entity was submitted with, so applications can
// map selection and connection events back to their own model objects.
type UserID struct {
	String string
	Int    int
	// IsString tells which of the two fields carries the token.
	IsString bool
}

// Validation decides whether a prospective connection is allowed. It runs
// after the structural checks (direction, same node). Return true to allow.
type Validation func(a, b *Pin) bool

// Context owns every graph and the begin/end scope state. It is not safe
// for concurrent use; all calls must come from the thread driving the
// frame loop.
type Context struct {
	scope scope

	graphs map[container.ID]*Graph
	// order preserves creation order for deterministic iteration.
	order []*Graph

	current *Graph
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{graphs: make(map[container.ID]*Graph)}
}

// Graph returns the graph registered under title, creating it with default
// style and settings on first use. The returned pointer stays valid for the
// life of the context.
func (c *Context) Graph(title string) *Graph {
	if title == "" {
		panic("editor: graph title must not be empty")
	}
	id := container.HashString(title)
	if g, ok := c.graphs[id]; ok {
		return g
	}
	g := newGraph(c, id, title)
	c.graphs[id] = g
	c.order = append(c.order, g)
	return g
}

// FindGraph returns the graph registered under title, or nil.
func (c *Context) FindGraph(title string) *Graph {
	return c.graphs[container.HashString(title)]
}

// Graphs returns every graph in creation order.
func (c *Context) Graphs() []*Graph { return c.order }

// BeginGraph opens a graph scope for one frame. bounds is the screen-space
// region the graph occupies; in is the host's input snapshot for the frame.
// Must be balanced by EndGraph.
func (c *Context) BeginGraph(title string, bounds draw.Rect, in *draw.Input) {
	c.assertScope(scopeNone, "BeginGraph")
	if in == nil {
		panic("editor: BeginGraph requires an input snapshot")
	}

	g := c.Graph(title)
	c.current = g
	c.scope = scopeGraph

	g.beginFrame(bounds, in)
}

// EndGraph closes the graph scope, runs layout, interaction and the
// connection validity sweep, and returns the frame's draw list. The list is
// valid until the next BeginGraph for the same graph.
func (c *Context) EndGraph() *draw.List {
	c.assertScope(scopeGraph, "EndGraph")
	g := c.current

	g.endFrame()
	observability.Editor().OnFrame(g.name, g.submitCount, g.connections.Len())

	c.current = nil
	c.scope = scopeNone
	return g.list
}

// BeginGraphPostOp reopens a graph scope after EndGraph so the application
// can run operations (connection queries, MakeConnection, selection edits)
// outside the submission pass. No drawing or layout happens in a post-op
// scope. Must be balanced by EndGraphPostOp.
func (c *Context) BeginGraphPostOp(title string) {
	c.assertScope(scopeNone, "BeginGraphPostOp")
	g := c.FindGraph(title)
	if g == nil {
		panic(fmt.Sprintf("editor: BeginGraphPostOp on unknown graph %q", title))
	}
	c.current = g
	c.scope = scopeGraph
}

// EndGraphPostOp closes a post-op scope.
func (c *Context) EndGraphPostOp() {
	c.assertScope(scopeGraph, "EndGraphPostOp")
	c.current = nil
	c.scope = scopeNone
}

// SetValidation registers the connection predicate for the current graph.
func (c *Context) SetValidation(v Validation) {
	c.assertInGraph("SetValidation")
	c.current.validation = v
}

// CameraScale returns the current graph's zoom factor.
func (c *Context) CameraScale() float32 {
	c.assertInGraph("CameraScale")
	return c.current.camera.Scale
}

func (c *Context) assertScope(want scope, op string) {
	if c.scope != want {
		panic(fmt.Sprintf("editor: %s called in %s scope, want %s", op, c.scope, want))
	}
}

// assertInGraph allows any scope at or below graph.
func (c *Context) assertInGraph(op string) {
	if c.scope == scopeNone || c.current == nil {
		panic(fmt.Sprintf("editor: %s called outside a graph scope", op))
	}
}
