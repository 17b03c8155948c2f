// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about frames, node reclamation, and connection changes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (Prometheus, OpenTelemetry, plain logs, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditorHooks(&myEditorHooks{})
//	    // ... run application
//	}
//
// The editor calls hooks to emit events:
//
//	observability.Editor().OnFrame(graph, nodeCount, connectionCount)
package observability

import "sync"

// EditorHooks receives events from the graph editor's frame loop. Hooks are
// invoked synchronously on the frame thread and must return quickly.
type EditorHooks interface {
	// OnFrame records one completed frame of a graph: how many nodes were
	// submitted and how many connections are live.
	OnFrame(graph string, nodes, connections int)

	// OnNodesReclaimed records slots freed because their nodes stopped
	// being submitted.
	OnNodesReclaimed(graph string, count int)

	// OnConnectionMade records a successful connect operation.
	OnConnectionMade(graph string)

	// OnConnectionBroken records a connection removed explicitly or by the
	// validity sweep.
	OnConnectionBroken(graph string)

	// OnConnectionRejected records a connect attempt refused by the
	// application's validation predicate.
	OnConnectionRejected(graph string)
}

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnFrame(string, int, int)     {}
func (NoopEditorHooks) OnNodesReclaimed(string, int) {}
func (NoopEditorHooks) OnConnectionMade(string)      {}
func (NoopEditorHooks) OnConnectionBroken(string)    {}
func (NoopEditorHooks) OnConnectionRejected(string)  {}

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	hooksMu     sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before the frame loop.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
}
