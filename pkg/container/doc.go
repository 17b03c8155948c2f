// Package container provides the identity-stable containers that back every
// stateful entity in the node editor: graphs, nodes, pins, and connections.
//
// An immediate-mode editor rebuilds its UI every frame, but the state behind
// the UI must survive across frames. Entities are therefore addressed by a
// stable 32-bit [ID] derived from a user-supplied name or integer token, while
// the storage slot behind an ID is free to move as entities come and go.
//
// The containers form a small dependency chain:
//
//   - [Optional]: a value-plus-presence wrapper used for transient state
//     (hovered node, in-progress connection drag).
//   - [Set]: an open-addressing hash set with Robin Hood probing and
//     backward-shift deletion. Used for selection sets.
//   - [Ordered]: a red-black tree for sorted iteration over identities.
//   - [Pool]: a slot-recycling arena with an identity→slot map and a separate
//     presentation-order permutation. The workhorse behind nodes and pins.
//   - [List]: a simpler free-list arena keyed by generated IDs, backing the
//     connection registry.
//
// None of the containers are safe for concurrent use; the editor is
// single-threaded and frame-synchronous by design.
package container
