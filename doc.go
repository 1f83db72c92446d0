// Package treelink is an in-memory engine for rooted multifurcating tree
// topologies — build them, reshape them, walk them.
//
// 🚀 What is treelink?
//
//	An index-addressed topology library that brings together:
//		• Core primitives: an element arena of Links, Nodes and Edges with
//		  stable zero-based indices and a stored root designation
//		• Structural editing: leaf attachment, edge splitting, leaf / linear /
//		  subtree deletion with compacting index renumbering
//		• Rerooting: O(path-length) primary/secondary reorientation
//		• Ladderization: stable reordering of every adjacency ring by
//		  subtree size
//		• Traversals: pre-order and post-order from the root, from any node,
//		  or over a subtree view
//
// ✨ Why choose treelink?
//
//   - Explicit topology – every adjacency is an integer index you can
//     inspect, export, and test in isolation; no hidden pointer aliasing
//   - Rock-solid invariants – core.Validate checks the full structural
//     contract (index bijection, ring closure, outer mutuality, orientation)
//   - Pure Go – no cgo, tiny dependency surface
//   - Extensible – opaque node/edge payloads with a single Recreate
//     capability; plug in whatever data your domain needs
//
// Everything is organized under five subpackages:
//
//	core/     — Tree, Link, Node, Edge, Subtree, payload interfaces, Validate
//	traverse/ — pre-/post-order walks and subtree size aggregation
//	manip/    — structural editing: add, delete, reroot, ladderize
//	builder/  — deterministic topology constructors for tests and fixtures
//	viz/      — ASCII sketches of a topology for debugging and examples
//
// Quick ASCII example:
//
//	      R
//	    / | \
//	   A  F  G
//	  /|    / \
//	 B C   H   I
//
//	a rooted tree with three children at the root; every node owns a cyclic
//	ring of links, one link per incident edge.
//
// Start with builder.Minimal or builder.Star, grow the tree with
// manip.AddNewNode, and inspect it with traverse.PostOrder or viz.Render.
//
//	go get github.com/katalvlaran/treelink
package treelink
