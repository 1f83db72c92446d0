// Package core implements the element arena at the heart of treelink:
// a mutable, index-addressed representation of a rooted multifurcating
// tree topology.
//
// What:
//
//   - Tree: three parallel indexed collections of Links, Nodes, and Edges,
//     plus a stored root-link index. The element at position i always
//     carries stored index i; this bijection is re-established after every
//     structural change.
//   - Link: the unit of adjacency — one per (node, incident edge) pair,
//     carrying the ring ("next") and cross-edge ("outer") relations.
//   - Ring: the implicit cycle of a node's links under "next"; its length
//     equals the node's degree, and the node's primary link (the one facing
//     the current root) is its distinguished entry point.
//   - Edge: references its primary and secondary links; the primary side is
//     always the endpoint closer to the root.
//   - Subtree: a view anchored at a link — the link's node plus everything
//     on the non-root side of the link's edge.
//   - NodeData / EdgeData: opaque payload capability; the engine only ever
//     asks a payload to Recreate a fresh same-typed instance.
//
// Why:
//
//   - Explicit indices instead of pointer aliasing make the topology
//     trivially exportable, comparable, and testable in isolation.
//   - Compacting erase keeps the collections gap-free, so indices double as
//     dense identifiers for parallel annotation arrays.
//
// Mutation model:
//
//	Append and Compact are engine-level primitives used by the manip
//	package. Compact performs the bulk compacting erase: it renumbers every
//	surviving element and remaps every stored cross-reference in one pass.
//	All previously handed-out indices and pointers become invalid.
//	Deletion is O(n) per call; a freelist scheme would be the alternative
//	for trees beyond hundreds of thousands of elements.
//
// Concurrency:
//
//	Tree is not synchronized. Every operation requires exclusive access for
//	its full duration; serialize externally when sharing across goroutines.
//
// Errors:
//
//   - ErrNilElement      nil element handed to ImportContent
//   - ErrRootOutOfRange  root designation outside the link collection
//   - ErrInvalidTopology structural invariant breach found by Validate
//
// Indexed accessors (LinkAt, NodeAt, EdgeAt) panic on out-of-range input:
// a stale or foreign index is an engine defect, not a reportable condition.
package core
