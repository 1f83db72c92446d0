// Package manip implements the structural editing engine for treelink
// topologies: node insertion, node and subtree deletion, rerooting, and
// ladderization. All operations are stateless functions over a core.Tree.
//
// What:
//
//   - AddNewNode: attach a fresh leaf to a node (ring insertion before the
//     primary link).
//   - AddNewNodeOnEdge: split an edge with a degree-2 mid-node; the
//     original edge keeps the primary half, a new edge carries the
//     secondary half. WithAdjustEdges redistributes payload between halves.
//   - AddNewLeafNode / AddRootNode: split-then-leaf and split-then-reroot
//     compositions.
//   - DeleteNode: degree dispatch — leaf removal (1), linear splice with
//     edge merging (2), or whole-subtree removal (>= 3). The branching case
//     intentionally removes the node's entire non-root side.
//   - DeleteLeafNode / DeleteLinearNode / DeleteSubtree: the specific
//     deletions, each ending in one compacting erase per collection.
//   - Reroot / RerootAtNode / RerootAt: O(path) reorientation of
//     primary/secondary roles; element identity and indices never change.
//   - Ladderize: stable reordering of every ring by subtree size,
//     Ascending or Descending; rewrites only "next" references.
//
// Why:
//
//   - Grafting and pruning tree topologies (placements, supports, fixtures)
//   - Normalizing child order for comparison and rendering
//   - Re-expressing an unrooted topology from any vantage point
//
// Contract:
//
//	Every operation validates its preconditions before mutating anything; a
//	returned error guarantees the tree is byte-for-byte unchanged. After a
//	deletion, every previously obtained index or element pointer is invalid
//	and must be re-resolved through the tree. Operations require exclusive
//	access to the tree for their full duration.
//
// Not provided:
//
//   - Edge deletion (removing an edge while keeping both endpoints): in a
//     tree this would either disconnect the two sides or force an arbitrary
//     merge, so the operation is omitted rather than guessed.
//   - Single-node splice-out of branching nodes: add it as a distinct
//     operation if needed; DeleteNode will not do it.
//
// Errors:
//
//   - ErrTreeNil          tree pointer is nil
//   - ErrNotOwned         node/edge/link belongs to another tree
//   - ErrNotLeaf          leaf deletion on degree != 1
//   - ErrNotLinear        linear deletion on degree != 2
//   - ErrTreeTooSmall     deletion would leave fewer than two nodes
//   - ErrIndexOutOfRange  RerootAt with an out-of-range node index
//   - ErrUnknownOrder     Ladderize with an invalid Order
package manip
