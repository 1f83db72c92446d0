// Package builder provides deterministic constructors for common tree
// topologies, for use in tests, benchmarks, examples, and as seeds for
// further structural editing.
//
// What:
//
//   - Minimal: two nodes, one edge — the smallest representable tree
//   - Path(n): a chain rooted at one end
//   - Star(leaves): a hub with the given number of leaves, rooted at the hub
//   - Bifurcating(depth): a complete binary tree with leaves at the given
//     depth
//
// Every constructor except Minimal grows its topology through the manip
// package, so built trees exercise the same code paths as production
// mutations and always satisfy core.Validate.
//
// Options:
//
//   - WithNodeData(fn) / WithEdgeData(fn)  index-driven payload factories
//   - WithIndexedNames(prefix)             label nodes prefix+index
//   - WithUnitLengths()                    unit branch length on every edge
//
// Determinism: the same constructor, parameters, and options always produce
// an identical arena (indices included).
//
// Errors:
//
//   - ErrTooFewNodes  parameter below the constructor's minimum
package builder
