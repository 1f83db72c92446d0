// Package manip defines the sentinel errors, options, and ordering
// constants of the manipulation engine.
package manip

import (
	"errors"

	"github.com/katalvlaran/treelink/core"
)

// Sentinel errors for manipulation preconditions. All are detected before
// any mutation begins: a failed precondition leaves the tree unchanged.
var (
	// ErrTreeNil is returned when a nil *core.Tree is passed to an operation.
	ErrTreeNil = errors.New("manip: tree is nil")

	// ErrNotOwned indicates that the supplied node, edge, or link does not
	// belong to the given tree instance.
	ErrNotOwned = errors.New("manip: element does not belong to tree")

	// ErrNotLeaf indicates leaf deletion requested on a node of degree != 1.
	ErrNotLeaf = errors.New("manip: node degree is not 1")

	// ErrNotLinear indicates linear deletion requested on a node of degree != 2.
	ErrNotLinear = errors.New("manip: node degree is not 2")

	// ErrTreeTooSmall indicates a deletion that would leave fewer than two
	// nodes. A lone node cannot be represented in the link model (every
	// link must sit on an edge), so such deletions are rejected.
	ErrTreeTooSmall = errors.New("manip: deletion would leave fewer than two nodes")

	// ErrIndexOutOfRange indicates a node index outside the tree's node
	// collection, e.g. in RerootAt.
	ErrIndexOutOfRange = errors.New("manip: node index out of range")

	// ErrUnknownOrder indicates an Order value other than Ascending or
	// Descending passed to Ladderize.
	ErrUnknownOrder = errors.New("manip: unknown ladderize order")
)

// AdjustEdgesFunc lets callers redistribute edge payload when an operation
// retains one edge and creates or discards another. The first argument is
// always the edge that remains in the tree.
type AdjustEdgesFunc func(remaining, other *core.Edge)

// Order selects the ladderization direction.
type Order int

const (
	// Ascending places smaller subtrees first in every ring.
	Ascending Order = iota

	// Descending places larger subtrees first in every ring.
	Descending
)

// Option configures optional behavior of an operation.
type Option func(*Options)

// Options holds configurable parameters of the edge-splitting and
// linear-deletion operations.
type Options struct {
	// AdjustEdges, if non-nil, is invoked with (remaining, other) edges:
	// for AddNewNodeOnEdge after rewiring, with the retained edge and the
	// newly created secondary half; for DeleteLinearNode before any
	// structural change, with the retained edge and the edge about to be
	// merged away.
	AdjustEdges AdjustEdgesFunc
}

// DefaultOptions returns Options with no payload adjustment hook.
func DefaultOptions() Options {
	return Options{AdjustEdges: nil}
}

// WithAdjustEdges returns an Option that installs fn as the edge-payload
// adjustment hook.
func WithAdjustEdges(fn AdjustEdgesFunc) Option {
	return func(o *Options) {
		o.AdjustEdges = fn
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}

	return mopts
}
