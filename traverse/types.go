// Package traverse defines types and options for tree traversal: visit
// steps, the result collector, context cancellation, and per-visit hooks.
package traverse

import (
	"context"
	"errors"
)

var (
	// ErrTreeNil is returned when a nil *core.Tree is passed to a traversal.
	ErrTreeNil = errors.New("traverse: tree is nil")

	// ErrTreeEmpty is returned when the tree holds no nodes.
	ErrTreeEmpty = errors.New("traverse: tree is empty")

	// ErrNotOwned indicates that the start node or subtree anchor does not
	// belong to the given tree.
	ErrNotOwned = errors.New("traverse: start element does not belong to tree")
)

// Step describes one visited node together with the link and edge through
// which the walk entered it.
type Step struct {
	// Node is the index of the visited node.
	Node int

	// Link is the index of the entering link: the visited node's ring link
	// that faces the walk's starting point. For the start node of a
	// node-rooted walk this is its primary link.
	Link int

	// Edge is the index of the edge crossed to reach the node. For the
	// start node of a node-rooted walk it is core.NilIndex; for the top of
	// a subtree walk it is the subtree's attachment edge.
	Edge int
}

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable traversal parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Cancelling the context aborts the walk early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked at each step in visit order.
	// Returning an error aborts the walk with that error.
	OnVisit func(Step) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the traversal context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the per-step hook.
func WithOnVisit(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a traversal.
type Result struct {
	// Steps records every visit in order: pre-order visits a node before
	// its subtree, post-order after it.
	Steps []Step
}

// NodeOrder extracts the visited node indices in visit order.
func (r *Result) NodeOrder() []int {
	order := make([]int, len(r.Steps))
	for i, s := range r.Steps {
		order[i] = s.Node
	}

	return order
}
