// Package traverse implements pre-order and post-order walks over treelink
// topologies, from the root, an arbitrary node, or a subtree view, plus the
// subtree-size aggregation used by ladderization.
//
// Key behaviors:
//   - Node-rooted walks treat the start node as a virtual root: its ring is
//     explored in full, starting at the primary link, without rerooting.
//   - Subtree walks are scoped to the anchoring link's non-root side and
//     include the attachment edge in the top step.
//   - Descent order is ring order, so child order is exactly the cyclic
//     order maintained by the manipulation engine (and by Ladderize).
//
// Complexity:
//
//   - All walks: Time O(nodes), Memory O(depth) recursion.
//
// Errors:
//
//   - ErrTreeNil            tree pointer is nil.
//   - ErrTreeEmpty          tree holds no nodes.
//   - ErrNotOwned           start node / subtree anchor is foreign.
//   - context.Canceled      walk aborted via WithContext.
//   - any error returned by the OnVisit hook.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/treelink/core"
)

// walker carries traversal state.
type walker struct {
	tree *core.Tree
	opts Options
	res  *Result
	post bool // emit a node after its subtree instead of before
}

// PreOrder walks the tree from start (nil means the current root), visiting
// every node before its subtree. The start node's ring is explored in ring
// order beginning at its primary link.
func PreOrder(t *core.Tree, start *core.Node, opts ...Option) (*Result, error) {
	return walkNode(t, start, false, opts)
}

// PostOrder walks the tree from start (nil means the current root), visiting
// every node after its subtree; the start node is visited last.
func PostOrder(t *core.Tree, start *core.Node, opts ...Option) (*Result, error) {
	return walkNode(t, start, true, opts)
}

// walkNode validates inputs and runs a node-rooted walk.
func walkNode(t *core.Tree, start *core.Node, post bool, opts []Option) (*Result, error) {
	// 1. Validate the tree.
	if t == nil {
		return nil, ErrTreeNil
	}
	if t.Empty() {
		return nil, ErrTreeEmpty
	}

	// 2. Resolve and validate the start node.
	if start == nil {
		start = t.RootNode()
	} else if !t.OwnsNode(start) {
		return nil, fmt.Errorf("traverse: node %d: %w", start.Index(), ErrNotOwned)
	}

	// 3. Apply options.
	topts := DefaultOptions()
	for _, fn := range opts {
		fn(&topts)
	}

	// 4. Walk: the start node's full ring, then the start node itself
	//    (first for pre-order, last for post-order).
	w := &walker{
		tree: t,
		opts: topts,
		res:  &Result{Steps: make([]Step, 0, t.NodeCount())},
		post: post,
	}
	top := Step{Node: start.Index(), Link: start.PrimaryLink(), Edge: core.NilIndex}
	if !w.post {
		if err := w.emit(top); err != nil {
			return w.res, err
		}
	}
	for _, l := range t.RingLinks(start) {
		if err := w.descend(t.OuterLink(l)); err != nil {
			return w.res, err
		}
	}
	if w.post {
		if err := w.emit(top); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// PreOrderSubtree walks only the given subtree, visiting its top node first.
// The top step carries the subtree's anchoring link and attachment edge, so
// the result enumerates the subtree's full extent: every contained node and
// every edge inside the region plus the one crossing its boundary.
func PreOrderSubtree(t *core.Tree, sub core.Subtree, opts ...Option) (*Result, error) {
	return walkSubtree(t, sub, false, opts)
}

// PostOrderSubtree walks only the given subtree, visiting its top node last.
func PostOrderSubtree(t *core.Tree, sub core.Subtree, opts ...Option) (*Result, error) {
	return walkSubtree(t, sub, true, opts)
}

// walkSubtree validates inputs and runs a subtree-scoped walk.
func walkSubtree(t *core.Tree, sub core.Subtree, post bool, opts []Option) (*Result, error) {
	// 1. Validate the tree and the anchoring link.
	if t == nil {
		return nil, ErrTreeNil
	}
	if t.Empty() {
		return nil, ErrTreeEmpty
	}
	if !t.OwnsSubtree(sub) {
		return nil, fmt.Errorf("traverse: subtree link %d: %w", sub.Link(), ErrNotOwned)
	}

	// 2. Apply options.
	topts := DefaultOptions()
	for _, fn := range opts {
		fn(&topts)
	}

	// 3. Walk from the anchoring link.
	w := &walker{tree: t, opts: topts, res: &Result{}, post: post}
	if err := w.descend(t.LinkAt(sub.Link())); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// descend visits the node entered via enter (the node's ring link facing the
// walk's origin), then recurses across every other ring link.
func (w *walker) descend(enter *core.Link) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Emit before children for pre-order.
	s := Step{Node: enter.Node(), Link: enter.Index(), Edge: enter.Edge()}
	if !w.post {
		if err := w.emit(s); err != nil {
			return err
		}
	}

	// 3. Recurse across every ring link except the entering one.
	for l := w.tree.NextLink(enter); l != enter; l = w.tree.NextLink(l) {
		if err := w.descend(w.tree.OuterLink(l)); err != nil {
			return err
		}
	}

	// 4. Emit after children for post-order.
	if w.post {
		return w.emit(s)
	}

	return nil
}

// emit runs the hook and records the step.
func (w *walker) emit(s Step) error {
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s); err != nil {
			return fmt.Errorf("traverse: OnVisit hook for node %d: %w", s.Node, err)
		}
	}
	w.res.Steps = append(w.res.Steps, s)

	return nil
}

// SubtreeSizes computes, for every node, the number of nodes in its subtree
// away from the current root, including the node itself (the root's size is
// the full node count). Single aggregate walk.
// Complexity: Time O(nodes), Memory O(depth)
func SubtreeSizes(t *core.Tree) ([]int, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if t.Empty() {
		return nil, ErrTreeEmpty
	}

	sizes := make([]int, t.NodeCount())

	// below computes the size of the subtree entered via enter and records
	// it for the subtree's top node.
	var below func(enter *core.Link) int
	below = func(enter *core.Link) int {
		n := 1
		for l := t.NextLink(enter); l != enter; l = t.NextLink(l) {
			n += below(t.OuterLink(l))
		}
		sizes[enter.Node()] = n

		return n
	}

	root := t.RootNode()
	total := 1
	for _, l := range t.RingLinks(root) {
		total += below(t.OuterLink(l))
	}
	sizes[root.Index()] = total

	return sizes, nil
}
