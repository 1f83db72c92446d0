// This file implements the deterministic topology constructors. Minimal
// seeds the arena directly through core primitives; every other constructor
// grows from that seed with manip operations, so a constructed tree passes
// core.Validate by the same code paths production callers use.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treelink/core"
	"github.com/katalvlaran/treelink/manip"
)

// Minimal constructs the smallest representable tree: two nodes joined by
// one edge, rooted at node 0. Node indices: 0 (root), 1 (leaf).
//
// Complexity: O(1)
func Minimal(opts ...Option) (*core.Tree, error) {
	cfg := newConfig(opts...)

	t := core.New()
	rootLink := t.AppendLink()
	leafLink := t.AppendLink()
	rootNode := t.AppendNode()
	leafNode := t.AppendNode()
	edge := t.AppendEdge()

	// Two rings of size one, joined across the single edge.
	rootLink.ResetNext(rootLink.Index())
	rootLink.ResetOuter(leafLink.Index())
	rootLink.ResetNode(rootNode.Index())
	rootLink.ResetEdge(edge.Index())

	leafLink.ResetNext(leafLink.Index())
	leafLink.ResetOuter(rootLink.Index())
	leafLink.ResetNode(leafNode.Index())
	leafLink.ResetEdge(edge.Index())

	rootNode.ResetPrimaryLink(rootLink.Index())
	leafNode.ResetPrimaryLink(leafLink.Index())

	edge.ResetPrimaryLink(rootLink.Index())
	edge.ResetSecondaryLink(leafLink.Index())

	t.ResetRootLinkIndex(rootLink.Index())

	applyData(t, cfg)

	return t, nil
}

// Path constructs a chain of n nodes rooted at one end: 0 − 1 − … − n−1.
// Requires n >= 2.
//
// Complexity: O(n)
func Path(n int, opts ...Option) (*core.Tree, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path(%d): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	t, err := Minimal()
	if err != nil {
		return nil, err
	}
	tip := t.NodeAt(1)
	for i := 2; i < n; i++ {
		if tip, err = manip.AddNewNode(t, tip); err != nil {
			return nil, fmt.Errorf("Path(%d): %w", n, err)
		}
	}

	applyData(t, cfg)

	return t, nil
}

// Star constructs a hub with the given number of leaves, rooted at the hub
// (node 0). Requires leaves >= 1.
//
// Complexity: O(leaves²) due to ring insertion before the primary link.
func Star(leaves int, opts ...Option) (*core.Tree, error) {
	if leaves < 1 {
		return nil, fmt.Errorf("Star(%d): %w", leaves, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	t, err := Minimal()
	if err != nil {
		return nil, err
	}
	hub := t.NodeAt(0)
	for i := 1; i < leaves; i++ {
		if _, err = manip.AddNewNode(t, hub); err != nil {
			return nil, fmt.Errorf("Star(%d): %w", leaves, err)
		}
	}

	applyData(t, cfg)

	return t, nil
}

// Bifurcating constructs a complete binary tree rooted at node 0: the root
// and every internal node have exactly two children, and all leaves sit at
// the given depth. Requires depth >= 1.
//
// Complexity: O(2^depth)
func Bifurcating(depth int, opts ...Option) (*core.Tree, error) {
	if depth < 1 {
		return nil, fmt.Errorf("Bifurcating(%d): %w", depth, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	t, err := Minimal()
	if err != nil {
		return nil, err
	}
	first := t.NodeAt(1)
	second, err := manip.AddNewNode(t, t.NodeAt(0))
	if err != nil {
		return nil, fmt.Errorf("Bifurcating(%d): %w", depth, err)
	}
	if err = bifurcate(t, first, depth-1); err != nil {
		return nil, fmt.Errorf("Bifurcating(%d): %w", depth, err)
	}
	if err = bifurcate(t, second, depth-1); err != nil {
		return nil, fmt.Errorf("Bifurcating(%d): %w", depth, err)
	}

	applyData(t, cfg)

	return t, nil
}

// bifurcate grows two children under node and recurses until depth runs out.
func bifurcate(t *core.Tree, node *core.Node, depth int) error {
	if depth == 0 {
		return nil
	}
	left, err := manip.AddNewNode(t, node)
	if err != nil {
		return err
	}
	right, err := manip.AddNewNode(t, node)
	if err != nil {
		return err
	}
	if err = bifurcate(t, left, depth-1); err != nil {
		return err
	}

	return bifurcate(t, right, depth-1)
}
