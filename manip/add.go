// This file implements node insertion: leaf attachment to a node, edge
// splitting, and the split-then-leaf and split-then-root compositions.
// Elements are always created in groups (links + node + edge) so that the
// arena never holds a partially wired element across a public call.

package manip

import (
	"fmt"

	"github.com/katalvlaran/treelink/core"
)

// AddNewNode attaches a brand-new leaf node to target and returns it.
//
// One link is inserted into target's ring immediately before its primary
// link (found by walking the ring, O(degree)); the new leaf gets a
// self-looped ring of size one; a new edge connects the two. The leaf's
// payload is recreated from target's payload, the edge's payload from the
// payload of target's edge toward the root.
//
// Errors: ErrTreeNil, ErrNotOwned.
// Complexity: O(degree(target))
func AddNewNode(t *core.Tree, target *core.Node) (*core.Node, error) {
	// 1. Preconditions: no mutation on failure.
	if t == nil {
		return nil, ErrTreeNil
	}
	if !t.OwnsNode(target) {
		return nil, fmt.Errorf("manip: AddNewNode: %w", ErrNotOwned)
	}

	// 2. Create the group: the connecting link at target, the leaf's own
	//    link, the leaf node, and the edge between them.
	conLink := t.AppendLink()
	endLink := t.AppendLink()
	endNode := t.AppendNode()
	conEdge := t.AppendEdge()

	// 3. Wire the connecting link at target.
	conLink.ResetNode(target.Index())
	conLink.ResetEdge(conEdge.Index())
	conLink.ResetOuter(endLink.Index())

	// 4. Find the ring link whose next is target's primary link, and seat
	//    the connecting link between the two.
	upLink := t.PrimaryLinkOf(target)
	lastLink := upLink
	for t.NextLink(lastLink) != upLink {
		lastLink = t.NextLink(lastLink)
	}
	lastLink.ResetNext(conLink.Index())
	conLink.ResetNext(upLink.Index())

	// 5. Wire the leaf's own link: a ring of size one.
	endLink.ResetNode(endNode.Index())
	endLink.ResetEdge(conEdge.Index())
	endLink.ResetNext(endLink.Index())
	endLink.ResetOuter(conLink.Index())

	// 6. Wire the leaf node; recreate its payload from the target's.
	endNode.ResetPrimaryLink(endLink.Index())
	if d := target.Data(); d != nil {
		endNode.ResetData(d.Recreate())
	}

	// 7. Wire the edge; recreate its payload from the target's root-facing
	//    edge. The primary side is at target (closer to the root).
	conEdge.ResetPrimaryLink(conLink.Index())
	conEdge.ResetSecondaryLink(endLink.Index())
	if d := t.EdgeOf(upLink).Data(); d != nil {
		conEdge.ResetData(d.Recreate())
	}

	return endNode, nil
}

// AddNewNodeOnEdge splits target by seating a new node of degree two in its
// middle and returns that mid-node.
//
// The original edge is retained on the primary half (it now terminates at
// the mid-node); a new edge carries the secondary half. The mid-node's
// payload is recreated from the edge's primary node, the new edge's payload
// from the original edge. If WithAdjustEdges is given, the hook runs after
// rewiring with (retained edge, new secondary edge) so the caller can
// redistribute payload between the halves.
//
// Errors: ErrTreeNil, ErrNotOwned.
// Complexity: O(1)
func AddNewNodeOnEdge(t *core.Tree, target *core.Edge, opts ...Option) (*core.Node, error) {
	// 1. Preconditions.
	if t == nil {
		return nil, ErrTreeNil
	}
	if !t.OwnsEdge(target) {
		return nil, fmt.Errorf("manip: AddNewNodeOnEdge: %w", ErrNotOwned)
	}
	mopts := resolve(opts)

	// 2. Capture the former endpoint links before any rewiring.
	oldPri := t.LinkAt(target.PrimaryLink())
	oldSec := t.LinkAt(target.SecondaryLink())

	// 3. Create the group: two mutually ringed links, the mid-node, and
	//    the edge for the secondary half.
	priLink := t.AppendLink()
	secLink := t.AppendLink()
	midNode := t.AppendNode()
	secEdge := t.AppendEdge()

	// 4. Wire the mid-node's link toward the primary end; it stays on the
	//    original (retained) edge.
	priLink.ResetNext(secLink.Index())
	priLink.ResetOuter(oldPri.Index())
	priLink.ResetNode(midNode.Index())
	priLink.ResetEdge(target.Index())

	// 5. Wire the mid-node's link toward the secondary end; it carries the
	//    new edge.
	secLink.ResetNext(priLink.Index())
	secLink.ResetOuter(oldSec.Index())
	secLink.ResetNode(midNode.Index())
	secLink.ResetEdge(secEdge.Index())

	// 6. Wire the mid-node; its primary link faces the root through the
	//    retained edge.
	midNode.ResetPrimaryLink(priLink.Index())
	if d := t.PrimaryNodeOf(target).Data(); d != nil {
		midNode.ResetData(d.Recreate())
	}

	// 7. Wire the new secondary-half edge.
	secEdge.ResetPrimaryLink(secLink.Index())
	secEdge.ResetSecondaryLink(oldSec.Index())
	if d := target.Data(); d != nil {
		secEdge.ResetData(d.Recreate())
	}

	// 8. Rewire the existing elements: the retained edge now terminates at
	//    the mid-node, and the former secondary link moves to the new edge.
	oldPri.ResetOuter(priLink.Index())
	oldSec.ResetOuter(secLink.Index())
	oldSec.ResetEdge(secEdge.Index())
	target.ResetSecondaryLink(priLink.Index())

	// 9. Let the caller redistribute edge payload between the halves.
	if mopts.AdjustEdges != nil {
		mopts.AdjustEdges(target, secEdge)
	}

	return midNode, nil
}

// AddNewLeafNode splits target and attaches a new leaf to the resulting
// mid-node, returning the leaf. Options are forwarded to the edge split.
//
// Errors: ErrTreeNil, ErrNotOwned.
// Complexity: O(1)
func AddNewLeafNode(t *core.Tree, target *core.Edge, opts ...Option) (*core.Node, error) {
	mid, err := AddNewNodeOnEdge(t, target, opts...)
	if err != nil {
		return nil, err
	}

	return AddNewNode(t, mid)
}

// AddRootNode splits target and reroots the tree at the resulting mid-node,
// returning it.
//
// Errors: ErrTreeNil, ErrNotOwned.
// Complexity: O(path from old root to target)
func AddRootNode(t *core.Tree, target *core.Edge) (*core.Node, error) {
	mid, err := AddNewNodeOnEdge(t, target)
	if err != nil {
		return nil, err
	}
	if err = RerootAtNode(t, mid); err != nil {
		return nil, err
	}

	return mid, nil
}
