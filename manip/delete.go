// This file implements node deletion. DeleteNode dispatches purely on
// degree: 1 → leaf removal, 2 → linear splice, ≥ 3 → removal of the whole
// subtree below the node. A branching node takes its entire non-root side
// with it; single-node splice-out of a high-degree node would be a separate
// operation with different semantics.
//
// Removing an edge while keeping both endpoints connected has no defined
// contract and is intentionally not provided.
//
// All deletions end in one compacting erase per collection; every index
// handed out before the call is invalid afterwards.

package manip

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/treelink/core"
	"github.com/katalvlaran/treelink/traverse"
)

// DeleteNode removes target according to its degree: a leaf is removed with
// its edge, a linear (degree-2) node is spliced out merging its two edges,
// and a branching node is removed together with its entire subtree.
//
// Errors: ErrTreeNil, ErrNotOwned, ErrTreeTooSmall.
// Complexity: O(links + nodes + edges) due to index compaction.
func DeleteNode(t *core.Tree, target *core.Node) error {
	// 1. Preconditions.
	if t == nil {
		return ErrTreeNil
	}
	if !t.OwnsNode(target) {
		return fmt.Errorf("manip: DeleteNode: %w", ErrNotOwned)
	}

	// 2. Dispatch on degree.
	switch t.Degree(target) {
	case 1:
		return DeleteLeafNode(t, target)
	case 2:
		return DeleteLinearNode(t, target)
	default:
		return DeleteSubtree(t, core.SubtreeOfNode(t, target))
	}
}

// DeleteLeafNode removes the leaf target together with its single incident
// edge and both links of that edge. If the leaf was the root, or the root
// link was the attach link about to go, the root designation moves to the
// neighbor's first surviving ring link; the substitute root carries no data
// significance.
//
// Errors: ErrTreeNil, ErrNotOwned, ErrNotLeaf, ErrTreeTooSmall.
// Complexity: O(links + nodes + edges)
func DeleteLeafNode(t *core.Tree, target *core.Node) error {
	// 1. Preconditions: no mutation on failure.
	if t == nil {
		return ErrTreeNil
	}
	if !t.OwnsNode(target) {
		return fmt.Errorf("manip: DeleteLeafNode: %w", ErrNotOwned)
	}
	if t.Degree(target) != 1 {
		return fmt.Errorf("manip: DeleteLeafNode(%d): %w", target.Index(), ErrNotLeaf)
	}
	if t.NodeCount() <= 2 {
		return fmt.Errorf("manip: DeleteLeafNode(%d): %w", target.Index(), ErrTreeTooSmall)
	}

	// 2. Resolve the removal group: the leaf's link, the neighbor's attach
	//    link, and the edge between them.
	targetLink := t.PrimaryLinkOf(target)
	attachLink := t.OuterLink(targetLink)
	edgeIdx := targetLink.Edge()

	// 3. Relocate the root while old indices are still valid. Two cases
	//    need it: the leaf is the root, or the root link is the attach link
	//    itself (the root node's primary link faces the leaf). With more
	//    than two nodes the neighbor has degree >= 2, so the ring successor
	//    of the attach link survives the deletion.
	rootIdx := t.RootLinkIndex()
	if t.IsRoot(target) || rootIdx == attachLink.Index() {
		rootIdx = attachLink.Next()
		t.NodeOf(attachLink).ResetPrimaryLink(rootIdx)
	}

	// 4. Splice the attach link out of the neighbor's ring: find its ring
	//    predecessor and let it skip the removed link.
	pred := t.NextLink(attachLink)
	for t.NextLink(pred) != attachLink {
		pred = t.NextLink(pred)
	}
	pred.ResetNext(attachLink.Next())

	// 5. Compact the arena; the stored root index is remapped in the pass.
	t.ResetRootLinkIndex(rootIdx)
	delLinks := []int{targetLink.Index(), attachLink.Index()}
	sort.Ints(delLinks)
	t.Compact([]int{target.Index()}, []int{edgeIdx}, delLinks)

	return nil
}

// DeleteLinearNode splices the degree-2 node target out of the tree,
// merging its two incident edges into the rootward one. The retained edge
// ends up spanning both former neighbors. If WithAdjustEdges is given, the
// hook runs first — before any structural change — with (retained edge,
// edge about to be deleted), e.g. to sum two branch lengths.
//
// Errors: ErrTreeNil, ErrNotOwned, ErrNotLinear.
// Complexity: O(links + nodes + edges)
func DeleteLinearNode(t *core.Tree, target *core.Node, opts ...Option) error {
	// 1. Preconditions.
	if t == nil {
		return ErrTreeNil
	}
	if !t.OwnsNode(target) {
		return fmt.Errorf("manip: DeleteLinearNode: %w", ErrNotOwned)
	}
	if t.Degree(target) != 2 {
		return fmt.Errorf("manip: DeleteLinearNode(%d): %w", target.Index(), ErrNotLinear)
	}
	mopts := resolve(opts)

	// 2. Resolve the two ring links and their edges. The rootward edge is
	//    retained, the far edge is merged away.
	prLink := t.PrimaryLinkOf(target)
	farLink := t.NextLink(prLink)
	remEdge := t.EdgeOf(prLink)
	delEdge := t.EdgeOf(farLink)

	// 3. Payload merge point: before any structural change.
	if mopts.AdjustEdges != nil {
		mopts.AdjustEdges(remEdge, delEdge)
	}

	// 4. Relocate the root while old indices are still valid: the rootward
	//    neighbor's link survives and becomes the designation.
	adjP := t.OuterLink(prLink)
	adjD := t.OuterLink(farLink)
	rootIdx := t.RootLinkIndex()
	if t.IsRoot(target) {
		rootIdx = adjP.Index()
	}

	// 5. Rewire the two neighbor links to reference each other directly,
	//    and stretch the retained edge across what used to be two edges.
	//    The primary side sits at the rootward neighbor in every case,
	//    including deletion of the root itself.
	adjP.ResetOuter(adjD.Index())
	adjD.ResetOuter(adjP.Index())
	remEdge.ResetPrimaryLink(adjP.Index())
	remEdge.ResetSecondaryLink(adjD.Index())
	adjD.ResetEdge(remEdge.Index())

	// 6. Compact the arena; the stored root index is remapped in the pass.
	t.ResetRootLinkIndex(rootIdx)
	delLinks := []int{prLink.Index(), farLink.Index()}
	sort.Ints(delLinks)
	t.Compact([]int{target.Index()}, []int{delEdge.Index()}, delLinks)

	return nil
}

// DeleteSubtree removes the entire region identified by sub: every node and
// edge on the non-root side of the anchoring link's edge, the anchoring
// edge itself, and both links of every removed edge. If the removed region
// contained the root, the designation moves to the attachment node's first
// ring link after the spliced one — a deterministic substitute with no data
// significance.
//
// Errors: ErrTreeNil, ErrNotOwned, ErrTreeTooSmall.
// Complexity: O(links + nodes + edges)
func DeleteSubtree(t *core.Tree, sub core.Subtree) error {
	// 1. Preconditions.
	if t == nil {
		return ErrTreeNil
	}
	if !t.OwnsSubtree(sub) {
		return fmt.Errorf("manip: DeleteSubtree(link %d): %w", sub.Link(), ErrNotOwned)
	}

	// 2. Enumerate the subtree's full extent in one pre-order walk. The top
	//    step already carries the attachment edge and the boundary link
	//    pair, so the index sets are complete and duplicate-free.
	res, err := traverse.PreOrderSubtree(t, sub)
	if err != nil {
		return fmt.Errorf("manip: DeleteSubtree: %w", err)
	}
	rootNode := t.RootNode().Index()
	containsRoot := false
	delNodes := make([]int, 0, len(res.Steps))
	delEdges := make([]int, 0, len(res.Steps))
	delLinks := make([]int, 0, 2*len(res.Steps))
	for _, s := range res.Steps {
		delNodes = append(delNodes, s.Node)
		delEdges = append(delEdges, s.Edge)
		delLinks = append(delLinks, s.Link, t.LinkAt(s.Link).Outer())
		if s.Node == rootNode {
			containsRoot = true
		}
	}
	if t.NodeCount()-len(delNodes) < 2 {
		return fmt.Errorf("manip: DeleteSubtree(link %d): %w", sub.Link(), ErrTreeTooSmall)
	}
	sort.Ints(delNodes)
	sort.Ints(delEdges)
	sort.Ints(delLinks)

	// 3. Relocate the root while old indices are still valid. Two cases
	//    need it: the root node lies inside the region, or the root link is
	//    the attach link itself (the root node's primary link anchors the
	//    region). Either way the attachment node keeps at least one ring
	//    link besides the spliced one (otherwise fewer than two nodes would
	//    remain).
	anchor := t.LinkAt(sub.Link())
	attachLink := t.OuterLink(anchor)
	attachNode := t.NodeOf(attachLink)
	rootIdx := t.RootLinkIndex()
	if containsRoot || rootIdx == attachLink.Index() {
		rootIdx = attachLink.Next()
	}

	// 4. If the attachment node's primary link is about to be spliced out
	//    (the old root lay inside the subtree), move the designation to the
	//    next surviving ring link first.
	if attachNode.PrimaryLink() == attachLink.Index() {
		attachNode.ResetPrimaryLink(attachLink.Next())
	}

	// 5. Splice the attach link out of the surviving neighbor's ring.
	pred := t.NextLink(attachLink)
	for t.NextLink(pred) != attachLink {
		pred = t.NextLink(pred)
	}
	pred.ResetNext(attachLink.Next())

	// 6. One bulk compaction per collection; the stored root index is
	//    remapped in the pass.
	t.ResetRootLinkIndex(rootIdx)
	t.Compact(delNodes, delEdges, delLinks)

	return nil
}
