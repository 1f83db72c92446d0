// This file implements ladderization: reordering every internal node's ring
// by the size of the subtrees hanging off it. Only "next" references are
// rewritten; indices, collections, and the root designation stay untouched.

package manip

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/treelink/core"
	"github.com/katalvlaran/treelink/traverse"
)

// Ladderize rewrites the ring of every internal node so that its non-root
// children appear in order of subtree size — smallest first for Ascending,
// largest first for Descending. The sort is stable: equally sized subtrees
// keep their original relative ring order. The root-facing link stays the
// fixed anchor every ring returns to. Leaves are skipped.
//
// Errors: ErrTreeNil, ErrUnknownOrder, and traversal errors from the
// subtree-size aggregation.
// Complexity: O(n log maxDegree) overall.
func Ladderize(t *core.Tree, order Order) error {
	// 1. Preconditions.
	if t == nil {
		return ErrTreeNil
	}
	if order != Ascending && order != Descending {
		return fmt.Errorf("manip: Ladderize(%d): %w", order, ErrUnknownOrder)
	}

	// 2. One aggregate walk: subtree size per node away from the root.
	sizes, err := traverse.SubtreeSizes(t)
	if err != nil {
		return fmt.Errorf("manip: Ladderize: %w", err)
	}

	// 3. Reorder each internal node's ring.
	for i := 0; i < t.NodeCount(); i++ {
		node := t.NodeAt(i)
		if t.IsLeaf(node) {
			continue
		}

		// Gather the ring links except the root-facing one, with the
		// subtree size at each link's outer end.
		ring := t.RingLinks(node)
		childLinks := ring[1:] // ring starts at the primary link
		childSizes := make([]int, len(childLinks))
		for j, l := range childLinks {
			childSizes[j] = sizes[t.OuterLink(l).Node()]
		}

		// Stable order of child positions by subtree size.
		perm := make([]int, len(childLinks))
		for j := range perm {
			perm[j] = j
		}
		sort.SliceStable(perm, func(a, b int) bool {
			if order == Ascending {
				return childSizes[perm[a]] < childSizes[perm[b]]
			}

			return childSizes[perm[a]] > childSizes[perm[b]]
		})

		// Rewrite the next chain to realize the order, keeping the primary
		// link as the ring's fixed anchor.
		cur := t.PrimaryLinkOf(node)
		for _, j := range perm {
			cur.ResetNext(childLinks[j].Index())
			cur = childLinks[j]
		}
		cur.ResetNext(node.PrimaryLink())
	}

	return nil
}
