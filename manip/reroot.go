// This file implements rerooting. Rerooting never changes element identity
// or indices — only the stored root-link index, the primary/secondary roles
// of the edges on the path to the old root, and the primary-link
// designations of the nodes along that path.

package manip

import (
	"fmt"

	"github.com/katalvlaran/treelink/core"
)

// Reroot makes at the tree's root link. Walking from the owner node's old
// primary link toward the old root, every crossed edge has its primary and
// secondary roles swapped so the primary side faces the new root, and every
// far node's primary link is redesignated to the ring link that now faces
// the new root. If at's owner is already the root, only the designation is
// re-confirmed.
//
// Errors: ErrTreeNil, ErrNotOwned.
// Complexity: O(path from old root to at's node), not O(tree size).
func Reroot(t *core.Tree, at *core.Link) error {
	// 1. Preconditions.
	if t == nil {
		return ErrTreeNil
	}
	if !t.OwnsLink(at) {
		return fmt.Errorf("manip: Reroot: %w", ErrNotOwned)
	}

	// 2. Remember the old root; IsRoot is unreliable while roles change.
	oldRoot := t.RootNode()

	// 3. The walk starts at the new root node's old rootward link.
	cur := t.PrimaryLinkOf(t.NodeOf(at))

	// 4. Install the new designation up front.
	t.ResetRootLinkIndex(at.Index())
	t.NodeOf(at).ResetPrimaryLink(at.Index())

	// 5. Walk the path to the old root, turning every edge around.
	for t.NodeOf(cur) != oldRoot {
		// cur sits at the secondary end of its edge; swap the roles so the
		// primary side faces the new root.
		e := t.EdgeOf(cur)
		p, s := e.PrimaryLink(), e.SecondaryLink()
		e.ResetPrimaryLink(s)
		e.ResetSecondaryLink(p)

		// The far node's old rootward link is the next step; remember it
		// before redesignating the far node's primary link.
		outer := t.OuterLink(cur)
		next := t.PrimaryLinkOf(t.NodeOf(outer))
		t.NodeOf(outer).ResetPrimaryLink(outer.Index())
		cur = next
	}

	return nil
}

// RerootAtNode reroots at the node's own primary link.
//
// Errors: ErrTreeNil, ErrNotOwned.
func RerootAtNode(t *core.Tree, at *core.Node) error {
	if t == nil {
		return ErrTreeNil
	}
	if !t.OwnsNode(at) {
		return fmt.Errorf("manip: RerootAtNode: %w", ErrNotOwned)
	}

	return Reroot(t, t.PrimaryLinkOf(at))
}

// RerootAt reroots at the primary link of the node stored at nodeIndex.
//
// Errors: ErrTreeNil, ErrIndexOutOfRange.
func RerootAt(t *core.Tree, nodeIndex int) error {
	if t == nil {
		return ErrTreeNil
	}
	if nodeIndex < 0 || nodeIndex >= t.NodeCount() {
		return fmt.Errorf("manip: RerootAt(%d) of %d nodes: %w",
			nodeIndex, t.NodeCount(), ErrIndexOutOfRange)
	}

	return RerootAtNode(t, t.NodeAt(nodeIndex))
}
