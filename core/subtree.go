// This file declares the Subtree view: a lightweight value identifying the
// node at a link plus everything reachable away from that link's outer side
// (everything on the non-root side of the link's edge). A Subtree stores the
// anchoring link itself, so a tree can verify ownership by identity; like a
// raw index, the view is invalidated by structural mutation of the tree.

package core

// Subtree is a view over a tree region, anchored at a single link. It does
// not own any elements and stays cheap to copy.
type Subtree struct {
	link *Link
}

// SubtreeOfLink anchors a subtree view at the given link: the link's owner
// node plus everything away from the link's outer side.
func SubtreeOfLink(l *Link) Subtree {
	return Subtree{link: l}
}

// SubtreeOfNode anchors a subtree view at n's primary link: the node plus
// everything on its non-root side.
func SubtreeOfNode(t *Tree, n *Node) Subtree {
	return Subtree{link: t.LinkAt(n.PrimaryLink())}
}

// SubtreeOfEdge anchors a subtree view at e's secondary link: everything
// hanging below the edge, excluding its root-side endpoint.
func SubtreeOfEdge(t *Tree, e *Edge) Subtree {
	return Subtree{link: t.LinkAt(e.SecondaryLink())}
}

// Link returns the index of the anchoring link, or NilIndex for the zero
// view.
func (s Subtree) Link() int {
	if s.link == nil {
		return NilIndex
	}

	return s.link.Index()
}
