// This file provides the read side of the arena: indexed accessors, counts,
// root resolution, single-hop navigation helpers, ownership checks, and
// ring-based structural queries (degree, leaf/root tests, ring enumeration).
//
// All returned pointers are valid only until the next structural mutation of
// the tree (Compact invalidates every previously handed-out index).

package core

import "fmt"

// LinkCount returns the number of links in the arena.
// Complexity: O(1)
func (t *Tree) LinkCount() int { return len(t.links) }

// NodeCount returns the number of nodes in the arena.
// Complexity: O(1)
func (t *Tree) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges in the arena.
// Complexity: O(1)
func (t *Tree) EdgeCount() int { return len(t.edges) }

// Empty reports whether the tree holds no nodes.
func (t *Tree) Empty() bool { return len(t.nodes) == 0 }

// LinkAt returns the link stored at index i.
// Panics if i is out of range: indexed access with a stale or foreign index
// is an invariant breach, not a reportable condition.
func (t *Tree) LinkAt(i int) *Link {
	if i < 0 || i >= len(t.links) {
		panic(fmt.Sprintf("core: link index %d out of range [0,%d)", i, len(t.links)))
	}

	return t.links[i]
}

// NodeAt returns the node stored at index i. Panics if i is out of range.
func (t *Tree) NodeAt(i int) *Node {
	if i < 0 || i >= len(t.nodes) {
		panic(fmt.Sprintf("core: node index %d out of range [0,%d)", i, len(t.nodes)))
	}

	return t.nodes[i]
}

// EdgeAt returns the edge stored at index i. Panics if i is out of range.
func (t *Tree) EdgeAt(i int) *Edge {
	if i < 0 || i >= len(t.edges) {
		panic(fmt.Sprintf("core: edge index %d out of range [0,%d)", i, len(t.edges)))
	}

	return t.edges[i]
}

// RootLinkIndex returns the stored root-link index, or NilIndex when the
// tree has no root designation (empty tree).
func (t *Tree) RootLinkIndex() int { return t.rootLink }

// RootLink resolves the stored root-link index, or nil for an empty tree.
func (t *Tree) RootLink() *Link {
	if t.rootLink == NilIndex {
		return nil
	}

	return t.LinkAt(t.rootLink)
}

// RootNode returns the owner of the root link, or nil for an empty tree.
func (t *Tree) RootNode() *Node {
	rl := t.RootLink()
	if rl == nil {
		return nil
	}

	return t.NodeAt(rl.Node())
}

// ResetRootLinkIndex redesignates the root via a link index.
// Engine-level primitive; panics if i is neither NilIndex nor a stored index.
func (t *Tree) ResetRootLinkIndex(i int) {
	if i != NilIndex && (i < 0 || i >= len(t.links)) {
		panic(fmt.Sprintf("core: root link index %d out of range [0,%d)", i, len(t.links)))
	}
	t.rootLink = i
}

// NextLink resolves the ring successor of l.
// Complexity: O(1)
func (t *Tree) NextLink(l *Link) *Link { return t.LinkAt(l.Next()) }

// OuterLink resolves the cross-edge partner of l.
// Complexity: O(1)
func (t *Tree) OuterLink(l *Link) *Link { return t.LinkAt(l.Outer()) }

// NodeOf resolves the owner node of l.
// Complexity: O(1)
func (t *Tree) NodeOf(l *Link) *Node { return t.NodeAt(l.Node()) }

// EdgeOf resolves the edge that l sits on.
// Complexity: O(1)
func (t *Tree) EdgeOf(l *Link) *Edge { return t.EdgeAt(l.Edge()) }

// PrimaryLinkOf resolves the root-facing ring link of n.
// Complexity: O(1)
func (t *Tree) PrimaryLinkOf(n *Node) *Link { return t.LinkAt(n.PrimaryLink()) }

// PrimaryNodeOf resolves the endpoint of e that is closer to the root.
// Complexity: O(1)
func (t *Tree) PrimaryNodeOf(e *Edge) *Node {
	return t.NodeOf(t.LinkAt(e.PrimaryLink()))
}

// SecondaryNodeOf resolves the endpoint of e that is farther from the root.
// Complexity: O(1)
func (t *Tree) SecondaryNodeOf(e *Edge) *Node {
	return t.NodeOf(t.LinkAt(e.SecondaryLink()))
}

// OwnsLink reports whether l is the link this tree stores at l.Index().
// Complexity: O(1)
func (t *Tree) OwnsLink(l *Link) bool {
	return l != nil && l.index >= 0 && l.index < len(t.links) && t.links[l.index] == l
}

// OwnsNode reports whether n is the node this tree stores at n.Index().
// Complexity: O(1)
func (t *Tree) OwnsNode(n *Node) bool {
	return n != nil && n.index >= 0 && n.index < len(t.nodes) && t.nodes[n.index] == n
}

// OwnsEdge reports whether e is the edge this tree stores at e.Index().
// Complexity: O(1)
func (t *Tree) OwnsEdge(e *Edge) bool {
	return e != nil && e.index >= 0 && e.index < len(t.edges) && t.edges[e.index] == e
}

// OwnsSubtree reports whether s is anchored at a link of this tree. The zero
// view is owned by no tree.
// Complexity: O(1)
func (t *Tree) OwnsSubtree(s Subtree) bool {
	return t.OwnsLink(s.link)
}

// Degree returns the number of links in n's ring (= number of incident
// edges). A node without a primary link has degree 0.
// Complexity: O(degree)
func (t *Tree) Degree(n *Node) int {
	if n.PrimaryLink() == NilIndex {
		return 0
	}

	deg := 1
	start := t.PrimaryLinkOf(n)
	for l := t.NextLink(start); l != start; l = t.NextLink(l) {
		deg++
	}

	return deg
}

// IsLeaf reports whether n has degree 1.
// Complexity: O(1) — a ring of size one is its own successor.
func (t *Tree) IsLeaf(n *Node) bool {
	if n.PrimaryLink() == NilIndex {
		return false
	}
	pl := t.PrimaryLinkOf(n)

	return pl.Next() == pl.Index()
}

// IsRoot reports whether n owns the root link.
// Complexity: O(1)
func (t *Tree) IsRoot(n *Node) bool {
	rl := t.RootLink()

	return rl != nil && rl.Node() == n.Index()
}

// RingLinks returns n's ring links in cyclic order, starting at the primary
// link. The slice is freshly allocated on every call.
// Complexity: O(degree)
func (t *Tree) RingLinks(n *Node) []*Link {
	if n.PrimaryLink() == NilIndex {
		return nil
	}

	start := t.PrimaryLinkOf(n)
	ring := []*Link{start}
	for l := t.NextLink(start); l != start; l = t.NextLink(l) {
		ring = append(ring, l)
	}

	return ring
}

// Links returns a shallow copy of the link collection in index order.
// The elements are the live arena elements; the slice itself is a copy.
func (t *Tree) Links() []*Link {
	out := make([]*Link, len(t.links))
	copy(out, t.links)

	return out
}

// Nodes returns a shallow copy of the node collection in index order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Edges returns a shallow copy of the edge collection in index order.
func (t *Tree) Edges() []*Edge {
	out := make([]*Edge, len(t.edges))
	copy(out, t.edges)

	return out
}
