// This file implements full structural validation of a tree: the invariant
// contract that every public manipulation operation promises to preserve.
// Validation failures indicate a defect in engine code (or hand-imported
// content), not caller misuse; they are reported as ErrInvalidTopology so
// tests and import paths can branch on them.

package core

import "fmt"

// Validate checks the complete structural contract of t:
//
//  1. Index bijection — element at position i carries stored index i
//     (re-established by construction; checked defensively here).
//  2. Reference bounds — every stored reference addresses a live element.
//  3. Outer mutuality — outer(outer(l)) == l, outer(l) != l, and both
//     partners sit on the same edge.
//  4. Ring closure — walking next from each node's primary link returns to
//     it, visits only links owned by that node, and covers every link in
//     the arena exactly once.
//  5. Edge endpoints — each edge's primary and secondary links reference it
//     back and are outer partners of each other.
//  6. Rooted orientation — the root node's primary link is the root link;
//     along the root-rooted spanning structure every edge's primary link is
//     on the side closer to the root, and every node's primary link faces
//     the root.
//  7. Connectivity — the rooted walk reaches every node and edge.
//
// An empty tree is valid. Returns nil, or an error wrapping
// ErrInvalidTopology naming the first violation found.
// Complexity: O(links + nodes + edges)
func Validate(t *Tree) error {
	if t == nil {
		return fmt.Errorf("nil tree: %w", ErrInvalidTopology)
	}
	if t.Empty() {
		if len(t.links) != 0 || len(t.edges) != 0 || t.rootLink != NilIndex {
			return fmt.Errorf("empty node collection with stray links/edges/root: %w", ErrInvalidTopology)
		}

		return nil
	}
	if t.rootLink < 0 || t.rootLink >= len(t.links) {
		return fmt.Errorf("root link index %d out of range: %w", t.rootLink, ErrInvalidTopology)
	}

	// Index bijection and reference bounds.
	for i, l := range t.links {
		if l.index != i {
			return fmt.Errorf("link at position %d stores index %d: %w", i, l.index, ErrInvalidTopology)
		}
		if !inRange(l.next, len(t.links)) || !inRange(l.outer, len(t.links)) {
			return fmt.Errorf("link %d ring/outer reference out of range: %w", i, ErrInvalidTopology)
		}
		if !inRange(l.node, len(t.nodes)) || !inRange(l.edge, len(t.edges)) {
			return fmt.Errorf("link %d node/edge reference out of range: %w", i, ErrInvalidTopology)
		}
	}
	for i, n := range t.nodes {
		if n.index != i {
			return fmt.Errorf("node at position %d stores index %d: %w", i, n.index, ErrInvalidTopology)
		}
		if !inRange(n.link, len(t.links)) {
			return fmt.Errorf("node %d primary link out of range: %w", i, ErrInvalidTopology)
		}
	}
	for i, e := range t.edges {
		if e.index != i {
			return fmt.Errorf("edge at position %d stores index %d: %w", i, e.index, ErrInvalidTopology)
		}
		if !inRange(e.primary, len(t.links)) || !inRange(e.secondary, len(t.links)) {
			return fmt.Errorf("edge %d endpoint link out of range: %w", i, ErrInvalidTopology)
		}
	}

	// Outer mutuality.
	for i, l := range t.links {
		if l.outer == i {
			return fmt.Errorf("link %d is its own outer: %w", i, ErrInvalidTopology)
		}
		if t.links[l.outer].outer != i {
			return fmt.Errorf("link %d outer mutuality broken: %w", i, ErrInvalidTopology)
		}
		if t.links[l.outer].edge != l.edge {
			return fmt.Errorf("link %d and its outer disagree on edge: %w", i, ErrInvalidTopology)
		}
	}

	// Ring closure and exact link coverage across all rings.
	inRing := make([]bool, len(t.links))
	for i, n := range t.nodes {
		steps := 0
		l := t.links[n.link]
		for {
			if l.node != i {
				return fmt.Errorf("node %d ring contains link %d owned by node %d: %w",
					i, l.index, l.node, ErrInvalidTopology)
			}
			if inRing[l.index] {
				return fmt.Errorf("link %d appears in more than one ring position: %w",
					l.index, ErrInvalidTopology)
			}
			inRing[l.index] = true
			if steps++; steps > len(t.links) {
				return fmt.Errorf("node %d ring does not close: %w", i, ErrInvalidTopology)
			}
			l = t.links[l.next]
			if l.index == n.link {
				break
			}
		}
	}
	for i, seen := range inRing {
		if !seen {
			return fmt.Errorf("link %d belongs to no ring: %w", i, ErrInvalidTopology)
		}
	}

	// Edge endpoints reference back and are mutual partners.
	for i, e := range t.edges {
		if t.links[e.primary].edge != i || t.links[e.secondary].edge != i {
			return fmt.Errorf("edge %d endpoint links do not reference it: %w", i, ErrInvalidTopology)
		}
		if t.links[e.primary].outer != e.secondary {
			return fmt.Errorf("edge %d endpoint links are not outer partners: %w", i, ErrInvalidTopology)
		}
	}

	// Rooted orientation and connectivity.
	root := t.nodes[t.links[t.rootLink].node]
	if root.link != t.rootLink {
		return fmt.Errorf("root node %d primary link %d is not the root link %d: %w",
			root.index, root.link, t.rootLink, ErrInvalidTopology)
	}

	seenNodes := make([]bool, len(t.nodes))
	seenEdges := make([]bool, len(t.edges))
	if err := t.checkRooted(root.index, NilIndex, seenNodes, seenEdges); err != nil {
		return err
	}
	for i, seen := range seenNodes {
		if !seen {
			return fmt.Errorf("node %d unreachable from root: %w", i, ErrInvalidTopology)
		}
	}
	for i, seen := range seenEdges {
		if !seen {
			return fmt.Errorf("edge %d unreachable from root: %w", i, ErrInvalidTopology)
		}
	}

	return nil
}

// checkRooted walks the spanning structure from node down, entering via
// enter (NilIndex at the root). It checks primary-link direction on nodes
// and primary/secondary orientation on edges, and detects cycles.
func (t *Tree) checkRooted(node, enter int, seenNodes []bool, seenEdges []bool) error {
	if seenNodes[node] {
		return fmt.Errorf("node %d reached twice (cycle across edges): %w", node, ErrInvalidTopology)
	}
	seenNodes[node] = true

	start := t.nodes[node].link
	for l := t.links[start]; ; l = t.links[l.next] {
		if l.index != enter {
			// l points away from the root: its edge must be oriented with
			// the primary side here and the secondary side at the partner.
			e := t.edges[l.edge]
			if seenEdges[l.edge] {
				return fmt.Errorf("edge %d reached twice: %w", l.edge, ErrInvalidTopology)
			}
			seenEdges[l.edge] = true
			if e.primary != l.index || e.secondary != l.outer {
				return fmt.Errorf("edge %d primary side does not face the root: %w",
					l.edge, ErrInvalidTopology)
			}

			// The child's primary link must be the partner link (faces root).
			child := t.links[l.outer].node
			if t.nodes[child].link != l.outer {
				return fmt.Errorf("node %d primary link does not face the root: %w",
					child, ErrInvalidTopology)
			}
			if err := t.checkRooted(child, l.outer, seenNodes, seenEdges); err != nil {
				return err
			}
		}
		if l.next == start {
			break
		}
	}

	return nil
}

// inRange reports whether i addresses a collection of size n.
func inRange(i, n int) bool { return i >= 0 && i < n }
