// This file provides the write side of the arena: element appending, bulk
// compacting erase with full index remapping, clearing, cloning, and raw
// content import/export.
//
// These are engine-level primitives. They maintain the index bijection
// (element at position i carries stored index i) but intentionally do not
// re-check ring closure or outer mutuality; the manipulation engine is
// responsible for leaving the topology consistent before handing the tree
// back to readers. Use Validate to check the full contract.

package core

import "fmt"

// AppendLink stores a fresh link at the next available index and returns it.
// All reference fields start at NilIndex and must be populated by the caller.
// Complexity: amortized O(1)
func (t *Tree) AppendLink() *Link {
	l := &Link{index: len(t.links), next: NilIndex, outer: NilIndex, node: NilIndex, edge: NilIndex}
	t.links = append(t.links, l)

	return l
}

// AppendNode stores a fresh node at the next available index and returns it.
// Complexity: amortized O(1)
func (t *Tree) AppendNode() *Node {
	n := &Node{index: len(t.nodes), link: NilIndex}
	t.nodes = append(t.nodes, n)

	return n
}

// AppendEdge stores a fresh edge at the next available index and returns it.
// Complexity: amortized O(1)
func (t *Tree) AppendEdge() *Edge {
	e := &Edge{index: len(t.edges), primary: NilIndex, secondary: NilIndex}
	t.edges = append(t.edges, e)

	return e
}

// Compact erases the elements at the given indices from their collections
// and renumbers every surviving element to its new position, preserving
// relative order. Every stored cross-reference — link ring and outer fields,
// node primary links, edge endpoint links, and the root-link index — is
// remapped in the same pass.
//
// Each index slice must be sorted ascending and duplicate-free, and every
// index must be in range; violations panic. Surviving elements must not
// reference erased ones (the engine rewires before compacting); a dangling
// reference is remapped to NilIndex and will surface in Validate.
//
// All indices handed out before the call are invalid afterwards.
// Complexity: O(links + nodes + edges)
func (t *Tree) Compact(delNodes, delEdges, delLinks []int) {
	// 1. Build old→new index tables, one per collection.
	nodeMap := remapTable(len(t.nodes), delNodes, "node")
	edgeMap := remapTable(len(t.edges), delEdges, "edge")
	linkMap := remapTable(len(t.links), delLinks, "link")

	// 2. Filter each collection in place, restamping survivor indices.
	t.nodes = compactNodes(t.nodes, nodeMap)
	t.edges = compactEdges(t.edges, edgeMap)
	t.links = compactLinks(t.links, linkMap)

	// 3. Remap every surviving cross-reference through the tables.
	for _, l := range t.links {
		l.next = remap(linkMap, l.next)
		l.outer = remap(linkMap, l.outer)
		l.node = remap(nodeMap, l.node)
		l.edge = remap(edgeMap, l.edge)
	}
	for _, n := range t.nodes {
		n.link = remap(linkMap, n.link)
	}
	for _, e := range t.edges {
		e.primary = remap(linkMap, e.primary)
		e.secondary = remap(linkMap, e.secondary)
	}

	// 4. Remap the root designation.
	t.rootLink = remap(linkMap, t.rootLink)
}

// remapTable builds an old→new index table for a collection of size n with
// the sorted, duplicate-free deletion set del. Deleted positions map to
// NilIndex; survivors shift down by the number of deletions before them.
func remapTable(n int, del []int, kind string) []int {
	table := make([]int, n)
	di := 0
	for i := 0; i < n; i++ {
		if di < len(del) && del[di] == i {
			table[i] = NilIndex
			di++
			continue
		}
		table[i] = i - di
	}
	if di != len(del) {
		panic(fmt.Sprintf("core: %s deletion set is unsorted, duplicated, or out of range [0,%d)", kind, n))
	}

	return table
}

// remap translates a stored reference through a remap table,
// passing NilIndex through unchanged.
func remap(table []int, i int) int {
	if i == NilIndex {
		return NilIndex
	}

	return table[i]
}

func compactNodes(old []*Node, table []int) []*Node {
	out := old[:0]
	for i, n := range old {
		if table[i] == NilIndex {
			continue
		}
		n.index = table[i]
		out = append(out, n)
	}

	return out
}

func compactEdges(old []*Edge, table []int) []*Edge {
	out := old[:0]
	for i, e := range old {
		if table[i] == NilIndex {
			continue
		}
		e.index = table[i]
		out = append(out, e)
	}

	return out
}

func compactLinks(old []*Link, table []int) []*Link {
	out := old[:0]
	for i, l := range old {
		if table[i] == NilIndex {
			continue
		}
		l.index = table[i]
		out = append(out, l)
	}

	return out
}

// Clear removes every element and the root designation.
// Complexity: O(1)
func (t *Tree) Clear() {
	t.links = nil
	t.nodes = nil
	t.edges = nil
	t.rootLink = NilIndex
}

// Clone returns a structurally independent copy of the tree: fresh Link,
// Node, and Edge elements carrying the same indices and references. Payload
// pointers are shared, not deep-copied, mirroring the shallow-payload clone
// policy of the default data types.
// Complexity: O(links + nodes + edges)
func (t *Tree) Clone() *Tree {
	c := &Tree{
		links:    make([]*Link, len(t.links)),
		nodes:    make([]*Node, len(t.nodes)),
		edges:    make([]*Edge, len(t.edges)),
		rootLink: t.rootLink,
	}
	for i, l := range t.links {
		cp := *l
		c.links[i] = &cp
	}
	for i, n := range t.nodes {
		cp := *n
		c.nodes[i] = &cp
	}
	for i, e := range t.edges {
		cp := *e
		c.edges[i] = &cp
	}

	return c
}

// ExportContent hands out the raw three collections (shallow slice copies in
// index order) together with the root-link index, for bulk consumers such as
// format writers. The elements remain owned by the tree.
func (t *Tree) ExportContent() (links []*Link, nodes []*Node, edges []*Edge, rootLink int) {
	return t.Links(), t.Nodes(), t.Edges(), t.rootLink
}

// ImportContent replaces the tree's entire content with the given
// collections, taking ownership of the elements and restamping each stored
// index to its position. Cross-reference fields are taken as-is; run
// Validate afterwards to check the imported topology.
//
// Returns ErrNilElement if any element is nil, or ErrRootOutOfRange if
// rootLink does not address an imported link (NilIndex is allowed only for
// empty content).
func (t *Tree) ImportContent(links []*Link, nodes []*Node, edges []*Edge, rootLink int) error {
	// 1. Reject nil elements before touching the tree (no partial state).
	for _, l := range links {
		if l == nil {
			return fmt.Errorf("core: ImportContent links: %w", ErrNilElement)
		}
	}
	for _, n := range nodes {
		if n == nil {
			return fmt.Errorf("core: ImportContent nodes: %w", ErrNilElement)
		}
	}
	for _, e := range edges {
		if e == nil {
			return fmt.Errorf("core: ImportContent edges: %w", ErrNilElement)
		}
	}

	// 2. The root must address an imported link unless the content is empty.
	if rootLink == NilIndex && len(links) > 0 {
		return fmt.Errorf("core: ImportContent: missing root designation: %w", ErrRootOutOfRange)
	}
	if rootLink != NilIndex && (rootLink < 0 || rootLink >= len(links)) {
		return fmt.Errorf("core: ImportContent: root link %d of %d links: %w",
			rootLink, len(links), ErrRootOutOfRange)
	}

	// 3. Adopt the collections and restamp the index bijection.
	t.links = links
	t.nodes = nodes
	t.edges = edges
	for i, l := range t.links {
		l.index = i
	}
	for i, n := range t.nodes {
		n.index = i
	}
	for i, e := range t.edges {
		e.index = i
	}
	t.rootLink = rootLink

	return nil
}
