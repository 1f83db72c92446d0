// Package core defines the central Tree, Link, Node, and Edge types of the
// element arena, and provides the low-level primitives for building,
// querying, and compacting tree topologies.
//
// All cross-element references are zero-based integer indices into the
// arena's three collections; the element stored at position i always carries
// stored index i. NilIndex marks an absent reference.
//
// This file declares Link, Node, Edge, the payload capability interfaces,
// default payload implementations, and sentinel errors.
//
// Errors:
//
//	ErrNilElement     - imported content contains a nil element.
//	ErrRootOutOfRange - root link index does not address a stored link.
//	ErrInvalidTopology - Validate found a structural invariant breach.
package core

import (
	"errors"
	"strconv"
)

// NilIndex marks an absent element reference (no link, node, or edge).
const NilIndex = -1

// Sentinel errors for core arena operations.
var (
	// ErrNilElement indicates that imported content contains a nil element.
	ErrNilElement = errors.New("core: nil element in imported content")

	// ErrRootOutOfRange indicates a root link index outside the link collection.
	ErrRootOutOfRange = errors.New("core: root link index out of range")

	// ErrInvalidTopology indicates that Validate found a broken structural
	// invariant. The wrapping message names the first offending element.
	ErrInvalidTopology = errors.New("core: invalid topology")
)

// NodeData is the payload capability consumed by the manipulation engine:
// a single method producing a fresh instance of the same concrete type.
// Payload contents are opaque to the engine.
type NodeData interface {
	// Recreate returns a new, default-initialized instance of the same
	// concrete payload type.
	Recreate() NodeData
}

// EdgeData is the edge-payload counterpart of NodeData.
type EdgeData interface {
	// Recreate returns a new, default-initialized instance of the same
	// concrete payload type.
	Recreate() EdgeData
}

// NameData is the default node payload: a display name.
type NameData struct {
	// Name labels the node, e.g. a taxon name.
	Name string
}

// Recreate returns a fresh, empty NameData.
func (d *NameData) Recreate() NodeData { return &NameData{} }

// String returns the node name.
func (d *NameData) String() string { return d.Name }

// LengthData is the default edge payload: a branch length.
type LengthData struct {
	// Length is the weight or length carried by the edge.
	Length float64
}

// Recreate returns a fresh, zero-length LengthData.
func (d *LengthData) Recreate() EdgeData { return &LengthData{} }

// String renders the branch length in compact decimal form.
func (d *LengthData) String() string {
	return strconv.FormatFloat(d.Length, 'g', -1, 64)
}

// Link is the unit of adjacency: one link per (node, incident edge) pair.
// Each link references its owner node, the edge it sits on, the next link
// in its owner's cyclic ring, and its mutual partner link on the opposite
// endpoint of the same edge (outer(outer(l)) == l always).
type Link struct {
	index int // position in the tree's link collection
	next  int // next link in the owner node's ring (cyclic)
	outer int // partner link across the edge
	node  int // owner node
	edge  int // edge this link sits on
}

// Index returns the link's position in its tree's link collection.
func (l *Link) Index() int { return l.index }

// Next returns the index of the next link in the owner node's ring.
func (l *Link) Next() int { return l.next }

// Outer returns the index of the partner link on the opposite endpoint
// of the same edge.
func (l *Link) Outer() int { return l.outer }

// Node returns the index of the link's owner node.
func (l *Link) Node() int { return l.node }

// Edge returns the index of the edge this link sits on.
func (l *Link) Edge() int { return l.edge }

// ResetNext redirects the ring successor. Engine-level primitive: callers
// are responsible for keeping the ring cyclic.
func (l *Link) ResetNext(i int) { l.next = i }

// ResetOuter redirects the cross-edge partner. Engine-level primitive.
func (l *Link) ResetOuter(i int) { l.outer = i }

// ResetNode reassigns the owner node. Engine-level primitive.
func (l *Link) ResetNode(i int) { l.node = i }

// ResetEdge reassigns the carried edge. Engine-level primitive.
func (l *Link) ResetEdge(i int) { l.edge = i }

// Node owns a reference to its primary link — the ring link oriented toward
// the current root — and an opaque payload. Exactly one primary link per node.
type Node struct {
	index int // position in the tree's node collection
	link  int // primary link (faces the current root)
	data  NodeData
}

// Index returns the node's position in its tree's node collection.
func (n *Node) Index() int { return n.index }

// PrimaryLink returns the index of the ring link facing the current root.
func (n *Node) PrimaryLink() int { return n.link }

// Data returns the node's opaque payload (may be nil).
func (n *Node) Data() NodeData { return n.data }

// ResetPrimaryLink redesignates the root-facing ring link.
// Engine-level primitive: the link must belong to this node's ring.
func (n *Node) ResetPrimaryLink(i int) { n.link = i }

// ResetData replaces the node payload.
func (n *Node) ResetData(d NodeData) { n.data = d }

// Edge owns references to its primary and secondary links — the two ring
// links, one per endpoint node, that the edge connects. The primary side is
// always the endpoint closer to the current root.
type Edge struct {
	index     int // position in the tree's edge collection
	primary   int // link at the endpoint closer to the root
	secondary int // link at the endpoint farther from the root
	data      EdgeData
}

// Index returns the edge's position in its tree's edge collection.
func (e *Edge) Index() int { return e.index }

// PrimaryLink returns the index of the link at the root-facing endpoint.
func (e *Edge) PrimaryLink() int { return e.primary }

// SecondaryLink returns the index of the link at the far endpoint.
func (e *Edge) SecondaryLink() int { return e.secondary }

// Data returns the edge's opaque payload (may be nil).
func (e *Edge) Data() EdgeData { return e.data }

// ResetPrimaryLink reassigns the root-facing link. Engine-level primitive.
func (e *Edge) ResetPrimaryLink(i int) { e.primary = i }

// ResetSecondaryLink reassigns the far link. Engine-level primitive.
func (e *Edge) ResetSecondaryLink(i int) { e.secondary = i }

// ResetData replaces the edge payload.
func (e *Edge) ResetData(d EdgeData) { e.data = d }

// Tree is the element arena: three parallel indexed collections of links,
// nodes, and edges, plus the stored root-link index. The zero value is not
// usable; construct with New.
//
// Tree is not safe for concurrent use. Every operation requires exclusive
// access for its full duration; callers must serialize externally if shared.
type Tree struct {
	links []*Link
	nodes []*Node
	edges []*Edge

	// rootLink designates the root: the root node is the owner of this link.
	rootLink int
}

// New creates an empty Tree with no root designation.
// Complexity: O(1)
func New() *Tree {
	return &Tree{rootLink: NilIndex}
}
