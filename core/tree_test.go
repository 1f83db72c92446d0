package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelink/builder"
	"github.com/katalvlaran/treelink/core"
)

func TestNew_EmptyTree(t *testing.T) {
	tree := core.New()

	assert.True(t, tree.Empty())
	assert.Zero(t, tree.LinkCount())
	assert.Zero(t, tree.NodeCount())
	assert.Zero(t, tree.EdgeCount())
	assert.Equal(t, core.NilIndex, tree.RootLinkIndex())
	assert.Nil(t, tree.RootLink())
	assert.Nil(t, tree.RootNode())
	assert.NoError(t, core.Validate(tree))
}

func TestAppend_StampsIndicesAndNilReferences(t *testing.T) {
	tree := core.New()

	l := tree.AppendLink()
	n := tree.AppendNode()
	e := tree.AppendEdge()

	assert.Equal(t, 0, l.Index())
	assert.Equal(t, core.NilIndex, l.Next())
	assert.Equal(t, core.NilIndex, l.Outer())
	assert.Equal(t, core.NilIndex, l.Node())
	assert.Equal(t, core.NilIndex, l.Edge())

	assert.Equal(t, 0, n.Index())
	assert.Equal(t, core.NilIndex, n.PrimaryLink())
	assert.Nil(t, n.Data())

	assert.Equal(t, 0, e.Index())
	assert.Equal(t, core.NilIndex, e.PrimaryLink())
	assert.Equal(t, core.NilIndex, e.SecondaryLink())
	assert.Nil(t, e.Data())

	assert.Equal(t, 1, tree.AppendLink().Index())
	assert.Equal(t, 1, tree.AppendNode().Index())
	assert.Equal(t, 1, tree.AppendEdge().Index())
}

func TestIndexedAccess_PanicsOutOfRange(t *testing.T) {
	tree, err := builder.Minimal()
	require.NoError(t, err)

	assert.Panics(t, func() { tree.LinkAt(-1) })
	assert.Panics(t, func() { tree.LinkAt(tree.LinkCount()) })
	assert.Panics(t, func() { tree.NodeAt(tree.NodeCount()) })
	assert.Panics(t, func() { tree.EdgeAt(tree.EdgeCount()) })
}

func TestResetRootLinkIndex_Bounds(t *testing.T) {
	tree, err := builder.Minimal()
	require.NoError(t, err)

	// NilIndex and stored indices are accepted; anything else panics.
	tree.ResetRootLinkIndex(core.NilIndex)
	assert.Equal(t, core.NilIndex, tree.RootLinkIndex())
	tree.ResetRootLinkIndex(0)
	assert.Equal(t, 0, tree.RootLinkIndex())
	assert.Panics(t, func() { tree.ResetRootLinkIndex(tree.LinkCount()) })
}

// TestNavigation_MinimalHops exercises every single-hop resolver on the
// two-node tree, where all references are known by construction.
func TestNavigation_MinimalHops(t *testing.T) {
	tree, err := builder.Minimal()
	require.NoError(t, err)

	rootLink := tree.RootLink()
	leafLink := tree.OuterLink(rootLink)
	edge := tree.EdgeOf(rootLink)

	// Rings of size one are their own successors.
	assert.Equal(t, rootLink, tree.NextLink(rootLink))
	assert.Equal(t, leafLink, tree.NextLink(leafLink))

	// Outer hops are mutual.
	assert.Equal(t, rootLink, tree.OuterLink(leafLink))

	// Ownership and edge endpoints line up.
	assert.Equal(t, 0, tree.NodeOf(rootLink).Index())
	assert.Equal(t, 1, tree.NodeOf(leafLink).Index())
	assert.Equal(t, edge, tree.EdgeOf(leafLink))
	assert.Equal(t, 0, tree.PrimaryNodeOf(edge).Index())
	assert.Equal(t, 1, tree.SecondaryNodeOf(edge).Index())
	assert.Equal(t, rootLink, tree.PrimaryLinkOf(tree.NodeAt(0)))
}

func TestOwnership_PointerIdentity(t *testing.T) {
	tree, err := builder.Minimal()
	require.NoError(t, err)
	other, err := builder.Minimal()
	require.NoError(t, err)

	assert.True(t, tree.OwnsLink(tree.LinkAt(0)))
	assert.True(t, tree.OwnsNode(tree.NodeAt(1)))
	assert.True(t, tree.OwnsEdge(tree.EdgeAt(0)))

	// Same indices, different tree: ownership is pointer identity, not index.
	assert.False(t, tree.OwnsLink(other.LinkAt(0)))
	assert.False(t, tree.OwnsNode(other.NodeAt(1)))
	assert.False(t, tree.OwnsEdge(other.EdgeAt(0)))

	assert.False(t, tree.OwnsLink(nil))
	assert.False(t, tree.OwnsNode(nil))
	assert.False(t, tree.OwnsEdge(nil))

	assert.True(t, tree.OwnsSubtree(core.SubtreeOfNode(tree, tree.NodeAt(1))))
	assert.False(t, tree.OwnsSubtree(core.SubtreeOfLink(other.LinkAt(0))))
	assert.False(t, tree.OwnsSubtree(core.Subtree{}))
	assert.Equal(t, core.NilIndex, core.Subtree{}.Link())
}

func TestRingQueries_Star(t *testing.T) {
	tree, err := builder.Star(3)
	require.NoError(t, err)
	hub := tree.NodeAt(0)

	assert.Equal(t, 3, tree.Degree(hub))
	assert.False(t, tree.IsLeaf(hub))
	assert.True(t, tree.IsRoot(hub))

	for i := 1; i < tree.NodeCount(); i++ {
		leaf := tree.NodeAt(i)
		assert.Equal(t, 1, tree.Degree(leaf))
		assert.True(t, tree.IsLeaf(leaf))
		assert.False(t, tree.IsRoot(leaf))
	}

	// The ring starts at the primary link and visits each spoke once.
	ring := tree.RingLinks(hub)
	require.Len(t, ring, 3)
	assert.Equal(t, hub.PrimaryLink(), ring[0].Index())
	seen := map[int]bool{}
	for _, l := range ring {
		assert.Equal(t, hub.Index(), l.Node())
		seen[tree.OuterLink(l).Node()] = true
	}
	assert.Len(t, seen, 3)
}

func TestRingQueries_DetachedNode(t *testing.T) {
	tree := core.New()
	n := tree.AppendNode()

	// A node without a primary link has no ring at all.
	assert.Zero(t, tree.Degree(n))
	assert.False(t, tree.IsLeaf(n))
	assert.Nil(t, tree.RingLinks(n))
}

func TestCollectionViews_AreCopies(t *testing.T) {
	tree, err := builder.Path(3)
	require.NoError(t, err)

	links := tree.Links()
	require.Len(t, links, tree.LinkCount())

	// Mutating the returned slice does not disturb the arena.
	links[0] = nil
	assert.NotNil(t, tree.LinkAt(0))
	nodes := tree.Nodes()
	nodes[0] = nil
	assert.NotNil(t, tree.NodeAt(0))
	edges := tree.Edges()
	edges[0] = nil
	assert.NotNil(t, tree.EdgeAt(0))
}
