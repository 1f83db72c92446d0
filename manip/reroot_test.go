package manip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelink/builder"
	"github.com/katalvlaran/treelink/core"
	"github.com/katalvlaran/treelink/manip"
)

func TestReroot_KeepsElementsAndCounts(t *testing.T) {
	tree, nodes := buildFigTree(t)
	before := counts(tree)

	require.NoError(t, manip.RerootAtNode(tree, nodes["C"]))
	require.NoError(t, core.Validate(tree))

	assert.Equal(t, before, counts(tree))
	assert.Equal(t, "C", tree.RootNode().Data().(*core.NameData).Name)

	// Ring order is untouched, so the walk from the new root matches the
	// virtual-root walk from C on the old orientation.
	assert.Equal(t, "F H I G R B A D E C", postOrderNames(t, tree))
}

// TestReroot_RoundTrip reroots away and back: every designation rerooting
// touches (root link, node primary links, edge roles) must be restored
// exactly.
func TestReroot_RoundTrip(t *testing.T) {
	tree, nodes := buildFigTree(t)
	snap := orientation(tree)

	require.NoError(t, manip.RerootAtNode(tree, nodes["C"]))
	assert.NotEqual(t, snap, orientation(tree))

	require.NoError(t, manip.RerootAtNode(tree, nodes["R"]))
	require.NoError(t, core.Validate(tree))
	assert.Equal(t, snap, orientation(tree))
}

func TestReroot_AtCurrentRootIsNoOp(t *testing.T) {
	tree, _ := buildFigTree(t)
	snap := orientation(tree)

	require.NoError(t, manip.Reroot(tree, tree.RootLink()))
	assert.Equal(t, snap, orientation(tree))
}

// TestReroot_AtNonPrimaryLink reroots at a specific ring link rather than a
// node: the chosen link itself becomes the root designation and the owner's
// primary link.
func TestReroot_AtNonPrimaryLink(t *testing.T) {
	tree, nodes := buildFigTree(t)

	// C's ring link toward D (the successor of its rootward primary link).
	at := tree.NextLink(tree.PrimaryLinkOf(nodes["C"]))
	require.NoError(t, manip.Reroot(tree, at))
	require.NoError(t, core.Validate(tree))

	assert.Equal(t, at.Index(), tree.RootLinkIndex())
	assert.Equal(t, nodes["C"].Index(), tree.RootNode().Index())
	assert.Equal(t, at.Index(), nodes["C"].PrimaryLink())

	// Walk starts at the new primary link, so D comes first, then E, then
	// the old rootward side.
	assert.Equal(t, "D E F H I G R B A C", postOrderNames(t, tree))
}

func TestReroot_Errors(t *testing.T) {
	tree, _ := buildFigTree(t)
	other, err := builder.Minimal()
	require.NoError(t, err)

	assert.ErrorIs(t, manip.Reroot(nil, tree.RootLink()), manip.ErrTreeNil)
	assert.ErrorIs(t, manip.Reroot(tree, other.RootLink()), manip.ErrNotOwned)
	assert.ErrorIs(t, manip.RerootAtNode(tree, other.NodeAt(0)), manip.ErrNotOwned)

	assert.ErrorIs(t, manip.RerootAt(nil, 0), manip.ErrTreeNil)
	assert.ErrorIs(t, manip.RerootAt(tree, -1), manip.ErrIndexOutOfRange)
	assert.ErrorIs(t, manip.RerootAt(tree, tree.NodeCount()), manip.ErrIndexOutOfRange)
}
