package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelink/builder"
	"github.com/katalvlaran/treelink/core"
)

func TestMinimal(t *testing.T) {
	tree, err := builder.Minimal()
	require.NoError(t, err)
	require.NoError(t, core.Validate(tree))

	assert.Equal(t, 2, tree.NodeCount())
	assert.Equal(t, 1, tree.EdgeCount())
	assert.Equal(t, 2, tree.LinkCount())
	assert.Equal(t, 0, tree.RootNode().Index())
	assert.True(t, tree.IsLeaf(tree.NodeAt(0)))
	assert.True(t, tree.IsLeaf(tree.NodeAt(1)))
}

func TestPath(t *testing.T) {
	tree, err := builder.Path(6)
	require.NoError(t, err)
	require.NoError(t, core.Validate(tree))

	assert.Equal(t, 6, tree.NodeCount())
	assert.Equal(t, 5, tree.EdgeCount())
	assert.Equal(t, 10, tree.LinkCount())

	// Degree 1 at both ends, 2 everywhere between.
	assert.Equal(t, 1, tree.Degree(tree.NodeAt(0)))
	assert.Equal(t, 1, tree.Degree(tree.NodeAt(5)))
	for i := 1; i < 5; i++ {
		assert.Equal(t, 2, tree.Degree(tree.NodeAt(i)), "node %d", i)
	}

	_, err = builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestStar(t *testing.T) {
	tree, err := builder.Star(5)
	require.NoError(t, err)
	require.NoError(t, core.Validate(tree))

	assert.Equal(t, 6, tree.NodeCount())
	assert.Equal(t, 5, tree.Degree(tree.NodeAt(0)))
	for i := 1; i < 6; i++ {
		assert.True(t, tree.IsLeaf(tree.NodeAt(i)), "node %d", i)
	}

	_, err = builder.Star(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestBifurcating(t *testing.T) {
	tree, err := builder.Bifurcating(3)
	require.NoError(t, err)
	require.NoError(t, core.Validate(tree))

	// 2^(depth+1) − 1 nodes for a complete binary tree of depth 3.
	assert.Equal(t, 15, tree.NodeCount())
	assert.Equal(t, 14, tree.EdgeCount())
	assert.Equal(t, 2, tree.Degree(tree.RootNode()))

	// Every non-root node is either a leaf or a binary inner node.
	leaves := 0
	for i := 1; i < tree.NodeCount(); i++ {
		switch tree.Degree(tree.NodeAt(i)) {
		case 1:
			leaves++
		case 3:
		default:
			t.Fatalf("node %d has unexpected degree %d", i, tree.Degree(tree.NodeAt(i)))
		}
	}
	assert.Equal(t, 8, leaves)

	_, err = builder.Bifurcating(0)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestOptions_PayloadSynthesis(t *testing.T) {
	tree, err := builder.Path(4,
		builder.WithIndexedNames("N"),
		builder.WithUnitLengths(),
	)
	require.NoError(t, err)

	for i, n := range tree.Nodes() {
		nd, ok := n.Data().(*core.NameData)
		require.True(t, ok, "node %d", i)
		assert.Equal(t, fmt.Sprintf("N%d", i), nd.Name)
	}
	for i, e := range tree.Edges() {
		ed, ok := e.Data().(*core.LengthData)
		require.True(t, ok, "edge %d", i)
		assert.Equal(t, 1.0, ed.Length)
	}
}

func TestOptions_CustomFactories(t *testing.T) {
	tree, err := builder.Star(3,
		builder.WithNodeData(func(i int) core.NodeData {
			return &core.NameData{Name: "taxon"}
		}),
		builder.WithEdgeData(func(i int) core.EdgeData {
			return &core.LengthData{Length: float64(i)}
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, "taxon", tree.NodeAt(0).Data().(*core.NameData).Name)
	assert.Equal(t, 0.0, tree.EdgeAt(0).Data().(*core.LengthData).Length)
	assert.Equal(t, 2.0, tree.EdgeAt(2).Data().(*core.LengthData).Length)
}
