package viz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelink/builder"
	"github.com/katalvlaran/treelink/core"
	"github.com/katalvlaran/treelink/viz"
)

func TestRender_NilAndEmpty(t *testing.T) {
	out, err := viz.Render(nil)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, viz.ErrTreeNil)

	out, err = viz.Render(core.New())
	assert.Empty(t, out)
	assert.ErrorIs(t, err, viz.ErrTreeEmpty)
}

func TestRender_LabeledTopology(t *testing.T) {
	tree, err := builder.Bifurcating(2, builder.WithIndexedNames("N"))
	require.NoError(t, err)

	out, err := viz.Render(tree)
	require.NoError(t, err)

	// Every label shows up, the root's on the first line.
	for i := 0; i < tree.NodeCount(); i++ {
		name := tree.NodeAt(i).Data().(*core.NameData).Name
		assert.Contains(t, out, name)
	}
	assert.Equal(t, byte('N'), out[0])
}

func TestRender_UnlabeledFallsBackToIndex(t *testing.T) {
	tree, err := builder.Star(2)
	require.NoError(t, err)

	out, err := viz.Render(tree)
	require.NoError(t, err)

	assert.Contains(t, out, "#0")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")
}

func TestRender_EdgeMetadata(t *testing.T) {
	tree, err := builder.Path(3,
		builder.WithIndexedNames("N"),
		builder.WithUnitLengths(),
	)
	require.NoError(t, err)
	tree.EdgeAt(1).Data().(*core.LengthData).Length = 2.5

	out, err := viz.Render(tree)
	require.NoError(t, err)

	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "[2.5]")
}
