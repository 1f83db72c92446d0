// Shared fixtures for traversal tests.
package traverse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treelink/builder"
	"github.com/katalvlaran/treelink/core"
	"github.com/katalvlaran/treelink/manip"
	"github.com/katalvlaran/treelink/traverse"
)

// buildFigTree constructs the reference topology
//
//	((B,(D,E)C)A,F,(H,I)G)R
//
// (10 nodes, 9 edges, 18 links) through the manipulation engine, and
// returns it along with a name → node lookup. Ring order at every node is
// construction order, so the root's children read A, F, G.
func buildFigTree(tb testing.TB) (*core.Tree, map[string]*core.Node) {
	tb.Helper()

	t, err := builder.Minimal()
	require.NoError(tb, err)

	nodes := map[string]*core.Node{
		"R": t.NodeAt(0),
		"A": t.NodeAt(1),
	}
	attach := func(name, parent string) {
		n, aerr := manip.AddNewNode(t, nodes[parent])
		require.NoError(tb, aerr)
		nodes[name] = n
	}
	attach("F", "R")
	attach("G", "R")
	attach("B", "A")
	attach("C", "A")
	attach("D", "C")
	attach("E", "C")
	attach("H", "G")
	attach("I", "G")

	for name, n := range nodes {
		n.ResetData(&core.NameData{Name: name})
	}
	require.NoError(tb, core.Validate(t))

	return t, nodes
}

// nameOrder flattens a traversal result into space-separated node names.
func nameOrder(t *core.Tree, res *traverse.Result) string {
	parts := make([]string, 0, len(res.Steps))
	for _, s := range res.Steps {
		parts = append(parts, t.NodeAt(s.Node).Data().(*core.NameData).Name)
	}

	return strings.Join(parts, " ")
}
