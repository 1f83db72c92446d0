// Shared fixtures for manipulation-engine tests.
package manip_test

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
// (10 nodes, 9 edges, 18 links) and returns it with a name → node lookup.
// Ring order at every node is construction order, so the root's children
// read A, F, G.
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

// postOrderNames runs a post-order walk from the current root and joins the
// visited node names with spaces.
func postOrderNames(tb testing.TB, t *core.Tree) string {
	tb.Helper()

	res, err := traverse.PostOrder(t, nil)
	require.NoError(tb, err)

	parts := make([]string, 0, len(res.Steps))
	for _, s := range res.Steps {
		parts = append(parts, t.NodeAt(s.Node).Data().(*core.NameData).Name)
	}

	return strings.Join(parts, " ")
}

// counts captures the three collection sizes of a tree.
func counts(t *core.Tree) [3]int {
	return [3]int{t.NodeCount(), t.EdgeCount(), t.LinkCount()}
}

// orientation snapshots every structural designation that rerooting may
// touch: the root link, each node's primary link, and each edge's
// primary/secondary links.
func orientation(t *core.Tree) map[string][]int {
	snap := map[string][]int{"root": {t.RootLinkIndex()}}
	for _, n := range t.Nodes() {
		snap["nodes"] = append(snap["nodes"], n.PrimaryLink())
	}
	for _, e := range t.Edges() {
		snap["edges"] = append(snap["edges"], e.PrimaryLink(), e.SecondaryLink())
	}

	return snap
}
