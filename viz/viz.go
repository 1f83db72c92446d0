// Package viz renders treelink topologies as ASCII sketches for debugging,
// logging, and examples. It is a human-oriented view, not a serialization
// format: the output makes no round-trip promises.
//
// Node labels come from payloads implementing fmt.Stringer (core.NameData
// does); unlabeled nodes render as #index. Edge payloads implementing
// fmt.Stringer are shown as branch metadata.
//
// Errors:
//
//   - ErrTreeNil    tree pointer is nil.
//   - ErrTreeEmpty  tree holds no nodes.
package viz

import (
	"errors"
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/treelink/core"
)

var (
	// ErrTreeNil is returned when a nil *core.Tree is passed to Render.
	ErrTreeNil = errors.New("viz: tree is nil")

	// ErrTreeEmpty is returned when the tree holds no nodes.
	ErrTreeEmpty = errors.New("viz: tree is empty")
)

// Render sketches the tree from its current root, children in ring order.
// Complexity: O(nodes)
func Render(t *core.Tree) (string, error) {
	if t == nil {
		return "", ErrTreeNil
	}
	if t.Empty() {
		return "", ErrTreeEmpty
	}

	root := t.RootNode()
	sketch := treeprint.NewWithRoot(nodeLabel(root))
	for _, l := range t.RingLinks(root) {
		addBranch(t, sketch, t.OuterLink(l))
	}

	return sketch.String(), nil
}

// addBranch renders the subtree entered via enter under parent.
func addBranch(t *core.Tree, parent treeprint.Tree, enter *core.Link) {
	node := t.NodeOf(enter)
	label := nodeLabel(node)
	meta := edgeMeta(t.EdgeOf(enter))

	// Leaves become terminal nodes, internal nodes become branches.
	if t.IsLeaf(node) {
		if meta != "" {
			parent.AddMetaNode(meta, label)
		} else {
			parent.AddNode(label)
		}

		return
	}

	var branch treeprint.Tree
	if meta != "" {
		branch = parent.AddMetaBranch(meta, label)
	} else {
		branch = parent.AddBranch(label)
	}
	for l := t.NextLink(enter); l != enter; l = t.NextLink(l) {
		addBranch(t, branch, t.OuterLink(l))
	}
}

// nodeLabel prefers a payload's Stringer form, falling back to #index.
func nodeLabel(n *core.Node) string {
	if s, ok := n.Data().(fmt.Stringer); ok {
		if label := s.String(); label != "" {
			return label
		}
	}

	return fmt.Sprintf("#%d", n.Index())
}

// edgeMeta renders an edge payload's Stringer form, or "" when absent.
func edgeMeta(e *core.Edge) string {
	if s, ok := e.Data().(fmt.Stringer); ok {
		return s.String()
	}

	return ""
}
