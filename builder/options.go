// This file resolves the builder's functional options into an immutable
// config. Payload synthesis is index-driven so that the same options and
// constructor always produce identical trees.

package builder

import (
	"strconv"

	"github.com/katalvlaran/treelink/core"
)

// Option configures payload synthesis for a constructor.
type Option func(*config)

// config is the resolved, immutable builder configuration.
type config struct {
	// nodeData, if non-nil, produces the payload for the node at index i.
	nodeData func(i int) core.NodeData

	// edgeData, if non-nil, produces the payload for the edge at index i.
	edgeData func(i int) core.EdgeData
}

// newConfig resolves opts deterministically, left to right.
func newConfig(opts ...Option) config {
	var cfg config
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithNodeData returns an Option that installs fn as the per-node payload
// factory; fn receives the node's final index.
func WithNodeData(fn func(i int) core.NodeData) Option {
	return func(c *config) { c.nodeData = fn }
}

// WithEdgeData returns an Option that installs fn as the per-edge payload
// factory; fn receives the edge's final index.
func WithEdgeData(fn func(i int) core.EdgeData) Option {
	return func(c *config) { c.edgeData = fn }
}

// WithIndexedNames returns an Option that labels every node
// prefix + its index via core.NameData ("N0", "N1", ... for prefix "N").
func WithIndexedNames(prefix string) Option {
	return WithNodeData(func(i int) core.NodeData {
		return &core.NameData{Name: prefix + strconv.Itoa(i)}
	})
}

// WithUnitLengths returns an Option that assigns every edge a
// core.LengthData branch length of 1.
func WithUnitLengths() Option {
	return WithEdgeData(func(int) core.EdgeData {
		return &core.LengthData{Length: 1}
	})
}

// applyData stamps the configured payloads onto a finished topology.
func applyData(t *core.Tree, cfg config) {
	if cfg.nodeData != nil {
		for i, n := range t.Nodes() {
			n.ResetData(cfg.nodeData(i))
		}
	}
	if cfg.edgeData != nil {
		for i, e := range t.Edges() {
			e.ResetData(cfg.edgeData(i))
		}
	}
}
