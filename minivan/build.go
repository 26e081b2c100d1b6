// SPDX-License-Identifier: MIT

package minivan

import (
	"github.com/katalvlaran/minivan/model"
)

// Build derives a bundle from g, completing the optional hints.
//
// Stage 1 (Validate): non-nil graph whose export agrees with Order and Size.
// Stage 2 (Specs): sample-based type inference, then one spec per attribute.
// Stage 3 (Nodes): count values and bail out on identifier-like partitions.
// Stage 4 (Edges): flow tables for node partitions, then edge values.
// Stage 5 (Finalize): expected counts, densities, modularity.
// Stage 6 (Prune): drop single-value partitions without a hint.
// Stage 7 (Encode): modality colors, default size and color attributes.
//
// Complexity: O(V·A + E·(P + A) + Σ n²), no step suspends or blocks.
// Build allocates all of its state, so concurrent builds over the same
// unmodified graph are safe.
func Build(g Graph, hints *model.Hints, opts ...Option) (*Bundle, error) {
	snap, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Bundle{
		BundleVersion: BundleVersion,
		Consolidated:  true,
		Graph:         snap,
		Settings:      Settings{Type: g.Type(), Multi: g.Multi()},
	}
	b.metadata(hints, g.Attributes())

	a := newAggregator(g, snap, hints, cfg)
	a.buildSpecs(hints)
	a.nodePass()
	if err = a.edgePass(); err != nil {
		return nil, err
	}
	if err = a.finalize(); err != nil {
		return nil, err
	}
	a.prune()
	if err = a.paint(&a.nodes, NodeFallbackColor); err != nil {
		return nil, err
	}
	if err = a.paint(&a.edges, EdgeFallbackColor); err != nil {
		return nil, err
	}

	b.Model = Model{NodeAttributes: a.nodes.specs, EdgeAttributes: a.edges.specs}
	defaults(&b.Model, hints)

	cfg.Logger.Debug("bundle built",
		"nodes", len(snap.Nodes),
		"edges", len(snap.Edges),
		"nodeAttributes", len(b.Model.NodeAttributes),
		"edgeAttributes", len(b.Model.EdgeAttributes))

	return b, nil
}
