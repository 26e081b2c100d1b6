// Package minivan derives a visualization model from an attributed graph.
//
// Build inspects every node and edge attribute and decides how it should be
// encoded: as a partition (discrete colored groups) or as a ranking (size or
// color gradient). For categorical node attributes it also measures how well
// the categories explain connectivity, through a directed modality-to-modality
// flow table, an expected-count null model and a modularity score (see
// package flow).
//
// The result is a Bundle: descriptive metadata, the graph snapshot, the
// graph settings and the model. User hints (a partial bundle, see
// model.Hints) override kinds, labels, slugs, scaling and modality colors;
// a bundle decoded back as hints reproduces itself.
//
// # Heuristics
//
//   - Bail-out: an unhinted partition reaching DefaultMaxPartitionCardinality
//     distinct values, and at least DefaultMaxCardinalityRatio of the node
//     (or edge) count, is dropped as identifier-like.
//   - Pruning: an unhinted partition with fewer than two values is dropped.
//   - Colors: palette colors are given only when cardinality/total reaches
//     DefaultMinColorProportion; otherwise modalities share NodeFallbackColor
//     or EdgeFallbackColor.
//
// Dropped attributes are reported through WithOnDrop and logged at debug
// level through WithLogger.
//
// # Usage
//
//	b, err := minivan.Build(g, hints,
//	    minivan.WithSampleSize(100),
//	    minivan.WithPalette(cachedPalette),
//	)
//	if errors.Is(err, minivan.ErrInvalidGraph) { ... }
package minivan
