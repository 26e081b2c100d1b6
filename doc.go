// Package minivan turns an attributed graph into a visualization bundle:
// a snapshot of the graph plus a model describing how each node and edge
// attribute should be drawn.
//
// What does the model contain?
//
//	For every attribute that survives the heuristics:
//		• a kind: partition, ranking-size or ranking-color
//		• partitions: modalities with counts, colors and, on nodes, a
//		  modality-to-modality flow table with modularity
//		• rankings: the observed [min, max] range, integer flag, area
//		  scaling or color scale
//	plus default size and color attributes for each side.
//
// Hints (title, authors, per-attribute overrides, pinned colors) steer the
// inference, and a previous bundle is itself valid hints input, so
// rebuilding a bundle from its own graph is idempotent.
//
// Layout:
//
//	core/     - thread-safe attributed Graph and its serialized snapshot
//	infer/    - sampling type inference (string, float, integer)
//	slug/     - URL-safe, collision-free attribute slugs
//	model/    - attribute kinds, hints, attribute specs and their JSON shape
//	matrix/   - row-major dense float64 matrix with checked access
//	flow/     - modality flow table, normalized densities, modularity
//	palette/  - deterministic HCL palettes and an LRU palette cache
//	minivan/  - Build: the two-pass bundle builder
//	codec/    - JSON, MessagePack, YAML and TOML documents, zstd framing
//	builder/  - seeded synthetic graphs with planted partitions
//	config/   - layered configuration (defaults, file, .env, env, flags)
//	cmd/minivan - the build, inspect, generate and config commands
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_ = g.MergeVertexAttributes("A", map[string]interface{}{"category": "fruit"})
//	_ = g.MergeVertexAttributes("B", map[string]interface{}{"category": "vegetable"})
//	_, _ = g.AddEdge("A", "B")
//	b, err := minivan.Build(g, nil)
//
//	go install github.com/katalvlaran/minivan/cmd/minivan@latest
package minivan
