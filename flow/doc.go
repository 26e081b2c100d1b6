// Package flow measures how well a categorical node attribute explains a
// graph's connectivity.
//
// A Table is an n×n grid of Cells, one row and one column per modality
// (distinct value) of a partition attribute. Counts, expected values and
// normalized densities are stored in three row-major matrix.Dense values. Modalities are
// addressed by the stable integer id assigned when they were first seen, so
// iteration order never depends on map ordering.
//
// # Lifecycle
//
//  1. NewTable(n) once the modality set is complete.
//  2. Observe(src, dst) for every edge whose endpoints both carry the
//     attribute, using the edge's stored orientation. Undirected edges are
//     counted in their stored direction only.
//  3. Finalize(m) with m = total edge count of the graph.
//
// # Null model
//
// With M edges, int/in/out the per-modality internal, inbound and outbound
// edge counts:
//
//	expected(a,b)          = (int_a + out_a)(int_b + in_b) / 2M
//	normalizedDensity(a,b) = (count(a,b) − expected(a,b)) / 4M
//	modularity             = Σ nd(a,a) − Σ_{a≠b} nd(a,b)
//
// When M == 0 every expected count, normalized density and the modularity
// are defined as 0.
//
// # Concurrency
//
// A Table is not safe for concurrent mutation. Each build owns its tables.
package flow
