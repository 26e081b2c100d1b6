// Package builder generates deterministic attributed graphs: planted
// partitions with a known group structure, categorical and numeric vertex
// attributes, degree attributes and numeric edge attributes.
//
// The generated graphs are fixtures for the minivan model builder. A planted
// partition with pIn > pOut yields a group attribute with positive
// modularity, so the flow statistics of a bundle can be checked against the
// structure that produced the graph.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.PlantedPartition(4, 25, 0.3, 0.01, "group"),
//		builder.Numeric("score", 0, 100, true),
//		builder.Degree("degree"),
//		builder.EdgeNumeric("weight", 0, 1, false),
//	)
//
// Determinism:
//
//   - Vertices are added in index order via the ID scheme (WithIDScheme).
//   - Edge trials run in a fixed (i, j) order.
//   - Attribute constructors visit vertices sorted by ID and edges in
//     insertion order.
//   - For a fixed seed, options and constructor order the graph, and
//     therefore its Export snapshot, is identical across runs.
//
// Errors:
//
//	ErrTooFewVertices     – a size parameter below its minimum
//	ErrInvalidProbability – a probability outside [0, 1]
//	ErrNeedRandSource     – a stochastic constructor without WithSeed/WithRand
//	ErrInvalidRange       – min > max, or an empty value domain
//	ErrConstructFailed    – nil constructor or a core mutation failure
package builder
