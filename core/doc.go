// Package core provides a thread-safe in-memory attributed Graph with a
// minimal, composable API surface. It is the graph provider consumed by the
// minivan bundle builder.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Attributes on the graph, on every vertex and on every edge
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …) or explicit keys (WithEdgeKey)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() returns IDs sorted ascending.
//   - Edges() returns edges in insertion order.
//   - Export() therefore produces the same snapshot for the same graph, and
//     FromSerialized(g.Export()).Export() reproduces it.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error
//	MergeVertexAttributes(id string, attrs map[string]interface{}) error
//	SetVertexAttribute(id, key string, value interface{}) error
//	NodeAttribute(id, key string) (interface{}, bool)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error)
//	EdgeAttribute(edgeID, key string) (interface{}, bool)
//	SetEdgeAttribute(edgeID, key string, value interface{}) error
//
//	// Counts & policy
//	Order() int, Size() int, Type() string, Multi() bool
//
//	// Snapshots
//	Export() *Serialized
//	Import(*Serialized) error
//	FromSerialized(*Serialized) (*Graph, error)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrDuplicateEdgeKey     – explicit edge key already used
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
//	ErrBadSnapshot          – snapshot cannot be imported
package core
