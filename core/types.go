// Package core defines the central Graph, Vertex, and Edge types of an
// attributed graph, and provides thread-safe primitives for building,
// querying, exporting and importing graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a built graph can be read from many
// goroutines at once while its attributes stay stable.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrDuplicateEdgeKey     - an explicit edge key is already in use.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - attempt to add parallel edge when multi-edges disabled.
//	ErrMixedEdgesNotAllowed - per-edge orientation override without mixed mode.
//	ErrBadSnapshot          - a serialized snapshot cannot be imported.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdgeKey indicates an explicit edge key collides with an existing edge.
	ErrDuplicateEdgeKey = errors.New("core: duplicate edge key")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a mixed direction in edges when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrBadSnapshot indicates a serialized graph that cannot be imported.
	ErrBadSnapshot = errors.New("core: invalid serialized graph")
)

// Graph type names as they appear in serialized snapshots and bundle settings.
const (
	TypeDirected   = "directed"
	TypeUndirected = "undirected"
	TypeMixed      = "mixed"
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Attributes stores arbitrary key-value data; values are expected to be
// JSON-like scalars (string, numbers, bool), nil, or nested maps/slices.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attributes stores arbitrary user data. It is never nil for vertices
	// created through the Graph API.
	Attributes map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, an attribute map, and a
// Directed flag. The stored orientation From→To is kept even for undirected
// edges: consumers that care about orientation read it as given.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// Attributes stores arbitrary user data. It is never nil for edges
	// created through the Graph API.
	Attributes map[string]interface{}

	// seq is the insertion sequence used for deterministic enumeration.
	seq uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// WithGraphAttributes seeds the graph-level attribute map (title, url, ...).
// The map is copied.
func WithGraphAttributes(attrs map[string]interface{}) GraphOption {
	return func(g *Graph) {
		for k, v := range attrs {
			g.attributes[k] = v
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

// edgeConfig collects per-edge options before the Edge is materialized.
type edgeConfig struct {
	key         string
	directed    bool
	hasDirected bool
	attributes  map[string]interface{}
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Requires a mixed graph (see WithMixedEdges / NewMixedGraph).
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) {
		c.directed = directed
		c.hasDirected = true
	}
}

// WithEdgeKey assigns an explicit identifier instead of the generated "eN".
func WithEdgeKey(key string) EdgeOption {
	return func(c *edgeConfig) { c.key = key }
}

// WithEdgeAttributes attaches attributes to the new edge. The map is copied.
func WithEdgeAttributes(attrs map[string]interface{}) EdgeOption {
	return func(c *edgeConfig) {
		if c.attributes == nil {
			c.attributes = make(map[string]interface{}, len(attrs))
		}
		for k, v := range attrs {
			c.attributes[k] = v
		}
	}
}

// Graph is the core in-memory attributed graph.
//
// It supports: directed, undirected and mixed orientation, parallel edges
// (multi-edges) and self-loops. muVert protects the vertex catalog and the
// graph attributes; muEdgeAdj protects the edge catalog and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and attributes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges

	// Storage
	nextEdgeID uint64                 // atomic edge ID generator
	nextSeq    uint64                 // edge insertion sequence
	attributes map[string]interface{} // graph-level attributes
	vertices   map[string]*Vertex     // vertex ID → Vertex
	edges      map[string]*Edge       // edge ID → Edge

	// adjacency[from][to] = number of edges stored from→to (mirrored for undirected)
	adjacency map[string]map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		attributes: make(map[string]interface{}),
		vertices:   make(map[string]*Vertex),
		edges:      make(map[string]*Edge),
		adjacency:  make(map[string]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
