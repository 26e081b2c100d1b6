// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       edge attribute access, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Collect options; an orientation override without allowMixed ⇒ ErrMixedEdgesNotAllowed.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj, check multi-edge constraint and key uniqueness.
//  5. Use the explicit key or generate eid atomically.
//  6. Store in g.edges and link adjacency (mirrored when undirected).
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	cfg := edgeConfig{directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.hasDirected && cfg.directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.adjacency[from][to] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := cfg.key
	if eid == "" {
		eid = nextEdgeID(g)
		for g.edges[eid] != nil { // explicit keys may have taken a generated name
			eid = nextEdgeID(g)
		}
	} else if _, taken := g.edges[eid]; taken {
		return "", ErrDuplicateEdgeKey
	}

	g.nextSeq++
	e := &Edge{
		ID:         eid,
		From:       from,
		To:         to,
		Directed:   cfg.directed,
		Attributes: copyAttributes(cfg.attributes),
		seq:        g.nextSeq,
	}

	g.edges[eid] = e
	ensureAdjacency(g, from)
	g.adjacency[from][to]++
	if !e.Directed && from != to {
		ensureAdjacency(g, to)
		g.adjacency[to][from]++
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.adjacency[from][to] > 0
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeAttribute returns the value stored under key on edge edgeID.
// The boolean is false when the edge or the key is absent.
func (g *Graph) EdgeAttribute(edgeID, key string) (interface{}, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, false
	}
	val, ok := e.Attributes[key]

	return val, ok
}

// SetEdgeAttribute sets a single attribute on an existing edge.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) SetEdgeAttribute(edgeID, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Attributes[key] = value

	return nil
}

// Edges returns all edges in insertion order (stable, deterministic order).
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether there exists at least one edge with Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// ensureAdjacency makes adjacency[id] non-nil. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]int)
	}
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal digits).
// Safe for concurrent callers; atomic.AddUint64 reserves the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
