// File: methods_vertices.go
// Role: Vertex lifecycle, attribute access & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog and vertex attributes protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate Vertex and register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and keeps its attributes.
//   - Initializes Attributes to a non-nil map.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Attributes: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// MergeVertexAttributes adds the vertex if needed and copies attrs into its
// attribute map, overwriting existing keys.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(len(attrs)), Space O(len(attrs)).
func (g *Graph) MergeVertexAttributes(id string, attrs map[string]interface{}) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v := g.vertices[id]
	for k, val := range attrs {
		v.Attributes[k] = val
	}

	return nil
}

// SetVertexAttribute sets a single attribute on an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) SetVertexAttribute(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attributes[key] = value

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// NodeAttribute returns the value stored under key on vertex id.
// The boolean is false when the vertex or the key is absent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) NodeAttribute(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Attributes[key]

	return val, ok
}

// VertexAttributes returns a shallow copy of the attribute map of vertex id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) VertexAttributes(id string) (map[string]interface{}, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return copyAttributes(v.Attributes), nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Determinism:
//   - Deterministic output order (lex asc).
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// copyAttributes returns a shallow copy of m; a nil m yields an empty map.
func copyAttributes(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
