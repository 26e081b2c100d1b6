// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors, read-only
//       getters and graph-level attributes.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// NewMixedGraph creates a new Graph that allows per-edge directedness overrides via EdgeOption,
// while preserving deterministic option application order.
//
// Implementation:
//   - Stage 1: Prepend WithMixedEdges() to the caller-provided options.
//   - Stage 2: Delegate to NewGraph(...) to allocate and apply options deterministically.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)) for the composed options slice.
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (g *Graph) IsNil() bool { return g == nil }

// Directed reports the graph-wide default directedness applied to newly created edges.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
// Complexity: O(1).
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Type returns the orientation policy name: TypeMixed, TypeDirected or TypeUndirected.
// Complexity: O(1).
func (g *Graph) Type() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	switch {
	case g.allowMixed:
		return TypeMixed
	case g.directed:
		return TypeDirected
	default:
		return TypeUndirected
	}
}

// Multi is an alias of Multigraph matching the snapshot "multi" flag.
func (g *Graph) Multi() bool { return g.Multigraph() }

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return g.VertexCount() }

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int { return g.EdgeCount() }

// Attribute returns a graph-level attribute.
func (g *Graph) Attribute(key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.attributes[key]

	return v, ok
}

// SetAttribute sets a graph-level attribute.
func (g *Graph) SetAttribute(key string, value interface{}) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.attributes[key] = value
}

// Attributes returns a shallow copy of the graph-level attributes.
// Complexity: O(A).
func (g *Graph) Attributes() map[string]interface{} {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return copyAttributes(g.attributes)
}
