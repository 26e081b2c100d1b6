// File: serialize.go
// Role: Snapshot export/import in the graphology serialization shape
//       ({attributes, options, nodes, edges}).
// Determinism:
//   - Export lists nodes by ID asc and edges in insertion order.
// Concurrency:
//   - Export takes read locks phase by phase (vertices, then edges).

package core

import "fmt"

// Serialized is a self-contained snapshot of a Graph.
type Serialized struct {
	Attributes map[string]interface{} `json:"attributes"`
	Options    SerializedOptions      `json:"options"`
	Nodes      []SerializedNode       `json:"nodes"`
	Edges      []SerializedEdge       `json:"edges"`
}

// SerializedOptions mirrors the construction flags of a Graph.
type SerializedOptions struct {
	Type           string `json:"type"`
	Multi          bool   `json:"multi"`
	AllowSelfLoops bool   `json:"allowSelfLoops"`
}

// SerializedNode is one vertex of a snapshot.
type SerializedNode struct {
	Key        string                 `json:"key"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// SerializedEdge is one edge of a snapshot. Source and Target keep the
// stored orientation even when Undirected is set.
type SerializedEdge struct {
	Key        string                 `json:"key,omitempty"`
	Source     string                 `json:"source"`
	Target     string                 `json:"target"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Undirected bool                   `json:"undirected,omitempty"`
}

// Export returns a snapshot of the graph. Attribute maps are shallow copies,
// so the snapshot can be retained after the graph changes.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func (g *Graph) Export() *Serialized {
	g.muVert.RLock()
	s := &Serialized{
		Attributes: copyAttributes(g.attributes),
		Options: SerializedOptions{
			Multi:          g.allowMulti,
			AllowSelfLoops: g.allowLoops,
		},
		Nodes: make([]SerializedNode, 0, len(g.vertices)),
	}
	g.muVert.RUnlock()
	s.Options.Type = g.Type()

	for _, id := range g.Vertices() {
		g.muVert.RLock()
		attrs := copyAttributes(g.vertices[id].Attributes)
		g.muVert.RUnlock()
		s.Nodes = append(s.Nodes, SerializedNode{Key: id, Attributes: attrs})
	}

	edges := g.Edges()
	s.Edges = make([]SerializedEdge, 0, len(edges))
	g.muEdgeAdj.RLock()
	for _, e := range edges {
		s.Edges = append(s.Edges, SerializedEdge{
			Key:        e.ID,
			Source:     e.From,
			Target:     e.To,
			Attributes: copyAttributes(e.Attributes),
			Undirected: !e.Directed,
		})
	}
	g.muEdgeAdj.RUnlock()

	return s
}

// Import adds every node and edge of s into g, merging node attributes and
// graph attributes. Edge orientation flags are honored only on mixed graphs;
// other graphs apply their own default.
//
// Errors:
//   - ErrBadSnapshot (wrapped) when s is nil or an element cannot be added;
//     the underlying core sentinel is wrapped as well.
func (g *Graph) Import(s *Serialized) error {
	if s == nil {
		return ErrBadSnapshot
	}
	for k, v := range s.Attributes {
		g.SetAttribute(k, v)
	}

	var err error
	for i, n := range s.Nodes {
		if err = g.MergeVertexAttributes(n.Key, n.Attributes); err != nil {
			return fmt.Errorf("%w: node %d: %w", ErrBadSnapshot, i, err)
		}
	}

	mixed := g.MixedEdges()
	for i, e := range s.Edges {
		opts := []EdgeOption{WithEdgeAttributes(e.Attributes)}
		if e.Key != "" {
			opts = append(opts, WithEdgeKey(e.Key))
		}
		if mixed {
			opts = append(opts, WithEdgeDirected(!e.Undirected))
		}
		if _, err = g.AddEdge(e.Source, e.Target, opts...); err != nil {
			return fmt.Errorf("%w: edge %d (%s→%s): %w", ErrBadSnapshot, i, e.Source, e.Target, err)
		}
	}

	return nil
}

// FromSerialized builds a new Graph configured by s.Options and filled with s.
//
// Errors:
//   - ErrBadSnapshot on a nil snapshot, an unknown graph type, or any import failure.
func FromSerialized(s *Serialized) (*Graph, error) {
	if s == nil {
		return nil, ErrBadSnapshot
	}

	var opts []GraphOption
	switch s.Options.Type {
	case TypeDirected:
		opts = append(opts, WithDirected(true))
	case TypeUndirected:
	case TypeMixed, "":
		opts = append(opts, WithMixedEdges())
	default:
		return nil, fmt.Errorf("%w: unknown graph type %q", ErrBadSnapshot, s.Options.Type)
	}
	if s.Options.Multi {
		opts = append(opts, WithMultiEdges())
	}
	if s.Options.AllowSelfLoops {
		opts = append(opts, WithLoops())
	}

	g := NewGraph(opts...)
	if err := g.Import(s); err != nil {
		return nil, err
	}

	return g, nil
}
