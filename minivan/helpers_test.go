package minivan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/model"
	"github.com/katalvlaran/minivan/palette"
)

func ptr[T any](v T) *T { return &v }

// stubPalette returns "#000001", "#000002", … regardless of the seed.
var stubPalette = palette.GeneratorFunc(func(count int, _ string) ([]string, error) {
	out := make([]string, count)
	for i := range out {
		out[i] = fmt.Sprintf("#%06x", i+1)
	}
	return out, nil
})

// basicGraph is the three-node fruit/vegetable fixture with one A–B edge.
func basicGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithGraphAttributes(map[string]interface{}{"title": "Basic Graph"}))

	nodes := []struct {
		id    string
		attrs map[string]interface{}
	}{
		{"A", map[string]interface{}{"nb": 14, "centrality": 0.8, "color": "red", "category": "fruit"}},
		{"B", map[string]interface{}{"nb": 67, "centrality": -18.74, "color": "blue", "category": "vegetable"}},
		{"C", map[string]interface{}{"nb": 542, "centrality": 13, "color": "red", "category": "fruit"}},
	}
	for _, n := range nodes {
		require.NoError(t, g.MergeVertexAttributes(n.id, n.attrs))
	}
	_, err := g.AddEdge("A", "B", core.WithEdgeAttributes(map[string]interface{}{
		"weight": 0.556, "cardinality": 34, "predicate": "HAS",
	}))
	require.NoError(t, err)

	return g
}

// groupGraph builds n nodes whose "group" attribute cycles through k values,
// plus the given edges between node indexes.
func groupGraph(t *testing.T, n, k int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		require.NoError(t, g.MergeVertexAttributes(nodeID(i), map[string]interface{}{
			"group": fmt.Sprintf("g%d", i%k),
		}))
	}
	for _, e := range edges {
		_, err := g.AddEdge(nodeID(e[0]), nodeID(e[1]))
		require.NoError(t, err)
	}

	return g
}

func nodeID(i int) string { return fmt.Sprintf("n%03d", i) }

// diagMinusOff recomputes modularity from the flow table of spec.
func diagMinusOff(t *testing.T, spec *model.AttributeSpec) float64 {
	t.Helper()
	tbl := spec.Partition.Flow
	require.NotNil(t, tbl)

	var q float64
	for a := 0; a < tbl.Len(); a++ {
		row, err := tbl.Row(a)
		require.NoError(t, err)
		for b, c := range row {
			if a == b {
				q += c.NormalizedDensity
			} else {
				q -= c.NormalizedDensity
			}
		}
	}

	return q
}
