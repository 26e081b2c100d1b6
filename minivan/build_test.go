package minivan_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/minivan"
	"github.com/katalvlaran/minivan/model"
)

const eps = 1e-12

func keys(specs []*model.AttributeSpec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Key
	}
	return out
}

func TestBuild_Basic(t *testing.T) {
	b, err := minivan.Build(basicGraph(t), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	assert.Equal(t, minivan.BundleVersion, b.BundleVersion)
	assert.True(t, b.Consolidated)
	assert.Equal(t, "Basic Graph", b.Title)
	assert.Equal(t, minivan.Settings{Type: core.TypeUndirected, Multi: false}, b.Settings)
	require.NotNil(t, b.Graph)
	assert.Len(t, b.Graph.Nodes, 3)

	assert.Equal(t, []string{"category", "centrality", "nb"}, keys(b.Model.NodeAttributes))
	assert.Equal(t, []string{"cardinality", "weight"}, keys(b.Model.EdgeAttributes), "single-value predicate is pruned")

	cat, ok := b.Model.NodeAttribute("category")
	require.True(t, ok)
	require.NotNil(t, cat.Partition)
	p := cat.Partition
	assert.Equal(t, 2, p.Cardinality())
	assert.Equal(t, 3, cat.Count)

	fruitID, ok := p.Lookup("fruit")
	require.True(t, ok)
	vegID, ok := p.Lookup("vegetable")
	require.True(t, ok)
	assert.Equal(t, 2, p.Modalities[fruitID].Count)
	assert.Equal(t, 1, p.Modalities[vegID].Count)

	fruit, err := p.Flow.Stats(fruitID)
	require.NoError(t, err)
	veg, err := p.Flow.Stats(vegID)
	require.NoError(t, err)
	assert.Equal(t, 1, fruit.OutboundEdges)
	assert.Equal(t, 1, veg.InboundEdges)
	assert.Zero(t, fruit.InternalEdges)
	assert.Zero(t, veg.InternalEdges)
	assert.InDelta(t, -0.125, p.Modularity, eps)

	assert.Equal(t, "#000001", p.Modalities[fruitID].Color)
	assert.Equal(t, "#000002", p.Modalities[vegID].Color)

	nb, ok := b.Model.NodeAttribute("nb")
	require.True(t, ok)
	require.NotNil(t, nb.Size)
	assert.Equal(t, 14.0, nb.Size.Min)
	assert.Equal(t, 542.0, nb.Size.Max)
	assert.True(t, nb.Size.Integer)

	c, ok := b.Model.NodeAttribute("centrality")
	require.True(t, ok)
	require.NotNil(t, c.Size)
	assert.False(t, c.Size.Integer)
	assert.Equal(t, -18.74, c.Size.Min)
	assert.Equal(t, 13.0, c.Size.Max)

	_, ok = b.Model.NodeAttribute("color")
	assert.False(t, ok, "presentation keys are never modeled")

	assert.Equal(t, "centrality", b.Model.DefaultNodeSize)
	assert.Equal(t, "category", b.Model.DefaultNodeColor)
	assert.Equal(t, "cardinality", b.Model.DefaultEdgeSize)
	assert.Empty(t, b.Model.DefaultEdgeColor)
}

func TestBuild_HintOverrides(t *testing.T) {
	hints := &model.Hints{
		Title: ptr("Groceries"),
		Model: &model.ModelHints{
			NodeAttributes: []model.AttributeHint{
				{
					Key:         "centrality",
					Integer:     ptr(true),
					AreaScaling: &model.AreaScalingHint{Interpolation: ptr("pow-2")},
				},
				{
					Key:        "category",
					Modalities: map[string]model.ModalityHint{"vegetable": {Color: ptr("#00FF00")}},
				},
			},
			DefaultNodeSize: "nb",
		},
	}

	b, err := minivan.Build(basicGraph(t), hints, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	assert.Equal(t, "Groceries", b.Title)
	assert.Equal(t, []string{"category", "centrality"}, keys(b.Model.NodeAttributes), "hinted keys whitelist the node side")

	c, _ := b.Model.NodeAttribute("centrality")
	require.NotNil(t, c.Size)
	assert.True(t, c.Size.Integer)
	assert.Equal(t, -18.0, c.Size.Min)
	assert.Equal(t, 13.0, c.Size.Max)
	assert.Equal(t, "pow-2", c.Size.AreaScaling.Interpolation)
	assert.Equal(t, 10.0, c.Size.AreaScaling.Min)

	cat, _ := b.Model.NodeAttribute("category")
	fruitID, _ := cat.Partition.Lookup("fruit")
	vegID, _ := cat.Partition.Lookup("vegetable")
	assert.Equal(t, "#00FF00", cat.Partition.Modalities[vegID].Color)
	assert.Equal(t, "#000001", cat.Partition.Modalities[fruitID].Color, "hinted colors do not consume the palette")

	assert.Equal(t, "nb", b.Model.DefaultNodeSize)
	assert.Equal(t, []string{"cardinality", "weight"}, keys(b.Model.EdgeAttributes), "edge side is not whitelisted")
}

func TestBuild_MixedTypesArePartitions(t *testing.T) {
	g := core.NewGraph()
	for i, v := range []interface{}{3, "three", 4.5} {
		require.NoError(t, g.MergeVertexAttributes(nodeID(i), map[string]interface{}{"value": v}))
	}

	b, err := minivan.Build(g, nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	s, ok := b.Model.NodeAttribute("value")
	require.True(t, ok)
	assert.Equal(t, model.KindPartition, s.Kind)
	assert.Equal(t, 3, s.Partition.Cardinality())
	_, ok = s.Partition.Lookup("4.5")
	assert.True(t, ok)
}

func TestBuild_CardinalityBailOut(t *testing.T) {
	var drops []minivan.Drop
	onDrop := minivan.WithOnDrop(func(d minivan.Drop) { drops = append(drops, d) })

	b, err := minivan.Build(groupGraph(t, 300, 30, nil), nil, onDrop, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	_, ok := b.Model.NodeAttribute("group")
	assert.False(t, ok)
	require.Len(t, drops, 1)
	assert.Equal(t, minivan.Drop{Key: "group", Side: model.NodeSide, Reason: minivan.DropHighCardinality, Cardinality: 30}, drops[0])

	b, err = minivan.Build(groupGraph(t, 300, 29, nil), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	s, ok := b.Model.NodeAttribute("group")
	require.True(t, ok)
	assert.Equal(t, 29, s.Partition.Cardinality())

	hints := &model.Hints{Model: &model.ModelHints{NodeAttributes: []model.AttributeHint{{Key: "group"}}}}
	b, err = minivan.Build(groupGraph(t, 300, 30, nil), hints, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	s, ok = b.Model.NodeAttribute("group")
	require.True(t, ok, "hinted attributes never bail out")
	assert.Equal(t, 30, s.Partition.Cardinality())
}

func TestBuild_CardinalityRatio(t *testing.T) {
	// 30 values on 400 nodes: past the ceiling but under 10% of the nodes.
	b, err := minivan.Build(groupGraph(t, 400, 30, nil), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	s, ok := b.Model.NodeAttribute("group")
	require.True(t, ok, "both the ceiling and the ratio must be reached")
	assert.Equal(t, 30, s.Partition.Cardinality())

	b, err = minivan.Build(groupGraph(t, 400, 40, nil), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	_, ok = b.Model.NodeAttribute("group")
	assert.False(t, ok)
}

// relGraph builds a ten-node multigraph with m edges whose "rel" attribute
// cycles through k values.
func relGraph(t *testing.T, m, k int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	for i := 0; i < m; i++ {
		_, err := g.AddEdge(nodeID(i%10), nodeID((i+1)%10), core.WithEdgeAttributes(map[string]interface{}{
			"rel": fmt.Sprintf("r%d", i%k),
		}))
		require.NoError(t, err)
	}

	return g
}

func TestBuild_EdgeCardinalityBailOut(t *testing.T) {
	var drops []minivan.Drop
	onDrop := minivan.WithOnDrop(func(d minivan.Drop) { drops = append(drops, d) })

	b, err := minivan.Build(relGraph(t, 300, 30), nil, onDrop, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	_, ok := b.Model.EdgeAttribute("rel")
	assert.False(t, ok)
	require.Len(t, drops, 1)
	assert.Equal(t, minivan.Drop{Key: "rel", Side: model.EdgeSide, Reason: minivan.DropHighCardinality, Cardinality: 30}, drops[0])

	// The ratio is taken against the 400 edges, not the 10 nodes.
	b, err = minivan.Build(relGraph(t, 400, 30), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	s, ok := b.Model.EdgeAttribute("rel")
	require.True(t, ok)
	assert.Equal(t, 30, s.Partition.Cardinality())

	hints := &model.Hints{Model: &model.ModelHints{EdgeAttributes: []model.AttributeHint{{Key: "rel"}}}}
	b, err = minivan.Build(relGraph(t, 300, 30), hints, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	s, ok = b.Model.EdgeAttribute("rel")
	require.True(t, ok, "edge hints exempt edge attributes")
	assert.Equal(t, 30, s.Partition.Cardinality())

	nodeHints := &model.Hints{Model: &model.ModelHints{NodeAttributes: []model.AttributeHint{{Key: "rel"}}}}
	b, err = minivan.Build(relGraph(t, 300, 30), nodeHints, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	_, ok = b.Model.EdgeAttribute("rel")
	assert.False(t, ok, "a node hint does not cover the edge side")
}

func TestBuild_DefaultColorPriority(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.MergeVertexAttributes(nodeID(i), map[string]interface{}{
			"a":     i,
			"beta":  fmt.Sprintf("b%d", i%2),
			"grp":   fmt.Sprintf("g%d", i%2),
			"score": float64(i) / 2,
		}))
	}

	cases := []struct {
		name  string
		hints []model.AttributeHint
		want  string
	}{
		{
			name: "partition over ranking-color",
			hints: []model.AttributeHint{
				{Key: "a", Kind: ptr(model.KindRankingColor)},
				{Key: "grp", Kind: ptr(model.KindPartition)},
			},
			want: "grp",
		},
		{
			name: "first partition wins a tie",
			hints: []model.AttributeHint{
				{Key: "grp", Kind: ptr(model.KindPartition)},
				{Key: "beta", Kind: ptr(model.KindPartition)},
			},
			want: "beta",
		},
		{
			name: "first ranking-color wins a tie",
			hints: []model.AttributeHint{
				{Key: "score", Kind: ptr(model.KindRankingColor)},
				{Key: "a", Kind: ptr(model.KindRankingColor)},
			},
			want: "a",
		},
		{
			name:  "ranking-size never colors",
			hints: []model.AttributeHint{{Key: "score"}},
			want:  "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hints := &model.Hints{Model: &model.ModelHints{NodeAttributes: tc.hints}}
			b, err := minivan.Build(g, hints, minivan.WithPalette(stubPalette))
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Model.DefaultNodeColor)
		})
	}
}

func TestBuild_FlowCountsAttributedEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.MergeVertexAttributes("a", map[string]interface{}{"team": "red"}))
	require.NoError(t, g.MergeVertexAttributes("b", map[string]interface{}{"team": "red"}))
	require.NoError(t, g.MergeVertexAttributes("c", map[string]interface{}{"team": "blue"}))
	require.NoError(t, g.MergeVertexAttributes("d", map[string]interface{}{"team": nil}))
	require.NoError(t, g.AddVertex("e"))

	pairs := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"a", "a"}, {"a", "d"}, {"e", "c"}, {"d", "e"}}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	b, err := minivan.Build(g, nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	s, ok := b.Model.NodeAttribute("team")
	require.True(t, ok)
	assert.Equal(t, 4, s.Partition.Flow.Observed(), "only edges with both endpoints attributed")
	assert.Equal(t, 3, s.Count, "nil values are not counted")
	assert.InDelta(t, diagMinusOff(t, s), s.Partition.Modularity, eps)

	red, _ := s.Partition.Lookup("red")
	st, err := s.Partition.Flow.Stats(red)
	require.NoError(t, err)
	assert.Equal(t, 2, st.InternalEdges)
	assert.Equal(t, 1, st.OutboundEdges)
	assert.Equal(t, 1, st.InboundEdges)
	assert.Equal(t, 2, st.ExternalEdges)
}

func TestBuild_RelabelInvariance(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}, {5, 4}, {1, 5}}

	a, err := minivan.Build(groupGraph(t, 6, 3, edges), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	g := groupGraph(t, 6, 3, edges)
	rename := map[string]string{"g0": "zeta", "g1": "alpha", "g2": "mu"}
	for i := 0; i < 6; i++ {
		v, _ := g.NodeAttribute(nodeID(i), "group")
		require.NoError(t, g.SetVertexAttribute(nodeID(i), "group", rename[v.(string)]))
	}
	b, err := minivan.Build(g, nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	sa, _ := a.Model.NodeAttribute("group")
	sb, _ := b.Model.NodeAttribute("group")
	assert.InDelta(t, sa.Partition.Modularity, sb.Partition.Modularity, eps)
	assert.InDelta(t, diagMinusOff(t, sa), sa.Partition.Modularity, eps)

	// merging two groups changes which pairs are internal
	for i := 0; i < 6; i++ {
		if v, _ := g.NodeAttribute(nodeID(i), "group"); v == "mu" {
			require.NoError(t, g.SetVertexAttribute(nodeID(i), "group", "alpha"))
		}
	}
	c, err := minivan.Build(g, nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	sc, _ := c.Model.NodeAttribute("group")
	assert.NotEqual(t, sa.Partition.Modularity, sc.Partition.Modularity)
}

func TestBuild_DirectionalFlowOnUndirectedGraph(t *testing.T) {
	b, err := minivan.Build(basicGraph(t), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	cat, _ := b.Model.NodeAttribute("category")
	fruit, _ := cat.Partition.Lookup("fruit")
	veg, _ := cat.Partition.Lookup("vegetable")

	fv, err := cat.Partition.Flow.At(fruit, veg)
	require.NoError(t, err)
	vf, err := cat.Partition.Flow.At(veg, fruit)
	require.NoError(t, err)
	assert.Equal(t, 1, fv.Count)
	assert.Equal(t, 0, vf.Count)
}

func TestBuild_ZeroEdges(t *testing.T) {
	b, err := minivan.Build(groupGraph(t, 4, 2, nil), nil, minivan.WithPalette(stubPalette))
	require.NoError(t, err)

	s, ok := b.Model.NodeAttribute("group")
	require.True(t, ok)
	assert.Zero(t, s.Partition.Modularity)
	cell, err := s.Partition.Flow.At(0, 1)
	require.NoError(t, err)
	assert.Zero(t, cell.Expected)
	assert.Zero(t, cell.NormalizedDensity)
	assert.Empty(t, b.Model.EdgeAttributes)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"edgeAttributes":[]`)
}

func TestBuild_EmptyGraph(t *testing.T) {
	b, err := minivan.Build(core.NewGraph(), nil)
	require.NoError(t, err)
	assert.Empty(t, b.Model.NodeAttributes)
	assert.Empty(t, b.Model.DefaultNodeColor)
}

func TestBuild_Pruning(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.MergeVertexAttributes(nodeID(i), map[string]interface{}{"kind": "person", "tag": "x"}))
	}

	var drops []minivan.Drop
	hints := &model.Hints{Model: &model.ModelHints{NodeAttributes: []model.AttributeHint{{Key: "kind"}}}}

	b, err := minivan.Build(g, nil, minivan.WithOnDrop(func(d minivan.Drop) { drops = append(drops, d) }))
	require.NoError(t, err)
	assert.Empty(t, b.Model.NodeAttributes)
	require.Len(t, drops, 2)
	assert.Equal(t, minivan.DropSingleValue, drops[0].Reason)

	// a hinted single-value partition survives with the neutral color
	b, err = minivan.Build(g, hints)
	require.NoError(t, err)
	require.Equal(t, []string{"kind"}, keys(b.Model.NodeAttributes))
	assert.Equal(t, minivan.NodeFallbackColor, b.Model.NodeAttributes[0].Partition.Modalities[0].Color)
}

func TestBuild_ColorProportion(t *testing.T) {
	b, err := minivan.Build(basicGraph(t), nil,
		minivan.WithPalette(stubPalette),
		minivan.WithMinColorProportion(1),
	)
	require.NoError(t, err)

	cat, _ := b.Model.NodeAttribute("category")
	for _, m := range cat.Partition.Modalities {
		assert.Equal(t, minivan.NodeFallbackColor, m.Color)
	}

	g := core.NewGraph(core.WithDirected(true))
	for i, rel := range []string{"knows", "likes", "knows"} {
		_, err := g.AddEdge(nodeID(i), nodeID(i+1), core.WithEdgeAttributes(map[string]interface{}{"rel": rel}))
		require.NoError(t, err)
	}
	b, err = minivan.Build(g, nil, minivan.WithPalette(stubPalette), minivan.WithMinColorProportion(1))
	require.NoError(t, err)
	rel, ok := b.Model.EdgeAttribute("rel")
	require.True(t, ok)
	for _, m := range rel.Partition.Modalities {
		assert.Equal(t, minivan.EdgeFallbackColor, m.Color)
	}
	assert.Equal(t, "rel", b.Model.DefaultEdgeColor)
}

// fakeGraph lets tests break the export contract.
type fakeGraph struct {
	*core.Graph
	export *core.Serialized
}

func (f fakeGraph) Export() *core.Serialized { return f.export }

func TestBuild_InvalidGraph(t *testing.T) {
	_, err := minivan.Build(nil, nil)
	require.ErrorIs(t, err, minivan.ErrInvalidGraph)

	var typedNil *core.Graph
	_, err = minivan.Build(typedNil, nil)
	require.ErrorIs(t, err, minivan.ErrInvalidGraph)

	g := basicGraph(t)
	_, err = minivan.Build(fakeGraph{Graph: g}, nil)
	require.ErrorIs(t, err, minivan.ErrInvalidGraph)

	short := g.Export()
	short.Nodes = short.Nodes[:2]
	_, err = minivan.Build(fakeGraph{Graph: g, export: short}, nil)
	require.ErrorIs(t, err, minivan.ErrInvalidGraph)

	short = g.Export()
	short.Edges = nil
	_, err = minivan.Build(fakeGraph{Graph: g, export: short}, nil)
	require.ErrorIs(t, err, minivan.ErrInvalidGraph)
}

func TestBuild_Metadata(t *testing.T) {
	g := basicGraph(t)
	g.SetAttribute("url", "http://supergraph.sv")
	g.SetAttribute("authors", []interface{}{map[string]interface{}{"name": "Ada"}})

	b, err := minivan.Build(g, &model.Hints{Description: ptr("fruit and vegetables")}, minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	assert.Equal(t, "Basic Graph", b.Title)
	assert.Equal(t, "fruit and vegetables", b.Description)
	assert.Equal(t, "http://supergraph.sv", b.URL)
	assert.Equal(t, []model.Author{{Name: "Ada"}}, b.Authors)
}

// TestBuild_Idempotent rebuilds from a bundle's JSON: the graph is
// re-imported and the bundle itself is used as hints.
func TestBuild_Idempotent(t *testing.T) {
	first, err := minivan.Build(basicGraph(t), nil)
	require.NoError(t, err)
	raw, err := json.Marshal(first)
	require.NoError(t, err)

	var doc struct {
		Graph *core.Serialized `json:"graph"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	var hints model.Hints
	require.NoError(t, json.Unmarshal(raw, &hints))

	g, err := core.FromSerialized(doc.Graph)
	require.NoError(t, err)
	second, err := minivan.Build(g, &hints)
	require.NoError(t, err)

	raw2, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(raw2))
}
