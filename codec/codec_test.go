package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minivan/codec"
	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/minivan"
	"github.com/katalvlaran/minivan/model"
)

func basicBundle(t *testing.T) *minivan.Bundle {
	t.Helper()
	g := core.NewGraph(core.WithGraphAttributes(map[string]interface{}{"title": "Basic Graph"}))
	require.NoError(t, g.MergeVertexAttributes("A", map[string]interface{}{"nb": 14, "category": "fruit"}))
	require.NoError(t, g.MergeVertexAttributes("B", map[string]interface{}{"nb": 67, "category": "vegetable"}))
	require.NoError(t, g.MergeVertexAttributes("C", map[string]interface{}{"nb": 542, "category": "fruit"}))
	_, err := g.AddEdge("A", "B", core.WithEdgeAttributes(map[string]interface{}{"weight": 0.5}))
	require.NoError(t, err)

	b, err := minivan.Build(g, nil)
	require.NoError(t, err)

	return b
}

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		f    codec.Format
		c    codec.Compression
	}{
		{"graph.json", codec.JSON, codec.None},
		{"hints.YML", codec.YAML, codec.None},
		{"hints.toml", codec.TOML, codec.None},
		{"out/bundle.msgpack.zst", codec.Msgpack, codec.Zstd},
		{"bundle.json.zst", codec.JSON, codec.Zstd},
	}
	for _, c := range cases {
		f, comp, err := codec.Detect(c.path)
		require.NoError(t, err, c.path)
		assert.Equal(t, c.f, f, c.path)
		assert.Equal(t, c.c, comp, c.path)
	}

	_, _, err := codec.Detect("graph.gexf")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
	_, _, err = codec.Detect("graph")
	require.ErrorIs(t, err, codec.ErrUnknownFormat)
	_, err = codec.ParseCompression("brotli")
	require.ErrorIs(t, err, codec.ErrUnknownCompression)

	assert.Equal(t, ".msgpack.zst", codec.Extension(codec.Msgpack, codec.Zstd))
	assert.Equal(t, ".json", codec.Extension(codec.JSON, codec.None))
}

func TestBundle_RoundTripAllFormats(t *testing.T) {
	b := basicBundle(t)

	var ref bytes.Buffer
	require.NoError(t, codec.EncodeBundle(&ref, b, codec.JSON, codec.None))
	want, err := codec.DecodeSummary(bytes.NewReader(ref.Bytes()), codec.JSON, codec.None)
	require.NoError(t, err)
	assert.Equal(t, minivan.BundleVersion, want.BundleVersion)
	assert.Equal(t, 3, want.Order())
	assert.Equal(t, 1, want.Size())
	require.Len(t, want.Model.NodeAttributes, 2)
	assert.Equal(t, "category", want.Model.NodeAttributes[0].Key)
	require.NotNil(t, want.Model.NodeAttributes[0].Stats)
	assert.InDelta(t, -0.125, want.Model.NodeAttributes[0].Stats.Modularity, 1e-12)

	for _, f := range []codec.Format{codec.JSON, codec.Msgpack, codec.YAML} {
		for _, c := range []codec.Compression{codec.None, codec.Zstd} {
			var buf bytes.Buffer
			require.NoError(t, codec.EncodeBundle(&buf, b, f, c), "%s/%s", f, c)
			got, err := codec.DecodeSummary(&buf, f, c)
			require.NoError(t, err, "%s/%s", f, c)
			assert.Equal(t, want, got, "%s/%s", f, c)
		}
	}

	err = codec.EncodeBundle(&bytes.Buffer{}, b, codec.TOML, codec.None)
	require.ErrorIs(t, err, codec.ErrUnsupported)
}

func TestBundle_AsHintsAndGraph(t *testing.T) {
	b := basicBundle(t)
	var buf bytes.Buffer
	require.NoError(t, codec.EncodeBundle(&buf, b, codec.Msgpack, codec.Zstd))
	data := buf.Bytes()

	hints, err := codec.DecodeHints(bytes.NewReader(data), codec.Msgpack, codec.Zstd)
	require.NoError(t, err)
	require.NotNil(t, hints.Title)
	assert.Equal(t, "Basic Graph", *hints.Title)
	assert.Equal(t, []string{"category", "nb"}, model.Keys(hints.NodeHints()))

	snap, err := codec.DecodeGraph(bytes.NewReader(data), codec.Msgpack, codec.Zstd)
	require.NoError(t, err)
	g, err := core.FromSerialized(snap)
	require.NoError(t, err)

	again, err := minivan.Build(g, hints)
	require.NoError(t, err)
	cat, ok := again.Model.NodeAttribute("category")
	require.True(t, ok)
	orig, _ := b.Model.NodeAttribute("category")
	assert.InDelta(t, orig.Partition.Modularity, cat.Partition.Modularity, 1e-12)
	assert.Equal(t, orig.Partition.Modalities[0].Color, cat.Partition.Modalities[0].Color)
}

func TestDecodeHints_YAMLAndTOML(t *testing.T) {
	yml := `
title: Groceries
model:
  defaultNodeSize: nb
  nodeAttributes:
    - key: centrality
      integer: true
      areaScaling:
        interpolation: pow-2
    - key: category
      type: partition
      modalities:
        vegetable:
          color: "#00FF00"
`
	tml := `
title = "Groceries"

[model]
defaultNodeSize = "nb"

[[model.nodeAttributes]]
key = "centrality"
integer = true
[model.nodeAttributes.areaScaling]
interpolation = "pow-2"

[[model.nodeAttributes]]
key = "category"
type = "partition"
[model.nodeAttributes.modalities.vegetable]
color = "#00FF00"
`
	for f, doc := range map[codec.Format]string{codec.YAML: yml, codec.TOML: tml} {
		h, err := codec.DecodeHints(strings.NewReader(doc), f, codec.None)
		require.NoError(t, err, f)

		require.NotNil(t, h.Title, f)
		assert.Equal(t, "Groceries", *h.Title, f)
		require.NotNil(t, h.Model, f)
		assert.Equal(t, "nb", h.Model.DefaultNodeSize, f)
		require.Len(t, h.Model.NodeAttributes, 2, f)

		c := h.Model.NodeAttributes[0]
		require.NotNil(t, c.Integer, f)
		assert.True(t, *c.Integer, f)
		require.NotNil(t, c.AreaScaling, f)
		assert.Equal(t, "pow-2", *c.AreaScaling.Interpolation, f)

		cat := h.Model.NodeAttributes[1]
		require.NotNil(t, cat.Kind, f)
		assert.Equal(t, model.KindPartition, *cat.Kind, f)
		color, ok := cat.ModalityColor("vegetable")
		assert.True(t, ok, f)
		assert.Equal(t, "#00FF00", color, f)
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := codec.DecodeHints(strings.NewReader(`{"model":{"nodeAttributes":[{"key":"x","type":"blob"}]}}`), codec.JSON, codec.None)
	require.ErrorIs(t, err, codec.ErrDecode)
	require.ErrorIs(t, err, model.ErrUnknownKind)

	_, err = codec.DecodeHints(strings.NewReader("title: [unclosed"), codec.YAML, codec.None)
	require.ErrorIs(t, err, codec.ErrDecode)

	_, err = codec.DecodeHints(strings.NewReader("not zstd"), codec.JSON, codec.Zstd)
	require.ErrorIs(t, err, codec.ErrDecode)
}

func TestDecodeGraph_BareSnapshot(t *testing.T) {
	doc := `
options:
  type: directed
nodes:
  - key: a
    attributes: {team: red}
  - key: b
    attributes: {team: blue}
edges:
  - source: a
    target: b
`
	snap, err := codec.DecodeGraph(strings.NewReader(doc), codec.YAML, codec.None)
	require.NoError(t, err)
	g, err := core.FromSerialized(snap)
	require.NoError(t, err)
	assert.Equal(t, core.TypeDirected, g.Type())
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())
}

func TestEncodeGraph_RoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.MergeVertexAttributes("a", map[string]interface{}{"team": "red", "score": 3}))
	require.NoError(t, g.MergeVertexAttributes("b", map[string]interface{}{"team": "blue", "score": 4.5}))
	_, err := g.AddEdge("a", "b", core.WithEdgeAttributes(map[string]interface{}{"weight": 2}))
	require.NoError(t, err)

	for _, f := range []codec.Format{codec.JSON, codec.Msgpack, codec.YAML} {
		var buf bytes.Buffer
		require.NoError(t, codec.EncodeGraph(&buf, g.Export(), f, codec.Zstd), f)
		snap, err := codec.DecodeGraph(&buf, f, codec.Zstd)
		require.NoError(t, err, f)
		back, err := core.FromSerialized(snap)
		require.NoError(t, err, f)

		assert.Equal(t, core.TypeDirected, back.Type(), f)
		assert.Equal(t, 2, back.Order(), f)
		assert.Equal(t, 1, back.Size(), f)
		team, ok := back.NodeAttribute("b", "team")
		assert.True(t, ok, f)
		assert.Equal(t, "blue", team, f)
	}

	require.ErrorIs(t, codec.EncodeGraph(&bytes.Buffer{}, g.Export(), codec.TOML, codec.None), codec.ErrUnsupported)
}
