package minivan_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minivan/minivan"
	"github.com/katalvlaran/minivan/palette"
)

func TestOptions_Defaults(t *testing.T) {
	o := minivan.DefaultOptions()
	assert.Equal(t, 50, o.SampleSize)
	assert.Equal(t, 30, o.MaxPartitionCardinality)
	assert.Equal(t, 0.1, o.MaxCardinalityRatio)
	assert.Equal(t, 0.01, o.MinColorProportion)
	assert.NotNil(t, o.Palette)
	assert.NotNil(t, o.Logger)
	assert.Nil(t, o.OnDrop)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { minivan.WithSampleSize(0) })
	assert.Panics(t, func() { minivan.WithMaxPartitionCardinality(0) })
	assert.Panics(t, func() { minivan.WithMaxCardinalityRatio(1.5) })
	assert.Panics(t, func() { minivan.WithMinColorProportion(-0.1) })
	assert.Panics(t, func() { minivan.WithPalette(nil) })

	bad := palette.DefaultSettings()
	bad.LMin = 120
	assert.Panics(t, func() { minivan.WithPaletteSettings(bad) })

	assert.NotPanics(t, func() { minivan.WithPaletteSettings(palette.DefaultSettings()) })
}

func TestOptions_ThresholdsAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// 10 nodes, 5 groups: dropped once the ceiling is lowered to 5
	b, err := minivan.Build(groupGraph(t, 10, 5, nil), nil,
		minivan.WithMaxPartitionCardinality(5),
		minivan.WithMaxCardinalityRatio(0.5),
		minivan.WithLogger(logger),
		minivan.WithPalette(stubPalette),
	)
	require.NoError(t, err)
	assert.Empty(t, b.Model.NodeAttributes)
	assert.Contains(t, buf.String(), "attribute dropped")
	assert.Contains(t, buf.String(), "reason=high-cardinality")
	assert.Contains(t, buf.String(), "bundle built")
}

func TestOptions_SampleSize(t *testing.T) {
	g := groupGraph(t, 3, 3, nil)
	require.NoError(t, g.SetVertexAttribute(nodeID(2), "late", "x"))

	b, err := minivan.Build(g, nil, minivan.WithSampleSize(2), minivan.WithPalette(stubPalette))
	require.NoError(t, err)
	_, ok := b.Model.NodeAttribute("late")
	assert.False(t, ok, "keys outside the sample are not modeled")
	_, ok = b.Model.NodeAttribute("group")
	assert.True(t, ok)
}
