// File: options.go
// Role: Functional options for Build.
// Determinism:
//   - Options never change iteration order, only thresholds and collaborators.
// Concurrency:
//   - Options are copied per Build call; a shared palette.Generator must be
//     safe for concurrent use (palette.HCL and palette.Cached are).

package minivan

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/minivan/infer"
	"github.com/katalvlaran/minivan/model"
	"github.com/katalvlaran/minivan/palette"
)

// Heuristic defaults.
const (
	// DefaultMaxPartitionCardinality is the cardinality ceiling of the bail-out.
	DefaultMaxPartitionCardinality = 30

	// DefaultMaxCardinalityRatio is the share of nodes (or edges) a partition
	// must also reach before it is dropped.
	DefaultMaxCardinalityRatio = 0.1

	// DefaultMinColorProportion is the cardinality/total ratio below which
	// modalities share a neutral color.
	DefaultMinColorProportion = 0.01

	// NodeFallbackColor is the neutral node color.
	NodeFallbackColor = "#666"

	// EdgeFallbackColor is the neutral edge color.
	EdgeFallbackColor = "#AAA"
)

// DropReason explains why an attribute left the model.
type DropReason string

const (
	// DropHighCardinality marks an identifier-like partition.
	DropHighCardinality DropReason = "high-cardinality"

	// DropSingleValue marks a partition with fewer than two values.
	DropSingleValue DropReason = "single-value"
)

// Drop describes one attribute removed by a heuristic.
type Drop struct {
	Key         string
	Side        model.Side
	Reason      DropReason
	Cardinality int
}

// Options configures Build.
//
// SampleSize              – records inspected per side for type inference.
// MaxPartitionCardinality – bail-out ceiling.
// MaxCardinalityRatio     – bail-out ratio against order (nodes) or size (edges).
// MinColorProportion      – minimum cardinality/total ratio for palette colors.
// Palette                 – modality color source.
// Logger                  – debug log of heuristic decisions.
// OnDrop                  – called for every dropped attribute.
type Options struct {
	SampleSize              int
	MaxPartitionCardinality int
	MaxCardinalityRatio     float64
	MinColorProportion      float64
	Palette                 palette.Generator
	Logger                  *slog.Logger
	OnDrop                  func(Drop)
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns the options used when Build gets none.
// The default palette is an uncached palette.HCL with default settings.
func DefaultOptions() Options {
	hcl, _ := palette.NewHCL(palette.DefaultSettings())

	return Options{
		SampleSize:              infer.DefaultSampleSize,
		MaxPartitionCardinality: DefaultMaxPartitionCardinality,
		MaxCardinalityRatio:     DefaultMaxCardinalityRatio,
		MinColorProportion:      DefaultMinColorProportion,
		Palette:                 hcl,
		Logger:                  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSampleSize sets the inference sample size.
// Panics on n <= 0.
func WithSampleSize(n int) Option {
	if n <= 0 {
		panic("minivan: WithSampleSize: n must be positive")
	}

	return func(o *Options) { o.SampleSize = n }
}

// WithMaxPartitionCardinality sets the bail-out ceiling.
// Panics on n < 1.
func WithMaxPartitionCardinality(n int) Option {
	if n < 1 {
		panic("minivan: WithMaxPartitionCardinality: n must be >= 1")
	}

	return func(o *Options) { o.MaxPartitionCardinality = n }
}

// WithMaxCardinalityRatio sets the bail-out ratio.
// Panics when r is outside [0, 1].
func WithMaxCardinalityRatio(r float64) Option {
	if r < 0 || r > 1 {
		panic("minivan: WithMaxCardinalityRatio: ratio must be in [0,1]")
	}

	return func(o *Options) { o.MaxCardinalityRatio = r }
}

// WithMinColorProportion sets the palette coloring threshold.
// Panics when p is outside [0, 1].
func WithMinColorProportion(p float64) Option {
	if p < 0 || p > 1 {
		panic("minivan: WithMinColorProportion: proportion must be in [0,1]")
	}

	return func(o *Options) { o.MinColorProportion = p }
}

// WithPalette replaces the palette generator.
// Panics on nil.
func WithPalette(g palette.Generator) Option {
	if g == nil {
		panic("minivan: WithPalette: generator is nil")
	}

	return func(o *Options) { o.Palette = g }
}

// WithPaletteSettings uses an HCL generator over a custom color window.
// Panics when s is invalid.
func WithPaletteSettings(s palette.Settings) Option {
	hcl, err := palette.NewHCL(s)
	if err != nil {
		panic("minivan: WithPaletteSettings: " + err.Error())
	}

	return func(o *Options) { o.Palette = hcl }
}

// WithLogger sets the logger. A nil logger keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDrop registers a hook called for every dropped attribute.
func WithOnDrop(fn func(Drop)) Option {
	return func(o *Options) { o.OnDrop = fn }
}
