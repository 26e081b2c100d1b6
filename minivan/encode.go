package minivan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minivan/model"
)

// ErrPalette wraps failures of the palette generator.
var ErrPalette = errors.New("minivan: palette generation failed")

// paint assigns a color to every modality of every surviving partition of s.
//
// A hinted modality color always wins. Otherwise, when cardinality/total
// reaches MinColorProportion, modalities take palette colors in creation
// order; below it they all take fallback.
func (a *aggregator) paint(s *side, fallback string) error {
	for _, spec := range s.specs {
		if spec.Partition == nil || spec.Partition.Cardinality() == 0 {
			continue
		}
		hint, _ := s.builder.Hint(spec.Key)
		card := spec.Partition.Cardinality()
		colorful := float64(card)/float64(s.total) >= a.opts.MinColorProportion

		var colors []string
		if colorful {
			var err error
			if colors, err = a.colors(spec.Key, card); err != nil {
				return err
			}
		}

		next := 0
		for _, m := range spec.Partition.Modalities {
			if c, ok := hint.ModalityColor(m.Value); ok {
				m.Color = c
				continue
			}
			if !colorful {
				m.Color = fallback
				continue
			}
			m.Color = colors[next]
			next++
		}
	}

	return nil
}

// colors returns n palette colors seeded by key. A single modality gets the
// neutral node color.
func (a *aggregator) colors(key string, n int) ([]string, error) {
	if n == 1 {
		return []string{NodeFallbackColor}, nil
	}
	colors, err := a.opts.Palette.Generate(n, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPalette, key, err)
	}
	if len(colors) < n {
		return nil, fmt.Errorf("%w: %q: got %d colors, want %d", ErrPalette, key, len(colors), n)
	}

	return colors, nil
}

// Default color priority per kind; kinds absent from the table never become
// the default color.
var colorPriority = map[model.Kind]int{
	model.KindPartition:    2,
	model.KindRankingColor: 1,
}

// suggest picks the default size attribute (first ranking-size) and the
// default color attribute (highest priority, first encountered on ties).
func suggest(specs []*model.AttributeSpec) (size, color string) {
	best := 0
	for _, s := range specs {
		if size == "" && s.Kind == model.KindRankingSize {
			size = s.Key
		}
		if p := colorPriority[s.Kind]; p > best {
			best, color = p, s.Key
		}
	}

	return size, color
}

// defaults fills the default encodings of m; explicit hints win.
func defaults(m *Model, hints *model.Hints) {
	m.DefaultNodeSize, m.DefaultNodeColor = suggest(m.NodeAttributes)
	m.DefaultEdgeSize, m.DefaultEdgeColor = suggest(m.EdgeAttributes)
	if hints == nil || hints.Model == nil {
		return
	}

	h := hints.Model
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&m.DefaultNodeSize, h.DefaultNodeSize)
	override(&m.DefaultEdgeSize, h.DefaultEdgeSize)
	override(&m.DefaultNodeColor, h.DefaultNodeColor)
	override(&m.DefaultEdgeColor, h.DefaultEdgeColor)
}
