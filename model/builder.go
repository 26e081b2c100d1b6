// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/minivan/infer"
	"github.com/katalvlaran/minivan/slug"
)

// Builder turns inferred attributes into specs for one side of the graph.
// Each side needs its own Builder so slug sets stay independent.
type Builder struct {
	side  Side
	slugs *slug.Allocator
	hints map[string]*AttributeHint
}

// NewBuilder indexes hints by key and reserves every hinted slug up front,
// so derived slugs never take one. When a key is hinted twice the last hint
// wins.
func NewBuilder(side Side, hints []AttributeHint) *Builder {
	idx := make(map[string]*AttributeHint, len(hints))
	slugs := slug.NewAllocator()
	for i := range hints {
		idx[hints[i].Key] = &hints[i]
		if hints[i].Slug != nil {
			slugs.Reserve(*hints[i].Slug)
		}
	}

	return &Builder{side: side, slugs: slugs, hints: idx}
}

// Hint returns the hint for key, if any.
func (b *Builder) Hint(key string) (*AttributeHint, bool) {
	h, ok := b.hints[key]
	return h, ok
}

// Build creates the initial spec for a.
//
// Stage 1 (Kind): hinted kind, else KindFor(a.Kind).
// Stage 2 (Slug): hinted slug as is; else derived and deduplicated.
// Stage 3 (Payload): defaults, then hint fields merged one by one.
// Complexity: O(len(key)).
func (b *Builder) Build(a infer.Attribute) *AttributeSpec {
	h, hinted := b.hints[a.Key]

	kind := KindFor(a.Kind)
	if hinted && h.Kind != nil {
		kind = *h.Kind
	}

	integer := a.Kind == infer.Integer
	if hinted && h.Integer != nil {
		integer = *h.Integer
	}

	var s *AttributeSpec
	switch kind {
	case KindRankingSize:
		s = NewSizeSpec(a.Key, b.side, integer)
	case KindRankingColor:
		s = NewColorSpec(a.Key, b.side, integer)
	default:
		s = NewPartitionSpec(a.Key, b.side)
	}

	if hinted && h.Slug != nil {
		s.Slug = *h.Slug
	} else {
		s.Slug = b.slugs.Allocate(a.Key)
	}

	if !hinted {
		return s
	}
	s.Hinted = true
	if h.Label != nil {
		s.Label = *h.Label
	}
	if s.Size != nil && h.AreaScaling != nil {
		if h.AreaScaling.Min != nil {
			s.Size.AreaScaling.Min = *h.AreaScaling.Min
		}
		if h.AreaScaling.Max != nil {
			s.Size.AreaScaling.Max = *h.AreaScaling.Max
		}
		if h.AreaScaling.Interpolation != nil {
			s.Size.AreaScaling.Interpolation = *h.AreaScaling.Interpolation
		}
	}
	if s.Color != nil {
		if h.ColorScale != nil {
			s.Color.ColorScale = *h.ColorScale
		}
		if h.InvertScale != nil {
			s.Color.InvertScale = *h.InvertScale
		}
		if h.TruncateScale != nil {
			s.Color.TruncateScale = *h.TruncateScale
		}
	}

	return s
}
