package model

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/minivan/flow"
)

type header struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
	Type  Kind   `json:"type"`
}

type statsJSON struct {
	Modularity float64 `json:"modularity"`
}

type partitionJSON struct {
	header
	Cardinality int                    `json:"cardinality"`
	Modalities  map[string]interface{} `json:"modalities"`
	Stats       *statsJSON             `json:"stats,omitempty"`
}

type nodeModalityJSON struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
	flow.Stats
	Flow map[string]flow.Cell `json:"flow"`
}

type edgeModalityJSON struct {
	Value string `json:"value"`
	Edges int    `json:"edges"`
	Color string `json:"color,omitempty"`
}

type sizeJSON struct {
	header
	Min         *float64    `json:"min"`
	Max         *float64    `json:"max"`
	Integer     bool        `json:"integer"`
	AreaScaling AreaScaling `json:"areaScaling"`
}

type colorJSON struct {
	header
	Min           *float64 `json:"min"`
	Max           *float64 `json:"max"`
	Integer       bool     `json:"integer"`
	ColorScale    string   `json:"colorScale"`
	InvertScale   bool     `json:"invertScale"`
	TruncateScale bool     `json:"truncateScale"`
}

// finite returns nil for ±Inf and NaN so the JSON carries null.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}

	return &f
}

// MarshalJSON writes the bundle representation of the attribute.
func (s *AttributeSpec) MarshalJSON() ([]byte, error) {
	h := header{Key: s.Key, Label: s.Label, Slug: s.Slug, Count: s.Count, Type: s.Kind}

	switch {
	case s.Size != nil:
		return json.Marshal(sizeJSON{
			header: h, Min: finite(s.Size.Min), Max: finite(s.Size.Max),
			Integer: s.Size.Integer, AreaScaling: s.Size.AreaScaling,
		})
	case s.Color != nil:
		return json.Marshal(colorJSON{
			header: h, Min: finite(s.Color.Min), Max: finite(s.Color.Max),
			Integer: s.Color.Integer, ColorScale: s.Color.ColorScale,
			InvertScale: s.Color.InvertScale, TruncateScale: s.Color.TruncateScale,
		})
	}

	p := s.Partition
	out := partitionJSON{
		header:      h,
		Cardinality: p.Cardinality(),
		Modalities:  make(map[string]interface{}, p.Cardinality()),
	}
	if s.Side == EdgeSide {
		for _, m := range p.Modalities {
			out.Modalities[m.Value] = edgeModalityJSON{Value: m.Value, Edges: m.Count, Color: m.Color}
		}

		return json.Marshal(out)
	}

	q := p.Modularity
	if p.Flow != nil && p.Flow.Finalized() {
		q = p.Flow.Modularity()
	}
	out.Stats = &statsJSON{Modularity: q}
	for _, m := range p.Modalities {
		mj := nodeModalityJSON{
			Value: m.Value, Count: m.Count, Color: m.Color,
			Flow: make(map[string]flow.Cell, p.Cardinality()),
		}
		if p.Flow != nil && p.Flow.Len() == p.Cardinality() {
			mj.Stats, _ = p.Flow.Stats(m.ID)
			row, _ := p.Flow.Row(m.ID)
			for _, target := range p.Modalities {
				mj.Flow[target.Value] = row[target.ID]
			}
		}
		out.Modalities[m.Value] = mj
	}

	return json.Marshal(out)
}
