package model

import (
	"math"

	"github.com/katalvlaran/minivan/flow"
)

// Encoding defaults.
const (
	DefaultAreaMin       = 10
	DefaultAreaMax       = 100
	DefaultInterpolation = "linear"
	DefaultColorScale    = "interpolateGreys"
	DefaultInvertScale   = false
	DefaultTruncateScale = true
)

// AreaScaling maps a ranking onto a size range.
type AreaScaling struct {
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Interpolation string  `json:"interpolation"`
}

// DefaultAreaScaling returns {10, 100, "linear"}.
func DefaultAreaScaling() AreaScaling {
	return AreaScaling{Min: DefaultAreaMin, Max: DefaultAreaMax, Interpolation: DefaultInterpolation}
}

// AttributeSpec is the derived model of one attribute key.
// Exactly one of Partition, Size and Color is non-nil, matching Kind.
type AttributeSpec struct {
	Key   string
	Label string
	Slug  string
	Kind  Kind
	Side  Side
	Count int

	// Hinted is true when the user supplied a hint for Key.
	Hinted bool

	Partition *Partition
	Size      *SizeRanking
	Color     *ColorRanking
}

// Modality is one distinct value of a partition. ID is its index in
// Partition.Modalities and its row/column in the flow table.
type Modality struct {
	ID    int
	Value string
	Count int
	Color string
}

// Partition is the payload of a partition attribute.
type Partition struct {
	Modalities []*Modality
	index      map[string]int

	// Flow is allocated after the node pass for node-side partitions only.
	// Once finalized, its modularity takes precedence over Modularity.
	Flow       *flow.Table
	Modularity float64
}

// Cardinality returns the number of distinct values seen.
func (p *Partition) Cardinality() int { return len(p.Modalities) }

// Lookup returns the modality id of value.
func (p *Partition) Lookup(value string) (int, bool) {
	id, ok := p.index[value]
	return id, ok
}

// Add counts one occurrence of value and reports whether it was new.
func (p *Partition) Add(value string) bool {
	if id, ok := p.index[value]; ok {
		p.Modalities[id].Count++
		return false
	}
	id := len(p.Modalities)
	p.Modalities = append(p.Modalities, &Modality{ID: id, Value: value, Count: 1})
	p.index[value] = id

	return true
}

// Range tracks the observed extent of a ranking attribute.
type Range struct {
	Min     float64
	Max     float64
	Integer bool
}

// Observed reports whether at least one numeric value moved the range.
func (r *Range) Observed() bool { return !math.IsInf(r.Min, 1) }

func (r *Range) add(v float64) {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

// SizeRanking is the payload of a ranking-size attribute.
type SizeRanking struct {
	Range
	AreaScaling AreaScaling
}

// ColorRanking is the payload of a ranking-color attribute.
type ColorRanking struct {
	Range
	ColorScale    string
	InvertScale   bool
	TruncateScale bool
}

// NewPartitionSpec returns an empty partition spec.
func NewPartitionSpec(key string, side Side) *AttributeSpec {
	return &AttributeSpec{
		Key: key, Label: key, Kind: KindPartition, Side: side,
		Partition: &Partition{index: make(map[string]int)},
	}
}

// NewSizeSpec returns an empty ranking-size spec.
func NewSizeSpec(key string, side Side, integer bool) *AttributeSpec {
	return &AttributeSpec{
		Key: key, Label: key, Kind: KindRankingSize, Side: side,
		Size: &SizeRanking{Range: emptyRange(integer), AreaScaling: DefaultAreaScaling()},
	}
}

// NewColorSpec returns an empty ranking-color spec.
func NewColorSpec(key string, side Side, integer bool) *AttributeSpec {
	return &AttributeSpec{
		Key: key, Label: key, Kind: KindRankingColor, Side: side,
		Color: &ColorRanking{
			Range:         emptyRange(integer),
			ColorScale:    DefaultColorScale,
			InvertScale:   DefaultInvertScale,
			TruncateScale: DefaultTruncateScale,
		},
	}
}

func emptyRange(integer bool) Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1), Integer: integer}
}

// Ranging returns the range of a ranking spec, or nil for partitions.
func (s *AttributeSpec) Ranging() *Range {
	switch {
	case s.Size != nil:
		return &s.Size.Range
	case s.Color != nil:
		return &s.Color.Range
	}

	return nil
}

// Observe counts one non-nil value.
// For partitions it returns true when the value created a new modality.
// Ranking values that are not numbers are counted but leave the range alone.
func (s *AttributeSpec) Observe(v interface{}) bool {
	s.Count++
	if s.Partition != nil {
		return s.Partition.Add(PartitionValue(v))
	}
	r := s.Ranging()
	if f, ok := RankingValue(v, r.Integer); ok {
		r.add(f)
	}

	return false
}
