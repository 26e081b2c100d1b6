// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minivan/matrix"
)

// Sentinel errors for table construction and access.
var (
	// ErrInvalidSize indicates a negative modality count.
	ErrInvalidSize = errors.New("flow: modality count must be >= 0")

	// ErrIndexOutOfBounds indicates a modality id outside [0, n).
	ErrIndexOutOfBounds = matrix.ErrOutOfRange

	// ErrFinalized indicates an Observe after Finalize.
	ErrFinalized = errors.New("flow: table already finalized")

	// ErrNegativeEdgeCount indicates Finalize was given m < 0.
	ErrNegativeEdgeCount = errors.New("flow: edge count must be >= 0")
)

// Cell is the ordered pair (source modality, target modality).
type Cell struct {
	Count             int     `json:"count"`
	Expected          float64 `json:"expected"`
	NormalizedDensity float64 `json:"normalizedDensity"`
}

// Stats holds the per-modality edge counters and density accumulators.
type Stats struct {
	InternalEdges int `json:"internalEdges"`
	InboundEdges  int `json:"inboundEdges"`
	OutboundEdges int `json:"outboundEdges"`
	ExternalEdges int `json:"externalEdges"`

	InternalNormalizedDensity float64 `json:"internalNormalizedDensity"`
	InboundNormalizedDensity  float64 `json:"inboundNormalizedDensity"`
	OutboundNormalizedDensity float64 `json:"outboundNormalizedDensity"`
	ExternalNormalizedDensity float64 `json:"externalNormalizedDensity"`
}

// Table is an n×n flow matrix plus per-modality Stats. Counts, expected
// values and normalized densities each live in their own n×n matrix.Dense.
type Table struct {
	count      *matrix.Dense
	expected   *matrix.Dense
	density    *matrix.Dense
	stats      []Stats // len == n
	observed   int
	modularity float64
	finalized  bool
}

// NewTable allocates a zeroed n×n table. n == 0 is legal.
// Complexity: O(n²) time and memory.
func NewTable(n int) (*Table, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	t := &Table{stats: make([]Stats, n)}
	for _, dst := range []**matrix.Dense{&t.count, &t.expected, &t.density} {
		m, err := matrix.NewSquare(n)
		if err != nil {
			return nil, fmt.Errorf("flow: %w", err)
		}
		*dst = m
	}

	return t, nil
}

// Len returns the number of modalities.
func (t *Table) Len() int { return t.count.Rows() }

// Observe records one edge from modality src to modality dst.
// Equal ids count as internal; otherwise src gains an outbound and an
// external edge and dst an inbound and an external edge.
// Complexity: O(1).
func (t *Table) Observe(src, dst int) error {
	if t.finalized {
		return fmt.Errorf("flow: observe(%d,%d): %w", src, dst, ErrFinalized)
	}
	if _, err := t.count.Add(src, dst, 1); err != nil {
		return fmt.Errorf("flow: observe: %w", err)
	}

	if src == dst {
		t.stats[src].InternalEdges++
	} else {
		t.stats[src].OutboundEdges++
		t.stats[src].ExternalEdges++
		t.stats[dst].InboundEdges++
		t.stats[dst].ExternalEdges++
	}
	t.observed++

	return nil
}

// Finalize computes expected counts, normalized densities, the per-modality
// density accumulators and the modularity, given m total graph edges.
// Calling Finalize again recomputes from the observed counts.
//
// Stage 1 (Reset): zero previous expected values and densities.
// Stage 2 (Cells): expected and nd for every ordered pair, row-major.
// Stage 3 (Accumulate): diagonal adds to modularity, off-diagonal subtracts.
// Complexity: O(n²).
func (t *Table) Finalize(m int) (float64, error) {
	if m < 0 {
		return 0, ErrNegativeEdgeCount
	}
	t.finalized = true
	t.modularity = 0
	t.expected.Reset()
	t.density.Reset()
	for i := range t.stats {
		s := &t.stats[i]
		s.InternalNormalizedDensity = 0
		s.InboundNormalizedDensity = 0
		s.OutboundNormalizedDensity = 0
		s.ExternalNormalizedDensity = 0
	}
	if m == 0 {
		return 0, nil
	}

	twoM := 2 * float64(m)
	fourM := 4 * float64(m)
	var err error
	t.count.Do(func(a, b int, count float64) bool {
		sa, sb := &t.stats[a], &t.stats[b]
		exp := float64(sa.InternalEdges+sa.OutboundEdges) * float64(sb.InternalEdges+sb.InboundEdges) / twoM
		nd := (count - exp) / fourM
		if err = t.expected.Set(a, b, exp); err != nil {
			return false
		}
		if err = t.density.Set(a, b, nd); err != nil {
			return false
		}

		if a == b {
			sa.InternalNormalizedDensity = nd
			t.modularity += nd
			return true
		}
		sa.OutboundNormalizedDensity += nd
		sa.ExternalNormalizedDensity += nd
		sb.InboundNormalizedDensity += nd
		sb.ExternalNormalizedDensity += nd
		t.modularity -= nd

		return true
	})
	if err != nil {
		return 0, fmt.Errorf("flow: finalize: %w", err)
	}

	return t.modularity, nil
}

// At returns the cell for (a, b).
func (t *Table) At(a, b int) (Cell, error) {
	count, err := t.count.At(a, b)
	if err != nil {
		return Cell{}, fmt.Errorf("flow: %w", err)
	}
	exp, _ := t.expected.At(a, b)
	nd, _ := t.density.At(a, b)

	return Cell{Count: int(count), Expected: exp, NormalizedDensity: nd}, nil
}

// Stats returns the counters and accumulators of modality a.
func (t *Table) Stats(a int) (Stats, error) {
	if a < 0 || a >= len(t.stats) {
		return Stats{}, fmt.Errorf("flow: stats(%d): %w", a, ErrIndexOutOfBounds)
	}

	return t.stats[a], nil
}

// Row returns the cells with source a, indexed by target id.
func (t *Table) Row(a int) ([]Cell, error) {
	if a < 0 || a >= len(t.stats) {
		return nil, fmt.Errorf("flow: row(%d): %w", a, ErrIndexOutOfBounds)
	}
	row := make([]Cell, t.count.Cols())
	for b := range row {
		c, err := t.At(a, b)
		if err != nil {
			return nil, err
		}
		row[b] = c
	}

	return row, nil
}

// Observed returns the number of Observe calls, i.e. the sum of all counts.
func (t *Table) Observed() int { return t.observed }

// Modularity returns the score computed by the last Finalize.
func (t *Table) Modularity() float64 { return t.modularity }

// Finalized reports whether Finalize has run.
func (t *Table) Finalized() bool { return t.finalized }
