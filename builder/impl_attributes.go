// SPDX-License-Identifier: MIT
// Package: minivan/builder
//
// impl_attributes.go - attribute constructors over an existing topology.
//
// Contract:
//   - Vertices are visited in g.Vertices() order (sorted IDs), edges in
//     g.Edges() order (insertion), so a seed fixes every value.
//   - Numeric values are int64 when integer is set, float64 otherwise.
//   - Existing values under the same key are overwritten.

package builder

import (
	"math"

	"github.com/katalvlaran/minivan/core"
)

const (
	methodCategorical = "Categorical"
	methodNumeric     = "Numeric"
	methodDegree      = "Degree"
	methodEdgeNumeric = "EdgeNumeric"
)

// Categorical assigns one of values to every vertex under key: uniformly at
// random when an RNG is configured, round-robin otherwise.
// Complexity: O(V).
func Categorical(key string, values ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(values) == 0 {
			return builderErrorf(methodCategorical, ErrInvalidRange, "no values for %q", key)
		}
		for i, id := range g.Vertices() {
			v := values[i%len(values)]
			if cfg.rng != nil {
				v = values[cfg.rng.Intn(len(values))]
			}
			if err := g.SetVertexAttribute(id, key, v); err != nil {
				return builderErrorf(methodCategorical, ErrConstructFailed, "SetVertexAttribute(%s): %v", id, err)
			}
		}

		return nil
	}
}

// Numeric assigns a uniform value in [min, max] to every vertex under key.
// Complexity: O(V).
func Numeric(key string, min, max float64, integer bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		draw, err := sampler(methodNumeric, cfg, min, max, integer)
		if err != nil {
			return err
		}
		for _, id := range g.Vertices() {
			if err = g.SetVertexAttribute(id, key, draw()); err != nil {
				return builderErrorf(methodNumeric, ErrConstructFailed, "SetVertexAttribute(%s): %v", id, err)
			}
		}

		return nil
	}
}

// Degree stores the number of incident edge endpoints of every vertex under
// key as an int. A self-loop counts twice.
// Complexity: O(V + E).
func Degree(key string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		deg := make(map[string]int)
		for _, e := range g.Edges() {
			deg[e.From]++
			deg[e.To]++
		}
		for _, id := range g.Vertices() {
			if err := g.SetVertexAttribute(id, key, deg[id]); err != nil {
				return builderErrorf(methodDegree, ErrConstructFailed, "SetVertexAttribute(%s): %v", id, err)
			}
		}

		return nil
	}
}

// EdgeNumeric assigns a uniform value in [min, max] to every edge under key.
// Complexity: O(E).
func EdgeNumeric(key string, min, max float64, integer bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		draw, err := sampler(methodEdgeNumeric, cfg, min, max, integer)
		if err != nil {
			return err
		}
		for _, e := range g.Edges() {
			if err = g.SetEdgeAttribute(e.ID, key, draw()); err != nil {
				return builderErrorf(methodEdgeNumeric, ErrConstructFailed, "SetEdgeAttribute(%s): %v", e.ID, err)
			}
		}

		return nil
	}
}

// sampler validates the range and returns a draw function. A degenerate
// range needs no RNG.
func sampler(method string, cfg builderConfig, min, max float64, integer bool) (func() interface{}, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return nil, builderErrorf(method, ErrInvalidRange, "min=%v max=%v", min, max)
	}

	if integer {
		lo, hi := int64(math.Ceil(min)), int64(math.Floor(max))
		if lo > hi {
			return nil, builderErrorf(method, ErrInvalidRange, "no integer in [%v,%v]", min, max)
		}
		if lo == hi {
			return func() interface{} { return lo }, nil
		}
		if cfg.rng == nil {
			return nil, builderErrorf(method, ErrNeedRandSource, "rng is required")
		}
		return func() interface{} { return lo + cfg.rng.Int63n(hi-lo+1) }, nil
	}

	if min == max {
		return func() interface{} { return min }, nil
	}
	if cfg.rng == nil {
		return nil, builderErrorf(method, ErrNeedRandSource, "rng is required")
	}

	return func() interface{} { return min + cfg.rng.Float64()*(max-min) }, nil
}
