// SPDX-License-Identifier: MIT
// Package: minivan/builder
//
// impl_planted.go - PlantedPartition and RandomSparse constructors.
//
// Model (stochastic block model with equal groups):
//   - groups×size vertices; vertex i belongs to group i/size.
//   - Each admissible pair gets an edge with probability pIn inside a
//     group and pOut across groups.
//   - Directed graphs try ordered pairs (i,j), i≠j. Undirected and mixed
//     graphs try unordered pairs {i,j}, i<j. Self-loops are tried iff g.Looped().
//
// Contract:
//   - groups ≥ 1 and size ≥ 1 (else ErrTooFewVertices).
//   - pIn, pOut ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng must be set unless both probabilities are 0 or 1 (else ErrNeedRandSource).
//   - key == "" adds no group attribute.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials, n = groups×size.

package builder

import (
	"github.com/katalvlaran/minivan/core"
)

const (
	methodPlanted      = "PlantedPartition"
	methodRandomSparse = "RandomSparse"
	minGroups          = 1
	minGroupSize       = 1
)

// PlantedPartition returns a Constructor sampling a graph with a known
// group structure. The group of every vertex is stored under key as
// cfg.groupLabel(k).
func PlantedPartition(groups, size int, pIn, pOut float64, key string) Constructor {
	return planted(methodPlanted, groups, size, pIn, pOut, key)
}

// RandomSparse returns a Constructor sampling an Erdős–Rényi-like graph
// over n vertices with independent edge probability p and no group attribute.
func RandomSparse(n int, p float64) Constructor {
	return planted(methodRandomSparse, 1, n, p, p, "")
}

func planted(method string, groups, size int, pIn, pOut float64, key string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if groups < minGroups {
			return builderErrorf(method, ErrTooFewVertices, "groups=%d < min=%d", groups, minGroups)
		}
		if size < minGroupSize {
			return builderErrorf(method, ErrTooFewVertices, "size=%d < min=%d", size, minGroupSize)
		}
		for _, p := range [...]float64{pIn, pOut} {
			if p < 0 || p > 1 {
				return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [0,1]", p)
			}
		}
		if cfg.rng == nil && (stochastic(pIn) || stochastic(pOut) || cfg.weightFn != nil) {
			return builderErrorf(method, ErrNeedRandSource, "rng is required")
		}

		n := groups * size
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return builderErrorf(method, ErrConstructFailed, "AddVertex(%s): %v", ids[i], err)
			}
			if key == "" {
				continue
			}
			if err := g.SetVertexAttribute(ids[i], key, cfg.groupLabel(i/size)); err != nil {
				return builderErrorf(method, ErrConstructFailed, "SetVertexAttribute(%s): %v", ids[i], err)
			}
		}

		ordered := g.Directed()
		loops := g.Looped()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if ordered {
				j0 = 0
			} else if loops {
				j0 = i
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				p := pOut
				if i/size == j/size {
					p = pIn
				}
				if !trial(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, ids[i], ids[j]); err != nil {
					return builderErrorf(method, ErrConstructFailed, "AddEdge(%s,%s): %v", ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// stochastic reports whether p needs a random draw.
func stochastic(p float64) bool { return p > 0 && p < 1 }

// trial draws one Bernoulli(p); p of 0 or 1 consumes no randomness.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}

	return cfg.rng.Float64() < p
}

func addEdge(g *core.Graph, cfg builderConfig, from, to string) error {
	var opts []core.EdgeOption
	if cfg.weightFn != nil {
		opts = append(opts, core.WithEdgeAttributes(map[string]interface{}{
			cfg.weightKey: cfg.weightFn(cfg.rng),
		}))
	}
	_, err := g.AddEdge(from, to, opts...)

	return err
}
