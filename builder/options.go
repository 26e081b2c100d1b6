// SPDX-License-Identifier: MIT
// Package: minivan/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn attaches fn(rng) under the weight key to every edge that
// PlantedPartition and RandomSparse add. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightKey renames the edge weight attribute. Panics on "".
func WithWeightKey(key string) BuilderOption {
	if key == "" {
		panic("builder: WithWeightKey(\"\")")
	}
	return func(c *builderConfig) {
		c.weightKey = key
	}
}

// WithGroupPrefix sets the prefix of planted group labels.
// An empty prefix yields bare indices ("0","1",...).
func WithGroupPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.groupPrefix = prefix
	}
}
