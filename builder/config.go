// SPDX-License-Identifier: MIT
// Package: minivan/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = decimalID ("0","1","2",...)
//   • rng         = nil       (stochastic constructors fail without a seed)
//   • weightFn    = nil       (edges carry no weight attribute)
//   • weightKey   = "weight"
//   • groupPrefix = "g"       (group labels "g0","g1",...)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn        func(int) string
	rng         *rand.Rand
	weightFn    func(*rand.Rand) float64
	weightKey   string
	groupPrefix string
}

const (
	defaultWeightKey   = "weight"
	defaultGroupPrefix = "g"
)

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		weightKey:   defaultWeightKey,
		groupPrefix: defaultGroupPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// groupLabel renders the partition value of group k.
func (c builderConfig) groupLabel(k int) string {
	return c.groupPrefix + strconv.Itoa(k)
}
