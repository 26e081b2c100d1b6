// SPDX-License-Identifier: MIT
// Package: minivan/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with builderErrorf (method prefix + %w).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (groups, size, n) below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRange indicates min > max for numeric attributes or an empty
// value domain for categorical ones.
var ErrInvalidRange = errors.New("builder: invalid value range")

// ErrConstructFailed indicates a nil constructor or a failed core mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a wrapped sentinel with the constructor name:
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
