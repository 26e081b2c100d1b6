// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minivan/infer"
)

// ErrUnknownKind indicates an encoding kind other than the three supported ones.
var ErrUnknownKind = errors.New("model: unknown attribute kind")

// Kind is how an attribute is visually encoded.
type Kind string

const (
	// KindPartition encodes discrete values as colored groups.
	KindPartition Kind = "partition"

	// KindRankingSize encodes a numeric value as node or edge size.
	KindRankingSize Kind = "ranking-size"

	// KindRankingColor encodes a numeric value as a color gradient.
	KindRankingColor Kind = "ranking-color"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPartition, KindRankingSize, KindRankingColor:
		return true
	}

	return false
}

// Ranking reports whether k is a numeric encoding.
func (k Kind) Ranking() bool { return k == KindRankingSize || k == KindRankingColor }

// UnmarshalText rejects unknown kinds.
func (k *Kind) UnmarshalText(b []byte) error {
	v := Kind(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(b))
	}
	*k = v

	return nil
}

// KindFor maps an inferred scalar kind to its default encoding.
// Numbers become ranking-size; everything else is a partition.
func KindFor(k infer.Kind) Kind {
	if k.Numeric() {
		return KindRankingSize
	}

	return KindPartition
}

// Side tells node attributes from edge attributes.
type Side int

const (
	// NodeSide attributes live on vertices and get flow statistics.
	NodeSide Side = iota

	// EdgeSide attributes live on edges.
	EdgeSide
)

// String returns "node" or "edge".
func (s Side) String() string {
	if s == EdgeSide {
		return "edge"
	}

	return "node"
}
