package minivan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/minivan/core"
)

// ErrInvalidGraph is returned, wrapped with detail, when Build gets a graph it
// cannot read.
var ErrInvalidGraph = errors.New("minivan: invalid graph")

// Graph is what Build needs from a graph store. *core.Graph implements it.
//
// The store must not be mutated while Build runs: the snapshot returned by
// Export and answers from NodeAttribute must agree for the whole call.
type Graph interface {
	Order() int
	Size() int
	Type() string
	Multi() bool
	Attributes() map[string]interface{}
	NodeAttribute(node, key string) (interface{}, bool)
	Export() *core.Serialized
}

var _ Graph = (*core.Graph)(nil)

// nilChecker is implemented by stores that can detect a typed nil receiver.
type nilChecker interface{ IsNil() bool }

// snapshot validates g and returns its export.
func snapshot(g Graph) (*core.Serialized, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidGraph)
	}
	if nc, ok := g.(nilChecker); ok && nc.IsNil() {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidGraph)
	}

	s := g.Export()
	if s == nil {
		return nil, fmt.Errorf("%w: nil export", ErrInvalidGraph)
	}
	if len(s.Nodes) != g.Order() {
		return nil, fmt.Errorf("%w: export has %d nodes, order is %d", ErrInvalidGraph, len(s.Nodes), g.Order())
	}
	if len(s.Edges) != g.Size() {
		return nil, fmt.Errorf("%w: export has %d edges, size is %d", ErrInvalidGraph, len(s.Edges), g.Size())
	}

	return s, nil
}
