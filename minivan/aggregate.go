// File: aggregate.go
// Role: Spec construction, the node and edge passes, flow finalization and
//       cardinality pruning.
// Determinism:
//   - Nodes and edges are visited in snapshot order; specs keep building order.
// Concurrency:
//   - An aggregator belongs to exactly one Build call.

package minivan

import (
	"fmt"

	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/flow"
	"github.com/katalvlaran/minivan/infer"
	"github.com/katalvlaran/minivan/model"
)

// side is the per-side working set. Dropped specs are set to nil in specs
// and compacted by survivors.
type side struct {
	kind    model.Side
	builder *model.Builder
	specs   []*model.AttributeSpec
	total   int // order for nodes, size for edges
}

type aggregator struct {
	opts  Options
	g     Graph
	snap  *core.Serialized
	nodes side
	edges side
}

func newAggregator(g Graph, snap *core.Serialized, hints *model.Hints, opts Options) *aggregator {
	return &aggregator{
		opts:  opts,
		g:     g,
		snap:  snap,
		nodes: side{kind: model.NodeSide, builder: model.NewBuilder(model.NodeSide, hints.NodeHints()), total: len(snap.Nodes)},
		edges: side{kind: model.EdgeSide, builder: model.NewBuilder(model.EdgeSide, hints.EdgeHints()), total: len(snap.Edges)},
	}
}

// buildSpecs infers attribute kinds from a sample of each side and creates
// the initial specs. Hinted keys double as a whitelist.
func (a *aggregator) buildSpecs(hints *model.Hints) {
	nodeRecords := make([]map[string]interface{}, len(a.snap.Nodes))
	for i := range a.snap.Nodes {
		nodeRecords[i] = a.snap.Nodes[i].Attributes
	}
	edgeRecords := make([]map[string]interface{}, len(a.snap.Edges))
	for i := range a.snap.Edges {
		edgeRecords[i] = a.snap.Edges[i].Attributes
	}

	for _, attr := range infer.Infer(nodeRecords,
		infer.WithSampleSize(a.opts.SampleSize),
		infer.WithIgnore(infer.NodeIgnore),
		infer.WithAllow(model.Keys(hints.NodeHints())),
	) {
		a.nodes.specs = append(a.nodes.specs, a.nodes.builder.Build(attr))
	}
	for _, attr := range infer.Infer(edgeRecords,
		infer.WithSampleSize(a.opts.SampleSize),
		infer.WithIgnore(infer.EdgeIgnore),
		infer.WithAllow(model.Keys(hints.EdgeHints())),
	) {
		a.edges.specs = append(a.edges.specs, a.edges.builder.Build(attr))
	}
}

// observe feeds one record into every live spec of s.
func (a *aggregator) observe(s *side, attrs map[string]interface{}) {
	for i, spec := range s.specs {
		if spec == nil {
			continue
		}
		v, ok := attrs[spec.Key]
		if !ok || v == nil {
			continue
		}
		if spec.Observe(v) && a.overflows(spec, s.total) {
			a.drop(s, i, DropHighCardinality)
		}
	}
}

// overflows reports whether an unhinted partition looks like an identifier.
func (a *aggregator) overflows(spec *model.AttributeSpec, total int) bool {
	if spec.Hinted || spec.Partition == nil {
		return false
	}
	c := spec.Partition.Cardinality()

	return c >= a.opts.MaxPartitionCardinality &&
		float64(c) >= a.opts.MaxCardinalityRatio*float64(total)
}

func (a *aggregator) drop(s *side, i int, reason DropReason) {
	spec := s.specs[i]
	s.specs[i] = nil
	d := Drop{Key: spec.Key, Side: s.kind, Reason: reason}
	if spec.Partition != nil {
		d.Cardinality = spec.Partition.Cardinality()
	}
	a.opts.Logger.Debug("attribute dropped",
		"key", d.Key, "side", d.Side.String(), "reason", string(d.Reason), "cardinality", d.Cardinality)
	if a.opts.OnDrop != nil {
		a.opts.OnDrop(d)
	}
}

// nodePass visits every node once.
// Complexity: O(V·A).
func (a *aggregator) nodePass() {
	for i := range a.snap.Nodes {
		a.observe(&a.nodes, a.snap.Nodes[i].Attributes)
	}
}

// partitions returns the live node partitions.
func (a *aggregator) partitions() []*model.AttributeSpec {
	var out []*model.AttributeSpec
	for _, s := range a.nodes.specs {
		if s != nil && s.Partition != nil {
			out = append(out, s)
		}
	}

	return out
}

// edgePass allocates flow tables for node partitions, then visits every edge
// once, feeding both the flow tables and the edge specs.
// Complexity: O(E·(P + A) + Σ n²) with P node partitions of n modalities.
func (a *aggregator) edgePass() error {
	parts := a.partitions()
	for _, s := range parts {
		tbl, err := flow.NewTable(s.Partition.Cardinality())
		if err != nil {
			return err
		}
		s.Partition.Flow = tbl
	}

	for i := range a.snap.Edges {
		e := &a.snap.Edges[i]
		for _, s := range parts {
			src, ok := a.modality(s, e.Source)
			if !ok {
				continue
			}
			dst, ok := a.modality(s, e.Target)
			if !ok {
				continue
			}
			if err := s.Partition.Flow.Observe(src, dst); err != nil {
				return fmt.Errorf("minivan: flow of %q: %w", s.Key, err)
			}
		}
		a.observe(&a.edges, e.Attributes)
	}

	return nil
}

// modality resolves the modality id of node for partition s.
func (a *aggregator) modality(s *model.AttributeSpec, node string) (int, bool) {
	v, ok := a.g.NodeAttribute(node, s.Key)
	if !ok || v == nil {
		return 0, false
	}

	return s.Partition.Lookup(model.PartitionValue(v))
}

// finalize computes expected counts, densities and modularity with the graph
// size as M.
func (a *aggregator) finalize() error {
	for _, s := range a.partitions() {
		q, err := s.Partition.Flow.Finalize(len(a.snap.Edges))
		if err != nil {
			return fmt.Errorf("minivan: flow of %q: %w", s.Key, err)
		}
		s.Partition.Modularity = q
	}

	return nil
}

// prune drops unhinted partitions with fewer than two values, then compacts
// both sides.
func (a *aggregator) prune() {
	for _, s := range []*side{&a.nodes, &a.edges} {
		for i, spec := range s.specs {
			if spec == nil || spec.Hinted || spec.Partition == nil {
				continue
			}
			if spec.Partition.Cardinality() < 2 {
				a.drop(s, i, DropSingleValue)
			}
		}
		s.specs = survivors(s.specs)
	}
}

func survivors(specs []*model.AttributeSpec) []*model.AttributeSpec {
	out := make([]*model.AttributeSpec, 0, len(specs))
	for _, s := range specs {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}
