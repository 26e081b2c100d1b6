package codec

import (
	"io"

	"github.com/katalvlaran/minivan/model"
)

// Summary is the read side of a bundle, enough to describe its model.
type Summary struct {
	BundleVersion string `json:"bundleVersion"`
	Title         string `json:"title"`
	Graph         struct {
		Nodes []struct{} `json:"nodes"`
		Edges []struct{} `json:"edges"`
	} `json:"graph"`
	Settings struct {
		Type  string `json:"type"`
		Multi bool   `json:"multi"`
	} `json:"settings"`
	Model struct {
		NodeAttributes   []AttributeSummary `json:"nodeAttributes"`
		EdgeAttributes   []AttributeSummary `json:"edgeAttributes"`
		DefaultNodeSize  string             `json:"defaultNodeSize"`
		DefaultNodeColor string             `json:"defaultNodeColor"`
		DefaultEdgeSize  string             `json:"defaultEdgeSize"`
		DefaultEdgeColor string             `json:"defaultEdgeColor"`
	} `json:"model"`
}

// AttributeSummary is one modeled attribute of a bundle.
type AttributeSummary struct {
	Key         string     `json:"key"`
	Slug        string     `json:"slug"`
	Kind        model.Kind `json:"type"`
	Count       int        `json:"count"`
	Cardinality int        `json:"cardinality"`
	Stats       *struct {
		Modularity float64 `json:"modularity"`
	} `json:"stats"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Integer bool     `json:"integer"`
}

// Order returns the node count of the bundled graph.
func (s *Summary) Order() int { return len(s.Graph.Nodes) }

// Size returns the edge count of the bundled graph.
func (s *Summary) Size() int { return len(s.Graph.Edges) }

// DecodeSummary reads a bundle.
func DecodeSummary(r io.Reader, f Format, c Compression) (*Summary, error) {
	var s Summary
	if err := Decode(r, f, c, &s); err != nil {
		return nil, err
	}

	return &s, nil
}
