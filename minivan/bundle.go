package minivan

import (
	"encoding/json"

	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/model"
)

// BundleVersion is written into every bundle.
const BundleVersion = "1.0.0"

// Bundle is the exported object: metadata, graph snapshot and model.
type Bundle struct {
	BundleVersion string `json:"bundleVersion"`
	Consolidated  bool   `json:"consolidated"`

	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Date        string         `json:"date,omitempty"`
	Authors     []model.Author `json:"authors,omitempty"`

	Graph    *core.Serialized `json:"graph"`
	Settings Settings         `json:"settings"`
	Model    Model            `json:"model"`
}

// Settings records the graph's orientation policy.
type Settings struct {
	Type  string `json:"type"`
	Multi bool   `json:"multi"`
}

// Model lists surviving attribute specs in spec-building order.
type Model struct {
	NodeAttributes []*model.AttributeSpec `json:"nodeAttributes"`
	EdgeAttributes []*model.AttributeSpec `json:"edgeAttributes"`

	DefaultNodeSize  string `json:"defaultNodeSize,omitempty"`
	DefaultEdgeSize  string `json:"defaultEdgeSize,omitempty"`
	DefaultNodeColor string `json:"defaultNodeColor,omitempty"`
	DefaultEdgeColor string `json:"defaultEdgeColor,omitempty"`
}

// NodeAttribute returns the node spec for key.
func (m *Model) NodeAttribute(key string) (*model.AttributeSpec, bool) {
	return find(m.NodeAttributes, key)
}

// EdgeAttribute returns the edge spec for key.
func (m *Model) EdgeAttribute(key string) (*model.AttributeSpec, bool) {
	return find(m.EdgeAttributes, key)
}

func find(specs []*model.AttributeSpec, key string) (*model.AttributeSpec, bool) {
	for _, s := range specs {
		if s.Key == key {
			return s, true
		}
	}

	return nil, false
}

// metadata fills the descriptive fields from hints, falling back to the
// graph attribute of the same name.
func (b *Bundle) metadata(hints *model.Hints, attrs map[string]interface{}) {
	pick := func(hint *string, key string) string {
		if hint != nil {
			return *hint
		}
		if s, ok := attrs[key].(string); ok {
			return s
		}

		return ""
	}
	var h model.Hints
	if hints != nil {
		h = *hints
	}

	b.Title = pick(h.Title, "title")
	b.Description = pick(h.Description, "description")
	b.URL = pick(h.URL, "url")
	b.Date = pick(h.Date, "date")

	if h.Authors != nil {
		b.Authors = append([]model.Author(nil), h.Authors...)
		return
	}
	b.Authors = authorsFrom(attrs["authors"])
}

// authorsFrom converts a loosely typed graph attribute into authors.
// Unreadable values yield nil.
func authorsFrom(v interface{}) []model.Author {
	if v == nil {
		return nil
	}
	if a, ok := v.([]model.Author); ok {
		return a
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out []model.Author
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}

	return out
}
