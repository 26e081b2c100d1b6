package model

// Author is one bundle author.
type Author struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
}

// Hints is a partial bundle supplied by the user. Every field is optional.
// A complete bundle document decodes as valid Hints, which is how rebuilds
// reuse a previous model.
type Hints struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	URL         *string     `json:"url,omitempty"`
	Date        *string     `json:"date,omitempty"`
	Authors     []Author    `json:"authors,omitempty"`
	Model       *ModelHints `json:"model,omitempty"`
}

// ModelHints overrides the derived model.
//
// A non-nil NodeAttributes (or EdgeAttributes) slice doubles as a whitelist:
// only the listed keys are modeled on that side. An empty non-nil slice
// therefore models nothing.
type ModelHints struct {
	NodeAttributes []AttributeHint `json:"nodeAttributes,omitempty"`
	EdgeAttributes []AttributeHint `json:"edgeAttributes,omitempty"`

	DefaultNodeSize  string `json:"defaultNodeSize,omitempty"`
	DefaultEdgeSize  string `json:"defaultEdgeSize,omitempty"`
	DefaultNodeColor string `json:"defaultNodeColor,omitempty"`
	DefaultEdgeColor string `json:"defaultEdgeColor,omitempty"`
}

// AttributeHint overrides the inferred AttributeSpec of a single key.
// A nil field keeps the default.
type AttributeHint struct {
	Key           string                  `json:"key"`
	Kind          *Kind                   `json:"type,omitempty"`
	Label         *string                 `json:"label,omitempty"`
	Slug          *string                 `json:"slug,omitempty"`
	Integer       *bool                   `json:"integer,omitempty"`
	AreaScaling   *AreaScalingHint        `json:"areaScaling,omitempty"`
	ColorScale    *string                 `json:"colorScale,omitempty"`
	InvertScale   *bool                   `json:"invertScale,omitempty"`
	TruncateScale *bool                   `json:"truncateScale,omitempty"`
	Modalities    map[string]ModalityHint `json:"modalities,omitempty"`
}

// AreaScalingHint is merged into the default area scaling field by field.
type AreaScalingHint struct {
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	Interpolation *string  `json:"interpolation,omitempty"`
}

// ModalityHint pins the color of one partition value.
type ModalityHint struct {
	Color *string `json:"color,omitempty"`
}

// NodeHints returns the node attribute hints or nil.
func (h *Hints) NodeHints() []AttributeHint {
	if h == nil || h.Model == nil {
		return nil
	}

	return h.Model.NodeAttributes
}

// EdgeHints returns the edge attribute hints or nil.
func (h *Hints) EdgeHints() []AttributeHint {
	if h == nil || h.Model == nil {
		return nil
	}

	return h.Model.EdgeAttributes
}

// ModalityColor returns the pinned color for value, if any.
func (h *AttributeHint) ModalityColor(value string) (string, bool) {
	if h == nil {
		return "", false
	}
	m, ok := h.Modalities[value]
	if !ok || m.Color == nil {
		return "", false
	}

	return *m.Color, true
}

// Keys returns the hinted keys in order, or nil when hs is nil.
func Keys(hs []AttributeHint) []string {
	if hs == nil {
		return nil
	}
	keys := make([]string, 0, len(hs))
	for _, h := range hs {
		keys = append(keys, h.Key)
	}

	return keys
}
