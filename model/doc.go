// Package model holds the attribute model of a bundle: one AttributeSpec per
// modeled node or edge attribute, plus the user Hints that override it.
//
// An AttributeSpec is a tagged variant. Kind selects which payload is set:
//
//	partition     -> Partition (modalities arena, flow table, modularity)
//	ranking-size  -> Size      (min, max, integer, area scaling)
//	ranking-color -> Color     (min, max, integer, color scale options)
//
// Builder creates specs from inferred attributes, applying hints field by
// field, and allocates slugs unique within its side. Observe feeds one value
// into a spec. MarshalJSON writes the bundle representation.
package model
