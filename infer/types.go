// Package infer guesses the scalar kind of graph attributes from a sample of
// records.
//
// Every sampled value is classified as String, Float or Integer. Kinds are
// ordered by specificity (String < Float < Integer) and, across the sample,
// the most general kind observed wins: a single string value turns a
// numeric-looking attribute into a String attribute. Booleans, nil and
// non-scalar values (maps, slices) count as String.
//
// Complexity:
//
//	– Time:  O(S·A) where S = sample size, A = attributes per record.
//	– Space: O(K) where K = distinct attribute keys in the sample.
//
// Example usage:
//
//	kinds := infer.Infer(records, infer.WithSampleSize(50), infer.WithIgnore(infer.NodeIgnore))
//	for _, a := range kinds {
//	    fmt.Println(a.Key, a.Kind)
//	}
package infer

// Kind is the inferred scalar kind of an attribute.
type Kind int

const (
	// String is the most general kind; categorical data.
	String Kind = iota

	// Float is numeric data with a fractional part (or non-finite).
	Float

	// Integer is numeric data without a fractional part.
	Integer
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Integer:
		return "integer"
	default:
		return "string"
	}
}

// Numeric reports whether the kind is Float or Integer.
func (k Kind) Numeric() bool { return k == Float || k == Integer }

// DefaultSampleSize is the number of records inspected per side.
const DefaultSampleSize = 50

// Reserved presentation keys that never become modeled attributes.
var (
	// NodeIgnore lists node attribute keys excluded from inference.
	NodeIgnore = []string{"label", "x", "y", "z", "size", "color"}

	// EdgeIgnore lists edge attribute keys excluded from inference.
	EdgeIgnore = []string{"label", "color"}
)

// Attribute is one inferred attribute, in first-encounter order.
type Attribute struct {
	Key  string
	Kind Kind
}

// Options configures inference.
//
// SampleSize – maximum number of records inspected (> 0).
// Ignore     – keys always excluded.
// Allow      – when non-nil, only these keys are considered.
type Options struct {
	SampleSize int
	Ignore     map[string]struct{}
	Allow      map[string]struct{}
}

// Option represents a functional option for configuring Infer.
type Option func(*Options)

// WithSampleSize sets the maximum number of records inspected.
// Panics on n <= 0 (programmer error).
func WithSampleSize(n int) Option {
	if n <= 0 {
		panic("infer: WithSampleSize: n must be positive")
	}

	return func(o *Options) { o.SampleSize = n }
}

// WithIgnore adds keys to the ignore set.
func WithIgnore(keys []string) Option {
	return func(o *Options) {
		for _, k := range keys {
			o.Ignore[k] = struct{}{}
		}
	}
}

// WithAllow restricts inference to the given keys. A nil slice leaves the
// whitelist disabled; an empty non-nil slice allows nothing.
func WithAllow(keys []string) Option {
	return func(o *Options) {
		if keys == nil {
			return
		}
		o.Allow = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			o.Allow[k] = struct{}{}
		}
	}
}

// DefaultOptions returns the options used when Infer gets none.
func DefaultOptions() Options {
	return Options{
		SampleSize: DefaultSampleSize,
		Ignore:     make(map[string]struct{}),
	}
}
