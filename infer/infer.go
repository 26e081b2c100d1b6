package infer

import (
	"encoding/json"
	"math"
	"sort"
)

// Infer classifies every attribute key found in the first SampleSize records.
//
// Stage 1 (Configure): apply options over DefaultOptions.
// Stage 2 (Scan): for each record, visit its keys in lexicographic order,
// skip ignored / non-allowed keys, and keep the most general kind per key.
// Stage 3 (Finalize): return attributes in first-encounter order.
//
// Nil records are skipped but still consume a sample slot.
func Infer(records []map[string]interface{}, opts ...Option) []Attribute {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(records)
	if n > cfg.SampleSize {
		n = cfg.SampleSize
	}

	var out []Attribute
	index := make(map[string]int)
	keys := make([]string, 0, 8)

	for _, rec := range records[:n] {
		if len(rec) == 0 {
			continue
		}

		keys = keys[:0]
		for k := range rec {
			if _, skip := cfg.Ignore[k]; skip {
				continue
			}
			if cfg.Allow != nil {
				if _, ok := cfg.Allow[k]; !ok {
					continue
				}
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			kind := Guess(rec[k])
			i, seen := index[k]
			if !seen {
				index[k] = len(out)
				out = append(out, Attribute{Key: k, Kind: kind})
				continue
			}
			if kind < out[i].Kind {
				out[i].Kind = kind
			}
		}
	}

	return out
}

// Guess classifies a single value.
func Guess(v interface{}) Kind {
	f, ok := Number(v)
	if !ok {
		return String
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Float
	}

	return Integer
}

// Number converts any Go numeric value (or json.Number) to float64.
// Strings, booleans, nil and composites are not numbers.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
