package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/model"
)

// Decode reads one document from r into v, which must be a pointer to a
// type with JSON tags.
func Decode(r io.Reader, f Format, c Compression, v interface{}) error {
	data, err := decompress(r, c)
	if err != nil {
		return err
	}

	raw := data
	if f != JSON {
		if raw, err = toJSON(data, f); err != nil {
			return err
		}
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}

	return nil
}

// DecodeHints reads user hints. A complete bundle is valid hints input.
func DecodeHints(r io.Reader, f Format, c Compression) (*model.Hints, error) {
	var h model.Hints
	if err := Decode(r, f, c, &h); err != nil {
		return nil, err
	}

	return &h, nil
}

// DecodeGraph reads a graph snapshot. Both a bare snapshot and a bundle
// (whose snapshot lives under "graph") are accepted.
func DecodeGraph(r io.Reader, f Format, c Compression) (*core.Serialized, error) {
	var doc struct {
		core.Serialized
		Graph *core.Serialized `json:"graph"`
	}
	if err := Decode(r, f, c, &doc); err != nil {
		return nil, err
	}
	if doc.Graph != nil {
		return doc.Graph, nil
	}

	return &doc.Serialized, nil
}

func decompress(r io.Reader, c Compression) ([]byte, error) {
	switch c {
	case None, "":
		return io.ReadAll(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecode, err)
		}
		defer dec.Close()
		data, err := io.ReadAll(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecode, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, c)
}

// toJSON re-encodes a YAML, TOML or MessagePack document as JSON.
func toJSON(data []byte, f Format) ([]byte, error) {
	var tree interface{}
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &tree)
	case TOML:
		var m map[string]interface{}
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&m)
		tree = m
	case Msgpack:
		err = msgpack.Unmarshal(data, &tree)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}

	raw, err := json.Marshal(stringKeys(tree))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}

	return raw, nil
}

// stringKeys converts maps with non-string keys, as produced by YAML and
// MessagePack decoders, into JSON-compatible maps.
func stringKeys(v interface{}) interface{} {
	switch x := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case map[string]interface{}:
		for k, e := range x {
			x[k] = stringKeys(e)
		}
	case []interface{}:
		for i, e := range x {
			x[i] = stringKeys(e)
		}
	case []map[string]interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = stringKeys(e)
		}
		return out
	}

	return v
}
