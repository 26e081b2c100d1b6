package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/minivan"
)

// EncodeBundle writes b to w in format f, compressed with c.
// JSON output is indented with two spaces. TOML cannot carry the null
// ranges of a bundle and is rejected with ErrUnsupported.
func EncodeBundle(w io.Writer, b *minivan.Bundle, f Format, c Compression) error {
	return Encode(w, b, f, c)
}

// EncodeGraph writes a graph snapshot, readable back with DecodeGraph.
func EncodeGraph(w io.Writer, s *core.Serialized, f Format, c Compression) error {
	return Encode(w, s, f, c)
}

// Encode writes any JSON-tagged value. Field names, omitempty and custom
// JSON marshalers apply to every format. TOML output returns ErrUnsupported.
func Encode(w io.Writer, v interface{}, f Format, c Compression) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec: marshal: %w", err)
	}

	var out []byte
	switch f {
	case JSON:
		var buf bytes.Buffer
		if err = json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("codec: indent: %w", err)
		}
		buf.WriteByte('\n')
		out = buf.Bytes()
	case Msgpack, YAML:
		tree, err := genericTree(raw)
		if err != nil {
			return err
		}
		if f == Msgpack {
			out, err = msgpack.Marshal(tree)
		} else {
			out, err = yaml.Marshal(tree)
		}
		if err != nil {
			return fmt.Errorf("codec: encode %s: %w", f, err)
		}
	case TOML:
		return fmt.Errorf("%w: %s output", ErrUnsupported, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return compress(w, out, c)
}

// genericTree decodes JSON into maps, slices and scalars, keeping integral
// numbers as int64.
func genericTree(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return numbers(tree), nil
}

func numbers(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, e := range x {
			x[k] = numbers(e)
		}
	case []interface{}:
		for i, e := range x {
			x[i] = numbers(e)
		}
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	}

	return v
}

func compress(w io.Writer, data []byte, c Compression) error {
	switch c {
	case None, "":
		_, err := w.Write(data)
		return err
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("codec: zstd writer: %w", err)
		}
		if _, err = enc.Write(data); err != nil {
			_ = enc.Close()
			return fmt.Errorf("codec: zstd write: %w", err)
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownCompression, c)
}
