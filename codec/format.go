// Package codec reads and writes minivan documents.
//
// Bundles are written as JSON, MessagePack or YAML, optionally wrapped in a
// zstd frame. Hints and graph snapshots are read from JSON, YAML, TOML or
// MessagePack. Every non-JSON document is first decoded into a generic tree
// and re-read through encoding/json, so the JSON field names and custom
// unmarshalers of the target types apply to all formats.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unsupported or undetectable document format.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrUnknownCompression indicates an unsupported compression name.
	ErrUnknownCompression = errors.New("codec: unknown compression")

	// ErrUnsupported indicates a format that cannot carry the document.
	ErrUnsupported = errors.New("codec: format not supported for this document")

	// ErrDecode wraps every parse failure.
	ErrDecode = errors.New("codec: decode failed")
)

// Format is a document encoding.
type Format string

const (
	JSON    Format = "json"
	Msgpack Format = "msgpack"
	YAML    Format = "yaml"
	TOML    Format = "toml"
)

// Compression wraps an encoded document.
type Compression string

const (
	None Compression = "none"
	Zstd Compression = "zstd"
)

// ParseFormat accepts a format name or a common alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "msgpack", "mpk", "mp":
		return Msgpack, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseCompression accepts "none", "" or "zstd".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "zstd", "zst":
		return Zstd, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

// Detect infers format and compression from a file name:
// "g.json", "g.yml", "hints.toml", "bundle.msgpack.zst".
func Detect(path string) (Format, Compression, error) {
	c := None
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".zst") {
		c = Zstd
		path = strings.TrimSuffix(path, ext)
		ext = filepath.Ext(path)
	}
	if ext == "" {
		return "", "", fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", "", err
	}

	return f, c, nil
}

// Extension returns the file suffix for f and c, such as ".msgpack.zst".
func Extension(f Format, c Compression) string {
	ext := "." + string(f)
	if c == Zstd {
		ext += ".zst"
	}

	return ext
}
