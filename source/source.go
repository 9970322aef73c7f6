// Package source reads and writes the generic attribute tree in the formats
// the archive tooling exchanges: JSON, YAML and CBOR. Trees returned here are
// fed to saldata.Decode; trees passed to Write come from Attribute.Encode.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	saldata "github.com/reoring/saldata"
)

// Format names a serialization of the generic tree.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatJSON, FormatYAML, FormatCBOR} }

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return "", fmt.Errorf("source: unknown format %q (want json, yaml or cbor)", s)
	}
}

// FormatFromPath infers the format from a file extension, falling back to
// JSON.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return FormatJSON
}

// Read parses data in format f into a generic tree.
func Read(f Format, data []byte, opts ...saldata.DecodeOpt) (any, error) {
	switch f {
	case FormatJSON:
		return saldata.ParseJSON(data, opts...)
	case FormatYAML:
		return YAML(data)
	case FormatCBOR:
		return CBOR(data)
	default:
		return nil, fmt.Errorf("source: unknown format %q", f)
	}
}

// Write serializes tree in format f. JSON output is indented when indent is
// not empty.
func Write(f Format, tree any, indent string) ([]byte, error) {
	switch f {
	case FormatJSON:
		if indent != "" {
			return json.MarshalIndent(tree, "", indent)
		}
		return json.Marshal(tree)
	case FormatYAML:
		return MarshalYAML(tree)
	case FormatCBOR:
		return MarshalCBOR(tree)
	default:
		return nil, fmt.Errorf("source: unknown format %q", f)
	}
}

// Decode reads data in format f and decodes the attribute tree.
func Decode(f Format, data []byte, opts ...saldata.DecodeOpt) (saldata.Attribute, error) {
	tree, err := Read(f, data, opts...)
	if err != nil {
		return nil, err
	}
	return saldata.Decode(tree, opts...)
}

// Encode renders attr in format f.
func Encode(f Format, attr saldata.Attribute, indent string) ([]byte, error) {
	tree, err := attr.Encode()
	if err != nil {
		return nil, err
	}
	return Write(f, tree, indent)
}
