// Package decode turns JSON and YAML documents into the dynamic value domain
// understood by shapecast: nil, bool, float64 or json.Number, string,
// map[string]any and []any.
//
// The shapecast core never parses bytes; this package serves the CLI and the
// HTTP middleware.
package decode

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// NumberMode dictates how numbers are represented after decoding.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // float64, matched by shapecast.Number.
	NumberJSONNumber                   // json.Number, matched by shapecast.NumberJSON.
)

// String renders the mode as accepted by ParseNumberMode.
func (m NumberMode) String() string {
	if m == NumberJSONNumber {
		return "json"
	}
	return "float64"
}

// ParseNumberMode parses "float64" or "json". The empty string is float64.
func ParseNumberMode(s string) (NumberMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float64":
		return NumberFloat64, nil
	case "json", "json_number":
		return NumberJSONNumber, nil
	default:
		return NumberFloat64, fmt.Errorf("decode: unknown number mode %q", s)
	}
}

// Format identifies a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks a format by file extension. Unknown extensions and
// stdin ("-") are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Documents decodes every document in data using the given format. JSON
// input may hold several concatenated values (for example NDJSON).
func Documents(data []byte, f Format, mode NumberMode) ([]any, error) {
	switch f {
	case FormatYAML:
		return YAML(data, mode)
	default:
		return JSONStream(bytes.NewReader(data), mode)
	}
}
