package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ErrTrailingData reports input left over after the first JSON value.
var ErrTrailingData = errors.New("decode: trailing data after JSON value")

func newJSONDecoder(r io.Reader, mode NumberMode) *json.Decoder {
	dec := json.NewDecoder(r)
	if mode == NumberJSONNumber {
		dec.UseNumber()
	}
	return dec
}

// JSON decodes exactly one JSON value from data.
func JSON(data []byte, mode NumberMode) (any, error) {
	dec := newJSONDecoder(bytes.NewReader(data), mode)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// JSONStream decodes consecutive JSON values until EOF. Empty input yields
// no documents.
func JSONStream(r io.Reader, mode NumberMode) ([]any, error) {
	dec := newJSONDecoder(r, mode)
	var out []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode json document %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}
