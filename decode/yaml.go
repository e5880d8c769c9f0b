package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// YAML decodes every document of a YAML stream and normalizes each into the
// dynamic value domain.
func YAML(data []byte, mode NumberMode) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("decode yaml document %d: %w", len(out), err)
		}
		v, err := normalizeYAML(node, mode)
		if err != nil {
			return nil, fmt.Errorf("decode yaml document %d: %w", len(out), err)
		}
		out = append(out, v)
	}
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any
// and Go integers) into JSON-like values recursively.
func normalizeYAML(v any, mode NumberMode) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := normalizeYAML(vv, mode)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", k)
			}
			nv, err := normalizeYAML(vv, mode)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			nv, err := normalizeYAML(t[i], mode)
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case int:
		return intNumber(int64(t), mode), nil
	case int64:
		return intNumber(t, mode), nil
	case uint64:
		if mode == NumberJSONNumber {
			return json.Number(strconv.FormatUint(t, 10)), nil
		}
		return float64(t), nil
	case float64:
		if mode == NumberJSONNumber {
			if math.IsNaN(t) || math.IsInf(t, 0) {
				return nil, fmt.Errorf("non-finite number %v has no JSON form", t)
			}
			return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
		}
		return t, nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	default:
		return v, nil
	}
}

func intNumber(n int64, mode NumberMode) any {
	if mode == NumberJSONNumber {
		return json.Number(strconv.FormatInt(n, 10))
	}
	return float64(n)
}
