package shapecast

import (
	"fmt"
	"sort"

	js "github.com/reoring/shapecast/jsonschema"
)

// ---------------- Object ----------------

// Shape maps field names to the specs their values must conform to.
type Shape map[string]AnySpec

// Object returns a spec for map[string]any values that own every field of
// shape with a conforming value. Extra fields are accepted and kept as-is.
// An empty shape accepts any object.
//
// The shape is copied, so later changes to it do not affect the spec.
// Object panics when a field spec is nil.
func Object(shape Shape) Spec[map[string]any] {
	fields := make(Shape, len(shape))
	keys := make([]string, 0, len(shape))
	sample := make(map[string]any, len(shape))
	for k, s := range shape {
		if s == nil {
			panic(fmt.Sprintf("shapecast: nil spec for field %q", k))
		}
		fields[k] = s
		keys = append(keys, k)
		sample[k] = SampleOf(s)
	}
	sort.Strings(keys)

	conforms := func(v any) bool {
		m, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for _, k := range keys {
			fv, exists := m[k]
			if !exists || !fields[k].Conforms(fv) {
				return false
			}
		}
		return true
	}
	schema := func() *js.Schema {
		props := make(map[string]*js.Schema, len(fields))
		for k, s := range fields {
			props[k] = s.JSONSchema()
		}
		req := make([]string, len(keys))
		copy(req, keys)
		return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: true}
	}
	return newSpec(sample, conforms, schema)
}

// ---------------- Array ----------------

// Array returns a spec for []any values whose elements all conform to elem.
// The empty array conforms. The sample holds a single element, the sample
// of elem. Array panics when elem is nil.
func Array(elem AnySpec) Spec[[]any] {
	if elem == nil {
		panic("shapecast: nil array element spec")
	}
	conforms := func(v any) bool {
		arr, ok := v.([]any)
		if !ok {
			return false
		}
		for i := range arr {
			if !elem.Conforms(arr[i]) {
				return false
			}
		}
		return true
	}
	schema := func() *js.Schema {
		return &js.Schema{Type: "array", Items: elem.JSONSchema()}
	}
	return newSpec([]any{SampleOf(elem)}, conforms, schema)
}
