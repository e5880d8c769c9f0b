package shapecast

import (
	"fmt"

	js "github.com/reoring/shapecast/jsonschema"
)

// Union returns a spec accepting values that conform to a or b.
func Union(a, b AnySpec) Spec[any] { return UnionN(a, b) }

// Union3 returns a spec accepting values that conform to a, b or c.
func Union3(a, b, c AnySpec) Spec[any] { return UnionN(a, b, c) }

// UnionN returns a spec accepting values that conform to any of specs,
// tried in declaration order. The sample is the sample of the first spec.
// Cast yields the input itself, so callers cannot tell which branch
// matched.
//
// UnionN with no specs conforms to nothing and has a nil sample. It panics
// when a spec is nil.
func UnionN(specs ...AnySpec) Spec[any] {
	branches := make([]AnySpec, len(specs))
	for i, s := range specs {
		if s == nil {
			panic(fmt.Sprintf("shapecast: nil spec for union branch %d", i))
		}
		branches[i] = s
	}
	var sample any
	if len(branches) > 0 {
		sample = SampleOf(branches[0])
	}
	conforms := func(v any) bool {
		for _, s := range branches {
			if s.Conforms(v) {
				return true
			}
		}
		return false
	}
	schema := func() *js.Schema {
		if len(branches) == 0 {
			return &js.Schema{Not: &js.Schema{}}
		}
		out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(branches))}
		for _, s := range branches {
			out.AnyOf = append(out.AnyOf, s.JSONSchema())
		}
		return out
	}
	return newSpec(sample, conforms, schema)
}
