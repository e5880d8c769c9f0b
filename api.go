package shapecast

import (
	js "github.com/reoring/shapecast/jsonschema"
)

// Spec describes a type T by a sample value and a structural conformance
// predicate over dynamic values. Specs are immutable and safe to share.
//
// The zero Spec has no predicate and conforms to nothing.
type Spec[T any] struct {
	sample   T
	conforms func(any) bool
	schema   func() *js.Schema
}

// AnySpec is the type-erased view of a Spec used by the combinators. Every
// Spec[T] implements it; no other type can.
type AnySpec interface {
	// Conforms reports whether v structurally matches the spec.
	Conforms(v any) bool
	// JSONSchema projects the spec into a fresh JSON Schema value.
	JSONSchema() *js.Schema

	anySample() any
}

var _ AnySpec = Spec[any]{}

// New builds a spec from a sample and a predicate. Nothing is validated:
// conforms(sample) is expected to hold but never checked. The predicate
// must be deterministic and must not mutate its input.
func New[T any](sample T, conforms func(any) bool) Spec[T] {
	return Spec[T]{sample: sample, conforms: conforms}
}

func newSpec[T any](sample T, conforms func(any) bool, schema func() *js.Schema) Spec[T] {
	return Spec[T]{sample: sample, conforms: conforms, schema: schema}
}

// Sample returns the witness value. Composite samples share storage with
// the spec and must be treated as read-only.
func (s Spec[T]) Sample() T { return s.sample }

// Conforms reports whether v structurally matches the spec.
func (s Spec[T]) Conforms(v any) bool {
	if s.conforms == nil {
		return false
	}
	return s.conforms(v)
}

// JSONSchema projects the spec into JSON Schema. Specs built with New
// project to the empty schema.
func (s Spec[T]) JSONSchema() *js.Schema {
	if s.schema == nil {
		return &js.Schema{}
	}
	return s.schema()
}

func (s Spec[T]) anySample() any { return s.sample }

// SampleOf returns the witness carried by any spec as an untyped value, or
// nil when s is nil.
func SampleOf(s AnySpec) any {
	if s == nil {
		return nil
	}
	return s.anySample()
}

// Cast returns v relabeled as T when v conforms to s, and (zero, false)
// otherwise. The result is v itself: maps and slices are neither copied
// nor modified. Cast never panics, whatever v holds.
//
// A predicate written with New may accept values that T cannot hold; Cast
// reports false for those instead of converting them.
func Cast[T any](s Spec[T], v any) (T, bool) {
	var zero T
	if !s.Conforms(v) {
		return zero, false
	}
	if v == nil {
		// an untyped nil survives unchanged only when T is an interface type
		return zero, any(zero) == nil
	}
	out, ok := v.(T)
	if !ok {
		return zero, false
	}
	return out, true
}

// Is reports whether v conforms to s.
func Is(s AnySpec, v any) bool {
	if s == nil {
		return false
	}
	return s.Conforms(v)
}
