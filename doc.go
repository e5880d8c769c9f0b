// Package shapecast provides runtime type specifications and safe casting
// for dynamic values.
//
// - A Spec[T] pairs a sample value of T with a conformance predicate
// - Cast checks an untyped value against a Spec and relabels it as T on success
// - Object/Array/Union compose specs bottom-up into arbitrarily nested shapes
// - JSONSchema projects any Spec into a JSON Schema document
//
// Dynamic values are the trees produced by decoding JSON into any: nil,
// bool, float64 (or json.Number), string, map[string]any and []any. See
// KindOf for the exact domain.
//
// Design policy:
// - Keep the root package free of I/O; decoding lives under decode/.
// - Failures are boolean. Cast returns (zero, false), never an error or panic.
// - Specs are immutable once built and safe for concurrent use.
//
// Typical usage:
//
//	user := shapecast.Object(shapecast.Shape{
//	    "name": shapecast.String,
//	    "tags": shapecast.Array(shapecast.String),
//	    "id":   shapecast.Union(shapecast.Number, shapecast.String),
//	})
//	if m, ok := shapecast.Cast(user, v); ok {
//	    _ = m["name"].(string)
//	}
package shapecast
