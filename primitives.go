package shapecast

import (
	"encoding/json"

	js "github.com/reoring/shapecast/jsonschema"
)

// Number accepts float64 values, the form encoding/json and go-json produce
// for JSON numbers by default. NaN and infinities are float64 and conform.
var Number = newSpec[float64](42, func(v any) bool {
	_, ok := v.(float64)
	return ok
}, primitiveSchema("number"))

// NumberJSON accepts json.Number values, the form produced by decoders
// running with UseNumber.
var NumberJSON = newSpec[json.Number]("42", func(v any) bool {
	_, ok := v.(json.Number)
	return ok
}, primitiveSchema("number"))

// String accepts string values.
var String = newSpec("foo", func(v any) bool {
	_, ok := v.(string)
	return ok
}, primitiveSchema("string"))

// Boolean accepts bool values.
var Boolean = newSpec(true, func(v any) bool {
	_, ok := v.(bool)
	return ok
}, primitiveSchema("boolean"))

func primitiveSchema(typ string) func() *js.Schema {
	return func() *js.Schema { return &js.Schema{Type: typ} }
}
