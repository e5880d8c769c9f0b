package shapecast

import "encoding/json"

// Kind tags the variants of the dynamic value domain.
type Kind int

const (
	KindInvalid Kind = iota // Outside the domain (ints, structs, typed maps, ...).
	KindNull                // Untyped nil.
	KindBool                // bool.
	KindNumber              // float64 or json.Number.
	KindString              // string.
	KindObject              // map[string]any.
	KindArray               // []any.
)

// String renders the kind using JSON vocabulary.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// KindOf classifies v by its dynamic type. Typed nil maps and slices keep
// their container kind; only an untyped nil is KindNull.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64, json.Number:
		return KindNumber
	case string:
		return KindString
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindInvalid
	}
}
