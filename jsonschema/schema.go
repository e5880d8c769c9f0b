package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Only the keywords a spec can project to are modeled.
type Schema struct {
	// Core
	Type string `json:"type,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
}

// IsEmpty reports whether s places no constraint on a value.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Type == "" && len(s.Properties) == 0 && len(s.Required) == 0 &&
		s.AdditionalProperties == nil && s.Items == nil && len(s.AnyOf) == 0 && s.Not == nil
}
