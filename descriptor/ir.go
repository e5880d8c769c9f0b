// Package descriptor compiles declarative spec documents into shapecast
// specs.
//
// A descriptor is a JSON or YAML value:
//
//	number | string | boolean | number_json
//	{object: {<field>: <descriptor>, ...}}
//	{array: <descriptor>}
//	{union: [<descriptor>, ...]}
//
// Parse turns a decoded descriptor into IR nodes; Build turns nodes into an
// AnySpec. Load runs both on raw bytes.
package descriptor

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeArray
	NodeObject
	NodeUnion
)

// Node is the root IR node interface.
type Node interface {
	Kind() NodeKind
}

// Primitive names a leaf spec: "number", "string", "boolean" or "number_json".
type Primitive struct {
	Name string
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }

// Array represents an array of items.
type Array struct {
	Item Node
}

func (a *Array) Kind() NodeKind { return NodeArray }

// Object represents an object shape. Fields are sorted by name.
type Object struct {
	Fields []Field
}

func (o *Object) Kind() NodeKind { return NodeObject }

// Field maps a field name to its node.
type Field struct {
	Name string
	Node Node
}

// Union represents alternatives tried in order.
type Union struct {
	Variants []Node
}

func (u *Union) Kind() NodeKind { return NodeUnion }
