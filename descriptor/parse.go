package descriptor

import "sort"

const (
	keyObject = "object"
	keyArray  = "array"
	keyUnion  = "union"
)

var primitiveNames = map[string]struct{}{
	"number":      {},
	"string":      {},
	"boolean":     {},
	"number_json": {},
}

// Parse converts a decoded descriptor into IR. Every problem in the document
// is reported, in document order with object fields sorted by name.
func Parse(v any) (Node, error) {
	var iss Issues
	n := parseNode(v, pathRef{}, &iss)
	if len(iss) > 0 {
		return nil, iss
	}
	return n, nil
}

func parseNode(v any, p pathRef, iss *Issues) Node {
	switch t := v.(type) {
	case string:
		if _, ok := primitiveNames[t]; !ok {
			*iss = append(*iss, p.issue(CodeUnknownType, map[string]string{"type": t}))
			return nil
		}
		return &Primitive{Name: t}
	case map[string]any:
		if len(t) != 1 {
			*iss = append(*iss, p.issue(CodeInvalidDescriptor, nil))
			return nil
		}
		for k, body := range t {
			switch k {
			case keyObject:
				return parseObject(body, p.field(k), iss)
			case keyArray:
				item := parseNode(body, p.field(k), iss)
				if item == nil {
					return nil
				}
				return &Array{Item: item}
			case keyUnion:
				return parseUnion(body, p.field(k), iss)
			default:
				*iss = append(*iss, p.issue(CodeUnknownType, map[string]string{"type": k}))
			}
		}
		return nil
	default:
		*iss = append(*iss, p.issue(CodeInvalidDescriptor, nil))
		return nil
	}
}

func parseObject(body any, p pathRef, iss *Issues) Node {
	fields, ok := body.(map[string]any)
	if !ok {
		*iss = append(*iss, p.issue(CodeInvalidDescriptor, nil))
		return nil
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	obj := &Object{Fields: make([]Field, 0, len(names))}
	failed := false
	for _, k := range names {
		n := parseNode(fields[k], p.field(k), iss)
		if n == nil {
			failed = true
			continue
		}
		obj.Fields = append(obj.Fields, Field{Name: k, Node: n})
	}
	if failed {
		return nil
	}
	return obj
}

func parseUnion(body any, p pathRef, iss *Issues) Node {
	variants, ok := body.([]any)
	if !ok {
		*iss = append(*iss, p.issue(CodeInvalidDescriptor, nil))
		return nil
	}
	if len(variants) == 0 {
		*iss = append(*iss, p.issue(CodeEmptyUnion, nil))
		return nil
	}
	u := &Union{Variants: make([]Node, 0, len(variants))}
	failed := false
	for i, v := range variants {
		n := parseNode(v, p.index(i), iss)
		if n == nil {
			failed = true
			continue
		}
		u.Variants = append(u.Variants, n)
	}
	if failed {
		return nil
	}
	return u
}
