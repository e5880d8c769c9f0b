package descriptor

import (
	"fmt"
	"strings"

	sc "github.com/reoring/shapecast"
	"github.com/reoring/shapecast/decode"
	"github.com/reoring/shapecast/i18n"
)

// Options controls how IR is compiled into specs.
type Options struct {
	// NumberMode selects the spec behind "number": shapecast.Number for
	// NumberFloat64, shapecast.NumberJSON for NumberJSONNumber. It should
	// match the mode used to decode the values being cast.
	NumberMode decode.NumberMode
}

// Build compiles IR into a spec. It returns an error for node types or
// primitive names Parse never produces.
func Build(n Node, opt Options) (sc.AnySpec, error) {
	switch t := n.(type) {
	case *Primitive:
		return primitive(t.Name, opt)
	case *Array:
		item, err := Build(t.Item, opt)
		if err != nil {
			return nil, err
		}
		return sc.Array(item), nil
	case *Object:
		shape := make(sc.Shape, len(t.Fields))
		for _, f := range t.Fields {
			fs, err := Build(f.Node, opt)
			if err != nil {
				return nil, err
			}
			shape[f.Name] = fs
		}
		return sc.Object(shape), nil
	case *Union:
		variants := make([]sc.AnySpec, 0, len(t.Variants))
		for _, v := range t.Variants {
			vs, err := Build(v, opt)
			if err != nil {
				return nil, err
			}
			variants = append(variants, vs)
		}
		return sc.UnionN(variants...), nil
	default:
		return nil, fmt.Errorf("descriptor: unsupported node %T", n)
	}
}

func primitive(name string, opt Options) (sc.AnySpec, error) {
	switch name {
	case "number":
		if opt.NumberMode == decode.NumberJSONNumber {
			return sc.NumberJSON, nil
		}
		return sc.Number, nil
	case "number_json":
		return sc.NumberJSON, nil
	case "string":
		return sc.String, nil
	case "boolean":
		return sc.Boolean, nil
	default:
		return nil, fmt.Errorf("descriptor: unknown primitive %q", name)
	}
}

// Load decodes data in the given format and compiles the single descriptor
// document it holds.
func Load(data []byte, f decode.Format, opt Options) (sc.AnySpec, error) {
	docs, err := decode.Documents(data, f, decode.NumberFloat64)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	if f == decode.FormatJSON {
		if iss := duplicateKeyIssues(data); len(iss) > 0 {
			return nil, iss
		}
	}
	if len(docs) != 1 {
		return nil, Issues{pathRef{}.issue(CodeInvalidDescriptor, nil)}
	}
	n, err := Parse(docs[0])
	if err != nil {
		return nil, err
	}
	return Build(n, opt)
}

// duplicateKeyIssues reports members a JSON decoder would have silently
// overwritten. YAML decoding already rejects them.
func duplicateKeyIssues(data []byte) Issues {
	dups, _ := decode.DuplicateKeys(data)
	var iss Issues
	for _, p := range dups {
		key := p[strings.LastIndexByte(p, '/')+1:]
		iss = append(iss, Issue{Path: p, Code: CodeDuplicateKey, Message: i18n.T(CodeDuplicateKey, map[string]string{"key": key})})
	}
	return iss
}
