package shapecast_test

import (
	"reflect"
	"strings"
	"testing"

	sc "github.com/reoring/shapecast"
)

func TestObject_Cast(t *testing.T) {
	s := sc.Object(sc.Shape{"foo": sc.Number})

	in := map[string]any{"foo": 5.0}
	v, ok := sc.Cast(s, in)
	if !ok {
		t.Fatalf("cast ok expected")
	}
	if !reflect.DeepEqual(v, map[string]any{"foo": 5.0}) {
		t.Fatalf("unexpected value: %#v", v)
	}

	if _, ok := sc.Cast(s, "foo"); ok {
		t.Fatalf("expected string to be rejected")
	}
}

func TestObject_RejectsNullAndArrays(t *testing.T) {
	s := sc.Object(sc.Shape{})
	if _, ok := sc.Cast(s, nil); ok {
		t.Fatalf("expected null to be rejected")
	}
	if _, ok := sc.Cast(s, []any{}); ok {
		t.Fatalf("expected array to be rejected")
	}
	if _, ok := sc.Cast(s, map[string]string{"a": "b"}); ok {
		t.Fatalf("expected map[string]string to be rejected")
	}
	// empty shape accepts any object
	if _, ok := sc.Cast(s, map[string]any{"anything": []any{1.0}}); !ok {
		t.Fatalf("expected empty shape to accept any object")
	}
}

func TestObject_RecursivelyChecksFields(t *testing.T) {
	s := sc.Object(sc.Shape{"foo": sc.Object(sc.Shape{"bar": sc.Number})})

	v, ok := sc.Cast(s, map[string]any{"foo": map[string]any{"bar": 5.0}})
	if !ok {
		t.Fatalf("cast ok expected")
	}
	inner, _ := v["foo"].(map[string]any)
	if inner["bar"] != 5.0 {
		t.Fatalf("unexpected value: %#v", v)
	}

	if _, ok := sc.Cast(s, map[string]any{"foo": map[string]any{"bar": "foo"}}); ok {
		t.Fatalf("expected nested type mismatch to be rejected")
	}
}

func TestObject_MissingFields(t *testing.T) {
	s := sc.Object(sc.Shape{"foo": sc.Number, "bar": sc.Number})
	if _, ok := sc.Cast(s, map[string]any{"foo": 5.0}); ok {
		t.Fatalf("expected missing field to be rejected")
	}
	// a present null is not a missing field, but null is not a number
	if _, ok := sc.Cast(s, map[string]any{"foo": 5.0, "bar": nil}); ok {
		t.Fatalf("expected null field value to be rejected")
	}
}

func TestObject_AllowsExtraFields(t *testing.T) {
	s := sc.Object(sc.Shape{"foo": sc.Number})
	in := map[string]any{"foo": 5.0, "bar": 6.0}
	v, ok := sc.Cast(s, in)
	if !ok {
		t.Fatalf("expected extra fields to be allowed")
	}
	if !reflect.DeepEqual(v, map[string]any{"foo": 5.0, "bar": 6.0}) {
		t.Fatalf("extra fields must be kept: %#v", v)
	}
}

func TestObject_DeepNesting(t *testing.T) {
	const depth = 64
	var s sc.AnySpec = sc.String
	var in any = "leaf"
	for i := 0; i < depth; i++ {
		s = sc.Object(sc.Shape{"next": s})
		in = map[string]any{"next": in}
	}
	if !sc.Is(s, in) {
		t.Fatalf("expected %d-level nesting to conform", depth)
	}
}

func TestObject_ShapeIsCopied(t *testing.T) {
	shape := sc.Shape{"foo": sc.Number}
	s := sc.Object(shape)
	shape["bar"] = sc.String
	if !sc.Is(s, map[string]any{"foo": 1.0}) {
		t.Fatalf("mutating the shape after construction must not change the spec")
	}
}

func TestObject_Sample(t *testing.T) {
	s := sc.Object(sc.Shape{
		"n":    sc.Number,
		"s":    sc.String,
		"tags": sc.Array(sc.String),
	})
	want := map[string]any{"n": 42.0, "s": "foo", "tags": []any{"foo"}}
	if !reflect.DeepEqual(s.Sample(), want) {
		t.Fatalf("unexpected sample: %#v", s.Sample())
	}
	if !s.Conforms(s.Sample()) {
		t.Fatalf("object sample must conform")
	}
}

func TestObject_NilFieldSpecPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for nil field spec")
		}
		if msg, _ := r.(string); !strings.Contains(msg, `"foo"`) {
			t.Fatalf("panic should name the field, got %v", r)
		}
	}()
	_ = sc.Object(sc.Shape{"foo": nil})
}

func TestArray_Cast(t *testing.T) {
	s := sc.Array(sc.String)

	v, ok := sc.Cast(s, []any{"bar"})
	if !ok || len(v) != 1 || v[0] != "bar" {
		t.Fatalf("cast ok expected, got v=%v ok=%v", v, ok)
	}
	if _, ok := sc.Cast(s, map[string]any{"foo": "bar"}); ok {
		t.Fatalf("expected object to be rejected")
	}
	if _, ok := sc.Cast(s, []any{"foo", 4.0, "bar"}); ok {
		t.Fatalf("expected a single bad element to reject the array")
	}
	if _, ok := sc.Cast(s, []string{"a"}); ok {
		t.Fatalf("expected []string to be rejected")
	}
	if _, ok := sc.Cast(s, nil); ok {
		t.Fatalf("expected null to be rejected")
	}
}

func TestArray_EmptyConforms(t *testing.T) {
	s := sc.Array(sc.Number)
	if _, ok := sc.Cast(s, []any{}); !ok {
		t.Fatalf("expected empty array to conform")
	}
	var nilSlice []any
	if _, ok := sc.Cast(s, nilSlice); !ok {
		t.Fatalf("expected typed nil slice to conform as an empty array")
	}
}

func TestArray_OfObjects(t *testing.T) {
	s := sc.Array(sc.Object(sc.Shape{"id": sc.Number}))
	ok := sc.Is(s, []any{
		map[string]any{"id": 1.0},
		map[string]any{"id": 2.0, "extra": true},
	})
	if !ok {
		t.Fatalf("expected array of objects to conform")
	}
	if sc.Is(s, []any{map[string]any{"id": 1.0}, map[string]any{}}) {
		t.Fatalf("expected element missing a field to be rejected")
	}
}

func TestArray_Sample(t *testing.T) {
	s := sc.Array(sc.Array(sc.Boolean))
	want := []any{[]any{true}}
	if !reflect.DeepEqual(s.Sample(), want) {
		t.Fatalf("unexpected sample: %#v", s.Sample())
	}
}
