package shapecast_test

import (
	"reflect"
	"sync"
	"testing"

	sc "github.com/reoring/shapecast"
)

func TestCast_ReturnsInputWithoutCopy(t *testing.T) {
	s := sc.Object(sc.Shape{"list": sc.Array(sc.Number)})
	list := []any{1.0, 2.0}
	in := map[string]any{"list": list, "extra": "kept"}

	v, ok := sc.Cast(s, in)
	if !ok {
		t.Fatalf("cast ok expected")
	}
	// same map: a write through the result is visible through the input
	v["marker"] = true
	if in["marker"] != true {
		t.Fatalf("cast result must share storage with the input")
	}
	got, _ := v["list"].([]any)
	if len(got) == 0 || &got[0] != &list[0] {
		t.Fatalf("nested slices must not be copied")
	}
}

func TestCast_Idempotent(t *testing.T) {
	s := sc.Object(sc.Shape{"a": sc.Object(sc.Shape{"b": sc.Number}), "c": sc.Array(sc.String)})
	in := map[string]any{"a": map[string]any{"b": 5.0}, "c": []any{"x"}, "d": 1.0}
	snapshot := map[string]any{"a": map[string]any{"b": 5.0}, "c": []any{"x"}, "d": 1.0}

	first, ok := sc.Cast(s, in)
	if !ok {
		t.Fatalf("first cast failed")
	}
	for i := 0; i < 3; i++ {
		again, ok := sc.Cast(s, first)
		if !ok {
			t.Fatalf("re-cast %d failed", i)
		}
		if !reflect.DeepEqual(again, snapshot) {
			t.Fatalf("re-cast %d changed the value: %#v", i, again)
		}
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Fatalf("cast mutated its input: %#v", in)
	}
}

func TestCast_ZeroSpecConformsToNothing(t *testing.T) {
	var s sc.Spec[string]
	if _, ok := sc.Cast(s, "x"); ok {
		t.Fatalf("zero spec must not accept values")
	}
	if sc.Is(nil, "x") {
		t.Fatalf("Is with a nil spec must report false")
	}
}

func TestCast_CustomSpec(t *testing.T) {
	positive := sc.New(1.0, func(v any) bool {
		f, ok := v.(float64)
		return ok && f > 0
	})
	if v, ok := sc.Cast(positive, 3.0); !ok || v != 3.0 {
		t.Fatalf("expected 3 to conform, got v=%v ok=%v", v, ok)
	}
	if _, ok := sc.Cast(positive, -1.0); ok {
		t.Fatalf("expected -1 to be rejected")
	}
	// custom specs compose like built-in ones
	s := sc.Object(sc.Shape{"qty": positive})
	if sc.Is(s, map[string]any{"qty": 0.0}) {
		t.Fatalf("expected qty=0 to be rejected")
	}
	if s.Sample()["qty"] != 1.0 {
		t.Fatalf("expected custom sample in composite sample, got %#v", s.Sample())
	}
}

func TestCast_PredicateWiderThanType(t *testing.T) {
	// the predicate accepts anything, but only strings can be relabeled
	loose := sc.New("", func(any) bool { return true })
	if _, ok := sc.Cast(loose, 5.0); ok {
		t.Fatalf("expected cast to fail when T cannot hold the value")
	}
	if _, ok := sc.Cast(loose, nil); ok {
		t.Fatalf("expected nil to fail for a non-interface T")
	}
	if v, ok := sc.Cast(loose, "s"); !ok || v != "s" {
		t.Fatalf("expected string to pass, got v=%v ok=%v", v, ok)
	}

	anything := sc.New[any](nil, func(any) bool { return true })
	if v, ok := sc.Cast(anything, nil); !ok || v != nil {
		t.Fatalf("expected nil to pass for an interface T, got v=%v ok=%v", v, ok)
	}
}

func TestCast_NeverPanicsOnOddInputs(t *testing.T) {
	s := sc.Object(sc.Shape{
		"a": sc.Array(sc.Union(sc.Number, sc.Object(sc.Shape{}))),
		"b": sc.Boolean,
	})
	type custom struct{ A int }
	var nilMap map[string]any
	inputs := []any{
		nil, 0, int64(1), uint8(2), float32(1), complex(1, 2), custom{A: 1}, &custom{},
		make(chan int), func() {}, nilMap, []any(nil), map[string]any{"a": nil, "b": true},
		map[string]any{"a": []any{nil}, "b": true}, map[any]any{"a": 1},
	}
	for _, in := range inputs {
		if _, ok := sc.Cast(s, in); ok {
			t.Fatalf("unexpected success for %#v", in)
		}
	}
}

func TestCast_ConcurrentUse(t *testing.T) {
	s := sc.Object(sc.Shape{
		"id":   sc.Union(sc.Number, sc.String),
		"tags": sc.Array(sc.String),
	})
	good := map[string]any{"id": 1.0, "tags": []any{"a", "b"}}
	bad := map[string]any{"id": 1.0, "tags": []any{"a", 2.0}}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, ok := sc.Cast(s, good); !ok {
					errs <- "good input rejected"
					return
				}
				if _, ok := sc.Cast(s, bad); ok {
					errs <- "bad input accepted"
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatal(e)
	}
}

func TestSampleOf(t *testing.T) {
	if sc.SampleOf(nil) != nil {
		t.Fatalf("nil spec must have nil sample")
	}
	if sc.SampleOf(sc.String) != "foo" {
		t.Fatalf("unexpected string sample %#v", sc.SampleOf(sc.String))
	}
	u := sc.Union(sc.Boolean, sc.Number)
	if sc.SampleOf(u) != true {
		t.Fatalf("union sample must come from the first branch, got %#v", sc.SampleOf(u))
	}
}
