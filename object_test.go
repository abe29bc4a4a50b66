package propdef_test

import (
	"slices"
	"testing"

	"github.com/reoring/propdef"
)

func TestObject_SetCreatesDefaultProperty(t *testing.T) {
	o := propdef.NewObject()
	if err := o.Set("a", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	d, ok := o.Descriptor("a")
	if !ok || d.Value != 1 || !d.Enumerable || !d.Writable || !d.Configurable {
		t.Fatalf("unexpected descriptor %+v", d)
	}
	if err := o.Set("a", 2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _ := o.Get("a"); v != 2 {
		t.Fatalf("got %v", v)
	}
}

func TestObject_ReadOnly(t *testing.T) {
	o := propdef.NewObject()
	if err := o.DefineProperty("ro", propdef.Descriptor{Value: 1}); err != nil {
		t.Fatalf("define: %v", err)
	}
	if err := o.Set("ro", 2); !propdef.HasCode(err, propdef.CodeReadOnly) {
		t.Fatalf("expected read_only, got %v", err)
	}
	if err := o.DefineProperty("g", propdef.Descriptor{Get: func(*propdef.Object) any { return 1 }}); err != nil {
		t.Fatalf("define: %v", err)
	}
	if err := o.Set("g", 2); !propdef.HasCode(err, propdef.CodeReadOnly) {
		t.Fatalf("getter without setter must be read-only, got %v", err)
	}
}

func TestObject_AccessorWithoutGetterReadsNil(t *testing.T) {
	o := propdef.NewObject()
	if err := o.DefineProperty("w", propdef.Descriptor{Set: func(*propdef.Object, any) {}}); err != nil {
		t.Fatalf("define: %v", err)
	}
	v, ok := o.Get("w")
	if !ok || v != nil {
		t.Fatalf("got %v, %v", v, ok)
	}
}

func TestObject_Delete(t *testing.T) {
	o := propdef.FromEntries(propdef.Entry{Name: "a", Value: 1}, propdef.Entry{Name: "b", Value: 2})
	if err := o.DefineProperty("fixed", propdef.Descriptor{Value: 3}); err != nil {
		t.Fatalf("define: %v", err)
	}
	if !o.Delete("a") {
		t.Fatalf("configurable property must be deletable")
	}
	if o.Delete("fixed") {
		t.Fatalf("non-configurable property must not be deletable")
	}
	if !o.Delete("missing") {
		t.Fatalf("deleting an absent name succeeds")
	}
	if got := o.OwnNames(); !slices.Equal(got, []string{"b", "fixed"}) {
		t.Fatalf("unexpected names %v", got)
	}
	if got := o.Keys(); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestObject_PreventExtensions(t *testing.T) {
	o := propdef.FromEntries(propdef.Entry{Name: "a", Value: 1})
	o.PreventExtensions()
	if o.IsExtensible() {
		t.Fatalf("expected non-extensible")
	}
	if err := o.Set("b", 1); !propdef.HasCode(err, propdef.CodeNotExtensible) {
		t.Fatalf("expected not_extensible, got %v", err)
	}
	if err := o.Set("a", 2); err != nil {
		t.Fatalf("existing properties stay writable: %v", err)
	}
}

func TestObject_DefinePropertiesIsAtomic(t *testing.T) {
	o := propdef.NewObject()
	if err := o.DefineProperty("locked", propdef.Descriptor{Value: 1}); err != nil {
		t.Fatalf("define: %v", err)
	}
	batch, err := propdef.CompileEntries([]propdef.Entry{
		{Name: "fresh$value$enum", Value: 1},
		{Name: "locked$value", Value: 2},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	err = o.DefineProperties(batch)
	if !propdef.HasCode(err, propdef.CodeNotConfigurable) {
		t.Fatalf("expected not_configurable, got %v", err)
	}
	if o.Has("fresh") {
		t.Fatalf("no descriptor may be applied when one fails")
	}
}

func TestObject_RedefinitionReplacesDescriptor(t *testing.T) {
	o := propdef.FromEntries(propdef.Entry{Name: "a", Value: 1})
	if err := o.DefineProperty("a", propdef.Descriptor{Get: func(*propdef.Object) any { return "g" }}); err != nil {
		t.Fatalf("define: %v", err)
	}
	d, _ := o.Descriptor("a")
	if d.Enumerable || d.Configurable || d.Value != nil {
		t.Fatalf("expected a fresh descriptor, got %+v", d)
	}
	if v, _ := o.Get("a"); v != "g" {
		t.Fatalf("got %v", v)
	}
}

func TestFromMap_SortedNames(t *testing.T) {
	o := propdef.FromMap(map[string]any{"c": 1, "a": 2, "b": 3})
	if got := o.OwnNames(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order %v", got)
	}
}
