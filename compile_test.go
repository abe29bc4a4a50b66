package propdef_test

import (
	"slices"
	"testing"

	"github.com/reoring/propdef"
)

func TestCompile_DoesNotTouchInput(t *testing.T) {
	entries := []propdef.Entry{
		{Name: "a$value$enum", Value: 1},
		{Name: "b$get", Value: func() any { return 2 }},
	}
	before := slices.Clone(entries)
	batch, err := propdef.CompileEntries(entries)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(entries) != len(before) || entries[0] != before[0] {
		t.Fatalf("input entries changed")
	}
	if got := batch.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestCompile_BatchReusedAcrossInstances(t *testing.T) {
	calls := 0
	batch, err := propdef.Compile([]propdef.Decl{
		{Name: "id", Tags: propdef.TagBind | propdef.TagEnum, Value: propdef.Getter(func(*propdef.Object) any {
			calls++
			return calls
		})},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	a, b := propdef.NewObject(), propdef.NewObject()
	for _, o := range []*propdef.Object{a, b} {
		if err := o.DefineProperties(batch); err != nil {
			t.Fatalf("define: %v", err)
		}
	}
	va, _ := a.Get("id")
	vb, _ := b.Get("id")
	va2, _ := a.Get("id")
	if va != 1 || vb != 2 || va2 != 1 || calls != 2 {
		t.Fatalf("expected one computation per instance, got a=%v b=%v a2=%v calls=%d", va, vb, va2, calls)
	}
}

func TestCompile_EmptyNameSkipped(t *testing.T) {
	batch, err := propdef.Compile([]propdef.Decl{{Name: "", Tags: propdef.TagValue, Value: 1}})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if batch.Len() != 0 {
		t.Fatalf("expected empty batch")
	}
}

func TestCompile_ConflictIssueDetails(t *testing.T) {
	_, err := propdef.CompileEntries([]propdef.Entry{{Name: "qux$get$value", Value: 1}})
	iss, ok := propdef.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	it := iss[0]
	if it.Code != propdef.CodeDescriptorConflict || it.Path != "/qux$get$value" {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it.Params["base"] != "qux" || it.Params["tags"] != "get|value" {
		t.Fatalf("unexpected params %v", it.Params)
	}
	if it.Message == "" {
		t.Fatalf("expected a message")
	}
}

func TestCompile_BindWithSetRejected(t *testing.T) {
	_, err := propdef.CompileEntries([]propdef.Entry{{Name: "x$bind$set", Value: func() any { return 1 }}})
	if !propdef.HasCode(err, propdef.CodeInvalidAccessor) {
		t.Fatalf("expected invalid_accessor, got %v", err)
	}
}

func TestCompile_FlagsOnlyAffectTheirBase(t *testing.T) {
	batch, err := propdef.CompileEntries([]propdef.Entry{
		{Name: "a$value$config", Value: 1},
		{Name: "b$value", Value: 2},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	a, _ := batch.Descriptor("a")
	b, _ := batch.Descriptor("b")
	if !a.Configurable || b.Configurable || b.Value != 2 {
		t.Fatalf("unexpected descriptors a=%+v b=%+v", a, b)
	}
}
