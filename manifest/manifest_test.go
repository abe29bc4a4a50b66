package manifest_test

import (
	"slices"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/propdef"
	"github.com/reoring/propdef/manifest"
)

func names(entries []propdef.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestParseYAML_PreservesOrder(t *testing.T) {
	data := []byte(`
zeta$value$enum: 1
alpha$value$enum$write: two
mid$get$enum:
  nested: [1, 2]
`)
	entries, err := manifest.ParseYAML(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := names(entries); !slices.Equal(got, []string{"zeta$value$enum", "alpha$value$enum$write", "mid$get$enum"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if entries[0].Value != int64(1) || entries[1].Value != "two" {
		t.Fatalf("unexpected values %v %v", entries[0].Value, entries[1].Value)
	}
	get, ok := entries[2].Value.(propdef.Getter)
	if !ok {
		t.Fatalf("get entries must become getters, got %T", entries[2].Value)
	}
	m, ok := get(nil).(map[string]any)
	if !ok || len(m["nested"].([]any)) != 2 {
		t.Fatalf("unexpected getter result %v", get(nil))
	}
}

func TestParseYAML_Synthesize(t *testing.T) {
	entries, err := manifest.ParseYAML([]byte("name$value$enum: widget\nlabel$bind$enum: fixed\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	obj, err := propdef.Synthesize(propdef.NewObject(), manifest.Object(entries))
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if v, _ := obj.Get("name"); v != "widget" {
		t.Fatalf("name=%v", v)
	}
	if v, _ := obj.Get("label"); v != "fixed" {
		t.Fatalf("label=%v", v)
	}
	if !obj.Computed("label") {
		t.Fatalf("bind entries must be memoized")
	}
}

func TestParseYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"not a mapping": "- a\n- b\n",
		"setter":        "x$set: 1\n",
		"duplicate":     "a$value: 1\na$value: 2\n",
		"nested dup":    "a$value:\n  k: 1\n  k: 2\n",
		"syntax":        "a: [1, 2\n",
		"two documents": "a$value: 1\n---\nb$value: 2\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := manifest.ParseYAML([]byte(doc))
			if _, ok := propdef.AsIssues(err); !ok {
				t.Fatalf("expected Issues, got %v", err)
			}
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	entries, err := manifest.ParseYAML(nil)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected no entries, got %v %v", entries, err)
	}
}

func TestParseJSON_PreservesOrder(t *testing.T) {
	data := []byte(`{"b$value$enum": 1.5, "a$value": {"k": [true, null]}, "c$get": "g"}`)
	entries, err := manifest.ParseJSON(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := names(entries); !slices.Equal(got, []string{"b$value$enum", "a$value", "c$get"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if n, ok := entries[0].Value.(json.Number); !ok || n.String() != "1.5" {
		t.Fatalf("expected json.Number, got %T %v", entries[0].Value, entries[0].Value)
	}
	m := entries[1].Value.(map[string]any)
	if arr := m["k"].([]any); len(arr) != 2 || arr[0] != true || arr[1] != nil {
		t.Fatalf("unexpected nested value %v", m)
	}
	if _, ok := entries[2].Value.(propdef.Getter); !ok {
		t.Fatalf("get entries must become getters")
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := map[string]string{
		"array":     `[1, 2]`,
		"setter":    `{"x$set": 1}`,
		"duplicate": `{"a": 1, "a": 2}`,
		"truncated": `{"a": 1`,
		"trailing":  `{"a": 1} x`,
		"second":    `{"a$value": 1} {"b$value": 2}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := manifest.ParseJSON([]byte(doc))
			if _, ok := propdef.AsIssues(err); !ok {
				t.Fatalf("expected Issues, got %v", err)
			}
		})
	}
}

func TestParseJSON_CustomDelimiter(t *testing.T) {
	entries, err := manifest.ParseJSON([]byte(`{"a.get": 1}`), propdef.WithDelimiter('.'))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := entries[0].Value.(propdef.Getter); !ok {
		t.Fatalf("delimiter option must be honored")
	}
}
