// Package manifest reads encoded-name declarations from YAML or JSON
// documents.
//
// A manifest is one document holding a single mapping whose keys are encoded names and whose
// values are literals:
//
//	name$value$enum: widget
//	size$value$enum$write: 3
//	label$get$enum: fixed label
//
// Key order is preserved. Entries tagged get or bind become getters that
// return their literal; entries tagged set are rejected because a manifest
// cannot carry code.
package manifest

import (
	"github.com/reoring/propdef"
)

// Constant returns a getter that always yields v.
func Constant(v any) propdef.Getter {
	return func(*propdef.Object) any { return v }
}

// Object builds a force-mode source object from entries, ready for
// propdef.Synthesize.
func Object(entries []propdef.Entry) *propdef.Object {
	return propdef.FromEntries(entries...)
}

type rawEntry struct {
	key   string
	value any
	line  int // 0 when unknown
}

// finish converts raw key/value pairs into entries, turning get/bind literals
// into constant getters.
func finish(raw []rawEntry, opts []propdef.Option) ([]propdef.Entry, error) {
	o := propdef.ResolveOptions(opts...)
	entries := make([]propdef.Entry, 0, len(raw))
	seen := make(map[string]int, len(raw))
	var iss propdef.Issues
	for _, r := range raw {
		if first, dup := seen[r.key]; dup {
			it := propdef.IssueAt(r.key, propdef.CodeParseError, "duplicate key", map[string]any{"line": r.line, "first": first})
			iss = propdef.AppendIssues(iss, it)
			continue
		}
		seen[r.key] = r.line
		v := r.value
		if n, ok := propdef.ParseName(r.key, o.Delimiter); ok {
			switch {
			case n.Tags.Has(propdef.TagSet):
				iss = propdef.AppendIssues(iss, propdef.IssueAt(r.key, propdef.CodeInvalidAccessor, "setters cannot be declared in a manifest", nil))
				continue
			case n.Tags.Has(propdef.TagGet), n.Tags.Has(propdef.TagBind):
				v = Constant(v)
			}
		}
		entries = append(entries, propdef.Entry{Name: r.key, Value: v})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return entries, nil
}

func parseIssue(err error, hint string) propdef.Issues {
	it := propdef.IssueAt("", propdef.CodeParseError, err.Error(), nil)
	it.Cause = err
	it.Hint = hint
	return propdef.Issues{it}
}
