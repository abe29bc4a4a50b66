package propdef

import (
	"slices"
)

// Batch is an ordered, immutable set of named descriptors ready to be
// applied with Object.DefineProperties. One Batch may be applied to any
// number of objects; lazy cells live on each object.
type Batch struct {
	names []string
	descs map[string]Descriptor
}

// Len returns the number of descriptors.
func (b Batch) Len() int { return len(b.names) }

// Names returns the property names in order of first declaration.
func (b Batch) Names() []string { return slices.Clone(b.names) }

// Descriptor returns the descriptor for name.
func (b Batch) Descriptor(name string) (Descriptor, bool) {
	d, ok := b.descs[name]
	return d, ok
}

type accum struct {
	d    Descriptor
	seen Tag // kind tags contributed so far
}

// Compile folds decls into a Batch without touching any object.
//
// Within one decl at most one of get/set/value may be given. Across the decls
// of a name, get and set combine into one accessor, but value cannot be mixed
// with either and no kind may repeat. The first decl of a name seeds the
// value; once a getter or setter exists the value is dropped.
func Compile(decls []Decl, opts ...Option) (Batch, error) {
	o := ResolveOptions(opts...)
	acc := map[string]*accum{}
	var order []string
	var iss Issues
	report := func(it Issue) bool {
		iss = AppendIssues(iss, it)
		return o.FailFast
	}

	for _, dc := range decls {
		if dc.Name == "" {
			continue
		}
		tags := dc.Tags
		if tags.kinds() > 1 {
			if report(conflictIssue(dc, tags)) {
				break
			}
			continue
		}
		value := dc.Value
		if tags.Has(TagBind) {
			if tags.Has(TagSet) {
				if report(IssueAt(dc.path(), CodeInvalidAccessor, "bind cannot be combined with set", nil)) {
					break
				}
				continue
			}
			fn, ok := asGetter(value)
			if !ok {
				if report(IssueAt(dc.path(), CodeInvalidAccessor, "bind requires a function", nil)) {
					break
				}
				continue
			}
			tags = (tags | TagGet) &^ (TagWrite | TagValue)
			value = Memoize(dc.Name, fn)
		}

		a, ok := acc[dc.Name]
		if !ok {
			a = &accum{d: Descriptor{Value: value}}
			acc[dc.Name] = a
			order = append(order, dc.Name)
		}
		if k := tags & kindTags; k != 0 {
			clash := a.seen&k != 0 ||
				(k == TagValue && a.seen&(TagGet|TagSet) != 0) ||
				(k != TagValue && a.seen&TagValue != 0)
			if clash {
				if report(conflictIssue(dc, a.seen|k)) {
					break
				}
				continue
			}
			a.seen |= k
		}

		if tags.Has(TagGet) {
			fn, ok := asGetter(value)
			if !ok {
				if report(IssueAt(dc.path(), CodeInvalidAccessor, "getter must be a function", nil)) {
					break
				}
				continue
			}
			a.d.Get = fn
		}
		if tags.Has(TagSet) {
			fn, ok := asSetter(value)
			if !ok {
				if report(IssueAt(dc.path(), CodeInvalidAccessor, "setter must be a function", nil)) {
					break
				}
				continue
			}
			a.d.Set = fn
		}
		if tags.Has(TagEnum) {
			a.d.Enumerable = true
		}
		if tags.Has(TagWrite) {
			a.d.Writable = true
		}
		if tags.Has(TagConfig) {
			a.d.Configurable = true
		}
		if a.d.IsAccessor() {
			a.d.Value = nil
		}
	}

	if len(iss) == 0 || !o.FailFast {
		for _, name := range order {
			if d := acc[name].d; d.IsAccessor() && d.Writable {
				iss = AppendIssues(iss, IssueAt(name, CodeInvalidAccessor, "accessor cannot be writable", nil))
			}
		}
	}
	if len(iss) > 0 {
		return Batch{}, iss
	}

	b := Batch{names: order, descs: make(map[string]Descriptor, len(order))}
	for _, name := range order {
		b.descs[name] = acc[name].d
	}
	return b, nil
}

// CompileEntries parses encoded names and compiles them. Every entry is a
// candidate, delimited or not; entries with an empty base are skipped.
func CompileEntries(entries []Entry, opts ...Option) (Batch, error) {
	decls, iss := parseEntries(entries, ResolveOptions(opts...))
	if len(iss) > 0 {
		return Batch{}, iss
	}
	return Compile(decls, opts...)
}

func parseEntries(entries []Entry, o Options) ([]Decl, Issues) {
	decls := make([]Decl, 0, len(entries))
	var iss Issues
	for _, e := range entries {
		n, ok := ParseName(e.Name, o.Delimiter)
		if !ok {
			continue
		}
		if o.StrictTags && len(n.Unknown) > 0 {
			iss = AppendIssues(iss, IssueAt(e.Name, CodeUnknownTag, n.Unknown[0], map[string]any{"unknown": n.Unknown}))
			if o.FailFast {
				return nil, iss
			}
			continue
		}
		decls = append(decls, Decl{Name: n.Base, Tags: n.Tags, Value: e.Value, Raw: e.Name})
	}
	return decls, iss
}

func conflictIssue(dc Decl, tags Tag) Issue {
	it := IssueAt(dc.path(), CodeDescriptorConflict, "", map[string]any{"base": dc.Name, "tags": (tags & kindTags).String()})
	it.Hint = "use one of get, set or value per definition"
	return it
}

func asGetter(v any) (Getter, bool) {
	switch fn := v.(type) {
	case Getter:
		return fn, fn != nil
	case func(*Object) any:
		return fn, fn != nil
	case func() any:
		if fn == nil {
			return nil, false
		}
		return func(*Object) any { return fn() }, true
	}
	return nil, false
}

func asSetter(v any) (Setter, bool) {
	switch fn := v.(type) {
	case Setter:
		return fn, fn != nil
	case func(*Object, any):
		return fn, fn != nil
	case func(any):
		if fn == nil {
			return nil, false
		}
		return func(_ *Object, v any) { fn(v) }, true
	}
	return nil, false
}
