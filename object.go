package propdef

import (
	"slices"
	"sort"
)

// Object is a dynamic object whose own properties carry full descriptors.
// It is not safe for concurrent mutation.
type Object struct {
	names  []string // insertion order
	props  map[string]*Descriptor
	cells  map[string]*cell
	sealed bool // true once PreventExtensions was called
}

// NewObject returns an empty, extensible object.
func NewObject() *Object {
	return &Object{props: map[string]*Descriptor{}}
}

// FromEntries builds an object holding one plain property per entry, in
// order. Later entries overwrite earlier ones with the same name.
func FromEntries(entries ...Entry) *Object {
	o := NewObject()
	for _, e := range entries {
		o.put(e.Name, &Descriptor{Value: e.Value, Enumerable: true, Writable: true, Configurable: true})
	}
	return o
}

// FromMap builds an object from m with names in sorted order.
func FromMap(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := NewObject()
	for _, k := range keys {
		o.put(k, &Descriptor{Value: m[k], Enumerable: true, Writable: true, Configurable: true})
	}
	return o
}

func (o *Object) put(name string, d *Descriptor) {
	if _, ok := o.props[name]; !ok {
		o.names = append(o.names, name)
	}
	o.props[name] = d
}

// Len returns the number of own properties.
func (o *Object) Len() int { return len(o.names) }

// Has reports whether name is an own property.
func (o *Object) Has(name string) bool {
	_, ok := o.props[name]
	return ok
}

// OwnNames returns all own property names in insertion order.
func (o *Object) OwnNames() []string { return slices.Clone(o.names) }

// Keys returns the enumerable own property names in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.names))
	for _, n := range o.names {
		if o.props[n].Enumerable {
			keys = append(keys, n)
		}
	}
	return keys
}

// Descriptor returns a copy of the descriptor of an own property.
func (o *Object) Descriptor(name string) (Descriptor, bool) {
	d, ok := o.props[name]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// Get reads a property. Getters run with o as this. An accessor without a
// getter reads as nil.
func (o *Object) Get(name string) (any, bool) {
	d, ok := o.props[name]
	if !ok {
		return nil, false
	}
	if d.IsAccessor() {
		if d.Get == nil {
			return nil, true
		}
		return d.Get(o), true
	}
	return d.Value, true
}

// Set assigns a property. Absent names become enumerable, writable,
// configurable value properties.
func (o *Object) Set(name string, v any) error {
	d, ok := o.props[name]
	if !ok {
		if o.sealed {
			return Issues{IssueAt(name, CodeNotExtensible, name, nil)}
		}
		o.put(name, &Descriptor{Value: v, Enumerable: true, Writable: true, Configurable: true})
		return nil
	}
	if d.IsAccessor() {
		if d.Set == nil {
			return Issues{IssueAt(name, CodeReadOnly, name, map[string]any{"reason": "no setter"})}
		}
		d.Set(o, v)
		return nil
	}
	if !d.Writable {
		return Issues{IssueAt(name, CodeReadOnly, name, nil)}
	}
	d.Value = v
	return nil
}

// Delete removes a configurable own property. It reports false when the
// property exists but is not configurable; deleting an absent name succeeds.
func (o *Object) Delete(name string) bool {
	d, ok := o.props[name]
	if !ok {
		return true
	}
	if !d.Configurable {
		return false
	}
	delete(o.props, name)
	o.names = slices.DeleteFunc(o.names, func(n string) bool { return n == name })
	return true
}

// PreventExtensions forbids adding new properties. Existing ones stay as they are.
func (o *Object) PreventExtensions() { o.sealed = true }

// IsExtensible reports whether new properties may be added.
func (o *Object) IsExtensible() bool { return !o.sealed }

// DefineProperty defines a single property; see DefineProperties.
func (o *Object) DefineProperty(name string, d Descriptor) error {
	return o.DefineProperties(Batch{names: []string{name}, descs: map[string]Descriptor{name: d}})
}

// DefineProperties applies every descriptor of b. All descriptors are
// checked first; when any of them cannot be defined nothing is applied.
// A redefinition replaces the whole descriptor.
func (o *Object) DefineProperties(b Batch) error {
	if iss := o.checkDefine(b, nil); len(iss) > 0 {
		return iss
	}
	for _, name := range b.names {
		d := b.descs[name]
		o.put(name, &d)
	}
	return nil
}

// checkDefine validates b against o as it would be after the names in
// removed were deleted.
func (o *Object) checkDefine(b Batch, removed map[string]bool) Issues {
	var iss Issues
	for _, name := range b.names {
		d := b.descs[name]
		if d.IsAccessor() && d.Writable {
			iss = AppendIssues(iss, IssueAt(name, CodeInvalidAccessor, "accessor cannot be writable", nil))
			continue
		}
		cur, ok := o.props[name]
		if !ok || removed[name] {
			if o.sealed {
				iss = AppendIssues(iss, IssueAt(name, CodeNotExtensible, name, nil))
			}
			continue
		}
		if !cur.Configurable {
			iss = AppendIssues(iss, IssueAt(name, CodeNotConfigurable, name, nil))
		}
	}
	return iss
}
