package dsl

import (
	"slices"

	"github.com/reoring/propdef"
)

// RecordKind says what a Record's implementation is.
type RecordKind int

const (
	RecordValue    RecordKind = iota // Impl is the stored value.
	RecordGet                        // Impl is a getter.
	RecordSet                        // Impl is a setter.
	RecordAccessor                   // Get and Set hold a getter/setter pair.
	RecordLazy                       // Impl is computed once per instance.
	RecordEncoded                    // Name is an encoded name; Impl is its value.
)

// Record is one row of a declaration table.
type Record struct {
	Name         string
	Kind         RecordKind
	Enumerable   bool
	Writable     bool
	Configurable bool
	Impl         any
	Get          any // RecordAccessor only
	Set          any // RecordAccessor only
}

type classBuilder struct {
	records []Record
}

type propStep struct {
	b   *classBuilder
	idx int
}

// Class creates an empty declaration table builder.
func Class() *classBuilder { return &classBuilder{} }

func (b *classBuilder) add(r Record) *propStep {
	b.records = append(b.records, r)
	return &propStep{b: b, idx: len(b.records) - 1}
}

// Value declares a value property.
func (b *classBuilder) Value(name string, v any) *propStep {
	return b.add(Record{Name: name, Kind: RecordValue, Impl: v})
}

// Getter declares the getter of name. It may be combined with Setter on the
// same name.
func (b *classBuilder) Getter(name string, fn propdef.Getter) *propStep {
	return b.add(Record{Name: name, Kind: RecordGet, Impl: fn})
}

// Setter declares the setter of name.
func (b *classBuilder) Setter(name string, fn propdef.Setter) *propStep {
	return b.add(Record{Name: name, Kind: RecordSet, Impl: fn})
}

// Accessor declares a getter/setter pair; either may be nil.
func (b *classBuilder) Accessor(name string, get propdef.Getter, set propdef.Setter) *propStep {
	r := Record{Name: name, Kind: RecordAccessor}
	if get != nil {
		r.Get = get
	}
	if set != nil {
		r.Set = set
	}
	return b.add(r)
}

// Lazy declares a read-only property computed by fn on first read, once per
// instance.
func (b *classBuilder) Lazy(name string, fn propdef.Getter) *propStep {
	return b.add(Record{Name: name, Kind: RecordLazy, Impl: fn})
}

// Encoded adds an entry written in the base$tag$tag naming convention.
func (b *classBuilder) Encoded(name string, v any) *classBuilder {
	b.add(Record{Name: name, Kind: RecordEncoded, Impl: v})
	return b
}

// Records returns a copy of the declaration table.
func (b *classBuilder) Records() []Record { return slices.Clone(b.records) }

// Build compiles the table into a Batch. The builder is not modified and may
// be built again.
func (b *classBuilder) Build(opts ...propdef.Option) (propdef.Batch, error) {
	decls, err := Decls(b.records, opts...)
	if err != nil {
		return propdef.Batch{}, err
	}
	return propdef.Compile(decls, opts...)
}

// MustBuild is like Build but panics on error.
func (b *classBuilder) MustBuild(opts ...propdef.Option) propdef.Batch {
	batch, err := b.Build(opts...)
	if err != nil {
		panic(err)
	}
	return batch
}

// Apply builds the table and defines the result on target.
func (b *classBuilder) Apply(target *propdef.Object, opts ...propdef.Option) error {
	batch, err := b.Build(opts...)
	if err != nil {
		return err
	}
	return target.DefineProperties(batch)
}

// Enumerable marks the current property enumerable.
func (p *propStep) Enumerable() *propStep { p.b.records[p.idx].Enumerable = true; return p }

// Writable marks the current property writable.
func (p *propStep) Writable() *propStep { p.b.records[p.idx].Writable = true; return p }

// Configurable marks the current property configurable.
func (p *propStep) Configurable() *propStep { p.b.records[p.idx].Configurable = true; return p }

func (p *propStep) Value(name string, v any) *propStep { return p.b.Value(name, v) }
func (p *propStep) Getter(name string, fn propdef.Getter) *propStep {
	return p.b.Getter(name, fn)
}
func (p *propStep) Setter(name string, fn propdef.Setter) *propStep {
	return p.b.Setter(name, fn)
}
func (p *propStep) Accessor(name string, get propdef.Getter, set propdef.Setter) *propStep {
	return p.b.Accessor(name, get, set)
}
func (p *propStep) Lazy(name string, fn propdef.Getter) *propStep { return p.b.Lazy(name, fn) }
func (p *propStep) Encoded(name string, v any) *classBuilder      { return p.b.Encoded(name, v) }
func (p *propStep) Records() []Record                             { return p.b.Records() }
func (p *propStep) Build(opts ...propdef.Option) (propdef.Batch, error) {
	return p.b.Build(opts...)
}
func (p *propStep) MustBuild(opts ...propdef.Option) propdef.Batch { return p.b.MustBuild(opts...) }
func (p *propStep) Apply(target *propdef.Object, opts ...propdef.Option) error {
	return p.b.Apply(target, opts...)
}

// Decls converts a declaration table into compiler input. Encoded records are
// parsed with the configured delimiter.
func Decls(records []Record, opts ...propdef.Option) ([]propdef.Decl, error) {
	o := propdef.ResolveOptions(opts...)
	decls := make([]propdef.Decl, 0, len(records))
	var iss propdef.Issues
	for _, r := range records {
		flags := flagTags(r)
		switch r.Kind {
		case RecordValue:
			decls = append(decls, propdef.Decl{Name: r.Name, Tags: propdef.TagValue | flags, Value: r.Impl})
		case RecordGet:
			decls = append(decls, propdef.Decl{Name: r.Name, Tags: propdef.TagGet | flags, Value: r.Impl})
		case RecordSet:
			decls = append(decls, propdef.Decl{Name: r.Name, Tags: propdef.TagSet | flags, Value: r.Impl})
		case RecordAccessor:
			if r.Get == nil && r.Set == nil {
				iss = propdef.AppendIssues(iss, propdef.IssueAt(r.Name, propdef.CodeInvalidAccessor, "accessor needs a getter or a setter", nil))
				continue
			}
			if r.Get != nil {
				decls = append(decls, propdef.Decl{Name: r.Name, Tags: propdef.TagGet | flags, Value: r.Get})
			}
			if r.Set != nil {
				decls = append(decls, propdef.Decl{Name: r.Name, Tags: propdef.TagSet | flags, Value: r.Set})
			}
		case RecordLazy:
			decls = append(decls, propdef.Decl{Name: r.Name, Tags: propdef.TagBind | flags, Value: r.Impl})
		case RecordEncoded:
			n, ok := propdef.ParseName(r.Name, o.Delimiter)
			if !ok {
				continue
			}
			if o.StrictTags && len(n.Unknown) > 0 {
				iss = propdef.AppendIssues(iss, propdef.IssueAt(r.Name, propdef.CodeUnknownTag, n.Unknown[0], nil))
				continue
			}
			decls = append(decls, propdef.Decl{Name: n.Base, Tags: n.Tags, Value: r.Impl, Raw: r.Name})
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return decls, nil
}

func flagTags(r Record) propdef.Tag {
	var t propdef.Tag
	if r.Enumerable {
		t |= propdef.TagEnum
	}
	if r.Writable {
		t |= propdef.TagWrite
	}
	if r.Configurable {
		t |= propdef.TagConfig
	}
	return t
}
