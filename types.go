package propdef

// Getter computes a property value for the receiving object.
type Getter func(this *Object) any

// Setter stores a property value on the receiving object.
type Setter func(this *Object, v any)

// Kind distinguishes value descriptors from accessor descriptors.
type Kind int

const (
	KindValue    Kind = iota // Stored value plus writability.
	KindAccessor             // Getter and/or setter.
)

func (k Kind) String() string {
	if k == KindAccessor {
		return "accessor"
	}
	return "value"
}

// Descriptor fully describes one property.
type Descriptor struct {
	Value        any
	Get          Getter
	Set          Setter
	Enumerable   bool
	Writable     bool // Meaningful for value descriptors only.
	Configurable bool
}

// Kind reports whether d is an accessor or a value descriptor.
func (d Descriptor) Kind() Kind {
	if d.IsAccessor() {
		return KindAccessor
	}
	return KindValue
}

// IsAccessor reports whether d has a getter or a setter.
func (d Descriptor) IsAccessor() bool { return d.Get != nil || d.Set != nil }

// Entry is an encoded (name, value) pair.
type Entry struct {
	Name  string
	Value any
}

// Decl declares one contribution to the descriptor of Name.
// Encoded entries parse into Decls; the dsl package builds them directly.
type Decl struct {
	Name  string
	Tags  Tag
	Value any
	// Raw is the encoded name the Decl came from, used in issue paths.
	Raw string
}

func (d Decl) path() string {
	if d.Raw != "" {
		return d.Raw
	}
	return d.Name
}
