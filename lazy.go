package propdef

// cell is a compute-once backing slot owned by one object.
type cell struct {
	computed bool
	value    any
}

// Memoize wraps fn so that it runs at most once per receiving object. The
// result is kept in the receiver's backing cell for base and returned on
// every later call, nil results included.
func Memoize(base string, fn Getter) Getter {
	return func(this *Object) any {
		return this.memo(base, fn)
	}
}

func (o *Object) memo(base string, fn Getter) any {
	if o.cells == nil {
		o.cells = map[string]*cell{}
	}
	c, ok := o.cells[base]
	if !ok {
		c = &cell{}
		o.cells[base] = c
	}
	if !c.computed {
		c.value = fn(o)
		c.computed = true
	}
	return c.value
}

// Computed reports whether the lazy cell for base has been populated.
func (o *Object) Computed(base string) bool {
	c, ok := o.cells[base]
	return ok && c.computed
}
