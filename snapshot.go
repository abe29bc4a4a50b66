package propdef

import (
	"reflect"

	json "github.com/goccy/go-json"
)

// PropertyView is a serializable view of one own property.
type PropertyView struct {
	Name         string `json:"name" yaml:"name"`
	Kind         string `json:"kind" yaml:"kind"`
	Value        any    `json:"value,omitempty" yaml:"value,omitempty"`
	Getter       bool   `json:"getter,omitempty" yaml:"getter,omitempty"`
	Setter       bool   `json:"setter,omitempty" yaml:"setter,omitempty"`
	Enumerable   bool   `json:"enumerable" yaml:"enumerable"`
	Writable     bool   `json:"writable" yaml:"writable"`
	Configurable bool   `json:"configurable" yaml:"configurable"`
}

// Snapshot describes the own properties of o in insertion order. Getters are
// not invoked; functions stored as plain values are reported without a value.
func Snapshot(o *Object) []PropertyView {
	views := make([]PropertyView, 0, o.Len())
	for _, name := range o.names {
		d := o.props[name]
		v := PropertyView{
			Name:         name,
			Kind:         d.Kind().String(),
			Getter:       d.Get != nil,
			Setter:       d.Set != nil,
			Enumerable:   d.Enumerable,
			Writable:     d.Writable,
			Configurable: d.Configurable,
		}
		if !d.IsAccessor() && !isFunc(d.Value) {
			v.Value = d.Value
		}
		views = append(views, v)
	}
	return views
}

// MarshalSnapshot encodes Snapshot(o) as JSON.
func MarshalSnapshot(o *Object) ([]byte, error) {
	return json.Marshal(Snapshot(o))
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
