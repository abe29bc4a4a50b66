// Package propdef provides:
//
//   - Descriptor synthesis from encoded names (base$tag$tag...) via Synthesize
//   - A small dynamic object model (Object) whose properties carry full descriptors
//   - A pure compiler from declarations to reusable descriptor batches (Compile)
//   - Per-instance lazy properties (bind / Memoize)
//   - A stable error model via Issues (path, code, message)
//
// Tags: get, set, value, enum, write, config, bind. Within one name at most one
// of get/set/value may appear; bind turns the value into a getter computed once
// per instance.
//
// Design policy:
//   - Keep only public APIs in the root package; the builder DSL lives under dsl/,
//     manifest decoding under manifest/, and the CLI under cmd/propdef.
//   - Validate everything before mutating anything.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	obj := propdef.FromEntries(
//	    propdef.Entry{Name: "name$value$enum", Value: "widget"},
//	    propdef.Entry{Name: "size$get$enum", Value: func(this *propdef.Object) any { return 3 }},
//	)
//	obj, err := propdef.Synthesize(obj, nil)
//
//	batch, err := propdef.CompileEntries(entries) // reusable across objects
//	err = other.DefineProperties(batch)
package propdef
