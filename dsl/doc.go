// Package dsl provides a builder for property declaration tables.
//
// A table is a list of Records (name, kind, flags, implementation). Build
// compiles it into a propdef.Batch with the same rules as encoded names, so
// the two forms can be mixed freely through Encoded.
//
// Example
//
//	counter := dsl.Class().
//	    Value("count", 0).Enumerable().Writable().
//	    Getter("double", func(this *propdef.Object) any {
//	        v, _ := this.Get("count")
//	        return v.(int) * 2
//	    }).Enumerable().
//	    Lazy("id", func(*propdef.Object) any { return newID() }).
//	    MustBuild()
//
//	a, b := propdef.NewObject(), propdef.NewObject()
//	_ = a.DefineProperties(counter)
//	_ = b.DefineProperties(counter) // b gets its own "id"
//
// Builders are not safe for concurrent use; the built Batch is immutable.
package dsl
