package propdef

import (
	"strings"
)

// Synthesize materializes properties declared by encoded names.
//
// With a nil source, or source == target, it runs in attach mode: only own
// names of target containing the delimiter are processed and plain names are
// left alone. With a distinct source it runs in force mode: every enumerable
// own name of source is processed, delimited or not.
//
// Processed names are deleted from source, and from target when the two
// differ. The resulting descriptors are then defined on target in one batch.
// When nothing was processed target is returned untouched.
//
// All checks run before the first mutation: on error neither object has
// been modified and the returned error is Issues.
//
// Synthesize panics if target is nil.
func Synthesize(target, source *Object, opts ...Option) (*Object, error) {
	if target == nil {
		panic("propdef.Synthesize: target must not be nil")
	}
	o := ResolveOptions(opts...)
	attach := source == nil || source == target
	if source == nil {
		source = target
	}
	mode := "force"
	if attach {
		mode = "attach"
	}
	log := o.Logger.With().Str("mode", mode).Logger()

	var names []string
	if attach {
		for _, n := range source.OwnNames() {
			if strings.ContainsRune(n, o.Delimiter) {
				names = append(names, n)
			}
		}
	} else {
		names = source.Keys()
	}
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		v, _ := source.Get(n)
		entries = append(entries, Entry{Name: n, Value: v})
	}

	decls, iss := parseEntries(entries, o)
	if len(iss) > 0 {
		log.Debug().Err(iss).Msg("synthesis rejected")
		return target, iss
	}
	if len(decls) == 0 {
		log.Debug().Int("candidates", len(entries)).Msg("nothing to synthesize")
		return target, nil
	}
	batch, err := Compile(decls, opts...)
	if err != nil {
		log.Debug().Err(err).Msg("synthesis rejected")
		return target, err
	}

	consumed := make(map[string]bool, len(decls))
	for _, dc := range decls {
		consumed[dc.Raw] = true
	}
	if iss := checkCleanup(target, source, decls, attach, o.FailFast); len(iss) > 0 {
		log.Debug().Err(iss).Msg("synthesis rejected")
		return target, iss
	}
	if iss := target.checkDefine(batch, consumed); len(iss) > 0 {
		log.Debug().Err(iss).Msg("synthesis rejected")
		return target, iss
	}

	for _, dc := range decls {
		source.Delete(dc.Raw)
		if !attach {
			target.Delete(dc.Raw)
		}
	}
	if err := target.DefineProperties(batch); err != nil {
		return target, err
	}

	if e := log.Debug(); e.Enabled() {
		for _, name := range batch.names {
			d := batch.descs[name]
			log.Debug().
				Str("name", name).
				Stringer("kind", d.Kind()).
				Bool("enumerable", d.Enumerable).
				Bool("writable", d.Writable).
				Bool("configurable", d.Configurable).
				Msg("property defined")
		}
		e.Int("candidates", len(entries)).Int("defined", batch.Len()).Msg("synthesized")
	}
	return target, nil
}

// checkCleanup verifies that every processed encoded name can be deleted.
func checkCleanup(target, source *Object, decls []Decl, attach, failFast bool) Issues {
	var iss Issues
	for _, dc := range decls {
		if !deletable(source, dc.Raw) || (!attach && !deletable(target, dc.Raw)) {
			iss = AppendIssues(iss, IssueAt(dc.Raw, CodeNotConfigurable, dc.Raw, nil))
			if failFast {
				break
			}
		}
	}
	return iss
}

func deletable(o *Object, name string) bool {
	d, ok := o.props[name]
	return !ok || d.Configurable
}
