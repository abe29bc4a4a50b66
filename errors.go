package propdef

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDescriptorConflict = "descriptor_conflict"
	CodeInvalidAccessor    = "invalid_accessor"
	CodeUnknownTag         = "unknown_tag"
	// Object model rules
	CodeNotConfigurable = "not_configurable"
	CodeNotExtensible   = "not_extensible"
	CodeReadOnly        = "read_only"
	// Declaration sources (manifests)
	CodeParseError = "parse_error"
)

// Issue represents a single synthesis or object model error.
type Issue struct {
	Path    string // "/" + property name (encoded name when the issue concerns one).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"base":"foo", "tags":"get|value"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. descriptor_conflict at /foo$get$value
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes of the issues to errors.Is/As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a descriptor conflict.
func IsConflict(err error) bool { return HasCode(err, CodeDescriptorConflict) }
