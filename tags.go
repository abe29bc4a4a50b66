package propdef

import (
	"strings"
)

// DefaultDelimiter separates the base name from its tags in an encoded name.
const DefaultDelimiter = '$'

// Tag is a bit set over the closed tag vocabulary of encoded names.
type Tag uint8

const (
	TagGet    Tag = 1 << iota // Value is the getter.
	TagSet                    // Value is the setter.
	TagValue                  // Value is the plain value.
	TagEnum                   // Enumerable.
	TagWrite                  // Writable.
	TagConfig                 // Configurable.
	TagBind                   // Lazily computed once per instance.
)

// kindTags are the mutually exclusive descriptor kinds of a single entry.
const kindTags = TagGet | TagSet | TagValue

var tagWords = [...]struct {
	tag  Tag
	word string
}{
	{TagGet, "get"},
	{TagSet, "set"},
	{TagValue, "value"},
	{TagEnum, "enum"},
	{TagWrite, "write"},
	{TagConfig, "config"},
	{TagBind, "bind"},
}

// LookupTag maps a tag word to its Tag.
func LookupTag(word string) (Tag, bool) {
	for _, tw := range tagWords {
		if tw.word == word {
			return tw.tag, true
		}
	}
	return 0, false
}

// Has reports whether all bits of want are set.
func (t Tag) Has(want Tag) bool { return t&want == want }

// kinds counts how many of get/set/value are present.
func (t Tag) kinds() int {
	n := 0
	for _, k := range [...]Tag{TagGet, TagSet, TagValue} {
		if t&k != 0 {
			n++
		}
	}
	return n
}

// Conflicting reports whether more than one of get/set/value is present.
func (t Tag) Conflicting() bool { return t.kinds() > 1 }

// String renders the set as "get|enum|..." in vocabulary order.
func (t Tag) String() string {
	if t == 0 {
		return ""
	}
	parts := make([]string, 0, len(tagWords))
	for _, tw := range tagWords {
		if t&tw.tag != 0 {
			parts = append(parts, tw.word)
		}
	}
	return strings.Join(parts, "|")
}

// Name is a parsed encoded name.
type Name struct {
	Raw     string
	Base    string
	Tags    Tag
	Unknown []string // Words outside the vocabulary, in order of appearance.
	// Delimited is false when Raw contains no delimiter at all.
	Delimited bool
}

// ParseName splits an encoded name at the first delimiter and parses the tag
// words that follow. It returns false when the base is empty; such names are
// never synthesized.
func ParseName(raw string, delim rune) (Name, bool) {
	n := Name{Raw: raw, Base: raw}
	i := strings.IndexRune(raw, delim)
	if i < 0 {
		return n, raw != ""
	}
	n.Delimited = true
	n.Base = raw[:i]
	for _, w := range strings.Split(raw[i:], string(delim)) {
		if w == "" {
			continue
		}
		if tag, ok := LookupTag(w); ok {
			n.Tags |= tag
			continue
		}
		n.Unknown = append(n.Unknown, w)
	}
	return n, n.Base != ""
}

// Encode renders base and tags back into an encoded name.
func Encode(base string, tags Tag, delim rune) string {
	var b strings.Builder
	b.WriteString(base)
	for _, tw := range tagWords {
		if tags&tw.tag != 0 {
			b.WriteRune(delim)
			b.WriteString(tw.word)
		}
	}
	return b.String()
}
