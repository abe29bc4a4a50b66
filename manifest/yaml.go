package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/propdef"
)

// ParseYAML reads data as a manifest. Further non-empty documents are
// rejected.
func ParseYAML(data []byte, opts ...propdef.Option) ([]propdef.Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, parseIssue(err, "manifest must be valid YAML")
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			if err := onlyDocument(dec); err != nil {
				return nil, parseIssue(err, "manifest must hold a single document")
			}
			return nil, nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, parseIssue(fmt.Errorf("line %d: top level must be a mapping", doc.Line), "")
	}
	raw := make([]rawEntry, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		k, v := doc.Content[i], doc.Content[i+1]
		val, err := nodeValue(v)
		if err != nil {
			return nil, parseIssue(err, "")
		}
		raw = append(raw, rawEntry{key: k.Value, value: val, line: k.Line})
	}
	if err := onlyDocument(dec); err != nil {
		return nil, parseIssue(err, "manifest must hold a single document")
	}
	return finish(raw, opts)
}

// onlyDocument fails when dec holds another non-empty document.
func onlyDocument(dec *yaml.Decoder) error {
	var next yaml.Node
	err := dec.Decode(&next)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	case len(next.Content) == 0:
		return nil
	}
	return fmt.Errorf("line %d: unexpected second document", next.Line)
}

// nodeValue converts a YAML node into plain Go values (map[string]any, []any,
// primitives). Nested mappings reject duplicate keys.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, nil
		}
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if _, dup := m[k.Value]; dup {
				return nil, fmt.Errorf("duplicate key %q at %d:%d", k.Value, k.Line, k.Column)
			}
			val, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[k.Value] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return n.Value, nil
			}
			return b, nil
		case "!!int":
			if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
				return i, nil
			}
			return n.Value, nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return n.Value, nil
			}
			return f, nil
		default:
			return n.Value, nil
		}
	}
	return nil, nil
}
