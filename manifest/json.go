package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/propdef"
)

// ParseJSON reads data as a JSON manifest. Numbers are kept as json.Number.
func ParseJSON(data []byte, opts ...propdef.Option) ([]propdef.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, parseIssue(err, "manifest must be valid JSON")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, parseIssue(fmt.Errorf("top level must be an object, got %v", tok), "")
	}
	var raw []rawEntry
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, parseIssue(err, "")
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			break
		}
		key, ok := tok.(string)
		if !ok {
			return nil, parseIssue(fmt.Errorf("expected key, got %v", tok), "")
		}
		val, err := readValue(dec)
		if err != nil {
			return nil, parseIssue(err, "")
		}
		raw = append(raw, rawEntry{key: key, value: val})
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, parseIssue(fmt.Errorf("unexpected data after top-level object"), "manifest must hold a single object")
	}
	return finish(raw, opts)
}

// readValue consumes one complete value from the token stream.
func readValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		m := map[string]any{}
		for {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			if d, ok := kt.(json.Delim); ok && d == '}' {
				return m, nil
			}
			k, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("expected key, got %v", kt)
			}
			if _, dup := m[k]; dup {
				return nil, fmt.Errorf("duplicate key %q", k)
			}
			v, err := readValue(dec)
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := readValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", d)
}
