package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// ManifestFile is the template file that gets the package name.
const ManifestFile = "package.json"

// Manifest is a package.json document. Keys keep the order they had in the
// template so the written file only differs in the values that were set.
type Manifest struct {
	keys   []string
	fields map[string]json.RawMessage
}

// ParseManifest parses a manifest. Comments and trailing commas are
// tolerated so hand-written templates can carry notes.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("parsing manifest: top level must be an object")
	}

	m := &Manifest{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing manifest field %q: %w", key, err)
		}

		// A repeated key keeps its first position and its last value.
		if _, seen := m.fields[key]; !seen {
			m.keys = append(m.keys, key)
		}
		m.fields[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parsing manifest: unexpected data after top-level object")
	}

	return m, nil
}

// Keys returns the field names in document order.
func (m *Manifest) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Name returns the name field, or "" when it is missing or not a string.
func (m *Manifest) Name() string {
	var name string
	if err := m.Get("name", &name); err != nil {
		return ""
	}
	return name
}

// SetName replaces the name field.
func (m *Manifest) SetName(name string) error {
	return m.Set("name", name)
}

// Get decodes the field key into v.
func (m *Manifest) Get(key string, v any) error {
	raw, ok := m.fields[key]
	if !ok {
		return fmt.Errorf("manifest has no %q field", key)
	}
	return json.Unmarshal(raw, v)
}

// Set replaces the field key, appending it when it is new.
func (m *Manifest) Set(key string, v any) error {
	raw, err := marshalNoEscape(v)
	if err != nil {
		return fmt.Errorf("encoding manifest field %q: %w", key, err)
	}
	if _, ok := m.fields[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.fields[key] = raw
	return nil
}

// MarshalJSON implements json.Marshaler, keeping key order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(m.fields[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders the manifest with two-space indentation and a final newline.
func (m *Manifest) Encode() ([]byte, error) {
	compact, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping, so <, > and & stay as typed.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
