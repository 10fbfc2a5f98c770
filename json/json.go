// Package json provides a JSON Format implementation.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fieldseal/fieldseal"
)

// jsonFormat implements fieldseal.Format for JSON.
type jsonFormat struct{}

// New returns a JSON format.
func New() fieldseal.Format {
	return &jsonFormat{}
}

// ContentType returns the MIME type for JSON.
func (f *jsonFormat) ContentType() string {
	return "application/json"
}

// Marshal renders the wire map as a JSON object in slot order.
// encoding/json alone cannot be used here: Go maps lose insertion order.
func (f *jsonFormat) Marshal(m *fieldseal.WireMap) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var encErr error
	m.Range(func(key string, value any) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			encErr = err
			return false
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			encErr = err
			return false
		}
		buf.Write(v)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Unmarshal parses a JSON object into a wire map, preserving key order.
// Numbers are carried as json.Number so integer precision survives.
func (f *jsonFormat) Unmarshal(data []byte) (*fieldseal.WireMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("json: expected object, got %v", tok)
	}

	m := fieldseal.NewWireMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected object key, got %v", keyTok)
		}
		value, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, value)
	}
	if _, err := dec.Token(); err != nil { // consume closing brace
		return nil, err
	}
	return m, nil
}

// readValue consumes one JSON value from the decoder. Nested objects and
// arrays are kept as generic values so unknown slots survive untouched.
func readValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, json.Number, bool, or nil
	}
	switch d {
	case '{':
		obj := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("json: expected object key, got %v", keyTok)
			}
			v, err := readValue(dec)
			if err != nil {
				return nil, err
			}
			obj[key] = v
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		var arr []any
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
	default:
		return nil, fmt.Errorf("json: unexpected delimiter %v", d)
	}
}
