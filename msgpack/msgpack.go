// Package msgpack provides a MessagePack Format implementation.
package msgpack

import (
	"bytes"

	"github.com/fieldseal/fieldseal"
	"github.com/vmihailenco/msgpack/v5"
)

// msgpackFormat implements fieldseal.Format for MessagePack.
type msgpackFormat struct{}

// New returns a MessagePack format.
func New() fieldseal.Format {
	return &msgpackFormat{}
}

// ContentType returns the MIME type for MessagePack.
func (f *msgpackFormat) ContentType() string {
	return "application/msgpack"
}

// Marshal renders the wire map as a msgpack map in slot order.
func (f *msgpackFormat) Marshal(m *fieldseal.WireMap) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(m.Len()); err != nil {
		return nil, err
	}
	var encErr error
	m.Range(func(key string, value any) bool {
		if err := enc.EncodeString(key); err != nil {
			encErr = err
			return false
		}
		if err := enc.Encode(value); err != nil {
			encErr = err
			return false
		}
		return true
	})
	if encErr != nil {
		return nil, encErr
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a msgpack map into a wire map, preserving key order.
func (f *msgpackFormat) Unmarshal(data []byte) (*fieldseal.WireMap, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}
	m := fieldseal.NewWireMap()
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}
		// Loose decoding widens ints to int64/uint64 and floats to
		// float64, matching the codec's wire-value conversions.
		value, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return nil, err
		}
		m.Set(key, value)
	}
	return m, nil
}
