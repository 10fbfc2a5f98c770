// Package bson provides a BSON Format implementation.
package bson

import (
	"github.com/fieldseal/fieldseal"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonFormat implements fieldseal.Format for BSON.
type bsonFormat struct{}

// New returns a BSON format.
func New() fieldseal.Format {
	return &bsonFormat{}
}

// ContentType returns the MIME type for BSON.
func (f *bsonFormat) ContentType() string {
	return "application/bson"
}

// Marshal renders the wire map as a BSON document in slot order, via the
// driver's ordered bson.D representation.
func (f *bsonFormat) Marshal(m *fieldseal.WireMap) ([]byte, error) {
	doc := make(bson.D, 0, m.Len())
	m.Range(func(key string, value any) bool {
		doc = append(doc, bson.E{Key: key, Value: value})
		return true
	})
	return bson.Marshal(doc)
}

// Unmarshal parses a BSON document into a wire map, preserving key order.
func (f *bsonFormat) Unmarshal(data []byte) (*fieldseal.WireMap, error) {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	m := fieldseal.NewWireMap()
	for _, e := range doc {
		m.Set(e.Key, e.Value)
	}
	return m, nil
}
