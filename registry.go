package fieldseal

import (
	"reflect"
	"sync"
)

// The schema registry lets a record type's classification be declared once
// and looked up anywhere. Reflection is used only as a map key; shape
// derivation itself is always explicit.

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Register stores the schema for type T, replacing any previous
// registration.
func Register[T any](s *Schema[T]) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[T]()] = s
}

// RegisteredSchema returns the schema registered for type T, if any.
func RegisteredSchema[T any]() (*Schema[T], bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return s.(*Schema[T]), true
}

// ForType builds a codec from the schema registered for type T. It fails
// with a ShapeError when no schema is registered.
func ForType[T any](keys KeySource, crypto Crypto, opts ...Option) (*Codec[T], error) {
	s, ok := RegisteredSchema[T]()
	if !ok {
		return nil, newShapeError(reflect.TypeFor[T]().String(), "", "no schema registered")
	}
	return New(s, keys, crypto, opts...)
}

// ResetSchemas clears the schema registry.
// This is primarily useful for test isolation.
func ResetSchemas() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
