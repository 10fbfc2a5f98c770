package fieldseal

// WireMap is an insertion-ordered mapping from wire name to an untyped wire
// value (string, number, boolean, nil, or any opaque value a Format can carry).
//
// A WireMap is transient: Encode builds a fresh one per call and Decode never
// retains the one it is given. It is not safe for concurrent mutation.
type WireMap struct {
	keys   []string
	values map[string]any
}

// NewWireMap returns an empty wire map.
func NewWireMap() *WireMap {
	return &WireMap{values: make(map[string]any)}
}

// Set stores value under key. Setting an existing key overwrites the value
// but keeps the key's original position.
func (m *WireMap) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
// A present key may still hold a nil value (wire null).
func (m *WireMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *WireMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key if present.
func (m *WireMap) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of slots.
func (m *WireMap) Len() int {
	return len(m.keys)
}

// Keys returns the slot names in insertion order.
func (m *WireMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for each slot in insertion order until fn returns false.
func (m *WireMap) Range(fn func(key string, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy of the wire map.
func (m *WireMap) Clone() *WireMap {
	out := &WireMap{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}
