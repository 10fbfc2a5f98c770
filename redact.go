package fieldseal

// redactedPlaceholder replaces values that must not reach logs.
const redactedPlaceholder = "***"

// Redacted returns a copy of wire safe for logging: plain slots of
// sensitive fields and their companion slots are replaced with a
// placeholder, and the IV slot is dropped. Non-sensitive slots and unknown
// slots pass through unchanged. The input is not modified.
func (c *Codec[T]) Redacted(wire *WireMap) *WireMap {
	sensitive := make(map[string]bool, len(c.schema.fields)*2)
	for i, f := range c.schema.fields {
		if !f.sensitive {
			continue
		}
		sensitive[f.wireName] = true
		sensitive[c.companions[i]] = true
	}

	out := NewWireMap()
	wire.Range(func(key string, value any) bool {
		switch {
		case key == c.ivSlot:
			// Dropping the IV keeps redacted output from being mistaken
			// for a decodable payload.
		case sensitive[key] && value != nil:
			out.Set(key, redactedPlaceholder)
		default:
			out.Set(key, value)
		}
		return true
	})
	return out
}
