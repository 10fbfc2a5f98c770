package fieldseal

// Format renders wire maps to bytes and back. The codec only dictates slot
// names and presence; how a flat mapping travels (JSON, MessagePack, YAML,
// BSON) is the format's concern.
//
// Implementations must preserve slot order on Marshal and must tolerate
// values they cannot interpret on Unmarshal, since wire producers may add
// fields the schema does not know.
type Format interface {
	// ContentType returns the MIME type for this format (e.g., "application/json").
	ContentType() string

	// Marshal renders the wire map in insertion order.
	Marshal(m *WireMap) ([]byte, error)

	// Unmarshal parses data into a wire map, preserving the order slots
	// appear on the wire.
	Unmarshal(data []byte) (*WireMap, error)
}
