package fieldseal

import "context"

// Default wire-level configuration. Both are overridable per codec; they
// are never ambient state.
const (
	// DefaultIVSlot is the default wire name of the IV slot.
	DefaultIVSlot = "e2e_iv"

	// DefaultPrefix is the default companion-slot prefix. A sensitive
	// field's ciphertext travels under <prefix><wireName>.
	DefaultPrefix = "e2e_"
)

// Option adjusts codec configuration.
type Option func(*config)

type config struct {
	ivSlot     string
	prefix     string
	strictBool bool
}

func defaultConfig() *config {
	return &config{
		ivSlot: DefaultIVSlot,
		prefix: DefaultPrefix,
	}
}

// WithIVSlot sets the wire name of the IV slot.
func WithIVSlot(name string) Option {
	return func(c *config) {
		c.ivSlot = name
	}
}

// WithPrefix sets the companion-slot prefix for sensitive fields.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// StrictBool makes boolean coercion accept only the "true"/"false"
// literals; anything else resolves to absent. The default is the lenient
// legacy behavior where any other string reads as false.
func StrictBool() Option {
	return func(c *config) {
		c.strictBool = true
	}
}

// Codec encodes records of type T to wire maps and back, encrypting the
// schema's sensitive fields when the key source supplies a key.
//
// A Codec is immutable after construction: concurrent Encode and Decode
// calls are safe without locking, provided the KeySource and Crypto
// implementations are themselves safe for concurrent invocation.
type Codec[T any] struct {
	schema *Schema[T]
	keys   KeySource
	crypto Crypto

	ivSlot string
	prefix string
	strict bool

	// companions[i] is the companion slot name for schema field i, or ""
	// for non-sensitive fields. Precomputed so encode/decode never build
	// names.
	companions []string
}

// New builds a codec from a schema and its collaborators. It fails with a
// ShapeError when the configured IV slot or a companion slot name collides
// with a declared wire name.
func New[T any](schema *Schema[T], keys KeySource, crypto Crypto, opts ...Option) (*Codec[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if schema == nil {
		return nil, newShapeError("?", "", "nil schema")
	}
	if cfg.ivSlot == "" {
		return nil, newShapeError(schema.typeName, "", "empty IV slot name")
	}
	if crypto == nil {
		return nil, newShapeError(schema.typeName, "", "nil crypto")
	}
	if keys == nil {
		keys = NoKey()
	}

	taken := make(map[string]bool, len(schema.fields)*2)
	for _, f := range schema.fields {
		if f.iv {
			continue
		}
		taken[f.wireName] = true
	}
	if taken[cfg.ivSlot] {
		return nil, newShapeError(schema.typeName, "",
			"IV slot "+cfg.ivSlot+" collides with a declared wire name")
	}
	taken[cfg.ivSlot] = true

	companions := make([]string, len(schema.fields))
	for i, f := range schema.fields {
		if !f.sensitive {
			continue
		}
		companion := cfg.prefix + f.wireName
		if taken[companion] {
			return nil, newShapeError(schema.typeName, f.name,
				"companion slot "+companion+" collides with another wire name")
		}
		taken[companion] = true
		companions[i] = companion
	}

	c := &Codec[T]{
		schema:     schema,
		keys:       keys,
		crypto:     crypto,
		ivSlot:     cfg.ivSlot,
		prefix:     cfg.prefix,
		strict:     cfg.strictBool,
		companions: companions,
	}

	emitCodecCreated(context.Background(), schema.typeName, cfg.ivSlot)
	return c, nil
}

// Schema returns the codec's record shape.
func (c *Codec[T]) Schema() *Schema[T] {
	return c.schema
}

// IVSlot returns the configured IV slot wire name.
func (c *Codec[T]) IVSlot() string {
	return c.ivSlot
}

// Prefix returns the configured companion-slot prefix.
func (c *Codec[T]) Prefix() string {
	return c.prefix
}

// Marshal encodes rec and renders the wire map with the given format.
func (c *Codec[T]) Marshal(ctx context.Context, rec *T, f Format) ([]byte, error) {
	wire, err := c.Encode(ctx, rec)
	if err != nil {
		return nil, err
	}
	return f.Marshal(wire)
}

// Unmarshal parses data with the given format and decodes the wire map.
func (c *Codec[T]) Unmarshal(ctx context.Context, data []byte, f Format) (*T, error) {
	wire, err := f.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return c.Decode(ctx, wire)
}
