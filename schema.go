package fieldseal

// Kind identifies the natural value kind of a field. The kind drives the
// string round-trip of encrypted values: formatting on encode, coercion on
// decode.
type Kind int

const (
	// KindString carries the value unchanged.
	KindString Kind = iota

	// KindBool formats as "true"/"false".
	KindBool

	// KindInt formats as a base-10 integer.
	KindInt

	// KindFloat formats as a shortest-form decimal.
	KindFloat

	// KindChar formats as a one-rune string.
	KindChar

	// KindOther is opaque to the codec. String round-trips are delegated
	// to the Stringify hook; without one, decrypted values resolve to
	// absent.
	KindOther
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// fieldSpec is the internal descriptor behind a Field. Specs are immutable
// once the owning schema is built.
type fieldSpec[T any] struct {
	name      string // declared field name
	wireName  string // name on the wire (override or declared name)
	kind      Kind
	sensitive bool
	nullable  bool
	omitted   bool
	iv        bool

	hasDefault   bool
	defaultValue any

	// get reads the field's natural value; ok=false means null/absent.
	get func(rec *T) (any, bool)
	// set assigns a natural or wire value; nil assigns null to nullable
	// fields. Returns false when the value's kind is incompatible.
	set func(rec *T, v any) bool

	// Stringify hooks for KindOther fields.
	encodeString func(v any) (string, bool)
	decodeString func(s string) (any, bool)
}

// Field declares one slot of a record shape. Build fields with the typed
// constructors (String, Int64, Bool, ...) and pass them to NewSchema.
type Field[T any] struct {
	spec fieldSpec[T]
}

// FieldOption adjusts a single field declaration.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	wireName     string
	sensitive    bool
	omitted      bool
	hasDefault   bool
	defaultValue any
	encodeString func(v any) (string, bool)
	decodeString func(s string) (any, bool)
}

// WireName overrides the name used on the wire. By default the declared
// field name is used.
func WireName(name string) FieldOption {
	return func(o *fieldOptions) {
		o.wireName = name
	}
}

// Sensitive marks the field as subject to encryption on encode and
// decryption on decode.
func Sensitive() FieldOption {
	return func(o *fieldOptions) {
		o.sensitive = true
	}
}

// Omit excludes the field from the shape entirely. Omitted fields
// participate in neither encode nor decode.
func Omit() FieldOption {
	return func(o *fieldOptions) {
		o.omitted = true
	}
}

// Default supplies a value used when the field resolves to absent on
// decode. The value must match the field's natural type.
func Default(v any) FieldOption {
	return func(o *fieldOptions) {
		o.hasDefault = true
		o.defaultValue = v
	}
}

// Stringify supplies the string round-trip for a KindOther field: encode
// renders the natural value for encryption, decode parses a decrypted
// string back (ok=false resolves the field to absent).
func Stringify(encode func(v any) (string, bool), decode func(s string) (any, bool)) FieldOption {
	return func(o *fieldOptions) {
		o.encodeString = encode
		o.decodeString = decode
	}
}

func newField[T any](name string, kind Kind, nullable bool, opts ...FieldOption) Field[T] {
	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	wireName := name
	if o.wireName != "" {
		wireName = o.wireName
	}
	return Field[T]{spec: fieldSpec[T]{
		name:         name,
		wireName:     wireName,
		kind:         kind,
		sensitive:    o.sensitive,
		nullable:     nullable,
		omitted:      o.omitted,
		hasDefault:   o.hasDefault,
		defaultValue: o.defaultValue,
		encodeString: o.encodeString,
		decodeString: o.decodeString,
	}}
}

// String declares a required string field.
func String[T any](name string, get func(*T) string, set func(*T, string), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindString, false, opts...)
	f.spec.get = func(rec *T) (any, bool) { return get(rec), true }
	f.spec.set = func(rec *T, v any) bool {
		s, ok := asString(v)
		if !ok {
			return false
		}
		set(rec, s)
		return true
	}
	return f
}

// NullString declares a nullable string field; nil carries wire null.
func NullString[T any](name string, get func(*T) *string, set func(*T, *string), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindString, true, opts...)
	f.spec.get = func(rec *T) (any, bool) {
		p := get(rec)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
	f.spec.set = func(rec *T, v any) bool {
		if v == nil {
			set(rec, nil)
			return true
		}
		s, ok := asString(v)
		if !ok {
			return false
		}
		set(rec, &s)
		return true
	}
	return f
}

// Bool declares a required boolean field.
func Bool[T any](name string, get func(*T) bool, set func(*T, bool), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindBool, false, opts...)
	f.spec.get = func(rec *T) (any, bool) { return get(rec), true }
	f.spec.set = func(rec *T, v any) bool {
		b, ok := asBool(v)
		if !ok {
			return false
		}
		set(rec, b)
		return true
	}
	return f
}

// NullBool declares a nullable boolean field.
func NullBool[T any](name string, get func(*T) *bool, set func(*T, *bool), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindBool, true, opts...)
	f.spec.get = func(rec *T) (any, bool) {
		p := get(rec)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
	f.spec.set = func(rec *T, v any) bool {
		if v == nil {
			set(rec, nil)
			return true
		}
		b, ok := asBool(v)
		if !ok {
			return false
		}
		set(rec, &b)
		return true
	}
	return f
}

// Int declares a required int field.
func Int[T any](name string, get func(*T) int, set func(*T, int), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindInt, false, opts...)
	f.spec.get = func(rec *T) (any, bool) { return int64(get(rec)), true }
	f.spec.set = func(rec *T, v any) bool {
		n, ok := asInt64(v)
		if !ok {
			return false
		}
		set(rec, int(n))
		return true
	}
	return f
}

// Int64 declares a required int64 field.
func Int64[T any](name string, get func(*T) int64, set func(*T, int64), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindInt, false, opts...)
	f.spec.get = func(rec *T) (any, bool) { return get(rec), true }
	f.spec.set = func(rec *T, v any) bool {
		n, ok := asInt64(v)
		if !ok {
			return false
		}
		set(rec, n)
		return true
	}
	return f
}

// NullInt64 declares a nullable int64 field.
func NullInt64[T any](name string, get func(*T) *int64, set func(*T, *int64), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindInt, true, opts...)
	f.spec.get = func(rec *T) (any, bool) {
		p := get(rec)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
	f.spec.set = func(rec *T, v any) bool {
		if v == nil {
			set(rec, nil)
			return true
		}
		n, ok := asInt64(v)
		if !ok {
			return false
		}
		set(rec, &n)
		return true
	}
	return f
}

// Float64 declares a required float64 field.
func Float64[T any](name string, get func(*T) float64, set func(*T, float64), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindFloat, false, opts...)
	f.spec.get = func(rec *T) (any, bool) { return get(rec), true }
	f.spec.set = func(rec *T, v any) bool {
		x, ok := asFloat64(v)
		if !ok {
			return false
		}
		set(rec, x)
		return true
	}
	return f
}

// NullFloat64 declares a nullable float64 field.
func NullFloat64[T any](name string, get func(*T) *float64, set func(*T, *float64), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindFloat, true, opts...)
	f.spec.get = func(rec *T) (any, bool) {
		p := get(rec)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
	f.spec.set = func(rec *T, v any) bool {
		if v == nil {
			set(rec, nil)
			return true
		}
		x, ok := asFloat64(v)
		if !ok {
			return false
		}
		set(rec, &x)
		return true
	}
	return f
}

// Char declares a required single-rune field. On the wire the value is a
// one-rune string.
func Char[T any](name string, get func(*T) rune, set func(*T, rune), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindChar, false, opts...)
	f.spec.get = func(rec *T) (any, bool) { return get(rec), true }
	f.spec.set = func(rec *T, v any) bool {
		r, ok := asChar(v)
		if !ok {
			return false
		}
		set(rec, r)
		return true
	}
	return f
}

// Opaque declares a field whose natural value the codec does not interpret.
// The getter reports absent with ok=false. Sensitive opaque fields must
// declare a Stringify hook; NewSchema rejects the combination otherwise.
func Opaque[T any](name string, get func(*T) (any, bool), set func(*T, any), opts ...FieldOption) Field[T] {
	f := newField[T](name, KindOther, true, opts...)
	f.spec.get = get
	f.spec.set = func(rec *T, v any) bool {
		set(rec, v)
		return true
	}
	return f
}

// IV declares the record type's initialization-value carrier. The slot's
// wire name comes from the codec configuration (WithIVSlot, default
// "e2e_iv"); its value is managed entirely by the codec and never stored on
// the record. A schema with sensitive fields must declare exactly one IV
// field.
func IV[T any]() Field[T] {
	return Field[T]{spec: fieldSpec[T]{
		name:     "iv",
		kind:     KindString,
		nullable: true,
		iv:       true,
		get:      func(*T) (any, bool) { return nil, false },
		set:      func(*T, any) bool { return true },
	}}
}

// SchemaOption adjusts a schema declaration.
type SchemaOption func(*schemaOptions)

type schemaOptions struct {
	decryptOnly bool
}

// DecryptOnly disables encryption on encode for this record type. Encoded
// output is always plain; encrypted legacy payloads still decode.
func DecryptOnly() SchemaOption {
	return func(o *schemaOptions) {
		o.decryptOnly = true
	}
}

// Schema is the immutable record shape for type T: an ordered list of field
// descriptors with sensitivity, nullability, and naming resolved. Build it
// once per type and share it freely; it is safe for concurrent use.
type Schema[T any] struct {
	typeName    string
	decryptOnly bool
	fields      []fieldSpec[T]
	ivIndex     int // index into fields, -1 when absent
}

// NewSchema builds the record shape for type T from declared fields, in
// declaration order. It fails with a ShapeError when two fields resolve to
// the same wire name, more than one IV field is declared, or sensitive
// fields exist without an IV field.
func NewSchema[T any](typeName string, fields []Field[T], opts ...SchemaOption) (*Schema[T], error) {
	var o schemaOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Schema[T]{
		typeName:    typeName,
		decryptOnly: o.decryptOnly,
		ivIndex:     -1,
	}

	seen := make(map[string]string) // wire name -> declared field name
	sensitiveCount := 0
	for _, f := range fields {
		spec := f.spec
		if spec.omitted {
			continue
		}
		if spec.iv {
			if s.ivIndex >= 0 {
				return nil, newShapeError(typeName, spec.name, "multiple IV fields declared")
			}
			s.ivIndex = len(s.fields)
			s.fields = append(s.fields, spec)
			continue
		}
		if prev, ok := seen[spec.wireName]; ok {
			return nil, newShapeError(typeName, spec.name,
				"wire name "+spec.wireName+" already used by field "+prev)
		}
		seen[spec.wireName] = spec.name
		if spec.sensitive {
			// A sensitive value must reach the wire as ciphertext or not
			// at all, so it needs a string form to encrypt.
			if spec.kind == KindOther && spec.encodeString == nil {
				return nil, newShapeError(typeName, spec.name,
					"sensitive field requires a Stringify encoder")
			}
			sensitiveCount++
		}
		s.fields = append(s.fields, spec)
	}

	if sensitiveCount > 0 && s.ivIndex < 0 {
		return nil, newShapeError(typeName, "", "sensitive fields declared without an IV field")
	}

	return s, nil
}

// TypeName returns the declared record type name.
func (s *Schema[T]) TypeName() string {
	return s.typeName
}

// IsDecryptOnly reports whether encode always takes the plain branch.
func (s *Schema[T]) IsDecryptOnly() bool {
	return s.decryptOnly
}

// Fields returns the wire names of the declared fields in order, excluding
// the IV carrier.
func (s *Schema[T]) Fields() []string {
	out := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if f.iv {
			continue
		}
		out = append(out, f.wireName)
	}
	return out
}
