package fieldseal

import (
	"context"
	"fmt"
	"time"
)

// Decode converts a wire map back into a record. Plain and encrypted
// payloads are both legal: an absent IV slot selects the plain-read branch
// even when a key is available, which keeps legacy payloads readable.
// Unrecognized wire names are ignored.
func (c *Codec[T]) Decode(ctx context.Context, wire *WireMap) (*T, error) {
	start := time.Now()
	emitDecodeStart(ctx, c.schema.typeName)

	var retErr error
	decrypted := 0
	defer func() {
		emitDecodeComplete(ctx, c.schema.typeName, time.Since(start), decrypted, retErr)
	}()

	iv, hasIV := "", false
	if v, ok := wire.Get(c.ivSlot); ok {
		if s, isStr := v.(string); isStr && s != "" {
			iv, hasIV = s, true
		}
	}

	key, hasKey := c.keys.CurrentKey(ctx)

	rec := new(T)
	for i, f := range c.schema.fields {
		if f.iv {
			continue
		}

		value, resolved := c.resolveField(wire, i, &f, key, hasKey, iv, hasIV, &decrypted, &retErr)
		if retErr != nil {
			return nil, retErr
		}

		if resolved {
			if value == nil {
				f.set(rec, nil)
				continue
			}
			if f.set(rec, value) {
				continue
			}
			// Wire kind mismatch degrades to absent; the default and
			// nullability checks decide whether that is fatal.
		}

		if f.hasDefault && f.set(rec, f.defaultValue) {
			continue
		}
		if f.nullable {
			f.set(rec, nil)
			continue
		}
		retErr = &MissingFieldError{TypeName: c.schema.typeName, Field: f.name}
		return nil, retErr
	}

	return rec, nil
}

// resolveField produces the field's value from the wire map, or
// resolved=false when it is absent. Null wire values resolve with a nil
// value. Decryption failures are fatal and reported through retErr.
func (c *Codec[T]) resolveField(wire *WireMap, i int, f *fieldSpec[T], key []byte, hasKey bool, iv string, hasIV bool, decrypted *int, retErr *error) (any, bool) {
	if f.sensitive && hasKey && hasIV {
		// Encrypted-read branch: only the companion slot is consulted.
		// An absent companion is legal (mixed legacy data) and resolves
		// to absent.
		raw, ok := wire.Get(c.companions[i])
		if !ok || raw == nil {
			return nil, false
		}
		ciphertext, isStr := raw.(string)
		if !isStr {
			*retErr = &DecryptionError{
				TypeName: c.schema.typeName,
				Field:    f.name,
				Cause:    fmt.Errorf("companion slot holds %T, want string", raw),
			}
			return nil, false
		}
		plaintext, err := c.crypto.Decrypt(ciphertext, key, iv)
		if err != nil {
			*retErr = &DecryptionError{TypeName: c.schema.typeName, Field: f.name, Cause: err}
			return nil, false
		}
		*decrypted++
		v, ok := coerceString(f.kind, plaintext, c.strict, f.decodeString)
		if !ok {
			return nil, false
		}
		return v, true
	}

	// Plain-read branch: the slot already carries its native wire kind.
	raw, ok := wire.Get(f.wireName)
	if !ok {
		return nil, false
	}
	if raw == nil {
		if f.nullable {
			return nil, true
		}
		return nil, false
	}
	return raw, true
}
