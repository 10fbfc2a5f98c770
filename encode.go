package fieldseal

import (
	"context"
	"errors"
	"time"
)

// Encode converts a record into its wire map. When the key source supplies
// a key (and the schema is not decrypt-only), one fresh IV is generated and
// every non-null sensitive value is emitted as ciphertext under its
// companion slot; everything else is emitted plain. Exactly one of the
// plain slot and the companion slot is populated per sensitive field.
//
// The record is only read; ownership stays with the caller.
func (c *Codec[T]) Encode(ctx context.Context, rec *T) (*WireMap, error) {
	start := time.Now()
	emitEncodeStart(ctx, c.schema.typeName)

	var retErr error
	encrypted := 0
	defer func() {
		emitEncodeComplete(ctx, c.schema.typeName, time.Since(start), encrypted, retErr)
	}()

	// One key snapshot per call. Decrypt-only schemas discard it so the
	// plain branch is taken regardless of availability.
	key, hasKey := c.keys.CurrentKey(ctx)
	if c.schema.decryptOnly {
		key, hasKey = nil, false
	}

	iv := ""
	hasIV := false
	if hasKey {
		v, err := c.crypto.GenerateIV()
		if err != nil {
			retErr = &EncryptError{TypeName: c.schema.typeName, Cause: err}
			return nil, retErr
		}
		iv, hasIV = v, true
	}

	out := NewWireMap()
	for i, f := range c.schema.fields {
		if f.iv {
			if hasIV {
				out.Set(c.ivSlot, iv)
			} else {
				out.Set(c.ivSlot, nil)
			}
			continue
		}

		value, present := f.get(rec)
		if f.sensitive && hasKey && hasIV && present {
			// A non-null sensitive value never falls through to the plain
			// slot under a key: no string form means the encode fails.
			plaintext, ok := formatValue(f.kind, value, f.encodeString)
			if !ok {
				retErr = &EncryptError{
					TypeName: c.schema.typeName,
					Field:    f.name,
					Cause:    errors.New("value has no string form"),
				}
				return nil, retErr
			}
			ciphertext, err := c.crypto.Encrypt(plaintext, key, iv)
			if err != nil {
				retErr = &EncryptError{TypeName: c.schema.typeName, Field: f.name, Cause: err}
				return nil, retErr
			}
			out.Set(c.companions[i], ciphertext)
			encrypted++
			continue
		}

		// Plain branch: null sensitive values land here too, since
		// encrypting null is meaningless.
		if present {
			out.Set(f.wireName, value)
		} else {
			out.Set(f.wireName, nil)
		}
	}

	return out, nil
}
