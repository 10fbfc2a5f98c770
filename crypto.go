package fieldseal

import "context"

// KeySource supplies the current key material for encode and decode calls.
// Absence of a key is not an error: it selects the plain branch.
//
// Implementations must be safe for concurrent use. Returning a different
// key across calls is legal (key rotation); a single encode or decode call
// uses one snapshot, queried exactly once.
type KeySource interface {
	// CurrentKey returns the active key material, or ok=false when no key
	// is available. The codec never retains the returned slice beyond the
	// call that obtained it.
	CurrentKey(ctx context.Context) (key []byte, ok bool)
}

// KeySourceFunc adapts a function to the KeySource interface.
type KeySourceFunc func(ctx context.Context) ([]byte, bool)

// CurrentKey implements KeySource.
func (f KeySourceFunc) CurrentKey(ctx context.Context) ([]byte, bool) {
	return f(ctx)
}

// StaticKey returns a KeySource that always supplies the given key. The key
// is copied; the caller may zero the original. An empty key means no key.
func StaticKey(key []byte) KeySource {
	if len(key) == 0 {
		return NoKey()
	}
	k := make([]byte, len(key))
	copy(k, key)
	return KeySourceFunc(func(context.Context) ([]byte, bool) {
		return k, true
	})
}

// NoKey returns a KeySource that never supplies a key. Codecs built with it
// always encode plain and decode only plain payloads.
func NoKey() KeySource {
	return KeySourceFunc(func(context.Context) ([]byte, bool) {
		return nil, false
	})
}

// Crypto is the symmetric primitive the codec delegates to. The codec does
// not choose an algorithm and does not validate key strength; it only
// guarantees that each encode call uses one fresh IV and that decryption
// failures propagate.
//
// Implementations must be safe for concurrent use.
type Crypto interface {
	// GenerateIV returns a fresh initialization value. IVs are opaque
	// strings to the codec; they must never repeat under the same key.
	GenerateIV() (string, error)

	// Encrypt encrypts plaintext with the given key and IV and returns
	// the ciphertext as a string suitable for a companion slot.
	Encrypt(plaintext string, key []byte, iv string) (string, error)

	// Decrypt reverses Encrypt. A failure to decrypt (wrong key,
	// corrupted ciphertext) is reported as an error wrapping ErrDecrypt.
	Decrypt(ciphertext string, key []byte, iv string) (string, error)
}
