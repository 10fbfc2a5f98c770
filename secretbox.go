package fieldseal

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// Secretbox implements Crypto with XSalsa20-Poly1305 (NaCl secretbox) and
// 24-byte nonces carried in the IV slot. Plaintexts above a threshold are
// zstd-compressed before sealing, recorded in a flag byte inside the box.
// Keys must be exactly 32 bytes. Safe for concurrent use.
type Secretbox struct {
	compressionThreshold int
	compressionDisabled  bool
}

// SecretboxOption adjusts a Secretbox primitive.
type SecretboxOption func(*Secretbox)

// WithCompressionThreshold sets the minimum plaintext size in bytes before
// compression is attempted. Default is 1024.
func WithCompressionThreshold(bytes int) SecretboxOption {
	return func(s *Secretbox) {
		s.compressionThreshold = bytes
	}
}

// WithCompressionDisabled disables compression entirely. Use this for data
// that is already compressed or won't benefit from compression.
func WithCompressionDisabled() SecretboxOption {
	return func(s *Secretbox) {
		s.compressionDisabled = true
	}
}

// NewSecretbox returns a secretbox crypto primitive.
func NewSecretbox(opts ...SecretboxOption) *Secretbox {
	s := &Secretbox{compressionThreshold: defaultCompressionThreshold}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateIV returns a fresh 24-byte nonce as base64.
func (s *Secretbox) GenerateIV() (string, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(nonce[:]), nil
}

func (s *Secretbox) params(key []byte, iv string) (k [32]byte, nonce [24]byte, err error) {
	if len(key) != 32 {
		err = fmt.Errorf("%w: must be 32 bytes, got %d", ErrInvalidKeySize, len(key))
		return
	}
	raw, derr := base64.StdEncoding.DecodeString(iv)
	if derr != nil || len(raw) != 24 {
		err = fmt.Errorf("%w: want 24-byte base64 nonce", ErrInvalidIV)
		return
	}
	copy(k[:], key)
	copy(nonce[:], raw)
	return
}

// Encrypt seals plaintext under key and iv and returns base64 ciphertext.
func (s *Secretbox) Encrypt(plaintext string, key []byte, iv string) (string, error) {
	k, nonce, err := s.params(key, iv)
	if err != nil {
		return "", err
	}

	data, flag := maybeCompress([]byte(plaintext), s.compressionThreshold, s.compressionDisabled)
	payload := make([]byte, 1+len(data))
	payload[0] = flag
	copy(payload[1:], data)

	box := secretbox.Seal(nil, payload, &nonce, &k)
	return base64.StdEncoding.EncodeToString(box), nil
}

// Decrypt reverses Encrypt. Authentication failures wrap ErrDecrypt.
func (s *Secretbox) Decrypt(ciphertext string, key []byte, iv string) (string, error) {
	k, nonce, err := s.params(key, iv)
	if err != nil {
		return "", err
	}

	box, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 ciphertext", ErrDecrypt)
	}
	payload, ok := secretbox.Open(nil, box, &nonce, &k)
	if !ok {
		return "", fmt.Errorf("%w: authentication failed", ErrDecrypt)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrDecrypt)
	}
	data, err := decompress(payload[1:], payload[0])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return string(data), nil
}
