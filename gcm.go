package fieldseal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Crypto primitive errors.
var (
	ErrInvalidKeySize = errors.New("invalid key size")
	ErrInvalidIV      = errors.New("invalid iv")
)

// aesgcm implements Crypto with AES-GCM. The IV is the GCM nonce, carried
// on the wire in the IV slot rather than prepended to the ciphertext.
type aesgcm struct{}

// AESGCM returns an AES-GCM crypto primitive. Keys must be 16, 24, or 32
// bytes for AES-128, AES-192, or AES-256. IVs and ciphertexts are base64
// strings. Safe for concurrent use.
func AESGCM() Crypto {
	return aesgcm{}
}

func (aesgcm) GenerateIV() (string, error) {
	nonce := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(nonce), nil
}

func (aesgcm) aead(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (g aesgcm) Encrypt(plaintext string, key []byte, iv string) (string, error) {
	gcm, err := g.aead(key)
	if err != nil {
		return "", err
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: want %d-byte base64 nonce", ErrInvalidIV, gcm.NonceSize())
	}
	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (g aesgcm) Decrypt(ciphertext string, key []byte, iv string) (string, error) {
	gcm, err := g.aead(key)
	if err != nil {
		return "", err
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("%w: want %d-byte base64 nonce", ErrInvalidIV, gcm.NonceSize())
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 ciphertext", ErrDecrypt)
	}
	plaintext, err := gcm.Open(nil, nonce, raw, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return string(plaintext), nil
}
