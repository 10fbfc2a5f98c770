// Package sealtest provides test utilities for fieldseal.
package sealtest

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync/atomic"

	"github.com/fieldseal/fieldseal"
)

// TestKey returns a valid 32-byte key for testing.
func TestKey() []byte {
	return []byte("32-byte-key-for-testing-only!!!!")
}

// Base64Crypto is a deterministic fake crypto primitive: Encrypt is base64
// encoding and Decrypt is base64 decoding, ignoring key and IV. It exists
// so tests can assert exact wire bytes. Never use it outside tests.
type Base64Crypto struct{}

// GenerateIV returns a fixed IV so encodes are reproducible.
func (Base64Crypto) GenerateIV() (string, error) {
	return "sample-iv", nil
}

// Encrypt base64-encodes plaintext.
func (Base64Crypto) Encrypt(plaintext string, _ []byte, _ string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(plaintext)), nil
}

// Decrypt base64-decodes ciphertext. Invalid input wraps
// fieldseal.ErrDecrypt, like a real primitive rejecting corrupted data.
func (Base64Crypto) Decrypt(ciphertext string, _ []byte, _ string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64", fieldseal.ErrDecrypt)
	}
	return string(raw), nil
}

// CountingKeySource wraps a KeySource and counts CurrentKey calls, for
// asserting the single-query-per-operation contract.
type CountingKeySource struct {
	Source fieldseal.KeySource
	calls  atomic.Int64
}

// CurrentKey implements fieldseal.KeySource.
func (c *CountingKeySource) CurrentKey(ctx context.Context) ([]byte, bool) {
	c.calls.Add(1)
	return c.Source.CurrentKey(ctx)
}

// Calls returns how many times CurrentKey was invoked.
func (c *CountingKeySource) Calls() int64 {
	return c.calls.Load()
}

// User is the canonical sample record used across tests.
type User struct {
	ID    int64
	Name  string
	Email string
	Age   int64
}

// UserSchema declares the sample record's shape: name and email sensitive,
// id and age plain.
func UserSchema() (*fieldseal.Schema[User], error) {
	return fieldseal.NewSchema("User", []fieldseal.Field[User]{
		fieldseal.Int64("id",
			func(u *User) int64 { return u.ID },
			func(u *User, v int64) { u.ID = v }),
		fieldseal.String("name",
			func(u *User) string { return u.Name },
			func(u *User, v string) { u.Name = v },
			fieldseal.Sensitive()),
		fieldseal.String("email",
			func(u *User) string { return u.Email },
			func(u *User, v string) { u.Email = v },
			fieldseal.Sensitive()),
		fieldseal.Int64("age",
			func(u *User) int64 { return u.Age },
			func(u *User, v int64) { u.Age = v }),
		fieldseal.IV[User](),
	})
}
