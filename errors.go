package fieldseal

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrShape indicates a field classification is misconfigured. Shape
	// problems surface at schema or codec construction, never at runtime.
	ErrShape = errors.New("invalid shape")

	// ErrEncrypt indicates the crypto primitive failed to produce an IV or
	// ciphertext during encode.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates the crypto primitive rejected a companion slot
	// value (wrong key, corrupted ciphertext).
	ErrDecrypt = errors.New("decrypt failed")

	// ErrMissingField indicates a required field resolved to no value
	// after decode.
	ErrMissingField = errors.New("missing field")
)

// ShapeError reports a build-time misconfiguration of a field classification:
// duplicate wire names, sensitive fields without an IV slot, or companion
// slots colliding with declared slots.
type ShapeError struct {
	TypeName string // record type the schema describes
	Field    string // offending field, if any
	Reason   string
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("shape %s: field %s: %s", e.TypeName, e.Field, e.Reason)
	}
	return fmt.Sprintf("shape %s: %s", e.TypeName, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// EncryptError reports a failure while encrypting a field or generating
// the per-call IV.
type EncryptError struct {
	TypeName string
	Field    string // empty for IV generation failures
	Cause    error
}

func (e *EncryptError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("encrypt %s: generate iv: %v", e.TypeName, e.Cause)
	}
	return fmt.Sprintf("encrypt %s: field %s: %v", e.TypeName, e.Field, e.Cause)
}

func (e *EncryptError) Unwrap() error {
	return ErrEncrypt
}

// DecryptionError reports that a companion slot could not be decrypted.
// It always propagates: silently treating ciphertext as plaintext is a
// correctness hazard for the caller.
type DecryptionError struct {
	TypeName string
	Field    string
	Cause    error
}

func (e *DecryptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decrypt %s: field %s: %v", e.TypeName, e.Field, e.Cause)
	}
	return fmt.Sprintf("decrypt %s: field %s", e.TypeName, e.Field)
}

func (e *DecryptionError) Unwrap() error {
	return ErrDecrypt
}

// MissingFieldError reports that a non-nullable field without a default
// resolved to no value after decode.
type MissingFieldError struct {
	TypeName string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("decode %s: field %s: missing required value", e.TypeName, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// newShapeError creates a ShapeError for classification problems.
func newShapeError(typeName, field, reason string) error {
	return &ShapeError{TypeName: typeName, Field: field, Reason: reason}
}
