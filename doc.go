// Package fieldseal provides a selective-field encrypting codec: records
// are converted to a flat wire map in which a declared subset of fields is
// encrypted and renamed, while all other fields pass through unchanged, and
// the process reverses transparently on read for both encrypted and plain
// payloads.
//
// # Wire shape
//
// Every sensitive field owns exactly one companion slot named
// <prefix><wireName> (default prefix "e2e_") that carries its ciphertext as
// a string. One slot per record type (default "e2e_iv") carries the
// per-encode initialization value. When no key is available the IV slot is
// null and every field is emitted plain, which is also the shape of legacy
// payloads written before encryption existed.
//
// # Declaring a shape
//
// Field classification is explicit and static; there is no struct-tag or
// reflection scanning. Declare the shape once per record type:
//
//	type User struct {
//	    ID    int64
//	    Name  string
//	    Email string
//	    Age   int64
//	}
//
//	schema, err := fieldseal.NewSchema("User", []fieldseal.Field[User]{
//	    fieldseal.Int64("id", func(u *User) int64 { return u.ID }, func(u *User, v int64) { u.ID = v }),
//	    fieldseal.String("name", func(u *User) string { return u.Name }, func(u *User, v string) { u.Name = v }, fieldseal.Sensitive()),
//	    fieldseal.String("email", func(u *User) string { return u.Email }, func(u *User, v string) { u.Email = v }, fieldseal.Sensitive()),
//	    fieldseal.Int64("age", func(u *User) int64 { return u.Age }, func(u *User, v int64) { u.Age = v }),
//	    fieldseal.IV[User](),
//	})
//
// A schema with sensitive fields but no IV field fails construction with a
// ShapeError, as do duplicate wire names.
//
// # Encoding and decoding
//
//	codec, err := fieldseal.New(schema, fieldseal.StaticKey(key), fieldseal.NewSecretbox())
//
//	wire, err := codec.Encode(ctx, &user)   // id, age plain; e2e_name, e2e_email ciphertext; e2e_iv fresh
//	user2, err := codec.Decode(ctx, wire)
//
// Exactly one of the plain slot and the companion slot is populated per
// sensitive field per encode. Decode tolerates unknown slots, reads plain
// payloads with or without a key available, and fails with DecryptionError
// when a companion slot cannot be decrypted; ciphertext is never silently
// passed through as plaintext.
//
// # Collaborators
//
// The codec delegates everything cryptographic:
//
//   - KeySource supplies the current key material, or reports that none is
//     available (which selects the plain branch).
//   - Crypto generates IVs and performs symmetric encrypt/decrypt of
//     strings. AESGCM and NewSecretbox are provided; any implementation of
//     the three-method interface plugs in.
//
// Key lifecycle, rotation, and algorithm choice are the collaborators'
// concern, not the codec's.
//
// # Decrypt-only mode
//
// A schema declared with DecryptOnly never encrypts on encode (output is
// always plain) but still decrypts encrypted legacy payloads on decode.
//
// # Wire formats
//
// Encode produces an ordered WireMap; rendering it is orthogonal. The
// json, msgpack, yaml, and bson subpackages implement Format over WireMap,
// preserving slot order on the wire:
//
//	data, err := codec.Marshal(ctx, &user, json.New())
//	user3, err := codec.Unmarshal(ctx, data, json.New())
//
// # Schema registry
//
// Schemas can be registered once and looked up by type:
//
//	fieldseal.Register(schema)
//	codec, err := fieldseal.ForType[User](keys, crypto)
package fieldseal
