package fieldseal_test

import (
	"testing"

	"github.com/fieldseal/fieldseal"
	"github.com/fieldseal/fieldseal/sealtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)

	codec, err := fieldseal.New(schema, fieldseal.StaticKey(sealtest.TestKey()), sealtest.Base64Crypto{})
	require.NoError(t, err)
	assert.Equal(t, "e2e_iv", codec.IVSlot())
	assert.Equal(t, "e2e_", codec.Prefix())
	assert.Same(t, schema, codec.Schema())
}

func TestNew_CustomIVSlotAndPrefix(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)

	codec, err := fieldseal.New(schema, fieldseal.NoKey(), sealtest.Base64Crypto{},
		fieldseal.WithIVSlot("nonce"),
		fieldseal.WithPrefix("enc_"),
	)
	require.NoError(t, err)
	assert.Equal(t, "nonce", codec.IVSlot())
	assert.Equal(t, "enc_", codec.Prefix())
}

func TestNew_NilSchema(t *testing.T) {
	_, err := fieldseal.New[sealtest.User](nil, fieldseal.NoKey(), sealtest.Base64Crypto{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fieldseal.ErrShape)
}

func TestNew_NilCrypto(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)

	_, err = fieldseal.New(schema, fieldseal.NoKey(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fieldseal.ErrShape)
	assert.Contains(t, err.Error(), "crypto")
}

func TestNew_IVSlotCollidesWithField(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)

	_, err = fieldseal.New(schema, fieldseal.NoKey(), sealtest.Base64Crypto{},
		fieldseal.WithIVSlot("id"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fieldseal.ErrShape)
	assert.Contains(t, err.Error(), "collides")
}

func TestNew_CompanionCollidesWithField(t *testing.T) {
	// A plain field already named e2e_name collides with the companion
	// slot of the sensitive field "name".
	schema, err := fieldseal.NewSchema("Account", accountFields(
		fieldseal.String("e2e_secret",
			func(a *account) string { return a.Scratch },
			func(a *account, v string) { a.Scratch = v }),
	))
	require.NoError(t, err)

	_, err = fieldseal.New(schema, fieldseal.NoKey(), sealtest.Base64Crypto{})
	require.Error(t, err)
	assert.ErrorIs(t, err, fieldseal.ErrShape)
	assert.Contains(t, err.Error(), "companion")
}

func TestNew_EmptyIVSlotName(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)

	_, err = fieldseal.New(schema, fieldseal.NoKey(), sealtest.Base64Crypto{},
		fieldseal.WithIVSlot(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, fieldseal.ErrShape)
}
