package bson_test

import (
	"context"
	"testing"

	"github.com/fieldseal/fieldseal"
	bsonformat "github.com/fieldseal/fieldseal/bson"
	"github.com/fieldseal/fieldseal/sealtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/bson", bsonformat.New().ContentType())
}

func TestRoundTrip_PreservesSlotOrder(t *testing.T) {
	m := fieldseal.NewWireMap()
	m.Set("zebra", "z")
	m.Set("apple", int64(1))
	m.Set("mango", true)
	m.Set("null_slot", nil)

	f := bsonformat.New()
	data, err := f.Marshal(m)
	require.NoError(t, err)

	got, err := f.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "mango", "null_slot"}, got.Keys())

	apple, _ := got.Get("apple")
	assert.Equal(t, int64(1), apple)
	ns, ok := got.Get("null_slot")
	require.True(t, ok)
	assert.Nil(t, ns)
}

func TestUnmarshal_Garbage(t *testing.T) {
	_, err := bsonformat.New().Unmarshal([]byte("not bson"))
	assert.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)
	codec, err := fieldseal.New(schema, fieldseal.StaticKey(sealtest.TestKey()), fieldseal.AESGCM())
	require.NoError(t, err)

	user := sealtest.User{ID: 1, Name: "John", Email: "john@test.com", Age: 30}
	data, err := codec.Marshal(context.Background(), &user, bsonformat.New())
	require.NoError(t, err)

	got, err := codec.Unmarshal(context.Background(), data, bsonformat.New())
	require.NoError(t, err)
	assert.Equal(t, &user, got)
}
