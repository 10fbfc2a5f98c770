package yaml_test

import (
	"context"
	"testing"

	"github.com/fieldseal/fieldseal"
	"github.com/fieldseal/fieldseal/sealtest"
	yamlformat "github.com/fieldseal/fieldseal/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/yaml", yamlformat.New().ContentType())
}

func TestMarshal_PreservesSlotOrder(t *testing.T) {
	m := fieldseal.NewWireMap()
	m.Set("zebra", "z")
	m.Set("apple", int64(1))
	m.Set("mango", true)

	data, err := yamlformat.New().Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "zebra: z\napple: 1\nmango: true\n", string(data))
}

func TestRoundTrip(t *testing.T) {
	m := fieldseal.NewWireMap()
	m.Set("id", int64(1))
	m.Set("e2e_name", "Sm9obg==")
	m.Set("e2e_iv", nil)

	f := yamlformat.New()
	data, err := f.Marshal(m)
	require.NoError(t, err)

	got, err := f.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "e2e_name", "e2e_iv"}, got.Keys())

	name, _ := got.Get("e2e_name")
	assert.Equal(t, "Sm9obg==", name)
	iv, ok := got.Get("e2e_iv")
	require.True(t, ok)
	assert.Nil(t, iv)
}

func TestUnmarshal_NotAMapping(t *testing.T) {
	_, err := yamlformat.New().Unmarshal([]byte("- 1\n- 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected mapping")
}

func TestUnmarshal_Empty(t *testing.T) {
	m, err := yamlformat.New().Unmarshal(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestCodecRoundTrip(t *testing.T) {
	schema, err := sealtest.UserSchema()
	require.NoError(t, err)
	codec, err := fieldseal.New(schema, fieldseal.StaticKey(sealtest.TestKey()), fieldseal.AESGCM())
	require.NoError(t, err)

	user := sealtest.User{ID: 1, Name: "John", Email: "john@test.com", Age: 30}
	data, err := codec.Marshal(context.Background(), &user, yamlformat.New())
	require.NoError(t, err)

	got, err := codec.Unmarshal(context.Background(), data, yamlformat.New())
	require.NoError(t, err)
	assert.Equal(t, &user, got)
}
