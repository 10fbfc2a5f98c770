package fieldseal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireMap_InsertionOrder(t *testing.T) {
	m := NewWireMap()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestWireMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewWireMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestWireMap_NilValueIsPresent(t *testing.T) {
	m := NewWireMap()
	m.Set("a", nil)

	assert.True(t, m.Has("a"))
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestWireMap_Delete(t *testing.T) {
	m := NewWireMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Delete("b")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))

	// Deleting an absent key is a no-op.
	m.Delete("zzz")
	assert.Equal(t, 2, m.Len())
}

func TestWireMap_Range(t *testing.T) {
	m := NewWireMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	m.Range(func(key string, value any) bool {
		seen = append(seen, key)
		return key != "b" // stop after b
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestWireMap_Clone(t *testing.T) {
	m := NewWireMap()
	m.Set("a", 1)
	m.Set("b", 2)

	c := m.Clone()
	c.Set("a", 99)
	c.Set("z", 3)

	v, _ := m.Get("a")
	assert.Equal(t, 1, v)
	assert.False(t, m.Has("z"))
	assert.Equal(t, []string{"a", "b", "z"}, c.Keys())
}
