package fieldseal

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeCompress_BelowThreshold(t *testing.T) {
	data := []byte("short")
	out, flag := maybeCompress(data, 1024, false)
	assert.Equal(t, flagNoCompression, flag)
	assert.Equal(t, data, out)
}

func TestMaybeCompress_Disabled(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 1024)
	out, flag := maybeCompress(data, 1024, true)
	assert.Equal(t, flagNoCompression, flag)
	assert.Equal(t, data, out)
}

func TestMaybeCompress_CompressibleData(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 1024)
	out, flag := maybeCompress(data, 1024, false)
	require.Equal(t, flagZstd, flag)
	assert.Less(t, len(out), len(data))

	back, err := decompress(out, flag)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestMaybeCompress_IncompressibleData(t *testing.T) {
	// Random bytes cannot reach the minimum savings, so the original
	// data passes through uncompressed.
	data := make([]byte, 4096)
	_, err := rand.Read(data)
	require.NoError(t, err)

	out, flag := maybeCompress(data, 1024, false)
	assert.Equal(t, flagNoCompression, flag)
	assert.Equal(t, data, out)
}

func TestDecompress_OversizedPayload(t *testing.T) {
	// A payload that inflates past the cap is rejected by the decoder
	// instead of being materialized first.
	data := make([]byte, maxDecompressedSize+1)
	out, flag := maybeCompress(data, 1024, false)
	require.Equal(t, flagZstd, flag)

	_, err := decompress(out, flag)
	assert.ErrorIs(t, err, ErrDecompressionFailed)
}

func TestDecompress_UnknownFlag(t *testing.T) {
	_, err := decompress([]byte("data"), 0x7f)
	assert.ErrorIs(t, err, ErrDecompressionFailed)
}

func TestDecompress_CorruptedData(t *testing.T) {
	_, err := decompress([]byte("not zstd at all"), flagZstd)
	assert.ErrorIs(t, err, ErrDecompressionFailed)
}
