package fieldseal

import (
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Default compression settings for the secretbox primitive.
const (
	defaultCompressionThreshold = 1024 // 1KB
	minCompressionSavings       = 0.10 // 10% minimum savings to use compression

	// maxDecompressedSize caps decompression output (64MB), enforced by
	// the decoder itself, so a small payload cannot expand to consume all
	// available memory.
	maxDecompressedSize = 64 * 1024 * 1024
)

// Flag byte prepended to the secretbox payload before sealing.
const (
	flagNoCompression byte = 0x00
	flagZstd          byte = 0x01
)

// ErrDecompressionFailed indicates zstd decompression of a sealed payload failed.
var ErrDecompressionFailed = errors.New("decompression failed")

var (
	// zstd encoder and decoder are thread-safe and reusable
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdOnce    sync.Once
	zstdErr     error
)

func initZstd() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zstdErr != nil {
			return
		}
		zstdDecoder, zstdErr = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecompressedSize))
		if zstdErr != nil {
			zstdEncoder.Close()
			zstdEncoder = nil
		}
	})
	return zstdEncoder, zstdDecoder, zstdErr
}

// maybeCompress compresses data when it exceeds the threshold and the
// savings are worthwhile. Returns the (possibly compressed) data and the
// flag byte recording what happened.
func maybeCompress(data []byte, threshold int, disabled bool) ([]byte, byte) {
	if disabled || len(data) < threshold {
		return data, flagNoCompression
	}

	encoder, _, err := initZstd()
	if err != nil {
		return data, flagNoCompression
	}
	compressed := encoder.EncodeAll(data, nil)

	savings := float64(len(data)-len(compressed)) / float64(len(data))
	if savings < minCompressionSavings {
		return data, flagNoCompression
	}
	return compressed, flagZstd
}

// decompress reverses maybeCompress based on the flag byte.
func decompress(data []byte, flag byte) ([]byte, error) {
	switch flag {
	case flagNoCompression:
		return data, nil
	case flagZstd:
		_, decoder, err := initZstd()
		if err != nil {
			return nil, err
		}
		result, err := decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, ErrDecompressionFailed
		}
		return result, nil
	default:
		return nil, ErrDecompressionFailed
	}
}
