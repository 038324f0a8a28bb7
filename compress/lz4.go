package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize caps the adaptive decompression buffer.
const lz4MaxDecompressedSize = 64 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses LZ4 block compression, the fastest built-in decompressor.
//
// LZ4 blocks do not record their decompressed size, so Decompress grows its
// output buffer until the block fits.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block. Empty input yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress decompresses a single LZ4 block. Empty input yields nil.
//
// The output buffer starts at 4x the input and doubles on
// lz4.ErrInvalidSourceShortBuffer, up to 64MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := uncompressLZ4(data, lz4MaxDecompressedSize)
	if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return out, err
}

// DecompressLimit is Decompress with the buffer growth capped at limit
// (and never above 64MiB).
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit = min(limit, lz4MaxDecompressedSize)

	out, err := uncompressLZ4(data, limit)
	if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
		return nil, tooLarge("lz4", limit)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// uncompressLZ4 grows the output buffer until the block fits or maxSize is
// reached. A block that does not fit in maxSize returns
// lz4.ErrInvalidSourceShortBuffer unwrapped.
func uncompressLZ4(data []byte, maxSize int) ([]byte, error) {
	if maxSize <= 0 {
		return nil, lz4.ErrInvalidSourceShortBuffer
	}

	for size := min(len(data)*4, maxSize); ; size = min(size*2, maxSize) {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if size == maxSize {
			return nil, err
		}
	}
}
