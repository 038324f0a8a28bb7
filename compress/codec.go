package compress

import (
	"fmt"

	"github.com/arloliu/packuint/errs"
	"github.com/arloliu/packuint/format"
)

// Compressor compresses a frame payload.
//
// Memory management:
//   - Returned slice is owned by the caller unless documented otherwise
//   - Input slice is not modified
//   - Internal encoders may be pooled and reused
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations must be safe for concurrent use. Corrupted or foreign input
// returns an error rather than garbage.
//
// DecompressLimit behaves like Decompress but fails with
// errs.ErrDecompressedTooLarge once the output would exceed limit bytes,
// without allocating past that bound. Use it for untrusted input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing a single payload.
type Stats struct {
	// Algorithm identifies the codec used.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int
	// CompressedSize is the payload size after compression.
	CompressedSize int
}

// Ratio returns CompressedSize / OriginalSize, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage. Negative values mean
// the codec expanded the payload, which is common for short packed sequences.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

func tooLarge(algorithm string, limit int) error {
	return fmt.Errorf("%s: %w: limit %d bytes", algorithm, errs.ErrDecompressedTooLarge, limit)
}

// GetCodec returns the shared built-in Codec for compressionType.
//
// Returns:
//   - Codec: Stateless codec, safe for concurrent use
//   - error: ErrUnsupportedCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

// Measure compresses data with the codec for compressionType and reports the result.
func Measure(compressionType format.CompressionType, data []byte) (Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return Stats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
	}, nil
}
