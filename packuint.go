// Package packuint provides a compact, self-describing encoding for unsigned
// integers in the range 0 to 1,077,936,127.
//
// Each value takes 1 to 4 bytes. The top two bits of the first byte give the
// encoded length, so packed values can be embedded inside larger records and
// parsed back without a separate length field.
//
// # Core Features
//
//   - 1 byte for 0..63, 2 bytes up to 16,447, 3 bytes up to 4,210,687, 4 bytes up to 1,077,936,127
//   - Length known from the first byte alone
//   - One canonical encoding per value
//   - Typed errors that wrap the sentinels in the errs package
//   - Frames: a list of packed values with optional compression (Zstd, S2, LZ4)
//     and an xxHash64 checksum
//
// # Basic Usage
//
//	data, err := packuint.Encode(16448) // [0x80 0x00 0x40]
//	if err != nil {
//	    return err
//	}
//
//	value, err := packuint.Decode(data)
//
// Frames:
//
//	frame, err := packuint.EncodeFrame([]int64{1, 2, 3},
//	    frame.WithCompression(format.CompressionS2),
//	)
//	values, err := packuint.DecodeFrame(frame)
//
// # Package Structure
//
// This package wraps the most common calls. Use the packed package for
// append-style encoding, the encoding package for raw packed sequences, and
// the frame package for streaming writes and random access.
package packuint

import (
	"github.com/arloliu/packuint/frame"
	"github.com/arloliu/packuint/packed"
)

// MaxValue is the largest value that can be packed.
const MaxValue = packed.MaxValue

// Encode converts value into 1 to 4 packed bytes.
//
// Returns errs.ErrNegativeValue or errs.ErrValueTooLarge if value is outside
// 0..MaxValue.
func Encode(value int64) ([]byte, error) {
	return packed.Encode(value)
}

// Decode converts a complete packed value back into an integer.
//
// Returns errs.ErrEmptyInput for empty data and errs.ErrLengthMismatch if the
// length implied by the first byte differs from len(data).
func Decode(data []byte) (int64, error) {
	return packed.Decode(data)
}

// DecodeAt decodes the packed value starting at buf[start], ignoring any bytes after it.
//
// Returns errs.ErrBufferTooShort if the value would run past the end of buf.
func DecodeAt(buf []byte, start int) (int64, error) {
	return packed.DecodeAt(buf, start)
}

// ExpectedLength returns the length of a packed value from its first byte.
func ExpectedLength(first byte) int {
	return packed.ExpectedLength(first)
}

// EncodeFrame packs values into a single frame.
//
// Parameters:
//   - values: Values to store, each within 0..MaxValue
//   - opts: Optional frame settings (see frame.EncoderOption)
//
// Returns:
//   - []byte: Encoded frame
//   - error: An option error or an out-of-range value
func EncodeFrame(values []int64, opts ...frame.EncoderOption) ([]byte, error) {
	enc, err := frame.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	if err := enc.WriteSlice(values); err != nil {
		return nil, err
	}

	return enc.Finish()
}

// DecodeFrame validates a frame and returns its values.
func DecodeFrame(data []byte) ([]int64, error) {
	dec, err := frame.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Values(), nil
}
