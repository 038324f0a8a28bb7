package packed

import (
	"fmt"

	"github.com/arloliu/packuint/errs"
)

// EncodedLength returns the number of bytes Encode emits for value.
//
// Parameters:
//   - value: Integer to measure (0 to MaxValue inclusive)
//
// Returns:
//   - int: Encoded length, 1 to 4
//   - error: ErrNegativeValue or ErrValueTooLarge if value is out of range
func EncodedLength(value int64) (int, error) {
	switch {
	case value < 0:
		return 0, fmt.Errorf("%w: %d", errs.ErrNegativeValue, value)
	case value < TwoByteBase:
		return 1, nil
	case value < ThreeByteBase:
		return 2, nil
	case value < FourByteBase:
		return 3, nil
	case value < Limit:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: %d exceeds maximum %d", errs.ErrValueTooLarge, value, MaxValue)
	}
}

// Encode converts value into its packed byte representation.
//
// The smallest band containing value is selected. The band bias is subtracted,
// the offset is written most significant byte first and the band tag is stored
// in the top two bits of the first byte.
//
// Parameters:
//   - value: Integer to encode (0 to MaxValue inclusive)
//
// Returns:
//   - []byte: Newly allocated packed value, 1 to 4 bytes
//   - error: ErrNegativeValue or ErrValueTooLarge if value is out of range
func Encode(value int64) ([]byte, error) {
	return AppendEncode(make([]byte, 0, MaxLength), value)
}

// AppendEncode appends the packed representation of value to dst and returns
// the extended slice. On error dst is returned unchanged.
func AppendEncode(dst []byte, value int64) ([]byte, error) {
	n, err := EncodedLength(value)
	if err != nil {
		return dst, err
	}

	band := n - 1
	offset := uint32(value - bandBias[band]) //nolint:gosec

	start := len(dst)
	for shift := 8 * band; shift >= 0; shift -= 8 {
		dst = append(dst, byte(offset>>shift))
	}
	dst[start] |= bandTag[band]

	return dst, nil
}

// ExpectedLength returns the total length of a packed value given its first byte.
//
// Only the top two bits are read, so every byte yields a length between 1 and 4.
func ExpectedLength(first byte) int {
	return int((first>>tagShift)&0x03) + 1
}

// Decode converts a complete packed value back into an integer.
//
// The length of data must be exactly the length announced by its first byte.
// Decoding is all-or-nothing: no partial value is returned on error.
//
// Parameters:
//   - data: Packed value, 1 to 4 bytes
//
// Returns:
//   - int64: Decoded value (0 to MaxValue)
//   - error: ErrEmptyInput if data is empty, ErrLengthMismatch if the length
//     implied by data[0] differs from len(data)
func Decode(data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, errs.ErrEmptyInput
	}

	expected := ExpectedLength(data[0])
	if expected != len(data) {
		return 0, fmt.Errorf("%w: first byte 0x%02x implies %d bytes, got %d",
			errs.ErrLengthMismatch, data[0], expected, len(data))
	}

	return decodeBand(data, expected), nil
}

// DecodeAt decodes the packed value that starts at buf[start].
//
// The value length is taken from buf[start]; the bytes after it are left alone.
// This lets a packed value sit inside a larger record without a length prefix,
// as long as the caller tracks start itself.
//
// Parameters:
//   - buf: Buffer containing the packed value
//   - start: Index of the first byte of the packed value
//
// Returns:
//   - int64: Decoded value
//   - error: ErrInvalidIndex if start is negative, ErrBufferTooShort if the
//     packed value would extend past the end of buf
func DecodeAt(buf []byte, start int) (int64, error) {
	if start < 0 {
		return 0, fmt.Errorf("%w: start %d", errs.ErrInvalidIndex, start)
	}

	if start >= len(buf) {
		return 0, fmt.Errorf("%w: start %d, buffer length %d", errs.ErrBufferTooShort, start, len(buf))
	}

	expected := ExpectedLength(buf[start])
	if start+expected > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes at %d, buffer length %d",
			errs.ErrBufferTooShort, expected, start, len(buf))
	}

	return Decode(buf[start : start+expected])
}

// DecodeNext decodes the packed value at the front of buf and reports how many
// bytes it occupied, so a caller can walk a concatenation of packed values.
func DecodeNext(buf []byte) (int64, int, error) {
	if len(buf) == 0 {
		return 0, 0, errs.ErrEmptyInput
	}

	n := ExpectedLength(buf[0])
	if n > len(buf) {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooShort, n, len(buf))
	}

	value, err := Decode(buf[:n])
	if err != nil {
		return 0, 0, err
	}

	return value, n, nil
}

// decodeBand assembles the offset from data[:n] and adds the band bias.
// The caller guarantees len(data) >= n and n == ExpectedLength(data[0]).
// The largest 4-byte offset plus its bias is MaxValue, so the result is always
// in range.
func decodeBand(data []byte, n int) int64 {
	offset := uint32(data[0] & OffsetMask)
	for _, b := range data[1:n] {
		offset = offset<<8 | uint32(b)
	}

	return int64(offset) + bandBias[n-1]
}
