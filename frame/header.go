package frame

import (
	"fmt"

	"github.com/arloliu/packuint/errs"
	"github.com/arloliu/packuint/format"
	"github.com/arloliu/packuint/packed"
)

const (
	MagicByte0 = 0x50 // 'P'
	MagicByte1 = 0x55 // 'U'
	Version    = 0x1  // current frame version, stored in the high nibble of byte 2

	FlagChecksum = 0x01 // xxHash64 trailer present
	flagsMask    = 0x0F
	knownFlags   = FlagChecksum

	fixedHeaderSize = 4 // magic, version/flags, compression

	// MaxHeaderSize is the largest possible header: fixed part plus two 4-byte packed values.
	MaxHeaderSize = fixedHeaderSize + 2*packed.MaxLength
)

// Header describes a frame without its payload.
type Header struct {
	Version     uint8
	Flags       uint8
	Compression format.CompressionType
	// Count is the number of packed values in the payload.
	Count       int64
	// PayloadSize is the stored payload size in bytes, after compression.
	PayloadSize int64
}

// HasChecksum reports whether the frame carries an xxHash64 trailer.
func (h Header) HasChecksum() bool {
	return h.Flags&FlagChecksum != 0
}

// appendTo appends the encoded header to dst.
func (h Header) appendTo(dst []byte) ([]byte, error) {
	dst = append(dst, MagicByte0, MagicByte1, h.Version<<4|h.Flags&flagsMask, byte(h.Compression))

	dst, err := packed.AppendEncode(dst, h.Count)
	if err != nil {
		return dst, fmt.Errorf("%w: value count: %w", errs.ErrInvalidFrameSize, err)
	}

	dst, err = packed.AppendEncode(dst, h.PayloadSize)
	if err != nil {
		return dst, fmt.Errorf("%w: payload size: %w", errs.ErrInvalidFrameSize, err)
	}

	return dst, nil
}

// ParseHeader decodes the header at the start of data.
//
// Returns:
//   - Header: Decoded header
//   - int: Number of header bytes; the payload starts at this offset
//   - error: ErrInvalidFrameSize, ErrInvalidMagic, ErrUnsupportedVersion or
//     ErrUnsupportedCompression
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) < fixedHeaderSize {
		return Header{}, 0, fmt.Errorf("%w: %d bytes is shorter than the fixed header", errs.ErrInvalidFrameSize, len(data))
	}

	if data[0] != MagicByte0 || data[1] != MagicByte1 {
		return Header{}, 0, fmt.Errorf("%w: 0x%02x%02x", errs.ErrInvalidMagic, data[0], data[1])
	}

	h := Header{
		Version:     data[2] >> 4,
		Flags:       data[2] & flagsMask,
		Compression: format.CompressionType(data[3]),
	}

	if h.Version != Version {
		return Header{}, 0, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	if h.Flags&^knownFlags != 0 {
		return Header{}, 0, fmt.Errorf("%w: unknown flags 0x%x", errs.ErrUnsupportedVersion, h.Flags)
	}

	if !h.Compression.IsValid() {
		return Header{}, 0, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, data[3])
	}

	offset := fixedHeaderSize

	count, n, err := packed.DecodeNext(data[offset:])
	if err != nil {
		return Header{}, 0, fmt.Errorf("%w: value count: %w", errs.ErrInvalidFrameSize, err)
	}
	h.Count = count
	offset += n

	size, n, err := packed.DecodeNext(data[offset:])
	if err != nil {
		return Header{}, 0, fmt.Errorf("%w: payload size: %w", errs.ErrInvalidFrameSize, err)
	}
	h.PayloadSize = size
	offset += n

	return h, offset, nil
}
