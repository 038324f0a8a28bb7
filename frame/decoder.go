package frame

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/packuint/compress"
	"github.com/arloliu/packuint/encoding"
	"github.com/arloliu/packuint/errs"
	"github.com/arloliu/packuint/format"
	"github.com/arloliu/packuint/internal/hash"
	"github.com/arloliu/packuint/packed"
)

// Decoder gives access to the values of a validated frame.
//
// All validation happens in NewDecoder, so the accessors cannot fail.
// A Decoder is immutable and safe for concurrent use. For uncompressed frames it
// reads directly from the slice passed to NewDecoder, which must not be
// modified while the Decoder is in use.
type Decoder struct {
	header  Header
	payload []byte
	count   int
}

// NewDecoder parses and validates a frame.
//
// The frame must be exactly one frame long: trailing bytes are rejected. The
// payload is decompressed, its checksum verified when present, and its value
// count compared with the header. Decompression stops at packed.MaxLength
// bytes per announced value, so a small frame cannot expand into a large
// allocation.
//
// Returns:
//   - *Decoder: Decoder over the uncompressed payload
//   - error: ErrInvalidFrameSize, ErrInvalidMagic, ErrUnsupportedVersion,
//     ErrUnsupportedCompression, ErrDecompressedTooLarge, ErrChecksumMismatch
//     or ErrCountMismatch
func NewDecoder(data []byte) (*Decoder, error) {
	h, offset, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	trailer := 0
	if h.HasChecksum() {
		trailer = hash.ChecksumSize
	}

	if int64(len(data)-offset) != h.PayloadSize+int64(trailer) {
		return nil, fmt.Errorf("%w: header announces %d payload bytes plus %d trailer bytes, have %d",
			errs.ErrInvalidFrameSize, h.PayloadSize, trailer, len(data)-offset)
	}

	stored := data[offset : offset+int(h.PayloadSize)]

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	// every value takes at most MaxLength bytes, which bounds the payload
	limit := int(min(h.Count*packed.MaxLength, math.MaxInt))

	payload, err := codec.DecompressLimit(stored, limit)
	if err != nil {
		return nil, fmt.Errorf("%s payload decompression failed: %w", h.Compression, err)
	}

	if h.HasChecksum() {
		want := binary.BigEndian.Uint64(data[len(data)-hash.ChecksumSize:])
		if got := hash.Checksum(payload); got != want {
			return nil, fmt.Errorf("%w: stored 0x%016x, computed 0x%016x", errs.ErrChecksumMismatch, want, got)
		}
	}

	count, err := encoding.NewPackedDecoder().Count(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCountMismatch, err)
	}

	if int64(count) != h.Count {
		return nil, fmt.Errorf("%w: header announces %d values, payload holds %d", errs.ErrCountMismatch, h.Count, count)
	}

	return &Decoder{header: h, payload: payload, count: count}, nil
}

// Header returns the parsed frame header.
func (d *Decoder) Header() Header {
	return d.header
}

// Count returns the number of values in the frame.
func (d *Decoder) Count() int {
	return d.count
}

// Compression returns the codec the payload was stored with.
func (d *Decoder) Compression() format.CompressionType {
	return d.header.Compression
}

// All yields every value in order.
func (d *Decoder) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		rest := d.payload
		for len(rest) > 0 {
			value, n, err := packed.DecodeNext(rest)
			if err != nil || !yield(value) {
				return
			}
			rest = rest[n:]
		}
	}
}

// At returns the value at index. The second result is false if index is out of range.
func (d *Decoder) At(index int) (int64, bool) {
	if index < 0 || index >= d.count {
		return 0, false
	}

	value, err := encoding.NewPackedDecoder().At(d.payload, index)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Values returns all values as a new slice.
func (d *Decoder) Values() []int64 {
	values := make([]int64, 0, d.count)
	for v := range d.All() {
		values = append(values, v)
	}

	return values
}
