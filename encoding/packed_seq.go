package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/packuint/errs"
	"github.com/arloliu/packuint/internal/pool"
	"github.com/arloliu/packuint/packed"
)

// PackedEncoder writes a sequence of packed values back to back.
//
// The payload carries no delimiters or count: each value announces its own
// length in its first byte, so the sequence can be walked with PackedDecoder.
// Callers that need the count up front (as frames do) must record it themselves.
type PackedEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ SequenceEncoder[int64] = (*PackedEncoder)(nil)

// NewPackedEncoder creates an encoder backed by a pooled buffer.
//
// Call Finish when done to return the buffer to the pool:
//
//	enc := encoding.NewPackedEncoder()
//	defer enc.Finish()
func NewPackedEncoder() *PackedEncoder {
	return &PackedEncoder{buf: pool.GetSequenceBuffer()}
}

// Write appends one packed value.
//
// Returns:
//   - error: ErrNegativeValue or ErrValueTooLarge; the payload is unchanged on error
func (e *PackedEncoder) Write(value int64) error {
	out, err := packed.AppendEncode(e.buf.B, value)
	if err != nil {
		return err
	}

	e.buf.B = out
	e.count++

	return nil
}

// WriteSlice appends all values, or none if any of them is out of range.
//
// The needed space is computed in the validation pass so the buffer grows at most once.
func (e *PackedEncoder) WriteSlice(values []int64) error {
	total := 0
	for i, v := range values {
		n, err := packed.EncodedLength(v)
		if err != nil {
			return fmt.Errorf("value at index %d: %w", i, err)
		}
		total += n
	}

	e.buf.Grow(total)
	for _, v := range values {
		// validated above
		e.buf.B, _ = packed.AppendEncode(e.buf.B, v)
	}
	e.count += len(values)

	return nil
}

// Grow pre-allocates room for n more payload bytes.
func (e *PackedEncoder) Grow(n int) {
	e.buf.Grow(n)
}

// Bytes returns the encoded payload. Do not modify the returned slice.
func (e *PackedEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written since the last Reset.
func (e *PackedEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *PackedEncoder) Size() int {
	return e.buf.Len()
}

// Reset discards the payload and keeps the buffer.
func (e *PackedEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the buffer to the pool. Bytes must be copied out before calling it.
func (e *PackedEncoder) Finish() {
	if e.buf != nil {
		pool.PutSequenceBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// PackedDecoder reads sequences produced by PackedEncoder. It holds no state
// and the zero value is ready to use.
type PackedDecoder struct{}

var _ SequenceDecoder[int64] = PackedDecoder{}

// NewPackedDecoder creates a new PackedDecoder.
func NewPackedDecoder() PackedDecoder {
	return PackedDecoder{}
}

// All yields every value in data. A truncated trailing value ends the iteration
// with ErrBufferTooShort and the byte offset where it starts.
func (d PackedDecoder) All(data []byte) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		offset := 0
		for offset < len(data) {
			value, n, err := packed.DecodeNext(data[offset:])
			if err != nil {
				yield(0, fmt.Errorf("decode at offset %d: %w", offset, err))
				return
			}
			if !yield(value, nil) {
				return
			}
			offset += n
		}
	}
}

// At returns the value at index by walking the sequence from the start.
//
// Returns:
//   - int64: Decoded value
//   - error: ErrInvalidIndex for a negative index, ErrBufferTooShort if the
//     sequence holds fewer than index+1 values or is truncated
func (d PackedDecoder) At(data []byte, index int) (int64, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidIndex, index)
	}

	offset := 0
	for i := 0; offset < len(data); i++ {
		n := packed.ExpectedLength(data[offset])
		if i == index {
			return packed.DecodeAt(data, offset)
		}
		offset += n
	}

	return 0, fmt.Errorf("%w: index %d beyond end of sequence", errs.ErrBufferTooShort, index)
}

// Count returns the number of values in data. It fails if the last value is truncated.
func (d PackedDecoder) Count(data []byte) (int, error) {
	count := 0
	offset := 0
	for offset < len(data) {
		offset += packed.ExpectedLength(data[offset])
		count++
	}

	if offset > len(data) {
		return 0, fmt.Errorf("%w: last value needs %d more bytes", errs.ErrBufferTooShort, offset-len(data))
	}

	return count, nil
}
