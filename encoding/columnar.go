package encoding

import "iter"

// SequenceEncoder appends values to a single contiguous payload.
type SequenceEncoder[T any] interface {
	// Write encodes a single value. On error nothing is written.
	Write(value T) error

	// WriteSlice encodes values in order. All values are validated first, so on
	// error nothing is written.
	WriteSlice(values []T) error

	// Bytes returns the encoded payload.
	// The returned slice is valid until the next call to Write, WriteSlice, Reset or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Reset discards all encoded values but keeps the buffer for reuse.
	Reset()

	// Finish returns the buffer to the pool. The encoder must not be used afterwards.
	Finish()
}

// SequenceDecoder reads values back from a payload produced by the matching encoder.
type SequenceDecoder[T any] interface {
	// All yields every value in data in order. If data is malformed the
	// iterator yields one final zero value with a non-nil error and stops.
	All(data []byte) iter.Seq2[T, error]

	// At returns the value at the zero-based index.
	At(data []byte, index int) (T, error)

	// Count returns the number of values in data, validating it fully.
	Count(data []byte) (int, error)
}
