// Package errs defines the sentinel errors returned by packuint packages.
//
// Argument errors all wrap ErrInvalidArgument, so a caller that only cares
// about the class of failure can test for it directly:
//
//	if errors.Is(err, errs.ErrInvalidArgument) {
//	    // caller supplied a bad value or buffer
//	}
//
// Errors returned by the codec are often wrapped with additional context
// using fmt.Errorf("%w: ..."), always test with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the parent of every argument error below.
var ErrInvalidArgument = errors.New("invalid argument")

// Packed codec errors.
var (
	// ErrNegativeValue is returned when encoding a value below zero.
	ErrNegativeValue = fmt.Errorf("%w: negative value", ErrInvalidArgument)
	// ErrValueTooLarge is returned when encoding a value above the largest packable value.
	ErrValueTooLarge = fmt.Errorf("%w: value too large", ErrInvalidArgument)
	// ErrLengthMismatch is returned when the length implied by the first byte
	// disagrees with the number of bytes supplied.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidArgument)
	// ErrBufferTooShort is returned when a packed value would run off the end of a buffer.
	ErrBufferTooShort = fmt.Errorf("%w: buffer too short", ErrInvalidArgument)
	// ErrEmptyInput is returned when decoding zero bytes.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalidArgument)
	// ErrInvalidIndex is returned for a negative start or element index.
	ErrInvalidIndex = fmt.Errorf("%w: negative index", ErrInvalidArgument)
)

// Frame and compression errors.
var (
	ErrInvalidMagic           = errors.New("invalid frame magic")
	ErrUnsupportedVersion     = errors.New("unsupported frame version")
	ErrInvalidFrameSize       = errors.New("invalid frame size")
	ErrChecksumMismatch       = errors.New("frame checksum mismatch")
	ErrCountMismatch          = errors.New("frame value count mismatch")
	ErrEncoderFinished        = errors.New("encoder already finished")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrDecompressedTooLarge   = errors.New("decompressed payload exceeds limit")
)
