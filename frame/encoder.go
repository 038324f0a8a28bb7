package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/packuint/encoding"
	"github.com/arloliu/packuint/errs"
	"github.com/arloliu/packuint/internal/hash"
	"github.com/arloliu/packuint/internal/options"
	"github.com/arloliu/packuint/internal/pool"
)

// Encoder collects packed values and serializes them as a single frame.
//
// An Encoder is single-use: after Finish it rejects further writes.
// It is not safe for concurrent use.
type Encoder struct {
	cfg      *EncoderConfig
	seq      *encoding.PackedEncoder
	finished bool
}

// NewEncoder creates a frame encoder.
//
// Parameters:
//   - opts: Optional settings (WithCompression, WithChecksum, WithCapacityHint)
//
// Returns:
//   - *Encoder: Encoder ready for Write calls
//   - error: ErrUnsupportedCompression or ErrInvalidArgument from an option
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	seq := encoding.NewPackedEncoder()
	if cfg.capacityHint > 0 {
		seq.Grow(cfg.capacityHint)
	}

	return &Encoder{cfg: cfg, seq: seq}, nil
}

// Write appends one value to the frame.
func (e *Encoder) Write(value int64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	return e.seq.Write(value)
}

// WriteSlice appends all values, or none if any is out of range.
func (e *Encoder) WriteSlice(values []int64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	return e.seq.WriteSlice(values)
}

// Len returns the number of values written so far.
func (e *Encoder) Len() int {
	if e.finished {
		return 0
	}

	return e.seq.Len()
}

// Finish compresses the collected payload and returns the complete frame.
//
// The returned slice is newly allocated and owned by the caller. The encoder
// releases its buffers and cannot be reused, even if Finish fails.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer e.seq.Finish()

	payload := e.seq.Bytes()

	stored, err := e.cfg.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("%s payload compression failed: %w", e.cfg.compression, err)
	}

	h := Header{
		Version:     Version,
		Compression: e.cfg.compression,
		Count:       int64(e.seq.Len()),
		PayloadSize: int64(len(stored)),
	}
	if e.cfg.checksum {
		h.Flags |= FlagChecksum
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(MaxHeaderSize + len(stored) + hash.ChecksumSize)

	buf.B, err = h.appendTo(buf.B)
	if err != nil {
		return nil, err
	}
	_, _ = buf.Write(stored)

	if h.HasChecksum() {
		buf.B = binary.BigEndian.AppendUint64(buf.B, hash.Checksum(payload))
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
