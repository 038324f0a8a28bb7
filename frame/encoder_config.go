package frame

import (
	"fmt"

	"github.com/arloliu/packuint/compress"
	"github.com/arloliu/packuint/errs"
	"github.com/arloliu/packuint/format"
	"github.com/arloliu/packuint/internal/options"
)

// EncoderConfig holds the settings applied by EncoderOption values.
type EncoderConfig struct {
	compression  format.CompressionType
	codec        compress.Codec
	checksum     bool
	capacityHint int
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		checksum:    true,
	}
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}

	c.compression = comp
	c.codec = codec

	return nil
}

func (c *EncoderConfig) setCapacityHint(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: capacity hint %d", errs.ErrInvalidArgument, n)
	}
	c.capacityHint = n

	return nil
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload codec. The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithChecksum enables or disables the xxHash64 trailer. It is enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.checksum = enabled
	})
}

// WithCapacityHint pre-grows the payload buffer for about n bytes of packed values.
func WithCapacityHint(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCapacityHint(n)
	})
}
