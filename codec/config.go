package codec

import (
	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/internal/options"
)

// DefaultMaxPixels caps the pixel count a Decoder accepts before allocating the
// pixel buffer. 400 million RGBA pixels is 1.6GB of memory.
const DefaultMaxPixels = 400_000_000

// Config holds the settings shared by Encoder and Decoder.
type Config struct {
	maxPixels       uint64
	validateHeader  bool
	strictEndMarker bool
}

func newConfig() *Config {
	return &Config{maxPixels: DefaultMaxPixels}
}

// MaxPixels returns the configured pixel count limit.
func (c *Config) MaxPixels() uint64 {
	return c.maxPixels
}

func (c *Config) setMaxPixels(n uint64) error {
	if n == 0 {
		return errs.ErrInvalidMaxPixels
	}
	c.maxPixels = n

	return nil
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Config]

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Config]

// Option is accepted by both NewEncoder and NewDecoder.
type Option = options.Option[*Config]

// WithMaxPixels limits width*height of the images an Encoder or Decoder accepts.
// Images above the limit fail with errs.ErrTooManyPixels.
func WithMaxPixels(n uint64) Option {
	return options.New(func(c *Config) error {
		return c.setMaxPixels(n)
	})
}

// WithHeaderValidation enables strict header checks: channels must be 3 or 4 and
// colorspace 0 or 1. By default both bytes are passed through unchanged.
func WithHeaderValidation(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.validateHeader = enabled
	})
}

// WithStrictEndMarker makes the Decoder verify that the stream ends with the
// 8-byte end marker. By default the trailing bytes are not inspected.
func WithStrictEndMarker(enabled bool) DecoderOption {
	return options.NoError(func(c *Config) {
		c.strictEndMarker = enabled
	})
}
