package codec

import (
	"bytes"
	"fmt"

	"github.com/arloliu/qoif/encoding"
	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/internal/options"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

// Decoder parses complete qoif streams back into a header and a pixel buffer.
//
// A Decoder holds only configuration and can be reused and shared between
// goroutines; every Decode call owns its own cache and pixel buffer.
type Decoder struct {
	*Config
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	config := newConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Decoder{Config: config}, nil
}

// DecodeHeader parses and checks only the header of data.
//
// Returns:
//   - section.Header: the parsed header
//   - error: any header or dimension error Decode would report
func (d *Decoder) DecodeHeader(data []byte) (section.Header, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return section.Header{}, err
	}

	if h.Width == 0 || h.Height == 0 {
		return section.Header{}, errs.ErrZeroDimension
	}
	if count := h.PixelCount(); count > d.maxPixels {
		return section.Header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			errs.ErrTooManyPixels, h.Width, h.Height, d.maxPixels)
	}
	if d.validateHeader {
		if err := h.Validate(); err != nil {
			return section.Header{}, err
		}
	}

	return h, nil
}

// Decode parses data into its header and pixel buffer.
//
// The chunk body is everything between the header and the final 8 bytes.
// Decoding stops as soon as Width*Height pixels have been produced; trailing
// body bytes are ignored. No pixel buffer is returned on failure.
//
// Returns:
//   - section.Header: the parsed header
//   - []pixel.Pixel: Width*Height pixels in row-major order
//   - error: a FormatError, TruncatedStreamError or DimensionError from errs
func (d *Decoder) Decode(data []byte) (section.Header, []pixel.Pixel, error) {
	h, err := d.DecodeHeader(data)
	if err != nil {
		return section.Header{}, nil, err
	}

	if len(data) < section.MinStreamSize {
		return section.Header{}, nil, fmt.Errorf("%w: %d bytes, need at least %d",
			errs.ErrTruncatedStream, len(data), section.MinStreamSize)
	}

	if d.strictEndMarker && !bytes.Equal(data[len(data)-section.EndMarkerSize:], section.EndMarker[:]) {
		return section.Header{}, nil, errs.ErrInvalidEndMarker
	}

	body := data[section.HeaderSize : len(data)-section.EndMarkerSize]

	// Every chunk yields at most MaxRunLength pixels; reject impossible bodies
	// before allocating the pixel buffer.
	count := h.PixelCount()
	if count > uint64(len(body))*section.MaxRunLength {
		return section.Header{}, nil, fmt.Errorf("%w: %d body bytes cannot hold %d pixels",
			errs.ErrTruncatedStream, len(body), count)
	}

	px := make([]pixel.Pixel, count)
	if err := encoding.NewPixelDecoder(body).Decode(px); err != nil {
		return section.Header{}, nil, err
	}

	return h, px, nil
}
