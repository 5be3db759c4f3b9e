package codec

import (
	"fmt"

	"github.com/arloliu/qoif/encoding"
	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/internal/options"
	"github.com/arloliu/qoif/internal/pool"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

// Encoder produces complete qoif streams: header, chunk body and end marker.
//
// An Encoder holds only configuration and the statistics of its last call, so
// it can be reused for any number of images. It is NOT safe for concurrent use.
type Encoder struct {
	*Config
	stats encoding.Stats
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{Config: config}, nil
}

// Encode serializes the header and the pixel buffer into a new byte slice.
//
// Parameters:
//   - h: header; Width and Height must describe px
//   - px: pixel buffer in row-major order, len(px) == h.Width*h.Height
//
// Returns:
//   - []byte: the encoded stream, owned by the caller
//   - error: ErrZeroDimension, ErrPixelCountMismatch, ErrTooManyPixels, or a
//     header validation error when WithHeaderValidation is enabled
func (e *Encoder) Encode(h section.Header, px []pixel.Pixel) ([]byte, error) {
	if err := e.checkHeader(&h, uint64(len(px))); err != nil {
		return nil, err
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	buf.Grow(section.HeaderSize + len(px)*section.MaxChunkSize + section.EndMarkerSize)
	buf.B = h.AppendTo(buf.B)

	enc := encoding.NewPixelEncoder(buf)
	enc.WriteSlice(px)
	enc.Finish()
	e.stats = enc.Stats()

	_, _ = buf.Write(section.EndMarker[:])

	return buf.Clone(), nil
}

// Stats returns the chunk statistics of the last successful Encode call.
func (e *Encoder) Stats() encoding.Stats {
	return e.stats
}

func (e *Encoder) checkHeader(h *section.Header, count uint64) error {
	if h.Width == 0 || h.Height == 0 {
		return errs.ErrZeroDimension
	}
	if want := h.PixelCount(); want != count {
		return fmt.Errorf("%w: header %dx%d needs %d pixels, got %d",
			errs.ErrPixelCountMismatch, h.Width, h.Height, want, count)
	}
	if count > e.maxPixels {
		return fmt.Errorf("%w: %d > %d", errs.ErrTooManyPixels, count, e.maxPixels)
	}
	if e.validateHeader {
		return h.Validate()
	}

	return nil
}
