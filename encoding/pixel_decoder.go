package encoding

import (
	"fmt"

	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

// PixelDecoder reconstructs pixels from qoif chunks.
//
// The decoder reads only the chunk body it was created with; the header and
// the end marker must already be stripped by the caller.
//
// Note: The PixelDecoder is NOT thread-safe.
type PixelDecoder struct {
	data  []byte
	pos   int
	cache pixel.Cache
	prev  pixel.Pixel
}

// NewPixelDecoder creates a decoder over the chunk body.
func NewPixelDecoder(body []byte) *PixelDecoder {
	d := &PixelDecoder{}
	d.Reset(body)

	return d
}

// Reset restarts decoding over a new chunk body with a cleared cache.
func (d *PixelDecoder) Reset(body []byte) {
	d.data = body
	d.pos = 0
	d.cache.Reset()
	d.prev = pixel.Start
}

// Offset returns the number of body bytes consumed so far.
func (d *PixelDecoder) Offset() int {
	return d.pos
}

// Decode fills dst with exactly len(dst) pixels and stops, leaving any
// remaining body bytes unread.
//
// Returns:
//   - error: ErrTruncatedStream if the body ends before dst is full,
//     ErrRunOverflow if a run extends past len(dst)
func (d *PixelDecoder) Decode(dst []pixel.Pixel) error {
	for i := 0; i < len(dst); {
		if d.pos >= len(d.data) {
			return fmt.Errorf("%w: body ended after %d of %d pixels", errs.ErrTruncatedStream, i, len(dst))
		}

		tag := d.data[d.pos]
		d.pos++

		var px pixel.Pixel
		switch {
		case tag == section.TagRGB:
			if err := d.need(3, i, len(dst)); err != nil {
				return err
			}
			px = pixel.New(d.data[d.pos], d.data[d.pos+1], d.data[d.pos+2], d.prev.A)
			d.pos += 3
		case tag == section.TagRGBA:
			if err := d.need(4, i, len(dst)); err != nil {
				return err
			}
			px = pixel.New(d.data[d.pos], d.data[d.pos+1], d.data[d.pos+2], d.data[d.pos+3])
			d.pos += 4
		default:
			switch tag & section.TagMask {
			case section.TagIndex:
				px = d.cache.Lookup(tag & section.PayloadMask)
			case section.TagDiff:
				px = pixel.New(
					d.prev.R+(tag>>4&0x03)-section.DiffBias,
					d.prev.G+(tag>>2&0x03)-section.DiffBias,
					d.prev.B+(tag&0x03)-section.DiffBias,
					d.prev.A,
				)
			case section.TagLuma:
				if err := d.need(1, i, len(dst)); err != nil {
					return err
				}
				rb := d.data[d.pos]
				d.pos++
				dg := (tag & section.PayloadMask) - section.LumaGreenBias
				px = pixel.New(
					d.prev.R+dg+(rb>>4)-section.LumaRBBias,
					d.prev.G+dg,
					d.prev.B+dg+(rb&0x0F)-section.LumaRBBias,
					d.prev.A,
				)
			case section.TagRun:
				n := int(tag&section.PayloadMask) + 1
				if i+n > len(dst) {
					return fmt.Errorf("%w: run of %d at pixel %d of %d", errs.ErrRunOverflow, n, i, len(dst))
				}
				for range n {
					dst[i] = d.prev
					d.cache.Update(d.prev)
					i++
				}

				continue
			default:
				return fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrUnknownTag, tag, d.pos-1)
			}
		}

		dst[i] = px
		d.cache.Update(px)
		d.prev = px
		i++
	}

	return nil
}

// need checks that n payload bytes follow the current tag.
func (d *PixelDecoder) need(n, decoded, total int) error {
	if len(d.data)-d.pos < n {
		return fmt.Errorf("%w: chunk at offset %d cut short after %d of %d pixels",
			errs.ErrTruncatedStream, d.pos-1, decoded, total)
	}

	return nil
}
