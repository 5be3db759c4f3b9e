// Package qoif provides a lossless, single-pass codec for the qoif raster
// image format together with flip, rotate and invert transforms over decoded
// images.
//
// A qoif stream is a 14-byte header (magic "qoif", height, width, channels,
// colorspace), a body of variable-length chunks and an 8-byte end marker.
// Each chunk describes one or more pixels relative to the previous pixel or
// to a 64-entry history of recently seen pixels, so photographic and
// synthetic images shrink considerably with a very small encoder.
//
// # Basic Usage
//
// Decoding, transforming and re-encoding a file:
//
//	import "github.com/arloliu/qoif"
//
//	data, _ := os.ReadFile("photo.qoi")
//	img, err := qoif.LoadFromBytes(data)
//	if err != nil {
//	    return err
//	}
//
//	qoif.RotateLeft(img, 1)
//	qoif.Invert(img)
//
//	out, _ := qoif.SaveToBytes(img)
//	_ = os.WriteFile("rotated.qoi", out, 0o644)
//
// Importing the package also registers the format with the standard image
// package, so image.Decode recognizes qoif streams:
//
//	m, format, err := image.Decode(reader) // format == "qoif"
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec and
// raster packages. For finer control use those packages directly:
//
//   - codec: whole-stream Encoder and Decoder with options
//   - encoding: chunk-level PixelEncoder and PixelDecoder
//   - raster: the decoded Image and its transforms
//   - section: the header and binary layout constants
//   - pixel: the pixel value and its history cache
//   - compress: container compression of finished streams
//
// # Error Handling
//
// Errors wrap one of errs.ErrFormat, errs.ErrTruncatedStream or
// errs.ErrDimension and can be matched with errors.Is.
package qoif

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/arloliu/qoif/codec"
	"github.com/arloliu/qoif/raster"
	"github.com/arloliu/qoif/section"
)

// FormatName is the name under which the format is registered with package image.
const FormatName = "qoif"

var errNilImage = errors.New("qoif: nil image")

func init() {
	image.RegisterFormat(FormatName, section.Magic, Decode, DecodeConfig)
}

// LoadFromBytes decodes a complete qoif stream.
//
// Parameters:
//   - data: the whole file contents
//   - opts: decoder options such as codec.WithStrictEndMarker
//
// Returns:
//   - *raster.Image: the decoded image, owning a fresh pixel buffer
//   - error: a FormatError, TruncatedStreamError or DimensionError from errs
//
// Example:
//
//	img, err := qoif.LoadFromBytes(data, codec.WithStrictEndMarker(true))
func LoadFromBytes(data []byte, opts ...codec.DecoderOption) (*raster.Image, error) {
	dec, err := codec.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	h, px, err := dec.Decode(data)
	if err != nil {
		return nil, err
	}

	return &raster.Image{Header: h, Pixels: px}, nil
}

// SaveToBytes encodes img into a new qoif stream.
//
// Returns:
//   - []byte: the encoded stream, owned by the caller
//   - error: a DimensionError if img's header does not describe its pixels
func SaveToBytes(img *raster.Image, opts ...codec.EncoderOption) ([]byte, error) {
	if img == nil {
		return nil, errNilImage
	}

	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(img.Header, img.Pixels)
}

// Flip mirrors img horizontally.
func Flip(img *raster.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	img.Flip()

	return nil
}

// Invert replaces every color channel c of img with 255-c. Alpha is unchanged.
func Invert(img *raster.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	img.Invert()

	return nil
}

// RotateLeft rotates img by n quarter turns counter-clockwise.
//
// n is taken modulo 4, so negative values rotate clockwise.
func RotateLeft(img *raster.Image, n int) error {
	if err := img.Validate(); err != nil {
		return err
	}
	img.RotateLeft(n)

	return nil
}

// Decode reads a complete qoif stream from r and returns it as an image.Image.
//
// The returned image is a *raster.Image.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoif: read stream: %w", err)
	}

	img, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// DecodeConfig returns the dimensions and color model of a qoif stream
// without decoding its pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [section.HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return image.Config{}, fmt.Errorf("qoif: read header: %w", err)
	}

	dec, err := codec.NewDecoder()
	if err != nil {
		return image.Config{}, err
	}

	h, err := dec.DecodeHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}
