// Package raster holds decoded qoif images and the geometric transforms that
// operate on them.
//
// An Image pairs a section.Header with its row-major pixel buffer. Transforms
// replace the pixel buffer wholesale, so a slice obtained from Pixels before a
// transform is never modified by it.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/format"
	"github.com/arloliu/qoif/internal/hash"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

// Image is a decoded qoif image.
//
// Pixels holds Width*Height pixels in row-major order. Images built by hand
// should be checked with Validate before calling Flip or RotateLeft; At and
// ToNRGBA treat missing pixels as transparent black.
type Image struct {
	Header section.Header
	Pixels []pixel.Pixel
}

var _ image.Image = (*Image)(nil)

// New creates a width x height image with every pixel set to fill.
func New(width, height uint32, channels format.Channels, colorspace format.Colorspace, fill pixel.Pixel) *Image {
	h := section.NewHeader(width, height, channels, colorspace)
	px := make([]pixel.Pixel, h.PixelCount())
	for i := range px {
		px[i] = fill
	}

	return &Image{Header: h, Pixels: px}
}

// FromImage copies any image.Image into a new Image.
//
// The channel count is 3 when m reports itself opaque and 4 otherwise.
func FromImage(m image.Image, colorspace format.Colorspace) *Image {
	b := m.Bounds()
	channels := format.ChannelsRGBA
	if o, ok := m.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = format.ChannelsRGB
	}

	img := &Image{
		Header: section.NewHeader(uint32(b.Dx()), uint32(b.Dy()), channels, colorspace),
		Pixels: make([]pixel.Pixel, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pixels = append(img.Pixels, pixel.FromColor(m.At(x, y)))
		}
	}

	return img
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return int(img.Header.Width)
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return int(img.Header.Height)
}

// Validate checks that the pixel buffer matches the header dimensions.
func (img *Image) Validate() error {
	if img.Header.Width == 0 || img.Header.Height == 0 {
		return errs.ErrZeroDimension
	}
	if uint64(len(img.Pixels)) != img.Header.PixelCount() {
		return fmt.Errorf("%w: %dx%d image holds %d pixels",
			errs.ErrPixelCountMismatch, img.Header.Width, img.Header.Height, len(img.Pixels))
	}

	return nil
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	px := make([]pixel.Pixel, len(img.Pixels))
	copy(px, img.Pixels)

	return &Image{Header: img.Header, Pixels: px}
}

// Digest returns the xxHash64 of the pixel buffer. Images with equal pixels in
// equal order have equal digests regardless of their headers.
func (img *Image) Digest() uint64 {
	return hash.Pixels(img.Pixels)
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// At implements image.Image. Points outside the bounds, or beyond the end of
// a pixel buffer shorter than the header describes, are transparent black.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.NRGBA{}
	}
	i := y*img.Width() + x
	if i >= len(img.Pixels) {
		return color.NRGBA{}
	}

	return img.Pixels[i].NRGBA()
}

// ToNRGBA copies the image into a standard library NRGBA image.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	n := min(len(img.Pixels), len(out.Pix)/4)
	pixel.AppendBytes(out.Pix[:0], img.Pixels[:n])

	return out
}
