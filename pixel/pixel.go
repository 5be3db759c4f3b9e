// Package pixel provides the 4-channel color sample used throughout qoif and
// the 64-slot history cache shared by the encoder and decoder.
package pixel

import "image/color"

// CacheSize is the number of slots in the history cache.
const CacheSize = 64

// Pixel is one RGBA sample with 8 bits per channel.
//
// Pixel is a value type: two pixels are equal when all four channels are equal.
type Pixel struct {
	R, G, B, A uint8
}

// Start is the "last pixel" seed at the beginning of every encoded stream.
var Start = Pixel{R: 0, G: 0, B: 0, A: 255}

// New returns a pixel with the given channel values.
func New(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Hash returns the history cache slot of p: (r*3 + g*5 + b*7 + a*11) mod 64.
func (p Pixel) Hash() uint8 {
	return uint8((int(p.R)*3 + int(p.G)*5 + int(p.B)*7 + int(p.A)*11) % CacheSize)
}

// Inverted returns p with its color channels inverted. Alpha is unchanged.
func (p Pixel) Inverted() Pixel {
	return Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B, A: p.A}
}

// NRGBA converts p to a non-premultiplied color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// FromColor converts any color to a pixel via the non-premultiplied color model.
func FromColor(c color.Color) Pixel {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// AppendBytes appends the four channels of each pixel in px to dst, in RGBA order.
func AppendBytes(dst []byte, px []Pixel) []byte {
	for _, p := range px {
		dst = append(dst, p.R, p.G, p.B, p.A)
	}

	return dst
}
