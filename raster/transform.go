package raster

import "github.com/arloliu/qoif/pixel"

// The transforms below require a valid image (see Validate). Rows are
// Width pixels long.

// Invert replaces every pixel's color channels with 255 minus their value.
// Alpha is unchanged. Applying Invert twice restores the original image.
func (img *Image) Invert() {
	out := make([]pixel.Pixel, len(img.Pixels))
	for i, p := range img.Pixels {
		out[i] = p.Inverted()
	}
	img.Pixels = out
}

// Flip mirrors the image horizontally: the pixel at column x moves to column
// width-1-x of the same row. Applying Flip twice restores the original image.
func (img *Image) Flip() {
	w := img.Width()
	if w == 0 {
		return
	}

	out := make([]pixel.Pixel, len(img.Pixels))
	for row := 0; row+w <= len(img.Pixels); row += w {
		src := img.Pixels[row : row+w]
		dst := out[row : row+w]
		for x, p := range src {
			dst[w-1-x] = p
		}
	}
	img.Pixels = out
}

// RotateLeft rotates the image counter-clockwise by n quarter turns.
//
// n is taken modulo 4, so RotateLeft(4) is the identity and RotateLeft(-1)
// rotates one quarter turn clockwise. Every odd quarter turn swaps the width
// and height in the header.
func (img *Image) RotateLeft(n int) {
	for range ((n % 4) + 4) % 4 {
		img.rotateLeftOnce()
	}
}

// rotateLeftOnce maps (x, y) to (y, w-1-x) in a h-wide output.
func (img *Image) rotateLeftOnce() {
	w, h := img.Width(), img.Height()
	out := make([]pixel.Pixel, len(img.Pixels))
	for i, p := range img.Pixels {
		x, y := i%w, i/w
		out[(w-1-x)*h+y] = p
	}

	img.Header.Width, img.Header.Height = img.Header.Height, img.Header.Width
	img.Pixels = out
}
