// Package codec encodes and decodes complete qoif streams.
//
// An Encoder writes the 14-byte header, the chunk body produced by
// encoding.PixelEncoder and the 8-byte end marker. A Decoder reverses this,
// checking the header, the image dimensions and the body length before it
// allocates the pixel buffer.
//
// # Basic Usage
//
//	enc, _ := codec.NewEncoder()
//	h := section.NewHeader(width, height, format.ChannelsRGBA, format.ColorspaceSRGB)
//	data, err := enc.Encode(h, pixels)
//
//	dec, _ := codec.NewDecoder(codec.WithStrictEndMarker(true))
//	h, pixels, err := dec.Decode(data)
//
// # Options
//
//   - WithMaxPixels(n): reject images with more than n pixels (default 400M)
//   - WithHeaderValidation(true): require channels 3/4 and colorspace 0/1
//   - WithStrictEndMarker(true): require the trailing end marker on decode
//
// # Errors
//
// All errors wrap one of errs.ErrFormat, errs.ErrTruncatedStream or
// errs.ErrDimension. Decode never returns a partially filled pixel buffer.
package codec
