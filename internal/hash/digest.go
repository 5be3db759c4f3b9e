// Package hash computes content digests of pixel buffers and encoded streams.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/qoif/pixel"
)

// pixelChunk is the number of pixels serialized per digest write.
const pixelChunk = 1024

// Pixels computes the xxHash64 of the pixel buffer in RGBA byte order.
//
// Two buffers have the same digest when they hold the same pixels in the same
// order, independent of how the buffer was produced.
func Pixels(px []pixel.Pixel) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, pixelChunk*4)
	for len(px) > 0 {
		n := min(len(px), pixelChunk)
		buf = pixel.AppendBytes(buf[:0], px[:n])
		_, _ = d.Write(buf)
		px = px[n:]
	}

	return d.Sum64()
}

// Bytes computes the xxHash64 of data.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
