// Package encoding implements the chunk layer of the qoif format: turning a pixel
// sequence into tagged chunks and back.
//
// Most users should use the codec package (or the root qoif package), which adds
// the header, the end marker and dimension checks around these types.
//
// # Chunk Selection
//
// PixelEncoder picks one chunk per pixel, trying the candidates in a fixed order.
// Several chunks are often legal for the same pixel; the first legal one wins:
//
//  1. RUN   - pixel equals the previous pixel (runs are flushed at 62 or at Finish)
//  2. INDEX - the history cache slot for the pixel already holds it
//  3. RGBA  - alpha changed
//  4. DIFF  - every channel delta is in [-2, 1]
//  5. LUMA  - green delta in [-32, 31], red/blue deltas relative to green in [-8, 7]
//  6. RGB   - anything else
//
// Channel deltas wrap around at 8 bits, so 255 -> 0 is a delta of +1.
//
// # Cache Symmetry
//
// Both PixelEncoder and PixelDecoder start from an empty pixel.Cache and
// pixel.Start as the previous pixel, and both update the cache after every pixel
// (including every repetition inside a run). INDEX chunks only decode correctly
// because the two sides observe identical cache contents at each position.
//
// # Thread Safety
//
// PixelEncoder and PixelDecoder are stateful and must not be shared between
// goroutines. Neither is safe for concurrent use.
package encoding
