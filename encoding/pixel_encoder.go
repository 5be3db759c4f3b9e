package encoding

import (
	"github.com/arloliu/qoif/internal/pool"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

// PixelEncoder encodes a pixel sequence into qoif chunks.
//
// Chunks are appended to the ByteBuffer given to NewPixelEncoder, after whatever
// it already holds, so a caller can write the header first and the end marker
// after Finish.
//
// Internal state:
//   - cache: history cache, updated after every pixel
//   - prev: previously written pixel, seeded with pixel.Start
//   - run: pending run length (0..61 between calls)
//
// Note: The PixelEncoder is NOT thread-safe.
type PixelEncoder struct {
	buf   *pool.ByteBuffer
	start int
	cache pixel.Cache
	prev  pixel.Pixel
	run   int
	stats Stats
}

// NewPixelEncoder creates an encoder that appends chunks to buf.
// A nil buf allocates a private buffer.
func NewPixelEncoder(buf *pool.ByteBuffer) *PixelEncoder {
	if buf == nil {
		buf = pool.NewByteBuffer(pool.StreamBufferDefaultSize)
	}

	e := &PixelEncoder{buf: buf}
	e.Reset()

	return e
}

// Write encodes a single pixel.
//
// A pixel equal to the previous one only extends the pending run; the RUN chunk
// is written once the run reaches 62 pixels, when a different pixel arrives, or
// on Finish.
func (e *PixelEncoder) Write(px pixel.Pixel) {
	e.stats.Pixels++

	if px == e.prev {
		e.run++
		if e.run == section.MaxRunLength {
			e.flushRun()
		}
		e.cache.Update(px)

		return
	}

	e.flushRun()
	e.writeChunk(px)
	e.cache.Update(px)
	e.prev = px
}

// WriteSlice encodes all pixels in px in order.
func (e *PixelEncoder) WriteSlice(px []pixel.Pixel) {
	e.buf.Grow(len(px) * section.MaxChunkSize)
	for _, p := range px {
		e.Write(p)
	}
}

// Finish flushes a pending run. It must be called after the last pixel.
func (e *PixelEncoder) Finish() {
	e.flushRun()
}

// Bytes returns the chunks written since the last Reset.
// The slice aliases the underlying buffer.
func (e *PixelEncoder) Bytes() []byte {
	return e.buf.B[e.start:]
}

// Len returns the number of pixels written since the last Reset.
func (e *PixelEncoder) Len() int {
	return e.stats.Pixels
}

// Size returns the number of chunk bytes written since the last Reset.
func (e *PixelEncoder) Size() int {
	return e.buf.Len() - e.start
}

// Stats returns the chunk counts for the pixels written since the last Reset.
func (e *PixelEncoder) Stats() Stats {
	return e.stats
}

// Reset starts a new encode pass: the cache is cleared, the previous pixel is
// reseeded and subsequent chunks are appended after the current buffer contents.
func (e *PixelEncoder) Reset() {
	e.start = e.buf.Len()
	e.cache.Reset()
	e.prev = pixel.Start
	e.run = 0
	e.stats = Stats{}
}

func (e *PixelEncoder) flushRun() {
	if e.run == 0 {
		return
	}

	e.buf.B = append(e.buf.B, section.TagRun|uint8(e.run-1))
	e.stats.Run++
	e.run = 0
}

// writeChunk emits the first legal non-run chunk for px.
func (e *PixelEncoder) writeChunk(px pixel.Pixel) {
	if slot, ok := e.cache.Index(px); ok {
		e.buf.B = append(e.buf.B, section.TagIndex|slot)
		e.stats.Index++

		return
	}

	if px.A != e.prev.A {
		e.buf.B = append(e.buf.B, section.TagRGBA, px.R, px.G, px.B, px.A)
		e.stats.RGBA++

		return
	}

	dr := int(int8(px.R - e.prev.R))
	dg := int(int8(px.G - e.prev.G))
	db := int(int8(px.B - e.prev.B))

	if inRange(dr, section.DiffMin, section.DiffMax) &&
		inRange(dg, section.DiffMin, section.DiffMax) &&
		inRange(db, section.DiffMin, section.DiffMax) {
		e.buf.B = append(e.buf.B, section.TagDiff|
			uint8(dr+section.DiffBias)<<4|
			uint8(dg+section.DiffBias)<<2|
			uint8(db+section.DiffBias))
		e.stats.Diff++

		return
	}

	drg := dr - dg
	dbg := db - dg
	if inRange(dg, section.LumaGreenMin, section.LumaGreenMax) &&
		inRange(drg, section.LumaRBMin, section.LumaRBMax) &&
		inRange(dbg, section.LumaRBMin, section.LumaRBMax) {
		e.buf.B = append(e.buf.B,
			section.TagLuma|uint8(dg+section.LumaGreenBias),
			uint8(drg+section.LumaRBBias)<<4|uint8(dbg+section.LumaRBBias))
		e.stats.Luma++

		return
	}

	e.buf.B = append(e.buf.B, section.TagRGB, px.R, px.G, px.B)
	e.stats.RGB++
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
