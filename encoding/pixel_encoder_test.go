package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/qoif/internal/pool"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

func encodeAll(px ...pixel.Pixel) ([]byte, Stats) {
	enc := NewPixelEncoder(nil)
	enc.WriteSlice(px)
	enc.Finish()

	return enc.Bytes(), enc.Stats()
}

func repeat(p pixel.Pixel, n int) []pixel.Pixel {
	px := make([]pixel.Pixel, n)
	for i := range px {
		px[i] = p
	}

	return px
}

func TestPixelEncoder_RunBoundaries(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []byte
	}{
		{"single", 1, []byte{0xC0}},
		{"two", 2, []byte{0xC1}},
		{"61", 61, []byte{0xC0 | 60}},
		{"62 is one chunk", 62, []byte{0xC0 | 61}},
		{"63 splits", 63, []byte{0xC0 | 61, 0xC0}},
		{"124 is two full chunks", 124, []byte{0xC0 | 61, 0xC0 | 61}},
		{"125", 125, []byte{0xC0 | 61, 0xC0 | 61, 0xC0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// pixel.Start equals the seeded previous pixel, so everything is a run.
			got, stats := encodeAll(repeat(pixel.Start, tt.n)...)
			require.Equal(t, tt.want, got)
			require.Equal(t, len(tt.want), stats.Run)
			require.Equal(t, tt.n, stats.Pixels)
		})
	}
}

func TestPixelEncoder_RunFlushedBeforeNextChunk(t *testing.T) {
	px := append(repeat(pixel.Start, 3), pixel.New(1, 1, 1, 255))

	got, _ := encodeAll(px...)

	require.Equal(t, []byte{0xC2, 0x7F}, got)
}

func TestPixelEncoder_IndexBeatsDiff(t *testing.T) {
	a := pixel.New(1, 1, 1, 255)
	b := pixel.Start

	// a: DIFF(+1,+1,+1), b: DIFF(-1,-1,-1), a again: cached and within DIFF range.
	got, stats := encodeAll(a, b, a)

	require.Equal(t, []byte{0x7F, 0x55, section.TagIndex | a.Hash()}, got)
	require.Equal(t, 1, stats.Index)
	require.Equal(t, 2, stats.Diff)
}

func TestPixelEncoder_IndexSingleByte(t *testing.T) {
	a := pixel.New(200, 10, 30, 255)
	b := pixel.New(5, 100, 250, 255)

	got, _ := encodeAll(a, b, a)

	// The last chunk is one byte whose top bits are the INDEX tag.
	last := got[len(got)-1]
	require.Equal(t, section.TagIndex, last&section.TagMask)
	require.Equal(t, a.Hash(), last&section.PayloadMask)
	require.Equal(t, 4+4+1, len(got))
}

func TestPixelEncoder_DeltaBoundaries(t *testing.T) {
	base := pixel.New(100, 100, 100, 255)
	rgbBase := []byte{section.TagRGB, 100, 100, 100}

	tests := []struct {
		name    string
		next    pixel.Pixel
		chunk   []byte
		wantTag uint8
	}{
		{"diff min", pixel.New(98, 98, 98, 255), []byte{0x40}, section.TagDiff},
		{"diff max", pixel.New(101, 101, 101, 255), []byte{0x7F}, section.TagDiff},
		{"diff zero green", pixel.New(99, 100, 101, 255), []byte{0x40 | 1<<4 | 2<<2 | 3}, section.TagDiff},
		{"red -3 falls to luma", pixel.New(97, 100, 100, 255), []byte{0xA0, 5<<4 | 8}, section.TagLuma},
		{"red +2 falls to luma", pixel.New(102, 100, 100, 255), []byte{0xA0, 10<<4 | 8}, section.TagLuma},
		{"luma green min", pixel.New(68, 68, 68, 255), []byte{0x80, 0x88}, section.TagLuma},
		{"luma green max", pixel.New(131, 131, 131, 255), []byte{0x80 | 63, 0x88}, section.TagLuma},
		{"luma rb edges", pixel.New(100-32-8, 100-32, 100-32+7, 255), []byte{0x80, 0<<4 | 15}, section.TagLuma},
		{"green out of luma range", pixel.New(140, 140, 140, 255), []byte{section.TagRGB, 140, 140, 140}, section.TagRGB},
		{"red-green out of luma range", pixel.New(109, 100, 100, 255), []byte{section.TagRGB, 109, 100, 100}, section.TagRGB},
		{"alpha change", pixel.New(100, 100, 100, 254), []byte{section.TagRGBA, 100, 100, 100, 254}, section.TagRGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := encodeAll(base, tt.next)

			require.Equal(t, rgbBase, got[:4])
			require.Equal(t, tt.chunk, got[4:])
			if tt.wantTag == section.TagRGB || tt.wantTag == section.TagRGBA {
				require.Equal(t, tt.wantTag, got[4])
			} else {
				require.Equal(t, tt.wantTag, got[4]&section.TagMask)
			}
		})
	}
}

func TestPixelEncoder_DeltaWrapsAround(t *testing.T) {
	a := pixel.New(255, 0, 255, 255)
	b := pixel.New(0, 255, 0, 255) // +1, -1, +1 with 8-bit wraparound

	got, _ := encodeAll(a, b)

	require.Equal(t, byte(0x40|3<<4|1<<2|3), got[len(got)-1])
}

func TestPixelEncoder_FirstPixelAgainstSeed(t *testing.T) {
	// Zero pixel matches the empty cache slot 0 before anything else.
	got, _ := encodeAll(pixel.New(0, 0, 0, 0))
	require.Equal(t, []byte{0x00}, got)

	// Same color as the seed with a different alpha is an RGBA literal.
	got, _ = encodeAll(pixel.New(0, 0, 0, 128))
	require.Equal(t, []byte{section.TagRGBA, 0, 0, 0, 128}, got)
}

func TestPixelEncoder_AppendsAfterExistingBytes(t *testing.T) {
	buf := pool.NewByteBuffer(32)
	_, _ = buf.Write([]byte("head"))

	enc := NewPixelEncoder(buf)
	enc.WriteSlice(repeat(pixel.Start, 2))
	enc.Finish()

	require.Equal(t, []byte{0xC1}, enc.Bytes())
	require.Equal(t, 1, enc.Size())
	require.Equal(t, 2, enc.Len())
	require.Equal(t, []byte("head\xC1"), buf.Bytes())
}

func TestPixelEncoder_Reset(t *testing.T) {
	enc := NewPixelEncoder(nil)
	a := pixel.New(9, 9, 9, 255)
	enc.Write(a)
	enc.Finish()

	enc.Reset()
	enc.Write(a)
	enc.Finish()

	// After Reset the cache is empty again, so a is not an INDEX chunk.
	require.Equal(t, []byte{0x80 | (9 + 32), 0x88}, enc.Bytes())
	require.Equal(t, 1, enc.Stats().Luma)
}

func TestStats(t *testing.T) {
	s := Stats{Pixels: 10, Index: 1, Diff: 2, Luma: 3, Run: 1, RGB: 1, RGBA: 1}

	require.Equal(t, 9, s.Chunks())
	require.Equal(t, 1+2+6+1+4+5, s.BodySize())
	require.Contains(t, s.String(), "chunks=9")
}

func TestStats_BodySizeMatchesOutput(t *testing.T) {
	px := testImage(37, 23)
	got, stats := encodeAll(px...)

	require.Equal(t, len(got), stats.BodySize())
	require.Equal(t, len(px), stats.Pixels)
}

func BenchmarkPixelEncoder(b *testing.B) {
	px := testImage(256, 256)
	buf := pool.NewByteBuffer(len(px) * section.MaxChunkSize)
	b.SetBytes(int64(len(px) * 4))
	b.ResetTimer()
	for b.Loop() {
		buf.Reset()
		enc := NewPixelEncoder(buf)
		enc.WriteSlice(px)
		enc.Finish()
	}
}
