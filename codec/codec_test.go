package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/format"
	"github.com/arloliu/qoif/pixel"
	"github.com/arloliu/qoif/section"
)

func randomImage(w, h int, seed int64) (section.Header, []pixel.Pixel) {
	rng := rand.New(rand.NewSource(seed))
	px := make([]pixel.Pixel, w*h)
	cur := pixel.Start
	for i := range px {
		switch rng.Intn(8) {
		case 0:
			cur = pixel.New(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		case 1, 2:
			cur.R += uint8(rng.Intn(3)) - 1
			cur.B += uint8(rng.Intn(3)) - 1
		case 3:
			cur.G += uint8(rng.Intn(40)) - 20
		case 4:
			if i > 0 {
				cur = px[rng.Intn(i)]
			}
		}
		px[i] = cur
	}

	return section.NewHeader(uint32(w), uint32(h), format.ChannelsRGBA, format.ColorspaceSRGB), px
}

func newCodec(t *testing.T, opts ...Option) (*Encoder, *Decoder) {
	t.Helper()
	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	dec, err := NewDecoder(opts...)
	require.NoError(t, err)

	return enc, dec
}

func TestRoundTrip(t *testing.T) {
	enc, dec := newCodec(t)

	sizes := [][2]int{{1, 1}, {2, 1}, {1, 7}, {16, 16}, {63, 2}, {100, 37}, {300, 200}}
	for i, size := range sizes {
		h, px := randomImage(size[0], size[1], int64(i))

		data, err := enc.Encode(h, px)
		require.NoError(t, err)

		gotHeader, gotPixels, err := dec.Decode(data)
		require.NoError(t, err)
		require.Equal(t, h, gotHeader)
		require.Equal(t, px, gotPixels)
	}
}

func TestEncode_ConcreteTwoPixelImage(t *testing.T) {
	enc, dec := newCodec(t)
	p := pixel.New(10, 10, 10, 255)
	h := section.NewHeader(2, 1, format.ChannelsRGBA, format.ColorspaceSRGB)

	data, err := enc.Encode(h, []pixel.Pixel{p, p})
	require.NoError(t, err)

	want := []byte{
		'q', 'o', 'i', 'f',
		0, 0, 0, 1, // height
		0, 0, 0, 2, // width
		4, 0,
		0x80 | (10 + 32), 0x88, // first pixel: LUMA (+10,+10,+10) from the seed
		0xC0,                   // second pixel: RUN of 1
		0, 0, 0, 0, 0, 0, 0, 1, // end marker
	}
	require.Equal(t, want, data)
	require.Equal(t, 1, enc.Stats().Run)
	require.Equal(t, 1, enc.Stats().Luma)

	_, px, err := dec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, []pixel.Pixel{p, p}, px)
}

func TestEncode_RunOfStartPixels(t *testing.T) {
	enc, _ := newCodec(t)

	for _, tt := range []struct {
		n    int
		body []byte
	}{
		{62, []byte{0xC0 | 61}},
		{63, []byte{0xC0 | 61, 0xC0}},
	} {
		px := make([]pixel.Pixel, tt.n)
		for i := range px {
			px[i] = pixel.Start
		}
		h := section.NewHeader(uint32(tt.n), 1, format.ChannelsRGBA, format.ColorspaceSRGB)

		data, err := enc.Encode(h, px)
		require.NoError(t, err)
		require.Equal(t, tt.body, data[section.HeaderSize:len(data)-section.EndMarkerSize])
	}
}

func TestEncode_Errors(t *testing.T) {
	enc, _ := newCodec(t)
	px := []pixel.Pixel{pixel.Start, pixel.Start}

	tests := []struct {
		name   string
		header section.Header
		px     []pixel.Pixel
		err    error
	}{
		{"zero width", section.NewHeader(0, 2, format.ChannelsRGBA, format.ColorspaceSRGB), px, errs.ErrZeroDimension},
		{"zero height", section.NewHeader(2, 0, format.ChannelsRGBA, format.ColorspaceSRGB), px, errs.ErrZeroDimension},
		{"too few pixels", section.NewHeader(3, 1, format.ChannelsRGBA, format.ColorspaceSRGB), px, errs.ErrPixelCountMismatch},
		{"too many pixels", section.NewHeader(1, 1, format.ChannelsRGBA, format.ColorspaceSRGB), px, errs.ErrPixelCountMismatch},
		{"empty buffer", section.NewHeader(1, 1, format.ChannelsRGBA, format.ColorspaceSRGB), nil, errs.ErrPixelCountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := enc.Encode(tt.header, tt.px)
			require.ErrorIs(t, err, tt.err)
			require.ErrorIs(t, err, errs.ErrDimension)
			require.Nil(t, data)
		})
	}
}

func TestEncode_PassesHeaderBytesThrough(t *testing.T) {
	enc, dec := newCodec(t)
	h := section.NewHeader(1, 1, format.Channels(42), format.Colorspace(7))

	data, err := enc.Encode(h, []pixel.Pixel{pixel.Start})
	require.NoError(t, err)
	require.Equal(t, byte(42), data[12])
	require.Equal(t, byte(7), data[13])

	got, _, err := dec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderValidation(t *testing.T) {
	enc, dec := newCodec(t, WithHeaderValidation(true))
	h := section.NewHeader(1, 1, format.Channels(42), format.ColorspaceSRGB)

	_, err := enc.Encode(h, []pixel.Pixel{pixel.Start})
	require.ErrorIs(t, err, errs.ErrInvalidChannels)

	lenient, _ := newCodec(t)
	data, err := lenient.Encode(h, []pixel.Pixel{pixel.Start})
	require.NoError(t, err)

	_, _, err = dec.Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidChannels)
}

func TestMaxPixels(t *testing.T) {
	enc, dec := newCodec(t, WithMaxPixels(4))
	require.Equal(t, uint64(4), enc.MaxPixels())

	h, px := randomImage(3, 2, 1)
	_, err := enc.Encode(h, px)
	require.ErrorIs(t, err, errs.ErrTooManyPixels)

	lenient, _ := newCodec(t)
	data, err := lenient.Encode(h, px)
	require.NoError(t, err)

	_, _, err = dec.Decode(data)
	require.ErrorIs(t, err, errs.ErrTooManyPixels)
	require.ErrorIs(t, err, errs.ErrDimension)

	_, err = NewEncoder(WithMaxPixels(0))
	require.ErrorIs(t, err, errs.ErrInvalidMaxPixels)
	_, err = NewDecoder(WithMaxPixels(0))
	require.ErrorIs(t, err, errs.ErrInvalidMaxPixels)
}

func TestDecode_Errors(t *testing.T) {
	enc, dec := newCodec(t)
	h, px := randomImage(20, 10, 3)
	valid, err := enc.Encode(h, px)
	require.NoError(t, err)

	badMagic := append([]byte(nil), valid...)
	badMagic[3] = 'F'

	zeroWidth := append([]byte(nil), valid...)
	copy(zeroWidth[8:12], []byte{0, 0, 0, 0})

	hugeHeader := section.NewHeader(20000, 20000, format.ChannelsRGBA, format.ColorspaceSRGB)

	tests := []struct {
		name string
		data []byte
		kind error
		err  error
	}{
		{"empty", nil, errs.ErrFormat, errs.ErrInvalidHeaderSize},
		{"short header", valid[:10], errs.ErrFormat, errs.ErrInvalidHeaderSize},
		{"bad magic", badMagic, errs.ErrFormat, errs.ErrInvalidMagic},
		{"zero width", zeroWidth, errs.ErrDimension, errs.ErrZeroDimension},
		{"header only", valid[:section.HeaderSize], errs.ErrTruncatedStream, errs.ErrTruncatedStream},
		{"header and short tail", valid[:section.MinStreamSize-1], errs.ErrTruncatedStream, errs.ErrTruncatedStream},
		{"body cut short", append(append([]byte(nil), valid[:len(valid)/2]...), section.EndMarker[:]...), errs.ErrTruncatedStream, errs.ErrTruncatedStream},
		{"end marker missing", valid[:len(valid)-section.EndMarkerSize], errs.ErrTruncatedStream, errs.ErrTruncatedStream},
		{"implausible pixel count", append(hugeHeader.Bytes(), 0xC0, 0, 0, 0, 0, 0, 0, 0, 1), errs.ErrTruncatedStream, errs.ErrTruncatedStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHeader, gotPixels, err := dec.Decode(tt.data)
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, gotPixels)
			require.Equal(t, section.Header{}, gotHeader)
		})
	}
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	enc, dec := newCodec(t)
	h, px := randomImage(5, 5, 9)
	data, err := enc.Encode(h, px)
	require.NoError(t, err)

	// Extra chunks before the end marker are never reached.
	body := data[:len(data)-section.EndMarkerSize]
	padded := append(append(append([]byte(nil), body...), 0xFE, 1, 2, 3, 0xC5), section.EndMarker[:]...)

	_, got, err := dec.Decode(padded)
	require.NoError(t, err)
	require.Equal(t, px, got)
}

func TestDecode_StrictEndMarker(t *testing.T) {
	enc, lenient := newCodec(t)
	strict, err := NewDecoder(WithStrictEndMarker(true))
	require.NoError(t, err)

	h, px := randomImage(4, 4, 5)
	data, err := enc.Encode(h, px)
	require.NoError(t, err)

	_, _, err = strict.Decode(data)
	require.NoError(t, err)

	data[len(data)-1] = 0x02
	_, got, err := lenient.Decode(data)
	require.NoError(t, err)
	require.Equal(t, px, got)

	_, _, err = strict.Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidEndMarker)
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestDecodeHeader(t *testing.T) {
	enc, dec := newCodec(t)
	h, px := randomImage(8, 3, 11)
	data, err := enc.Encode(h, px)
	require.NoError(t, err)

	got, err := dec.DecodeHeader(data[:section.HeaderSize])
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestEncoder_OutputIsCallerOwned(t *testing.T) {
	enc, dec := newCodec(t)
	h1, px1 := randomImage(10, 10, 1)
	h2, px2 := randomImage(10, 10, 2)

	first, err := enc.Encode(h1, px1)
	require.NoError(t, err)
	snapshot := append([]byte(nil), first...)

	_, err = enc.Encode(h2, px2)
	require.NoError(t, err)

	require.Equal(t, snapshot, first, "pooled buffers must not leak into returned slices")
	_, got, err := dec.Decode(first)
	require.NoError(t, err)
	require.Equal(t, px1, got)
}

func BenchmarkEncode(b *testing.B) {
	enc, _ := NewEncoder()
	h, px := randomImage(512, 512, 1)
	b.SetBytes(int64(len(px) * 4))
	b.ResetTimer()
	for b.Loop() {
		_, _ = enc.Encode(h, px)
	}
}

func BenchmarkDecode(b *testing.B) {
	enc, _ := NewEncoder()
	dec, _ := NewDecoder()
	h, px := randomImage(512, 512, 1)
	data, _ := enc.Encode(h, px)
	b.SetBytes(int64(len(px) * 4))
	b.ResetTimer()
	for b.Loop() {
		_, _, _ = dec.Decode(data)
	}
}
