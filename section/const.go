package section

// Magic is the 4-byte identifier at offset 0 of every qoif stream.
const Magic = "qoif"

// Chunk tags. RGB and RGBA are full-byte sentinels; the other tags occupy the
// top two bits of the first chunk byte with a 6-bit payload in the low bits.
const (
	TagIndex uint8 = 0b00000000 // TagIndex references a history cache slot.
	TagDiff  uint8 = 0b01000000 // TagDiff carries three 2-bit channel deltas.
	TagLuma  uint8 = 0b10000000 // TagLuma carries a 6-bit green delta plus a second byte.
	TagRun   uint8 = 0b11000000 // TagRun repeats the last pixel 1..62 times.
	TagRGB   uint8 = 0b11111110 // TagRGB is followed by r, g, b.
	TagRGBA  uint8 = 0b11111111 // TagRGBA is followed by r, g, b, a.

	TagMask     uint8 = 0b11000000 // TagMask selects the 2-bit tag.
	PayloadMask uint8 = 0b00111111 // PayloadMask selects the 6-bit payload.
)

// Delta ranges and run limits.
const (
	MaxRunLength = 62 // longest run a single RUN chunk can carry

	DiffMin  = -2 // smallest per-channel DIFF delta
	DiffMax  = 1  // largest per-channel DIFF delta
	DiffBias = 2

	LumaGreenMin  = -32 // smallest LUMA green delta
	LumaGreenMax  = 31  // largest LUMA green delta
	LumaGreenBias = 32
	LumaRBMin     = -8 // smallest LUMA red/blue delta relative to green
	LumaRBMax     = 7  // largest LUMA red/blue delta relative to green
	LumaRBBias    = 8
)

// offset and section sizes in the stream
const (
	HeaderSize       = 14 // fixed header size in bytes
	EndMarkerSize    = 8  // trailing end marker size in bytes
	MinStreamSize    = HeaderSize + EndMarkerSize
	heightOffset     = 4
	widthOffset      = 8
	channelsOffset   = 12
	colorspaceOffset = 13

	// MaxChunkSize is the largest number of bytes a single pixel can encode to (an RGBA literal).
	MaxChunkSize = 5
)

// EndMarker terminates every encoded stream.
var EndMarker = [EndMarkerSize]byte{0, 0, 0, 0, 0, 0, 0, 1}
