package section

import (
	"encoding/binary"

	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/format"
)

// Header represents the fixed-size header section at the start of a qoif stream.
type Header struct {
	// Magic identifies the format. It must equal "qoif" for a stream to be decoded.
	Magic [4]byte // byte offset 0-3
	// Height is the image height in pixels, big-endian on disk.
	Height uint32 // byte offset 4-7
	// Width is the image width in pixels, big-endian on disk.
	Width uint32 // byte offset 8-11
	// Channels is the channel count the image was created with. Informational only;
	// the pixel stream always carries four channels.
	Channels format.Channels // byte offset 12
	// Colorspace is passed through unchanged. Informational only.
	Colorspace format.Colorspace // byte offset 13
}

// NewHeader creates a Header with the qoif magic and the given dimensions.
func NewHeader(width, height uint32, channels format.Channels, colorspace format.Colorspace) Header {
	h := Header{
		Height:     height,
		Width:      width,
		Channels:   channels,
		Colorspace: colorspace,
	}
	copy(h.Magic[:], Magic)

	return h
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (at least 14 bytes; extra bytes are ignored)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than 14 bytes, ErrInvalidMagic on a magic mismatch
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	copy(h.Magic[:], data[0:4])
	h.Height = binary.BigEndian.Uint32(data[heightOffset:widthOffset])
	h.Width = binary.BigEndian.Uint32(data[widthOffset:channelsOffset])
	h.Channels = format.Channels(data[channelsOffset])
	h.Colorspace = format.Colorspace(data[colorspaceOffset])

	if !h.IsValidMagic() {
		return errs.ErrInvalidMagic
	}

	return nil
}

// WriteToSlice serializes the header into the first 14 bytes of dst.
// The qoif magic is always written, whatever h.Magic holds.
//
// Returns:
//   - error: ErrInvalidHeaderSize if dst is shorter than 14 bytes
func (h *Header) WriteToSlice(dst []byte) error {
	if len(dst) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	copy(dst[0:4], Magic)
	binary.BigEndian.PutUint32(dst[heightOffset:widthOffset], h.Height)
	binary.BigEndian.PutUint32(dst[widthOffset:channelsOffset], h.Width)
	dst[channelsOffset] = uint8(h.Channels)
	dst[colorspaceOffset] = uint8(h.Colorspace)

	return nil
}

// Bytes serializes the Header into a new 14-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	_ = h.WriteToSlice(b)

	return b
}

// AppendTo appends the serialized header to dst, starting with the qoif magic.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic...)
	dst = binary.BigEndian.AppendUint32(dst, h.Height)
	dst = binary.BigEndian.AppendUint32(dst, h.Width)

	return append(dst, uint8(h.Channels), uint8(h.Colorspace))
}

// IsValidMagic reports whether the header carries the qoif magic.
func (h *Header) IsValidMagic() bool {
	return string(h.Magic[:]) == Magic
}

// PixelCount returns Width*Height without overflowing.
func (h *Header) PixelCount() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// Validate performs the strict checks the codec skips by default: a non-zero size,
// a channel count of 3 or 4, and a colorspace of 0 or 1.
func (h *Header) Validate() error {
	if h.Width == 0 || h.Height == 0 {
		return errs.ErrZeroDimension
	}
	if !h.Channels.IsValid() {
		return errs.ErrInvalidChannels
	}
	if !h.Colorspace.IsValid() {
		return errs.ErrInvalidColorspace
	}

	return nil
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 14 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or ErrInvalidMagic
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
