package format

import (
	"path/filepath"
	"strings"
)

type (
	Channels        uint8
	Colorspace      uint8
	CompressionType uint8
)

const (
	ChannelsRGB  Channels = 3 // ChannelsRGB represents 3-channel images.
	ChannelsRGBA Channels = 4 // ChannelsRGBA represents 4-channel images.

	ColorspaceSRGB   Colorspace = 0 // ColorspaceSRGB represents sRGB with linear alpha.
	ColorspaceLinear Colorspace = 1 // ColorspaceLinear represents all channels linear.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c Channels) String() string {
	switch c {
	case ChannelsRGB:
		return "RGB"
	case ChannelsRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the channel counts defined by the format.
func (c Channels) IsValid() bool {
	return c == ChannelsRGB || c == ChannelsRGBA
}

func (c Colorspace) String() string {
	switch c {
	case ColorspaceSRGB:
		return "sRGB"
	case ColorspaceLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the colorspaces defined by the format.
func (c Colorspace) IsValid() bool {
	return c == ColorspaceSRGB || c == ColorspaceLinear
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix appended to a compressed qoif file,
// including the leading dot. CompressionNone and unknown types return "".
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression maps a compression name such as "zstd" or "LZ4" to its type.
// The second return value is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// CompressionFromPath returns the compression type implied by the file extension of path.
// Paths without a recognized compression suffix return CompressionNone.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
