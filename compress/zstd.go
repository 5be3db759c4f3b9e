package compress

// ZstdCompressor provides Zstandard compression of qoif streams.
//
// Zstd gives the best ratio of the built-in codecs and suits archival of
// image sets where decompression happens infrequently.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(stream)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
