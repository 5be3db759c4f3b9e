package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/qoif/errs"
	"github.com/arloliu/qoif/format"
)

// Compressor compresses a complete qoif stream for storage or transfer.
//
// Memory management:
//   - Returned slice is owned by the caller unless documented otherwise
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a qoif stream previously produced by the matching Compressor.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	stream, err := decompressor.Decompress(fileBytes)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compress/decompress cycle over a qoif stream.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the qoif stream before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// String formats the stats as a single report line.
func (s CompressionStats) String() string {
	return fmt.Sprintf("%-5s %9d -> %9d bytes (ratio %.3f, saved %5.1f%%, compress %s, decompress %s)",
		s.Algorithm, s.OriginalSize, s.CompressedSize, s.Ratio, s.SpaceSavings(),
		time.Duration(s.CompressionTimeNs), time.Duration(s.DecompressionTimeNs))
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: errs.ErrInvalidCompression for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Measure compresses data with the codec of type t, decompresses the result,
// verifies it matches data and reports sizes and timings.
func Measure(t format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(t)
	if err != nil {
		return CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compress: %w", t, err)
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s decompress: %w", t, err)
	}
	decompressTime := time.Since(start)

	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%s: round trip mismatch", t)
	}

	stats := CompressionStats{
		Algorithm:           t,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(compressed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	return stats, nil
}
