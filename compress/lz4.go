package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4SizePrefix is the length of the little-endian uncompressed size that
// precedes every LZ4 block, so decompression allocates exactly once.
const lz4SizePrefix = 4

// lz4MaxSize bounds the uncompressed size read from an LZ4 container.
const lz4MaxSize = 1 << 30

// lz4MaxRatio is the largest expansion a single LZ4 block can encode.
const lz4MaxRatio = 255

var errLZ4Size = errors.New("lz4: invalid uncompressed size")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression of qoif streams.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 compression.
//
// Returns:
//   - []byte: size prefix followed by the LZ4 block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if uint64(len(data)) > lz4MaxSize {
		return nil, errLZ4Size
	}

	dst := make([]byte, lz4SizePrefix+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint32(dst, uint32(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4SizePrefix:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:lz4SizePrefix+n], nil
}

// Decompress decompresses data produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < lz4SizePrefix {
		return nil, errLZ4Size
	}

	size := binary.LittleEndian.Uint32(data)
	block := data[lz4SizePrefix:]
	if size == 0 || uint64(size) > lz4MaxSize || uint64(size) > uint64(len(block))*lz4MaxRatio {
		return nil, errLZ4Size
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(block, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != int(size) {
		return nil, errLZ4Size
	}

	return buf, nil
}
