// Package compress wraps finished qoif streams in general-purpose compression
// for storage and transfer.
//
// The qoif format is already compact for photographic content, but large flat
// regions and synthetic images still leave redundancy that a byte-oriented
// compressor can remove. Compression is applied to the whole file: the qoif
// bytes inside a compressed container are unchanged, and the container type
// is recognized from the file extension (see format.CompressionFromPath).
//
//	file.qoi       plain qoif stream
//	file.qoi.zst   Zstandard
//	file.qoi.s2    S2
//	file.qoi.lz4   LZ4 block
//
// # Supported Algorithms
//
//   - None: the stream is stored as-is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// cgo and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionFromPath(path))
//	if err != nil {
//	    return err
//	}
//	stream, err := codec.Decompress(fileBytes)
//
// Measure runs one compress/decompress cycle and reports the ratio and
// timings, which is what the qoiedit -stats flag prints.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
