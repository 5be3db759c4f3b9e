package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/qoif"
	"github.com/arloliu/qoif/codec"
	"github.com/arloliu/qoif/compress"
	"github.com/arloliu/qoif/format"
	"github.com/arloliu/qoif/internal/hash"
	"github.com/arloliu/qoif/raster"
)

const (
	defaultOutput = "outputImage.qoi"
	qoiExtension  = ".qoi"
)

var (
	errUsage     = errors.New("expected exactly one input file")
	errExtension = errors.New("file name must end in " + qoiExtension)
	errSamePath  = errors.New("input and output are the same file")
)

type options struct {
	input       string
	output      string
	flip        bool
	invert      bool
	rotate      int
	compression string
	info        bool
	stats       bool
	strict      bool
}

func (o options) decoderOptions() []codec.DecoderOption {
	if !o.strict {
		return nil
	}

	return []codec.DecoderOption{codec.WithStrictEndMarker(true), codec.WithHeaderValidation(true)}
}

// outputCompression resolves the -compress flag against the output path and
// returns the final output path.
func (o options) outputCompression() (format.CompressionType, string, error) {
	fromPath := format.CompressionFromPath(o.output)
	if o.compression == "" {
		return fromPath, o.output, nil
	}

	ct, ok := format.ParseCompression(o.compression)
	if !ok {
		return 0, "", fmt.Errorf("-compress %q: must be none, zstd, s2 or lz4", o.compression)
	}
	if fromPath != format.CompressionNone && fromPath != ct {
		return 0, "", fmt.Errorf("-compress %s conflicts with output %s", ct, o.output)
	}

	path := o.output
	if ext := ct.Extension(); ext != "" && !strings.HasSuffix(path, ext) {
		path += ext
	}

	return ct, path, nil
}

// checkPath requires a .qoi name, optionally followed by a compression extension.
func checkPath(path string) error {
	base := path
	if format.CompressionFromPath(path) != format.CompressionNone {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}
	if !strings.EqualFold(filepath.Ext(base), qoiExtension) {
		return fmt.Errorf("%s: %w", path, errExtension)
	}

	return nil
}

func edit(o options, stdout io.Writer) error {
	if err := checkPath(o.input); err != nil {
		return err
	}

	img, stream, err := load(o.input, o.decoderOptions())
	if err != nil {
		return err
	}

	if o.info {
		printInfo(stdout, o.input, img, stream)
		return nil
	}

	ct, outPath, err := o.outputCompression()
	if err != nil {
		return err
	}
	if err := checkPath(outPath); err != nil {
		return err
	}
	if same, _ := samePath(o.input, outPath); same {
		return errSamePath
	}

	if o.flip {
		if err := qoif.Flip(img); err != nil {
			return err
		}
	}
	if o.rotate != 0 {
		if err := qoif.RotateLeft(img, o.rotate); err != nil {
			return err
		}
	}
	if o.invert {
		if err := qoif.Invert(img); err != nil {
			return err
		}
	}

	enc, err := codec.NewEncoder()
	if err != nil {
		return err
	}
	out, err := enc.Encode(img.Header, img.Pixels)
	if err != nil {
		return err
	}

	if o.stats {
		if err := printStats(stdout, enc, out); err != nil {
			return err
		}
	}

	c, err := compress.GetCodec(ct)
	if err != nil {
		return err
	}
	packed, err := c.Compress(out)
	if err != nil {
		return fmt.Errorf("compress %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, packed, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s (%dx%d, %d bytes)\n", outPath, img.Header.Width, img.Header.Height, len(packed))

	return nil
}

// load reads path, removes any container compression and decodes the stream.
func load(path string, opts []codec.DecoderOption) (*raster.Image, []byte, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	c, err := compress.GetCodec(format.CompressionFromPath(path))
	if err != nil {
		return nil, nil, err
	}
	stream, err := c.Decompress(fileBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	img, err := qoif.LoadFromBytes(stream, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, stream, nil
}

func samePath(a, b string) (bool, error) {
	sa, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false, err
	}

	return os.SameFile(sa, sb), nil
}

func printInfo(w io.Writer, path string, img *raster.Image, stream []byte) {
	h := img.Header
	fmt.Fprintf(w, "file:        %s\n", path)
	fmt.Fprintf(w, "size:        %dx%d\n", h.Width, h.Height)
	fmt.Fprintf(w, "channels:    %s\n", h.Channels)
	fmt.Fprintf(w, "colorspace:  %s\n", h.Colorspace)
	fmt.Fprintf(w, "stream:      %d bytes, xxh64 %016x\n", len(stream), hash.Bytes(stream))
	fmt.Fprintf(w, "pixels:      %d, xxh64 %016x\n", len(img.Pixels), img.Digest())
}

func printStats(w io.Writer, enc *codec.Encoder, stream []byte) error {
	s := enc.Stats()
	raw := s.Pixels * 4
	fmt.Fprintf(w, "chunks: %s\n", s)
	if raw > 0 {
		fmt.Fprintf(w, "qoif:   %d -> %d bytes (%.1f%% of raw RGBA)\n", raw, len(stream), 100*float64(len(stream))/float64(raw))
	}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		cs, err := compress.Measure(ct, stream)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", cs)
	}

	return nil
}
