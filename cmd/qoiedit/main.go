// Command qoiedit loads a qoif image, applies flip, rotate and invert
// transforms and writes the result.
//
// Usage:
//
//	qoiedit [flags] input.qoi[.zst|.s2|.lz4]
//
// Transforms run in the order flip, rotate, invert. Compressed inputs are
// recognized by their file extension; the output is compressed when -compress
// is given or the -o path carries a compression extension.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qoiedit: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("qoiedit", flag.ContinueOnError)
	opts := options{}
	fs.StringVar(&opts.output, "o", defaultOutput, "output file path")
	fs.BoolVar(&opts.flip, "flip", false, "mirror the image horizontally")
	fs.BoolVar(&opts.invert, "invert", false, "invert the color channels")
	fs.IntVar(&opts.rotate, "rotate", 0, "rotate left by `n` quarter turns (negative rotates right)")
	fs.StringVar(&opts.compression, "compress", "", "output compression: none, zstd, s2 or lz4 (default: from -o extension)")
	fs.BoolVar(&opts.info, "info", false, "print image information and exit")
	fs.BoolVar(&opts.stats, "stats", false, "print chunk and compression statistics of the output")
	fs.BoolVar(&opts.strict, "strict", false, "require a valid end marker and header fields")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: qoiedit [flags] input.qoi\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	opts.input = fs.Arg(0)

	return edit(opts, stdout)
}
