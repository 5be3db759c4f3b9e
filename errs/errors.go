// Package errs defines the error values returned by qoif packages.
//
// Every specific error wraps exactly one of the three error kinds below, so
// callers can branch on the kind with errors.Is:
//
//	_, err := qoif.LoadFromBytes(data)
//	switch {
//	case errors.Is(err, errs.ErrTruncatedStream):
//	    // the file was cut short
//	case errors.Is(err, errs.ErrFormat):
//	    // not a qoif stream, or a corrupted one
//	case errors.Is(err, errs.ErrDimension):
//	    // width/height do not describe a usable pixel buffer
//	}
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrFormat reports a stream that is not a well-formed qoif stream.
	ErrFormat = errors.New("qoif: format error")
	// ErrTruncatedStream reports a stream with fewer bytes than its declared pixel count requires.
	ErrTruncatedStream = errors.New("qoif: truncated stream")
	// ErrDimension reports width/height values that cannot describe the pixel buffer.
	ErrDimension = errors.New("qoif: dimension error")
)

// Format errors.
var (
	ErrInvalidHeaderSize  = fmt.Errorf("%w: header requires 14 bytes", ErrFormat)
	ErrInvalidMagic       = fmt.Errorf("%w: invalid magic", ErrFormat)
	ErrUnknownTag         = fmt.Errorf("%w: unknown chunk tag", ErrFormat)
	ErrRunOverflow        = fmt.Errorf("%w: run exceeds declared pixel count", ErrFormat)
	ErrInvalidEndMarker   = fmt.Errorf("%w: invalid end marker", ErrFormat)
	ErrInvalidChannels    = fmt.Errorf("%w: channels must be 3 or 4", ErrFormat)
	ErrInvalidColorspace  = fmt.Errorf("%w: colorspace must be 0 or 1", ErrFormat)
	ErrInvalidCompression = fmt.Errorf("%w: unsupported compression", ErrFormat)
)

// Dimension errors.
var (
	ErrZeroDimension      = fmt.Errorf("%w: width and height must be non-zero", ErrDimension)
	ErrPixelCountMismatch = fmt.Errorf("%w: pixel buffer length does not match width*height", ErrDimension)
	ErrTooManyPixels      = fmt.Errorf("%w: pixel count exceeds limit", ErrDimension)
	ErrInvalidMaxPixels   = fmt.Errorf("%w: pixel limit must be positive", ErrDimension)
)
