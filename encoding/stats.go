package encoding

import "fmt"

// Stats counts the chunks emitted by a PixelEncoder, one field per chunk kind.
type Stats struct {
	Pixels int // pixels written
	Index  int // INDEX chunks
	Diff   int // DIFF chunks
	Luma   int // LUMA chunks
	Run    int // RUN chunks
	RGB    int // RGB literal chunks
	RGBA   int // RGBA literal chunks
}

// Chunks returns the total number of chunks.
func (s Stats) Chunks() int {
	return s.Index + s.Diff + s.Luma + s.Run + s.RGB + s.RGBA
}

// BodySize returns the number of chunk bytes the counted chunks occupy.
func (s Stats) BodySize() int {
	return s.Index + s.Diff + 2*s.Luma + s.Run + 4*s.RGB + 5*s.RGBA
}

func (s Stats) String() string {
	return fmt.Sprintf("pixels=%d chunks=%d index=%d diff=%d luma=%d run=%d rgb=%d rgba=%d",
		s.Pixels, s.Chunks(), s.Index, s.Diff, s.Luma, s.Run, s.RGB, s.RGBA)
}
