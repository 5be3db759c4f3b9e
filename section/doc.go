// Package section defines the low-level binary layout of a qoif stream.
//
// A stream is a fixed 14-byte header, a variable-length sequence of pixel
// chunks and an 8-byte end marker:
//
//	Bytes      | Field       | Type   | Description
//	-----------|-------------|--------|-------------------------------------
//	0-3        | Magic       | [4]u8  | "qoif"
//	4-7        | Height      | uint32 | big-endian
//	8-11       | Width       | uint32 | big-endian
//	12         | Channels    | uint8  | 3 = RGB, 4 = RGBA (informational)
//	13         | Colorspace  | uint8  | 0 = sRGB + linear alpha, 1 = linear
//	14..end-8  | Chunks      | bytes  | see below
//	end-8..end | End marker  | [8]u8  | 00 00 00 00 00 00 00 01
//
// # Chunks
//
// Every chunk starts with a tag byte. RGB and RGBA literals use the full byte
// as a sentinel; all other chunks keep the tag in the top two bits:
//
//	Tag         | First byte | Payload
//	------------|------------|-----------------------------------------------
//	TagIndex    | 00xxxxxx   | history cache slot
//	TagDiff     | 01rrggbb   | dr+2, dg+2, db+2
//	TagLuma     | 10gggggg   | dg+32, then one byte (dr-dg+8)<<4 | (db-dg+8)
//	TagRun      | 11llllll   | run length - 1 (0..61)
//	TagRGB      | 11111110   | then r, g, b
//	TagRGBA     | 11111111   | then r, g, b, a
//
// Run lengths 63 and 64 would collide with the RGB/RGBA sentinels, which is
// why MaxRunLength is 62.
//
// # Thread Safety
//
// Header is a plain value type and is safe to copy and share.
package section
