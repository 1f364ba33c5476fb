// Package font decodes the bitmap font assets baked into the binary.
//
// The table layout is the one microcontroller matrix projects bake into
// flash, so existing assets port without re-encoding: a 4-byte header
// {width_max, height, first_code, last_code} followed by fixed-stride glyph
// records. Each record is one width byte plus bands*width_max data bytes,
// column-major (column i, band j at offset 1 + bands*i + j), bit 0 = top row
// of the band. Heights above 8 are stored as stacked 8-row bands.
package font

import "github.com/example/matrixclock/internal/frame"

const headerLen = 4

// Font is an immutable view over a glyph table. The zero value is empty and
// renders nothing.
type Font struct {
	table []byte
}

// New wraps a raw glyph table. The table is never copied or mutated.
func New(table []byte) Font {
	if len(table) < headerLen {
		return Font{}
	}
	return Font{table: table}
}

func (f Font) widthMax() int { return int(f.table[0]) }

// Height reports the glyph height in pixels, rounded up to a multiple of 8.
func (f Font) Height() int {
	if f.table == nil {
		return 0
	}
	return (int(f.table[1]) + 7) / 8 * 8
}

func (f Font) bands() int { return (int(f.table[1]) + 7) / 8 }

func (f Font) stride() int { return f.bands()*f.widthMax() + 1 }

// record returns the glyph record for a character code, or nil when the code
// is outside the font's declared range. Fonts intentionally cover only a
// subset of characters; misses are not errors.
func (f Font) record(code byte) []byte {
	if f.table == nil || code < f.table[2] || code > f.table[3] {
		return nil
	}
	off := headerLen + int(code-f.table[2])*f.stride()
	if off+f.stride() > len(f.table) {
		return nil
	}
	return f.table[off : off+f.stride()]
}

// Width reports the advance width of a glyph, 0 for codes the font does not
// cover.
func (f Font) Width(code byte) int {
	rec := f.record(code)
	if rec == nil {
		return 0
	}
	return int(rec[0])
}

// Blit draws a glyph into the buffer with its top-left corner at (x, y) and
// returns the width consumed. y must be band-aligned. The column just past
// the glyph is cleared so no stale pixels from a previous frame survive
// between characters; columns past the buffer edge are dropped.
func (f Font) Blit(buf *frame.Buffer, code byte, x, y int) int {
	rec := f.record(code)
	if rec == nil {
		return 0
	}
	w := int(rec[0])
	nb := f.bands()
	for j := 0; j < nb; j++ {
		band := y/8 + j
		for i := 0; i < w; i++ {
			buf.SetColumn(x+i, band, rec[1+nb*i+j])
		}
		if x+w < buf.Width() {
			buf.SetColumn(x+w, band, 0)
		}
	}
	return w
}

// DoubleHeight derives a two-band font from a single-band one by stretching
// every row to two. Built once at load time; used for the large time mode.
func DoubleHeight(src Font) Font {
	if src.table == nil || src.bands() != 1 {
		return Font{}
	}
	wm := src.widthMax()
	stride := 2*wm + 1
	n := int(src.table[3]-src.table[2]) + 1
	out := make([]byte, headerLen+n*stride)
	out[0] = byte(wm)
	out[1] = 16
	out[2] = src.table[2]
	out[3] = src.table[3]
	for g := 0; g < n; g++ {
		rec := src.table[headerLen+g*src.stride() : headerLen+(g+1)*src.stride()]
		dst := out[headerLen+g*stride:]
		dst[0] = rec[0]
		for i := 0; i < wm; i++ {
			lo, hi := stretchByte(rec[1+i])
			dst[1+2*i] = lo
			dst[1+2*i+1] = hi
		}
	}
	return Font{table: out}
}

// stretchByte doubles each bit of a column byte into a 16-bit column,
// returned as (top band, bottom band).
func stretchByte(v byte) (byte, byte) {
	var d uint16
	for r := 0; r < 8; r++ {
		if v>>r&1 == 1 {
			d |= 3 << (2 * r)
		}
	}
	return byte(d), byte(d >> 8)
}
