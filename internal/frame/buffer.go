package frame

// Buffer is the logical pixel grid glyphs are drawn into. Pixels are packed
// one byte per (column, band): data[x + width*band], bit 0 = top row of the
// band. The layout matches the font asset format, so a blit is a plain byte
// copy and the 90-degree serializer reads columns straight out of storage.
type Buffer struct {
	width  int
	height int
	data   []byte
}

// NewBuffer allocates a cleared buffer for a tilesX x tilesY grid of 8x8 tiles.
func NewBuffer(tilesX, tilesY int) *Buffer {
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesY < 1 {
		tilesY = 1
	}
	w := tilesX * 8
	h := tilesY * 8
	return &Buffer{width: w, height: h, data: make([]byte, w*(h/8))}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }
func (b *Buffer) Bands() int  { return b.height / 8 }

// Clear zeroes every pixel. Called at the start of each render pass.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// SetColumn overwrites the 8-pixel column byte at (x, band). Writes outside
// the grid are dropped so a glyph running off the right edge clips cleanly.
func (b *Buffer) SetColumn(x, band int, v byte) {
	if x < 0 || x >= b.width || band < 0 || band >= b.Bands() {
		return
	}
	b.data[x+b.width*band] = v
}

// Column returns the column byte at (x, band), 0 outside the grid.
func (b *Buffer) Column(x, band int) byte {
	if x < 0 || x >= b.width || band < 0 || band >= b.Bands() {
		return 0
	}
	return b.data[x+b.width*band]
}

func (b *Buffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := x + b.width*(y/8)
	mask := byte(1) << (y % 8)
	if on {
		b.data[i] |= mask
	} else {
		b.data[i] &^= mask
	}
}

func (b *Buffer) Pixel(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.data[x+b.width*(y/8)]>>(y%8)&1 == 1
}

// ShiftBand nudges every column of a band one bit along the band axis,
// used to visually center a text line after it is drawn.
func (b *Buffer) ShiftBand(band int) {
	if band < 0 || band >= b.Bands() {
		return
	}
	off := b.width * band
	for x := 0; x < b.width; x++ {
		b.data[off+x] <<= 1
	}
}
