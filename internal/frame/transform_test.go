package frame

import "testing"

// scatter sets a deterministic spread of pixels across the whole grid.
func scatter(b *Buffer) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if (x*7+y*13)%5 == 0 {
				b.SetPixel(x, y, true)
			}
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	grids := []struct{ tx, ty int }{{2, 1}, {4, 2}}
	rots := []Rotation{RotateNone, Rotate90, Rotate270}
	for _, g := range grids {
		for _, rot := range rots {
			b := NewBuffer(g.tx, g.ty)
			scatter(b)
			rows := Serialize(b, rot, g.tx, g.ty)
			if len(rows) != g.tx*g.ty*8 {
				t.Fatalf("grid %dx%d rot %s: %d bytes", g.tx, g.ty, rot, len(rows))
			}
			for y := 0; y < b.Height(); y++ {
				for x := 0; x < b.Width(); x++ {
					if got := DecodePixel(rows, rot, g.tx, g.ty, x, y); got != b.Pixel(x, y) {
						t.Fatalf("grid %dx%d rot %s: pixel (%d,%d) decoded %v", g.tx, g.ty, rot, x, y, got)
					}
				}
			}
		}
	}
}

func TestSerializeChainPosition(t *testing.T) {
	// One pixel in the second tile row must land in the right module slot.
	b := NewBuffer(4, 2)
	b.SetPixel(17, 9, true) // tile (2,1) -> chain position 1*4+2 = 6
	rows := Serialize(b, Rotate90, 4, 2)
	for pos := 0; pos < 8; pos++ {
		var sum byte
		for d := 0; d < 8; d++ {
			sum |= rows[pos*8+d]
		}
		if (sum != 0) != (pos == 6) {
			t.Fatalf("chain position %d: bytes %v", pos, rows[pos*8:pos*8+8])
		}
	}
	// Rotate90: digit = in-tile column (1), bit = in-tile row (1).
	if rows[6*8+1] != 1<<1 {
		t.Fatalf("expected bit 1 of digit 1, got %08b", rows[6*8+1])
	}
}

func TestSerializeBitOrderDiffersByRotation(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetPixel(0, 0, true) // top-left
	none := Serialize(b, RotateNone, 1, 1)
	r90 := Serialize(b, Rotate90, 1, 1)
	r270 := Serialize(b, Rotate270, 1, 1)
	if none[0] != 0x80 {
		t.Fatalf("no rotation: row 0 = %08b, want 10000000", none[0])
	}
	if r90[0] != 0x01 {
		t.Fatalf("rotate 90: digit 0 = %08b, want 00000001", r90[0])
	}
	if r270[7] != 0x80 {
		t.Fatalf("rotate 270: digit 7 = %08b, want 10000000", r270[7])
	}
}

func TestBufferShiftBand(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetColumn(3, 1, 0x01)
	b.ShiftBand(1)
	if got := b.Column(3, 1); got != 0x02 {
		t.Fatalf("shifted column = %02x, want 02", got)
	}
	if got := b.Column(3, 0); got != 0 {
		t.Fatalf("band 0 disturbed: %02x", got)
	}
}

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(2, 1)
	b.SetPixel(-1, 0, true)
	b.SetPixel(16, 0, true)
	b.SetPixel(0, 8, true)
	for i := 0; i < 16; i++ {
		if b.Column(i, 0) != 0 {
			t.Fatalf("out-of-range writes landed at column %d", i)
		}
	}
	if b.Pixel(99, 99) {
		t.Fatal("out-of-range read true")
	}
}
