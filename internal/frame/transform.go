package frame

import "fmt"

// Rotation selects how the logical grid maps onto the physical chain.
// The matrix modules are usually mounted rotated 90 degrees relative to the
// chip's digit-to-row convention; which way depends on the build.
type Rotation int

const (
	RotateNone Rotation = iota
	Rotate90
	Rotate270
)

// ParseRotation accepts the degree values used in config files.
func ParseRotation(deg int) (Rotation, error) {
	switch deg {
	case 0:
		return RotateNone, nil
	case 90:
		return Rotate90, nil
	case 270:
		return Rotate270, nil
	}
	return RotateNone, fmt.Errorf("unsupported rotation: %d", deg)
}

func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "90"
	case Rotate270:
		return "270"
	}
	return "0"
}

// Serialize converts the logical buffer into the byte rows the driver chain
// expects: 8 bytes per chain position, position = (y/8)*tilesX + (x/8).
//
// For Rotate90 a module's "digit" d is the tile column d and bit b of the
// output byte is the tile row b (bit 0 = top row). This is the inverse bit
// order from the unrotated case, where digit r is the tile row r and bit 7-c
// is the tile column c, matching the chip's segment convention. Rotate270 is
// the bit-reversal of Rotate90: mirrored column index, reversed bits.
func Serialize(b *Buffer, rot Rotation, tilesX, tilesY int) []byte {
	out := make([]byte, tilesX*tilesY*8)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			pos := ty*tilesX + tx
			x0, y0 := tx*8, ty*8
			for d := 0; d < 8; d++ {
				var v byte
				switch rot {
				case Rotate90:
					for bit := 0; bit < 8; bit++ {
						if b.Pixel(x0+d, y0+bit) {
							v |= 1 << bit
						}
					}
				case Rotate270:
					for bit := 0; bit < 8; bit++ {
						if b.Pixel(x0+7-d, y0+7-bit) {
							v |= 1 << bit
						}
					}
				default:
					for c := 0; c < 8; c++ {
						if b.Pixel(x0+c, y0+d) {
							v |= 1 << (7 - c)
						}
					}
				}
				out[pos*8+d] = v
			}
		}
	}
	return out
}

// DecodePixel is the inverse of Serialize: it recovers the logical pixel
// (x, y) from an already serialized frame. The mirror surface uses it so a
// consumer can reconstruct the image from the exact bytes sent to hardware.
func DecodePixel(rows []byte, rot Rotation, tilesX, tilesY, x, y int) bool {
	if x < 0 || y < 0 || x >= tilesX*8 || y >= tilesY*8 {
		return false
	}
	pos := (y/8)*tilesX + x/8
	cx, cy := x%8, y%8
	switch rot {
	case Rotate90:
		return rows[pos*8+cx]>>cy&1 == 1
	case Rotate270:
		return rows[pos*8+7-cx]>>(7-cy)&1 == 1
	default:
		return rows[pos*8+cy]>>(7-cx)&1 == 1
	}
}
