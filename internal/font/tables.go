package font

// Shipped fonts. Each table follows the header+records schema documented in
// this package; the byte arrays are never written to.

// Digits5x8 covers '0'..':' at up to 5x8, the workhorse for the time line.
var Digits5x8 = New([]byte{
	5, 8, 48, 58,
	5, 0x3E, 0x51, 0x49, 0x45, 0x3E, // 0
	5, 0x00, 0x42, 0x7F, 0x40, 0x00, // 1
	5, 0x42, 0x61, 0x51, 0x49, 0x46, // 2
	5, 0x21, 0x41, 0x45, 0x4B, 0x31, // 3
	5, 0x18, 0x14, 0x12, 0x7F, 0x10, // 4
	5, 0x27, 0x45, 0x45, 0x45, 0x39, // 5
	5, 0x3C, 0x4A, 0x49, 0x49, 0x30, // 6
	5, 0x01, 0x71, 0x09, 0x05, 0x03, // 7
	5, 0x36, 0x49, 0x49, 0x49, 0x36, // 8
	5, 0x06, 0x49, 0x49, 0x29, 0x1E, // 9
	1, 0x36, 0x00, 0x00, 0x00, 0x00, // :
})

// Digits3x5 covers '0'..'9', used for the small seconds readout.
var Digits3x5 = New([]byte{
	3, 5, 48, 57,
	3, 0x1F, 0x11, 0x1F, // 0
	3, 0x12, 0x1F, 0x10, // 1
	3, 0x1D, 0x15, 0x17, // 2
	3, 0x15, 0x15, 0x1F, // 3
	3, 0x07, 0x04, 0x1F, // 4
	3, 0x17, 0x15, 0x1D, // 5
	3, 0x1F, 0x15, 0x1D, // 6
	3, 0x01, 0x01, 0x1F, // 7
	3, 0x1F, 0x15, 0x1F, // 8
	3, 0x17, 0x15, 0x1F, // 9
})

// Text3x7 covers ' '..'Z': digits, A-Z and the handful of punctuation the
// environment and date lines need. Codes in range without a shape are
// zero-width and render nothing.
var Text3x7 = New([]byte{
	3, 7, 32, 90,
	2, 0x00, 0x00, 0x00, // space
	0, 0x00, 0x00, 0x00, // !
	0, 0x00, 0x00, 0x00, // "
	0, 0x00, 0x00, 0x00, // #
	0, 0x00, 0x00, 0x00, // $
	3, 0x23, 0x08, 0x62, // %
	0, 0x00, 0x00, 0x00, // &
	0, 0x00, 0x00, 0x00, // '
	0, 0x00, 0x00, 0x00, // (
	0, 0x00, 0x00, 0x00, // )
	0, 0x00, 0x00, 0x00, // *
	0, 0x00, 0x00, 0x00, // +
	0, 0x00, 0x00, 0x00, // ,
	2, 0x08, 0x08, 0x00, // -
	1, 0x40, 0x00, 0x00, // .
	3, 0x60, 0x1C, 0x03, // /
	3, 0x3E, 0x22, 0x3E, // 0
	3, 0x24, 0x3E, 0x20, // 1
	3, 0x3A, 0x2A, 0x2E, // 2
	3, 0x2A, 0x2A, 0x3E, // 3
	3, 0x0E, 0x08, 0x3E, // 4
	3, 0x2E, 0x2A, 0x3A, // 5
	3, 0x3E, 0x2A, 0x3A, // 6
	3, 0x02, 0x02, 0x3E, // 7
	3, 0x3E, 0x2A, 0x3E, // 8
	3, 0x2E, 0x2A, 0x3E, // 9
	1, 0x14, 0x00, 0x00, // :
	0, 0x00, 0x00, 0x00, // ;
	0, 0x00, 0x00, 0x00, // <
	0, 0x00, 0x00, 0x00, // =
	0, 0x00, 0x00, 0x00, // >
	0, 0x00, 0x00, 0x00, // ?
	0, 0x00, 0x00, 0x00, // @
	3, 0x7E, 0x09, 0x7E, // A
	3, 0x7F, 0x49, 0x36, // B
	3, 0x3E, 0x41, 0x41, // C
	3, 0x7F, 0x41, 0x3E, // D
	3, 0x7F, 0x49, 0x49, // E
	3, 0x7F, 0x09, 0x09, // F
	3, 0x3E, 0x41, 0x79, // G
	3, 0x7F, 0x08, 0x7F, // H
	3, 0x41, 0x7F, 0x41, // I
	3, 0x20, 0x40, 0x3F, // J
	3, 0x7F, 0x08, 0x77, // K
	3, 0x7F, 0x40, 0x40, // L
	3, 0x7F, 0x06, 0x7F, // M
	3, 0x7F, 0x1C, 0x7F, // N
	3, 0x3E, 0x41, 0x3E, // O
	3, 0x7F, 0x09, 0x06, // P
	3, 0x3E, 0x51, 0x5E, // Q
	3, 0x7F, 0x09, 0x76, // R
	3, 0x46, 0x49, 0x31, // S
	3, 0x01, 0x7F, 0x01, // T
	3, 0x3F, 0x40, 0x3F, // U
	3, 0x1F, 0x60, 0x1F, // V
	3, 0x7F, 0x30, 0x7F, // W
	3, 0x63, 0x1C, 0x63, // X
	3, 0x07, 0x78, 0x07, // Y
	3, 0x71, 0x49, 0x47, // Z
})

// Digits5x16 is Digits5x8 stretched to two bands for the large time mode.
var Digits5x16 = DoubleHeight(Digits5x8)
