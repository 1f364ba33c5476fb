// Package driver abstracts the LED matrix output sink.
package driver

// Driver is the hardware boundary the control loop writes through. Frame
// takes serialized rows, 8 bytes per chain position, in the exact order
// produced by frame.Serialize. Intensity and display commands are idempotent.
type Driver interface {
	Frame(rows []byte) error
	SetIntensity(level int) error
	SetDisplay(on bool) error
	// Test drives the chip's display-test register (all pixels lit).
	Test(on bool) error
	// Close releases the underlying bus.
	Close() error
}
