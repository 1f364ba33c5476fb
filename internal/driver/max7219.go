package driver

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// MAX7219 register map.
const (
	regNoop        = 0x00
	regDigit0      = 0x01
	regDecodeMode  = 0x09
	regIntensity   = 0x0a
	regScanLimit   = 0x0b
	regShutdown    = 0x0c
	regDisplayTest = 0x0f
)

// defaultSpeed is well inside the chip's 10 MHz ceiling.
const defaultSpeed = 8 * physic.MegaHertz

// MAX7219 drives a daisy chain of MAX7219/MAX7221 modules over SPI. Chain
// position 0 is the module nearest the bus; bytes for the farthest module
// are clocked out first.
type MAX7219 struct {
	port  spi.PortCloser
	conn  spi.Conn
	units int
	tx    []byte // scratch, units*2

	lastIntensity int
	lastOn        int // -1 unknown, 0 off, 1 on
}

// NewMAX7219 opens the named SPI port (empty for the first available) and
// initializes the chain.
func NewMAX7219(dev string, units, speedHz int) (*MAX7219, error) {
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open spi: %w", err)
	}
	d, err := NewMAX7219Port(port, units, speedHz)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return d, nil
}

// NewMAX7219Port wires the driver onto an already opened port. Split out so
// tests can substitute a recording port.
func NewMAX7219Port(port spi.PortCloser, units, speedHz int) (*MAX7219, error) {
	if units <= 0 {
		return nil, fmt.Errorf("invalid module count: %d", units)
	}
	speed := defaultSpeed
	if speedHz > 0 {
		speed = physic.Frequency(speedHz) * physic.Hertz
	}
	conn, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("spi connect: %w", err)
	}
	d := &MAX7219{
		port:          port,
		conn:          conn,
		units:         units,
		tx:            make([]byte, units*2),
		lastIntensity: -1,
		lastOn:        -1,
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// command sends one register write replicated to every unit in the chain.
func (d *MAX7219) command(register, data byte) error {
	for i := 0; i < d.units; i++ {
		d.tx[i*2] = register
		d.tx[i*2+1] = data
	}
	return d.conn.Tx(d.tx, nil)
}

func (d *MAX7219) init() error {
	seq := [][2]byte{
		{regDisplayTest, 0},
		{regDecodeMode, 0},
		{regScanLimit, 7},
		{regShutdown, 1},
		{regIntensity, 7},
	}
	for _, c := range seq {
		if err := d.command(c[0], c[1]); err != nil {
			return fmt.Errorf("max7219 init: %w", err)
		}
	}
	return d.Frame(make([]byte, d.units*8))
}

// Frame pushes one serialized frame: for each digit register, one chained
// transaction carrying that digit's byte for every module.
func (d *MAX7219) Frame(rows []byte) error {
	if len(rows) != d.units*8 {
		return fmt.Errorf("frame length %d does not match %d modules", len(rows), d.units)
	}
	for digit := 0; digit < 8; digit++ {
		for m := 0; m < d.units; m++ {
			src := d.units - 1 - m
			d.tx[m*2] = byte(regDigit0 + digit)
			d.tx[m*2+1] = rows[src*8+digit]
		}
		if err := d.conn.Tx(d.tx, nil); err != nil {
			return fmt.Errorf("max7219 digit %d: %w", digit, err)
		}
	}
	return nil
}

func (d *MAX7219) SetIntensity(level int) error {
	if level < 0 {
		level = 0
	}
	if level > 15 {
		level = 15
	}
	if level == d.lastIntensity {
		return nil
	}
	if err := d.command(regIntensity, byte(level)); err != nil {
		return fmt.Errorf("max7219 intensity: %w", err)
	}
	d.lastIntensity = level
	return nil
}

func (d *MAX7219) SetDisplay(on bool) error {
	want := 0
	if on {
		want = 1
	}
	if want == d.lastOn {
		return nil
	}
	if err := d.command(regShutdown, byte(want)); err != nil {
		return fmt.Errorf("max7219 shutdown: %w", err)
	}
	d.lastOn = want
	return nil
}

func (d *MAX7219) Test(on bool) error {
	var v byte
	if on {
		v = 1
	}
	if err := d.command(regDisplayTest, v); err != nil {
		return fmt.Errorf("max7219 display test: %w", err)
	}
	return nil
}

func (d *MAX7219) Close() error { return d.port.Close() }
