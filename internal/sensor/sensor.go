// Package sensor supplies the three external inputs the control loop samples
// each tick: an environment snapshot, a raw ambient light reading and a
// motion boolean. Hardware sources live in periph.go; the Sim types stand in
// when the hardware is absent.
package sensor

// Snapshot is one environment reading. Temperature is Celsius; the display
// layer converts for Fahrenheit output. Available=false means the text
// fallback is rendered instead.
type Snapshot struct {
	Temperature float64
	Humidity    float64
	Available   bool
}

// Source yields environment snapshots.
type Source interface {
	Read() Snapshot
}

// LightSource yields raw ambient light samples in the 0..1023 domain.
type LightSource interface {
	Raw() int
}

// MotionSource reports whether motion is currently detected.
type MotionSource interface {
	Detected() bool
}

// SimEnv is a fixed environment source for headless runs and tests.
type SimEnv struct {
	Temp    float64
	Hum     float64
	Present bool
}

func (s SimEnv) Read() Snapshot {
	return Snapshot{Temperature: s.Temp, Humidity: s.Hum, Available: s.Present}
}

// SimLight is a fixed light source.
type SimLight struct{ Value int }

func (s SimLight) Raw() int { return s.Value }

// SimMotion is a settable motion source.
type SimMotion struct{ Value bool }

func (s *SimMotion) Detected() bool { return s.Value }
