package driver

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Sim swallows frames and remembers the last state, useful for headless runs
// and tests.
type Sim struct {
	mu        sync.Mutex
	frames    int
	rows      []byte
	on        bool
	intensity int
	test      bool
}

func NewSim() *Sim { return &Sim{on: true, intensity: -1} }

func (s *Sim) Frame(rows []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++
	s.rows = append(s.rows[:0], rows...)
	return nil
}

func (s *Sim) SetIntensity(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if level != s.intensity {
		s.intensity = level
		log.Debug().Int("intensity", level).Msg("sim intensity")
	}
	return nil
}

func (s *Sim) SetDisplay(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on != s.on {
		s.on = on
		log.Debug().Bool("on", on).Msg("sim display")
	}
	return nil
}

func (s *Sim) Test(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.test = on
	return nil
}

func (s *Sim) Close() error { return nil }

// Frames reports how many frames have been written.
func (s *Sim) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Rows returns a copy of the last written frame.
func (s *Sim) Rows() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.rows...)
}

// On reports the last display power command.
func (s *Sim) On() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// Intensity reports the last intensity command.
func (s *Sim) Intensity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intensity
}
