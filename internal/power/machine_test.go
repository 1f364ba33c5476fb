package power

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func inputsAt(now time.Time, motion bool) Inputs {
	return Inputs{Now: now, Hour: now.Hour(), Minute: now.Minute(), Motion: motion, RawLight: 512}
}

// offWindowAround returns an enabled window containing the given time.
func offWindowAround(now time.Time) Window {
	return Window{Enabled: true, StartHour: (now.Hour() + 23) % 24, EndHour: (now.Hour() + 1) % 24}
}

func TestGraceBeatsSchedule(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Grace: 10 * time.Second, Override: time.Minute}, t0)
	m.SetSchedule(offWindowAround(t0))

	d := m.Resolve(inputsAt(t0.Add(5*time.Second), false))
	assert.True(t, d.On, "grace must win over the off window")
	assert.Equal(t, "grace", d.Rule)

	// Once the grace deadline passes, the schedule takes over.
	d = m.Resolve(inputsAt(t0.Add(11*time.Second), false))
	assert.False(t, d.On)
	assert.Equal(t, "schedule", d.Rule)
	assert.Equal(t, 0, d.Intensity)
}

func TestOverrideSuppressesScheduleUntilExpiry(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Override: time.Minute}, t0)
	m.SetSchedule(offWindowAround(t0))

	// Schedule forces off.
	d := m.Resolve(inputsAt(t0, false))
	require.False(t, d.On)

	// A manual on wins over the schedule while it lives.
	m.ForceOn(t0)
	d = m.Resolve(inputsAt(t0.Add(time.Second), false))
	assert.True(t, d.On)
	assert.Equal(t, "override", d.Rule)

	// The very next tick past expiry, the schedule is back in charge.
	d = m.Resolve(inputsAt(t0.Add(61*time.Second), false))
	assert.False(t, d.On)
	assert.Equal(t, "schedule", d.Rule)
}

func TestOverrideOff(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Override: time.Minute}, t0)
	m.ForceOff(t0)
	d := m.Resolve(inputsAt(t0, true))
	assert.False(t, d.On, "manual off beats motion")
	// After expiry motion turns it back on.
	d = m.Resolve(inputsAt(t0.Add(2*time.Minute), true))
	assert.True(t, d.On)
	assert.Equal(t, "motion", d.Rule)
}

func TestMotionResetsIdleAndSetsAmbient(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Override: time.Minute}, t0)
	in := inputsAt(t0, true)
	in.RawLight = 1023
	d := m.Resolve(in)
	assert.True(t, d.On)
	assert.Equal(t, 15, d.Intensity)
	assert.Equal(t, 60, m.Snapshot().Idle)
}

func TestIdleFadeThenOff(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Override: time.Minute}, t0)
	m.SetManualLevel(10)

	// Prime the idle timer with one motion tick.
	now := t0
	m.Resolve(inputsAt(now, true))

	prev := 10
	sawOff := false
	for i := 0; i < 61; i++ {
		now = now.Add(time.Second)
		d := m.Resolve(inputsAt(now, false))
		if !d.On {
			sawOff = true
			assert.Equal(t, 0, d.Intensity, "off never carries an intensity")
			break
		}
		assert.LessOrEqual(t, d.Intensity, prev, "fade is monotonically non-increasing")
		assert.GreaterOrEqual(t, d.Intensity, 1)
		prev = d.Intensity
	}
	assert.True(t, sawOff, "display must extinguish when the timer runs out")
}

func TestManualLevelClampedAtBoundary(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Override: time.Minute}, t0)
	m.SetManualLevel(40)
	d := m.Resolve(inputsAt(t0, true))
	assert.Equal(t, 15, d.Intensity)
	m.SetManualLevel(-2)
	d = m.Resolve(inputsAt(t0, true))
	assert.Equal(t, 1, d.Intensity)
}

func TestToggleTracksCurrentState(t *testing.T) {
	m := NewMachine(Config{Timeout: 60, Override: time.Minute}, t0)
	m.Resolve(inputsAt(t0, true)) // on
	m.Toggle(t0)
	d := m.Resolve(inputsAt(t0.Add(time.Second), true))
	assert.False(t, d.On)
	m.Toggle(t0.Add(2 * time.Second))
	d = m.Resolve(inputsAt(t0.Add(3*time.Second), true))
	assert.True(t, d.On)
}
