// Package power resolves the display's on/off state and intensity once per
// control-loop tick from five independent signals: startup grace, the daily
// off window, a manual override, motion, and an idle countdown. Priority is
// held as an ordered rule list rather than a branch chain so the order is a
// data structure and each rule is testable on its own.
package power

import "time"

// Decision is the single per-tick output. Intensity is only meaningful while
// On is true; an off decision always carries intensity 0.
type Decision struct {
	On        bool
	Intensity int
	Rule      string
}

// Inputs is the snapshot of external signals for one tick.
type Inputs struct {
	Now      time.Time
	Hour     int // 0..23
	Minute   int
	Motion   bool
	RawLight int
}

// State is the machine's mutable condition, mutated only inside Resolve and
// the command methods. Snapshot copies of it feed the status surface.
type State struct {
	On             bool
	Intensity      int
	ManualSource   bool // brightness comes from ManualLevel, not ambient light
	ManualLevel    int
	OverrideActive bool
	OverrideOn     bool
	OverrideExpiry time.Time
	Idle           int
	Schedule       Window

	startupDeadline time.Time
}

// Config carries the machine's fixed timings.
type Config struct {
	Timeout  int           // idle ticks before the display extinguishes
	Grace    time.Duration // forced-on period after power-up
	Override time.Duration // lifetime of a manual on/off request
}

type rule struct {
	name string
	when func(m *Machine, in Inputs) bool
	run  func(m *Machine, in Inputs) Decision
}

// Machine owns the PowerState for the process lifetime. Not safe for
// concurrent use; the control loop is its single writer.
type Machine struct {
	cfg   Config
	st    State
	rules []rule
}

// NewMachine creates the machine in its power-up condition: display on, idle
// timer full, grace deadline armed.
func NewMachine(cfg Config, now time.Time) *Machine {
	if cfg.Timeout < 1 {
		cfg.Timeout = 1
	}
	m := &Machine{
		cfg: cfg,
		st: State{
			On:              true,
			Intensity:       IntensityMax / 2,
			ManualLevel:     IntensityMax / 2,
			Idle:            cfg.Timeout,
			startupDeadline: now.Add(cfg.Grace),
		},
	}
	m.rules = []rule{
		{
			// The display is visibly alive right after power-up, motion or not.
			name: "grace",
			when: func(m *Machine, in Inputs) bool { return in.Now.Before(m.st.startupDeadline) },
			run: func(m *Machine, in Inputs) Decision {
				m.st.Idle = m.cfg.Timeout
				return Decision{On: true, Intensity: m.target(in), Rule: "grace"}
			},
		},
		{
			// An unexpired override suppresses the schedule entirely.
			name: "schedule",
			when: func(m *Machine, in Inputs) bool {
				return !m.st.OverrideActive && m.st.Schedule.Contains(in.Hour, in.Minute)
			},
			run: func(m *Machine, in Inputs) Decision {
				m.st.Idle = 0
				return Decision{Rule: "schedule"}
			},
		},
		{
			name: "override",
			when: func(m *Machine, in Inputs) bool { return m.st.OverrideActive },
			run: func(m *Machine, in Inputs) Decision {
				if !m.st.OverrideOn {
					m.st.Idle = 0
					return Decision{Rule: "override"}
				}
				m.st.Idle = m.cfg.Timeout
				return Decision{On: true, Intensity: m.target(in), Rule: "override"}
			},
		},
		{
			name: "motion",
			when: func(m *Machine, in Inputs) bool { return in.Motion },
			run: func(m *Machine, in Inputs) Decision {
				m.st.Idle = m.cfg.Timeout
				return Decision{On: true, Intensity: m.target(in), Rule: "motion"}
			},
		},
		{
			// No motion: count down, fading toward minimum, then extinguish.
			name: "idle",
			when: func(m *Machine, in Inputs) bool { return true },
			run: func(m *Machine, in Inputs) Decision {
				if m.st.Idle > 0 {
					m.st.Idle--
				}
				if m.st.Idle == 0 {
					return Decision{Rule: "idle"}
				}
				return Decision{On: true, Intensity: Fade(m.st.Idle, m.cfg.Timeout, m.target(in)), Rule: "idle"}
			},
		},
	}
	return m
}

// target picks the brightness source: the user's manual level or the ambient
// light mapping.
func (m *Machine) target(in Inputs) int {
	if m.st.ManualSource {
		return m.st.ManualLevel
	}
	return AmbientIntensity(in.RawLight)
}

// Resolve runs one tick: expire a pending override, evaluate the rules in
// priority order, and commit the first match. Total and side-effect-free
// beyond the returned decision.
func (m *Machine) Resolve(in Inputs) Decision {
	if m.st.OverrideActive && !in.Now.Before(m.st.OverrideExpiry) {
		m.st.OverrideActive = false
	}
	var d Decision
	for i := range m.rules {
		if m.rules[i].when(m, in) {
			d = m.rules[i].run(m, in)
			break
		}
	}
	m.st.On = d.On
	m.st.Intensity = d.Intensity
	return d
}

// Snapshot returns a copy of the current state for status reporting.
func (m *Machine) Snapshot() State { return m.st }

// ForceOn requests the display on for the override duration.
func (m *Machine) ForceOn(now time.Time) { m.override(now, true) }

// ForceOff requests the display off for the override duration.
func (m *Machine) ForceOff(now time.Time) { m.override(now, false) }

// Toggle flips the display to the opposite of its current state.
func (m *Machine) Toggle(now time.Time) { m.override(now, !m.st.On) }

func (m *Machine) override(now time.Time, on bool) {
	m.st.OverrideActive = true
	m.st.OverrideOn = on
	m.st.OverrideExpiry = now.Add(m.cfg.Override)
}

// SetManualLevel stores a clamped manual brightness and switches to the
// manual source.
func (m *Machine) SetManualLevel(level int) {
	m.st.ManualLevel = ClampLevel(level)
	m.st.ManualSource = true
}

// SetManualSource selects between manual and ambient brightness.
func (m *Machine) SetManualSource(manual bool) { m.st.ManualSource = manual }

// ToggleSource flips between manual and ambient brightness.
func (m *Machine) ToggleSource() { m.st.ManualSource = !m.st.ManualSource }

// SetSchedule replaces the off window after clamping its fields.
func (m *Machine) SetSchedule(w Window) { m.st.Schedule = w.Clamp() }
