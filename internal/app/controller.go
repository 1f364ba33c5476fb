// Package app owns the control loop: one tick samples the sensors, resolves
// power, renders the current mode and pushes the frame to the driver, in
// that order, so the hardware always reflects the decision computed in the
// same tick.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/example/matrixclock/internal/driver"
	"github.com/example/matrixclock/internal/frame"
	"github.com/example/matrixclock/internal/power"
	"github.com/example/matrixclock/internal/render"
	"github.com/example/matrixclock/internal/sensor"
)

// envRefresh is how often the environment sensor is re-read; it moves far
// slower than the tick rate.
const envRefresh = time.Minute

// Options wires a Controller.
type Options struct {
	Clock      Clock
	Driver     driver.Driver
	Env        sensor.Source
	Light      sensor.LightSource
	Motion     sensor.MotionSource
	TilesX     int
	TilesY     int
	Rotation   frame.Rotation
	Use24h     bool
	Fahrenheit bool
	Power      power.Config

	// Publish, when set, receives a copy of every serialized frame.
	Publish func(rows []byte)
}

// Controller is the single writer of all display state. External surfaces
// feed it through Do; everything else happens inside Tick.
type Controller struct {
	mu      sync.Mutex
	pending []func(*power.Machine)

	clock   Clock
	start   time.Time
	drv     driver.Driver
	env     sensor.Source
	light   sensor.LightSource
	motion  sensor.MotionSource
	tilesX  int
	tilesY  int
	rot     frame.Rotation
	buf     *frame.Buffer
	rend    *render.Renderer
	machine *power.Machine
	publish func(rows []byte)

	lastEnv   sensor.Snapshot
	lastEnvAt time.Time

	frameID  uint64
	lastRows []byte
	last     power.Decision
	lastIn   power.Inputs
	mode     int
}

func NewController(o Options) *Controller {
	if o.Clock == nil {
		o.Clock = SystemClock()
	}
	now := o.Clock.Now()
	buf := frame.NewBuffer(o.TilesX, o.TilesY)
	return &Controller{
		clock:   o.Clock,
		start:   now,
		drv:     o.Driver,
		env:     o.Env,
		light:   o.Light,
		motion:  o.Motion,
		tilesX:  o.TilesX,
		tilesY:  o.TilesY,
		rot:     o.Rotation,
		buf:     buf,
		rend:    render.New(buf, o.Use24h, o.Fahrenheit),
		machine: power.NewMachine(o.Power, now),
		publish: o.Publish,
	}
}

// SetPublish installs the frame mirror hook after construction; the ws
// surface needs the controller first.
func (c *Controller) SetPublish(fn func(rows []byte)) {
	c.mu.Lock()
	c.publish = fn
	c.mu.Unlock()
}

// Do queues a command against the power machine; it runs at the start of the
// next tick, keeping the machine single-writer.
func (c *Controller) Do(cmd func(*power.Machine)) {
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
}

// Tick runs one control-loop iteration. The machine is mutated only under
// c.mu; the status surface snapshots it through the same mutex.
func (c *Controller) Tick() {
	now := c.clock.Now()
	ctx := render.NewContext(c.start, now)
	mode := render.ModeFor(now.Sub(c.start))
	in := power.Inputs{
		Now:      now,
		Hour:     ctx.Hour24,
		Minute:   ctx.Minute,
		Motion:   c.motion.Detected(),
		RawLight: c.light.Raw(),
	}

	c.mu.Lock()
	cmds := c.pending
	c.pending = nil
	for _, cmd := range cmds {
		cmd(c.machine)
	}
	dec := c.machine.Resolve(in)
	c.mu.Unlock()

	var rows []byte
	if dec.On {
		c.rend.Render(mode, ctx, c.envSnapshot(now))
		rows = frame.Serialize(c.buf, c.rot, c.tilesX, c.tilesY)
		if err := c.drv.Frame(rows); err != nil {
			log.Warn().Err(err).Msg("frame write failed")
		}
	}

	// Power commands follow the frame so a wake never flashes a stale image.
	if err := c.drv.SetDisplay(dec.On); err != nil {
		log.Warn().Err(err).Msg("display power write failed")
	}
	if dec.On {
		if err := c.drv.SetIntensity(dec.Intensity); err != nil {
			log.Warn().Err(err).Msg("intensity write failed")
		}
	}

	c.mu.Lock()
	c.last = dec
	c.lastIn = in
	c.mode = mode
	if rows != nil {
		c.frameID++
		c.lastRows = append(c.lastRows[:0], rows...)
	}
	publish := c.publish
	c.mu.Unlock()

	if rows != nil && publish != nil {
		publish(append([]byte(nil), rows...))
	}
}

// envSnapshot caches the environment reading; the sensor is slow compared to
// the tick rate.
func (c *Controller) envSnapshot(now time.Time) sensor.Snapshot {
	if c.lastEnvAt.IsZero() || now.Sub(c.lastEnvAt) >= envRefresh {
		c.lastEnv = c.env.Read()
		c.lastEnvAt = now
	}
	return c.lastEnv
}

// Banner pushes a one-off text frame, shown before the loop starts ticking.
func (c *Controller) Banner(msg string) {
	c.rend.Banner(msg)
	rows := frame.Serialize(c.buf, c.rot, c.tilesX, c.tilesY)
	if err := c.drv.Frame(rows); err != nil {
		log.Warn().Err(err).Msg("banner write failed")
	}
}

// Run ticks at the given interval until the context is cancelled, logging a
// status line once a minute.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	status := time.NewTicker(time.Minute)
	defer status.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-status.C:
			st := c.Status()
			log.Debug().Bool("display", st.Display).Int("intensity", st.Intensity).
				Str("rule", st.Rule).Int("mode", st.Mode).Int("light", st.Light).
				Uint64("frame_id", st.FrameID).Msg("status")
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Status is the snapshot the HTTP surface reports.
type Status struct {
	Display      bool         `json:"display"`
	Intensity    int          `json:"intensity"`
	Rule         string       `json:"rule"`
	Motion       bool         `json:"motion"`
	Light        int          `json:"light"`
	Mode         int          `json:"mode"`
	ManualSource bool         `json:"manual_source"`
	ManualLevel  int          `json:"manual_level"`
	IdleTicks    int          `json:"idle_ticks"`
	Schedule     power.Window `json:"schedule"`
	InWindow     bool         `json:"in_window"`
	FrameID      uint64       `json:"frame_id"`
	UptimeS      float64      `json:"uptime_s"`
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.machine.Snapshot()
	return Status{
		Display:      c.last.On,
		Intensity:    c.last.Intensity,
		Rule:         c.last.Rule,
		Motion:       c.lastIn.Motion,
		Light:        c.lastIn.RawLight,
		Mode:         c.mode,
		ManualSource: st.ManualSource,
		ManualLevel:  st.ManualLevel,
		IdleTicks:    st.Idle,
		Schedule:     st.Schedule,
		InWindow:     st.Schedule.Contains(c.lastIn.Hour, c.lastIn.Minute),
		FrameID:      c.frameID,
		UptimeS:      c.clock.Now().Sub(c.start).Seconds(),
	}
}

// Mirror returns the last serialized frame with the geometry needed to
// decode it, in the same bit order the hardware received.
func (c *Controller) Mirror() (rows []byte, rot frame.Rotation, tilesX, tilesY int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.lastRows...), c.rot, c.tilesX, c.tilesY
}

// Now exposes the controller's clock for boundary code stamping commands.
func (c *Controller) Now() time.Time { return c.clock.Now() }
