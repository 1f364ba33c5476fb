package render

import "time"

// Context is the per-tick clock snapshot every render function consumes. The
// control loop builds it once per tick; no render code keeps its own time
// state.
type Context struct {
	Millis int64 // elapsed since process start
	Hour24 int
	Hour12 int
	Minute int
	Second int
	Day    int
	Month  int // 1..12
	Year   int
	Blink  bool // 2 Hz colon phase
}

// NewContext derives the snapshot from the wall clock and process start time.
func NewContext(start, now time.Time) Context {
	ms := now.Sub(start).Milliseconds()
	h := now.Hour()
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return Context{
		Millis: ms,
		Hour24: h,
		Hour12: h12,
		Minute: now.Minute(),
		Second: now.Second(),
		Day:    now.Day(),
		Month:  int(now.Month()),
		Year:   now.Year(),
		Blink:  ms%1000 < 500,
	}
}

// ModePeriod is how long each display mode holds before cycling.
const ModePeriod = 20 * time.Second

const modeCount = 3

// ModeFor selects the display mode purely from elapsed time, so the mode is
// reproducible for any instant rather than depending on a counter.
func ModeFor(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	return int(elapsed / ModePeriod % modeCount)
}
