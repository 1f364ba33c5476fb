package power

// Window is the configured daily off interval. It may wrap past midnight
// (start > end). start == end is defined as "no off window" so a slip of the
// finger in the schedule form cannot black the display out for 24 hours.
type Window struct {
	Enabled     bool `yaml:"enabled" json:"enabled"`
	StartHour   int  `yaml:"start_hour" json:"start_hour"`
	StartMinute int  `yaml:"start_minute" json:"start_minute"`
	EndHour     int  `yaml:"end_hour" json:"end_hour"`
	EndMinute   int  `yaml:"end_minute" json:"end_minute"`
}

// Clamp constrains the window fields to valid wall-clock values.
func (w Window) Clamp() Window {
	w.StartHour = clampInt(w.StartHour, 0, 23)
	w.EndHour = clampInt(w.EndHour, 0, 23)
	w.StartMinute = clampInt(w.StartMinute, 0, 59)
	w.EndMinute = clampInt(w.EndMinute, 0, 59)
	return w
}

// Contains reports whether the given wall-clock time falls inside the off
// window. The start is inclusive and the end exclusive, so back-to-back
// windows never overlap.
func (w Window) Contains(hour, minute int) bool {
	if !w.Enabled {
		return false
	}
	cur := hour*60 + minute
	start := w.StartHour*60 + w.StartMinute
	end := w.EndHour*60 + w.EndMinute
	switch {
	case start == end:
		return false
	case start < end:
		return cur >= start && cur < end
	default: // wraps midnight
		return cur >= start || cur < end
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
