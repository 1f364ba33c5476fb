package power

// Intensity bounds of the driver chip.
const (
	IntensityMin = 1
	IntensityMax = 15
)

// Raw domain of the ambient light sample.
const (
	rawMin = 0
	rawMax = 1023
)

// AmbientIntensity maps a raw light sample to a display intensity: dark room,
// dim display. The sample is clamped first so ADC noise outside the nominal
// range can never produce an out-of-bounds level.
func AmbientIntensity(raw int) int {
	if raw < rawMin {
		raw = rawMin
	}
	if raw > rawMax {
		raw = rawMax
	}
	return IntensityMin + (raw-rawMin)*(IntensityMax-IntensityMin)/(rawMax-rawMin)
}

// Fade maps the idle countdown onto an intensity ramp from target down to
// IntensityMin as the timer approaches zero.
func Fade(timer, timeout, target int) int {
	if timeout <= 0 {
		return IntensityMin
	}
	if timer > timeout {
		timer = timeout
	}
	if timer < 0 {
		timer = 0
	}
	return IntensityMin + timer*(target-IntensityMin)/timeout
}

// ClampLevel constrains a user-supplied brightness to the valid range.
func ClampLevel(level int) int {
	if level < IntensityMin {
		return IntensityMin
	}
	if level > IntensityMax {
		return IntensityMax
	}
	return level
}
