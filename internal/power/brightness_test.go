package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmbientIntensityBounds(t *testing.T) {
	assert.Equal(t, 1, AmbientIntensity(0))
	assert.Equal(t, 15, AmbientIntensity(1023))
	// Out-of-range ADC noise clamps, never wraps.
	assert.Equal(t, 1, AmbientIntensity(-500))
	assert.Equal(t, 15, AmbientIntensity(40000))
}

func TestAmbientIntensityMonotonic(t *testing.T) {
	prev := AmbientIntensity(0)
	for raw := 1; raw <= 1023; raw++ {
		cur := AmbientIntensity(raw)
		if cur < prev {
			t.Fatalf("intensity dropped from %d to %d at raw=%d", prev, cur, raw)
		}
		if cur < IntensityMin || cur > IntensityMax {
			t.Fatalf("intensity %d out of range at raw=%d", cur, raw)
		}
		prev = cur
	}
}

func TestFadeLinearity(t *testing.T) {
	const timeout, target = 60, 10
	assert.Equal(t, target, Fade(timeout, timeout, target))
	assert.Equal(t, 1, Fade(0, timeout, target))
	prev := Fade(timeout, timeout, target)
	for timer := timeout - 1; timer >= 0; timer-- {
		cur := Fade(timer, timeout, target)
		if cur > prev {
			t.Fatalf("fade increased from %d to %d at timer=%d", prev, cur, timer)
		}
		prev = cur
	}
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, ClampLevel(-3))
	assert.Equal(t, 1, ClampLevel(0))
	assert.Equal(t, 8, ClampLevel(8))
	assert.Equal(t, 15, ClampLevel(99))
}
