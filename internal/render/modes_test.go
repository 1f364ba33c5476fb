package render

import (
	"testing"
	"time"

	"github.com/example/matrixclock/internal/frame"
	"github.com/example/matrixclock/internal/sensor"
)

func TestModeForCycles(t *testing.T) {
	cases := []struct {
		ms   int64
		want int
	}{
		{0, 0}, {19999, 0},
		{20000, 1}, {39999, 1},
		{40000, 2}, {59999, 2},
		{60000, 0}, {80000, 1},
	}
	for _, c := range cases {
		if got := ModeFor(time.Duration(c.ms) * time.Millisecond); got != c.want {
			t.Errorf("ModeFor(%dms) = %d, want %d", c.ms, got, c.want)
		}
	}
}

func TestContextBlinkPhase(t *testing.T) {
	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	if !NewContext(start, start.Add(100*time.Millisecond)).Blink {
		t.Error("first half second should show the colon")
	}
	if NewContext(start, start.Add(700*time.Millisecond)).Blink {
		t.Error("second half second should hide the colon")
	}
}

func TestContextHour12(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := NewContext(start, start).Hour12; got != 12 {
		t.Errorf("midnight Hour12 = %d, want 12", got)
	}
	noon := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	if got := NewContext(start, noon).Hour12; got != 12 {
		t.Errorf("noon Hour12 = %d, want 12", got)
	}
	if got := NewContext(start, noon.Add(time.Hour)).Hour12; got != 1 {
		t.Errorf("13:00 Hour12 = %d, want 1", got)
	}
}

func ctx12(hour12, minute, second int, blink bool) Context {
	return Context{Hour12: hour12, Hour24: hour12, Minute: minute, Second: second,
		Day: 14, Month: 3, Year: 2026, Blink: blink}
}

func TestTimeLineColonBlink(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	r := New(buf, false, false)

	c := ctx12(12, 34, 56, true)
	r.Render(0, c, sensor.Snapshot{})
	if buf.Column(12, 0) != 0x36 {
		t.Fatalf("colon column = %02x, want 36", buf.Column(12, 0))
	}

	c.Blink = false
	r.Render(0, c, sensor.Snapshot{})
	if buf.Column(12, 0) != 0 {
		t.Fatalf("hidden colon column = %02x, want 00", buf.Column(12, 0))
	}
}

func TestTimeLine24hOmitsSeconds(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	r := New(buf, true, false)
	r.Render(0, ctx12(7, 58, 59, true), sensor.Snapshot{})
	for x := 29; x < 32; x++ {
		if buf.Column(x, 0) != 0 {
			t.Fatalf("24h layout drew past the minutes at column %d", x)
		}
	}
}

func TestTimeLine12hHasSeconds(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	r := New(buf, false, false)
	r.Render(0, ctx12(12, 34, 56, true), sensor.Snapshot{})
	var sum byte
	for x := 26; x < 32; x++ {
		sum |= buf.Column(x, 0)
	}
	if sum == 0 {
		t.Fatal("12h layout should draw the small seconds on the right")
	}
}

func TestEnvLineFallback(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	r := New(buf, false, false)
	r.Render(0, ctx12(1, 2, 3, false), sensor.Snapshot{})
	// "NO SENSOR" starts with N at x=1, shifted one bit after drawing.
	if got := buf.Column(1, 1); got != 0xFE {
		t.Fatalf("fallback column = %02x, want FE", got)
	}
}

func TestEnvLineFahrenheit(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	env := sensor.Snapshot{Temperature: 20, Humidity: 50, Available: true}

	New(buf, false, false).Render(0, ctx12(1, 2, 3, false), env)
	celsius := bandBytes(buf, 1)

	New(buf, false, true).Render(0, ctx12(1, 2, 3, false), env)
	fahrenheit := bandBytes(buf, 1)

	if celsius == fahrenheit {
		t.Fatal("unit flag must change the rendered environment line")
	}
}

func TestLargeModeFillsBothBands(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	r := New(buf, false, false)
	r.Render(1, ctx12(12, 34, 56, true), sensor.Snapshot{})
	var top, bottom byte
	for x := 0; x < 12; x++ {
		top |= buf.Column(x, 0)
		bottom |= buf.Column(x, 1)
	}
	if top == 0 || bottom == 0 {
		t.Fatal("large digits should span both bands")
	}
}

func TestDateLine(t *testing.T) {
	buf := frame.NewBuffer(4, 2)
	r := New(buf, false, false)
	r.Render(2, ctx12(1, 2, 3, false), sensor.Snapshot{})
	var sum byte
	for x := 0; x < 32; x++ {
		sum |= buf.Column(x, 1)
	}
	if sum == 0 {
		t.Fatal("date mode should draw the bottom band")
	}
}

func bandBytes(buf *frame.Buffer, band int) [32]byte {
	var out [32]byte
	for x := 0; x < 32; x++ {
		out[x] = buf.Column(x, band)
	}
	return out
}
