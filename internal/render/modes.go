// Package render composes font glyphs into the logical framebuffer. Three
// layouts cycle on a fixed wall-clock period: time with environment, a large
// two-band time, and time with date.
package render

import (
	"fmt"

	"github.com/example/matrixclock/internal/font"
	"github.com/example/matrixclock/internal/frame"
	"github.com/example/matrixclock/internal/sensor"
)

var months = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// Renderer draws one of the display modes into its buffer. It holds only
// format configuration; all time state arrives through the Context.
type Renderer struct {
	buf        *frame.Buffer
	use24h     bool
	fahrenheit bool
}

func New(buf *frame.Buffer, use24h, fahrenheit bool) *Renderer {
	return &Renderer{buf: buf, use24h: use24h, fahrenheit: fahrenheit}
}

// Render clears the buffer and draws the given mode. Callers gate on the
// power decision; an off display is never rendered.
func (r *Renderer) Render(mode int, ctx Context, env sensor.Snapshot) {
	r.buf.Clear()
	switch mode {
	case 1:
		r.timeLarge(ctx)
	case 2:
		r.timeLine(ctx)
		r.dateLine(ctx)
	default:
		r.timeLine(ctx)
		r.envLine(env)
	}
}

// Banner draws a short text message across the top band, used for startup
// status like the listen address.
func (r *Renderer) Banner(msg string) {
	r.buf.Clear()
	c := cursor{buf: r.buf}
	c.text(font.Text3x7, msg)
}

// timeLine draws hour:minute(:second) into band 0. The 24-hour layout drops
// the seconds; HH:MM:SS does not fit the 32-pixel line with the 5-wide
// digits.
func (r *Renderer) timeLine(ctx Context) {
	c := cursor{buf: r.buf}
	if r.use24h {
		c.x = 3
		c.text(font.Digits5x8, fmt.Sprintf("%02d", ctx.Hour24))
		c.colon(font.Digits5x8, ctx.Blink)
		c.text(font.Digits5x8, fmt.Sprintf("%02d", ctx.Minute))
		return
	}
	if ctx.Hour12 <= 9 {
		c.x = 2
	}
	c.text(font.Digits5x8, fmt.Sprintf("%d", ctx.Hour12))
	c.colon(font.Digits5x8, ctx.Blink)
	c.text(font.Digits5x8, fmt.Sprintf("%02d", ctx.Minute))
	c.text(font.Digits3x5, fmt.Sprintf("%02d", ctx.Second))
}

// timeLarge draws the two-band digits; 12-hour only, a 24-hour large layout
// does not fit the line width.
func (r *Renderer) timeLarge(ctx Context) {
	c := cursor{buf: r.buf}
	if ctx.Hour12 <= 9 {
		c.x = 3
	}
	c.text(font.Digits5x16, fmt.Sprintf("%d", ctx.Hour12))
	c.colon(font.Digits5x16, ctx.Blink)
	c.text(font.Digits5x16, fmt.Sprintf("%02d", ctx.Minute))
	c.text(font.Text3x7, fmt.Sprintf("%02d", ctx.Second))
}

func (r *Renderer) envLine(env sensor.Snapshot) {
	c := cursor{buf: r.buf, band: 1, x: 1}
	if env.Available {
		t := env.Temperature
		if r.fahrenheit {
			t = t*9/5 + 32
		}
		c.text(font.Text3x7, fmt.Sprintf("T%d H%d", int(t), int(env.Humidity)))
	} else {
		c.text(font.Text3x7, "NO SENSOR")
	}
	r.buf.ShiftBand(1)
}

func (r *Renderer) dateLine(ctx Context) {
	c := cursor{buf: r.buf, band: 1, x: 1}
	c.text(font.Text3x7, fmt.Sprintf("%d-%s-%02d", ctx.Day, months[ctx.Month-1], ctx.Year%100))
	r.buf.ShiftBand(1)
}

// cursor advances across a band as glyphs are blitted, one spacing column
// between characters.
type cursor struct {
	buf  *frame.Buffer
	x    int
	band int
}

func (c *cursor) text(f font.Font, s string) {
	for i := 0; i < len(s); i++ {
		w := f.Blit(c.buf, s[i], c.x, c.band*8)
		if w > 0 {
			c.x += w + 1
		}
	}
}

// colon blits the separator at the current position without consuming it,
// then advances a fixed two columns, so the line does not shift as the colon
// blinks.
func (c *cursor) colon(f font.Font, visible bool) {
	if visible {
		f.Blit(c.buf, ':', c.x, c.band*8)
	}
	c.x += 2
}
