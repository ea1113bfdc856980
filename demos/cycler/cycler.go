// Package cycler shows every printable ASCII character in turn as voxel or
// stroke text, with a caption, a preview of what comes next, a spinning copy
// and a progress line.
package cycler

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"tinytext/quarkgl"
	"tinytext/tinytext"
)

const (
	first = 32
	last  = 126

	previewLen = 5
	// Shown in place of whitespace, which would otherwise be invisible.
	whitespaceMark = '·'
)

// Cycler walks the printable range, wrapping from 126 back to 32.
type Cycler struct {
	code uint8
}

// NewCycler returns a cycler positioned on the space character.
func NewCycler() Cycler { return Cycler{code: first} }

// Code returns the current character code.
func (c Cycler) Code() uint8 { return c.code }

// Current returns the current character.
func (c Cycler) Current() rune { return rune(c.code) }

// Advance moves to the next character.
func (c *Cycler) Advance() {
	c.code++
	if c.code > last {
		c.code = first
	}
}

// Caption is the "Char: ..." line.
func (c Cycler) Caption() string {
	return fmt.Sprintf("Char: '%c' ASCII: %d (%d/95)", visible(c.Current()), c.code, int(c.code)-31)
}

// Preview is the "Next: ..." line listing the following characters.
func (c Cycler) Preview() string {
	var b strings.Builder
	b.WriteString("Next: ")
	for off := 1; off <= previewLen; off++ {
		next := int(c.code) + off
		if next > last {
			next = first + next - (last + 1)
		}
		b.WriteRune(visible(rune(next)))
	}
	return b.String()
}

// Progress is the "Progress: N%" line.
func (c Cycler) Progress() string {
	p := float32(c.code-first) / 94
	return fmt.Sprintf("Progress: %.0f%%", p*100)
}

func visible(r rune) rune {
	if unicode.IsSpace(r) {
		return whitespaceMark
	}
	return r
}

// Requests returns the text to show for the current character. elapsed
// drives the spinning copy. Scales are in cube-grid units and are stretched
// by the font's Units so both fonts come out the same size.
func (c Cycler) Requests(font *tinytext.Font, elapsed time.Duration) []tinytext.Request {
	cur := string(c.Current())
	spin := quarkgl.QuatRotateY(float32(elapsed.Seconds()) * 0.5)
	id := quarkgl.QuatIdentity()

	return []tinytext.Request{
		line(font, cur, quarkgl.V3(-2, 5, 0), 1, id, quarkgl.V3(4, 0, 0), quarkgl.RGBf(1, 0.6, 0.2)),
		line(font, c.Caption(), quarkgl.V3(-8, 1, 0), 0.3, id, quarkgl.V3(1.2, 0, 0), quarkgl.RGBf(0.4, 0.8, 1)),
		line(font, c.Preview(), quarkgl.V3(-6, -1, 0), 0.25, id, quarkgl.V3(1, 0, 0), quarkgl.RGBf(0.6, 0.6, 0.6)),
		line(font, cur, quarkgl.V3(8, 3, 0), 0.7, spin, quarkgl.V3(3, 0, 0), quarkgl.RGBf(0.8, 0.2, 0.8)),
		line(font, c.Progress(), quarkgl.V3(-8, -3, 0), 0.3, id, quarkgl.V3(1.2, 0, 0), quarkgl.RGBf(0.2, 1, 0.4)),
	}
}

func line(font *tinytext.Font, text string, origin quarkgl.Vec3, scale float32, q quarkgl.Quat, advance quarkgl.Vec3, c quarkgl.Color) tinytext.Request {
	units := quarkgl.Splat(1)
	if font != nil {
		units = font.Units()
	}
	return tinytext.Request{
		Text:        text,
		Origin:      origin,
		Scale:       units.Mul(scale),
		Orientation: q,
		Advance:     advance,
		Color:       c,
	}
}

// ringCube is one of the decorative cubes around the stage.
type ringCube struct {
	pos   quarkgl.Vec3
	yaw   float32
	color quarkgl.Color
}

func ring(n int, radius float32) []ringCube {
	cubes := make([]ringCube, n)
	for i := range cubes {
		angle := float32(i) / float32(n) * 2 * math.Pi
		cubes[i] = ringCube{
			pos: quarkgl.V3(
				float32(math.Cos(float64(angle)))*radius,
				float32(math.Sin(float64(i)*0.7))*3+5,
				float32(math.Sin(float64(angle)))*radius,
			),
			yaw:   angle + math.Pi,
			color: quarkgl.HSL(float32(i)*36, 0.7, 0.5),
		}
	}
	return cubes
}
