// Package hud draws 2D overlay text into a hal framebuffer.
package hud

import (
	"image/color"

	"tinytext/hal"
	"tinytext/tinytext/hudfont"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Writer draws text with one face onto one framebuffer.
type Writer struct {
	d    fbDisplayer
	face *hudfont.Face
}

// New returns a writer or nil if fb is not an RGB565 framebuffer.
func New(fb hal.Framebuffer, face *hudfont.Face) *Writer {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || face == nil {
		return nil
	}
	return &Writer{d: fbDisplayer{fb: fb}, face: face}
}

// Face returns the writer's font face.
func (w *Writer) Face() *hudfont.Face {
	if w == nil {
		return nil
	}
	return w.face
}

// LineHeight is the distance between consecutive baselines.
func (w *Writer) LineHeight() int {
	if w == nil {
		return 0
	}
	return int(w.face.GetYAdvance())
}

// Width returns the pixel width of s.
func (w *Writer) Width(s string) int {
	if w == nil {
		return 0
	}
	_, outbox := tinyfont.LineWidth(w.face, s)
	return int(outbox)
}

// Text draws s with its top-left corner at (x, y).
func (w *Writer) Text(x, y int, s string, c color.RGBA) {
	if w == nil {
		return
	}
	tinyfont.WriteLine(&w.d, w.face, int16(x), int16(y)+w.face.Ascent(), s, c)
}

// Centered draws lines one below the other, each centred on cx, starting at
// y. It returns the y just below the block.
func (w *Writer) Centered(cx, y int, lines []string, c color.RGBA) int {
	if w == nil {
		return y
	}
	for _, s := range lines {
		w.Text(cx-w.Width(s)/2, y, s, c)
		y += w.LineHeight()
	}
	return y
}

type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
