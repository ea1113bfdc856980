package hud

import (
	"image/color"
	"testing"

	"tinytext/hal"
	"tinytext/tinytext"
	"tinytext/tinytext/hudfont"
)

type memFB struct {
	w, h int
	buf  []byte
}

func newMemFB(w, h int) *memFB { return &memFB{w: w, h: h, buf: make([]byte, w*h*2)} }

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}
func (f *memFB) Present() error          { return nil }

func (f *memFB) lit(x, y int) bool {
	off := y*f.w*2 + x*2
	return f.buf[off] != 0 || f.buf[off+1] != 0
}

func (f *memFB) litColumns() (minX, maxX int) {
	minX, maxX = f.w, -1
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.lit(x, y) {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	return minX, maxX
}

var white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

func TestTextStaysBelowTop(t *testing.T) {
	fb := newMemFB(120, 40)
	w := New(fb, hudfont.New(tinytext.Cubes, 1))
	w.Text(0, 0, "Hi", white)

	lit := 0
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			if fb.lit(x, y) {
				lit++
			}
		}
	}
	h, _ := tinytext.Cubes.Lookup('H')
	i, _ := tinytext.Cubes.Lookup('i')
	if lit != len(h)+len(i) {
		t.Fatalf("lit = %d, want %d", lit, len(h)+len(i))
	}
}

func TestCenteredIsSymmetric(t *testing.T) {
	fb := newMemFB(200, 60)
	w := New(fb, hudfont.New(tinytext.Cubes, 2))

	next := w.Centered(100, 4, []string{"HH"}, white)
	if next != 4+w.LineHeight() {
		t.Fatalf("next = %d", next)
	}
	minX, maxX := fb.litColumns()
	if maxX < 0 {
		t.Fatal("nothing drawn")
	}
	if w.Width("HH") != 2*w.Face().Advance() {
		t.Fatalf("width = %d", w.Width("HH"))
	}
	left := 100 - w.Width("HH")/2
	if minX < left || maxX >= left+w.Width("HH") {
		t.Fatalf("ink [%d,%d] outside [%d,%d)", minX, maxX, left, left+w.Width("HH"))
	}
}

func TestNilWriter(t *testing.T) {
	if New(nil, hudfont.New(tinytext.Cubes, 1)) != nil {
		t.Fatal("expected nil writer without framebuffer")
	}
	var w *Writer
	w.Text(0, 0, "x", white)
	if got := w.Centered(0, 7, []string{"x"}, white); got != 7 {
		t.Fatalf("Centered on nil = %d", got)
	}
	if w.Width("wide") != 0 || w.LineHeight() != 0 || w.Face() != nil {
		t.Fatal("nil writer reported metrics")
	}
}
