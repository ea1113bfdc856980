// Package hudfont draws TinyText glyphs as 2D pixel text through tinyfont.
//
// Cell fonts become px×px blocks on the glyph grid; segment fonts become
// lines in a box Units() grid cells wide and tall.
package hudfont

import (
	"image/color"

	"tinytext/tinytext"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Grid metrics in cells of px pixels.
const (
	cubeAdvance = 8 // columns 0..7 inclusive
	cubeAscent  = 8 // rows 0..7 above the baseline
	cubeDescent = 2 // rows -1, -2
	lineGap     = 2 // between lines
	strokeGapX  = 2 // between stroke glyphs
	maxAdvance  = 255
)

// Face is a tinyfont.Fonter over a TinyText font. It is safe for concurrent
// use; glyphs are returned by value.
type Face struct {
	font *tinytext.Font
	px   int16

	advance  uint8
	yAdvance uint8
	ascent   int16
	height   uint8
}

var _ tinyfont.Fonter = (*Face)(nil)

// New returns a face drawing font with px pixels per glyph cell. px is
// clamped so the metrics fit tinyfont's 8-bit fields.
func New(font *tinytext.Font, px int) *Face {
	if px < 1 {
		px = 1
	}
	if px > 20 {
		px = 20
	}
	f := &Face{font: font, px: int16(px)}

	ascent, descent, advance := cubeAscent, cubeDescent, cubeAdvance
	if font != nil && font.Shape() == tinytext.ShapeSegment {
		u := font.Units()
		ascent, descent, advance = int(u.Y), 0, int(u.X)+strokeGapX
	}
	f.ascent = int16(ascent * px)
	f.height = clampU8((ascent + descent) * px)
	f.advance = clampU8(advance * px)
	f.yAdvance = clampU8((ascent + descent + lineGap) * px)
	return f
}

// Ascent is the distance in pixels from the top of a line to its baseline.
func (f *Face) Ascent() int16 { return f.ascent }

// Advance is the fixed horizontal step per rune in pixels.
func (f *Face) Advance() int { return int(f.advance) }

func (f *Face) GetYAdvance() uint8 { return f.yAdvance }

// GetGlyph returns the glyph for r. Runes the font does not define draw
// nothing but still advance, matching 3D layout.
func (f *Face) GetGlyph(r rune) tinyfont.Glypher {
	g, _ := f.font.Lookup(r)
	return glyph{face: f, r: r, prims: g}
}

type glyph struct {
	face  *Face
	r     rune
	prims tinytext.Glyph
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    g.face.advance,
		Height:   g.face.height,
		XAdvance: g.face.advance,
		YOffset:  int8(max(-g.face.ascent, -128)),
	}
}

// Draw renders the glyph with its baseline at y.
func (g glyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	px := g.face.px
	for _, p := range g.prims {
		switch p.Shape {
		case tinytext.ShapeCell:
			x0 := x + int16(p.A.X)*px
			y0 := y - (int16(p.A.Y)+1)*px
			fillRect(d, x0, y0, px, px, c)
		case tinytext.ShapeSegment:
			u := g.face.font.Units()
			w, h := float32(px)*u.X, float32(px)*u.Y
			x0 := x + int16(p.A.X*w+0.5)
			y0 := y - int16(p.A.Y*h+0.5)
			x1 := x + int16(p.B.X*w+0.5)
			y1 := y - int16(p.B.Y*h+0.5)
			drawLine(d, x0, y0, x1, y1, max(px/2, 1), c)
		}
	}
}

func fillRect(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < w; i++ {
			d.SetPixel(x+i, y+j, c)
		}
	}
}

// drawLine is Bresenham with a square pen of side pen.
func drawLine(d drivers.Displayer, x0, y0, x1, y1, pen int16, c color.RGBA) {
	dx := absInt16(x1 - x0)
	dy := -absInt16(y1 - y0)
	sx, sy := int16(1), int16(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	off := pen / 2
	err := dx + dy
	for {
		fillRect(d, x0-off, y0-off, pen, pen, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func clampU8(v int) uint8 {
	if v > maxAdvance {
		return maxAdvance
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
