package tinytext

import (
	"fmt"

	"tinytext/quarkgl"
)

// Shape tags the two primitive variants. A font uses exactly one.
type Shape uint8

const (
	// ShapeCell is one occupied grid cell, drawn as a box.
	ShapeCell Shape = iota
	// ShapeSegment is a straight stroke, drawn as a line.
	ShapeSegment
)

func (s Shape) String() string {
	switch s {
	case ShapeCell:
		return "cell"
	case ShapeSegment:
		return "segment"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Point is a glyph-local 2D coordinate.
type Point struct {
	X, Y float32
}

// Primitive is one drawable unit of a glyph. Cells use A only (B == A);
// segments run from A to B.
type Primitive struct {
	Shape Shape
	A, B  Point
}

// Cell returns a cell primitive at column x, row y.
func Cell(x, y int) Primitive {
	p := Point{X: float32(x), Y: float32(y)}
	return Primitive{Shape: ShapeCell, A: p, B: p}
}

// Segment returns a stroke from (x0, y0) to (x1, y1).
func Segment(x0, y0, x1, y1 float32) Primitive {
	return Primitive{Shape: ShapeSegment, A: Point{x0, y0}, B: Point{x1, y1}}
}

// Glyph is the ordered primitive list of one character. Glyphs returned by
// Lookup are shared and must not be modified.
type Glyph []Primitive

const (
	FirstRune = ' '
	LastRune  = '~'

	numGlyphs = LastRune - FirstRune + 1
)

// Font maps printable ASCII to glyphs. The zero value has no glyphs.
type Font struct {
	name   string
	shape  Shape
	shrink float32
	units  quarkgl.Vec3

	glyphs  [numGlyphs]Glyph
	defined [numGlyphs]bool
}

// Lookup returns the glyph for r. ok is false outside ' '..'~' and for code
// points the font leaves undefined. Space is defined and empty.
func (f *Font) Lookup(r rune) (g Glyph, ok bool) {
	if f == nil || r < FirstRune || r > LastRune {
		return nil, false
	}
	i := r - FirstRune
	return f.glyphs[i], f.defined[i]
}

// Defined returns how many of the 95 code points have a glyph.
func (f *Font) Defined() int {
	n := 0
	for _, ok := range f.defined {
		if ok {
			n++
		}
	}
	return n
}

func (f *Font) Name() string    { return f.name }
func (f *Font) Shape() Shape    { return f.shape }
func (f *Font) Shrink() float32 { return f.shrink }

// Units is the size of one glyph-local unit in cube-grid cells. Request
// builders multiply it into the scale so both fonts come out the same size.
func (f *Font) Units() quarkgl.Vec3 { return f.units }

func newFont(name string, shape Shape, shrink float32, units quarkgl.Vec3, table map[rune]Glyph) *Font {
	f := &Font{name: name, shape: shape, shrink: shrink, units: units}
	for r, g := range table {
		if r < FirstRune || r > LastRune {
			panic(fmt.Sprintf("tinytext: font %s: rune %q outside printable ASCII", name, r))
		}
		for _, p := range g {
			if p.Shape != shape {
				panic(fmt.Sprintf("tinytext: font %s: glyph %q mixes %s into a %s font", name, r, p.Shape, shape))
			}
		}
		if g == nil {
			g = Glyph{}
		}
		f.glyphs[r-FirstRune] = g
		f.defined[r-FirstRune] = true
	}
	return f
}

type cell struct {
	x, y int8
}

// Cubes is the voxel font: every printable code point is defined.
var Cubes = newCellFont("cubes", cubeCells)

func newCellFont(name string, cells map[rune][]cell) *Font {
	table := make(map[rune]Glyph, len(cells))
	for r, cs := range cells {
		g := make(Glyph, 0, len(cs))
		for _, c := range cs {
			g = append(g, Cell(int(c.x), int(c.y)))
		}
		table[r] = g
	}
	return newFont(name, ShapeCell, CellShrink, quarkgl.Splat(1), table)
}

// FontByName returns the built-in font called name ("cubes" or "strokes").
func FontByName(name string) (*Font, bool) {
	switch name {
	case Cubes.name:
		return Cubes, true
	case Strokes.name:
		return Strokes, true
	}
	return nil, false
}
