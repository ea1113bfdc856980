package tinytext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPrintableRange(t *testing.T) {
	for r := FirstRune; r <= LastRune; r++ {
		g, ok := Cubes.Lookup(r)
		require.Truef(t, ok, "cubes: %q undefined", r)
		if r == ' ' {
			assert.NotNil(t, g, "space glyph must be defined")
			assert.Empty(t, g)
			continue
		}
		assert.NotEmptyf(t, g, "cubes: %q has no cells", r)
	}
	assert.Equal(t, 95, Cubes.Defined())
}

func TestLookupOutsideRange(t *testing.T) {
	for _, r := range []rune{-1, 0, '\t', '\n', 0x1F, 0x7F, 'é', 'Ж', '·', 0x1F600} {
		for _, f := range []*Font{Cubes, Strokes} {
			g, ok := f.Lookup(r)
			assert.Falsef(t, ok, "%s: %U should have no glyph", f.Name(), r)
			assert.Nil(t, g)
		}
	}
}

func TestStrokesCoverage(t *testing.T) {
	assert.Equal(t, 94, Strokes.Defined())

	_, ok := Strokes.Lookup('@')
	assert.False(t, ok, "'@' has no 16-segment rendition")

	g, ok := Strokes.Lookup(' ')
	require.True(t, ok)
	assert.Empty(t, g)

	for r := FirstRune + 1; r <= LastRune; r++ {
		if r == '@' {
			continue
		}
		g, ok := Strokes.Lookup(r)
		require.Truef(t, ok, "strokes: %q undefined", r)
		assert.NotEmptyf(t, g, "strokes: %q has no segments", r)
	}
}

func TestFontsAreHomogeneous(t *testing.T) {
	for _, f := range []*Font{Cubes, Strokes} {
		for r := FirstRune; r <= LastRune; r++ {
			g, _ := f.Lookup(r)
			for _, p := range g {
				assert.Equalf(t, f.Shape(), p.Shape, "%s: %q", f.Name(), r)
			}
		}
	}
	assert.Equal(t, ShapeCell, Cubes.Shape())
	assert.Equal(t, ShapeSegment, Strokes.Shape())
}

func TestStrokesStayInUnitBox(t *testing.T) {
	for r := FirstRune; r <= LastRune; r++ {
		g, _ := Strokes.Lookup(r)
		for _, p := range g {
			for _, pt := range []Point{p.A, p.B} {
				assert.True(t, pt.X >= 0 && pt.X <= 1 && pt.Y >= 0 && pt.Y <= 1, "%q: %+v", r, pt)
			}
			assert.NotEqual(t, p.A, p.B, "%q: zero-length stroke", r)
		}
	}
}

func TestCubeCellsOnGrid(t *testing.T) {
	for r := FirstRune; r <= LastRune; r++ {
		g, _ := Cubes.Lookup(r)
		for _, p := range g {
			assert.Equal(t, p.A, p.B)
			assert.True(t, p.A.X >= 0 && p.A.X <= 7, "%q: column %v", r, p.A.X)
			assert.True(t, p.A.Y >= -2 && p.A.Y <= 7, "%q: row %v", r, p.A.Y)
		}
	}
}

func TestLowercaseDescenders(t *testing.T) {
	for _, r := range "gjpqy" {
		g, _ := Cubes.Lookup(r)
		minRow := float32(0)
		for _, p := range g {
			minRow = min(minRow, p.A.Y)
		}
		assert.Lessf(t, minRow, float32(0), "%q should descend below the baseline", r)
	}
}

func TestGlyphOrderMatchesTable(t *testing.T) {
	g, ok := Cubes.Lookup('!')
	require.True(t, ok)
	want := Glyph{Cell(2, 0), Cell(2, 1), Cell(2, 2), Cell(2, 3), Cell(2, 5), Cell(2, 6), Cell(2, 7)}
	assert.Equal(t, want, g)
}

func TestNewFontRejectsMixedShapes(t *testing.T) {
	assert.Panics(t, func() {
		newFont("bad", ShapeCell, 1, Cubes.Units(), map[rune]Glyph{'x': {Segment(0, 0, 1, 1)}})
	})
	assert.Panics(t, func() {
		newFont("bad", ShapeCell, 1, Cubes.Units(), map[rune]Glyph{'é': {Cell(0, 0)}})
	})
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "cell", ShapeCell.String())
	assert.Equal(t, "segment", ShapeSegment.String())
	assert.Equal(t, "Shape(7)", Shape(7).String())
}

func TestFontByName(t *testing.T) {
	f, ok := FontByName("cubes")
	assert.True(t, ok)
	assert.Same(t, Cubes, f)

	f, ok = FontByName("strokes")
	assert.True(t, ok)
	assert.Same(t, Strokes, f)

	_, ok = FontByName("comic")
	assert.False(t, ok)
}

func TestFontShrink(t *testing.T) {
	assert.Equal(t, float32(CellShrink), Cubes.Shrink())
	assert.Equal(t, float32(1), Strokes.Shrink())
}
