package tinytext

import (
	"math"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinytext/quarkgl"
)

const eps = 1e-5

func assertNearV(t *testing.T, want, got quarkgl.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

func unitRequest(text string) Request {
	return Request{
		Text:        text,
		Scale:       quarkgl.Splat(1),
		Orientation: quarkgl.QuatIdentity(),
		Advance:     quarkgl.V3(1, 0, 0),
		Color:       quarkgl.RGB(0xFF, 0x99, 0x33),
	}
}

func TestLayoutEmptyText(t *testing.T) {
	req := unitRequest("")
	req.Origin = quarkgl.V3(3, 4, 5)
	res := Cubes.Layout(req)
	assert.Empty(t, res.Placements)
	assert.Equal(t, req.Origin, res.Cursor)
}

func TestLayoutAThenBang(t *testing.T) {
	res := Cubes.Layout(unitRequest("A!"))

	a, _ := Cubes.Lookup('A')
	bang, _ := Cubes.Lookup('!')
	require.Len(t, res.Placements, len(a)+len(bang))

	for i, p := range a {
		got := res.Placements[i]
		assert.Equal(t, quarkgl.V3(p.A.X, p.A.Y, 0), got.Position, "A cell %d", i)
		assert.Equal(t, 'A', got.Rune)
		assert.Equal(t, 0, got.Index)
	}
	for i, p := range bang {
		got := res.Placements[len(a)+i]
		assert.Equal(t, quarkgl.V3(p.A.X+1, p.A.Y, 0), got.Position, "! cell %d", i)
		assert.Equal(t, '!', got.Rune)
		assert.Equal(t, 1, got.Index)
	}
	for _, got := range res.Placements {
		assert.Equal(t, ShapeCell, got.Shape)
		assert.Equal(t, got.Position, got.End)
		assert.Equal(t, quarkgl.Splat(CellShrink), got.Scale)
		assert.Equal(t, quarkgl.QuatIdentity(), got.Rotation)
		assert.Equal(t, quarkgl.RGB(0xFF, 0x99, 0x33), got.Color)
	}
	assert.Equal(t, quarkgl.V3(2, 0, 0), res.Cursor)
}

func TestLayoutUnsupportedRuneStillAdvances(t *testing.T) {
	req := unitRequest("A\U0001F600B")
	req.Origin = quarkgl.V3(-4, 1, 2)
	req.Advance = quarkgl.V3(1.5, 0, 0)
	res := Cubes.Layout(req)

	a, _ := Cubes.Lookup('A')
	b, _ := Cubes.Lookup('B')
	require.Len(t, res.Placements, len(a)+len(b))

	for i, p := range b {
		got := res.Placements[len(a)+i]
		assert.Equal(t, 'B', got.Rune)
		assert.Equal(t, 2, got.Index)
		want := req.Origin.Add(quarkgl.V3(p.A.X+2*1.5, p.A.Y, 0))
		assert.Equal(t, want, got.Position)
	}
}

func TestLayoutSpaceAdvances(t *testing.T) {
	res := Cubes.Layout(unitRequest("A B"))
	a, _ := Cubes.Lookup('A')
	first := res.Placements[len(a)]
	assert.Equal(t, 'B', first.Rune)
	b, _ := Cubes.Lookup('B')
	assert.Equal(t, quarkgl.V3(b[0].A.X+2, b[0].A.Y, 0), first.Position)
}

func TestCursorAdvancesOncePerRune(t *testing.T) {
	texts := []string{"", "x", "Hello, World!", "a\x01 é\U0001F600~", "   ", "\xff\xfe"}
	orientations := []quarkgl.Quat{
		quarkgl.QuatIdentity(),
		quarkgl.QuatRotateY(math.Pi / 4),
		quarkgl.QuatRotateZ(1.1).Mul(quarkgl.QuatRotateX(0.3)),
	}
	for _, f := range []*Font{Cubes, Strokes} {
		for _, text := range texts {
			for _, q := range orientations {
				req := Request{
					Text:        text,
					Origin:      quarkgl.V3(1, 2, 3),
					Scale:       quarkgl.V3(0.3, 0.5, 1),
					Orientation: q,
					Advance:     quarkgl.V3(1.25, 0.5, 0),
				}
				n := float32(utf8.RuneCountInString(text))
				want := req.Origin.Add(q.Rotate(req.Advance).Mul(n))
				assertNearV(t, want, f.Layout(req).Cursor, "%s %q", f.Name(), text)
			}
		}
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	req := Request{
		Text:        "Char: 'x' ASCII: 120 (89/95)",
		Origin:      quarkgl.V3(-8, 1, 0),
		Scale:       quarkgl.Splat(0.3),
		Orientation: quarkgl.QuatRotateY(0.4),
		Advance:     quarkgl.V3(1.2, 0, 0),
		Color:       quarkgl.RGBf(0.4, 0.8, 1),
	}
	for _, f := range []*Font{Cubes, Strokes} {
		assert.Equal(t, f.Layout(req), f.Layout(req))
	}
}

func TestScaleAppliedBeforeRotation(t *testing.T) {
	f := newFont("probe", ShapeCell, CellShrink, quarkgl.Splat(1), map[rune]Glyph{'x': {Cell(1, 0)}})
	res := f.Layout(Request{
		Text:        "x",
		Scale:       quarkgl.V3(2, 1, 1),
		Orientation: quarkgl.QuatRotateZ(math.Pi / 2),
	})
	require.Len(t, res.Placements, 1)
	assertNearV(t, quarkgl.V3(0, 2, 0), res.Placements[0].Position)
}

func TestZeroOrientationIsIdentity(t *testing.T) {
	req := unitRequest("Hi")
	withIdentity := Cubes.Layout(req)
	req.Orientation = quarkgl.Quat{}
	assert.Equal(t, withIdentity, Cubes.Layout(req))
}

func TestStrokeLayoutUsesRawScaleAndBothEndpoints(t *testing.T) {
	req := unitRequest("-")
	req.Scale = quarkgl.V3(4, 7, 1)
	req.Origin = quarkgl.V3(10, 0, 0)
	res := Strokes.Layout(req)

	require.Len(t, res.Placements, 2) // G1, G2
	g1, g2 := res.Placements[0], res.Placements[1]
	assert.Equal(t, ShapeSegment, g1.Shape)
	assert.Equal(t, req.Scale, g1.Scale)
	assert.Equal(t, quarkgl.V3(10, 3.5, 0), g1.Position)
	assert.Equal(t, quarkgl.V3(12, 3.5, 0), g1.End)
	assert.Equal(t, quarkgl.V3(12, 3.5, 0), g2.Position)
	assert.Equal(t, quarkgl.V3(14, 3.5, 0), g2.End)
}

func TestAppendLayoutReusesBuffer(t *testing.T) {
	buf := make([]Placement, 0, 256)
	out, _ := Cubes.AppendLayout(buf, unitRequest("OK"))
	require.NotEmpty(t, out)
	assert.Equal(t, &buf[:1][0], &out[0])

	more, cursor := Cubes.AppendLayout(out, unitRequest("!"))
	bang, _ := Cubes.Lookup('!')
	assert.Len(t, more, len(out)+len(bang))
	assert.Equal(t, quarkgl.V3(1, 0, 0), cursor)
}

func TestPlacementModel(t *testing.T) {
	q := quarkgl.QuatRotateY(0.6)
	res := Strokes.Layout(Request{
		Text:        "/",
		Origin:      quarkgl.V3(1, 1, 1),
		Scale:       quarkgl.V3(2, 3, 1),
		Orientation: q,
	})
	for _, p := range res.Placements {
		m := p.Model()
		assertNearV(t, p.Position, quarkgl.Mat4MulPoint(m, quarkgl.V3(0, 0, 0)))
		assertNearV(t, p.End, quarkgl.Mat4MulPoint(m, quarkgl.V3(1, 0, 0)))
	}

	cube := Cubes.Layout(Request{Text: ".", Scale: quarkgl.Splat(1), Orientation: q}).Placements[0]
	m := cube.Model()
	assertNearV(t, cube.Position, quarkgl.Mat4MulPoint(m, quarkgl.V3(0, 0, 0)))
	corner := quarkgl.Mat4MulPoint(m, quarkgl.V3(0.5, 0.5, 0.5)).Sub(cube.Position)
	assert.InDelta(t, CellShrink*math.Sqrt(3)/2, quarkgl.Len(corner), eps)
}

func TestSimpleAndBillboard(t *testing.T) {
	c := quarkgl.RGBf(1, 0.5, 0)
	req := Cubes.Simple("Hello World!", quarkgl.V3(-10, 0, 0), c)
	assert.Equal(t, quarkgl.Splat(0.2), req.Scale)
	assert.Equal(t, quarkgl.V3(1.5, 0, 0), req.Advance)
	assert.Equal(t, quarkgl.QuatIdentity(), req.Orientation)

	sreq := Strokes.Simple("Hello", quarkgl.V3(0, 0, 0), c)
	assertNearV(t, quarkgl.V3(0.8, 1.4, 0.2), sreq.Scale)

	origin, camera := quarkgl.V3(0, 0, 0), quarkgl.V3(0, 5, 15)
	breq := Cubes.Billboard("Hi", origin, camera, c)
	facing := breq.Orientation.Rotate(quarkgl.V3(0, 0, 1))
	assertNearV(t, quarkgl.Normalize(camera.Sub(origin)), facing)
}

func TestConcurrentLayout(t *testing.T) {
	req := unitRequest("The quick brown fox jumps over the lazy dog 0123456789")
	want := Cubes.Layout(req)

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Cubes.Layout(req)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
