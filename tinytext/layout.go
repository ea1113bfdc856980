package tinytext

import "tinytext/quarkgl"

// CellShrink is applied to the scale of cell primitives so neighbouring
// cubes keep a visible gap. Segment primitives use the raw scale.
const CellShrink = 0.8

// Request describes one piece of text to lay out.
type Request struct {
	Text   string
	Origin quarkgl.Vec3
	// Scale multiplies glyph-local coordinates per axis before rotation.
	Scale quarkgl.Vec3
	// Orientation rotates glyph offsets and the advance. The zero value is
	// treated as the identity.
	Orientation quarkgl.Quat
	// Advance is the per-rune cursor step in unrotated space.
	Advance quarkgl.Vec3
	Color   quarkgl.Color
}

// Placement is one primitive positioned in world space.
type Placement struct {
	Shape Shape
	// Position is the cell centre or the segment start.
	Position quarkgl.Vec3
	// End is the segment end. It equals Position for cells.
	End      quarkgl.Vec3
	Rotation quarkgl.Quat
	Scale    quarkgl.Vec3
	Color    quarkgl.Color

	Rune  rune
	Index int // rune index within the text
}

// Model maps the shape's unit primitive into world space: the unit cube
// centred on the origin for cells, the line (0,0,0)-(1,0,0) for segments.
func (p Placement) Model() quarkgl.Mat4 {
	if p.Shape == ShapeSegment {
		return quarkgl.Mat4Basis(
			p.End.Sub(p.Position),
			p.Rotation.Rotate(quarkgl.V3(0, p.Scale.Y, 0)),
			p.Rotation.Rotate(quarkgl.V3(0, 0, p.Scale.Z)),
			p.Position,
		)
	}
	return quarkgl.Mat4TRS(p.Position, p.Rotation, p.Scale)
}

// Result is the output of Layout.
type Result struct {
	Placements []Placement
	// Cursor is where the next rune would start.
	Cursor quarkgl.Vec3
}

// Layout places every primitive of req.Text. Placements are ordered by rune
// and, within a rune, by glyph table order.
func (f *Font) Layout(req Request) Result {
	out, cursor := f.AppendLayout(nil, req)
	return Result{Placements: out, Cursor: cursor}
}

// AppendLayout is Layout appending to dst. It returns the extended slice and
// the final cursor.
func (f *Font) AppendLayout(dst []Placement, req Request) ([]Placement, quarkgl.Vec3) {
	q := req.Orientation
	if q.IsZero() {
		q = quarkgl.QuatIdentity()
	}
	primScale := req.Scale
	if f != nil && f.shape == ShapeCell {
		primScale = req.Scale.Mul(f.shrink)
	}
	step := q.Rotate(req.Advance)

	cursor := req.Origin
	i := 0
	for _, r := range req.Text {
		g, _ := f.Lookup(r)
		for _, p := range g {
			pl := Placement{
				Shape:    p.Shape,
				Position: cursor.Add(q.Rotate(local(p.A, req.Scale))),
				Rotation: q,
				Scale:    primScale,
				Color:    req.Color,
				Rune:     r,
				Index:    i,
			}
			pl.End = pl.Position
			if p.Shape == ShapeSegment {
				pl.End = cursor.Add(q.Rotate(local(p.B, req.Scale)))
			}
			dst = append(dst, pl)
		}
		// One step per rune, drawn or not, keeps the text monospaced.
		cursor = cursor.Add(step)
		i++
	}
	return dst, cursor
}

func local(p Point, scale quarkgl.Vec3) quarkgl.Vec3 {
	return quarkgl.V3(p.X*scale.X, p.Y*scale.Y, 0)
}

// Simple returns a request with the default look: 0.2 cube-cell scale,
// identity orientation and a 1.5 unit advance along X.
func (f *Font) Simple(text string, origin quarkgl.Vec3, c quarkgl.Color) Request {
	units := quarkgl.Splat(1)
	if f != nil {
		units = f.units
	}
	return Request{
		Text:        text,
		Origin:      origin,
		Scale:       units.Mul(0.2),
		Orientation: quarkgl.QuatIdentity(),
		Advance:     quarkgl.V3(1.5, 0, 0),
		Color:       c,
	}
}

// Billboard is Simple with the text plane (+Z) turned towards camera.
func (f *Font) Billboard(text string, origin, camera quarkgl.Vec3, c quarkgl.Color) Request {
	req := f.Simple(text, origin, c)
	req.Orientation = quarkgl.QuatFromArc(quarkgl.V3(0, 0, 1), camera.Sub(origin))
	return req
}
