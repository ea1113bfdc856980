package pivspi

import (
	"math"

	"tinytext/quarkgl"
)

const (
	baseRadius    = 9
	sliceHeight   = 1.5
	sliceSegments = 32
)

// sliceRadius scales a slice by the competitor's share of its category.
func sliceRadius(value, other float32) float32 {
	return baseRadius * value / (value + other)
}

// sliceMesh builds a wedge of a cylinder lying in the XZ plane, from start
// to end radians (measured from +X towards +Z), centred on y=0.
func sliceMesh(start, end, radius, height float32, segments int) quarkgl.Mesh {
	if segments < 1 {
		segments = 1
	}
	step := (end - start) / float32(segments)
	top, bottom := height/2, -height/2

	verts := make([]quarkgl.Vertex, 0, 2+2*(segments+1))
	verts = append(verts,
		quarkgl.Vertex{Pos: quarkgl.V3(0, top, 0), Normal: quarkgl.V3(0, 1, 0)},
		quarkgl.Vertex{Pos: quarkgl.V3(0, bottom, 0), Normal: quarkgl.V3(0, -1, 0)},
	)
	for i := 0; i <= segments; i++ {
		a := float64(start + float32(i)*step)
		x := radius * float32(math.Cos(a))
		z := radius * float32(math.Sin(a))
		verts = append(verts,
			quarkgl.Vertex{Pos: quarkgl.V3(x, top, z), Normal: quarkgl.V3(0, 1, 0)},
			quarkgl.Vertex{Pos: quarkgl.V3(x, bottom, z), Normal: quarkgl.V3(0, -1, 0)},
		)
	}

	// Faces wind counter-clockwise seen from outside.
	idx := make([]uint16, 0, segments*12+12)
	for i := 0; i < segments; i++ {
		t1, b1 := uint16(2+2*i), uint16(3+2*i)
		t2, b2 := t1+2, b1+2
		idx = append(idx,
			0, t2, t1,
			1, b1, b2,
			t1, t2, b1,
			b1, t2, b2,
		)
	}
	last := uint16(2 + 2*segments)
	idx = append(idx,
		0, 2, 1, 1, 2, 3, // start cap
		0, 1, last, 1, last+1, last, // end cap
	)
	return quarkgl.Mesh{Vertices: verts, Indices: idx}
}

// chartPose orients a chart so the slice plane faces the camera and angle
// turns it about Z.
func chartPose(center quarkgl.Vec3, angle float32) quarkgl.Mat4 {
	q := quarkgl.QuatRotateZ(angle).Mul(quarkgl.QuatRotateX(-math.Pi / 2))
	return quarkgl.Mat4TRS(center, q, quarkgl.Splat(1))
}
