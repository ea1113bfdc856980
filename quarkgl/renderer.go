package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

// ToggleWireframe flips between wireframe and flat shading.
func (r *Renderer) ToggleWireframe() {
	if r.Mode == RenderWireframe {
		r.Mode = RenderSolidFlat
		return
	}
	r.Mode = RenderWireframe
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(float32(w) / float32(h))
	viewProj := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled {
			return
		}
		r.renderMesh(t, w, h, viewProj, m, s.Light)
	})
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	mvp := Mat4Mul(viewProj, model)

	if len(m.Indices) >= 3 {
		r.renderTriangles(t, w, h, mvp, model, m, light)
	}
	if len(m.Lines) >= 2 {
		r.renderLines(t, w, h, mvp, m)
	}
}

func (r *Renderer) renderTriangles(t Target, w, h int, mvp, model Mat4, m *Mesh, light Light) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		ndc0, ok0 := project(mvp, v0.Pos)
		ndc1, ok1 := project(mvp, v1.Pos)
		ndc2, ok2 := project(mvp, v2.Pos)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			// Normals come from world-space positions so rotated meshes shade correctly.
			n := triangleNormal(Mat4MulPoint(model, v0.Pos), Mat4MulPoint(model, v1.Pos), Mat4MulPoint(model, v2.Pos))
			base = base.MulScalar(lightIntensity(light, n))
		}

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, x0, y0, x1, y1, base)
			r.drawLine(t, x1, y1, x2, y2, base)
			r.drawLine(t, x2, y2, x0, y0, base)
		case RenderSolidVertexColor:
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, v0.Color, x1, y1, ndc1.Z, v1.Color, x2, y2, ndc2.Z, v2.Color)
		default:
			r.fillTriangleFlat(t, w, h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, base)
		}
	}
}

// renderLines draws line lists unlit in the material color.
func (r *Renderer) renderLines(t Target, w, h int, mvp Mat4, m *Mesh) {
	c := m.Material.BaseColor
	for i := 0; i+1 < len(m.Lines); i += 2 {
		i0 := int(m.Lines[i])
		i1 := int(m.Lines[i+1])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) {
			continue
		}
		a, okA := project(mvp, m.Vertices[i0].Pos)
		b, okB := project(mvp, m.Vertices[i1].Pos)
		if !okA || !okB {
			continue
		}
		x0, y0 := ndcToScreen(a, w, h)
		x1, y1 := ndcToScreen(b, w, h)
		r.drawLineDepth(t, w, x0, y0, a.Z, x1, y1, b.Z, c)
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

// project maps a model-space point to NDC. Points on or behind the eye plane
// are rejected.
func project(mvp Mat4, p Vec3) (ndcPoint, bool) {
	return clipToNDC(Mat4MulV4(mvp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}))
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	invW := 1.0 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is typically in [-1,1]. Map to [0,1].
	d := (z*0.5 + 0.5)
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
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

// drawLineDepth is drawLine with z interpolated along the major axis.
func (r *Renderer) drawLineDepth(t Target, w int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, c Color) {
	steps := max(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		if r.depthTest(w, x0, y0, z0) {
			t.SetPixel(x0, y0, c)
		}
		return
	}
	// Skip lines that are entirely off screen in one direction.
	tw, th := t.Size()
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= tw && x1 >= tw) || (y0 >= th && y1 >= th) {
		return
	}
	inv := 1 / float32(steps)
	for i := 0; i <= steps; i++ {
		f := float32(i) * inv
		x := x0 + int(float32(x1-x0)*f+0.5*sign(x1-x0))
		y := y0 + int(float32(y1-y0)*f+0.5*sign(y1-y0))
		if x < 0 || y < 0 || x >= tw || y >= th {
			continue
		}
		if !r.depthTest(w, x, y, z0+(z1-z0)*f) {
			continue
		}
		t.SetPixel(x, y, c)
	}
}

func (r *Renderer) fillTriangleFlat(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, maxX, minY, maxY, ok := triangleBounds(w, h, x0, y0, x1, y1, x2, y2)
	if !ok {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if !insideEdges(w0, w1, w2) {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 Color, x1, y1 int, z1 float32, c1 Color, x2, y2 int, z2 float32, c2 Color) {
	minX, maxX, minY, maxY, ok := triangleBounds(w, h, x0, y0, x1, y1, x2, y2)
	if !ok {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	invArea := 1.0 / float32(area)

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if !insideEdges(w0, w1, w2) {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			rr := uint8(clampF32(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(clampF32(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(clampF32(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, Color{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

func triangleBounds(w, h, x0, y0, x1, y1, x2, y2 int) (minX, maxX, minY, maxY int, ok bool) {
	minX, maxX = max(min(x0, x1, x2), 0), min(max(x0, x1, x2), w-1)
	minY, maxY = max(min(y0, y1, y2), 0), min(max(y0, y1, y2), h-1)
	return minX, maxX, minY, maxY, minX <= maxX && minY <= maxY
}

// insideEdges accepts both windings: meshes are not back-face culled.
func insideEdges(w0, w1, w2 int) bool {
	return (w0|w1|w2) >= 0 || (w0 <= 0 && w1 <= 0 && w2 <= 0)
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
