// Package hello is the smallest TinyText scene: a lit cube with plain,
// rotated, billboard and stroke text around it, and an orbiting camera.
package hello

import (
	"math"

	"tinytext/demos"
	"tinytext/hal"
	"tinytext/internal/hud"
	"tinytext/quarkgl"
	"tinytext/tinytext"
	"tinytext/tinytext/textrender"
)

const (
	sceneMeshes = 2048

	orbitStep = 0.1
	zoomStep  = 1
	panStep   = 1
	// Radians per dragged pixel.
	dragRate = 0.01
)

var billboardOrigin = quarkgl.V3(-6, -3, 0)

// Task is the hello scene.
type Task struct {
	env   demos.Env
	font  *tinytext.Font
	stage *demos.Stage
	orbit quarkgl.OrbitController

	static    *textrender.Batch
	billboard *textrender.Batch
	dirty     bool
}

// New builds the scene on env.FB.
func New(env demos.Env) (*Task, error) {
	stage, err := demos.NewStage(env.FB, sceneMeshes, env.Font)
	if err != nil {
		return nil, err
	}
	font := env.Font
	if font == nil {
		font = tinytext.Cubes
	}
	t := &Task{
		env:       env,
		font:      font,
		stage:     stage,
		static:    textrender.NewBatch(stage.Scene),
		billboard: textrender.NewBatch(stage.Scene),
		orbit: quarkgl.OrbitController{
			Radius:    float32(math.Hypot(5, 15)),
			Pitch:     float32(math.Atan2(5, 15)),
			MinRadius: 4,
			MaxRadius: 60,
		},
		dirty: true,
	}
	t.setupScene()
	return t, nil
}

func (t *Task) setupScene() {
	s := t.stage.Scene
	t.stage.Renderer.ClearColor = quarkgl.RGB(0x08, 0x0A, 0x10)
	s.Camera.Far = 200
	s.Light.Dir = quarkgl.Normalize(quarkgl.V3(-4, -8, -4))
	t.orbit.Apply(&s.Camera)

	cube := quarkgl.UnitCube()
	cube.Transform = quarkgl.Mat4Translate(quarkgl.V3(0, 0.5, -2))
	cube.Material.BaseColor = quarkgl.RGBf(0.8, 0.7, 0.6)
	s.AddMesh(cube)

	var ps []tinytext.Placement
	for _, line := range staticText(t.font) {
		ps, _ = line.font.AppendLayout(ps, line.req)
	}
	t.static.Spawn(ps)
}

type textLine struct {
	font *tinytext.Font
	req  tinytext.Request
}

// staticText lays the greeting out in font; the other two lines always
// show one font each.
func staticText(font *tinytext.Font) []textLine {
	plain := font.Simple("Hello World!", quarkgl.V3(-10, 0, 0), quarkgl.RGBf(1, 0.5, 0))
	rotated := tinytext.Request{
		Text:        "Voxels rock!",
		Origin:      quarkgl.V3(0, 3, 0),
		Scale:       quarkgl.Splat(0.3),
		Orientation: quarkgl.QuatRotateY(math.Pi / 4),
		Advance:     quarkgl.V3(2, 0, 0),
		Color:       quarkgl.RGBf(0, 1, 0.5),
	}
	strokes := tinytext.Strokes.Simple("Strokes 0123", quarkgl.V3(-10, -6, 0), quarkgl.RGBf(0.3, 0.8, 1))
	return []textLine{
		{font: font, req: plain},
		{font: tinytext.Cubes, req: rotated},
		{font: tinytext.Strokes, req: strokes},
	}
}

// faceCamera lays the billboard line out towards the current camera.
func (t *Task) faceCamera() {
	req := t.font.Billboard("Facing you", billboardOrigin, t.stage.Scene.Camera.Position, quarkgl.RGBf(1, 1, 0.4))
	t.billboard.Replace(t.font.Layout(req).Placements)
}

func (t *Task) Step(uint64) {
	if !t.dirty {
		return
	}
	t.dirty = false
	t.orbit.Apply(&t.stage.Scene.Camera)
	t.faceCamera()
}

func (t *Task) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		t.orbit.Rotate(-orbitStep, 0)
	case hal.KeyRight:
		t.orbit.Rotate(orbitStep, 0)
	case hal.KeyUp:
		t.orbit.Rotate(0, orbitStep)
	case hal.KeyDown:
		t.orbit.Rotate(0, -orbitStep)
	case hal.KeyPageUp:
		t.orbit.Zoom(-zoomStep)
	case hal.KeyPageDown:
		t.orbit.Zoom(zoomStep)
	case hal.KeyHome:
		t.orbit.Pan(0, panStep)
	case hal.KeyEnd:
		t.orbit.Pan(0, -panStep)
	default:
		switch ev.Rune {
		case 'a':
			t.orbit.Pan(-panStep, 0)
		case 'd':
			t.orbit.Pan(panStep, 0)
		case 'w':
			t.stage.Renderer.ToggleWireframe()
			return
		default:
			return
		}
	}
	t.dirty = true
}

func (t *Task) HandlePointer(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerDrag:
		t.orbit.Rotate(-ev.DX*dragRate, ev.DY*dragRate)
	case hal.PointerWheel:
		t.orbit.Zoom(-ev.DY * zoomStep)
	default:
		return
	}
	t.dirty = true
}

func (t *Task) Render() error {
	return t.stage.Draw(func(w *hud.Writer) {
		w.Text(4, 4, "arrows orbit  pgup/pgdn zoom  a/d/home/end pan", demos.RGBA(quarkgl.RGB(0x90, 0xA0, 0xB8)))
	})
}

func (t *Task) Close() {
	t.static.Release()
	t.billboard.Release()
}

var _ demos.Demo = (*Task)(nil)
