package cycler

import (
	"time"

	"tinytext/demos"
	"tinytext/hal"
	"tinytext/internal/hud"
	"tinytext/quarkgl"
	"tinytext/tinytext"
	"tinytext/tinytext/textrender"
)

const (
	// Ticks between character changes.
	cycleIntervalTicks = 100

	sceneMeshes = 4096
	ringCubes   = 10
	ringRadius  = 25
)

// Task is the character cycling demo.
type Task struct {
	env   demos.Env
	stage *demos.Stage
	text  *textrender.Batch
	font  *tinytext.Font

	cyc     Cycler
	paused  bool
	started uint64
	last    uint64
	shown   bool

	buf     []tinytext.Placement
	dropped int
}

// New builds the demo scene on env.FB.
func New(env demos.Env) (*Task, error) {
	font := env.Font
	if font == nil {
		font = tinytext.Cubes
	}
	stage, err := demos.NewStage(env.FB, sceneMeshes, font)
	if err != nil {
		return nil, err
	}
	t := &Task{
		env:   env,
		stage: stage,
		text:  textrender.NewBatch(stage.Scene),
		font:  font,
		cyc:   NewCycler(),
	}
	t.setupScene()
	return t, nil
}

func (t *Task) setupScene() {
	s := t.stage.Scene
	t.stage.Renderer.ClearColor = quarkgl.RGB(0x0A, 0x0C, 0x14)

	s.Camera.Position = quarkgl.V3(0, 8, 20)
	s.Camera.Target = quarkgl.V3(0, 2, 0)
	s.Camera.FOVYRad = 0.9
	s.Camera.Far = 200

	s.Light.Ambient = 0.3
	s.Light.Dir = quarkgl.Normalize(quarkgl.V3(-10, -15, -10))
	s.Light.DirAmount = 0.7

	ground := quarkgl.Plane(30)
	ground.Transform = quarkgl.Mat4Translate(quarkgl.V3(0, -2, 0))
	ground.Material.BaseColor = quarkgl.RGBf(0.2, 0.2, 0.3)
	s.AddMesh(ground)

	for _, c := range ring(ringCubes, ringRadius) {
		m := quarkgl.UnitCube()
		m.Transform = quarkgl.Mat4TRS(c.pos, quarkgl.QuatRotateY(c.yaw), quarkgl.Splat(1.5))
		m.Material.BaseColor = c.color
		s.AddMesh(m)
	}
}

func (t *Task) Step(now uint64) {
	if t.started == 0 {
		t.started = now
	}
	if t.shown && (t.paused || now-t.last < cycleIntervalTicks) {
		return
	}
	t.last = now
	t.shown = true

	elapsed := time.Duration(now-t.started) * hal.TickDuration
	t.show(elapsed)
	if !t.paused {
		t.cyc.Advance()
	}
}

// show replaces the displayed text with the current character's lines.
func (t *Task) show(elapsed time.Duration) {
	t.buf = t.buf[:0]
	for _, req := range t.cyc.Requests(t.font, elapsed) {
		t.buf, _ = t.font.AppendLayout(t.buf, req)
	}
	t.text.Replace(t.buf)
	if d := t.text.Dropped(); d != t.dropped {
		s := t.stage.Scene
		t.env.Log("cycler: scene full (%d/%d meshes), %d primitives dropped so far", s.Len(), s.Cap(), d)
		t.dropped = d
	}
}

func (t *Task) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Rune {
	case 's':
		t.font = other(t.font)
		t.shown = false
		t.env.Log("cycler: font %s", t.font.Name())
	case 'p':
		t.paused = !t.paused
		t.env.Log("cycler: paused=%v", t.paused)
	case 'w':
		t.stage.Renderer.ToggleWireframe()
	}
}

func (t *Task) HandlePointer(hal.PointerEvent) {}

func (t *Task) Render() error {
	return t.stage.Draw(t.overlay)
}

func (t *Task) overlay(w *hud.Writer) {
	fg := demos.RGBA(quarkgl.RGB(0xE0, 0xE8, 0xFF))
	dim := demos.RGBA(quarkgl.RGB(0x90, 0xA0, 0xB8))
	w.Text(4, 4, "TinyText ASCII", fg)
	w.Text(4, 4+w.LineHeight(), "s font  p pause  w wire  q quit", dim)
}

// Close releases the text meshes.
func (t *Task) Close() {
	t.text.Release()
}

func other(f *tinytext.Font) *tinytext.Font {
	if f == tinytext.Strokes {
		return tinytext.Cubes
	}
	return tinytext.Strokes
}

var _ demos.Demo = (*Task)(nil)
