// Package pivspi compares two competitors with a pair of spinning pie
// charts. Turning the left chart selects a category; the right chart follows
// so the matching slices face each other, and a scoreboard shows the scores.
package pivspi

import (
	"tinytext/demos"
	"tinytext/hal"
	"tinytext/internal/hud"
	"tinytext/quarkgl"
	"tinytext/tinytext"
	"tinytext/tinytext/textrender"
)

const (
	// Ticks between animation steps.
	stepIntervalTicks = 16

	labelMeshes = 512
)

var (
	leftCenter  = quarkgl.V3(-6.25, 7.2, 0)
	rightCenter = quarkgl.V3(6.25, 7.2, 0)

	koboldColor     = quarkgl.RGBf(1, 0.42, 0.42)
	categoryColor   = quarkgl.RGBf(1, 1, 0.33)
	troglodyteColor = quarkgl.RGBf(0.31, 0.80, 0.77)
)

// Task is the pie chart demo.
type Task struct {
	env   demos.Env
	stage *demos.Stage
	state *State

	left, right []int // slice mesh ids in chart order
	labels      *textrender.Batch

	lastStep uint64
	stepped  bool
	selected int
}

// New loads the categories (env.DataPath or the defaults) and builds the
// charts.
func New(env demos.Env) (*Task, error) {
	cats := DefaultCategories()
	if env.DataPath != "" {
		var err error
		if cats, err = LoadData(env.DataPath); err != nil {
			return nil, err
		}
		env.Log("pivspi: loaded %d categories from %s", len(cats), env.DataPath)
	}

	stage, err := demos.NewStage(env.FB, 2*len(cats)+labelMeshes, env.Font)
	if err != nil {
		return nil, err
	}
	t := &Task{
		env:      env,
		stage:    stage,
		state:    NewState(cats),
		labels:   textrender.NewBatch(stage.Scene),
		selected: -1,
	}
	t.setupScene()
	t.syncCharts()
	t.noteSelection()
	return t, nil
}

func (t *Task) setupScene() {
	s := t.stage.Scene
	t.stage.Renderer.ClearColor = quarkgl.RGB(0x10, 0x10, 0x18)

	s.Camera.Position = quarkgl.V3(0, 5, 25)
	s.Camera.Target = quarkgl.V3(0, 4, 0)
	s.Camera.FOVYRad = 1.1
	s.Camera.Far = 100

	s.Light.Ambient = 0.35
	s.Light.Dir = quarkgl.Normalize(quarkgl.V3(0, -10, -15))
	s.Light.DirAmount = 0.65

	cats := t.state.Categories
	n := len(cats)
	kobolds, troglodytes := t.state.kobolds(), t.state.troglodytes()
	for i, c := range cats {
		start, end := sliceSpan(kobolds, i)
		m := sliceMesh(start, end, sliceRadius(c.Kobold, c.Troglodyte), sliceHeight, sliceSegments)
		m.Material.BaseColor = SliceColor(i)
		t.left = append(t.left, s.AddMesh(m))
	}
	// Reversed, matching FindTargetAngle.
	for j := range troglodytes {
		i := n - 1 - j
		c := cats[i]
		start, end := sliceSpan(troglodytes, j)
		m := sliceMesh(start, end, sliceRadius(c.Troglodyte, c.Kobold), sliceHeight, sliceSegments)
		m.Material.BaseColor = SliceColor(i)
		t.right = append(t.right, s.AddMesh(m))
	}

	font := t.env.Font
	if font == nil {
		font = tinytext.Cubes
	}
	var ps []tinytext.Placement
	for _, l := range []struct {
		text   string
		center quarkgl.Vec3
		color  quarkgl.Color
	}{
		{"KOBOLDS", leftCenter, koboldColor},
		{"TROGLODYTES", rightCenter, troglodyteColor},
	} {
		req := font.Simple(l.text, quarkgl.V3(0, -4, 0), l.color)
		width := float32(len(l.text)) * req.Advance.X
		req.Origin = req.Origin.Add(quarkgl.V3(l.center.X-width/2, 0, 0))
		ps, _ = font.AppendLayout(ps, req)
	}
	t.labels.Spawn(ps)
}

func (t *Task) syncCharts() {
	left := chartPose(leftCenter, t.state.LeftAngle)
	for _, id := range t.left {
		t.stage.Scene.UpdateMeshTransform(id, left)
	}
	right := chartPose(rightCenter, t.state.RightAngle)
	for _, id := range t.right {
		t.stage.Scene.UpdateMeshTransform(id, right)
	}
}

// noteSelection logs the selection when it changed since the last call.
func (t *Task) noteSelection() {
	if t.state.SelectedCategory == t.selected {
		return
	}
	t.selected = t.state.SelectedCategory
	t.env.Log("pivspi: %s", t.state.Summary())
}

func (t *Task) Step(now uint64) {
	if t.stepped && now-t.lastStep < stepIntervalTicks {
		return
	}
	t.stepped = true
	t.lastStep = now
	t.state.Step()
	t.syncCharts()
}

func (t *Task) HandleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft, hal.KeyUp:
		t.state.Prev()
	case hal.KeyRight, hal.KeyDown:
		t.state.Next()
	default:
		if ev.Rune == 'w' {
			t.stage.Renderer.ToggleWireframe()
		}
		return
	}
	t.syncCharts()
	t.noteSelection()
}

func (t *Task) HandlePointer(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerWheel:
		t.state.Wheel(ev.DY)
	case hal.PointerDrag:
		_, h := t.stage.Size()
		t.state.Drag(ev.DY, h)
	default:
		return
	}
	t.syncCharts()
	t.noteSelection()
}

func (t *Task) Render() error {
	return t.stage.Draw(t.scoreboard)
}

func (t *Task) scoreboard(w *hud.Writer) {
	fw, _ := t.stage.Size()
	c := t.state.Selected()
	cx := fw / 2
	off := fw * 3 / 10
	const y = 6
	w.Centered(cx-off, y, []string{"KOBOLDS", itoa(int(c.Kobold))}, demos.RGBA(koboldColor))
	w.Centered(cx, y, []string{c.Name, itoa(t.state.Diff())}, demos.RGBA(categoryColor))
	w.Centered(cx+off, y, []string{"TROGLODYTES", itoa(int(c.Troglodyte))}, demos.RGBA(troglodyteColor))
}

// Close removes the charts and labels.
func (t *Task) Close() {
	for _, id := range t.left {
		t.stage.Scene.RemoveMesh(id)
	}
	for _, id := range t.right {
		t.stage.Scene.RemoveMesh(id)
	}
	t.left, t.right = nil, nil
	t.labels.Release()
}

var _ demos.Demo = (*Task)(nil)
