package cycler

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"tinytext/demos"
	"tinytext/demos/demotest"
	"tinytext/hal"
	"tinytext/quarkgl"
	"tinytext/tinytext"
)

func newTestTask(t *testing.T) (*Task, *demotest.Framebuffer, *demotest.Log) {
	t.Helper()
	fb := demotest.NewFramebuffer(160, 90)
	log := &demotest.Log{}
	task, err := New(demos.Env{FB: fb, Logf: log.Logf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return task, fb, log
}

func TestStepCyclesEveryInterval(t *testing.T) {
	task, _, _ := newTestTask(t)
	static := task.stage.Scene.Len()
	if static != 1+ringCubes {
		t.Fatalf("static meshes = %d", static)
	}

	task.Step(1)
	if task.cyc.Current() != '!' {
		t.Fatalf("after first step current = %q, want '!'", task.cyc.Current())
	}
	shown := task.text.Len()
	if shown == 0 || task.stage.Scene.Len() != static+shown {
		t.Fatalf("text meshes = %d, scene = %d", shown, task.stage.Scene.Len())
	}

	task.Step(50)
	if task.cyc.Current() != '!' {
		t.Fatal("advanced before the interval elapsed")
	}
	task.Step(101)
	if task.cyc.Current() != '"' {
		t.Fatalf("current = %q, want '\"'", task.cyc.Current())
	}
	if task.stage.Scene.Len() != static+task.text.Len() {
		t.Fatal("old text was not released")
	}
}

func TestKeys(t *testing.T) {
	task, _, log := newTestTask(t)
	task.Step(1)

	task.HandleKey(hal.KeyEvent{Press: true, Rune: 'p'})
	task.Step(500)
	if task.cyc.Current() != '!' {
		t.Fatal("paused cycler advanced")
	}

	task.HandleKey(hal.KeyEvent{Press: true, Rune: 's'})
	if task.font != tinytext.Strokes {
		t.Fatal("s did not switch to strokes")
	}
	task.Step(600)
	if task.cyc.Current() != '!' {
		t.Fatal("redraw after font switch advanced while paused")
	}

	task.HandleKey(hal.KeyEvent{Press: true, Rune: 'w'})
	if task.stage.Renderer.Mode != quarkgl.RenderWireframe {
		t.Fatal("w did not toggle wireframe")
	}

	joined := strings.Join(log.Lines, "\n")
	for _, want := range []string{"cycler: paused=true", "cycler: font strokes"} {
		if !strings.Contains(joined, want) {
			t.Errorf("log missing %q in:\n%s", want, joined)
		}
	}
}

func TestRenderPresents(t *testing.T) {
	task, fb, _ := newTestTask(t)
	task.Step(1)
	if err := task.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if fb.Presents != 1 {
		t.Fatalf("presents = %d", fb.Presents)
	}
	if fb.Lit() == 0 {
		t.Fatal("nothing drawn")
	}
	task.Close()
	if task.text.Len() != 0 {
		t.Fatal("Close left text meshes")
	}
}

func TestSceneFullIsLogged(t *testing.T) {
	task, _, log := newTestTask(t)
	scene := task.stage.Scene
	for scene.AddMesh(quarkgl.UnitCube()) >= 0 {
	}

	task.Step(1)
	if task.text.Len() != 0 || task.text.Dropped() == 0 {
		t.Fatalf("text len=%d dropped=%d on a full scene", task.text.Len(), task.text.Dropped())
	}
	want := fmt.Sprintf("cycler: scene full (%d/%d meshes), %d primitives dropped so far",
		sceneMeshes, sceneMeshes, task.text.Dropped())
	if !slices.Contains(log.Lines, want) {
		t.Fatalf("missing %q in %v", want, log.Lines)
	}
}
