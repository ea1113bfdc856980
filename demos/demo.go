// Package demos holds what the demo scenes share: the Demo contract the app
// drives, the environment it hands them and a Stage bundling renderer, scene
// and HUD for one framebuffer.
package demos

import (
	"fmt"
	"image/color"

	"tinytext/hal"
	"tinytext/internal/hud"
	"tinytext/quarkgl"
	"tinytext/tinytext"
	"tinytext/tinytext/hudfont"
)

// Demo is one scene driven by the app on its step goroutine.
type Demo interface {
	// Step advances the scene to tick now (milliseconds since start).
	Step(now uint64)
	HandleKey(ev hal.KeyEvent)
	HandlePointer(ev hal.PointerEvent)
	// Render draws the current frame and presents it.
	Render() error
	Close()
}

// Env is what a demo gets from the app.
type Env struct {
	FB   hal.Framebuffer
	Font *tinytext.Font
	// DataPath is an optional demo-specific data file.
	DataPath string
	Logf     func(format string, args ...any)
}

// Log logs through the app logger if one is set.
func (e Env) Log(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// HUDPixels is the pixel size of one HUD glyph cell.
const HUDPixels = 1

// Stage is a renderer, a scene and a HUD writer bound to one framebuffer.
type Stage struct {
	Renderer *quarkgl.Renderer
	Scene    *quarkgl.Scene
	HUD      *hud.Writer

	fb     hal.Framebuffer
	target *quarkgl.RGB565Target
}

// NewStage builds a stage with room for meshes scene meshes.
func NewStage(fb hal.Framebuffer, meshes int, font *tinytext.Font) (*Stage, error) {
	if fb == nil {
		return nil, fmt.Errorf("stage: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("stage: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	target := quarkgl.NewRGB565Target(fb.Buffer(), fb.StrideBytes(), w, h)
	if target == nil {
		return nil, fmt.Errorf("stage: framebuffer %dx%d has no usable buffer", w, h)
	}
	if font == nil {
		font = tinytext.Cubes
	}
	return &Stage{
		Renderer: quarkgl.NewRenderer(w, h, true),
		Scene:    quarkgl.CreateScene(meshes),
		HUD:      hud.New(fb, hudfont.New(font, HUDPixels)),
		fb:       fb,
		target:   target,
	}, nil
}

// Size returns the framebuffer size in pixels.
func (s *Stage) Size() (w, h int) { return s.target.Size() }

// Draw renders the scene, runs overlay on top and presents the frame.
func (s *Stage) Draw(overlay func(w *hud.Writer)) error {
	s.Renderer.Render(s.target, s.Scene)
	if overlay != nil && s.HUD != nil {
		overlay(s.HUD)
	}
	return s.fb.Present()
}

// RGBA converts a quarkgl colour for HUD drawing.
func RGBA(c quarkgl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
