package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sort"

	"tinytext/demos"
	"tinytext/demos/cycler"
	"tinytext/demos/hello"
	"tinytext/demos/pivspi"
	"tinytext/hal"
	"tinytext/internal/buildinfo"
	"tinytext/tinytext"
)

// Ticks between rendered frames.
const frameIntervalTicks = 33

// DefaultDemo runs when Config.Demo is empty.
const DefaultDemo = "pivspi"

type Config struct {
	Demo     string
	Font     string
	DataPath string
}

var ErrUnknownDemo = errors.New("unknown demo")

type factory func(demos.Env) (demos.Demo, error)

var registry = map[string]factory{
	"cycler": func(env demos.Env) (demos.Demo, error) { return cycler.New(env) },
	"hello":  func(env demos.Env) (demos.Demo, error) { return hello.New(env) },
	"pivspi": func(env demos.Env) (demos.Demo, error) { return pivspi.New(env) },
}

// Demos returns the registered demo names, sorted.
func Demos() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type system struct {
	h    hal.HAL
	log  hal.Logger
	demo demos.Demo
	name string

	kbd   <-chan hal.KeyEvent
	ptr   <-chan hal.PointerEvent
	ticks <-chan uint64

	now       uint64
	lastFrame uint64
	rendered  bool
	failed    error
}

// New starts the default demo.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig starts the configured demo and returns the step function the
// hal runner calls once per host frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("app: " + err.Error())
		}
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if cfg.Demo == "" {
		cfg.Demo = DefaultDemo
	}
	if cfg.Font == "" {
		cfg.Font = "cubes"
	}
	mk, ok := registry[cfg.Demo]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownDemo, cfg.Demo, Demos())
	}
	font, ok := tinytext.FontByName(cfg.Font)
	if !ok {
		return nil, fmt.Errorf("unknown font %q (have cubes, strokes)", cfg.Font)
	}

	s := &system{h: h, log: h.Logger(), name: cfg.Demo}
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, errors.New("no framebuffer")
	}

	s.logf("tinytext %s: demo=%s font=%s %dx%d", buildinfo.String(), cfg.Demo, font.Name(), fb.Width(), fb.Height())

	demo, err := mk(demos.Env{FB: fb, Font: font, DataPath: cfg.DataPath, Logf: s.logLine})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cfg.Demo, err)
	}
	s.demo = demo

	if in := h.Input(); in != nil {
		if k := in.Keyboard(); k != nil {
			s.kbd = k.Events()
		}
		if p := in.Pointer(); p != nil {
			s.ptr = p.Events()
		}
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}
	return s, nil
}

// logf logs with the app prefix.
func (s *system) logf(format string, args ...any) {
	s.logLine("app: "+format, args...)
}

// logLine is handed to demos, which add their own prefix.
func (s *system) logLine(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (s *system) step() (err error) {
	if s.failed != nil {
		return s.failed
	}
	defer func() {
		if v := recover(); v != nil {
			s.failed = fmt.Errorf("demo %s panicked: %v", s.name, v)
			s.showPanic(v, debug.Stack())
			err = s.failed
		}
	}()

	s.drainTicks()

	if s.dispatchInput() {
		s.logf("exit")
		s.demo.Close()
		return hal.ErrExit
	}

	s.demo.Step(s.now)

	if s.rendered && s.now-s.lastFrame < frameIntervalTicks {
		return nil
	}
	s.rendered = true
	s.lastFrame = s.now
	return s.demo.Render()
}

// dispatchInput forwards pending input to the demo and reports whether the
// user asked to quit.
func (s *system) dispatchInput() (quit bool) {
	for {
		select {
		case ev := <-s.kbd:
			if ev.Press && (ev.Code == hal.KeyEscape || ev.Rune == 'q') {
				return true
			}
			s.demo.HandleKey(ev)
		case ev := <-s.ptr:
			s.demo.HandlePointer(ev)
		default:
			return false
		}
	}
}

// drainTicks keeps only the newest tick.
func (s *system) drainTicks() {
	for {
		select {
		case seq := <-s.ticks:
			s.now = seq
		default:
			return
		}
	}
}
