// Package demotest provides in-memory stand-ins for demo tests.
package demotest

import (
	"fmt"
	"sync"

	"tinytext/hal"
)

// Framebuffer is an RGB565 framebuffer backed by memory.
type Framebuffer struct {
	W, H     int
	Buf      []byte
	Presents int
}

// NewFramebuffer returns a w×h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{W: w, H: h, Buf: make([]byte, w*h*2)}
}

func (f *Framebuffer) Width() int              { return f.W }
func (f *Framebuffer) Height() int             { return f.H }
func (f *Framebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *Framebuffer) StrideBytes() int        { return f.W * 2 }
func (f *Framebuffer) Buffer() []byte          { return f.Buf }
func (f *Framebuffer) Present() error          { f.Presents++; return nil }

func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	px := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	for i := 0; i+1 < len(f.Buf); i += 2 {
		f.Buf[i] = byte(px)
		f.Buf[i+1] = byte(px >> 8)
	}
}

// At returns the RGB565 pixel at (x, y).
func (f *Framebuffer) At(x, y int) uint16 {
	i := y*f.W*2 + x*2
	return uint16(f.Buf[i]) | uint16(f.Buf[i+1])<<8
}

// Lit counts pixels that are not black.
func (f *Framebuffer) Lit() int {
	n := 0
	for i := 0; i+1 < len(f.Buf); i += 2 {
		if f.Buf[i] != 0 || f.Buf[i+1] != 0 {
			n++
		}
	}
	return n
}

// Log collects formatted log lines.
type Log struct {
	mu    sync.Mutex
	Lines []string
}

// Logf appends one line.
func (l *Log) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, fmt.Sprintf(format, args...))
}

var _ hal.Framebuffer = (*Framebuffer)(nil)
