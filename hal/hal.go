package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrExit is returned by an app step to end the run cleanly.
var ErrExit = errors.New("exit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event. Text input arrives as Rune with KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind tags pointer events.
type PointerKind uint8

const (
	PointerPress PointerKind = iota + 1
	PointerRelease
	// PointerDrag reports motion while the primary button is held.
	PointerDrag
	PointerWheel
)

// PointerEvent is a mouse or touch event in framebuffer pixels. DX/DY carry
// drag motion or wheel steps.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	DX, DY float32
}

// Pointer provides pointer events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time provides a base tick stream.
//
// Host ticks are one millisecond; higher-level timers live in the app.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the demos and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
