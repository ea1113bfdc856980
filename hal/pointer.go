package hal

type hostPointer struct {
	ch chan PointerEvent
	tr pointerTracker
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// pointerTracker turns sampled button/cursor state into events.
type pointerTracker struct {
	down   bool
	lx, ly int
}

// sample reports the state seen in one frame and returns the events it
// implies, appended to dst.
func (t *pointerTracker) sample(dst []PointerEvent, x, y int, pressed bool, wheelY float64) []PointerEvent {
	if wheelY != 0 {
		dst = append(dst, PointerEvent{Kind: PointerWheel, X: x, Y: y, DY: float32(wheelY)})
	}
	switch {
	case pressed && !t.down:
		dst = append(dst, PointerEvent{Kind: PointerPress, X: x, Y: y})
	case pressed && t.down && (x != t.lx || y != t.ly):
		dst = append(dst, PointerEvent{
			Kind: PointerDrag, X: x, Y: y,
			DX: float32(x - t.lx), DY: float32(y - t.ly),
		})
	case !pressed && t.down:
		dst = append(dst, PointerEvent{Kind: PointerRelease, X: x, Y: y})
	}
	t.down = pressed
	t.lx, t.ly = x, y
	return dst
}
