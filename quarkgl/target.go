package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
)

// RGB565Target renders into a little-endian RGB565 pixel buffer.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGB565Target wraps an existing buffer. It returns nil if the layout
// cannot hold w*h pixels.
func NewRGB565Target(buf []byte, stride, w, h int) *RGB565Target {
	if w <= 0 || h <= 0 || stride < w*2 || len(buf) < stride*(h-1)+w*2 {
		return nil
	}
	return &RGB565Target{Buf: buf, Stride: stride, W: w, H: h}
}

func (t *RGB565Target) Size() (w, h int) {
	if t == nil {
		return 0, 0
	}
	return t.W, t.H
}

func (t *RGB565Target) Clear(c Color) {
	if !t.valid() {
		return
	}
	p := RGB565(c)
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < t.H; y++ {
		row := t.Buf[y*t.Stride : y*t.Stride+t.W*2]
		for i := 0; i+1 < len(row); i += 2 {
			row[i] = lo
			row[i+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	p := RGB565(c)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// At reads back a pixel, expanding it to 8-bit channels.
func (t *RGB565Target) At(x, y int) Color {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	off := y*t.Stride + x*2
	p := uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
	return Color{
		R: uint8(((p >> 11) & 0x1F) * 255 / 31),
		G: uint8(((p >> 5) & 0x3F) * 255 / 63),
		B: uint8((p & 0x1F) * 255 / 31),
		A: 0xFF,
	}
}

func (t *RGB565Target) valid() bool {
	return t != nil && t.W > 0 && t.H > 0 && t.Stride >= t.W*2 && len(t.Buf) >= t.Stride*(t.H-1)+t.W*2
}

// RGB565 packs c as rrrrrggggggbbbbb.
func RGB565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
