package quarkgl

import "math"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGBf builds an opaque color from 0..1 channels.
func RGBf(r, g, b float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: 0xFF}
}

// HSL builds an opaque color from hue (degrees), saturation and lightness (0..1).
func HSL(h, s, l float32) Color {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	s = Clamp01(s)
	l = Clamp01(l)

	c := (1 - absF32(2*l-1)) * s
	hp := h / 60
	x := c * (1 - absF32(float32(math.Mod(float64(hp), 2))-1))
	var r, g, b float32
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return RGBf(r+m, g+m, b+m)
}

func (c Color) MulScalar(s Scalar) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func unitToByte(v float32) uint8 {
	return uint8(Clamp01(v)*255 + 0.5)
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
