package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// expandRGB565 converts little-endian RGB565 rows into dst.
func expandRGB565(dst *image.RGBA, src []byte, stride int) {
	b := dst.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := src[min(y*stride, len(src)):]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx() && 2*x+1 < len(row); x++ {
			r, g, bb := rgb888From565(uint16(row[2*x]) | uint16(row[2*x+1])<<8)
			j := 4 * x
			out[j+0] = r
			out[j+1] = g
			out[j+2] = bb
			out[j+3] = 0xFF
		}
	}
}
