package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Snapshot returns the framebuffer contents as an RGBA image. Host
// framebuffers yield the last presented frame.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, fmt.Errorf("snapshot: no framebuffer")
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("snapshot: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	var src []byte
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	} else {
		src = fb.Buffer()
	}
	expandRGB565(img, src, fb.StrideBytes())
	return img, nil
}

// WritePNG encodes fb as PNG, upscaled by scale with nearest-neighbour
// sampling so pixels stay crisp.
func WritePNG(w io.Writer, fb Framebuffer, scale int) error {
	img, err := Snapshot(fb)
	if err != nil {
		return err
	}
	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// SavePNG writes fb to path as PNG.
func SavePNG(path string, fb Framebuffer, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	return WritePNG(f, fb, scale)
}
