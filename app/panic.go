package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"tinytext/internal/hud"
	"tinytext/tinytext"
	"tinytext/tinytext/hudfont"
)

// showPanic logs a demo panic and paints it over the framebuffer.
func (s *system) showPanic(v any, stack []byte) {
	lines := []string{
		"TinyText panic:",
		fmt.Sprintf("demo: %s", s.name),
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	for _, line := range lines {
		s.logLine("%s", line)
	}

	d := s.h.Display()
	if d == nil {
		return
	}
	fb := d.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	w := hud.New(fb, hudfont.New(tinytext.Cubes, 1))
	if w == nil {
		_ = fb.Present()
		return
	}
	cols := max(fb.Width()/w.Face().Advance(), 1)
	fg := color.RGBA{A: 0xFF}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+w.LineHeight() > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			w.Text(0, y, chunk, fg)
			y += w.LineHeight()
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if utf8.RuneCountInString(s) <= n {
		return s, ""
	}
	i := 0
	for count := 0; count < n && i < len(s); count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
