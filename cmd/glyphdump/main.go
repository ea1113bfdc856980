// Command glyphdump prints TinyText glyphs as ASCII art.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"tinytext/tinytext"
)

// Grid covers cube columns 0..7 and rows -2..7.
const (
	gridCols = 8
	gridRows = 10
	baseRow  = 2
)

func main() {
	var (
		fontName = flag.String("font", "cubes", "Font: cubes|strokes.")
		chars    = flag.String("chars", "", "Characters to dump (default: the whole printable range).")
	)
	flag.Parse()

	font, ok := tinytext.FontByName(*fontName)
	if !ok {
		fatalf("unknown font: %s", *fontName)
	}
	w := bufio.NewWriter(os.Stdout)
	if err := dump(w, font, *chars); err != nil {
		fatalf("dump: %v", err)
	}
	if err := w.Flush(); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func dump(w io.Writer, font *tinytext.Font, chars string) error {
	if chars == "" {
		var b strings.Builder
		for r := rune(tinytext.FirstRune); r <= tinytext.LastRune; r++ {
			b.WriteRune(r)
		}
		chars = b.String()
	}
	for _, r := range chars {
		g, ok := font.Lookup(r)
		if !ok {
			if _, err := fmt.Fprintf(w, "%q U+%04X: undefined\n\n", r, r); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%q U+%04X: %d %s(s)\n", r, r, len(g), font.Shape()); err != nil {
			return err
		}
		for _, line := range raster(font, g) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// raster returns the glyph as gridRows lines, top row first.
func raster(font *tinytext.Font, g tinytext.Glyph) []string {
	var grid [gridRows][gridCols]bool
	set := func(col, row int) {
		y := row + baseRow
		if col < 0 || col >= gridCols || y < 0 || y >= gridRows {
			return
		}
		grid[y][col] = true
	}
	u := font.Units()
	for _, p := range g {
		switch p.Shape {
		case tinytext.ShapeCell:
			set(int(p.A.X), int(p.A.Y))
		case tinytext.ShapeSegment:
			// Stroke coordinates are unit fractions of the glyph box.
			x0, y0 := p.A.X*(u.X), p.A.Y*(u.Y)
			x1, y1 := p.B.X*(u.X), p.B.Y*(u.Y)
			n := int(math.Ceil(float64(max(abs(x1-x0), abs(y1-y0))) * 2))
			for i := 0; i <= n; i++ {
				t := float32(0)
				if n > 0 {
					t = float32(i) / float32(n)
				}
				x := x0 + (x1-x0)*t
				y := y0 + (y1-y0)*t
				set(int(math.Round(float64(x))), int(math.Round(float64(y))))
			}
		}
	}
	lines := make([]string, gridRows)
	for i := range lines {
		row := grid[gridRows-1-i]
		b := make([]byte, gridCols)
		for c, on := range row {
			if on {
				b[c] = '#'
			} else {
				b[c] = '.'
			}
		}
		lines[i] = string(b)
	}
	return lines
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
