package main

import (
	"bytes"
	"strings"
	"testing"

	"tinytext/tinytext"
)

func TestRasterCubeDash(t *testing.T) {
	g, ok := tinytext.Cubes.Lookup('-')
	if !ok {
		t.Fatal("'-' undefined")
	}
	lines := raster(tinytext.Cubes, g)
	if len(lines) != gridRows {
		t.Fatalf("got %d lines want %d", len(lines), gridRows)
	}
	for i, line := range lines {
		want := "........"
		if i == 4 {
			want = "#####..."
		}
		if line != want {
			t.Fatalf("line %d = %q want %q", i, line, want)
		}
	}
}

func TestRasterStrokeDash(t *testing.T) {
	g, ok := tinytext.Strokes.Lookup('-')
	if !ok {
		t.Fatal("'-' undefined")
	}
	lines := raster(tinytext.Strokes, g)
	if got := lines[3]; got != "#####..." {
		t.Fatalf("middle row = %q", got)
	}
	lit := strings.Count(strings.Join(lines, ""), "#")
	if lit != 5 {
		t.Fatalf("lit=%d want 5", lit)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, tinytext.Strokes, "-@"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "'-' U+002D: 2 segment(s)") {
		t.Fatalf("missing '-' header in:\n%s", out)
	}
	if !strings.Contains(out, "'@' U+0040: undefined") {
		t.Fatalf("missing '@' line in:\n%s", out)
	}
}

func TestDumpWholeRange(t *testing.T) {
	var buf bytes.Buffer
	if err := dump(&buf, tinytext.Cubes, ""); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), " U+"); n != 95 {
		t.Fatalf("dumped %d glyphs want 95", n)
	}
}
