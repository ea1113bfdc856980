package tinytext

import "tinytext/quarkgl"

// Strokes is a 16-segment display font in a unit box (x right, y up, both
// 0..1), plus two short dot strokes. '@' has no 16-segment rendition and is
// left undefined.
var Strokes = newStrokeFont("strokes", strokeMasks)

// Segments of the display, in glyph emission order.
const (
	segA1 uint32 = 1 << iota // top, left half
	segA2                    // top, right half
	segB                     // right, upper
	segC                     // right, lower
	segD2                    // bottom, right half
	segD1                    // bottom, left half
	segE                     // left, lower
	segF                     // left, upper
	segG1                    // middle, left half
	segG2                    // middle, right half
	segH                     // diagonal, top left to centre
	segI                     // vertical, top to centre
	segJ                     // diagonal, top right to centre
	segK                     // diagonal, centre to bottom right
	segL                     // vertical, centre to bottom
	segM                     // diagonal, centre to bottom left
	segDP                    // dot on the baseline
	segDU                    // dot above the middle

	numSegments = iota

	segA = segA1 | segA2
	segD = segD1 | segD2
	segG = segG1 | segG2
)

var segmentEnds = [numSegments][4]float32{
	{0, 1, 0.5, 1},         // A1
	{0.5, 1, 1, 1},         // A2
	{1, 1, 1, 0.5},         // B
	{1, 0.5, 1, 0},         // C
	{1, 0, 0.5, 0},         // D2
	{0.5, 0, 0, 0},         // D1
	{0, 0, 0, 0.5},         // E
	{0, 0.5, 0, 1},         // F
	{0, 0.5, 0.5, 0.5},     // G1
	{0.5, 0.5, 1, 0.5},     // G2
	{0, 1, 0.5, 0.5},       // H
	{0.5, 1, 0.5, 0.5},     // I
	{1, 1, 0.5, 0.5},       // J
	{0.5, 0.5, 1, 0},       // K
	{0.5, 0.5, 0.5, 0},     // L
	{0.5, 0.5, 0, 0},       // M
	{0.5, 0, 0.5, 0.08},    // DP
	{0.5, 0.66, 0.5, 0.74}, // DU
}

var strokeMasks = map[rune]uint32{
	' ':  0,
	'!':  segI | segDP,
	'"':  segF | segI,
	'#':  segB | segC | segD | segG | segI | segL,
	'$':  segA | segF | segG | segC | segD | segI | segL,
	'%':  segA1 | segF | segG1 | segI | segJ | segM | segG2 | segC | segD2 | segL,
	'&':  segA1 | segH | segI | segG1 | segE | segD | segK,
	'\'': segI,
	'(':  segJ | segK,
	')':  segH | segM,
	'*':  segG | segH | segI | segJ | segK | segL | segM,
	'+':  segG | segI | segL,
	',':  segM,
	'-':  segG,
	'.':  segDP,
	'/':  segJ | segM,
	'0':  segA | segB | segC | segD | segE | segF | segJ | segM,
	'1':  segB | segC | segJ,
	'2':  segA | segB | segG | segE | segD,
	'3':  segA | segB | segG2 | segC | segD,
	'4':  segF | segG | segB | segC,
	'5':  segA | segF | segG | segC | segD,
	'6':  segA | segF | segG | segE | segC | segD,
	'7':  segA | segB | segC,
	'8':  segA | segB | segC | segD | segE | segF | segG,
	'9':  segA | segB | segC | segD | segF | segG,
	':':  segDP | segDU,
	';':  segDU | segM,
	'<':  segJ | segK,
	'=':  segG | segD,
	'>':  segH | segM,
	'?':  segA | segB | segG2 | segL,
	'A':  segA | segB | segC | segE | segF | segG,
	'B':  segA | segB | segC | segD | segG2 | segI | segL,
	'C':  segA | segD | segE | segF,
	'D':  segA | segB | segC | segD | segI | segL,
	'E':  segA | segD | segE | segF | segG1,
	'F':  segA | segE | segF | segG1,
	'G':  segA | segC | segD | segE | segF | segG2,
	'H':  segB | segC | segE | segF | segG,
	'I':  segA | segD | segI | segL,
	'J':  segB | segC | segD | segE,
	'K':  segE | segF | segG1 | segJ | segK,
	'L':  segD | segE | segF,
	'M':  segB | segC | segE | segF | segH | segJ,
	'N':  segB | segC | segE | segF | segH | segK,
	'O':  segA | segB | segC | segD | segE | segF,
	'P':  segA | segB | segE | segF | segG,
	'Q':  segA | segB | segC | segD | segE | segF | segK,
	'R':  segA | segB | segE | segF | segG | segK,
	'S':  segA | segC | segD | segF | segG,
	'T':  segA | segI | segL,
	'U':  segB | segC | segD | segE | segF,
	'V':  segE | segF | segJ | segM,
	'W':  segB | segC | segE | segF | segK | segM,
	'X':  segH | segJ | segK | segM,
	'Y':  segH | segJ | segL,
	'Z':  segA | segD | segJ | segM,
	'[':  segA2 | segD2 | segI | segL,
	'\\': segH | segK,
	']':  segA1 | segD1 | segI | segL,
	'^':  segK | segM,
	'_':  segD,
	'`':  segH,
	'a':  segD1 | segE | segG1 | segL,
	'b':  segD1 | segE | segF | segG1 | segL,
	'c':  segD1 | segE | segG1,
	'd':  segB | segC | segD2 | segG2 | segL,
	'e':  segD1 | segE | segG1 | segM,
	'f':  segA2 | segG | segI | segL,
	'g':  segA1 | segF | segG1 | segI | segL | segD1,
	'h':  segE | segF | segG1 | segL,
	'i':  segL | segDU,
	'j':  segD1 | segL | segDU,
	'k':  segI | segJ | segK | segL,
	'l':  segE | segF,
	'm':  segC | segE | segG | segL,
	'n':  segE | segG1 | segL,
	'o':  segD1 | segE | segG1 | segL,
	'p':  segA1 | segE | segF | segG1 | segI,
	'q':  segA1 | segF | segG1 | segI | segL,
	'r':  segE | segG1,
	's':  segG1 | segK | segD2,
	't':  segE | segF | segG1 | segD1,
	'u':  segD1 | segE | segL,
	'v':  segE | segM,
	'w':  segC | segE | segK | segM,
	'x':  segH | segJ | segK | segM,
	'y':  segB | segC | segD | segG2 | segI,
	'z':  segD1 | segG1 | segM,
	'{':  segA2 | segD2 | segG1 | segI | segL,
	'|':  segI | segL,
	'}':  segA1 | segD1 | segG2 | segI | segL,
	'~':  segE | segG1 | segI | segA2,
}

func newStrokeFont(name string, masks map[rune]uint32) *Font {
	table := make(map[rune]Glyph, len(masks))
	for r, mask := range masks {
		table[r] = strokeGlyph(mask)
	}
	return newFont(name, ShapeSegment, 1, quarkgl.V3(4, 7, 1), table)
}

func strokeGlyph(mask uint32) Glyph {
	g := Glyph{}
	for i := 0; i < numSegments; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		e := segmentEnds[i]
		g = append(g, Segment(e[0], e[1], e[2], e[3]))
	}
	return g
}
