// Package tinytext lays out printable ASCII as 3D primitives.
//
// A Font is a fixed table from the 95 printable ASCII code points to glyphs.
// A glyph is an ordered list of primitives: unit cells on an 8-row grid (the
// Cubes font) or straight strokes in a unit box (the Strokes font).
//
// Font.Layout walks a string, looks each rune up and transforms the glyph's
// primitives into world space around a cursor that advances once per rune,
// whether or not the rune has a glyph:
//
//	res := tinytext.Cubes.Layout(tinytext.Request{
//		Text:        "Hello!",
//		Scale:       quarkgl.Splat(0.2),
//		Orientation: quarkgl.QuatIdentity(),
//		Advance:     quarkgl.V3(1.5, 0, 0),
//		Color:       quarkgl.RGB(0xFF, 0x80, 0),
//	})
//
// Runes outside ' '..'~' and code points without a glyph are skipped silently
// and still consume one advance. Fonts are immutable and safe for concurrent
// use; Layout is a pure function of the font and the request.
package tinytext
