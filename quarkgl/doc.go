// Package quarkgl is a small, predictable software 3D engine.
//
// It draws meshes into a caller-provided Target: text cubes and strokes, pie
// slices, ground planes. It is not a game engine and does not provide a GPU
// abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame output.
//
// Meshes carry triangle lists, line lists, or both. Triangles are filled (or
// outlined in wireframe mode); lines are always drawn as 1px depth-tested lines.
//
// Math is float32 throughout. Orientation is expressed with unit quaternions
// (Quat) and converted to column-major Mat4 when building object transforms.
package quarkgl
