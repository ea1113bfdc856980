package quarkgl

// Shared geometry for the shape builders. Meshes reference these slices
// directly, so they must never be modified.
var (
	unitCubeVerts = []Vertex{
		{Pos: V3(-0.5, -0.5, -0.5)},
		{Pos: V3(0.5, -0.5, -0.5)},
		{Pos: V3(0.5, 0.5, -0.5)},
		{Pos: V3(-0.5, 0.5, -0.5)},
		{Pos: V3(-0.5, -0.5, 0.5)},
		{Pos: V3(0.5, -0.5, 0.5)},
		{Pos: V3(0.5, 0.5, 0.5)},
		{Pos: V3(-0.5, 0.5, 0.5)},
	}
	// Counter-clockwise when seen from outside.
	unitCubeIndices = []uint16{
		4, 5, 6, 4, 6, 7, // +Z
		0, 3, 2, 0, 2, 1, // -Z
		1, 2, 6, 1, 6, 5, // +X
		0, 4, 7, 0, 7, 3, // -X
		3, 7, 6, 3, 6, 2, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}

	unitLineVerts = []Vertex{
		{Pos: V3(0, 0, 0)},
		{Pos: V3(1, 0, 0)},
	}
	unitLineIndices = []uint16{0, 1}
)

// UnitCube returns an axis-aligned cube of edge 1 centred on the origin.
func UnitCube() Mesh {
	return Mesh{Vertices: unitCubeVerts, Indices: unitCubeIndices}
}

// UnitLine returns the line from (0,0,0) to (1,0,0).
func UnitLine() Mesh {
	return Mesh{Vertices: unitLineVerts, Lines: unitLineIndices}
}

// Plane returns a square in the XZ plane facing +Y.
func Plane(half Scalar) Mesh {
	return Mesh{
		Vertices: []Vertex{
			{Pos: V3(-half, 0, -half)},
			{Pos: V3(half, 0, -half)},
			{Pos: V3(half, 0, half)},
			{Pos: V3(-half, 0, half)},
		},
		Indices: []uint16{0, 3, 2, 0, 2, 1},
	}
}
