package textrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinytext/quarkgl"
	"tinytext/tinytext"
)

func layout(f *tinytext.Font, text string) []tinytext.Placement {
	return f.Layout(f.Simple(text, quarkgl.V3(0, 0, 0), quarkgl.RGB(0x20, 0x80, 0xFF))).Placements
}

func TestSpawnAndRelease(t *testing.T) {
	scene := quarkgl.CreateScene(256)
	b := NewBatch(scene)

	ps := layout(tinytext.Cubes, "Hi!")
	require.NotEmpty(t, ps)

	assert.Equal(t, len(ps), b.Spawn(ps))
	assert.Equal(t, len(ps), b.Len())
	assert.Equal(t, len(ps), scene.Len())

	b.Release()
	assert.Zero(t, b.Len())
	assert.Zero(t, scene.Len())

	b.Release()
	assert.Zero(t, scene.Len())
}

func TestReplaceDoesNotAccumulate(t *testing.T) {
	scene := quarkgl.CreateScene(512)
	keep := scene.AddMesh(quarkgl.Plane(10))
	require.GreaterOrEqual(t, keep, 0)

	b := NewBatch(scene)
	for _, text := range []string{"A", "Char: 'A'", "B", "Progress: 100%"} {
		ps := layout(tinytext.Cubes, text)
		b.Replace(ps)
		assert.Equal(t, len(ps)+1, scene.Len(), text)
	}
	assert.Zero(t, b.Dropped())
}

func TestSpawnStopsWhenSceneIsFull(t *testing.T) {
	scene := quarkgl.CreateScene(10)
	b := NewBatch(scene)

	ps := layout(tinytext.Cubes, "WW")
	require.Greater(t, len(ps), 10)

	assert.Equal(t, 10, b.Spawn(ps))
	assert.Equal(t, len(ps)-10, b.Dropped())
	assert.Equal(t, 10, scene.Len())

	assert.Zero(t, b.Spawn(ps[:1]))
	assert.Equal(t, len(ps)-9, b.Dropped())
}

func TestStrokePlacementsBecomeLines(t *testing.T) {
	scene := quarkgl.CreateScene(64)
	b := NewBatch(scene)
	ps := layout(tinytext.Strokes, "T")
	require.Equal(t, len(ps), b.Spawn(ps))

	m := meshFor(&ps[0])
	assert.Empty(t, m.Indices)
	assert.Len(t, m.Lines, 2)
	assert.Equal(t, ps[0].Model(), m.Transform)
	assert.Equal(t, ps[0].Color, m.Material.BaseColor)
}

func TestCellPlacementsBecomeCubes(t *testing.T) {
	ps := layout(tinytext.Cubes, ".")
	require.NotEmpty(t, ps)
	m := meshFor(&ps[0])
	assert.Len(t, m.Vertices, 8)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, uint8(0xFF), m.Material.Opacity)
}

func TestNilBatch(t *testing.T) {
	var b *Batch
	assert.Zero(t, b.Spawn(layout(tinytext.Cubes, "x")))
	assert.Zero(t, b.Len())
	assert.Zero(t, b.Dropped())
	b.Release()
}
