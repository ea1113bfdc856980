// Package textrender turns TinyText placements into quarkgl scene meshes.
package textrender

import (
	"tinytext/quarkgl"
	"tinytext/tinytext"
)

// Batch owns the scene meshes of one piece of text. It is not safe for
// concurrent use; the scene it writes to is owned by a single task.
type Batch struct {
	scene *quarkgl.Scene
	ids   []int

	dropped int
}

// NewBatch returns an empty batch that spawns into scene.
func NewBatch(scene *quarkgl.Scene) *Batch {
	return &Batch{scene: scene}
}

// Spawn adds one mesh per placement and returns how many were created. When
// the scene runs out of slots the remaining placements are counted in
// Dropped and skipped.
func (b *Batch) Spawn(placements []tinytext.Placement) int {
	if b == nil || b.scene == nil {
		return 0
	}
	n := 0
	for i := range placements {
		id := b.scene.AddMesh(meshFor(&placements[i]))
		if id < 0 {
			b.dropped += len(placements) - i
			break
		}
		b.ids = append(b.ids, id)
		n++
	}
	return n
}

// Release removes every mesh the batch spawned.
func (b *Batch) Release() {
	if b == nil {
		return
	}
	for _, id := range b.ids {
		b.scene.RemoveMesh(id)
	}
	b.ids = b.ids[:0]
}

// Replace releases the current text and spawns placements in its place.
func (b *Batch) Replace(placements []tinytext.Placement) int {
	b.Release()
	return b.Spawn(placements)
}

// Len returns the number of live meshes owned by the batch.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ids)
}

// Dropped returns the total number of placements that found no free slot.
func (b *Batch) Dropped() int {
	if b == nil {
		return 0
	}
	return b.dropped
}

func meshFor(p *tinytext.Placement) quarkgl.Mesh {
	m := quarkgl.UnitCube()
	if p.Shape == tinytext.ShapeSegment {
		m = quarkgl.UnitLine()
	}
	m.Transform = p.Model()
	m.Material = quarkgl.Material{BaseColor: p.Color, Opacity: p.Color.A}
	return m
}
