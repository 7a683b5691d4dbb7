package console

import (
	"github.com/lixenwraith/glyphmesh/engine"
	"github.com/lixenwraith/glyphmesh/font"
	"github.com/lixenwraith/glyphmesh/mesh"
)

// backendNoBackground renders one quad per cell: the glyph alone, colored
// with the cell foreground. Cells with no glyph coverage stay transparent
// and the engine's alpha blending shows whatever draws below. Half the
// buffer of the with-background variant.
//
// Cell idx owns vertices idx*4..idx*4+3 and indices idx*6..idx*6+5.
type backendNoBackground struct {
	tracker *dirtyTracker
	mesh    *mesh.Mesh
	handle  mesh.Handle
	font    font.Store
	width   int
	height  int
	baseZ   float32
}

func newBackendNoBackground(terminal []TerminalGlyph, meshes mesh.Store, fnt font.Store, width, height int, baseZ float32, noDirtyOpt bool) *backendNoBackground {
	cells := width * height
	b := &backendNoBackground{
		tracker: newDirtyTracker(noDirtyOpt),
		mesh:    mesh.New(cells*4, cells*6),
		font:    fnt,
		width:   width,
		height:  height,
		baseZ:   baseZ,
	}
	b.rebuild(terminal)
	b.handle = meshes.Add(b.mesh)
	logger().Info("console backend registered",
		"variant", "no_background",
		"cells", cells,
		"vertices", b.mesh.VertexCount(),
		"handle", uint64(b.handle))
	return b
}

func (b *backendNoBackground) buildCell(idx int, cell TerminalGlyph) {
	x0, y0, x1, y1 := cellRect(idx, b.width, b.height, b.font.HeightPixels)
	u0, v0, u1, v1 := b.font.GlyphUV(cell.Glyph)
	writeQuad(b.mesh, idx*4, x0, y0, x1, y1, b.baseZ, cell.Foreground.Array(), u0, v0, u1, v1)
}

func (b *backendNoBackground) rebuild(terminal []TerminalGlyph) {
	for idx, cell := range terminal {
		b.buildCell(idx, cell)
		b.mesh.SetQuadIndices(idx*6, uint32(idx*4))
	}
}

func (b *backendNoBackground) UpdateDirty(terminal []TerminalGlyph) {
	b.tracker.update(terminal)
}

func (b *backendNoBackground) UpdateMesh(terminal []TerminalGlyph, meshes mesh.Store) error {
	switch {
	case b.tracker.allDirty:
		b.rebuild(terminal)
		logger().Debug("console mesh rebuilt", "cells", len(terminal))
	case len(b.tracker.dirty) == 0:
		return nil
	default:
		for _, idx := range b.tracker.dirty {
			b.buildCell(idx, terminal[idx])
		}
		logger().Debug("console mesh patched", "cells", len(b.tracker.dirty))
	}
	return meshes.Replace(b.handle, b.mesh)
}

func (b *backendNoBackground) ClearDirty() {
	b.tracker.clear()
}

func (b *backendNoBackground) Spawn(commands *engine.Commands, material engine.MaterialHandle, z int) {
	commands.SpawnMesh(b.handle, material, z)
}
