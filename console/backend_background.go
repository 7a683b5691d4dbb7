package console

import (
	"github.com/lixenwraith/glyphmesh/engine"
	"github.com/lixenwraith/glyphmesh/font"
	"github.com/lixenwraith/glyphmesh/mesh"
)

// backendWithBackground renders two quads per cell: an opaque background
// quad colored with the cell background, and a glyph quad textured from
// the font atlas layered slightly above it.
//
// Buffer layout is fixed at construction: cell idx owns vertices
// idx*8..idx*8+7 (background quad first, glyph quad second) and indices
// idx*12..idx*12+11. The mapping never changes, which is what makes
// in-place patching of dirty cells safe.
type backendWithBackground struct {
	tracker *dirtyTracker
	mesh    *mesh.Mesh
	handle  mesh.Handle
	font    font.Store
	width   int
	height  int
	baseZ   float32
}

func newBackendWithBackground(terminal []TerminalGlyph, meshes mesh.Store, fnt font.Store, width, height int, baseZ float32, noDirtyOpt bool) *backendWithBackground {
	cells := width * height
	b := &backendWithBackground{
		tracker: newDirtyTracker(noDirtyOpt),
		mesh:    mesh.New(cells*8, cells*12),
		font:    fnt,
		width:   width,
		height:  height,
		baseZ:   baseZ,
	}
	b.rebuild(terminal)
	b.handle = meshes.Add(b.mesh)
	logger().Info("console backend registered",
		"variant", "with_background",
		"cells", cells,
		"vertices", b.mesh.VertexCount(),
		"handle", uint64(b.handle))
	return b
}

// buildCell writes both quads of one cell into the owned buffer.
func (b *backendWithBackground) buildCell(idx int, cell TerminalGlyph) {
	x0, y0, x1, y1 := cellRect(idx, b.width, b.height, b.font.HeightPixels)
	vbase := idx * 8

	u0, v0, u1, v1 := b.font.GlyphUV(solidGlyph)
	writeQuad(b.mesh, vbase, x0, y0, x1, y1, b.baseZ, cell.Background.Array(), u0, v0, u1, v1)

	u0, v0, u1, v1 = b.font.GlyphUV(cell.Glyph)
	writeQuad(b.mesh, vbase+4, x0, y0, x1, y1, b.baseZ+glyphZOffset, cell.Foreground.Array(), u0, v0, u1, v1)
}

// rebuild regenerates every vertex and index from the grid.
func (b *backendWithBackground) rebuild(terminal []TerminalGlyph) {
	for idx, cell := range terminal {
		b.buildCell(idx, cell)
		b.mesh.SetQuadIndices(idx*12, uint32(idx*8))
		b.mesh.SetQuadIndices(idx*12+6, uint32(idx*8+4))
	}
}

func (b *backendWithBackground) UpdateDirty(terminal []TerminalGlyph) {
	b.tracker.update(terminal)
}

func (b *backendWithBackground) UpdateMesh(terminal []TerminalGlyph, meshes mesh.Store) error {
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

func (b *backendWithBackground) ClearDirty() {
	b.tracker.clear()
}

func (b *backendWithBackground) Spawn(commands *engine.Commands, material engine.MaterialHandle, z int) {
	commands.SpawnMesh(b.handle, material, z)
}
