package console

import (
	"github.com/lixenwraith/glyphmesh/engine"
	"github.com/lixenwraith/glyphmesh/font"
	"github.com/lixenwraith/glyphmesh/mesh"
)

// ConsoleBackend owns the mesh geometry for one console grid and keeps it
// in sync with the grid's cells. Two implementations exist: one rendering
// an opaque background quad behind every glyph, one rendering glyphs only.
type ConsoleBackend interface {
	// UpdateDirty recomputes the set of cells changed since the last
	// mesh update.
	UpdateDirty(terminal []TerminalGlyph)

	// UpdateMesh patches the geometry for dirty cells, or rebuilds it
	// fully under the all-dirty sentinel, and pushes the buffer to the
	// mesh store.
	UpdateMesh(terminal []TerminalGlyph, meshes mesh.Store) error

	// ClearDirty resets dirty tracking for the next frame.
	ClearDirty()

	// Spawn queues a drawable entity referencing the registered mesh.
	Spawn(commands *engine.Commands, material engine.MaterialHandle, z int)
}

// glyphZOffset lifts the glyph quad above its background quad so the
// textured glyph alpha-blends over the solid fill.
const glyphZOffset = 0.5

// solidGlyph is the full-block atlas slot (CP437 219). The background
// quad samples it so the shared font-atlas material gives solid coverage.
const solidGlyph = 219

// writeQuad fills four vertex slots starting at vbase with one axis-aligned
// quad: bottom-left, bottom-right, top-right, top-left. v0 is the top edge
// of the texture rectangle (atlas rows grow downward, positions grow up).
func writeQuad(m *mesh.Mesh, vbase int, x0, y0, x1, y1, z float32, color [4]float32, u0, v0, u1, v1 float32) {
	m.SetVertex(vbase, x0, y0, z, color, u0, v1)
	m.SetVertex(vbase+1, x1, y0, z, color, u1, v1)
	m.SetVertex(vbase+2, x1, y1, z, color, u1, v0)
	m.SetVertex(vbase+3, x0, y1, z, color, u0, v0)
}

// cellRect returns the pixel-space rectangle of the cell at storage index
// idx. Storage row 0 is the logical top row; positions use a bottom-left
// origin, so the row is flipped back.
func cellRect(idx, width, height int, step float32) (x0, y0, x1, y1 float32) {
	x := idx % width
	y := height - 1 - idx/width
	x0 = float32(x) * step
	y0 = float32(y) * step
	return x0, y0, x0 + step, y0 + step
}

// selectBackend builds the backend variant for the feature set.
func selectBackend(terminal []TerminalGlyph, meshes mesh.Store, fnt font.Store, width, height int, baseZ float32, features Feature) ConsoleBackend {
	noDirtyOpt := features.Has(FeatureNoDirtyOptimization)
	if features.Has(FeatureWithoutBackground) {
		return newBackendNoBackground(terminal, meshes, fnt, width, height, baseZ, noDirtyOpt)
	}
	return newBackendWithBackground(terminal, meshes, fnt, width, height, baseZ, noDirtyOpt)
}
