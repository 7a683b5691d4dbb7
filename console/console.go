// Package console renders a fixed-size grid of styled glyph cells as mesh
// geometry for a host rendering engine. Drawing primitives mutate the
// grid; once per frame the active backend diffs the grid against its last
// rendered snapshot and patches only the changed cells' vertices, or
// rebuilds the whole buffer under the all-dirty sentinel.
package console

import (
	"fmt"

	"github.com/lixenwraith/glyphmesh/engine"
	"github.com/lixenwraith/glyphmesh/font"
	"github.com/lixenwraith/glyphmesh/mesh"
)

// Console owns one glyph grid and, after Initialize, one mesh backend.
// Drawing primitives are legal before initialization (they only touch the
// grid); Update and Spawn are not.
type Console struct {
	fontIndex int
	width     int
	height    int
	terminal  []TerminalGlyph
	backEnd   ConsoleBackend
}

// New creates a console grid of width x height blank cells. The grid size
// is fixed for the console's lifetime.
func New(fontIndex, width, height int) *Console {
	terminal := make([]TerminalGlyph, width*height)
	if len(terminal) > 0 {
		// First cell, then exponential copy
		terminal[0] = DefaultGlyph()
		for filled := 1; filled < len(terminal); filled *= 2 {
			copy(terminal[filled:], terminal[:filled])
		}
	}
	return &Console{
		fontIndex: fontIndex,
		width:     width,
		height:    height,
		terminal:  terminal,
	}
}

// Width returns the grid width in cells.
func (c *Console) Width() int { return c.width }

// Height returns the grid height in cells.
func (c *Console) Height() int { return c.height }

// FontIndex returns the font slot this console was created for.
func (c *Console) FontIndex() int { return c.fontIndex }

// Cells exposes the grid's backing slice in storage order (row 0 is the
// logical top row). Zero-copy export for preview surfaces, worth the
// coupling; callers must not resize it.
func (c *Console) Cells() []TerminalGlyph { return c.terminal }

// at maps logical coordinates (origin bottom-left) to the storage index.
// Callers validate bounds first.
func (c *Console) at(x, y int) int {
	return (c.height-1-y)*c.width + x
}

func (c *Console) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Glyph returns a copy of the cell at (x, y).
func (c *Console) Glyph(x, y int) (TerminalGlyph, error) {
	if !c.inBounds(x, y) {
		return TerminalGlyph{}, fmt.Errorf("glyph at (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return c.terminal[c.at(x, y)], nil
}

// Initialize builds the mesh backend selected by features, performs the
// initial full geometry build and registers the mesh with the store.
// Must be called exactly once before any per-frame Update.
func (c *Console) Initialize(fonts []font.Store, meshes mesh.Store, baseZ float32, features Feature) error {
	if c.backEnd != nil {
		return ErrAlreadyInitialized
	}
	if c.fontIndex < 0 || c.fontIndex >= len(fonts) {
		return fmt.Errorf("console: no font at index %d (%d available)", c.fontIndex, len(fonts))
	}
	fnt := fonts[c.fontIndex]
	if err := fnt.Validate(); err != nil {
		return err
	}
	c.backEnd = selectBackend(c.terminal, meshes, fnt, c.width, c.height, baseZ, features)
	return nil
}

// Update runs the per-frame sequence: recompute the dirty set, patch or
// rebuild the mesh, clear the dirty set.
func (c *Console) Update(meshes mesh.Store) error {
	if c.backEnd == nil {
		return ErrNotInitialized
	}
	c.backEnd.UpdateDirty(c.terminal)
	if err := c.backEnd.UpdateMesh(c.terminal, meshes); err != nil {
		return err
	}
	c.backEnd.ClearDirty()
	return nil
}

// Spawn queues a drawable entity referencing the console's registered
// mesh, rendered with the given material at depth layer z.
func (c *Console) Spawn(commands *engine.Commands, material engine.MaterialHandle, z int) error {
	if c.backEnd == nil {
		return ErrNotInitialized
	}
	c.backEnd.Spawn(commands, material, z)
	return nil
}
