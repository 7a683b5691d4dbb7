package console

// dirtyTracker retains the previously rendered snapshot of a grid and
// reports which cell indices changed since the last mesh update.
// The all-dirty state is the sentinel for "rebuild everything": set on
// first use, and every frame when tracking is disabled.
//
// The snapshot advances in clear, not update, so a failed mesh push
// leaves the changed cells dirty for the next frame.
type dirtyTracker struct {
	previous []TerminalGlyph
	pending  []TerminalGlyph
	dirty    []int
	allDirty bool
	disabled bool
}

func newDirtyTracker(disabled bool) *dirtyTracker {
	return &dirtyTracker{
		disabled: disabled,
		allDirty: true,
	}
}

// update diffs the grid against the retained snapshot and holds the grid
// for the snapshot commit in clear. The grid must stay unmutated until
// then; the frame contract (draw, update mesh, clear) guarantees it.
func (d *dirtyTracker) update(terminal []TerminalGlyph) {
	d.pending = terminal
	if d.disabled || d.previous == nil {
		d.allDirty = true
		return
	}
	d.dirty = d.dirty[:0]
	for i, cell := range terminal {
		if cell != d.previous[i] {
			d.dirty = append(d.dirty, i)
		}
	}
}

// clear commits the snapshot and resets dirty state after a successful
// mesh update.
func (d *dirtyTracker) clear() {
	if d.pending != nil {
		if d.previous == nil {
			d.previous = make([]TerminalGlyph, len(d.pending))
		}
		copy(d.previous, d.pending)
		d.pending = nil
	}
	d.dirty = d.dirty[:0]
	d.allDirty = false
}
