package console

// Feature selects console behavior at initialization (bitmask).
type Feature uint8

const (
	// FeatureWithoutBackground selects the glyph-only backend: one quad
	// per cell, background cells rely on alpha blending.
	FeatureWithoutBackground Feature = 1 << iota

	// FeatureNoDirtyOptimization forces a full mesh rebuild every frame
	// instead of patching changed cells.
	FeatureNoDirtyOptimization
)

// Has returns true if flag is set.
func (f Feature) Has(flag Feature) bool {
	return f&flag != 0
}
