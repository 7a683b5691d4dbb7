// Package font carries the per-font atlas metadata the console core needs
// to place glyph texture coordinates. Atlas layout and texture upload are
// the host engine's job; this package only does the arithmetic.
package font

import "fmt"

// Store describes one font atlas: a fixed grid of glyph images addressed
// by code page position, left to right, top to bottom.
type Store struct {
	CharsPerRow  uint16
	Rows         uint16
	HeightPixels float32
}

// Validate reports metadata a glyph atlas cannot have.
func (s Store) Validate() error {
	if s.CharsPerRow == 0 || s.Rows == 0 {
		return fmt.Errorf("font: atlas grid %dx%d has no glyphs", s.CharsPerRow, s.Rows)
	}
	if s.HeightPixels <= 0 {
		return fmt.Errorf("font: glyph height %v is not positive", s.HeightPixels)
	}
	return nil
}

// GlyphCount returns the number of glyph slots in the atlas.
func (s Store) GlyphCount() int {
	return int(s.CharsPerRow) * int(s.Rows)
}

// GlyphUV returns the texture rectangle for a glyph code.
// u0,v0 is the top-left corner in atlas space, u1,v1 the bottom-right.
// Codes past the last atlas slot wrap; the atlas grid is the caller's
// contract with its font asset. Wrap arithmetic runs in int: a 256x256
// atlas holds 65536 glyphs, one past the uint16 range.
func (s Store) GlyphUV(code uint16) (u0, v0, u1, v1 float32) {
	c := int(code) % s.GlyphCount()
	row := c / int(s.CharsPerRow)
	col := c % int(s.CharsPerRow)
	u0 = float32(col) / float32(s.CharsPerRow)
	v0 = float32(row) / float32(s.Rows)
	u1 = float32(col+1) / float32(s.CharsPerRow)
	v1 = float32(row+1) / float32(s.Rows)
	return u0, v0, u1, v1
}
