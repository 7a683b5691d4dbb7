package console

import (
	"fmt"

	"github.com/lixenwraith/glyphmesh/cp437"
)

// Cls blanks every cell's glyph to space, leaving colors untouched.
func (c *Console) Cls() {
	for i := range c.terminal {
		c.terminal[i].Glyph = 32
	}
}

// Set overwrites one cell fully.
func (c *Console) Set(x, y int, fg, bg RGBA, glyph uint16) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("set (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	c.terminal[c.at(x, y)] = TerminalGlyph{
		Glyph:      glyph,
		Foreground: fg,
		Background: bg,
	}
	return nil
}

// Print writes text starting at (x, y), one cell per encoded glyph,
// white on black. No wrapping: a run past the row edge fails without
// writing anything.
func (c *Console) Print(x, y int, text string) error {
	return c.PrintColor(x, y, text, White, Black)
}

// PrintColor writes text starting at (x, y) with uniform colors.
func (c *Console) PrintColor(x, y int, text string, fg, bg RGBA) error {
	glyphs := cp437.StringToCP437(text)
	if len(glyphs) == 0 {
		return nil
	}
	// Validate the whole run before touching the grid
	if !c.inBounds(x, y) || x+len(glyphs) > c.width {
		return fmt.Errorf("print %d glyphs at (%d,%d): %w", len(glyphs), x, y, ErrOutOfBounds)
	}
	for i, glyph := range glyphs {
		c.terminal[c.at(x+i, y)] = TerminalGlyph{
			Glyph:      glyph,
			Foreground: fg,
			Background: bg,
		}
	}
	return nil
}

// PrintCentered writes text centered on the grid width at row y.
// Centering uses the encoded glyph count, not the raw string length, so
// multi-byte input centers correctly.
func (c *Console) PrintCentered(y int, text string) error {
	glyphs := len(cp437.StringToCP437(text))
	return c.Print(c.width/2-glyphs/2, y, text)
}

// DrawBox fills the (w+1) x (h+1) cell rectangle anchored at (sx, sy)
// with blank white-on-black cells, then draws a single-line border in the
// caller's colors. Border coordinates are inclusive: corners land at
// (sx,sy), (sx+w,sy), (sx,sy+h), (sx+w,sy+h).
func (c *Console) DrawBox(sx, sy, w, h int, fg, bg RGBA) error {
	if !c.inBounds(sx, sy) || !c.inBounds(sx+w, sy+h) {
		return fmt.Errorf("box (%d,%d) %dx%d: %w", sx, sy, w, h, ErrOutOfBounds)
	}

	for y := sy; y <= sy+h; y++ {
		for x := sx; x <= sx+w; x++ {
			c.terminal[c.at(x, y)] = DefaultGlyph()
		}
	}

	set := func(x, y int, r rune) {
		c.terminal[c.at(x, y)] = TerminalGlyph{
			Glyph:      cp437.ToCP437(r),
			Foreground: fg,
			Background: bg,
		}
	}
	set(sx, sy, '┌')
	set(sx+w, sy, '┐')
	set(sx, sy+h, '└')
	set(sx+w, sy+h, '┘')
	for x := sx + 1; x < sx+w; x++ {
		set(x, sy, '─')
		set(x, sy+h, '─')
	}
	for y := sy + 1; y < sy+h; y++ {
		set(sx, y, '│')
		set(sx+w, y, '│')
	}
	return nil
}
