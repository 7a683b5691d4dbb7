// Package render draws a console grid onto a tcell screen. It is a debug
// and demo surface: the production path for a console is its mesh
// backend, not this package.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphmesh/console"
	"github.com/lixenwraith/glyphmesh/cp437"
)

// Preview paints console cells 1:1 onto a tcell screen.
type Preview struct {
	screen tcell.Screen
}

// NewPreview wraps an initialized tcell screen.
func NewPreview(screen tcell.Screen) *Preview {
	return &Preview{screen: screen}
}

// Draw renders the console's current grid and shows the screen. Storage
// row 0 is the logical top row, so cells map straight to screen rows.
func (p *Preview) Draw(con *console.Console) {
	cells := con.Cells()
	w, h := con.Width(), con.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := cells[y*w+x]
			r := cp437.ToRune(cell.Glyph)
			if runewidth.RuneWidth(r) != 1 {
				// Double-width or zero-width runes would shift the row
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Foreground)).
				Background(toTcell(cell.Background))
			p.screen.SetContent(x, y, r, nil, style)
		}
	}
	p.screen.Show()
}

// toTcell converts a 0..1 float color to a tcell RGB color.
func toTcell(c console.RGBA) tcell.Color {
	return tcell.NewRGBColor(
		int32(clamp01(c.R)*255),
		int32(clamp01(c.G)*255),
		int32(clamp01(c.B)*255),
	)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
