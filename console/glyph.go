package console

// TerminalGlyph is one cell of a console grid: a font atlas index plus
// independent foreground and background colors. Value type, compared by
// value during dirty tracking.
type TerminalGlyph struct {
	Glyph      uint16
	Foreground RGBA
	Background RGBA
}

// DefaultGlyph returns a blank cell: space, white on black.
func DefaultGlyph() TerminalGlyph {
	return TerminalGlyph{
		Glyph:      32,
		Foreground: White,
		Background: Black,
	}
}
