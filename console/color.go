package console

import colorful "github.com/lucasb-eyer/go-colorful"

// RGBA stores straight (non-premultiplied) color channels in 0..1,
// matching per-vertex color attributes.
type RGBA struct {
	R, G, B, A float32
}

// Predefined colors
var (
	White = RGBA{1, 1, 1, 1}
	Black = RGBA{0, 0, 0, 1}
)

// Hex parses a "#rrggbb" color at full alpha.
func Hex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

// Equal returns true if all channels match exactly.
func (c RGBA) Equal(other RGBA) bool {
	return c == other
}

// Array returns the channels as a 4-float array for vertex writes.
func (c RGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Scale multiplies the color channels by factor, leaving alpha untouched.
func (c RGBA) Scale(factor float32) RGBA {
	if factor <= 0 {
		return RGBA{A: c.A}
	}
	if factor >= 1 {
		return c
	}
	return RGBA{R: c.R * factor, G: c.G * factor, B: c.B * factor, A: c.A}
}

// Lerp blends toward other in RGB space, t in 0..1. Alpha interpolates
// linearly alongside.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	b := colorful.Color{R: float64(other.R), G: float64(other.G), B: float64(other.B)}
	m := a.BlendRgb(b, t)
	return RGBA{
		R: float32(m.R),
		G: float32(m.G),
		B: float32(m.B),
		A: c.A + (other.A-c.A)*float32(t),
	}
}
