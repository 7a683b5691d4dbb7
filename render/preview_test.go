package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphmesh/console"
)

func simScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("SimulationScreen Init failed: %v", err)
	}
	s.SetSize(width, height)
	return s
}

func TestDrawBoxOnScreen(t *testing.T) {
	c := console.New(0, 4, 3)
	if err := c.DrawBox(0, 0, 3, 2, console.White, console.Black); err != nil {
		t.Fatalf("DrawBox failed: %v", err)
	}

	s := simScreen(t, 4, 3)
	defer s.Fini()
	NewPreview(s).Draw(c)

	// Logical y is bottom-up, screen y top-down: the box's top border
	// (logical y=2, glyphs └ ─ ─ ┘) lands on screen row 0
	top := []rune{'└', '─', '─', '┘'}
	for x, want := range top {
		got, _, _, _ := s.GetContent(x, 0)
		if got != want {
			t.Errorf("Screen (%d,0): expected %q, got %q", x, want, got)
		}
	}
	bottom := []rune{'┌', '─', '─', '┐'}
	for x, want := range bottom {
		got, _, _, _ := s.GetContent(x, 2)
		if got != want {
			t.Errorf("Screen (%d,2): expected %q, got %q", x, want, got)
		}
	}
}

func TestDrawStyles(t *testing.T) {
	c := console.New(0, 2, 1)
	red := console.RGBA{R: 1, A: 1}
	blue := console.RGBA{B: 1, A: 1}
	if err := c.Set(0, 0, red, blue, uint16('X')); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	s := simScreen(t, 2, 1)
	defer s.Fini()
	NewPreview(s).Draw(c)

	got, _, style, _ := s.GetContent(0, 0)
	if got != 'X' {
		t.Errorf("Expected 'X', got %q", got)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Foreground %v, expected red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Background %v, expected blue", bg)
	}
}
