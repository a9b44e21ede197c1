package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetHex(0, -1, 'A', "#ffffff")
	s.SetColored(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("Out of bounds writes must not land on the screen")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetColored(1, 0, '$', ColorGreen)
	s.SetHex(2, 0, '*', "#ff3333")

	if c := s.GetCell(1, 0); c.Rune != '$' || c.Color != ColorGreen || c.Hex != "" {
		t.Errorf("unexpected palette cell %+v", c)
	}
	if c := s.GetCell(2, 0); c.Rune != '*' || c.Hex != "#ff3333" {
		t.Errorf("unexpected hex cell %+v", c)
	}

	// Plain Set resets color
	s.Set(1, 0, 'x')
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "♥♥♡")

	if s.Get(0, 0) != '♥' || s.Get(1, 0) != '♥' || s.Get(2, 0) != '♡' {
		t.Errorf("multibyte text should occupy one cell per rune, got %q", s.Row(0))
	}
	if s.Get(3, 0) != ' ' {
		t.Error("text should not spill past its rune count")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("unexpected corners:\n%s", s.String())
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawVLine(3, 2, 4, '|', ColorGray)

	for y := 2; y < 6; y++ {
		if c := s.GetCell(3, y); c.Rune != '|' || c.Color != ColorGray {
			t.Errorf("DrawVLine: unexpected cell %+v at (3, %d)", c, y)
		}
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestPaletteANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Error("default color should use the terminal default")
	}
	if ColorPink.ANSI() != "205" {
		t.Errorf("pink ANSI = %q", ColorPink.ANSI())
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown colors should fall back to the default")
	}
	p := Palette()
	if len(p) == 0 || p[0] != ColorDefault || p[len(p)-1] != ColorPink {
		t.Errorf("unexpected palette %v", p)
	}
}
