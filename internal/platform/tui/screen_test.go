package tui

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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("New screen should be blank, got %q/%d at (%d, %d)", c.Rune, c.Color, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %q/%d, expected 'X'/red", c.Rune, c.Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return a blank cell
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	// Should all be blank now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %q/%d", x, y, c.Rune, c.Color)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("after Resize, got %dx%d, expected 20x5", s.Width(), s.Height())
	}

	// Content is discarded on resize
	for y := 0; y < 5; y++ {
		for x := 0; x < 20; x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("Resize should clear content, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}

	// Resize to the same dimensions keeps the buffer
	s.Set(3, 3, 'Y')
	s.Resize(20, 5)
	if s.GetCell(3, 3).Rune != 'Y' {
		t.Error("Resize to identical dimensions should not touch content")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLine(2, 1, 5, '═', ColorYellow)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 1); c.Rune != '═' || c.Color != ColorYellow {
			t.Errorf("DrawHLine: expected '═'/yellow at (%d, 1), got %q/%d", x, c.Rune, c.Color)
		}
	}
	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(7, 1).Rune != ' ' {
		t.Error("DrawHLine should not draw outside its span")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("row 0 = %q, expected %q", lines[0], "a  ")
	}
	if lines[1] != "  b" {
		t.Errorf("row 1 = %q, expected %q", lines[1], "  b")
	}
}
