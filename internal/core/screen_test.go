package core

import (
	"strings"
	"testing"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("Screen size = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	// All cells should be uncolored spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("Cell (%d, %d) = %+v, expected blank", x, y, cell)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorBrightRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("Color = %d, expected ColorBrightRed", cell.Color)
	}

	// Out of bounds writes are silently ignored
	s.SetCell(-1, 0, 'Y', ColorRed)
	s.SetCell(10, 0, 'Y', ColorRed)
	s.SetCell(0, 5, 'Y', ColorRed)

	// Out of bounds reads return a blank cell
	if c := s.GetCell(-1, -1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out-of-bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi", ColorCyan)

	if s.GetCell(2, 1).Rune != 'h' || s.GetCell(3, 1).Rune != 'i' {
		t.Errorf("Row 1 = %q, expected text at x=2", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorCyan {
		t.Error("DrawText should apply the color")
	}

	// Clipping: text extending past the right edge must not panic
	s.DrawText(8, 0, "long", ColorDefault)
	if s.GetCell(9, 0).Rune != 'o' {
		t.Errorf("Clipped text: cell (9,0) = %q, expected 'o'", s.GetCell(9, 0).Rune)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc", ColorDefault)

	row := s.Row(1)
	if !strings.Contains(row, "abc") {
		t.Errorf("Row 1 = %q, expected centered 'abc'", row)
	}
	if s.GetCell(4, 1).Rune != 'a' {
		t.Errorf("Centered text should start at x=4, row = %q", row)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	if s.GetCell(1, 1).Rune != '┌' {
		t.Errorf("Top-left corner = %q, expected '┌'", s.GetCell(1, 1).Rune)
	}
	if s.GetCell(5, 1).Rune != '┐' {
		t.Errorf("Top-right corner = %q, expected '┐'", s.GetCell(5, 1).Rune)
	}
	if s.GetCell(1, 4).Rune != '└' {
		t.Errorf("Bottom-left corner = %q, expected '└'", s.GetCell(1, 4).Rune)
	}
	if s.GetCell(3, 1).Rune != '─' {
		t.Errorf("Top edge = %q, expected '─'", s.GetCell(3, 1).Rune)
	}
	if s.GetCell(1, 2).Rune != '│' {
		t.Errorf("Left edge = %q, expected '│'", s.GetCell(1, 2).Rune)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'A', ColorGreen)

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Size after resize = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'A' || c.Color != ColorGreen {
		t.Errorf("Cell (2,2) after grow = %+v, expected preserved 'A'", c)
	}

	// Shrinking drops out-of-range content without panicking
	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != 'A' {
		t.Errorf("Cell (2,2) after shrink = %+v, expected preserved 'A'", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab", ColorDefault)

	if s.Row(0) != "ab  " {
		t.Errorf("Row(0) = %q, expected 'ab  '", s.Row(0))
	}
	if s.Row(5) != "    " {
		t.Errorf("Row(5) out of bounds = %q, expected spaces", s.Row(5))
	}
}
