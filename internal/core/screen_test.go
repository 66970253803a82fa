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

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipping(t *testing.T) {
	s := NewScreen(5, 1)
	used := s.DrawText(2, 0, "hello")

	if used != 5 {
		t.Errorf("DrawText returned %d columns, expected 5", used)
	}
	if got := s.Row(0); got != "  hel" {
		t.Errorf("Row(0) = %q, expected %q", got, "  hel")
	}
}

func TestScreenDrawTextWideRunes(t *testing.T) {
	s := NewScreen(6, 1)
	used := s.DrawText(0, 0, "英雄!")

	if used != 5 {
		t.Errorf("DrawText returned %d columns, expected 5", used)
	}
	if s.Get(2, 0) != '雄' {
		t.Errorf("second wide rune at column %q, expected at column 2", s.Get(2, 0))
	}
	if got := s.Row(0); got != "英雄! " {
		t.Errorf("Row(0) = %q, expected %q", got, "英雄! ")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorDefault)

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}

func TestScreenDrawBar(t *testing.T) {
	tests := []struct {
		value, total int
		want         string
	}{
		{10, 10, "██████████"},
		{5, 10, "█████░░░░░"},
		{0, 10, "░░░░░░░░░░"},
		{-8, 20, "░░░░░░░░░░"},
		{50, 10, "██████████"},
	}

	for _, tt := range tests {
		s := NewScreen(10, 1)
		s.DrawBar(0, 0, 10, tt.value, tt.total, ColorGreen)
		if got := s.Row(0); got != tt.want {
			t.Errorf("DrawBar(%d/%d) = %q, expected %q", tt.value, tt.total, got, tt.want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("size after Resize = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("Resize should discard content")
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Bounds() != NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}

	s.Set(-1, 0, 'X')
	s.Set(4, 1, 'X')
	s.Set(0, 2, 'X')
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds Set should be ignored")
	}
	if s.Get(9, 9) != ' ' {
		t.Errorf("Get outside bounds = %q, expected space", s.Get(9, 9))
	}

	s.Set(3, 1, 'X')
	if s.Get(3, 1) != 'X' {
		t.Error("Set at the last cell was dropped")
	}
}

func TestRectLayout(t *testing.T) {
	r := NewRect(0, 0, 21, 10)
	left, right := r.SplitColumns(1)

	if left.W != 10 || right.W != 10 || right.X != 11 {
		t.Errorf("SplitColumns = %+v %+v", left, right)
	}

	in := r.Inset(2)
	if in != NewRect(2, 2, 17, 6) {
		t.Errorf("Inset(2) = %+v", in)
	}
	if tiny := NewRect(0, 0, 1, 1).Inset(3); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset on tiny rect = %+v, expected zero size", tiny)
	}
	if !r.Contains(20, 9) || r.Contains(21, 0) {
		t.Error("Contains edge handling wrong")
	}
}

func TestHealthColor(t *testing.T) {
	if HealthColor(30, 30) != ColorBrightGreen {
		t.Error("full health should be green")
	}
	if HealthColor(12, 30) != ColorBrightYellow {
		t.Error("40% health should be yellow")
	}
	if HealthColor(3, 30) != ColorBrightRed {
		t.Error("10% health should be red")
	}
	if HealthColor(-8, 20) != ColorGray {
		t.Error("dead should be gray")
	}
}
