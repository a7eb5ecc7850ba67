package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) has size %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '█', ColorCyan)
	if c := s.GetCell(3, 4); c.Rune != '█' || c.Color != ColorCyan {
		t.Errorf("GetCell(3, 4) = %+v, expected cyan block", c)
	}

	// Out of bounds writes are dropped and reads return a blank cell
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(0, 100, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColored(NewRect(0, 0, 6, 4), '#', ColorYellow)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("after Clear, expected blank at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawRectColoredClips(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColored(NewRect(8, -2, 5, 4), '█', ColorGreen)

	for y := 0; y < 2; y++ {
		for x := 8; x < 10; x++ {
			if c := s.GetCell(x, y); c.Color != ColorGreen {
				t.Errorf("expected green at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(7, 0) != ' ' || s.Get(8, 2) != ' ' {
		t.Error("DrawRectColored should not affect cells outside the rect")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score")

	if !strings.HasPrefix(s.Row(1)[2:], "Score") {
		t.Errorf("Row(1) = %q, expected Score at column 2", s.Row(1))
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}

	s.DrawTextCentered(3, "Hi")
	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'i' {
		t.Errorf("DrawTextCentered: row 3 = %q", s.Row(3))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("after shrinking, String() = %q", got)
	}

	s.Resize(4, 3)
	if got := s.Row(2); got != "    " {
		t.Errorf("new rows should be blank, got %q", got)
	}
	if got := s.Row(0); got != "AAA " {
		t.Errorf("content should be preserved after growing, got %q", got)
	}
}
