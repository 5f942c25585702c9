package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorBird)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorBird {
		t.Errorf("GetCell(5, 5) = %+v, expected X in bird color", c)
	}

	s.Set(-1, 0, 'A', ColorText)
	s.Set(100, 0, 'A', ColorText)
	s.Set(0, -1, 'A', ColorText)
	s.Set(0, 100, 'A', ColorText)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 0, "Score", ColorText)
	s.DrawTextCentered(2, "Hi", ColorHighlight)

	if got := s.Row(0); got != "       Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}
	if got := s.Row(2); got != "    Hi    " {
		t.Errorf("Row(2) = %q", got)
	}
	if c := s.GetCell(4, 2); c.Color != ColorHighlight {
		t.Errorf("centered text color = %s", c.Color)
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(3, 3, 10, 10), '#', ColorPipe)

	expected := "     \n     \n     \n   ##\n   ##"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(s.Bounds(), ColorPanel)

	expected := []string{"┌──┐", "│  │", "└──┘"}
	if got := strings.Split(s.String(), "\n"); strings.Join(got, "|") != strings.Join(expected, "|") {
		t.Errorf("box = %q, expected %q", got, expected)
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('x', ColorGround)
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("resize should blank the screen")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative resize: width=%d string=%q", s.Width(), s.String())
	}
}
