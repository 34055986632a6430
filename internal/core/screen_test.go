package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("new screen = %q, expected blank", got)
	}
}

func TestScreenOutOfBoundsIsSilent(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], '●', ColorRed)
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenWideRunes(t *testing.T) {
	// HUD and sprites use multi-byte glyphs; each takes one cell.
	s := NewScreen(10, 1)
	s.DrawTextColored(1, 0, "♥♥♥ ●", ColorRed)

	if got := s.Row(0); got != " ♥♥♥ ●    " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(3, 0); c.Rune != '♥' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 0) = %+v, expected red heart", c)
	}

	s.Clear()
	if c := s.GetCell(3, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawTextClipsAndCenters(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "LEVEL")
	if got := s.Row(0); got != "       LEV" {
		t.Errorf("clipped row = %q", got)
	}

	s.DrawTextCentered(1, "HIT!")
	if got := s.Row(1); got != "   HIT!   " {
		t.Errorf("centered row = %q", got)
	}
}

func TestScreenBoxAndFill(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill('·')
	s.FillRect(1, 1, 4, 2, ' ', ColorDefault)
	s.DrawBox(0, 0, 6, 4)

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("box:\n%s\nexpected:\n%s", got, want)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Score 12")
	s.DrawText(0, 9, "bottom")

	s.Resize(6, 3)
	if got := s.Row(0); got != "Score " {
		t.Errorf("after shrink row 0 = %q", got)
	}

	s.Resize(12, 12)
	if got := s.Row(0); !strings.HasPrefix(got, "Score ") {
		t.Errorf("after grow row 0 = %q", got)
	}
	if got := s.Row(9); strings.TrimSpace(got) != "" {
		t.Errorf("rows cut by the shrink should come back blank, got %q", got)
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 12) {
		t.Errorf("out of range row = %q", got)
	}
}
