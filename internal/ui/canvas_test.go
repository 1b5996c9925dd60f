package ui

import (
	"strings"
	"testing"
)

func TestCenteredOffsets(t *testing.T) {
	tests := []struct {
		name               string
		cw, ch, w, h, t, b int
		wantX, wantY       int
	}{
		{name: "centered", cw: 80, ch: 24, w: 20, h: 10, wantX: 30, wantY: 7},
		{name: "margins", cw: 80, ch: 24, w: 20, h: 10, t: 2, b: 2, wantX: 30, wantY: 7},
		{name: "taller than space", cw: 80, ch: 10, w: 20, h: 12, t: 1, b: 1, wantX: 30, wantY: 1},
		{name: "wider than container", cw: 10, ch: 10, w: 20, h: 2, wantX: 0, wantY: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := centeredOffsets(tt.cw, tt.ch, tt.w, tt.h, tt.t, tt.b)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestComposeOverlay(t *testing.T) {
	base := strings.Join([]string{
		"header....",
		"..........",
		"..........",
		"..........",
		"footer....",
	}, "\n")
	out := plain(composeOverlay(base, "XX\nXX", 10, 5, 1, 1))
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "header") || !strings.HasPrefix(lines[4], "footer") {
		t.Errorf("expected header and footer untouched:\n%s", out)
	}
	if !strings.Contains(lines[1], "XX") || !strings.Contains(lines[2], "XX") {
		t.Errorf("expected overlay in the body rows:\n%s", out)
	}
	if strings.Contains(lines[3], "XX") {
		t.Errorf("expected overlay to be two rows tall:\n%s", out)
	}
}

func TestCanvasDrawBottomRight(t *testing.T) {
	c := NewCanvas(10, 4)
	c.DrawBottomRight("ok", 1)
	lines := strings.Split(plain(c.Render()), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if got := strings.TrimRight(lines[2], " "); got != "       ok" {
		t.Errorf("expected toast at column 7 of row 2, got %q", got)
	}
}

func TestCanvasCropsPastEdge(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawStringAt(3, 0, "abcdef")
	if got := strings.TrimRight(plain(c.Render()), " \n"); got != "   ab" {
		t.Errorf("expected cropped line, got %q", got)
	}
}
