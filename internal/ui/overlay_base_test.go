package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResponsiveOverlayWidth(t *testing.T) {
	tests := []struct {
		termWidth int
		want      int
	}{
		{termWidth: 0, want: OverlayWidthWide},
		{termWidth: 50, want: 48},
		{termWidth: 80, want: OverlayWidthWide},
		{termWidth: 120, want: 84},
		{termWidth: 200, want: overlayWidthMax},
	}
	for _, tt := range tests {
		if got := responsiveOverlayWidth(tt.termWidth); got != tt.want {
			t.Errorf("responsiveOverlayWidth(%d) = %d, want %d", tt.termWidth, got, tt.want)
		}
	}
}

func TestOverlayBuilder(t *testing.T) {
	ob := NewOverlayBuilderWithWidth(40)
	if ob.ContentWidth() != 36 {
		t.Errorf("expected content width 36, got %d", ob.ContentWidth())
	}
	out := ob.Header("TITLE", "subtitle").
		Line("body").
		Footer("footer").
		Build()

	if w := lipgloss.Width(out); w != 42 {
		t.Errorf("expected box plus border to be 42 wide, got %d", w)
	}
	text := plain(out)
	for _, want := range []string{"TITLE", "subtitle", "body", "footer", strings.Repeat("─", 36)} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in overlay:\n%s", want, text)
		}
	}
}
