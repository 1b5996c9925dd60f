package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is a key and a short description for a footer bar.
type footerHint struct {
	key  string
	desc string
}

var boardFooterHints = []footerHint{
	{"n", "New"},
	{"D", "Duplicate"},
	{"⏎", "Detail"},
	{"y", "Copy"},
	{"r", "Refresh"},
	{"t", "Theme"},
	{"q", "Quit"},
}

var detailFooterHints = []footerHint{
	{"↑↓", "Scroll"},
	{"esc", "Back"},
}

// keyPill renders a key hint as a pill followed by its description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// mutedKeyPill renders an unavailable action.
func mutedKeyPill(key, desc string) string {
	return styleKeyPillMuted().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

func renderHints(hints []footerHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, "  ")
}

// trimHintsToFit drops hints from the end until the rendered bar fits.
func trimHintsToFit(hints []footerHint, width int) []footerHint {
	for len(hints) > 0 && lipgloss.Width(renderHints(hints)) > width {
		hints = hints[:len(hints)-1]
	}
	return hints
}

// renderFooter lays out hints on the left and the board source on the right.
func (m *App) renderFooter() string {
	hints := boardFooterHints
	if m.showDetail {
		hints = append(append([]footerHint(nil), detailFooterHints...), boardFooterHints...)
	}

	source := styleFooterMuted().Render(m.source)
	sourceWidth := lipgloss.Width(source)
	hints = trimHintsToFit(hints, m.width-sourceWidth-4)

	left := renderHints(hints)
	spacing := max(m.width-lipgloss.Width(left)-sourceWidth, 2)
	return left + strings.Repeat(" ", spacing) + source
}
