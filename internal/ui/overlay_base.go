package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GreenSheep01201/Claw-Kanban/internal/ui/theme"
)

// Overlay widths. lipgloss Width() is the content box including padding;
// the border adds 2 columns outside it.
const (
	OverlayWidthStandard = 48
	OverlayWidthWide     = 64
	overlayWidthMax      = 96

	overlayHPadding = 2
)

// responsiveOverlayWidth is min(96, max(64, 0.7*termWidth)), clamped so the
// box still fits narrow terminals.
func responsiveOverlayWidth(termWidth int) int {
	if termWidth <= 0 {
		return OverlayWidthWide
	}
	width := int(float64(termWidth) * 0.7)
	width = max(width, OverlayWidthWide)
	width = min(width, overlayWidthMax)
	if fit := termWidth - 2; width > fit {
		width = max(fit, OverlayWidthStandard/2)
	}
	return width
}

// OverlayContentWidth returns the usable width inside an overlay's padding.
func OverlayContentWidth(boxWidth int) int {
	return max(boxWidth-overlayHPadding*2, 1)
}

// OverlayBuilder accumulates the lines of a modal and wraps them in the
// standard overlay frame.
type OverlayBuilder struct {
	boxWidth     int
	contentWidth int
	lines        []string
}

// NewOverlayBuilder sizes the overlay for the given terminal width.
func NewOverlayBuilder(termWidth int) *OverlayBuilder {
	return NewOverlayBuilderWithWidth(responsiveOverlayWidth(termWidth))
}

// NewOverlayBuilderWithWidth uses an explicit lipgloss box width.
func NewOverlayBuilderWithWidth(boxWidth int) *OverlayBuilder {
	return &OverlayBuilder{
		boxWidth:     boxWidth,
		contentWidth: OverlayContentWidth(boxWidth),
		lines:        make([]string, 0, 24),
	}
}

func (b *OverlayBuilder) BoxWidth() int     { return b.boxWidth }
func (b *OverlayBuilder) ContentWidth() int { return b.contentWidth }

// Header adds a title, an optional muted subtitle and a divider.
func (b *OverlayBuilder) Header(title, subtitle string) *OverlayBuilder {
	b.lines = append(b.lines, styleOverlayTitle().Render(title))
	if subtitle != "" {
		b.lines = append(b.lines, styleStatsDim().Render(subtitle))
	}
	b.lines = append(b.lines, b.Divider(), "")
	return b
}

// Divider returns a rule spanning the content width.
func (b *OverlayBuilder) Divider() string {
	return styleOverlayDivider().Render(strings.Repeat("─", b.contentWidth))
}

func (b *OverlayBuilder) Line(content string) *OverlayBuilder {
	b.lines = append(b.lines, content)
	return b
}

func (b *OverlayBuilder) BlankLine() *OverlayBuilder {
	return b.Line("")
}

// Footer adds a divider followed by the given footer line.
func (b *OverlayBuilder) Footer(line string) *OverlayBuilder {
	b.lines = append(b.lines, b.Divider(), line)
	return b
}

// Build wraps the accumulated lines in the overlay frame.
func (b *OverlayBuilder) Build() string {
	return styleOverlay().Width(b.boxWidth).Render(strings.Join(b.lines, "\n"))
}

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Padding(1, overlayHPadding)
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

func styleOverlayDivider() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary())
}

func styleOverlaySectionLabel(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Current().Secondary()).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

// OverlayInputStyle is the bordered box around a single-line input. width
// is the visual width, border included.
func OverlayInputStyle(width int, focused bool) lipgloss.Style {
	border := theme.Current().BorderNormal()
	if focused {
		border = theme.Current().Success()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2)
}
