// Package theme holds the semantic colors the kanban screens draw with.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps UI roles to colors. Every color adapts to light and dark
// terminals.
type Theme interface {
	Primary() lipgloss.AdaptiveColor   // focused borders, header
	Secondary() lipgloss.AdaptiveColor // field labels
	Accent() lipgloss.AdaptiveColor    // selected options, ids

	Error() lipgloss.AdaptiveColor
	Warning() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor

	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor

	Background() lipgloss.AdaptiveColor
	BackgroundSecondary() lipgloss.AdaptiveColor // selected rows, pills

	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
}

// Palette is a Theme built from fixed color pairs.
type Palette struct {
	primary, secondary, accent     lipgloss.AdaptiveColor
	errorC, warning, success       lipgloss.AdaptiveColor
	text, textMuted                lipgloss.AdaptiveColor
	background, backgroundSelected lipgloss.AdaptiveColor
	borderNormal, borderFocused    lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor             { return p.primary }
func (p Palette) Secondary() lipgloss.AdaptiveColor           { return p.secondary }
func (p Palette) Accent() lipgloss.AdaptiveColor              { return p.accent }
func (p Palette) Error() lipgloss.AdaptiveColor               { return p.errorC }
func (p Palette) Warning() lipgloss.AdaptiveColor             { return p.warning }
func (p Palette) Success() lipgloss.AdaptiveColor             { return p.success }
func (p Palette) Text() lipgloss.AdaptiveColor                { return p.text }
func (p Palette) TextMuted() lipgloss.AdaptiveColor           { return p.textMuted }
func (p Palette) Background() lipgloss.AdaptiveColor          { return p.background }
func (p Palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.backgroundSelected }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor        { return p.borderNormal }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor       { return p.borderFocused }

// pair builds an AdaptiveColor; dark first because that is what most users run.
func pair(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}
