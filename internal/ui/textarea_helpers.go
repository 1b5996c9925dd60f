package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/GreenSheep01201/Claw-Kanban/internal/ui/theme"
)

// NewBaseTextarea returns a textarea without prompt or line numbers so the
// whole interior is input space.
func NewBaseTextarea(width, height int) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	applyTextareaTheme(&ta)
	return ta
}

// NewBaseTextInput returns a single-line input styled for overlays.
func NewBaseTextInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = width
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Current().Text())
	return ti
}

func applyTextareaTheme(ta *textarea.Model) {
	t := theme.Current()
	focused, blurred := textarea.DefaultStyles()
	focused.Base = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success())
	blurred.Base = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderNormal())
	focused.CursorLine = lipgloss.NewStyle()
	focused.Placeholder = lipgloss.NewStyle().Foreground(t.TextMuted())
	blurred.Placeholder = focused.Placeholder
	focused.Text = lipgloss.NewStyle().Foreground(t.Text())
	blurred.Text = focused.Text
	ta.FocusedStyle = focused
	ta.BlurredStyle = blurred
}
