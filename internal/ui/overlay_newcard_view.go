package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
	"github.com/GreenSheep01201/Claw-Kanban/internal/ui/theme"
)

func styleCardPill() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleCardPillSelected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Current().Primary())
}

func styleCardPillFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Current().Success()).
		Background(theme.Current().BorderNormal())
}

func styleCardDimmed() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().BorderNormal())
}

// View implements tea.Model.
func (m *CardOverlay) View() string {
	ob := NewOverlayBuilder(m.width)
	width := ob.ContentWidth()
	state := m.ctrl.State()

	ob.Header("CREATE NEW CARD", "Add a new task card to the board")

	if state.Phase == cardform.PhaseFailed && state.Message != "" {
		msg := wordwrap.String("⚠ "+state.Message, width)
		ob.Line(styleErrorText().Render(msg))
		ob.BlankLine()
	}

	titleLabel := styleOverlaySectionLabel(m.focus == focusTitle).Render("TITLE") +
		styleErrorText().Render(" *")
	ob.Line(titleLabel)
	ob.Line(OverlayInputStyle(width, m.focus == focusTitle).Render(m.titleInput.View()))
	ob.BlankLine()

	colWidth := (width - 2) / 2
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colWidth).Render(m.renderRoleColumn()),
		"  ",
		lipgloss.NewStyle().Width(colWidth).Render(m.renderTaskTypeColumn(colWidth)),
	)
	ob.Line(columns)
	ob.BlankLine()

	ob.Line(styleOverlaySectionLabel(m.focus == focusDescription).Render("DESCRIPTION"))
	ob.Line(m.descInput.View())

	ob.Footer(m.renderFooter())
	return ob.Build()
}

func (m *CardOverlay) renderRoleColumn() string {
	form := m.Form()
	labels := []string{domain.RoleNone.Label()}
	for _, opt := range domain.RoleOptions() {
		labels = append(labels, opt.Label)
	}
	header := styleOverlaySectionLabel(m.focus == focusRole).Render("ROLE")
	return header + "\n" + renderPills(labels, roleIndex(form.Role()), m.focus == focusRole, false)
}

func (m *CardOverlay) renderTaskTypeColumn(width int) string {
	form := m.Form()
	labels := []string{domain.TaskTypeNone.Label()}
	for _, opt := range domain.TaskTypeOptions() {
		labels = append(labels, opt.Label)
	}

	disabled := !form.TaskTypeApplicable()
	header := styleOverlaySectionLabel(m.focus == focusTaskType).Render("TASK TYPE")
	if disabled {
		header = styleCardDimmed().Render("TASK TYPE")
	}
	out := header + "\n" + renderPills(labels, taskTypeIndex(form.TaskType()), m.focus == focusTaskType, disabled)
	if hint := form.TaskTypeHint(); hint != "" {
		out += "\n" + styleFooterMuted().Render(wordwrap.String(hint, width))
	}
	return out
}

// renderPills lists options one per line, marking the selected one.
func renderPills(labels []string, selected int, focused, disabled bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		prefix, style := "  ", styleCardPill()
		if i == selected {
			prefix = "► "
			style = styleCardPillSelected()
			if focused {
				style = styleCardPillFocused()
			}
		}
		if disabled {
			style = styleCardDimmed()
		}
		lines = append(lines, style.Render(prefix+label))
	}
	return strings.Join(lines, "\n")
}

// renderFooter flips to a waiting line while a request is in flight.
func (m *CardOverlay) renderFooter() string {
	if m.ctrl.State().Loading() {
		return styleFooterMuted().Render("Creating...")
	}

	create := keyPill("⏎", "Create Card")
	if m.focus == focusDescription {
		create = keyPill("^S", "Create Card")
	}
	if !m.Form().CanSubmit() {
		create = mutedKeyPill("⏎", "Create Card")
	}
	return strings.Join([]string{
		create,
		keyPill("Tab", "Next"),
		keyPill("esc", "Cancel"),
	}, "  ")
}
