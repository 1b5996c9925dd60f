package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

const statusColumnWidth = 12

// View implements tea.Model.
func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	frame := m.renderHeader() + "\n" + m.renderBody() + "\n" + m.renderFooter()
	overlay := ""
	if m.overlay != nil {
		overlay = m.overlay.View()
	}
	notice := m.renderToast()
	if overlay == "" && notice == "" {
		return frame
	}

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, frame)
	if overlay != "" {
		canvas.DrawCentered(overlay, 1, 1)
	}
	if notice != "" {
		canvas.DrawBottomRight(notice, 1)
	}
	return canvas.Render()
}

func (m *App) renderHeader() string {
	title := "KANBAN"
	if m.version != "" {
		title = fmt.Sprintf("KANBAN v%s", m.version)
	}

	status := fmt.Sprintf("Cards: %d", len(m.cards))
	if breakdown := statusBreakdown(m.cards); breakdown != "" {
		status += " • " + breakdown
	}
	if m.loading {
		status += " " + styleStatsDim().Render("(loading...)")
	}
	return styleAppHeader().Render(title) + " " + styleStatsDim().Render(status)
}

// statusBreakdown counts cards per status in order of first appearance.
func statusBreakdown(cards []domain.Card) string {
	counts := map[domain.Status]int{}
	var order []domain.Status
	for _, card := range cards {
		if _, seen := counts[card.Status]; !seen {
			order = append(order, card.Status)
		}
		counts[card.Status]++
	}
	parts := make([]string, 0, len(order))
	for _, status := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
	}
	return strings.Join(parts, " • ")
}

func (m *App) renderBody() string {
	height := m.listHeight()
	if !m.showDetail {
		width := max(m.width-2, 1)
		return stylePane(true).Width(width).Height(height).Render(m.renderList(width, height))
	}

	rightWidth := max(m.viewport.Width, 1)
	leftWidth := max(m.width-rightWidth-4, 1)
	left := stylePane(false).Width(leftWidth).Height(height).Render(m.renderList(leftWidth, height))
	right := stylePane(true).Width(rightWidth).Height(height).Render(m.viewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *App) renderList(width, height int) string {
	if len(m.cards) == 0 {
		if m.loading {
			return styleStatsDim().Render("Loading cards...")
		}
		return styleStatsDim().Render("No cards yet. Press n to create one.")
	}

	end := min(m.listTop+height, len(m.cards))
	lines := make([]string, 0, end-m.listTop)
	for i := m.listTop; i < end; i++ {
		lines = append(lines, renderCardRow(m.cards[i], width, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func renderCardRow(card domain.Card, width int, selected bool) string {
	status := fmt.Sprintf("%-*s", statusColumnWidth, ansi.Truncate(string(card.Status), statusColumnWidth-1, "…"))
	classification := ""
	if card.Role != domain.RoleNone {
		classification = card.Role.Label()
		if card.TaskType != domain.TaskTypeNone {
			classification += "/" + card.TaskType.Label()
		}
		classification = "[" + classification + "] "
	}

	plain := " " + status + classification + card.Title
	plain = ansi.Truncate(plain, width, "…")
	if selected {
		return styleSelected().Width(width).Render(plain)
	}

	// Re-split the truncated text so the badge keeps its color.
	prefix := " " + status
	rest := strings.TrimPrefix(plain, prefix)
	badge := ""
	if classification != "" && strings.HasPrefix(rest, classification) {
		badge = styleRoleBadge(string(card.Role)).Render(classification)
		rest = strings.TrimPrefix(rest, classification)
	}
	return styleStatsDim().Render(prefix) + badge + styleText().Render(rest)
}

func (m *App) renderToast() string {
	if m.toast == nil {
		return ""
	}
	msg := ansi.Truncate(m.toast.message, max(m.width-6, 10), "…")
	if m.toast.isError {
		return styleErrorToast().Render("⚠ " + msg)
	}
	return styleSuccessToast().Render("✓ " + msg)
}
