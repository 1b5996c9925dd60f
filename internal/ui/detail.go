package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

const detailTimeLayout = "Jan 2, 2006 15:04"

// resizeViewport splits the body between the list and the detail pane.
func (m *App) resizeViewport() {
	m.viewport.Width = max(m.width/2-2, 20)
	m.viewport.Height = max(m.height-4, minListHeight)
	m.updateViewportContent()
}

func (m *App) updateViewportContent() {
	if !m.showDetail {
		return
	}
	card, ok := m.selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	if m.detailCardID != card.ID {
		m.viewport.GotoTop()
		m.detailCardID = card.ID
	}
	m.viewport.SetContent(renderCardDetail(card, m.viewport.Width, m.outputFormat))
}

// renderCardDetail lays out a card's metadata above its rendered description.
func renderCardDetail(card domain.Card, width int, format string) string {
	width = max(width, 10)
	title := styleID().Render(card.ID) + "\n" + styleText().Bold(true).Render(wordwrap.String(card.Title, width))

	makeRow := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Left, styleField().Render(k), styleText().Render(v))
	}
	rows := []string{
		makeRow("Status:", string(card.Status)),
		makeRow("Role:", card.Role.Label()),
	}
	if card.Role.AllowsTaskType() || card.TaskType != domain.TaskTypeNone {
		rows = append(rows, makeRow("Type:", card.TaskType.Label()))
	}
	rows = append(rows, makeRow("Created:", formatCardTime(card.CreatedAt)))
	if !card.UpdatedAt.IsZero() {
		rows = append(rows, makeRow("Updated:", formatCardTime(card.UpdatedAt)))
	}
	meta := lipgloss.NewStyle().MarginLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	description := strings.TrimSpace(card.Description)
	body := styleStatsDim().Render("No description.")
	if description != "" {
		body = buildMarkdownRenderer(format, width-2)(description)
	}

	return strings.Join([]string{
		title,
		meta,
		renderContentSection("Description:", body),
	}, "\n\n")
}

func renderContentSection(label, body string) string {
	header := styleField().Width(0).Render(label)
	return header + "\n" + indentBlock(body, 2)
}

func indentBlock(text string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

func formatCardTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(detailTimeLayout)
}
