package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

// Standalone hosts a single new-card overlay as the whole program and quits
// once the overlay closes.
type Standalone struct {
	overlay *CardOverlay
	width   int
	height  int
	created *domain.CreateCardRequest
}

// NewStandalone wraps a fresh overlay submitting through creator.
func NewStandalone(creator board.Creator, opts NewCardOptions) *Standalone {
	return &Standalone{overlay: NewCardOverlay(creator, opts)}
}

// Created returns the request the board accepted, if any.
func (s *Standalone) Created() (domain.CreateCardRequest, bool) {
	if s.created == nil {
		return domain.CreateCardRequest{}, false
	}
	return *s.created, true
}

// Overlay exposes the hosted form.
func (s *Standalone) Overlay() *CardOverlay { return s.overlay }

func (s *Standalone) Init() tea.Cmd {
	return s.overlay.Init()
}

// Update implements tea.Model.
func (s *Standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
	case CardCreatedMsg:
		if msg.OverlayID == s.overlay.ID() {
			req := msg.Request
			s.created = &req
		}
		return s, nil
	case NewCardClosedMsg:
		if msg.OverlayID == s.overlay.ID() {
			return s, tea.Quit
		}
		return s, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			_, cmd := s.overlay.Update(tea.KeyMsg{Type: tea.KeyEsc})
			return s, cmd
		}
	}
	_, cmd := s.overlay.Update(msg)
	return s, cmd
}

// View implements tea.Model.
func (s *Standalone) View() string {
	if s.overlay.Controller().State().Phase == cardform.PhaseClosed {
		return ""
	}
	view := s.overlay.View()
	if s.width <= 0 || s.height <= 0 {
		return view
	}
	return composeOverlay("", view, s.width, s.height, 0, 0)
}
