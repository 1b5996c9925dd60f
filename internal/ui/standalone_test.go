package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
)

func TestStandaloneQuitsAfterCreate(t *testing.T) {
	client := board.NewMockClient()
	s := NewStandalone(client, NewCardOptions{Seed: cardform.Seed{Title: "From CLI"}})
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if !strings.Contains(plain(s.View()), "CREATE NEW CARD") {
		t.Fatalf("expected overlay view:\n%s", plain(s.View()))
	}

	_, cmd := s.Update(keyType(tea.KeyEnter))
	results := drainCmd(t, cmd)
	_, cmd = s.Update(results[0])

	var quit bool
	for _, msg := range drainCmd(t, cmd) {
		_, next := s.Update(msg)
		for _, m := range drainCmd(t, next) {
			if _, ok := m.(tea.QuitMsg); ok {
				quit = true
			}
		}
	}
	if !quit {
		t.Error("expected standalone to quit once the overlay closed")
	}
	req, ok := s.Created()
	if !ok || req.Title != "From CLI" {
		t.Errorf("expected created request, got %+v ok=%v", req, ok)
	}
	if s.View() != "" {
		t.Error("expected empty view after close")
	}
}

func TestStandaloneCtrlCCancels(t *testing.T) {
	client := board.NewMockClient()
	s := NewStandalone(client, NewCardOptions{})

	_, cmd := s.Update(keyType(tea.KeyCtrlC))
	msgs := drainCmd(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected closed message, got %#v", msgs)
	}
	_, cmd = s.Update(msgs[0])
	if quit := drainCmd(t, cmd); len(quit) != 1 {
		t.Fatalf("expected quit, got %#v", quit)
	}
	if _, ok := s.Created(); ok {
		t.Error("expected nothing created")
	}
	if client.CreateCardCallCount != 0 {
		t.Errorf("expected no create call, got %d", client.CreateCardCallCount)
	}
}
