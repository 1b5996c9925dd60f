package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

// CardCreatedMsg is emitted by a NewCardOverlay after the board accepted the
// card. It always precedes the overlay's NewCardClosedMsg.
type CardCreatedMsg struct {
	OverlayID uint64
	Request   domain.CreateCardRequest
}

// NewCardClosedMsg is emitted once when a NewCardOverlay is done, whether
// the card was created or the user cancelled.
type NewCardClosedMsg struct {
	OverlayID uint64
}

// cardSubmitResultMsg carries the outcome of one create request back to the
// overlay that sent it.
type cardSubmitResultMsg struct {
	overlayID uint64
	attempt   cardform.Attempt
	request   domain.CreateCardRequest
	err       error
}

// cardsLoadedMsg delivers a board listing.
type cardsLoadedMsg struct {
	cards []domain.Card
	err   error
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
