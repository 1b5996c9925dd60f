package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

func newTestOverlay(t *testing.T, client *board.MockClient, opts NewCardOptions) *CardOverlay {
	t.Helper()
	m := NewCardOverlay(client, opts)
	m.SetSize(120, 40)
	return m
}

// submitAndResolve presses enter, runs the create command and feeds its
// result back, returning the messages the overlay emitted.
func submitAndResolve(t *testing.T, m *CardOverlay) []tea.Msg {
	t.Helper()
	_, cmd := m.Update(keyType(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected enter to start a submission")
	}
	msgs := drainCmd(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one result message, got %d", len(msgs))
	}
	result, ok := msgs[0].(cardSubmitResultMsg)
	if !ok {
		t.Fatalf("expected cardSubmitResultMsg, got %T", msgs[0])
	}
	_, cmd = m.Update(result)
	return drainCmd(t, cmd)
}

func TestNewCardOverlay(t *testing.T) {
	t.Run("StartsOnTitle", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{})
		if m.focus != focusTitle {
			t.Errorf("expected focus on title, got %d", m.focus)
		}
		if m.Controller().State().Phase != cardform.PhaseIdle {
			t.Errorf("expected idle phase, got %s", m.Controller().State().Phase)
		}
	})

	t.Run("IDsAreUnique", func(t *testing.T) {
		a := NewCardOverlay(board.NewMockClient(), NewCardOptions{})
		b := NewCardOverlay(board.NewMockClient(), NewCardOptions{})
		if a.ID() == b.ID() {
			t.Errorf("expected distinct overlay ids, both %d", a.ID())
		}
	})

	t.Run("SeedPrefillsFields", func(t *testing.T) {
		card := domain.Card{
			ID:          "c-1",
			Title:       "Broken nav",
			Description: "Menu overlaps",
			Status:      "Done",
			Role:        domain.RoleFrontend,
			TaskType:    domain.TaskTypeBugfix,
		}
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{Seed: cardform.SeedFromCard(card)})
		if m.titleInput.Value() != "Broken nav" {
			t.Errorf("expected seeded title, got %q", m.titleInput.Value())
		}
		if m.descInput.Value() != "Menu overlaps" {
			t.Errorf("expected seeded description, got %q", m.descInput.Value())
		}
		if m.Form().Role() != domain.RoleFrontend || m.Form().TaskType() != domain.TaskTypeBugfix {
			t.Errorf("expected frontend/bugfix, got %s/%s", m.Form().Role(), m.Form().TaskType())
		}
	})
}

func TestCardOverlayFocus(t *testing.T) {
	t.Run("SkipsTaskTypeWithoutFrontend", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{})
		want := []cardFocus{focusDescription, focusRole, focusTitle}
		for i, f := range want {
			m.Update(keyType(tea.KeyTab))
			if m.focus != f {
				t.Fatalf("tab %d: expected focus %d, got %d", i+1, f, m.focus)
			}
		}
	})

	t.Run("IncludesTaskTypeForFrontend", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{
			Seed: cardform.Seed{Role: domain.RoleFrontend},
		})
		want := []cardFocus{focusDescription, focusRole, focusTaskType, focusTitle}
		for i, f := range want {
			m.Update(keyType(tea.KeyTab))
			if m.focus != f {
				t.Fatalf("tab %d: expected focus %d, got %d", i+1, f, m.focus)
			}
		}
	})

	t.Run("ShiftTabWrapsBackwards", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{})
		m.Update(keyType(tea.KeyShiftTab))
		if m.focus != focusRole {
			t.Errorf("expected focus on role, got %d", m.focus)
		}
	})
}

func TestCardOverlayPickers(t *testing.T) {
	t.Run("StepsThroughRoles", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{})
		m.setFocus(focusRole)

		want := []domain.Role{domain.RoleDevOps, domain.RoleBackend, domain.RoleFrontend, domain.RoleFrontend}
		for i, role := range want {
			m.Update(keyType(tea.KeyDown))
			if m.Form().Role() != role {
				t.Fatalf("down %d: expected %q, got %q", i+1, role, m.Form().Role())
			}
		}
		m.Update(keyRunes("k"))
		if m.Form().Role() != domain.RoleBackend {
			t.Errorf("expected k to step back to backend, got %q", m.Form().Role())
		}
	})

	t.Run("PicksTaskTypeForFrontend", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{
			Seed: cardform.Seed{Role: domain.RoleFrontend},
		})
		m.setFocus(focusTaskType)
		for range 3 {
			m.Update(keyRunes("j"))
		}
		if m.Form().TaskType() != domain.TaskTypeBugfix {
			t.Errorf("expected bugfix, got %q", m.Form().TaskType())
		}
	})

	t.Run("KeepsStaleTaskTypeByDefault", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{
			Seed: cardform.Seed{Role: domain.RoleFrontend, TaskType: domain.TaskTypeNew},
		})
		m.setFocus(focusRole)
		m.Update(keyType(tea.KeyUp))
		if m.Form().Role() != domain.RoleBackend {
			t.Fatalf("expected backend, got %q", m.Form().Role())
		}
		if m.Form().TaskType() != domain.TaskTypeNew {
			t.Errorf("expected task type kept, got %q", m.Form().TaskType())
		}
	})

	t.Run("ClearsStaleTaskTypeWhenConfigured", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{
			Seed:               cardform.Seed{Role: domain.RoleFrontend, TaskType: domain.TaskTypeNew},
			ClearStaleTaskType: true,
		})
		m.setFocus(focusRole)
		m.Update(keyType(tea.KeyUp))
		if m.Form().TaskType() != domain.TaskTypeNone {
			t.Errorf("expected task type cleared, got %q", m.Form().TaskType())
		}
	})
}

func TestCardOverlaySubmit(t *testing.T) {
	t.Run("BlankTitleIsInert", func(t *testing.T) {
		client := board.NewMockClient()
		m := newTestOverlay(t, client, NewCardOptions{})
		typeInto(m, "   ")

		_, cmd := m.Update(keyType(tea.KeyEnter))
		if cmd != nil {
			t.Error("expected no command for a blank title")
		}
		if m.Controller().State().Phase != cardform.PhaseIdle {
			t.Errorf("expected idle, got %s", m.Controller().State().Phase)
		}
		if client.CreateCardCallCount != 0 {
			t.Errorf("expected no create call, got %d", client.CreateCardCallCount)
		}
	})

	t.Run("EnterCreatesThenCloses", func(t *testing.T) {
		client := board.NewMockClient()
		m := newTestOverlay(t, client, NewCardOptions{})
		typeInto(m, "  Fix login  ")

		msgs := submitAndResolve(t, m)
		if len(msgs) != 2 {
			t.Fatalf("expected created and closed messages, got %d: %#v", len(msgs), msgs)
		}
		created, ok := msgs[0].(CardCreatedMsg)
		if !ok {
			t.Fatalf("expected CardCreatedMsg first, got %T", msgs[0])
		}
		if created.OverlayID != m.ID() || created.Request.Title != "Fix login" {
			t.Errorf("unexpected created message: %#v", created)
		}
		if _, ok := msgs[1].(NewCardClosedMsg); !ok {
			t.Errorf("expected NewCardClosedMsg second, got %T", msgs[1])
		}

		calls := client.CreateCalls()
		if len(calls) != 1 {
			t.Fatalf("expected one create call, got %d", len(calls))
		}
		want := domain.CreateCardRequest{Title: "Fix login", Status: domain.StatusInbox}
		if calls[0] != want {
			t.Errorf("expected %#v, got %#v", want, calls[0])
		}
	})

	t.Run("CtrlSSubmitsFromDescription", func(t *testing.T) {
		client := board.NewMockClient()
		m := newTestOverlay(t, client, NewCardOptions{Seed: cardform.Seed{Title: "Write docs"}})
		m.setFocus(focusDescription)

		m.Update(keyType(tea.KeyEnter))
		if m.Controller().State().Phase != cardform.PhaseIdle {
			t.Fatalf("expected enter in description not to submit, got %s", m.Controller().State().Phase)
		}

		_, cmd := m.Update(keyType(tea.KeyCtrlS))
		if cmd == nil {
			t.Fatal("expected ctrl+s to submit")
		}
		if m.Controller().State().Phase != cardform.PhasePending {
			t.Errorf("expected pending, got %s", m.Controller().State().Phase)
		}
	})

	t.Run("SingleRequestWhilePending", func(t *testing.T) {
		client := board.NewMockClient()
		m := newTestOverlay(t, client, NewCardOptions{Seed: cardform.Seed{Title: "Once"}})

		_, first := m.Update(keyType(tea.KeyEnter))
		_, second := m.Update(keyType(tea.KeyEnter))
		_, third := m.Update(keyType(tea.KeyCtrlS))
		if first == nil {
			t.Fatal("expected first submit to start a request")
		}
		if second != nil || third != nil {
			t.Error("expected repeated submits to be ignored while pending")
		}
		drainCmd(t, first)
		if client.CreateCardCallCount != 1 {
			t.Errorf("expected one create call, got %d", client.CreateCardCallCount)
		}
	})

	t.Run("FailureStaysOpenWithMessage", func(t *testing.T) {
		client := board.NewMockClient()
		client.CreateCardFn = func(context.Context, domain.CreateCardRequest) error {
			return &board.APIError{Status: 422, Message: "title too long"}
		}
		m := newTestOverlay(t, client, NewCardOptions{Seed: cardform.Seed{Title: "Too long"}})

		msgs := submitAndResolve(t, m)
		if len(msgs) != 0 {
			t.Fatalf("expected no messages on failure, got %#v", msgs)
		}
		state := m.Controller().State()
		if state.Phase != cardform.PhaseFailed || state.Message != "title too long" {
			t.Errorf("expected failed with server message, got %+v", state)
		}
		if !strings.Contains(plain(m.View()), "⚠ title too long") {
			t.Errorf("expected error line in view:\n%s", plain(m.View()))
		}

		client.CreateCardFn = nil
		msgs = submitAndResolve(t, m)
		if len(msgs) != 2 {
			t.Errorf("expected retry to succeed, got %#v", msgs)
		}
	})

	t.Run("PanicBecomesFailure", func(t *testing.T) {
		client := board.NewMockClient()
		client.CreateCardFn = func(context.Context, domain.CreateCardRequest) error {
			panic("boom")
		}
		m := newTestOverlay(t, client, NewCardOptions{Seed: cardform.Seed{Title: "Panics"}})

		submitAndResolve(t, m)
		if m.Controller().State().Phase != cardform.PhaseFailed {
			t.Errorf("expected failed, got %s", m.Controller().State().Phase)
		}
	})
}

func TestCardOverlayCancel(t *testing.T) {
	t.Run("EscEmitsClosedOnly", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{})
		_, cmd := m.Update(keyType(tea.KeyEsc))
		msgs := drainCmd(t, cmd)
		if len(msgs) != 1 {
			t.Fatalf("expected one message, got %#v", msgs)
		}
		if closed, ok := msgs[0].(NewCardClosedMsg); !ok || closed.OverlayID != m.ID() {
			t.Errorf("expected NewCardClosedMsg for this overlay, got %#v", msgs[0])
		}
	})

	t.Run("ResultAfterCancelIsIgnored", func(t *testing.T) {
		var created int
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{
			Seed:  cardform.Seed{Title: "Late"},
			Hooks: cardform.Hooks{OnSuccess: func() { created++ }},
		})
		_, submit := m.Update(keyType(tea.KeyEnter))
		m.Update(keyType(tea.KeyEsc))

		msgs := drainCmd(t, submit)
		_, cmd := m.Update(msgs[0])
		if cmd != nil {
			t.Errorf("expected no messages after cancel, got %#v", drainCmd(t, cmd))
		}
		if created != 0 {
			t.Errorf("expected OnSuccess not to run, ran %d times", created)
		}
	})

	t.Run("ForeignResultIsIgnored", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{Seed: cardform.Seed{Title: "Mine"}})
		m.Update(keyType(tea.KeyEnter))

		_, cmd := m.Update(cardSubmitResultMsg{overlayID: m.ID() + 1000, err: errors.New("not mine")})
		if cmd != nil {
			t.Error("expected foreign result to be dropped")
		}
		if m.Controller().State().Phase != cardform.PhasePending {
			t.Errorf("expected still pending, got %s", m.Controller().State().Phase)
		}
	})
}

func TestCardOverlayView(t *testing.T) {
	t.Run("ShowsSections", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{})
		view := plain(m.View())
		for _, want := range []string{
			"CREATE NEW CARD",
			"Add a new task card to the board",
			"TITLE *",
			"ROLE",
			"TASK TYPE",
			"DESCRIPTION",
			"► None",
			"Dev Ops",
			"Bugfix",
			"Create Card",
			"Cancel",
		} {
			if !strings.Contains(view, want) {
				t.Errorf("expected %q in view:\n%s", want, view)
			}
		}
		if strings.Contains(view, cardform.TaskTypeHint) {
			t.Error("expected no task type hint without a role")
		}
	})

	t.Run("HintForNonFrontendRole", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{
			Seed: cardform.Seed{Role: domain.RoleBackend},
		})
		if !strings.Contains(plain(m.View()), cardform.TaskTypeHint) {
			t.Errorf("expected task type hint:\n%s", plain(m.View()))
		}
	})

	t.Run("PendingFooter", func(t *testing.T) {
		m := newTestOverlay(t, board.NewMockClient(), NewCardOptions{Seed: cardform.Seed{Title: "Wait"}})
		m.Update(keyType(tea.KeyEnter))
		view := plain(m.View())
		if !strings.Contains(view, "Creating...") {
			t.Errorf("expected pending footer:\n%s", view)
		}
		if strings.Contains(view, "Create Card") {
			t.Error("expected Create pill hidden while pending")
		}
	})

	t.Run("NarrowTerminal", func(t *testing.T) {
		m := NewCardOverlay(board.NewMockClient(), NewCardOptions{})
		m.SetSize(50, 30)
		view := m.View()
		for i, line := range strings.Split(view, "\n") {
			if w := len([]rune(plain(line))); w > 50 {
				t.Errorf("line %d is %d wide, expected at most 50", i, w)
			}
		}
	})
}
