package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
	appErrors "github.com/GreenSheep01201/Claw-Kanban/internal/errors"
	"github.com/GreenSheep01201/Claw-Kanban/internal/ui/theme"
)

func sampleCards() []domain.Card {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return []domain.Card{
		{ID: "c-3", Title: "Fix login layout", Status: "Inbox", Role: domain.RoleFrontend, TaskType: domain.TaskTypeBugfix, CreatedAt: created},
		{ID: "c-2", Title: "Rotate TLS certs", Status: "In Progress", Role: domain.RoleDevOps, CreatedAt: created},
		{ID: "c-1", Title: "Add pagination", Description: "Use **cursor** paging.", Status: "Inbox", Role: domain.RoleBackend, CreatedAt: created},
	}
}

// newTestApp returns a sized app with the listing already applied.
func newTestApp(t *testing.T, client *board.MockClient) *App {
	t.Helper()
	app, err := NewApp(AppConfig{Client: client, Version: "1.2.3", Source: "mock"})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.copyText = func(string) error { return nil }
	app.saveTheme = func(string) error { return nil }
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	msgs := drainCmd(t, app.Init())
	for _, msg := range msgs {
		app.Update(msg)
	}
	return app
}

func listingClient(cards []domain.Card) *board.MockClient {
	client := board.NewMockClient()
	client.ListCardsFn = func(context.Context) ([]domain.Card, error) {
		return cards, nil
	}
	return client
}

func TestNewAppRequiresClient(t *testing.T) {
	_, err := NewApp(AppConfig{})
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestAppLoadsCards(t *testing.T) {
	client := listingClient(sampleCards())
	app := newTestApp(t, client)

	if len(app.cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(app.cards))
	}
	if client.ListCardsCallCount != 1 {
		t.Errorf("expected one list call, got %d", client.ListCardsCallCount)
	}

	view := plain(app.View())
	for _, want := range []string{
		"KANBAN v1.2.3",
		"Cards: 3",
		"2 Inbox",
		"1 In Progress",
		"[FrontEnd/Bugfix] Fix login layout",
		"[Dev Ops] Rotate TLS certs",
		"mock",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestAppLoadErrorShowsToast(t *testing.T) {
	client := board.NewMockClient()
	client.ListCardsFn = func(context.Context) ([]domain.Card, error) {
		return nil, appErrors.New(appErrors.CodeTransportFailed, "list cards: connection refused", errors.New("dial"))
	}
	app := newTestApp(t, client)

	if app.toast == nil || !app.toast.isError {
		t.Fatalf("expected error toast, got %+v", app.toast)
	}
	if !strings.Contains(plain(app.View()), "Could not load cards: list cards: connection refused") {
		t.Errorf("expected load error in view:\n%s", plain(app.View()))
	}
}

func TestAppCursor(t *testing.T) {
	app := newTestApp(t, listingClient(sampleCards()))

	app.Update(keyRunes("j"))
	app.Update(keyType(tea.KeyDown))
	app.Update(keyType(tea.KeyDown))
	if app.cursor != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", app.cursor)
	}
	app.Update(keyRunes("g"))
	if app.cursor != 0 {
		t.Errorf("expected cursor at top, got %d", app.cursor)
	}
	app.Update(keyRunes("G"))
	if app.cursor != 2 {
		t.Errorf("expected cursor at bottom, got %d", app.cursor)
	}
}

func TestAppRefreshKeepsSelection(t *testing.T) {
	cards := sampleCards()
	app := newTestApp(t, listingClient(cards))
	app.Update(keyType(tea.KeyDown))

	fresh := append([]domain.Card{{ID: "c-4", Title: "Newest", Status: "Inbox"}}, cards...)
	app.Update(cardsLoadedMsg{cards: fresh})
	if card, _ := app.selected(); card.ID != "c-2" {
		t.Errorf("expected selection to stay on c-2, got %s", card.ID)
	}
}

func TestAppNewCardFlow(t *testing.T) {
	client := board.NewMockClient()
	app := newTestApp(t, client)

	app.Update(keyRunes("n"))
	if app.overlay == nil {
		t.Fatal("expected overlay to mount on n")
	}
	if !strings.Contains(plain(app.View()), "CREATE NEW CARD") {
		t.Errorf("expected overlay in view:\n%s", plain(app.View()))
	}

	typeInto(app, "Ship it")
	_, cmd := app.Update(keyType(tea.KeyEnter))
	results := drainCmd(t, cmd)
	if len(results) != 1 {
		t.Fatalf("expected create result, got %#v", results)
	}

	_, cmd = app.Update(results[0])
	msgs := drainCmd(t, cmd)
	if len(msgs) != 2 {
		t.Fatalf("expected created and closed, got %#v", msgs)
	}

	_, cmd = app.Update(msgs[0])
	if app.toast == nil || app.toast.message != "Created card: Ship it" {
		t.Errorf("expected success toast, got %+v", app.toast)
	}
	if cmd == nil {
		t.Error("expected a refresh after creation")
	}
	if !app.loading {
		t.Error("expected the listing to reload")
	}

	app.Update(msgs[1])
	if app.overlay != nil {
		t.Error("expected overlay unmounted after close")
	}
}

func TestAppOverlayCapturesKeys(t *testing.T) {
	app := newTestApp(t, listingClient(sampleCards()))
	app.Update(keyRunes("n"))
	app.Update(keyRunes("q"))
	if app.overlay == nil {
		t.Fatal("expected overlay to stay mounted")
	}
	if app.overlay.Form().Title() != "q" {
		t.Errorf("expected title q, got %q", app.overlay.Form().Title())
	}
}

func TestAppCancelUnmountsOverlay(t *testing.T) {
	app := newTestApp(t, board.NewMockClient())
	app.Update(keyRunes("n"))
	_, cmd := app.Update(keyType(tea.KeyEsc))
	for _, msg := range drainCmd(t, cmd) {
		app.Update(msg)
	}
	if app.overlay != nil {
		t.Error("expected overlay unmounted after esc")
	}
	if app.showDetail {
		t.Error("expected esc not to leak to the board")
	}
}

func TestAppDropsResultsForOldOverlay(t *testing.T) {
	app := newTestApp(t, board.NewMockClient())
	app.Update(keyRunes("n"))
	first := app.overlay
	typeInto(app, "First")
	_, submit := app.Update(keyType(tea.KeyEnter))

	_, cmd := app.Update(keyType(tea.KeyEsc))
	for _, msg := range drainCmd(t, cmd) {
		app.Update(msg)
	}
	app.Update(keyRunes("n"))
	second := app.overlay
	if second == nil || second.ID() == first.ID() {
		t.Fatal("expected a fresh overlay")
	}

	results := drainCmd(t, submit)
	_, cmd = app.Update(results[0])
	if cmd != nil {
		t.Errorf("expected stale result dropped, got %#v", drainCmd(t, cmd))
	}
	if second.Controller().State().Phase != cardform.PhaseIdle {
		t.Errorf("expected new overlay untouched, got %s", second.Controller().State().Phase)
	}
}

func TestAppDuplicateSeedsOverlay(t *testing.T) {
	app := newTestApp(t, listingClient(sampleCards()))
	app.Update(keyRunes("D"))
	if app.overlay == nil {
		t.Fatal("expected overlay on D")
	}
	form := app.overlay.Form()
	if form.Title() != "Fix login layout" || form.Role() != domain.RoleFrontend || form.TaskType() != domain.TaskTypeBugfix {
		t.Errorf("expected seeded form, got %+v", form.Draft())
	}
}

func TestAppDuplicateWithoutCards(t *testing.T) {
	app := newTestApp(t, board.NewMockClient())
	app.Update(keyRunes("D"))
	if app.overlay != nil {
		t.Error("expected no overlay without a selected card")
	}
}

func TestAppDetailPane(t *testing.T) {
	app := newTestApp(t, listingClient(sampleCards()))
	app.Update(keyRunes("G"))
	app.Update(keyType(tea.KeyEnter))
	if !app.showDetail {
		t.Fatal("expected detail pane open")
	}
	view := plain(app.View())
	for _, want := range []string{"c-1", "BackEnd", "Description:", "cursor"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in detail view:\n%s", want, view)
		}
	}

	app.Update(keyType(tea.KeyEsc))
	if app.showDetail {
		t.Error("expected esc to close the detail pane")
	}
}

func TestAppCopyTitle(t *testing.T) {
	app := newTestApp(t, listingClient(sampleCards()))
	var copied string
	app.copyText = func(s string) error {
		copied = s
		return nil
	}
	app.Update(keyRunes("y"))
	if copied != "Fix login layout" {
		t.Errorf("expected title copied, got %q", copied)
	}
	if app.toast == nil || app.toast.message != "Copied 'Fix login layout' to clipboard." {
		t.Errorf("unexpected toast %+v", app.toast)
	}

	app.copyText = func(string) error { return errors.New("no clipboard") }
	app.Update(keyRunes("y"))
	if app.toast == nil || !app.toast.isError {
		t.Errorf("expected error toast, got %+v", app.toast)
	}
}

func TestAppCycleTheme(t *testing.T) {
	theme.SetTheme(theme.DefaultName)
	t.Cleanup(func() { theme.SetTheme(theme.DefaultName) })

	app := newTestApp(t, board.NewMockClient())
	var saved string
	app.saveTheme = func(name string) error {
		saved = name
		return nil
	}
	app.Update(keyRunes("t"))
	if saved == "" || saved == theme.DefaultName {
		t.Errorf("expected next theme saved, got %q", saved)
	}
	if theme.CurrentName() != saved {
		t.Errorf("expected current theme %q, got %q", saved, theme.CurrentName())
	}
}

func TestAppToastExpires(t *testing.T) {
	app := newTestApp(t, listingClient(sampleCards()))
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	app.now = func() time.Time { return now }
	app.Update(keyRunes("y"))

	if _, cmd := app.Update(toastTickMsg{}); cmd == nil || app.toast == nil {
		t.Fatal("expected toast to survive the first tick")
	}
	now = now.Add(successToastDuration)
	app.Update(toastTickMsg{})
	if app.toast != nil {
		t.Errorf("expected toast cleared, got %+v", app.toast)
	}
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t, board.NewMockClient())
	_, cmd := app.Update(keyRunes("q"))
	msgs := drainCmd(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected quit message, got %#v", msgs)
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", msgs[0])
	}
}

func TestAppViewBeforeResize(t *testing.T) {
	app, err := NewApp(AppConfig{Client: board.NewMockClient()})
	if err != nil {
		t.Fatal(err)
	}
	if got := app.View(); got != "Initializing..." {
		t.Errorf("expected placeholder, got %q", got)
	}
}
