package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/config"
	"github.com/GreenSheep01201/Claw-Kanban/internal/debug"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
	appErrors "github.com/GreenSheep01201/Claw-Kanban/internal/errors"
	"github.com/GreenSheep01201/Claw-Kanban/internal/ui/theme"
)

const (
	minListHeight        = 3
	successToastDuration = 5 * time.Second
	errorToastDuration   = 10 * time.Second
)

var appLog = debug.For("app")

// AppConfig configures the board application.
type AppConfig struct {
	Client             board.Client
	Version            string // shown in the header
	OutputFormat       string // glamour style for descriptions: rich, light or plain
	ClearStaleTaskType bool
	Source             string // where cards come from, shown in the footer
	Context            context.Context
}

// toast is a transient notice in the bottom-right corner.
type toast struct {
	message string
	isError bool
	expires time.Time
}

// App implements the Bubble Tea model for the board.
type App struct {
	client board.Client
	ctx    context.Context
	keys   KeyMap

	cards   []domain.Card
	cursor  int
	listTop int
	loading bool

	width  int
	height int
	ready  bool

	viewport     viewport.Model
	showDetail   bool
	detailCardID string
	outputFormat string

	overlay    *CardOverlay
	clearStale bool

	toast   *toast
	source  string
	version string

	now       func() time.Time
	copyText  func(string) error
	saveTheme func(string) error
}

// NewApp creates the board model. Cards are loaded asynchronously by Init.
func NewApp(cfg AppConfig) (*App, error) {
	if cfg.Client == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "board client is required", nil)
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	source := cfg.Source
	if source == "" {
		source = fmt.Sprint(cfg.Client)
	}
	return &App{
		client:       cfg.Client,
		ctx:          ctx,
		keys:         DefaultKeyMap(),
		viewport:     viewport.New(0, 0),
		outputFormat: cfg.OutputFormat,
		clearStale:   cfg.ClearStaleTaskType,
		source:       source,
		version:      cfg.Version,
		now:          time.Now,
		copyText:     clipboard.WriteAll,
		saveTheme:    config.SaveTheme,
	}, nil
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return m.refresh()
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.resizeViewport()
		if m.overlay != nil {
			m.overlay.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case cardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			appLog.Logf("load cards failed: %v", msg.err)
			return m, m.showToast("Could not load cards: "+appErrors.MessageOf(msg.err), true)
		}
		m.setCards(msg.cards)
		return m, nil

	case toastTickMsg:
		if m.toast == nil {
			return m, nil
		}
		if !m.now().Before(m.toast.expires) {
			m.toast = nil
			return m, nil
		}
		return m, scheduleToastTick()

	case CardCreatedMsg:
		return m, tea.Batch(
			m.showToast(fmt.Sprintf("Created card: %s", msg.Request.Title), false),
			m.refresh(),
		)

	case NewCardClosedMsg:
		if m.overlay != nil && m.overlay.ID() == msg.OverlayID {
			m.overlay.Detach()
			m.overlay = nil
		}
		return m, nil

	case cardSubmitResultMsg:
		if m.overlay == nil || m.overlay.ID() != msg.overlayID {
			appLog.Logf("dropping result for unmounted overlay %d", msg.overlayID)
			return m, nil
		}
		return m, m.updateOverlay(msg)
	}

	if m.overlay != nil {
		return m, m.updateOverlay(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKey(msg)
	}
	if m.showDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *App) updateOverlay(msg tea.Msg) tea.Cmd {
	_, cmd := m.overlay.Update(msg)
	return cmd
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.NewCard):
		return m.openOverlay(cardform.Seed{})
	case key.Matches(msg, m.keys.Duplicate):
		card, ok := m.selected()
		if !ok {
			return nil
		}
		return m.openOverlay(cardform.SeedFromCard(card))
	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedTitle()
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Enter):
		m.toggleDetail(!m.showDetail)
		return nil
	case key.Matches(msg, m.keys.Back):
		m.toggleDetail(false)
		return nil
	}

	if m.showDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.cards) - 1)
	}
	return nil
}

// openOverlay mounts a fresh new-card form. Its messages are routed by ID so
// results meant for an earlier overlay are dropped.
func (m *App) openOverlay(seed cardform.Seed) tea.Cmd {
	m.overlay = NewCardOverlay(m.client, NewCardOptions{
		Seed:               seed,
		ClearStaleTaskType: m.clearStale,
		Context:            m.ctx,
	})
	m.overlay.SetSize(m.width, m.height)
	appLog.Logf("mounted overlay %d", m.overlay.ID())
	return m.overlay.Init()
}

// refresh loads the board listing off the update loop.
func (m *App) refresh() tea.Cmd {
	m.loading = true
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		cards, err := client.ListCards(ctx)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

// setCards replaces the listing, keeping the selection on the same card
// when it is still present.
func (m *App) setCards(cards []domain.Card) {
	selectedID := ""
	if card, ok := m.selected(); ok {
		selectedID = card.ID
	}
	m.cards = cards
	m.cursor = 0
	for i, card := range cards {
		if card.ID == selectedID {
			m.cursor = i
			break
		}
	}
	m.moveCursor(m.cursor)
}

func (m *App) selected() (domain.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return domain.Card{}, false
	}
	return m.cards[m.cursor], true
}

func (m *App) moveCursor(idx int) {
	m.cursor = min(max(idx, 0), max(len(m.cards)-1, 0))
	rows := m.listHeight()
	if m.cursor < m.listTop {
		m.listTop = m.cursor
	}
	if m.cursor >= m.listTop+rows {
		m.listTop = m.cursor - rows + 1
	}
	m.listTop = max(m.listTop, 0)
	m.updateViewportContent()
}

func (m *App) toggleDetail(show bool) {
	if show {
		if _, ok := m.selected(); !ok {
			return
		}
	}
	m.showDetail = show
	m.resizeViewport()
}

func (m *App) copySelectedTitle() tea.Cmd {
	card, ok := m.selected()
	if !ok {
		return nil
	}
	if err := m.copyText(card.Title); err != nil {
		appLog.Logf("copy failed: %v", err)
		return m.showToast("Copy failed: "+err.Error(), true)
	}
	return m.showToast(fmt.Sprintf("Copied '%s' to clipboard.", card.Title), false)
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	if err := m.saveTheme(name); err != nil {
		appLog.Logf("save theme %s: %v", name, err)
	}
	m.updateViewportContent()
	return m.showToast("Theme: "+name, false)
}

func (m *App) showToast(message string, isError bool) tea.Cmd {
	ttl := successToastDuration
	if isError {
		ttl = errorToastDuration
	}
	m.toast = &toast{message: message, isError: isError, expires: m.now().Add(ttl)}
	return scheduleToastTick()
}

// listHeight is the number of card rows that fit between header and footer.
func (m *App) listHeight() int {
	return max(m.height-4, minListHeight)
}
