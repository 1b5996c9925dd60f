package ui

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/cardform"
	"github.com/GreenSheep01201/Claw-Kanban/internal/debug"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

const (
	titlePlaceholder       = "e.g. Fix login page responsive layout issue"
	descriptionPlaceholder = "Detailed description of the task..."
	descriptionRows        = 6
)

var (
	overlaySeq atomic.Uint64
	overlayLog = debug.For("ui")
)

// cardFocus is the zone of the new-card overlay receiving keys.
type cardFocus int

const (
	focusTitle cardFocus = iota
	focusDescription
	focusRole
	focusTaskType
)

// NewCardOptions configures a CardOverlay.
type NewCardOptions struct {
	// Seed pre-fills the fields, e.g. from an existing card.
	Seed cardform.Seed
	// ClearStaleTaskType drops the task type when the role stops allowing one.
	ClearStaleTaskType bool
	// Hooks run in addition to the CardCreatedMsg and NewCardClosedMsg.
	Hooks cardform.Hooks
	// Context is used for the create request; defaults to Background.
	Context context.Context
}

// CardOverlay is the modal form for authoring a new card.
type CardOverlay struct {
	id      uint64
	ctrl    *cardform.Controller
	creator board.Creator
	ctx     context.Context
	keys    FormKeyMap

	titleInput textinput.Model
	descInput  textarea.Model
	focus      cardFocus

	width  int
	height int

	// completing is the request whose result is being applied.
	completing domain.CreateCardRequest
	// outbox collects messages queued by controller hooks during Update.
	outbox []tea.Msg
}

// NewCardOverlay builds the form. Results are reported as CardCreatedMsg and
// NewCardClosedMsg carrying this overlay's ID.
func NewCardOverlay(creator board.Creator, opts NewCardOptions) *CardOverlay {
	m := &CardOverlay{
		id:      overlaySeq.Add(1),
		creator: creator,
		ctx:     opts.Context,
		keys:    DefaultFormKeyMap(),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}

	form := cardform.NewForm(opts.Seed, cardform.ClearStaleTaskType(opts.ClearStaleTaskType))
	user := opts.Hooks
	m.ctrl = cardform.NewController(form, cardform.Hooks{
		OnSuccess: func() {
			m.outbox = append(m.outbox, CardCreatedMsg{OverlayID: m.id, Request: m.completing})
			if user.OnSuccess != nil {
				user.OnSuccess()
			}
		},
		OnClose: func() {
			m.outbox = append(m.outbox, NewCardClosedMsg{OverlayID: m.id})
			if user.OnClose != nil {
				user.OnClose()
			}
		},
	})

	m.titleInput = NewBaseTextInput(titlePlaceholder, 40)
	m.titleInput.SetValue(opts.Seed.Title)
	m.titleInput.Focus()

	m.descInput = NewBaseTextarea(40, descriptionRows)
	m.descInput.Placeholder = descriptionPlaceholder
	m.descInput.SetValue(opts.Seed.Description)
	m.descInput.Blur()

	m.SetSize(0, 0)
	return m
}

// ID distinguishes this overlay's messages from those of earlier instances.
func (m *CardOverlay) ID() uint64 { return m.id }

// Controller exposes the submission state, mainly for hosts and tests.
func (m *CardOverlay) Controller() *cardform.Controller { return m.ctrl }

// Form returns the field values being edited.
func (m *CardOverlay) Form() *cardform.Form { return m.ctrl.Form() }

// SetSize resizes the inputs for a terminal of the given size.
func (m *CardOverlay) SetSize(width, height int) {
	m.width, m.height = width, height
	content := OverlayContentWidth(responsiveOverlayWidth(width))
	m.titleInput.Width = max(content-5, 10)
	m.descInput.SetWidth(max(content-2, 10))
}

// Detach tells the overlay its host dropped it; late results are ignored.
func (m *CardOverlay) Detach() {
	m.ctrl.Detach()
}

func (m *CardOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *CardOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.ctrl.State().Phase == cardform.PhaseClosed {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case cardSubmitResultMsg:
		if msg.overlayID != m.id {
			return m, nil
		}
		m.completing = msg.request
		m.ctrl.Complete(msg.attempt, msg.err)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		cmd = m.passToFocused(msg)
	}
	return m, m.flush(cmd)
}

func (m *CardOverlay) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		return nil
	case key.Matches(msg, m.keys.Save):
		return m.submit()
	case key.Matches(msg, m.keys.Submit) && m.focus != focusDescription:
		return m.submit()
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	switch m.focus {
	case focusRole, focusTaskType:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.stepOption(-1)
		case key.Matches(msg, m.keys.Down):
			m.stepOption(1)
		}
		return nil
	default:
		return m.passToFocused(msg)
	}
}

// submit asks the controller for an attempt and, when accepted, returns the
// command that performs the request off the update loop.
func (m *CardOverlay) submit() tea.Cmd {
	attempt, req, err := m.ctrl.Begin()
	if err != nil {
		if !errors.Is(err, cardform.ErrEmptyTitle) {
			overlayLog.Logf("overlay %d submit refused: %v", m.id, err)
		}
		return nil
	}

	id, creator, ctx := m.id, m.creator, m.ctx
	return func() tea.Msg {
		return cardSubmitResultMsg{
			overlayID: id,
			attempt:   attempt,
			request:   req,
			err:       cardform.Create(ctx, creator, req),
		}
	}
}

// focusOrder skips the task type picker while the role does not allow one.
func (m *CardOverlay) focusOrder() []cardFocus {
	order := []cardFocus{focusTitle, focusDescription, focusRole}
	if m.Form().TaskTypeApplicable() {
		order = append(order, focusTaskType)
	}
	return order
}

func (m *CardOverlay) moveFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return m.setFocus(order[idx])
}

func (m *CardOverlay) setFocus(f cardFocus) tea.Cmd {
	m.focus = f
	m.titleInput.Blur()
	m.descInput.Blur()
	switch f {
	case focusTitle:
		return m.titleInput.Focus()
	case focusDescription:
		return m.descInput.Focus()
	}
	return nil
}

// stepOption moves the selection in the focused picker. Index 0 is None.
func (m *CardOverlay) stepOption(delta int) {
	form := m.Form()
	switch m.focus {
	case focusRole:
		opts := domain.RoleOptions()
		idx := step(roleIndex(form.Role()), delta, len(opts)+1)
		if idx == 0 {
			form.SetRole(domain.RoleNone)
		} else {
			form.SetRole(opts[idx-1].Value)
		}
	case focusTaskType:
		if !form.TaskTypeApplicable() {
			return
		}
		opts := domain.TaskTypeOptions()
		idx := step(taskTypeIndex(form.TaskType()), delta, len(opts)+1)
		if idx == 0 {
			form.SetTaskType(domain.TaskTypeNone)
		} else {
			form.SetTaskType(opts[idx-1].Value)
		}
	}
}

// step moves by delta within [0, n) without wrapping.
func step(idx, delta, n int) int {
	return min(max(idx+delta, 0), n-1)
}

func roleIndex(r domain.Role) int {
	for i, opt := range domain.RoleOptions() {
		if opt.Value == r {
			return i + 1
		}
	}
	return 0
}

func taskTypeIndex(t domain.TaskType) int {
	for i, opt := range domain.TaskTypeOptions() {
		if opt.Value == t {
			return i + 1
		}
	}
	return 0
}

func (m *CardOverlay) passToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.Form().SetTitle(m.titleInput.Value())
	case focusDescription:
		m.descInput, cmd = m.descInput.Update(msg)
		m.Form().SetDescription(m.descInput.Value())
	}
	return cmd
}

// flush delivers messages queued by the controller hooks in order. They only
// appear once the overlay has closed, so they replace cmd.
func (m *CardOverlay) flush(cmd tea.Cmd) tea.Cmd {
	if len(m.outbox) == 0 {
		return cmd
	}
	cmds := make([]tea.Cmd, 0, len(m.outbox))
	for _, msg := range m.outbox {
		cmds = append(cmds, emit(msg))
	}
	m.outbox = nil
	return tea.Sequence(cmds...)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
