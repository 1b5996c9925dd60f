package cardform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GreenSheep01201/Claw-Kanban/internal/board"
	"github.com/GreenSheep01201/Claw-Kanban/internal/debug"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
	appErrors "github.com/GreenSheep01201/Claw-Kanban/internal/errors"
)

var (
	// ErrEmptyTitle rejects a submit whose title is blank after trimming.
	ErrEmptyTitle = errors.New("cardform: title is required")
	// ErrSubmitPending rejects a submit while another is in flight.
	ErrSubmitPending = errors.New("cardform: submission already in progress")
	// ErrClosed rejects any submit after the form was dismissed.
	ErrClosed = errors.New("cardform: form is closed")
)

var formLog = debug.For("cardform")

// Phase is where a submission stands.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseFailed
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseFailed:
		return "failed"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is what the form renders from. Message is only set in PhaseFailed.
type State struct {
	Phase   Phase
	Message string
}

// Loading reports whether a request is outstanding.
func (s State) Loading() bool { return s.Phase == PhasePending }

// Editable reports whether fields accept input.
func (s State) Editable() bool { return s.Phase == PhaseIdle || s.Phase == PhaseFailed }

// Attempt identifies one accepted submission. Results are matched against it
// so a late answer to an old attempt cannot change the form.
type Attempt struct {
	Seq uint64
}

// Hooks are the host's callbacks. OnSuccess runs before OnClose.
type Hooks struct {
	OnSuccess func()
	OnClose   func()
}

// Controller drives the submission lifecycle of one form instance:
//
//	Idle --submit--> Pending --ok--> Closed
//	                 Pending --err--> Failed --submit--> Pending
//
// Once closed, by success, Cancel or Detach, it never changes again.
type Controller struct {
	mu      sync.Mutex
	form    *Form
	hooks   Hooks
	state   State
	seq     uint64
	pending uint64
	alive   bool
}

// NewController wraps form. A nil form starts empty.
func NewController(form *Form, hooks Hooks) *Controller {
	if form == nil {
		form = NewForm(Seed{})
	}
	return &Controller{form: form, hooks: hooks, alive: true}
}

// Form returns the form being submitted.
func (c *Controller) Form() *Form {
	return c.form
}

// State returns a snapshot of the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Alive reports whether results are still wanted.
func (c *Controller) Alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive
}

// Begin accepts a submission and returns the attempt token plus the request
// to send. A blank title yields ErrEmptyTitle and leaves the state as it was.
func (c *Controller) Begin() (Attempt, domain.CreateCardRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case !c.alive || c.state.Phase == PhaseClosed:
		return Attempt{}, domain.CreateCardRequest{}, ErrClosed
	case c.state.Phase == PhasePending:
		return Attempt{}, domain.CreateCardRequest{}, ErrSubmitPending
	case !c.form.CanSubmit():
		return Attempt{}, domain.CreateCardRequest{}, ErrEmptyTitle
	}

	req, err := c.form.Draft().Request()
	if err != nil {
		c.state = State{Phase: PhaseFailed, Message: appErrors.MessageOf(err)}
		return Attempt{}, domain.CreateCardRequest{}, err
	}

	c.seq++
	c.pending = c.seq
	c.state = State{Phase: PhasePending}
	formLog.Logf("attempt %d pending: title=%q role=%q task_type=%q", c.seq, req.Title, req.Role, req.TaskType)
	return Attempt{Seq: c.seq}, req, nil
}

// Complete records the outcome of attempt. It returns false, and does
// nothing, when the controller is gone or the attempt is not the current one.
// On success the hooks run OnSuccess then OnClose, once each.
func (c *Controller) Complete(attempt Attempt, err error) bool {
	c.mu.Lock()
	if !c.alive || c.state.Phase != PhasePending || attempt.Seq != c.pending {
		phase, alive := c.state.Phase, c.alive
		c.mu.Unlock()
		formLog.Logf("attempt %d result dropped (phase=%s alive=%t)", attempt.Seq, phase, alive)
		return false
	}
	c.pending = 0

	if err != nil {
		c.state = State{Phase: PhaseFailed, Message: failureMessage(err)}
		c.mu.Unlock()
		formLog.Logf("attempt %d failed: %v", attempt.Seq, err)
		return true
	}

	c.state = State{Phase: PhaseClosed}
	c.alive = false
	hooks := c.hooks
	c.mu.Unlock()

	formLog.Logf("attempt %d succeeded", attempt.Seq)
	if hooks.OnSuccess != nil {
		hooks.OnSuccess()
	}
	if hooks.OnClose != nil {
		hooks.OnClose()
	}
	return true
}

// Submit runs a whole submission synchronously against creator. The error is
// only non-nil when the submit was not accepted; a failed request is
// reported through State instead.
func (c *Controller) Submit(ctx context.Context, creator board.Creator) error {
	attempt, req, err := c.Begin()
	if err != nil {
		return err
	}
	c.Complete(attempt, Create(ctx, creator, req))
	return nil
}

// Cancel dismisses the form: OnClose runs once and any outstanding result
// is ignored when it arrives.
func (c *Controller) Cancel() {
	c.mu.Lock()
	if c.state.Phase == PhaseClosed {
		c.mu.Unlock()
		return
	}
	wasPending, seq := c.state.Phase == PhasePending, c.seq
	c.state = State{Phase: PhaseClosed}
	c.alive = false
	c.pending = 0
	onClose := c.hooks.OnClose
	c.mu.Unlock()

	if wasPending {
		formLog.Logf("cancelled with attempt %d in flight", seq)
	}
	if onClose != nil {
		onClose()
	}
}

// Detach marks the form as gone without running any hook, for hosts that
// drop the form without an explicit close.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Phase: PhaseClosed}
	c.alive = false
	c.pending = 0
}

// Create calls creator, turning a panic into an ordinary error so a broken
// backend cannot take the form down with it.
func Create(ctx context.Context, creator board.Creator, req domain.CreateCardRequest) (err error) {
	if creator == nil {
		return appErrors.New(appErrors.CodeConfigurationError, "no board client configured", nil)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create card: unexpected panic: %v", r)
		}
	}()
	return creator.CreateCard(ctx, req)
}

func failureMessage(err error) string {
	var apiErr *board.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := appErrors.MessageOf(err); msg != "" {
		return msg
	}
	return "Failed to create card"
}
