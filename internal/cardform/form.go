// Package cardform holds the state behind the new-card form: the draft being
// edited and the controller that turns it into exactly one create request.
package cardform

import (
	"strings"

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

// TaskTypeHint is shown next to the task type picker when the selected role
// does not take a task type.
const TaskTypeHint = "Only available for FrontEnd role"

// Seed pre-fills a form, e.g. when duplicating an existing card.
type Seed struct {
	Title       string
	Description string
	Role        domain.Role
	TaskType    domain.TaskType
}

// SeedFromCard copies the editable fields of an existing card.
func SeedFromCard(card domain.Card) Seed {
	req := card.Duplicate()
	return Seed{
		Title:       req.Title,
		Description: req.Description,
		Role:        req.Role,
		TaskType:    req.TaskType,
	}
}

// Draft is a snapshot of the form fields as typed.
type Draft struct {
	Title       string
	Description string
	Role        domain.Role
	TaskType    domain.TaskType
}

// Request builds the create payload: trimmed text, Inbox status, and the
// task type carried as-is.
func (d Draft) Request() (domain.CreateCardRequest, error) {
	return domain.NewCreateCardRequest(d.Title, d.Description, d.Role, d.TaskType)
}

// FormOption configures a Form.
type FormOption func(*Form)

// ClearStaleTaskType makes SetRole drop the task type whenever the new role
// does not take one. Without it the previous task type is kept and sent.
func ClearStaleTaskType(enabled bool) FormOption {
	return func(f *Form) { f.clearStale = enabled }
}

// Form owns the editable field values. It is not safe for concurrent use;
// the Controller serialises access while a submission is in flight.
type Form struct {
	title       string
	description string
	role        domain.Role
	taskType    domain.TaskType
	clearStale  bool
}

// NewForm returns a form pre-filled from seed.
func NewForm(seed Seed, opts ...FormOption) *Form {
	f := &Form{
		title:       seed.Title,
		description: seed.Description,
		role:        seed.Role,
		taskType:    seed.TaskType,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) SetTitle(title string) { f.title = title }

func (f *Form) SetDescription(desc string) { f.description = desc }

// SetRole replaces the role. The task type is left alone unless the form was
// built with ClearStaleTaskType.
func (f *Form) SetRole(role domain.Role) {
	f.role = role
	if f.clearStale && !role.AllowsTaskType() {
		f.taskType = domain.TaskTypeNone
	}
}

// SetTaskType replaces the task type, even when the current role does not
// take one.
func (f *Form) SetTaskType(tt domain.TaskType) { f.taskType = tt }

func (f *Form) Title() string             { return f.title }
func (f *Form) Description() string       { return f.description }
func (f *Form) Role() domain.Role         { return f.role }
func (f *Form) TaskType() domain.TaskType { return f.taskType }

// TaskTypeApplicable reports whether the task type picker should be enabled.
func (f *Form) TaskTypeApplicable() bool {
	return f.role.AllowsTaskType()
}

// TaskTypeHint explains why the task type picker is disabled. It is empty
// when no role is chosen or the role takes a task type.
func (f *Form) TaskTypeHint() string {
	if f.role == domain.RoleNone || f.TaskTypeApplicable() {
		return ""
	}
	return TaskTypeHint
}

// CanSubmit reports whether the title has any non-space content.
func (f *Form) CanSubmit() bool {
	return strings.TrimSpace(f.title) != ""
}

// Draft returns the current field values.
func (f *Form) Draft() Draft {
	return Draft{
		Title:       f.title,
		Description: f.description,
		Role:        f.role,
		TaskType:    f.taskType,
	}
}
