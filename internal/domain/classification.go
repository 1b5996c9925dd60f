package domain

import "strings"

// Role is the top-level classification of a card. The zero value means no role.
type Role string

const (
	RoleNone     Role = ""
	RoleDevOps   Role = "devops"
	RoleBackend  Role = "backend"
	RoleFrontend Role = "frontend"
)

// TaskType is the secondary classification of a card. It is only meaningful
// for frontend cards. The zero value means no task type.
type TaskType string

const (
	TaskTypeNone   TaskType = ""
	TaskTypeNew    TaskType = "new"
	TaskTypeModify TaskType = "modify"
	TaskTypeBugfix TaskType = "bugfix"
)

// Option pairs a machine value with the label shown to users.
type Option[T ~string] struct {
	Value T
	Label string
}

var roleOptions = []Option[Role]{
	{Value: RoleDevOps, Label: "Dev Ops"},
	{Value: RoleBackend, Label: "BackEnd"},
	{Value: RoleFrontend, Label: "FrontEnd"},
}

var taskTypeOptions = []Option[TaskType]{
	{Value: TaskTypeNew, Label: "New Feature"},
	{Value: TaskTypeModify, Label: "Modify / Improve"},
	{Value: TaskTypeBugfix, Label: "Bugfix"},
}

// RoleOptions returns the selectable roles in display order.
func RoleOptions() []Option[Role] {
	return append([]Option[Role](nil), roleOptions...)
}

// TaskTypeOptions returns the selectable task types in display order.
func TaskTypeOptions() []Option[TaskType] {
	return append([]Option[TaskType](nil), taskTypeOptions...)
}

// ParseRole normalises a raw role. Blank input yields RoleNone.
func ParseRole(raw string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if role == RoleNone {
		return RoleNone, nil
	}
	if err := role.Validate(); err != nil {
		return RoleNone, err
	}
	return role, nil
}

// Validate reports whether the role is RoleNone or one of the known roles.
func (r Role) Validate() error {
	if r == RoleNone {
		return nil
	}
	for _, opt := range roleOptions {
		if opt.Value == r {
			return nil
		}
	}
	return invalidRoleError(string(r))
}

// Label returns the display label, "None" for RoleNone.
func (r Role) Label() string {
	for _, opt := range roleOptions {
		if opt.Value == r {
			return opt.Label
		}
	}
	if r == RoleNone {
		return "None"
	}
	return string(r)
}

// AllowsTaskType reports whether a task type applies to cards with this role.
func (r Role) AllowsTaskType() bool {
	return r == RoleFrontend
}

// ParseTaskType normalises a raw task type. Blank input yields TaskTypeNone.
func ParseTaskType(raw string) (TaskType, error) {
	tt := TaskType(strings.ToLower(strings.TrimSpace(raw)))
	if tt == TaskTypeNone {
		return TaskTypeNone, nil
	}
	if err := tt.Validate(); err != nil {
		return TaskTypeNone, err
	}
	return tt, nil
}

// Validate reports whether the task type is TaskTypeNone or a known task type.
func (t TaskType) Validate() error {
	if t == TaskTypeNone {
		return nil
	}
	for _, opt := range taskTypeOptions {
		if opt.Value == t {
			return nil
		}
	}
	return invalidTaskTypeError(string(t))
}

// Label returns the display label, "None" for TaskTypeNone.
func (t TaskType) Label() string {
	for _, opt := range taskTypeOptions {
		if opt.Value == t {
			return opt.Label
		}
	}
	if t == TaskTypeNone {
		return "None"
	}
	return string(t)
}
