package domain

import (
	"strings"
	"time"
)

// Card is a work item as stored by the board backend.
type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Role        Role      `json:"role,omitempty"`
	TaskType    TaskType  `json:"task_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// CreateCardRequest is the payload of a create-card call. Role and TaskType
// are dropped from the JSON body when empty; the backend distinguishes a
// missing key from an empty string.
type CreateCardRequest struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description"`
	Status      Status   `json:"status" validate:"required,eq=Inbox"`
	Role        Role     `json:"role,omitempty" validate:"omitempty,oneof=devops backend frontend"`
	TaskType    TaskType `json:"task_type,omitempty" validate:"omitempty,oneof=new modify bugfix"`
}

// NewCreateCardRequest trims the free-text fields and pins the status to Inbox.
// The task type is carried as given, even when the role does not allow one.
func NewCreateCardRequest(title, description string, role Role, taskType TaskType) (CreateCardRequest, error) {
	req := CreateCardRequest{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      StatusInbox,
		Role:        role,
		TaskType:    taskType,
	}
	if req.Title == "" {
		return CreateCardRequest{}, invalidRequestError("title is required", nil)
	}
	if err := role.Validate(); err != nil {
		return CreateCardRequest{}, err
	}
	if err := taskType.Validate(); err != nil {
		return CreateCardRequest{}, err
	}
	return req, nil
}

// Duplicate returns a request seeded from an existing card, used for the
// "duplicate as new" flow.
func (c Card) Duplicate() CreateCardRequest {
	return CreateCardRequest{
		Title:       c.Title,
		Description: c.Description,
		Status:      StatusInbox,
		Role:        c.Role,
		TaskType:    c.TaskType,
	}
}
