package domain

import (
	"fmt"

	appErrors "github.com/GreenSheep01201/Claw-Kanban/internal/errors"
)

func invalidRoleError(role string) error {
	return appErrors.New(appErrors.CodeInvalidRole, fmt.Sprintf("invalid role: %s", role), nil)
}

func invalidTaskTypeError(taskType string) error {
	return appErrors.New(appErrors.CodeInvalidTaskType, fmt.Sprintf("invalid task type: %s", taskType), nil)
}

func invalidRequestError(reason string, err error) error {
	return appErrors.New(appErrors.CodeInvalidRequest, reason, err)
}
