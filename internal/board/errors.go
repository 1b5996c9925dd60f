package board

import (
	"fmt"
	"net/http"

	appErrors "github.com/GreenSheep01201/Claw-Kanban/internal/errors"
)

// APIError is returned when the board API answers with a non-2xx status.
// Message holds the server's own explanation when one could be extracted.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if text := http.StatusText(e.Status); text != "" {
		return fmt.Sprintf("%d %s", e.Status, text)
	}
	return fmt.Sprintf("board api responded %d", e.Status)
}

func rejected(apiErr *APIError) error {
	return appErrors.New(appErrors.CodeAPIRejected, apiErr.Error(), apiErr)
}

func transportFailed(op string, err error) error {
	return appErrors.New(appErrors.CodeTransportFailed, fmt.Sprintf("%s: %v", op, err), err)
}

func parseFailed(op string, err error) error {
	return appErrors.New(appErrors.CodeParseFailed, fmt.Sprintf("%s: decode response: %v", op, err), err)
}

func storageFailed(op string, err error) error {
	return appErrors.New(appErrors.CodeStorageFailed, fmt.Sprintf("%s: %v", op, err), err)
}
