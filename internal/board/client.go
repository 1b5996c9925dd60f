// Package board talks to the Claw-Kanban card store, either over its HTTP API
// or directly against a local SQLite database.
package board

import (
	"context"

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

// Creator is the single operation the new-card form depends on.
type Creator interface {
	CreateCard(ctx context.Context, req domain.CreateCardRequest) error
}

// Client is what the board screen needs: creation plus a listing to refresh
// after a card has been created.
type Client interface {
	Creator
	ListCards(ctx context.Context) ([]domain.Card, error)
}

var (
	_ Client = (*HTTPClient)(nil)
	_ Client = (*SQLiteClient)(nil)
	_ Client = (*MockClient)(nil)
)
