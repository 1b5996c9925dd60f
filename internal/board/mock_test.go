package board

import (
	"context"
	"errors"
	"testing"

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

func TestMockClientRecordsCalls(t *testing.T) {
	ctx := context.Background()
	m := NewMockClient()

	if err := m.CreateCard(ctx, domain.CreateCardRequest{Title: "A", Status: domain.StatusInbox}); err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	cards, err := m.ListCards(ctx)
	if err != nil || len(cards) != 1 || cards[0].Title != "A" {
		t.Fatalf("ListCards = %+v, %v", cards, err)
	}

	boom := errors.New("boom")
	m.CreateCardFn = func(context.Context, domain.CreateCardRequest) error { return boom }
	if err := m.CreateCard(ctx, domain.CreateCardRequest{Title: "B"}); !errors.Is(err, boom) {
		t.Fatalf("expected override error, got %v", err)
	}

	if m.CreateCardCallCount != 2 || m.ListCardsCallCount != 1 {
		t.Fatalf("counts = %d create, %d list", m.CreateCardCallCount, m.ListCardsCallCount)
	}
	if calls := m.CreateCalls(); len(calls) != 2 || calls[1].Title != "B" {
		t.Fatalf("CreateCalls = %+v", calls)
	}
}
