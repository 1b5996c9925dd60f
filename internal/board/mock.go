package board

import (
	"context"
	"sync"

	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

// MockClient is a test double for Client. Unset Fn fields make CreateCard
// succeed and ListCards return the cards created so far.
type MockClient struct {
	CreateCardFn func(context.Context, domain.CreateCardRequest) error
	ListCardsFn  func(context.Context) ([]domain.Card, error)

	mu                  sync.Mutex
	CreateCardCallCount int
	ListCardsCallCount  int
	CreateCardCallArgs  []domain.CreateCardRequest
	created             []domain.Card
}

// NewMockClient returns a MockClient with no overrides.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// CreateCard records the request and delegates to CreateCardFn when set.
func (m *MockClient) CreateCard(ctx context.Context, req domain.CreateCardRequest) error {
	m.mu.Lock()
	m.CreateCardCallCount++
	m.CreateCardCallArgs = append(m.CreateCardCallArgs, req)
	fn := m.CreateCardFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append([]domain.Card{{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Role:        req.Role,
		TaskType:    req.TaskType,
	}}, m.created...)
	return nil
}

// ListCards delegates to ListCardsFn when set.
func (m *MockClient) ListCards(ctx context.Context) ([]domain.Card, error) {
	m.mu.Lock()
	m.ListCardsCallCount++
	fn := m.ListCardsFn
	cards := append([]domain.Card(nil), m.created...)
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	return cards, nil
}

// CreateCalls returns a snapshot of every request passed to CreateCard.
func (m *MockClient) CreateCalls() []domain.CreateCardRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CreateCardRequest(nil), m.CreateCardCallArgs...)
}
